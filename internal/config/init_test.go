package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/afero"

	"github.com/temirov/textify/internal/utils"
)

func TestInitializeConfigurationCreatesLocalFile(t *testing.T) {
	workingDirectory := t.TempDir()
	options := InitOptions{WorkingDirectory: workingDirectory, Target: InitTargetLocal}
	path, err := InitializeConfiguration(options)
	if err != nil {
		t.Fatalf("InitializeConfiguration error: %v", err)
	}
	expectedPath := filepath.Join(workingDirectory, utils.ConfigFileName)
	if path != expectedPath {
		t.Fatalf("expected path %s, got %s", expectedPath, path)
	}
	content, readErr := os.ReadFile(path)
	if readErr != nil {
		t.Fatalf("read config: %v", readErr)
	}
	if !strings.Contains(string(content), "extensions:") {
		t.Fatalf("unexpected configuration content: %s", string(content))
	}
}

func TestInitializeConfigurationHonorsGlobalTarget(t *testing.T) {
	homeDir := t.TempDir()
	t.Setenv("HOME", homeDir)
	t.Setenv("USERPROFILE", homeDir)
	path, err := InitializeConfiguration(InitOptions{Target: InitTargetGlobal, Force: true})
	if err != nil {
		t.Fatalf("InitializeConfiguration error: %v", err)
	}
	expectedPath := filepath.Join(homeDir, utils.GlobalConfigDirectoryName, utils.GlobalConfigFileName)
	if path != expectedPath {
		t.Fatalf("expected path %s, got %s", expectedPath, path)
	}
	if _, statErr := os.Stat(path); statErr != nil {
		t.Fatalf("expected file to exist at %s: %v", path, statErr)
	}
}

func TestInitializeConfigurationPreventsOverwriteWithoutForce(t *testing.T) {
	filesystem := afero.NewMemMapFs()
	workingDirectory := "/work"
	path := filepath.Join(workingDirectory, utils.ConfigFileName)
	if err := afero.WriteFile(filesystem, path, []byte("existing"), 0o600); err != nil {
		t.Fatalf("write seed config: %v", err)
	}
	_, err := InitializeConfiguration(InitOptions{Filesystem: filesystem, WorkingDirectory: workingDirectory, Target: InitTargetLocal})
	if err == nil {
		t.Fatalf("expected error when configuration already exists")
	}
	if _, err := InitializeConfiguration(InitOptions{Filesystem: filesystem, WorkingDirectory: workingDirectory, Target: InitTargetLocal, Force: true}); err != nil {
		t.Fatalf("expected forced overwrite to succeed: %v", err)
	}
}

func TestInitializeConfigurationRejectsUnknownTarget(t *testing.T) {
	_, err := InitializeConfiguration(InitOptions{Filesystem: afero.NewMemMapFs(), WorkingDirectory: "/work", Target: "remote"})
	if err == nil {
		t.Fatalf("expected error for unsupported target")
	}
}

func TestDefaultTemplateMatchesDefaultOptions(t *testing.T) {
	filesystem := afero.NewMemMapFs()
	if _, err := InitializeConfiguration(InitOptions{Filesystem: filesystem, WorkingDirectory: "/work"}); err != nil {
		t.Fatalf("InitializeConfiguration error: %v", err)
	}
	loaded, err := LoadFileConfiguration(LoadOptions{Filesystem: filesystem, WorkingDirectory: "/work", HomeDirectory: "/home"})
	if err != nil {
		t.Fatalf("LoadFileConfiguration error: %v", err)
	}
	if diff := cmp.Diff(DefaultOptions(), loaded.Apply(Options{})); diff != "" {
		t.Fatalf("template differs from defaults (-want +got):\n%s", diff)
	}
}
