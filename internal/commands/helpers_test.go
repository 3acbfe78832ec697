package commands_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"

	"github.com/temirov/textify/internal/config"
)

const projectRoot = "/project"

var errInjected = errors.New("injected failure")

// seedFilesystem writes every relative path in files below root; paths ending in "/" become empty directories.
func seedFilesystem(t *testing.T, filesystem afero.Fs, root string, files map[string]string) {
	t.Helper()
	if err := filesystem.MkdirAll(root, 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", root, err)
	}
	for relativePath, content := range files {
		fullPath := filepath.Join(root, filepath.FromSlash(relativePath))
		if relativePath[len(relativePath)-1] == '/' {
			if err := filesystem.MkdirAll(fullPath, 0o755); err != nil {
				t.Fatalf("mkdir %s: %v", fullPath, err)
			}
			continue
		}
		if err := filesystem.MkdirAll(filepath.Dir(fullPath), 0o755); err != nil {
			t.Fatalf("mkdir %s: %v", filepath.Dir(fullPath), err)
		}
		if err := afero.WriteFile(filesystem, fullPath, []byte(content), 0o644); err != nil {
			t.Fatalf("write %s: %v", fullPath, err)
		}
	}
}

func configurationForRoot(root string) config.Configuration {
	options := config.DefaultOptions()
	options.RootDirectory = root
	options.OutputFile = filepath.Join(root, config.DefaultOutputFile)
	return config.New(options)
}

// failingOpenFs fails every Open of the listed paths.
type failingOpenFs struct {
	afero.Fs
	failingPaths map[string]struct{}
}

func (filesystem failingOpenFs) Open(name string) (afero.File, error) {
	if _, failing := filesystem.failingPaths[filepath.Clean(name)]; failing {
		return nil, &os.PathError{Op: "open", Path: name, Err: errInjected}
	}
	return filesystem.Fs.Open(name)
}
