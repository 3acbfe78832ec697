package commands_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/afero"

	"github.com/temirov/textify/internal/commands"
)

func TestTreeRendererRender(t *testing.T) {
	testCases := []struct {
		name     string
		files    map[string]string
		expected string
	}{
		{
			name: "excluded directory omitted",
			files: map[string]string{
				"a.ts":                    "x",
				"node_modules/ignored.js": "ignored",
				"lib/b.json":              "{}",
			},
			expected: "├── a.ts\n└── lib\n    └── b.json\n",
		},
		{
			name: "nested indentation",
			files: map[string]string{
				"app/page.tsx":  "",
				"app/room/x.ts": "",
				"lib.ts":        "",
			},
			expected: "├── app\n│   ├── page.tsx\n│   └── room\n│       └── x.ts\n└── lib.ts\n",
		},
		{
			name: "last connector belongs to last included entry",
			files: map[string]string{
				"app/":            "",
				"public/logo.svg": "",
				"styles/app.css":  "",
			},
			expected: "└── app\n",
		},
		{
			name: "exclusion sets apply to every entry type",
			files: map[string]string{
				".git/HEAD":         "ref",
				".gitignore":        "node_modules",
				"README.md":         "# readme",
				"package-lock.json": "{}",
				"docs/README.md":    "# nested",
				"docs/guide.md":     "guide",
				"favicon.ico/":      "",
			},
			expected: "└── docs\n    └── guide.md\n",
		},
		{
			name: "extensions do not filter the tree",
			files: map[string]string{
				"Makefile": "all:",
				"notes.md": "notes",
				"main.go":  "package main",
			},
			expected: "├── Makefile\n├── main.go\n└── notes.md\n",
		},
		{
			name: "empty directories are listed without children",
			files: map[string]string{
				"empty/": "",
				"z.ts":   "",
			},
			expected: "├── empty\n└── z.ts\n",
		},
		{
			name:     "empty root",
			files:    map[string]string{},
			expected: "",
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			filesystem := afero.NewMemMapFs()
			seedFilesystem(t, filesystem, projectRoot, testCase.files)
			renderer := commands.NewTreeRenderer(filesystem, configurationForRoot(projectRoot))

			tree, err := renderer.Render(projectRoot, "")
			if err != nil {
				t.Fatalf("Render error: %v", err)
			}
			if diff := cmp.Diff(testCase.expected, tree); diff != "" {
				t.Fatalf("unexpected tree (-want +got):\n%s", diff)
			}
		})
	}
}

func TestTreeRendererPrefixesIndent(t *testing.T) {
	filesystem := afero.NewMemMapFs()
	seedFilesystem(t, filesystem, projectRoot, map[string]string{"a.ts": "", "b.ts": ""})
	renderer := commands.NewTreeRenderer(filesystem, configurationForRoot(projectRoot))

	tree, err := renderer.Render(projectRoot, "│   ")
	if err != nil {
		t.Fatalf("Render error: %v", err)
	}
	if diff := cmp.Diff("│   ├── a.ts\n│   └── b.ts\n", tree); diff != "" {
		t.Fatalf("unexpected tree (-want +got):\n%s", diff)
	}
}

func TestTreeRendererListingFailuresAreFatal(t *testing.T) {
	testCases := []struct {
		name       string
		filesystem func(t *testing.T) afero.Fs
	}{
		{
			name: "missing root",
			filesystem: func(t *testing.T) afero.Fs {
				return afero.NewMemMapFs()
			},
		},
		{
			name: "unreadable nested directory",
			filesystem: func(t *testing.T) afero.Fs {
				base := afero.NewMemMapFs()
				seedFilesystem(t, base, projectRoot, map[string]string{"a.ts": "", "lib/b.ts": ""})
				return failingOpenFs{Fs: base, failingPaths: map[string]struct{}{filepath.Join(projectRoot, "lib"): {}}}
			},
		},
	}
	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			renderer := commands.NewTreeRenderer(testCase.filesystem(t), configurationForRoot(projectRoot))
			if _, err := renderer.Render(projectRoot, ""); err == nil {
				t.Fatalf("expected listing error")
			}
		})
	}
}

func TestTreeRendererFollowsDirectorySymlinks(t *testing.T) {
	rootDirectory := t.TempDir()
	realDirectory := filepath.Join(rootDirectory, "real")
	if err := os.MkdirAll(realDirectory, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(realDirectory, "a.ts"), []byte("x"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := os.Symlink(realDirectory, filepath.Join(rootDirectory, "link")); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}

	renderer := commands.NewTreeRenderer(afero.NewOsFs(), configurationForRoot(rootDirectory))
	tree, err := renderer.Render(rootDirectory, "")
	if err != nil {
		t.Fatalf("Render error: %v", err)
	}
	expected := "├── link\n│   └── a.ts\n└── real\n    └── a.ts\n"
	if diff := cmp.Diff(expected, tree); diff != "" {
		t.Fatalf("unexpected tree (-want +got):\n%s", diff)
	}
}
