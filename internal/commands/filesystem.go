package commands

import (
	"os"

	"github.com/spf13/afero"
)

// listDirectory returns the immediate children of directoryPath sorted by name.
func listDirectory(filesystem afero.Fs, directoryPath string) ([]os.FileInfo, error) {
	return afero.ReadDir(filesystem, directoryPath)
}

// resolvesToDirectory reports whether entry is a directory, following a symbolic link to its target.
// Broken links resolve to non-directories.
func resolvesToDirectory(filesystem afero.Fs, entryPath string, entry os.FileInfo) bool {
	if entry.IsDir() {
		return true
	}
	if entry.Mode()&os.ModeSymlink == 0 {
		return false
	}
	targetInfo, statError := filesystem.Stat(entryPath)
	if statError != nil {
		return false
	}
	return targetInfo.IsDir()
}

func isSymbolicLink(entry os.FileInfo) bool {
	return entry.Mode()&os.ModeSymlink != 0
}
