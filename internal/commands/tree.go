// Package commands contains the two traversals that make up a project document:
// the tree renderer and the content aggregator.
package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/temirov/textify/internal/config"
)

const (
	branchConnector     = "├── "
	lastBranchConnector = "└── "
	branchIndent        = "│   "
	lastBranchIndent    = "    "

	// errorReadDirectoryFormat is used when a directory cannot be listed.
	errorReadDirectoryFormat = "reading directory %s: %w"
)

// TreeRenderer renders the indented directory tree of a project.
type TreeRenderer struct {
	Filesystem    afero.Fs
	Configuration config.Configuration
}

// NewTreeRenderer constructs a TreeRenderer over filesystem.
func NewTreeRenderer(filesystem afero.Fs, configuration config.Configuration) *TreeRenderer {
	return &TreeRenderer{Filesystem: filesystem, Configuration: configuration}
}

// Render lists directoryPath recursively and returns one line per entry, each prefixed with indent.
// Entries whose bare name is in either exclusion set are omitted together with their subtrees.
// The last connector of a directory belongs to its last included entry.
func (renderer *TreeRenderer) Render(directoryPath string, indent string) (string, error) {
	entries, listError := listDirectory(renderer.Filesystem, directoryPath)
	if listError != nil {
		return "", fmt.Errorf(errorReadDirectoryFormat, directoryPath, listError)
	}

	includedEntries := make([]os.FileInfo, 0, len(entries))
	for _, entry := range entries {
		if !renderer.Configuration.IsExcludedName(entry.Name()) {
			includedEntries = append(includedEntries, entry)
		}
	}

	var builder strings.Builder
	for index, entry := range includedEntries {
		connector := branchConnector
		childIndent := indent + branchIndent
		if index == len(includedEntries)-1 {
			connector = lastBranchConnector
			childIndent = indent + lastBranchIndent
		}
		builder.WriteString(indent + connector + entry.Name() + "\n")

		childPath := filepath.Join(directoryPath, entry.Name())
		if !resolvesToDirectory(renderer.Filesystem, childPath, entry) {
			continue
		}
		subtree, renderError := renderer.Render(childPath, childIndent)
		if renderError != nil {
			return "", renderError
		}
		builder.WriteString(subtree)
	}
	return builder.String(), nil
}
