// Package config defines the immutable run configuration and loads overrides from configuration files.
package config

import (
	"sort"
	"strings"

	"github.com/temirov/textify/internal/utils"
)

const (
	// DefaultRootDirectory is the project root traversed when nothing else is configured.
	DefaultRootDirectory = "."
	// DefaultOutputFile is the document written when nothing else is configured.
	DefaultOutputFile = "project_context_for_ai.txt"

	extensionSeparator = "."
)

var (
	defaultExcludedDirectories = []string{".next", "node_modules", ".git", "public", "styles"}
	defaultExcludedFiles       = []string{"package-lock.json", "favicon.ico", ".gitignore", "README.md"}
	defaultExtensions          = []string{".ts", ".tsx", ".js", ".jsx", ".json", ".mjs"}
)

// Options is the mutable input used to construct a Configuration.
type Options struct {
	RootDirectory       string
	OutputFile          string
	ExcludedDirectories []string
	ExcludedFiles       []string
	Extensions          []string
}

// DefaultOptions returns the built-in configuration values.
func DefaultOptions() Options {
	return Options{
		RootDirectory:       DefaultRootDirectory,
		OutputFile:          DefaultOutputFile,
		ExcludedDirectories: append([]string(nil), defaultExcludedDirectories...),
		ExcludedFiles:       append([]string(nil), defaultExcludedFiles...),
		Extensions:          append([]string(nil), defaultExtensions...),
	}
}

// Configuration is the immutable set of traversal rules shared by the tree renderer and the content aggregator.
// Exclusion sets hold bare names compared by exact match against the last path segment.
type Configuration struct {
	rootDirectory       string
	outputFile          string
	excludedDirectories map[string]struct{}
	excludedFiles       map[string]struct{}
	extensions          []string
}

// Default returns the Configuration built from DefaultOptions.
func Default() Configuration {
	return New(DefaultOptions())
}

// New builds a Configuration from options. Empty paths fall back to the defaults and
// extensions missing their leading separator receive one.
func New(options Options) Configuration {
	rootDirectory := strings.TrimSpace(options.RootDirectory)
	if rootDirectory == "" {
		rootDirectory = DefaultRootDirectory
	}
	outputFile := strings.TrimSpace(options.OutputFile)
	if outputFile == "" {
		outputFile = DefaultOutputFile
	}

	var extensions []string
	for _, extension := range utils.DeduplicateStrings(options.Extensions) {
		if !strings.HasPrefix(extension, extensionSeparator) {
			extension = extensionSeparator + extension
		}
		extensions = append(extensions, extension)
	}

	return Configuration{
		rootDirectory:       rootDirectory,
		outputFile:          outputFile,
		excludedDirectories: toSet(options.ExcludedDirectories),
		excludedFiles:       toSet(options.ExcludedFiles),
		extensions:          utils.DeduplicateStrings(extensions),
	}
}

func toSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, value := range utils.DeduplicateStrings(values) {
		set[value] = struct{}{}
	}
	return set
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for key := range set {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// RootDirectory returns the directory whose tree and contents are serialized.
func (configuration Configuration) RootDirectory() string {
	return configuration.rootDirectory
}

// OutputFile returns the path of the generated document.
func (configuration Configuration) OutputFile() string {
	return configuration.outputFile
}

// ExcludedDirectories returns the directory-exclusion set in sorted order.
func (configuration Configuration) ExcludedDirectories() []string {
	return sortedKeys(configuration.excludedDirectories)
}

// ExcludedFiles returns the file-exclusion set in sorted order.
func (configuration Configuration) ExcludedFiles() []string {
	return sortedKeys(configuration.excludedFiles)
}

// Extensions returns the extension allow-list in configured order.
func (configuration Configuration) Extensions() []string {
	return append([]string(nil), configuration.extensions...)
}

// IsExcludedDirectory reports whether name is in the directory-exclusion set.
func (configuration Configuration) IsExcludedDirectory(name string) bool {
	_, excluded := configuration.excludedDirectories[name]
	return excluded
}

// IsExcludedFile reports whether name is in the file-exclusion set.
func (configuration Configuration) IsExcludedFile(name string) bool {
	_, excluded := configuration.excludedFiles[name]
	return excluded
}

// IsExcludedName reports whether name is in either exclusion set, regardless of the entry type.
func (configuration Configuration) IsExcludedName(name string) bool {
	return configuration.IsExcludedDirectory(name) || configuration.IsExcludedFile(name)
}

// HasAllowedExtension reports whether name ends with one of the allow-listed extensions.
func (configuration Configuration) HasAllowedExtension(name string) bool {
	for _, extension := range configuration.extensions {
		if strings.HasSuffix(name, extension) {
			return true
		}
	}
	return false
}

// ShouldAggregate reports whether a file named name contributes its content to the document.
func (configuration Configuration) ShouldAggregate(name string) bool {
	return configuration.HasAllowedExtension(name) && !configuration.IsExcludedFile(name)
}

// Options returns a copy of the values the Configuration was built from, after normalization.
func (configuration Configuration) Options() Options {
	return Options{
		RootDirectory:       configuration.rootDirectory,
		OutputFile:          configuration.outputFile,
		ExcludedDirectories: configuration.ExcludedDirectories(),
		ExcludedFiles:       configuration.ExcludedFiles(),
		Extensions:          configuration.Extensions(),
	}
}
