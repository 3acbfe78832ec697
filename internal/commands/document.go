package commands

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/temirov/textify/internal/config"
	"github.com/temirov/textify/internal/output"
	"github.com/temirov/textify/internal/types"
)

const (
	errorAbsolutePathFormat = "abs failed for '%s': %w"
	errorPathMissingFormat  = "path '%s' does not exist"
	errorStatFormat         = "stat failed for '%s': %w"
	errorNotDirectoryFormat = "path '%s' is not a directory"
	errorCreateOutputFormat = "creating output %s: %w"
	errorFlushOutputFormat  = "flushing output %s: %w"
	errorCloseOutputFormat  = "closing output %s: %w"
)

// DocumentGenerator writes the project document: the tree first, then every aggregated file.
type DocumentGenerator struct {
	Filesystem    afero.Fs
	Configuration config.Configuration
	// Warn receives files whose content was replaced by a read-error placeholder.
	Warn func(filePath string, readError error)
}

// NewDocumentGenerator constructs a DocumentGenerator over filesystem.
func NewDocumentGenerator(filesystem afero.Fs, configuration config.Configuration) *DocumentGenerator {
	return &DocumentGenerator{Filesystem: filesystem, Configuration: configuration}
}

// Generate writes the complete document for the configured root to writer.
// The configured output file is listed in the tree when it lies below the root but is never aggregated.
func (generator *DocumentGenerator) Generate(writer io.Writer) (types.OutputSummary, error) {
	rootDirectoryPath := generator.Configuration.RootDirectory()
	tree, renderError := NewTreeRenderer(generator.Filesystem, generator.Configuration).Render(rootDirectoryPath, "")
	if renderError != nil {
		return types.OutputSummary{}, renderError
	}
	if writeError := output.WriteProjectStructure(writer, tree); writeError != nil {
		return types.OutputSummary{}, writeError
	}
	aggregator := NewContentAggregator(generator.Filesystem, generator.Configuration)
	aggregator.Warn = generator.Warn
	if documentPath, absoluteError := filepath.Abs(generator.Configuration.OutputFile()); absoluteError == nil {
		aggregator.DocumentPath = documentPath
	}
	return aggregator.Run(writer, rootDirectoryPath)
}

// GenerateFile validates the root and writes the document to the configured output file,
// truncating any previous content. A failed run may leave a partial document behind.
func (generator *DocumentGenerator) GenerateFile() (summary types.OutputSummary, err error) {
	if _, validationError := ValidateRoot(generator.Filesystem, generator.Configuration.RootDirectory()); validationError != nil {
		return types.OutputSummary{}, validationError
	}

	outputPath := generator.Configuration.OutputFile()
	fileHandle, createError := generator.Filesystem.Create(outputPath)
	if createError != nil {
		return types.OutputSummary{}, fmt.Errorf(errorCreateOutputFormat, outputPath, createError)
	}
	defer func() {
		if closeError := fileHandle.Close(); closeError != nil && err == nil {
			err = fmt.Errorf(errorCloseOutputFormat, outputPath, closeError)
		}
	}()

	bufferedWriter := bufio.NewWriter(fileHandle)
	summary, err = generator.Generate(bufferedWriter)
	if err != nil {
		return summary, err
	}
	if flushError := bufferedWriter.Flush(); flushError != nil {
		return summary, fmt.Errorf(errorFlushOutputFormat, outputPath, flushError)
	}
	return summary, nil
}

// ValidateRoot resolves rootDirectoryPath to an absolute path and checks that it names an existing directory.
func ValidateRoot(filesystem afero.Fs, rootDirectoryPath string) (types.ValidatedPath, error) {
	absolutePath, absolutePathError := filepath.Abs(rootDirectoryPath)
	if absolutePathError != nil {
		return types.ValidatedPath{}, fmt.Errorf(errorAbsolutePathFormat, rootDirectoryPath, absolutePathError)
	}
	info, statError := filesystem.Stat(rootDirectoryPath)
	if statError != nil {
		if os.IsNotExist(statError) {
			return types.ValidatedPath{}, fmt.Errorf(errorPathMissingFormat, rootDirectoryPath)
		}
		return types.ValidatedPath{}, fmt.Errorf(errorStatFormat, rootDirectoryPath, statError)
	}
	if !info.IsDir() {
		return types.ValidatedPath{}, fmt.Errorf(errorNotDirectoryFormat, rootDirectoryPath)
	}
	return types.ValidatedPath{AbsolutePath: filepath.Clean(absolutePath), IsDir: true}, nil
}
