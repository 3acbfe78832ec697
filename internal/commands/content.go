package commands

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"

	"github.com/temirov/textify/internal/config"
	"github.com/temirov/textify/internal/output"
	"github.com/temirov/textify/internal/types"
	"github.com/temirov/textify/internal/utils"
)

// readErrorPlaceholderFormat replaces the content of a file that could not be read as text.
const readErrorPlaceholderFormat = "// Error reading file: %v"

var errNilContentHandler = errors.New("content handler is nil")

// ContentAggregator collects the content of allow-listed files below a root directory.
type ContentAggregator struct {
	Filesystem    afero.Fs
	Configuration config.Configuration
	// Warn, when set, is called for every file replaced by a read-error placeholder.
	Warn func(filePath string, readError error)
	// DocumentPath, when set, is the absolute path of the document being written. It is never aggregated.
	DocumentPath string
}

// NewContentAggregator constructs a ContentAggregator over filesystem.
func NewContentAggregator(filesystem afero.Fs, configuration config.Configuration) *ContentAggregator {
	return &ContentAggregator{Filesystem: filesystem, Configuration: configuration}
}

// Run writes one file block per qualifying file below rootDirectoryPath and returns the aggregate summary.
func (aggregator *ContentAggregator) Run(writer io.Writer, rootDirectoryPath string) (types.OutputSummary, error) {
	var summary types.OutputSummary
	streamError := aggregator.StreamContent(rootDirectoryPath, func(file types.FileOutput) error {
		if writeError := output.WriteFileBlock(writer, file); writeError != nil {
			return writeError
		}
		summary.Add(file)
		return nil
	})
	return summary, streamError
}

// StreamContent walks rootDirectoryPath top-down and passes every qualifying file to handler.
// Within a directory the files come first in name order, then each non-excluded subdirectory
// in name order. Listing errors and handler errors stop the walk; read errors do not.
func (aggregator *ContentAggregator) StreamContent(rootDirectoryPath string, handler func(types.FileOutput) error) error {
	if handler == nil {
		return errNilContentHandler
	}
	return aggregator.walkDirectory(rootDirectoryPath, rootDirectoryPath, handler)
}

func (aggregator *ContentAggregator) walkDirectory(rootDirectoryPath string, directoryPath string, handler func(types.FileOutput) error) error {
	entries, listError := listDirectory(aggregator.Filesystem, directoryPath)
	if listError != nil {
		return fmt.Errorf(errorReadDirectoryFormat, directoryPath, listError)
	}

	var subdirectoryPaths []string
	for _, entry := range entries {
		entryPath := filepath.Join(directoryPath, entry.Name())
		if resolvesToDirectory(aggregator.Filesystem, entryPath, entry) {
			if !isSymbolicLink(entry) && !aggregator.Configuration.IsExcludedDirectory(entry.Name()) {
				subdirectoryPaths = append(subdirectoryPaths, entryPath)
			}
			continue
		}
		if !aggregator.Configuration.ShouldAggregate(entry.Name()) || aggregator.isDocument(entryPath) {
			continue
		}
		if handlerError := handler(aggregator.inspectFile(rootDirectoryPath, entryPath)); handlerError != nil {
			return handlerError
		}
	}

	for _, subdirectoryPath := range subdirectoryPaths {
		if walkError := aggregator.walkDirectory(rootDirectoryPath, subdirectoryPath, handler); walkError != nil {
			return walkError
		}
	}
	return nil
}

func (aggregator *ContentAggregator) isDocument(filePath string) bool {
	if aggregator.DocumentPath == "" {
		return false
	}
	absolutePath, absoluteError := filepath.Abs(filePath)
	return absoluteError == nil && absolutePath == filepath.Clean(aggregator.DocumentPath)
}

func (aggregator *ContentAggregator) inspectFile(rootDirectoryPath string, filePath string) types.FileOutput {
	file := types.FileOutput{
		RelativePath: utils.RelativeSlashPath(filePath, rootDirectoryPath),
		FenceTag:     FenceTag(filepath.Base(filePath)),
	}
	content, readError := readTextFile(aggregator.Filesystem, filePath)
	if readError != nil {
		if aggregator.Warn != nil {
			aggregator.Warn(filePath, readError)
		}
		content = fmt.Sprintf(readErrorPlaceholderFormat, readError)
		file.Placeholder = true
	}
	file.Content = content
	file.SizeBytes = int64(len(content))
	return file
}

// readTextFile reads filePath as UTF-8, failing on the first invalid byte sequence.
func readTextFile(filesystem afero.Fs, filePath string) (string, error) {
	fileHandle, openError := filesystem.Open(filePath)
	if openError != nil {
		return "", openError
	}
	defer fileHandle.Close()

	data, readError := io.ReadAll(transform.NewReader(fileHandle, encoding.UTF8Validator))
	if readError != nil {
		return "", fmt.Errorf("%s: %w", filePath, readError)
	}
	return string(data), nil
}

// FenceTag returns the label of the fenced block for a file named name: its extension without the
// separator, or types.DefaultFenceTag when there is none. Leading dots of hidden files are not separators.
func FenceTag(name string) string {
	extension := strings.TrimPrefix(filepath.Ext(strings.TrimLeft(name, ".")), ".")
	if extension == "" {
		return types.DefaultFenceTag
	}
	return extension
}
