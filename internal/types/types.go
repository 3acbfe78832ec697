// Package types defines the data structures shared across textify packages.
package types

// DefaultFenceTag labels fenced blocks for files without an extension.
const DefaultFenceTag = "text"

// ValidatedPath is an absolute input path that already passed existence checks.
type ValidatedPath struct {
	AbsolutePath string
	IsDir        bool
}

// FileOutput represents one file block appended to the project document.
type FileOutput struct {
	RelativePath string
	FenceTag     string
	Content      string
	SizeBytes    int64
	Placeholder  bool
}

// OutputSummary captures aggregate information about a generated document.
type OutputSummary struct {
	TotalFiles   int
	TotalBytes   int64
	Placeholders int
	TotalTokens  int
	Model        string
}

// Add accounts for one written file block.
func (summary *OutputSummary) Add(file FileOutput) {
	summary.TotalFiles++
	summary.TotalBytes += file.SizeBytes
	if file.Placeholder {
		summary.Placeholders++
	}
}
