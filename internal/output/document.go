// Package output writes the fixed text layout of a project document.
package output

import (
	"fmt"
	"io"

	"github.com/temirov/textify/internal/types"
	"github.com/temirov/textify/internal/utils"
)

const (
	projectStructureHeader = "# Project Structure\n\n```text\n"
	projectStructureFooter = "```\n\n---\n\n"
	fileHeadingFormat      = "## File: %s\n"
	fenceOpeningFormat     = "```%s\n"
	fenceClosing           = "\n```\n\n"
	completionFormat       = "Done! Saved to %s"

	errorWriteStructureFormat = "writing project structure: %w"
	errorWriteFileBlockFormat = "writing file block %s: %w"
)

// WriteProjectStructure writes the document heading followed by the fenced tree.
// tree is expected to hold newline-terminated lines.
func WriteProjectStructure(writer io.Writer, tree string) error {
	if _, err := io.WriteString(writer, projectStructureHeader+tree+projectStructureFooter); err != nil {
		return fmt.Errorf(errorWriteStructureFormat, err)
	}
	return nil
}

// WriteFileBlock writes one file heading and its fenced content.
func WriteFileBlock(writer io.Writer, file types.FileOutput) error {
	fenceTag := file.FenceTag
	if fenceTag == "" {
		fenceTag = types.DefaultFenceTag
	}
	block := fmt.Sprintf(fileHeadingFormat, file.RelativePath) +
		fmt.Sprintf(fenceOpeningFormat, fenceTag) +
		file.Content +
		fenceClosing
	if _, err := io.WriteString(writer, block); err != nil {
		return fmt.Errorf(errorWriteFileBlockFormat, file.RelativePath, err)
	}
	return nil
}

// FormatCompletionLine returns the message printed once a document has been saved.
func FormatCompletionLine(outputPath string) string {
	return fmt.Sprintf(completionFormat, outputPath)
}

// FormatSummaryLine describes a generated document in one line.
func FormatSummaryLine(summary types.OutputSummary) string {
	label := "files"
	if summary.TotalFiles == 1 {
		label = "file"
	}
	extra := ""
	if summary.Placeholders > 0 {
		extra = fmt.Sprintf(", %d unreadable", summary.Placeholders)
	}
	if summary.TotalTokens > 0 {
		extra += fmt.Sprintf(", %d tokens", summary.TotalTokens)
	}
	modelSuffix := ""
	if summary.Model != "" {
		modelSuffix = fmt.Sprintf(" (model: %s)", summary.Model)
	}
	return fmt.Sprintf("Summary: %d %s, %s%s%s", summary.TotalFiles, label, utils.FormatFileSize(summary.TotalBytes), extra, modelSuffix)
}
