// Package utils contains general helper functions used across textify.
package utils

import (
	"path/filepath"
	"strings"
)

// DeduplicateStrings removes empty and duplicate values while preserving the order of first occurrence.
func DeduplicateStrings(values []string) []string {
	encounteredValues := make(map[string]struct{}, len(values))
	result := make([]string, 0, len(values))
	for _, value := range values {
		trimmedValue := strings.TrimSpace(value)
		if trimmedValue == "" {
			continue
		}
		if _, exists := encounteredValues[trimmedValue]; exists {
			continue
		}
		encounteredValues[trimmedValue] = struct{}{}
		result = append(result, trimmedValue)
	}
	return result
}

// RelativeSlashPath returns fullPath relative to root using forward slashes.
// The cleaned fullPath is returned when no relative form exists, and "." when both name the same directory.
func RelativeSlashPath(fullPath, root string) string {
	cleanPath := filepath.Clean(fullPath)
	cleanRoot := filepath.Clean(root)
	if cleanPath == cleanRoot {
		return "."
	}
	relativePath, relativeError := filepath.Rel(cleanRoot, cleanPath)
	if relativeError != nil {
		return filepath.ToSlash(cleanPath)
	}
	return filepath.ToSlash(relativePath)
}
