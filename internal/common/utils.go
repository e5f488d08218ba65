package common

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// supported source file extensions.
var textExtensions = map[string]bool{
	".txt": true,
	".md":  true,
}

// ReadTextFile loads a source document from disk. Only plain-text formats
// are accepted; anything else needs conversion before analysis.
func ReadTextFile(path string) (string, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if !textExtensions[ext] {
		return "", fmt.Errorf("unsupported file type %q (only .txt and .md are supported)", ext)
	}

	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}

	return string(data), nil
}

// TitleFromPath derives a book title from a file path.
func TitleFromPath(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// Truncate shortens s to max runes for log lines.
func Truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}
