package common

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestReadTextFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "book.txt")
	if err := os.WriteFile(path, []byte("chapter text"), 0644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	got, err := ReadTextFile(path)
	if err != nil {
		t.Fatalf("ReadTextFile() error = %v", err)
	}
	if got != "chapter text" {
		t.Errorf("ReadTextFile() = %q, want %q", got, "chapter text")
	}
}

func TestReadTextFile_UnsupportedExtension(t *testing.T) {
	for _, name := range []string{"book.pdf", "book.epub", "book"} {
		_, err := ReadTextFile(filepath.Join(t.TempDir(), name))
		if err == nil {
			t.Errorf("ReadTextFile(%q) error = nil, want unsupported-type error", name)
		}
		if err != nil && !strings.Contains(err.Error(), "unsupported file type") {
			t.Errorf("ReadTextFile(%q) error = %v, want unsupported-type error", name, err)
		}
	}
}

func TestReadTextFile_Missing(t *testing.T) {
	_, err := ReadTextFile(filepath.Join(t.TempDir(), "gone.md"))
	if err == nil {
		t.Error("ReadTextFile() on missing file returned nil error")
	}
}

func TestTitleFromPath(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"books/deep-work.txt", "deep-work"},
		{"/abs/path/Sapiens.md", "Sapiens"},
		{"plain", "plain"},
	}

	for _, tt := range tests {
		if got := TitleFromPath(tt.path); got != tt.want {
			t.Errorf("TitleFromPath(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestTruncate(t *testing.T) {
	if got := Truncate("short", 10); got != "short" {
		t.Errorf("Truncate() = %q, want unchanged input", got)
	}
	if got := Truncate("a longer sentence", 8); got != "a longer..." {
		t.Errorf("Truncate() = %q, want %q", got, "a longer...")
	}
}
