package utils

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	kerrors "github.com/PolarWolf314/shifr/internal/errors"
)

// writeTestFile is a helper to write test files with 0644 permissions.
func writeTestFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("Failed to create dir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil { // #nosec G306
		t.Fatalf("Failed to create test file: %v", err)
	}
}

func TestResolveFiles_LiteralFile(t *testing.T) {
	tmpDir := t.TempDir()
	letter := filepath.Join(tmpDir, "letter.txt")
	writeTestFile(t, letter, "ПРИВЕТ")

	files, err := ResolveFiles([]string{"letter.txt"}, tmpDir)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if len(files) != 1 || files[0] != letter {
		t.Errorf("Expected [%s], got: %v", letter, files)
	}
}

func TestResolveFiles_MissingLiteralFile(t *testing.T) {
	if _, err := ResolveFiles([]string{"missing.txt"}, t.TempDir()); err == nil {
		t.Error("Expected error for missing file")
	}
}

func TestResolveFiles_DoubleStar(t *testing.T) {
	tmpDir := t.TempDir()
	writeTestFile(t, filepath.Join(tmpDir, "a.txt"), "А")
	writeTestFile(t, filepath.Join(tmpDir, "notes", "b.txt"), "Б")
	writeTestFile(t, filepath.Join(tmpDir, "notes", "deep", "c.txt"), "В")
	writeTestFile(t, filepath.Join(tmpDir, "notes", "skip.md"), "Г")

	files, err := ResolveFiles([]string{"**/*.txt"}, tmpDir)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if len(files) != 3 {
		t.Fatalf("Expected 3 files, got %d: %v", len(files), files)
	}
	for _, f := range files {
		if filepath.Ext(f) != ".txt" {
			t.Errorf("Unexpected file in results: %s", f)
		}
	}
}

func TestResolveFiles_Deduplicates(t *testing.T) {
	tmpDir := t.TempDir()
	writeTestFile(t, filepath.Join(tmpDir, "a.txt"), "А")

	files, err := ResolveFiles([]string{"a.txt", "*.txt"}, tmpDir)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if len(files) != 1 {
		t.Errorf("Expected 1 file, got: %v", files)
	}
}

func TestResolveFiles_NoMatches(t *testing.T) {
	_, err := ResolveFiles([]string{"**/*.txt"}, t.TempDir())
	if !errors.Is(err, kerrors.ErrNoFilesFound) {
		t.Errorf("Expected ErrNoFilesFound, got: %v", err)
	}
}

func TestFormatPaths(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	base := t.TempDir()

	got := FormatPaths([]string{
		filepath.Join(base, "a.txt"),
		filepath.Join(base, "notes", "b.txt"),
		"/elsewhere/c.txt",
	}, base)

	want := "\n    - a.txt\n    - " + filepath.Join("notes", "b.txt") + "\n    - /elsewhere/c.txt\n"
	if got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}
