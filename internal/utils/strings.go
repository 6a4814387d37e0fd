package utils

import (
	"path/filepath"
	"strings"

	"github.com/PolarWolf314/shifr/internal/ui"
)

// FormatPaths formats a slice of paths into a readable list. Paths under
// baseDir are shown relative to it.
func FormatPaths(paths []string, baseDir string) string {
	var b strings.Builder
	b.WriteString("\n")
	for _, path := range paths {
		if rel, err := filepath.Rel(baseDir, path); err == nil && !strings.HasPrefix(rel, "..") {
			path = rel
		}
		b.WriteString("    - ")
		b.WriteString(ui.Path.Sprint(path))
		b.WriteString("\n")
	}
	return b.String()
}
