package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	kerrors "github.com/PolarWolf314/shifr/internal/errors"
	"github.com/bmatcuk/doublestar/v4"
)

// ResolveFiles expands patterns relative to baseDir into a sorted,
// de-duplicated list of regular files. Patterns may be literal paths or
// doublestar globs (`**` matches any number of directories).
//
// Returns ErrNoFilesFound if nothing matched.
func ResolveFiles(patterns []string, baseDir string) ([]string, error) {
	seen := make(map[string]bool)
	var files []string

	for _, pattern := range patterns {
		matches, err := resolvePattern(pattern, baseDir)
		if err != nil {
			return nil, err
		}
		for _, m := range matches {
			if !seen[m] {
				seen[m] = true
				files = append(files, m)
			}
		}
	}

	if len(files) == 0 {
		return nil, kerrors.ErrNoFilesFound
	}

	sort.Strings(files)
	return files, nil
}

func resolvePattern(pattern, baseDir string) ([]string, error) {
	absPattern := pattern
	if !filepath.IsAbs(pattern) {
		absPattern = filepath.Join(baseDir, pattern)
	}

	if !isGlobPattern(pattern) {
		info, err := os.Stat(absPattern)
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("file not found: %s", pattern)
		}
		if err != nil {
			return nil, err
		}
		if info.IsDir() {
			return nil, fmt.Errorf("%s is a directory", pattern)
		}
		return []string{absPattern}, nil
	}

	matches, err := doublestar.FilepathGlob(absPattern)
	if err != nil {
		return nil, fmt.Errorf("invalid glob pattern %q: %w", pattern, err)
	}

	var filtered []string
	for _, m := range matches {
		info, err := os.Stat(m)
		if err != nil || !info.Mode().IsRegular() {
			continue
		}
		filtered = append(filtered, m)
	}
	return filtered, nil
}

func isGlobPattern(pattern string) bool {
	for _, c := range pattern {
		switch c {
		case '*', '?', '[', '{':
			return true
		}
	}
	return false
}
