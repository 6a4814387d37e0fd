package utils

import (
	"fmt"
	"io"
	"strings"

	kerrors "github.com/PolarWolf314/shifr/internal/errors"
)

// ReadInput reads all content from r, typically a command's stdin.
// Returns ErrNoInput if r is a terminal (nothing piped) or yields only
// whitespace. A single trailing newline is dropped.
func ReadInput(r io.Reader) (string, error) {
	if IsTerminalReader(r) {
		return "", fmt.Errorf("%w (hint: pass the text as an argument or pipe it in)", kerrors.ErrNoInput)
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("failed to read from stdin: %w", err)
	}

	if strings.TrimSpace(string(data)) == "" {
		return "", kerrors.ErrNoInput
	}

	return TrimNewline(string(data)), nil
}

// TrimNewline removes one trailing "\n" or "\r\n".
func TrimNewline(s string) string {
	s = strings.TrimSuffix(s, "\n")
	return strings.TrimSuffix(s, "\r")
}
