package utils

import (
	"io"
	"os"

	"golang.org/x/term"
)

// IsTerminalWriter returns true if w is an *os.File attached to a terminal.
// Buffers and pipes, as used in tests and scripts, are never terminals.
func IsTerminalWriter(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// IsTerminalReader returns true if r is an *os.File attached to a terminal.
func IsTerminalReader(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
