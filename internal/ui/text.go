package ui

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

// Formatter applies semantic formatting to text.
type Formatter struct {
	color  *color.Color
	prefix string
	suffix string
}

// Sprint formats the arguments and returns the resulting string.
func (f Formatter) Sprint(a ...interface{}) string {
	return f.decorate(fmt.Sprint(a...))
}

// Sprintf formats according to a format specifier and returns the resulting string.
func (f Formatter) Sprintf(format string, a ...interface{}) string {
	return f.decorate(fmt.Sprintf(format, a...))
}

func (f Formatter) decorate(text string) string {
	if noColor() {
		return f.prefix + text + f.suffix
	}
	return f.color.Sprint(text)
}

// EnsureNewline ensures the string ends with a newline character.
func EnsureNewline(s string) string {
	if len(s) == 0 || s[len(s)-1] != '\n' {
		return s + "\n"
	}
	return s
}

// noColor returns true if color output should be disabled.
func noColor() bool {
	if _, exists := os.LookupEnv("NO_COLOR"); exists {
		return true
	}
	return color.NoColor
}

var (
	// Key formats cipher keys. Magenta, [brackets] without color.
	Key = Formatter{color.New(color.FgMagenta, color.Bold), "[", "]"}

	// OpenText formats plain text. Green, undecorated without color.
	OpenText = Formatter{color.New(color.FgGreen), "", ""}

	// CipherText formats encrypted text. Bold yellow, undecorated without color.
	CipherText = Formatter{color.New(color.FgYellow, color.Bold), "", ""}

	// Command formats runnable commands. Yellow, `backticks` without color.
	Command = Formatter{color.New(color.FgYellow), "`", "`"}

	// Path formats file paths. Yellow, undecorated without color.
	Path = Formatter{color.New(color.FgYellow), "", ""}

	// Success formats success indicators. Green.
	Success = Formatter{color.New(color.FgGreen), "", ""}

	// Error formats error indicators and messages. Red.
	Error = Formatter{color.New(color.FgRed), "", ""}

	// Info formats hints and menu numbers. Cyan.
	Info = Formatter{color.New(color.FgCyan), "", ""}

	// Muted formats secondary details. Gray, (parentheses) without color.
	Muted = Formatter{color.New(color.FgHiBlack), "(", ")"}
)
