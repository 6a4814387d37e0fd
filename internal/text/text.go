package text

import (
	"fmt"
	"strings"
	"unicode"

	kerrors "github.com/PolarWolf314/shifr/internal/errors"
	"golang.org/x/text/unicode/norm"
)

// NormalizeOpenText keeps only the letters of s, upper casing lowercase ones.
// Digits, punctuation and whitespace are dropped. Returns ErrEmptyText when
// nothing is left.
func NormalizeOpenText(s string) (string, error) {
	var b strings.Builder
	for _, r := range norm.NFC.String(s) {
		if !unicode.IsLetter(r) {
			continue
		}
		if unicode.IsLower(r) {
			r = unicode.ToUpper(r)
		}
		b.WriteRune(r)
	}

	if b.Len() == 0 {
		return "", fmt.Errorf("%w: no letters in open text", kerrors.ErrEmptyText)
	}
	return b.String(), nil
}

// ValidateCipherText returns s unchanged if it is non-empty and every rune is
// an uppercase letter. Nothing is filtered or composed: a combining mark is
// not a letter and is rejected.
func ValidateCipherText(s string) (string, error) {
	if s == "" {
		return "", fmt.Errorf("%w: cipher text is empty", kerrors.ErrEmptyText)
	}

	for i, r := range []rune(s) {
		if !unicode.IsUpper(r) {
			return "", fmt.Errorf("%w: %q at position %d", kerrors.ErrInvalidCipherText, r, i+1)
		}
	}
	return s, nil
}
