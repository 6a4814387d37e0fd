package gronsfeld

import (
	"fmt"
	"unicode"

	kerrors "github.com/PolarWolf314/shifr/internal/errors"
	"github.com/PolarWolf314/shifr/internal/text"
	"golang.org/x/text/unicode/norm"
)

// Cipher is a Gronsfeld cipher with a fixed key.
type Cipher struct {
	key []int
}

// New builds a Cipher from a keyword. The keyword must be non-empty and made
// of letters; lowercase letters are upper cased before the lookup.
func New(keyword string) (*Cipher, error) {
	if keyword == "" {
		return nil, kerrors.ErrEmptyKey
	}

	valid := []rune(norm.NFC.String(keyword))
	for i, r := range valid {
		if !unicode.IsLetter(r) {
			return nil, fmt.Errorf("%w: %q at position %d is not a letter", kerrors.ErrInvalidKey, r, i+1)
		}
		if unicode.IsLower(r) {
			valid[i] = unicode.ToUpper(r)
		}
	}

	key, err := toIndices(string(valid))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", kerrors.ErrInvalidKey, err)
	}
	return &Cipher{key: key}, nil
}

// Key returns a copy of the shift sequence derived from the keyword.
func (c *Cipher) Key() []int {
	return append([]int(nil), c.key...)
}

// Encrypt normalizes open and shifts each letter forward by the repeating key.
func (c *Cipher) Encrypt(open string) (string, error) {
	clean, err := text.NormalizeOpenText(open)
	if err != nil {
		return "", err
	}

	work, err := toIndices(clean)
	if err != nil {
		return "", fmt.Errorf("open text at %w", err)
	}
	for i := range work {
		work[i] = (work[i] + c.key[i%len(c.key)]) % Size
	}
	return toLetters(work), nil
}

// Decrypt shifts each letter of cipherText back by the repeating key.
func (c *Cipher) Decrypt(cipherText string) (string, error) {
	clean, err := text.ValidateCipherText(cipherText)
	if err != nil {
		return "", err
	}

	work, err := toIndices(clean)
	if err != nil {
		return "", fmt.Errorf("%w: %w", kerrors.ErrInvalidCipherText, err)
	}
	for i := range work {
		work[i] = (work[i] + Size - c.key[i%len(c.key)]) % Size
	}
	return toLetters(work), nil
}
