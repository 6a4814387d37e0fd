package route

import (
	"fmt"
	"strconv"

	kerrors "github.com/PolarWolf314/shifr/internal/errors"
	"github.com/PolarWolf314/shifr/internal/text"
)

// Cipher is a route transposition cipher keyed by a column count.
type Cipher struct {
	columns int
}

// New returns a Cipher for the given key, which must be a positive decimal integer.
func New(key string) (*Cipher, error) {
	columns, err := parseKey(key)
	if err != nil {
		return nil, err
	}
	return &Cipher{columns: columns}, nil
}

// SetKey replaces the column count. On error the previous key is kept.
func (c *Cipher) SetKey(key string) error {
	columns, err := parseKey(key)
	if err != nil {
		return err
	}
	c.columns = columns
	return nil
}

// Key returns the column count in decimal.
func (c *Cipher) Key() string {
	return strconv.Itoa(c.columns)
}

// Columns returns the column count.
func (c *Cipher) Columns() int {
	return c.columns
}

// Encrypt normalizes open and reads it out of the grid right to left, top to bottom.
func (c *Cipher) Encrypt(open string) (string, error) {
	clean, err := text.NormalizeOpenText(open)
	if err != nil {
		return "", err
	}

	src := []rune(clean)
	out := make([]rune, 0, len(src))
	c.walk(len(src), func(pos int) {
		out = append(out, src[pos])
	})
	return string(out), nil
}

// Decrypt places the runes of cipherText back into the grid along the encryption route.
func (c *Cipher) Decrypt(cipherText string) (string, error) {
	clean, err := text.ValidateCipherText(cipherText)
	if err != nil {
		return "", err
	}

	src := []rune(clean)
	out := make([]rune, len(src))
	index := 0
	c.walk(len(src), func(pos int) {
		if index < len(src) {
			out[pos] = src[index]
			index++
		}
	})
	return string(out), nil
}

// walk calls visit with the text position of every existing grid cell, in route order.
// Columns at or past n hold no cells, so the walk starts at min(columns, n)-1.
func (c *Cipher) walk(n int, visit func(pos int)) {
	if n == 0 {
		return
	}
	rows := (n-1)/c.columns + 1
	first := min(c.columns, n) - 1
	for col := first; col >= 0; col-- {
		for row := 0; row < rows; row++ {
			pos := row*c.columns + col
			if pos < n {
				visit(pos)
			}
		}
	}
}

func parseKey(key string) (int, error) {
	if key == "" {
		return 0, kerrors.ErrEmptyKey
	}

	for _, r := range key {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("%w: %q must contain only digits", kerrors.ErrInvalidKey, key)
		}
	}

	columns, err := strconv.Atoi(key)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is out of range", kerrors.ErrInvalidKey, key)
	}
	if columns <= 0 {
		return 0, fmt.Errorf("%w: got %d", kerrors.ErrNonPositiveKey, columns)
	}
	return columns, nil
}
