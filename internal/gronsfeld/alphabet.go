package gronsfeld

import (
	"fmt"

	kerrors "github.com/PolarWolf314/shifr/internal/errors"
)

// Alphabet is the working alphabet, in order.
const Alphabet = "АБВГДЕЁЖЗИЙКЛМНОПРСТУФХЦЧШЩЪЫЬЭЮЯ"

var (
	letters = []rune(Alphabet)

	// Size is the number of letters in Alphabet and the modulus of the cipher.
	Size = len(letters)

	positions = func() map[rune]int {
		m := make(map[rune]int, len(letters))
		for i, r := range letters {
			m[r] = i
		}
		return m
	}()
)

// Index returns the position of r in Alphabet.
func Index(r rune) (int, error) {
	i, ok := positions[r]
	if !ok {
		return 0, fmt.Errorf("%w: %q", kerrors.ErrNotInAlphabet, r)
	}
	return i, nil
}

// Letter returns the letter at position i, which must be in [0, Size).
func Letter(i int) rune {
	return letters[i]
}

// toIndices maps every rune of s to its alphabet position.
func toIndices(s string) ([]int, error) {
	runes := []rune(s)
	out := make([]int, len(runes))
	for i, r := range runes {
		idx, err := Index(r)
		if err != nil {
			return nil, fmt.Errorf("position %d: %w", i+1, err)
		}
		out[i] = idx
	}
	return out, nil
}

func toLetters(v []int) string {
	out := make([]rune, len(v))
	for i, idx := range v {
		out[i] = Letter(idx)
	}
	return string(out)
}
