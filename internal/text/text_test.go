package text

import (
	"testing"

	kerrors "github.com/PolarWolf314/shifr/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeOpenText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"already normalized", "ПРИВЕТ", "ПРИВЕТ"},
		{"lowercase is upper cased", "привет", "ПРИВЕТ"},
		{"punctuation and spaces dropped", "При-вет, мир!", "ПРИВЕТМИР"},
		{"digits dropped", "а1б2в3", "АБВ"},
		{"yo is kept", "ёлка", "ЁЛКА"},
		{"latin letters are letters too", "Hello, World", "HELLOWORLD"},
		{"decomposed short i is composed", "\u0418\u0306", "Й"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeOpenText(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeOpenText_Idempotent(t *testing.T) {
	for _, in := range []string{"Съешь же ещё этих мягких французских булок", "abc DEF", "ёЁ"} {
		once, err := NormalizeOpenText(in)
		require.NoError(t, err)

		twice, err := NormalizeOpenText(once)
		require.NoError(t, err)
		assert.Equal(t, once, twice)
	}
}

func TestNormalizeOpenText_Empty(t *testing.T) {
	for _, in := range []string{"", "123456", " ,.!? ", "\t\n"} {
		_, err := NormalizeOpenText(in)
		assert.ErrorIs(t, err, kerrors.ErrEmptyText, "input %q", in)
	}
}

func TestValidateCipherText(t *testing.T) {
	got, err := ValidateCipherText("ТЕВИРП")
	require.NoError(t, err)
	assert.Equal(t, "ТЕВИРП", got)

	got, err = ValidateCipherText("\u0419")
	require.NoError(t, err)
	assert.Equal(t, "Й", got)
}

func TestValidateCipherText_Rejects(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want error
	}{
		{"empty", "", kerrors.ErrEmptyText},
		{"lowercase letter", "ПРИВЕт", kerrors.ErrInvalidCipherText},
		{"digit", "ПРИ1ВЕТ", kerrors.ErrInvalidCipherText},
		{"space", "ПРИ ВЕТ", kerrors.ErrInvalidCipherText},
		{"punctuation", "ПРИВЕТ!", kerrors.ErrInvalidCipherText},
		{"combining mark", "\u0418\u0306", kerrors.ErrInvalidCipherText},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ValidateCipherText(tt.in)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}
