package gronsfeld

import (
	"strings"
	"testing"

	kerrors "github.com/PolarWolf314/shifr/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlphabet(t *testing.T) {
	assert.Equal(t, 33, Size)

	seen := make(map[rune]bool)
	for i, r := range []rune(Alphabet) {
		assert.False(t, seen[r], "duplicate letter %q", r)
		seen[r] = true

		idx, err := Index(r)
		require.NoError(t, err)
		assert.Equal(t, i, idx)
		assert.Equal(t, r, Letter(i))
	}

	_, err := Index('Q')
	assert.ErrorIs(t, err, kerrors.ErrNotInAlphabet)
}

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		keyword string
		want    []int
	}{
		{"uppercase", "ВАЯ", []int{2, 0, 32}},
		{"lowercase is upper cased", "ваЯ", []int{2, 0, 32}},
		{"yo", "ёж", []int{6, 7}},
		{"single letter", "К", []int{11}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := New(tt.keyword)
			require.NoError(t, err)
			assert.Equal(t, tt.want, c.Key())
		})
	}
}

func TestNew_Rejects(t *testing.T) {
	tests := []struct {
		name    string
		keyword string
		want    []error
	}{
		{"empty", "", []error{kerrors.ErrEmptyKey}},
		{"digits", "ЭХО123", []error{kerrors.ErrInvalidKey}},
		{"space", "ЭХО ЭХО", []error{kerrors.ErrInvalidKey}},
		{"punctuation", "ЭХО!", []error{kerrors.ErrInvalidKey}},
		{"latin letters", "KEY", []error{kerrors.ErrInvalidKey, kerrors.ErrNotInAlphabet}},
		{"ukrainian letter", "ЇЖАК", []error{kerrors.ErrInvalidKey, kerrors.ErrNotInAlphabet}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := New(tt.keyword)
			assert.Nil(t, c)
			for _, want := range tt.want {
				assert.ErrorIs(t, err, want)
			}
		})
	}
}

func TestKey_ReturnsCopy(t *testing.T) {
	c, err := New("ВАЯ")
	require.NoError(t, err)

	k := c.Key()
	k[0] = 99
	assert.Equal(t, []int{2, 0, 32}, c.Key())
}

func TestEncrypt(t *testing.T) {
	tests := []struct {
		name    string
		keyword string
		in      string
		want    string
	}{
		{"key repeats and wraps", "ВАЯ", "ПРИВЕТ", "СРЗДЕС"},
		{"input is normalized", "ВАЯ", "при-вет!", "СРЗДЕС"},
		{"zero shift is identity", "А", "ПРИВЕТ", "ПРИВЕТ"},
		{"wraps past the last letter", "Б", "ЯЮЁЕ", "АЯЖЁ"},
		{"key longer than text", "БББББББББ", "АБ", "БВ"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := New(tt.keyword)
			require.NoError(t, err)

			got, err := c.Encrypt(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEncrypt_Rejects(t *testing.T) {
	c, err := New("КЛЮЧ")
	require.NoError(t, err)

	_, err = c.Encrypt("")
	assert.ErrorIs(t, err, kerrors.ErrEmptyText)

	_, err = c.Encrypt("123456")
	assert.ErrorIs(t, err, kerrors.ErrEmptyText)

	_, err = c.Encrypt("Привет, world")
	assert.ErrorIs(t, err, kerrors.ErrNotInAlphabet)
}

func TestDecrypt(t *testing.T) {
	c, err := New("ВАЯ")
	require.NoError(t, err)

	got, err := c.Decrypt("СРЗДЕС")
	require.NoError(t, err)
	assert.Equal(t, "ПРИВЕТ", got)
}

func TestDecrypt_Rejects(t *testing.T) {
	c, err := New("КЛЮЧ")
	require.NoError(t, err)

	tests := []struct {
		name string
		in   string
		want []error
	}{
		{"empty", "", []error{kerrors.ErrEmptyText}},
		{"lowercase", "сРЗДЕС", []error{kerrors.ErrInvalidCipherText}},
		{"digit", "СРЗ1", []error{kerrors.ErrInvalidCipherText}},
		{"punctuation", "СРЗ.", []error{kerrors.ErrInvalidCipherText}},
		{"uppercase latin", "SRZ", []error{kerrors.ErrInvalidCipherText, kerrors.ErrNotInAlphabet}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := c.Decrypt(tt.in)
			for _, want := range tt.want {
				assert.ErrorIs(t, err, want)
			}
		})
	}
}

func TestOutputStaysInAlphabet(t *testing.T) {
	c, err := New("ЯЯЯЭЮ")
	require.NoError(t, err)

	enc, err := c.Encrypt(Alphabet + Alphabet)
	require.NoError(t, err)
	for _, r := range enc {
		_, err := Index(r)
		assert.NoError(t, err)
	}

	dec, err := c.Decrypt(Alphabet)
	require.NoError(t, err)
	for _, r := range dec {
		_, err := Index(r)
		assert.NoError(t, err)
	}
}

func TestRoundTrip(t *testing.T) {
	keywords := []string{"А", "Я", "ВАЯ", "КЛЮЧ", "ШИФРГРОНСФЕЛЬДА"}
	texts := []string{
		"Я",
		"ПРИВЕТ",
		Alphabet,
		"СЪЕШЬЖЕЕЩЁЭТИХМЯГКИХФРАНЦУЗСКИХБУЛОК",
		strings.Repeat("ЁЪ", 40),
	}

	for _, kw := range keywords {
		c, err := New(kw)
		require.NoError(t, err)

		for _, in := range texts {
			enc, err := c.Encrypt(in)
			require.NoError(t, err)
			assert.Len(t, []rune(enc), len([]rune(in)))

			dec, err := c.Decrypt(enc)
			require.NoError(t, err)
			assert.Equal(t, in, dec, "keyword %s", kw)
		}
	}
}
