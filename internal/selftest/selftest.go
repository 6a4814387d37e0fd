// Package selftest runs encrypt/decrypt round trips against a cipher and
// reports what happened at every step.
package selftest

import (
	"unicode"

	"github.com/PolarWolf314/shifr/internal/cipher"
)

// Case is one round trip to run.
type Case struct {
	Text string
	Key  string

	// Corrupt lowercases the first rune of the cipher text before decrypting it.
	Corrupt bool
}

// Result records the outcome of a Case. Err is set when any step failed;
// CipherText and Decrypted hold whatever was produced before that.
type Result struct {
	Case       Case
	CipherText string
	Decrypted  string
	OK         bool
	Err        error
}

// DefaultCases returns the standard scenarios for a Gronsfeld keyword: a
// clean round trip, a key with digits, an empty key, a text without letters,
// an empty text and a corrupted cipher text.
func DefaultCases(key string) []Case {
	return []Case{
		{Text: "ПРИВЕТ", Key: key},
		{Text: "ПРИВЕТ", Key: "ЭХО123"},
		{Text: "ПРИВЕТ", Key: ""},
		{Text: "123456", Key: key},
		{Text: "", Key: key},
		{Text: "ПРИВЕТ", Key: key, Corrupt: true},
	}
}

// Run executes every case with a fresh cipher from newCipher.
func Run(newCipher cipher.Factory, cases []Case) []Result {
	results := make([]Result, 0, len(cases))
	for _, c := range cases {
		results = append(results, run(newCipher, c))
	}
	return results
}

func run(newCipher cipher.Factory, c Case) Result {
	res := Result{Case: c}

	ciph, err := newCipher(c.Key)
	if err != nil {
		res.Err = err
		return res
	}

	res.CipherText, err = ciph.Encrypt(c.Text)
	if err != nil {
		res.Err = err
		return res
	}

	if c.Corrupt {
		res.CipherText = corrupt(res.CipherText)
	}

	res.Decrypted, err = ciph.Decrypt(res.CipherText)
	if err != nil {
		res.Err = err
		return res
	}

	res.OK = res.Decrypted == c.Text
	return res
}

func corrupt(s string) string {
	runes := []rune(s)
	if len(runes) == 0 {
		return s
	}
	runes[0] = unicode.ToLower(runes[0])
	return string(runes)
}
