package errors

import "errors"

// Key errors indicate the supplied key cannot be used to build a cipher.
var (
	// ErrEmptyKey indicates no key was supplied.
	ErrEmptyKey = errors.New("empty key")

	// ErrInvalidKey indicates the key contains characters the cipher does not accept.
	ErrInvalidKey = errors.New("invalid key")

	// ErrNonPositiveKey indicates a numeric key that is zero or negative.
	ErrNonPositiveKey = errors.New("key must be greater than 0")
)

// Text errors indicate the input text cannot be encrypted or decrypted.
var (
	// ErrEmptyText indicates the text is empty, or empty once non-letters are removed.
	ErrEmptyText = errors.New("empty text")

	// ErrInvalidCipherText indicates cipher text containing anything but uppercase letters.
	ErrInvalidCipherText = errors.New("invalid cipher text: only uppercase letters are allowed")
)

// Alphabet errors indicate a letter that passed validation but is missing from
// the working alphabet of a cipher.
var (
	// ErrNotInAlphabet indicates a letter outside the cipher's alphabet.
	ErrNotInAlphabet = errors.New("letter is not in the alphabet")
)

// Input errors indicate the CLI could not obtain anything to process.
var (
	// ErrNoInput indicates no text was given via arguments, files or stdin.
	ErrNoInput = errors.New("no input text provided")

	// ErrNoFilesFound indicates no files matched the provided patterns.
	ErrNoFilesFound = errors.New("no matching files found")
)
