// Package errors provides typed error values for the shifr application.
//
// Using sentinel errors allows callers to handle specific error conditions
// programmatically with errors.Is() rather than string matching. The cipher
// packages wrap these values with context about the offending input, so the
// message shown to the user stays readable while the kind stays checkable.
//
// # Error Categories
//
// Errors are grouped by category:
//
//   - Key errors: the key cannot be used (ErrEmptyKey, ErrInvalidKey, ErrNonPositiveKey)
//   - Text errors: the text cannot be processed (ErrEmptyText, ErrInvalidCipherText)
//   - Alphabet errors: a letter has no place in the working alphabet (ErrNotInAlphabet)
//   - Input errors: the CLI could not find anything to process (ErrNoInput, ErrNoFilesFound)
//
// # Usage
//
// Return errors from internal packages:
//
//	if key == "" {
//	    return nil, errors.ErrEmptyKey
//	}
//
// Handle errors in the CLI layer:
//
//	out, err := c.Decrypt(text)
//	if errors.Is(err, kerrors.ErrInvalidCipherText) {
//	    // Show user-friendly message
//	}
//
// Wrap errors with additional context:
//
//	return fmt.Errorf("%w: %q at position %d", errors.ErrInvalidCipherText, r, i)
package errors
