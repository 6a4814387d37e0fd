// Package text prepares input for the classical ciphers.
//
// Two entry points cover both directions of every cipher:
//
//   - NormalizeOpenText filters plain text down to letters and upper cases them.
//   - ValidateCipherText accepts cipher text only if it is made of uppercase letters.
//
// NormalizeOpenText composes its input to Unicode NFC first, so a letter typed
// as a base rune plus combining mark (И followed by U+0306) becomes the single
// precomposed letter (Й) instead of a letter and a dropped mark.
// ValidateCipherText checks its input rune by rune as given; a combining mark
// makes the cipher text invalid.
package text
