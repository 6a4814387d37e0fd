// Package gronsfeld implements the Gronsfeld cipher over the 33-letter
// Russian alphabet.
//
// The keyword is turned into a sequence of shifts, one per letter, equal to
// the letter's position in Alphabet (А is 0, Я is 32). Each letter of the
// open text is shifted forward by the next shift of the key, which repeats
// cyclically, modulo the alphabet size:
//
//	c[i] = (p[i] + k[i mod len(k)]) mod 33
//	p[i] = (c[i] + 33 - k[i mod len(k)]) mod 33
//
// Validation is letter based rather than alphabet based: a keyword or text
// letter is accepted by the generic Unicode tests and only then looked up in
// the alphabet. Letters that pass but have no position (Latin, Ukrainian Ї,
// etc.) fail with ErrNotInAlphabet.
//
// A Cipher is immutable and safe for concurrent use.
package gronsfeld
