// Package route implements a route (columnar) transposition cipher.
//
// The key is the number of columns of a grid. Encryption writes the
// normalized open text into the grid row by row, left to right, and reads it
// back column by column from the rightmost column to the leftmost, top to
// bottom within each column. The last row is not padded: cells past the end
// of the text simply do not exist and are skipped on both passes.
//
// For key 3 and the text ПРИВЕТПРИВЕТ the grid is
//
//	П Р И
//	В Е Т
//	П Р И
//	В Е Т
//
// and the cipher text is ИТИТ РЕРЕ ПВПВ (without the spaces).
//
// Decryption walks the same route and puts every consumed cipher rune back
// at its grid position. No consistency check is made between the cipher text
// length and the key, so any uppercase text decrypts to some permutation.
//
// A Cipher is not safe for concurrent use while SetKey may be called.
package route
