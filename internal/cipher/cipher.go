// Package cipher defines the contract shared by every cipher in shifr.
package cipher

// Cipher encrypts open text and decrypts cipher text with a fixed key.
type Cipher interface {
	Encrypt(text string) (string, error)
	Decrypt(text string) (string, error)
}

// Factory builds a Cipher from a key string.
type Factory func(key string) (Cipher, error)
