package aesgo

import (
	"encoding/base64"
	"errors"
	"fmt"
	"unicode/utf8"
)

var (
	// ErrInvalidEncoding is returned by DecryptString
	// when its input is not valid base64.
	ErrInvalidEncoding = errors.New("invalid base64 ciphertext")
	// ErrInvalidText is returned by DecryptString when the
	// decrypted message is not valid UTF-8.
	ErrInvalidText = errors.New("decrypted message is not valid UTF-8")
)

// EncryptString encrypts the UTF-8 bytes of s and returns them base64 encoded.
func (a *AES) EncryptString(s string) string {
	return base64.StdEncoding.EncodeToString(a.Encrypt([]byte(s)))
}

// DecryptString reverses EncryptString.
func (a *AES) DecryptString(s string) (string, error) {
	ciphertext, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidEncoding, err)
	}
	plaintext, err := a.Decrypt(ciphertext)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(plaintext) {
		return "", ErrInvalidText
	}
	return string(plaintext), nil
}
