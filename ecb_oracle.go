package main

import (
	"bytes"

	aesgo "github.com/mario-areias/aes128/aes-go"
	"github.com/mario-areias/aes128/key"
)

const blockSize = aesgo.BlockSize

// An oracle encrypts whatever the caller sends followed by a secret the caller never sees.
// For example, a web server that appends a session token to a user supplied field before encrypting it.
// Because every block is encrypted on its own, the caller can recover the secret one byte at a time.
type Oracle struct {
	aes    *aesgo.AES
	secret []byte
}

// NewOracle expands k once; every query reuses the same round keys.
func NewOracle(k key.Key, secret []byte) Oracle {
	return Oracle{aes: aesgo.NewAES(k), secret: secret}
}

func (o *Oracle) Encrypt(input []byte) []byte {
	b := make([]byte, 0, len(input)+len(o.secret))
	b = append(b, input...)
	b = append(b, o.secret...)
	return o.aes.Encrypt(b)
}

// DetectECB reports whether any 16 byte block repeats in ciphertext.
func DetectECB(ciphertext []byte) bool {
	seen := make(map[[blockSize]byte]struct{})
	for _, b := range split(ciphertext) {
		if len(b) < blockSize {
			break
		}
		k := [blockSize]byte(b)
		if _, ok := seen[k]; ok {
			return true
		}
		seen[k] = struct{}{}
	}
	return false
}

func ByteAtATime(oracle Oracle) []byte {
	n := secretLength(oracle)
	known := make([]byte, 0, n)

	for i := 0; i < n; i++ {
		// The prefix pushes the unknown byte i to the last position of block i/16.
		// Every other byte of that block is then either prefix or already known.
		prefix := bytes.Repeat([]byte{'A'}, blockSize-1-i%blockSize)
		blk := i / blockSize

		target := split(oracle.Encrypt(prefix))[blk]

		input := make([]byte, 0, len(prefix)+len(known))
		input = append(input, prefix...)
		input = append(input, known...)

		known = append(known, findSecretByte(oracle, input, target, blk))
	}

	return known
}

// This function finds the byte that, appended to input, encrypts block blk to target.
func findSecretByte(oracle Oracle, input, target []byte, blk int) byte {
	probe := make([]byte, len(input)+1)
	copy(probe, input)

	for j := 0x0; j <= 0xff; j++ {
		probe[len(input)] = byte(j)
		if bytes.Equal(split(oracle.Encrypt(probe))[blk], target) {
			return byte(j)
		}
	}

	panic("Could not find secret byte")
}

// secretLength grows the input until the ciphertext gains a block.
// At that point input, secret and the one byte padding marker fill the previous length exactly.
func secretLength(oracle Oracle) int {
	base := len(oracle.Encrypt(nil))
	for n := 1; n <= blockSize; n++ {
		if len(oracle.Encrypt(make([]byte, n))) > base {
			return base - n
		}
	}

	panic("Ciphertext never grew")
}

func split(b []byte) [][]byte {
	n := blockSize
	l := len(b)
	var blocks [][]byte
	for i := 0; i < l; i += n {
		end := i + n
		if end > l {
			end = l
		}
		blocks = append(blocks, b[i:end])
	}
	return blocks
}
