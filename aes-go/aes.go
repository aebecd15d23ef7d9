package aesgo

import (
	"crypto/cipher"
	"errors"
	"fmt"
	"runtime"

	"github.com/mario-areias/aes128/key"
)

// BlockSize is the AES block size in bytes.
const BlockSize = 16

var (
	// ErrInvalidKeyLength is returned by New for keys that are not 16 bytes.
	ErrInvalidKeyLength = key.ErrInvalidKeyLength
	// ErrInvalidCiphertextLength is returned by Decrypt when the input
	// is not made of whole blocks.
	ErrInvalidCiphertextLength = errors.New("ciphertext is not a multiple of the block size")
)

// state is a block laid out column by column: s[c][r] holds byte 4*c+r.
type state [4][4]byte

// AES encrypts every block independently (ECB).
// Identical plaintext blocks produce identical ciphertext blocks.
//
// The round keys are computed once by New or NewAES and only read afterwards,
// so an *AES may be used from multiple goroutines.
type AES struct {
	// MaxParallel is the maximum number of goroutines
	// used by Encrypt and Decrypt. If zero, runtime.GOMAXPROCS(0) is used.
	MaxParallel int

	keys schedule
}

// New validates b as a 128 bit key and returns a cipher for it.
func New(b []byte) (*AES, error) {
	k, err := key.New(b)
	if err != nil {
		return nil, err
	}
	return NewAES(k), nil
}

func NewAES(k key.Key) *AES {
	s := k.Len()
	switch s {
	case 128 / 8:
		return &AES{keys: expandKey([16]byte(k.GetBytes()))}
	default:
		panic("Unsupported key size")
	}
}

func (a *AES) BlockSize() int { return BlockSize }

// block exposes the single block transforms under the
// crypto/cipher.Block method names, which *AES uses for whole messages.
type block struct {
	a *AES
}

var _ cipher.Block = block{}

func (b block) BlockSize() int { return BlockSize }

func (b block) Encrypt(dst, src []byte) { b.a.EncryptBlock(dst, src) }

func (b block) Decrypt(dst, src []byte) { b.a.DecryptBlock(dst, src) }

// Block returns a cipher.Block backed by a, for use with crypto/cipher modes.
func (a *AES) Block() cipher.Block {
	return block{a: a}
}

// EncryptBlock encrypts the first block of src into dst.
// dst and src may overlap entirely.
func (a *AES) EncryptBlock(dst, src []byte) {
	s := a.encryptBlock(bytesToState(src))
	stateToBytes(dst, &s)
}

// DecryptBlock decrypts the first block of src into dst.
// dst and src may overlap entirely.
func (a *AES) DecryptBlock(dst, src []byte) {
	s := a.decryptBlock(bytesToState(src))
	stateToBytes(dst, &s)
}

// Encrypt pads b and encrypts each block. The result is
// always a non-empty multiple of BlockSize.
func (a *AES) Encrypt(b []byte) []byte {
	padded := AddPadding(b)
	result := make([]byte, len(padded))
	mapBlocks(result, padded, a.workers(), a.encryptBlock)
	return result
}

// Decrypt decrypts each block of b and strips the padding.
func (a *AES) Decrypt(b []byte) ([]byte, error) {
	if len(b)%BlockSize != 0 {
		return nil, fmt.Errorf("%w: %d bytes", ErrInvalidCiphertextLength, len(b))
	}
	result := make([]byte, len(b))
	mapBlocks(result, b, a.workers(), a.decryptBlock)
	return RemovePadding(result), nil
}

func (a *AES) workers() int {
	if a.MaxParallel > 0 {
		return a.MaxParallel
	}
	return runtime.GOMAXPROCS(0)
}

func (a *AES) encryptBlock(s state) state {
	s = addRoundKey(s, a.keys.roundKey(0))

	for round := 1; round < rounds; round++ {
		s = subBytes(s)
		s = shiftRows(s)
		s = mixColumns(s)
		s = addRoundKey(s, a.keys.roundKey(round))
	}

	// no mix columns in the last round
	s = subBytes(s)
	s = shiftRows(s)
	return addRoundKey(s, a.keys.roundKey(rounds))
}

func (a *AES) decryptBlock(s state) state {
	s = addRoundKey(s, a.keys.roundKey(rounds))
	s = invShiftRows(s)
	s = invSubBytes(s)

	for round := rounds - 1; round >= 1; round-- {
		s = addRoundKey(s, a.keys.roundKey(round))
		s = invMixColumns(s)
		s = invShiftRows(s)
		s = invSubBytes(s)
	}

	return addRoundKey(s, a.keys.roundKey(0))
}

func addRoundKey(s state, rk *state) state {
	var x state
	for c := 0; c < 4; c++ {
		x[c] = xor(s[c], rk[c])
	}
	return x
}

func subBytes(s state) state {
	return substitute(s, &sBox)
}

func invSubBytes(s state) state {
	return substitute(s, &invSBox)
}

func substitute(s state, table *[256]byte) state {
	var ss state
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			ss[c][r] = table[s[c][r]]
		}
	}
	return ss
}

// shiftRows rotates row r left by r columns.
func shiftRows(s state) state {
	var ss state
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			ss[c][r] = s[(c+r)%4][r]
		}
	}
	return ss
}

// invShiftRows rotates row r right by r columns.
func invShiftRows(s state) state {
	var ss state
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			ss[c][r] = s[(c+4-r)%4][r]
		}
	}
	return ss
}

func bytesToState(b []byte) state {
	if len(b) < BlockSize {
		panic("aesgo: input not full block")
	}
	var s state
	for c := 0; c < 4; c++ {
		copy(s[c][:], b[4*c:4*c+4])
	}
	return s
}

func stateToBytes(dst []byte, s *state) {
	if len(dst) < BlockSize {
		panic("aesgo: output not full block")
	}
	for c := 0; c < 4; c++ {
		copy(dst[4*c:], s[c][:])
	}
}
