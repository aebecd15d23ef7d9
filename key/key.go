package key

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
)

// Size is the only key length accepted, in bytes.
const Size = 16

// ErrInvalidKeyLength is returned when key material is not exactly Size bytes.
var ErrInvalidKeyLength = errors.New("invalid key length")

type Key interface {
	GetBytes() []byte
	Len() int
}

type key128 struct {
	material [Size]byte
}

// GetBytes returns a copy of the key material.
func (k *key128) GetBytes() []byte {
	b := k.material
	return b[:]
}

func (k *key128) Len() int {
	return len(k.material)
}

// Bit128 returns a random 128 bit key.
func Bit128() Key {
	b := generateRandomBytes(Size)
	return &key128{material: [Size]byte(b)}
}

func NewKey(material [Size]byte) Key {
	return &key128{material: material}
}

// New copies b into a Key. It fails with ErrInvalidKeyLength
// unless len(b) == Size.
func New(b []byte) (Key, error) {
	if len(b) != Size {
		return nil, fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidKeyLength, len(b), Size)
	}
	return &key128{material: [Size]byte(b)}, nil
}

// Parse decodes a hex encoded key.
func Parse(s string) (Key, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("parsing key: %w", err)
	}
	return New(b)
}

// String returns the hex encoding of the key material.
func (k *key128) String() string {
	return hex.EncodeToString(k.material[:])
}

func generateRandomBytes(n int) []byte {
	randBytes := make([]byte, n)

	i, err := rand.Read(randBytes)
	if i != n || err != nil {
		panic("Could not generate random bytes")
	}

	return randBytes
}
