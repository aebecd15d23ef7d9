package aesgo

import "golang.org/x/exp/slices"

// paddingMarker terminates the message inside the last block.
const paddingMarker = 0x80

// AddPadding appends the marker byte followed by zeros
// until the length is a multiple of BlockSize.
// A message that already fills its blocks gets a whole block of padding.
func AddPadding(b []byte) []byte {
	n := len(b) + 1
	if rem := n % BlockSize; rem != 0 {
		n += BlockSize - rem
	}
	padded := make([]byte, n)
	copy(padded, b)
	padded[len(b)] = paddingMarker
	return padded
}

// RemovePadding truncates b at the first marker byte.
// b is returned unchanged when there is no marker.
//
// The scheme is ambiguous: a message containing 0x80
// is cut short at that byte on the way back.
func RemovePadding(b []byte) []byte {
	if i := slices.Index(b, paddingMarker); i >= 0 {
		return b[:i]
	}
	return b
}
