package aesgo

import (
	"bytes"
	"testing"

	"github.com/mario-areias/aes128/key"
)

func TestAddPadding(t *testing.T) {
	tests := []struct {
		name  string
		input []byte
		want  []byte
	}{
		{
			name:  "empty",
			input: nil,
			want:  append([]byte{0x80}, make([]byte, 15)...),
		},
		{
			name:  "partial",
			input: []byte("abc"),
			want:  append([]byte("abc\x80"), make([]byte, 12)...),
		},
		{
			name:  "one short of a block",
			input: []byte("0123456789abcde"),
			want:  []byte("0123456789abcde\x80"),
		},
		{
			name:  "full block",
			input: []byte("0123456789abcdef"),
			want:  append([]byte("0123456789abcdef\x80"), make([]byte, 15)...),
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := AddPadding(test.input)
			if !bytes.Equal(got, test.want) {
				t.Errorf("got %x, want %x", got, test.want)
			}
			if back := RemovePadding(got); !bytes.Equal(back, test.input) {
				t.Errorf("RemovePadding: got %x, want %x", back, test.input)
			}
		})
	}
}

func TestRemovePaddingNoMarker(t *testing.T) {
	b := []byte("no marker here\x00\x00")
	if got := RemovePadding(b); !bytes.Equal(got, b) {
		t.Errorf("got %x, want %x", got, b)
	}
}

// A 0x80 inside the message is taken for the marker and the
// rest of the message is lost. This is the expected behavior.
func TestPaddingAmbiguity(t *testing.T) {
	a := NewAES(key.Bit128())
	plaintext := []byte("before\x80after")

	got, err := a.Decrypt(a.Encrypt(plaintext))
	if err != nil {
		t.Fatal(err)
	}
	if want := []byte("before"); !bytes.Equal(got, want) {
		t.Errorf("got %q, want %q", got, want)
	}
}
