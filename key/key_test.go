package key

import (
	"bytes"
	"errors"
	"testing"
)

func TestNewKeyLength(t *testing.T) {
	tests := []struct {
		name string
		size int
		ok   bool
	}{
		{name: "empty", size: 0},
		{name: "one short", size: 15},
		{name: "exact", size: 16, ok: true},
		{name: "one long", size: 17},
		{name: "aes-256 sized", size: 32},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			k, err := New(make([]byte, test.size))
			if test.ok {
				if err != nil {
					t.Fatalf("unexpected error: %s", err)
				}
				if k.Len() != Size {
					t.Errorf("Len() = %d, want %d", k.Len(), Size)
				}
				return
			}
			if !errors.Is(err, ErrInvalidKeyLength) {
				t.Errorf("got error %v, want ErrInvalidKeyLength", err)
			}
		})
	}
}

func TestNewCopiesMaterial(t *testing.T) {
	b := []byte("128bitsforkeysss")
	k, err := New(b)
	if err != nil {
		t.Fatal(err)
	}
	b[0] = 'X'
	if k.GetBytes()[0] != '1' {
		t.Error("key shares memory with its input")
	}

	got := k.GetBytes()
	got[1] = 'X'
	if k.GetBytes()[1] != '2' {
		t.Error("GetBytes exposes internal material")
	}
}

func TestParse(t *testing.T) {
	k, err := Parse("000102030405060708090a0b0c0d0e0f")
	if err != nil {
		t.Fatal(err)
	}
	want := []byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15}
	if !bytes.Equal(k.GetBytes(), want) {
		t.Errorf("got %x, want %x", k.GetBytes(), want)
	}

	if _, err := Parse("0001"); !errors.Is(err, ErrInvalidKeyLength) {
		t.Errorf("short key: got %v", err)
	}
	if _, err := Parse("zz"); err == nil {
		t.Error("expected an error for non-hex input")
	}
}

func TestBit128(t *testing.T) {
	a, b := Bit128(), Bit128()
	if a.Len() != Size {
		t.Fatalf("Len() = %d", a.Len())
	}
	if bytes.Equal(a.GetBytes(), b.GetBytes()) {
		t.Error("two random keys are equal")
	}
}
