package aesgo

import "testing"

// slowMul multiplies without tables, one bit of b at a time.
func slowMul(a, b byte) byte {
	var p byte = 0

	for counter := 0; counter < 8; counter++ {
		if (b & 1) != 0 {
			p ^= a
		}

		hiBitSet := (a & 0x80) != 0
		a <<= 1
		if hiBitSet {
			a ^= 0x1B // x^8 + x^4 + x^3 + x + 1
		}
		b >>= 1
	}

	return p
}

func TestGmulTables(t *testing.T) {
	for _, n := range []byte{0x01, 0x02, 0x03, 0x09, 0x0b, 0x0d, 0x0e} {
		for m := 0; m < 256; m++ {
			if got, want := gmul(n, byte(m)), slowMul(n, byte(m)); got != want {
				t.Fatalf("gmul(%#x, %#x) = %#x, want %#x", n, m, got, want)
			}
		}
	}
}

func TestGmulUnsupported(t *testing.T) {
	for _, n := range []byte{0x00, 0x04, 0x05, 0x0a, 0x0f, 0xff} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("gmul(%#x, _) did not panic", n)
				}
			}()
			gmul(n, 1)
		}()
	}
}

func TestSBoxInverse(t *testing.T) {
	for b := 0; b < 256; b++ {
		if got := invSBox[sBox[b]]; got != byte(b) {
			t.Fatalf("invSBox[sBox[%#x]] = %#x", b, got)
		}
	}
}

func TestMixColumns(t *testing.T) {
	// test vectors from the mix columns wikipedia page
	tests := []struct {
		in, out [4]byte
	}{
		{[4]byte{0xdb, 0x13, 0x53, 0x45}, [4]byte{0x8e, 0x4d, 0xa1, 0xbc}},
		{[4]byte{0xf2, 0x0a, 0x22, 0x5c}, [4]byte{0x9f, 0xdc, 0x58, 0x9d}},
		{[4]byte{0x01, 0x01, 0x01, 0x01}, [4]byte{0x01, 0x01, 0x01, 0x01}},
		{[4]byte{0xc6, 0xc6, 0xc6, 0xc6}, [4]byte{0xc6, 0xc6, 0xc6, 0xc6}},
		{[4]byte{0xd4, 0xd4, 0xd4, 0xd5}, [4]byte{0xd5, 0xd5, 0xd7, 0xd6}},
		{[4]byte{0x2d, 0x26, 0x31, 0x4c}, [4]byte{0x4d, 0x7e, 0xbd, 0xf8}},
	}

	for _, test := range tests {
		s := state{test.in, test.in, test.in, test.in}
		got := mixColumns(s)
		for c := range got {
			if got[c] != test.out {
				t.Errorf("mixColumns(%x) column %d = %x, want %x", test.in, c, got[c], test.out)
			}
		}
		if back := invMixColumns(got); back != s {
			t.Errorf("invMixColumns(%x) = %x, want %x", got, back, s)
		}
	}
}

func TestShiftRows(t *testing.T) {
	var s state
	for i := 0; i < 16; i++ {
		s[i/4][i%4] = byte(i)
	}
	want := state{
		{0, 5, 10, 15},
		{4, 9, 14, 3},
		{8, 13, 2, 7},
		{12, 1, 6, 11},
	}
	if got := shiftRows(s); got != want {
		t.Errorf("shiftRows = %v, want %v", got, want)
	}
	if got := invShiftRows(shiftRows(s)); got != s {
		t.Errorf("invShiftRows(shiftRows(s)) = %v", got)
	}
}
