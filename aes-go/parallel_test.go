package aesgo

import (
	"bytes"
	"testing"
)

func TestMapBlocksOrder(t *testing.T) {
	// every source byte holds its block index, so a misplaced block shows up
	fn := func(s state) state {
		for c := range s {
			for r := range s[c] {
				s[c][r] ^= 0x5a
			}
		}
		return s
	}

	for _, blocks := range []int{0, 1, 63, 64, 129, 1000} {
		src := make([]byte, blocks*BlockSize)
		for i := range src {
			src[i] = byte(i / BlockSize)
		}
		want := make([]byte, len(src))
		for i := range src {
			want[i] = src[i] ^ 0x5a
		}

		for _, workers := range []int{1, 2, 3, 7, 16} {
			dst := make([]byte, len(src))
			mapBlocks(dst, src, workers, fn)
			if !bytes.Equal(dst, want) {
				t.Errorf("%d blocks, %d workers: output out of order", blocks, workers)
			}
		}
	}
}
