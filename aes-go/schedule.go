package aesgo

import "fmt"

const rounds = 10

// schedule holds the round keys, one per AddRoundKey step.
type schedule [rounds + 1]state

func (s *schedule) roundKey(round int) *state {
	if round < 0 || round > rounds {
		panic(fmt.Sprintf("aesgo: round %d out of range", round))
	}
	return &s[round]
}

// expandKey derives all round keys from a 128 bit key.
// Round 0 is the key itself; each later round depends only on the previous one.
func expandKey(k [16]byte) schedule {
	var keys schedule
	keys[0] = bytesToState(k[:])

	for r := 1; r <= rounds; r++ {
		prev := &keys[r-1]

		t := subWord(rotWord(prev[3]))
		t[0] ^= rconTable[r-1]

		keys[r][0] = xor(prev[0], t)
		for c := 1; c < 4; c++ {
			keys[r][c] = xor(keys[r][c-1], prev[c])
		}
	}

	return keys
}

func rotWord(word [4]byte) [4]byte {
	return [4]byte{word[1], word[2], word[3], word[0]}
}

func subWord(word [4]byte) [4]byte {
	var s [4]byte
	for i := 0; i < 4; i++ {
		s[i] = sBox[word[i]]
	}
	return s
}

func xor(a, b [4]byte) [4]byte {
	var x [4]byte
	for i := 0; i < 4; i++ {
		x[i] = a[i] ^ b[i]
	}
	return x
}
