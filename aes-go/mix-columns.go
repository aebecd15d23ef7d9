package aesgo

import "fmt"

// mulIndex maps a supported multiplicand to its row in mulTables.
func mulIndex(n byte) int {
	switch n {
	case 0x02:
		return 0
	case 0x03:
		return 1
	case 0x09:
		return 2
	case 0x0b:
		return 3
	case 0x0d:
		return 4
	case 0x0e:
		return 5
	default:
		panic(fmt.Sprintf("aesgo: unsupported GF(2^8) multiplicand 0x%02x", n))
	}
}

// gmul performs Galois Field (256) multiplication of n and m,
// reduced by x^8 + x^4 + x^3 + x + 1.
// Only the multiplicands found in the mix-columns matrices are supported.
func gmul(n, m byte) byte {
	if n == 1 {
		return m
	}
	return mulTables[mulIndex(n)][m]
}

// mixColumn replaces a column with the product matrix * column.
func mixColumn(matrix *[4][4]byte, col [4]byte) [4]byte {
	var out [4]byte
	for i := 0; i < 4; i++ {
		for k := 0; k < 4; k++ {
			out[i] ^= gmul(matrix[i][k], col[k])
		}
	}
	return out
}

// mixColumns mixes the columns of the state matrix.
func mixColumns(s state) state {
	var ss state
	for c := 0; c < 4; c++ {
		ss[c] = mixColumn(&mixMatrix, s[c])
	}
	return ss
}

func invMixColumns(s state) state {
	var ss state
	for c := 0; c < 4; c++ {
		ss[c] = mixColumn(&invMixMatrix, s[c])
	}
	return ss
}
