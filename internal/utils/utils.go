package utils

import (
	"encoding/hex"
	"strings"
)

// MaxTableSize - The largest table size (and thereby prime) supported
const MaxTableSize int64 = 1 << 24

// IsEqual - Returns true if a and b are equal both in size and contents
func IsEqual(a, b []byte) bool {
	lenA := len(a)
	if lenA != len(b) {
		return false
	}

	for i := 0; i < lenA; i++ {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

// CopyKey - Returns a copy of key that the caller owns.
// A nil key results in an empty, non nil, slice so that a stored key is always distinguishable from no key.
func CopyKey(key []byte) []byte {
	c := make([]byte, len(key))
	_ = copy(c, key)

	return c
}

// NextPrime - Returns the smallest prime larger than or equal to n.
// ok is false if n is negative or if the prime would be larger than MaxTableSize.
func NextPrime(n int64) (prime int64, ok bool) {
	if n < 0 {
		return
	}

OUTER:
	for ; n <= MaxTableSize; n++ {
		if n == 2 || n == 3 {
			return n, true
		}

		if n <= 1 || n%2 == 0 || n%3 == 0 {
			continue
		}

		for i := int64(5); i*i <= n; i += 6 {
			if n%i == 0 || n%(i+2) == 0 {
				continue OUTER
			}
		}

		return n, true
	}

	return
}

// IsPrime - Returns true if n is a prime number
func IsPrime(n int64) bool {
	if n < 2 {
		return false
	}
	p, ok := NextPrime(n)

	return ok && p == n
}

// PrintableKey - Renders a key for diagnostics.
// Keys consisting only of printable ASCII are rendered as is, "char key:[abc]", otherwise the key
// is rendered as lower case hex, "hex key:[0x616263]".
func PrintableKey(key []byte) string {
	var sb strings.Builder

	for _, b := range key {
		if b < 0x20 || b > 0x7e {
			sb.WriteString("hex key:[0x")
			sb.WriteString(hex.EncodeToString(key))
			sb.WriteByte(']')
			return sb.String()
		}
	}

	sb.WriteString("char key:[")
	sb.Write(key)
	sb.WriteByte(']')

	return sb.String()
}
