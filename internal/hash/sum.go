package hash

// SumHashAlgorithm - Hashes on the sum of the byte values in the key.
// The sum is kept in an uint64 so any overflow wraps deterministically.
type SumHashAlgorithm struct{}

// Name - Returns the name of the algorithm
func (S SumHashAlgorithm) Name() string {
	return SumName
}

// HashFunc - Returns the sum of all bytes in key modulo tableSize
func (S SumHashAlgorithm) HashFunc(key []byte, tableSize int64) int64 {
	var sum uint64
	for _, b := range key {
		sum += uint64(b)
	}

	return int64(sum % uint64(tableSize))
}
