package hash

// LengthHashAlgorithm - Hashes on key length only, all keys of equal length collide.
// It is only useful as a baseline to compare other algorithms with.
type LengthHashAlgorithm struct{}

// Name - Returns the name of the algorithm
func (L LengthHashAlgorithm) Name() string {
	return LengthName
}

// HashFunc - Returns key length modulo tableSize
func (L LengthHashAlgorithm) HashFunc(key []byte, tableSize int64) int64 {
	return int64(len(key)) % tableSize
}
