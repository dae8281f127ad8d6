package hash

// PolynomialHashAlgorithm - Rolling polynomial hash, h = (h*31 + b) mod tableSize for each byte b from left to right.
// It distributes considerably better than the sum and length algorithms.
type PolynomialHashAlgorithm struct{}

// Name - Returns the name of the algorithm
func (P PolynomialHashAlgorithm) Name() string {
	return CustomName
}

// HashFunc - Returns the polynomial rolling hash of key reduced to the range 0 to tableSize - 1
func (P PolynomialHashAlgorithm) HashFunc(key []byte, tableSize int64) int64 {
	var h uint64
	m := uint64(tableSize)
	for _, b := range key {
		h = (h*31 + uint64(b)) % m
	}

	return int64(h)
}
