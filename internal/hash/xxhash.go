package hash

import "github.com/cespare/xxhash/v2"

// XXHashAlgorithm - Uses xxhash.Sum64 over the key and reduces it modulo the table size
type XXHashAlgorithm struct{}

// Name - Returns the name of the algorithm
func (X XXHashAlgorithm) Name() string {
	return XXHashName
}

// HashFunc - Returns xxhash of key modulo tableSize
func (X XXHashAlgorithm) HashFunc(key []byte, tableSize int64) int64 {
	return int64(xxhash.Sum64(key) % uint64(tableSize))
}
