package hashfunc

// HashAlgorithm - Interface that permits an implementation using the AssociativeArray to supply a custom
// hash function suited for its particular distribution of keys.
type HashAlgorithm interface {
	// Name - Returns the name of the algorithm, it is used in summaries only.
	Name() string

	// HashFunc - Given key it generates an index between 0 and tableSize - 1.
	// The function must be deterministic and must not modify the key.
	// Any number returned outside the range will result in an error of type crt.ProbingAlgorithm down stream.
	//   - key is the full key, its length is the key length
	//   - tableSize is the modulus, when used as secondary hash for double hashing it is one less than the actual table size
	HashFunc(key []byte, tableSize int64) int64
}
