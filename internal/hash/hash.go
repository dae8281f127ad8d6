package hash

import (
	"fmt"
	"github.com/gostonefire/assocarray/crt"
	"github.com/gostonefire/assocarray/hashfunc"
	"strings"
)

// Names of the built in hash algorithms
const (
	SumName    string = "sum"
	LengthName string = "len"
	CustomName string = "custom"
	XXHashName string = "xxhash"
)

// DefaultName - Name of the hash algorithm used when a given name is not recognized
const DefaultName = SumName

// Lookup - Resolves a hash algorithm from its name. A name matches if it starts with one of the built-in names,
// which means that for instance "summation" resolves to the sum algorithm.
// If the name is not recognized the default algorithm is returned together with an error of type crt.UnknownStrategy,
// the algorithm is always usable.
func Lookup(name string) (algorithm hashfunc.HashAlgorithm, err error) {
	switch {
	case strings.HasPrefix(name, SumName):
		algorithm = SumHashAlgorithm{}
	case strings.HasPrefix(name, LengthName):
		algorithm = LengthHashAlgorithm{}
	case strings.HasPrefix(name, CustomName):
		algorithm = PolynomialHashAlgorithm{}
	case strings.HasPrefix(name, XXHashName):
		algorithm = XXHashAlgorithm{}
	default:
		algorithm = SumHashAlgorithm{}
		err = fmt.Errorf("invalid hash strategy '%s': %w", name, crt.UnknownStrategy{})
	}

	return
}
