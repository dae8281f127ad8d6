package probing

import (
	"fmt"
	"github.com/gostonefire/assocarray/crt"
	"github.com/gostonefire/assocarray/hashfunc"
	"github.com/gostonefire/assocarray/internal/model"
	"strings"
)

// NoSlot - Returned by Probe when the probe sequence is exhausted without finding an acceptable slot
const NoSlot int64 = -1

// DefaultName - Name of the probing algorithm used when a given name is not recognized
const DefaultName = crt.LinearProbing

// ProbeAlgorithm - Interface for a collision resolution technique in open addressing
type ProbeAlgorithm interface {
	// Name - Returns the name of the algorithm
	Name() string

	// Probe - Walks the probe sequence of a key and returns the index of the next acceptable slot.
	//   - slots gives access to the slot states of the table
	//   - key is the key probed for, only used by double hashing
	//   - start is the home index of the key, i.e. the value from the primary hash function
	//   - iteration is the number of probe steps already taken from start, it is updated with the steps taken
	//   - invalidEndsSearch set to true accepts deleted slots as stops (insert), false walks past them and stops at used slots instead (search)
	//   - cost is incremented once per probe step
	//
	// It returns the index of the acceptable slot or NoSlot if every step of the sequence has been taken.
	Probe(slots model.Slots, key []byte, start int64, iteration *int64, invalidEndsSearch bool, cost *int64) int64
}

// Lookup - Resolves a probing algorithm from its name. A name matches if it starts with one of
// crt.LinearProbing, crt.QuadraticProbing or crt.DoubleHashing (case-sensitive).
// The secondary hash algorithm is only used by double hashing.
// If the name is not recognized linear probing is returned together with an error of type crt.UnknownStrategy.
func Lookup(name string, secondary hashfunc.HashAlgorithm) (algorithm ProbeAlgorithm, err error) {
	switch {
	case strings.HasPrefix(name, crt.LinearProbing):
		algorithm = LinearProbe{}
	case strings.HasPrefix(name, crt.QuadraticProbing):
		algorithm = QuadraticProbe{}
	case strings.HasPrefix(name, crt.DoubleHashing):
		algorithm = DoubleHashProbe{Secondary: secondary}
	default:
		algorithm = LinearProbe{}
		err = fmt.Errorf("invalid hash probe strategy '%s': %w", name, crt.UnknownStrategy{})
	}

	return
}

// probe - Runs a probe sequence where offset gives the distance from start in step s.
// A table of n slots allows for at most n - 1 steps from the home slot.
func probe(slots model.Slots, start int64, iteration *int64, invalidEndsSearch bool, cost *int64, offset func(s int64) int64) int64 {
	size := slots.Size()

	for *iteration < size-1 {
		*iteration++
		*cost++

		index := (start + offset(*iteration)) % size
		if isStop(slots.State(index), invalidEndsSearch) {
			return index
		}
	}

	return NoSlot
}

// isStop - Returns true if a slot in the given state ends the probing
func isStop(state uint8, invalidEndsSearch bool) bool {
	switch state {
	case model.SlotEmpty:
		return true
	case model.SlotDeleted:
		return invalidEndsSearch
	default:
		return !invalidEndsSearch
	}
}
