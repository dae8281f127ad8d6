package probing

import (
	"github.com/gostonefire/assocarray/crt"
	"github.com/gostonefire/assocarray/internal/model"
)

// QuadraticProbe - Implements Quadratic Probing, next = (start + s*s) mod size.
// With a prime table size the sequence only reaches about half of the slots, so an insert may
// fail with crt.TableFull although there are free slots left.
type QuadraticProbe struct{}

// Name - Returns the name of the algorithm
func (Q QuadraticProbe) Name() string {
	return crt.QuadraticProbing
}

// Probe - Walks the table in quadratically increasing steps from start
func (Q QuadraticProbe) Probe(slots model.Slots, _ []byte, start int64, iteration *int64, invalidEndsSearch bool, cost *int64) int64 {
	return probe(slots, start, iteration, invalidEndsSearch, cost, func(s int64) int64 { return s * s })
}
