package probing

import (
	"github.com/gostonefire/assocarray/crt"
	"github.com/gostonefire/assocarray/hashfunc"
	"github.com/gostonefire/assocarray/internal/model"
)

// DoubleHashProbe - Implements Double Hashing, next = (start + s*step) mod size where step is derived
// from the secondary hash algorithm.
type DoubleHashProbe struct {
	Secondary hashfunc.HashAlgorithm
}

// Name - Returns the name of the algorithm
func (D DoubleHashProbe) Name() string {
	return crt.DoubleHashing
}

// Probe - Walks the table in steps of StepSize from start
func (D DoubleHashProbe) Probe(slots model.Slots, key []byte, start int64, iteration *int64, invalidEndsSearch bool, cost *int64) int64 {
	step := D.StepSize(key, slots.Size())

	return probe(slots, start, iteration, invalidEndsSearch, cost, func(s int64) int64 { return s * step })
}

// StepSize - Returns the probing step for key in a table of tableSize slots.
// The secondary hash is taken modulo tableSize - 1 and then shifted by one, so the step is never zero and,
// with a prime table size, visits every slot once before returning to start.
func (D DoubleHashProbe) StepSize(key []byte, tableSize int64) int64 {
	if tableSize < 2 {
		return 1
	}

	m := tableSize - 1
	h := D.Secondary.HashFunc(key, m) % m
	if h < 0 {
		h += m
	}

	return 1 + h
}
