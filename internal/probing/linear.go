package probing

import (
	"github.com/gostonefire/assocarray/crt"
	"github.com/gostonefire/assocarray/internal/model"
)

// LinearProbe - Implements Linear Probing, next = (start + s) mod size
type LinearProbe struct{}

// Name - Returns the name of the algorithm
func (L LinearProbe) Name() string {
	return crt.LinearProbing
}

// Probe - Walks the table one slot at a time
func (L LinearProbe) Probe(slots model.Slots, _ []byte, start int64, iteration *int64, invalidEndsSearch bool, cost *int64) int64 {
	return probe(slots, start, iteration, invalidEndsSearch, cost, func(s int64) int64 { return s })
}
