package model

// SlotEmpty - State indicating a slot that is or has never been in use
const SlotEmpty uint8 = 0

// SlotUsed - State indicating a slot that is in use
const SlotUsed uint8 = 1

// SlotDeleted - State indicating a slot that has been in use but was deleted (a tombstone).
// The key of the deleted record is kept for diagnostics until the slot is reused.
const SlotDeleted uint8 = 2

// Slot - Represents one cell in the table
type Slot[V any] struct {
	State uint8
	Key   []byte
	Value V
}

// Slots - Read access to slot states as needed by the probing algorithms
type Slots interface {
	// Size - Returns the fixed number of slots
	Size() int64
	// State - Returns the state of the slot at index
	State(index int64) uint8
}

