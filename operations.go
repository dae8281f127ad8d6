package assocarray

import (
	"errors"
	"fmt"
	"github.com/gostonefire/assocarray/crt"
	"github.com/gostonefire/assocarray/internal/model"
	"github.com/gostonefire/assocarray/internal/probing"
	"github.com/gostonefire/assocarray/internal/utils"
)

// Insert - Adds key and value to the table. The key is copied, the value is stored as is.
// Existing entries are not checked, inserting a key that is already present adds a second entry,
// use Set to update in place instead.
//   - key is the identifier of the entry, any length including zero
//   - value is the value to associate with the key
//
// It returns:
//   - index is the slot the entry was placed in, -1 on error
//   - err is of type crt.TableFull if no free slot was found along the probe sequence, the table is then left unchanged
func (A *AssociativeArray[V]) Insert(key []byte, value V) (index int64, err error) {
	index = probing.NoSlot
	if A.destroyed {
		err = crt.TableDestroyed{}
		return
	}

	home, err := A.homeIndex(key)
	if err != nil {
		return
	}

	A.cost.Insert++
	if isFree(A.slots[home].State) {
		index = home
	} else {
		var iteration int64
		index = A.probing.Probe(slotStates[V](A.slots), key, home, &iteration, true, &A.cost.Insert)
		if index == probing.NoSlot {
			err = crt.TableFull{}
			return
		}
	}

	// A reused tombstone drops the key it was holding
	slot := &A.slots[index]
	slot.State = model.SlotUsed
	slot.Key = utils.CopyKey(key)
	slot.Value = value
	A.nEntries++

	return
}

// Set - Updates the value of an existing entry with the given key, or inserts it if no such entry exists.
//
// It returns:
//   - index is the slot holding the entry, -1 on error
//   - err is of type crt.TableFull if the key was not present and no free slot was found
func (A *AssociativeArray[V]) Set(key []byte, value V) (index int64, err error) {
	index, err = A.find(key, &A.cost.Search)
	if err == nil {
		A.slots[index].Value = value
		return
	}
	if !errors.Is(err, crt.NoRecordFound{}) {
		index = probing.NoSlot
		return
	}

	return A.Insert(key, value)
}

// Lookup - Gets the value that corresponds to the given key.
//
// It returns:
//   - value is the value of the matching entry, the zero value if not found
//   - err is of type crt.NoRecordFound if the key is not present
func (A *AssociativeArray[V]) Lookup(key []byte) (value V, err error) {
	index, err := A.find(key, &A.cost.Search)
	if err != nil {
		return
	}

	value = A.slots[index].Value

	return
}

// Delete - Removes the entry with the given key and returns its value. The slot is left as a tombstone,
// keeping the key, so that probe sequences passing it still reach entries placed after it.
//
// It returns:
//   - value is the value of the removed entry, ownership is handed back to the caller
//   - err is of type crt.NoRecordFound if the key is not present, the table is then left unchanged
func (A *AssociativeArray[V]) Delete(key []byte) (value V, err error) {
	index, err := A.find(key, &A.cost.Delete)
	if err != nil {
		return
	}

	var zero V
	slot := &A.slots[index]
	value = slot.Value
	slot.State = model.SlotDeleted
	slot.Value = zero
	A.nEntries--

	return
}

// Iterate - Calls action for every entry in use, in slot order.
// The key passed to action belongs to the table and must not be modified.
// If action returns an error the iteration stops and that error is returned.
func (A *AssociativeArray[V]) Iterate(action func(key []byte, value V) error) (err error) {
	if A.destroyed {
		err = crt.TableDestroyed{}
		return
	}

	for i := range A.slots {
		if A.slots[i].State == model.SlotUsed {
			err = action(A.slots[i].Key, A.slots[i].Value)
			if err != nil {
				return
			}
		}
	}

	return
}

// homeIndex - Returns the slot index given by the primary hash algorithm
func (A *AssociativeArray[V]) homeIndex(key []byte) (index int64, err error) {
	size := int64(len(A.slots))
	index = A.primary.HashFunc(key, size)
	if index < 0 || index >= size {
		err = fmt.Errorf("hash algorithm '%s' returned index %d outside table of size %d: %w",
			A.primary.Name(), index, size, crt.ProbingAlgorithm{})
	}

	return
}

// find - Walks the probe sequence of key looking for a used slot with a matching key.
// Deleted slots do not end the search, an empty slot or an exhausted probe sequence does.
func (A *AssociativeArray[V]) find(key []byte, cost *int64) (index int64, err error) {
	if A.destroyed {
		err = crt.TableDestroyed{}
		return
	}

	home, err := A.homeIndex(key)
	if err != nil {
		return
	}

	*cost++
	var iteration int64
	for index = home; index != probing.NoSlot; {
		slot := &A.slots[index]
		switch slot.State {
		case model.SlotEmpty:
			err = crt.NoRecordFound{}
			return

		case model.SlotUsed:
			if utils.IsEqual(key, slot.Key) {
				return
			}
		}

		index = A.probing.Probe(slotStates[V](A.slots), key, home, &iteration, false, cost)
	}

	err = crt.NoRecordFound{}

	return
}

// isFree - Returns true if a slot in the given state can take a new entry
func isFree(state uint8) bool {
	return state == model.SlotEmpty || state == model.SlotDeleted
}
