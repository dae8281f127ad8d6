package assocarray

import (
	"fmt"
	"github.com/gostonefire/assocarray/crt"
	"github.com/gostonefire/assocarray/hashfunc"
	"github.com/gostonefire/assocarray/internal/hash"
	"github.com/gostonefire/assocarray/internal/model"
	"github.com/gostonefire/assocarray/internal/probing"
	"github.com/gostonefire/assocarray/internal/utils"
	"log/slog"
)

// MaxTableSize - The largest table size supported, requesting a capacity whose next prime is above it fails
const MaxTableSize = utils.MaxTableSize

// Conf - Is a struct to be passed in the call to NewFromConf and contains the table configuration.
//   - Capacity is the requested number of slots, it is rounded up to the nearest prime
//   - Probing is the name of the collision resolution technique, see crt.LinearProbing, crt.QuadraticProbing and crt.DoubleHashing
//   - PrimaryHash is the name of the hash algorithm giving the home slot of a key ("sum", "len", "custom" or "xxhash")
//   - SecondaryHash is the name of the hash algorithm giving the step size in double hashing
//   - PrimaryAlgorithm is an optional custom hash algorithm, if given it takes precedence over PrimaryHash
//   - SecondaryAlgorithm is an optional custom hash algorithm, if given it takes precedence over SecondaryHash
//   - Logger receives warnings about unknown strategy names, slog.Default() is used if nil
type Conf struct {
	Capacity           int64
	Probing            string
	PrimaryHash        string
	SecondaryHash      string
	PrimaryAlgorithm   hashfunc.HashAlgorithm
	SecondaryAlgorithm hashfunc.HashAlgorithm
	Logger             *slog.Logger
}

// Cost - Accumulated number of slots examined per kind of operation
type Cost struct {
	Insert int64
	Search int64
	Delete int64
}

// TableInfo - Information structure containing some information about the table
//   - Entries is the number of slots in use
//   - Capacity is the actual number of slots, a prime
//   - RequestedCapacity is the capacity asked for when creating the table
//   - Probing, PrimaryHash and SecondaryHash are the names of the strategies in use
//   - Cost is the accumulated probing cost
type TableInfo struct {
	Entries           int64
	Capacity          int64
	RequestedCapacity int64
	Probing           string
	PrimaryHash       string
	SecondaryHash     string
	Cost              Cost
}

// AssociativeArray - Fixed capacity open addressing hash table with pluggable hash and probing strategies.
// Keys are copied into the table, values are stored as given and never copied.
// An AssociativeArray is not safe for concurrent use, callers have to serialize access.
type AssociativeArray[V any] struct {
	slots             []model.Slot[V]
	requestedCapacity int64
	primary           hashfunc.HashAlgorithm
	secondary         hashfunc.HashAlgorithm
	probing           probing.ProbeAlgorithm
	nEntries          int64
	cost              Cost
	destroyed         bool
}

// New - Returns a new table with at least capacity slots using the named strategies.
// Unknown strategy names are logged as warnings and replaced by "sum" hashing respective linear probing.
//   - capacity is the requested number of slots, it is rounded up to the nearest prime
//   - probingStrategy is one of "lin", "qua" or "dou" (matched by prefix)
//   - primaryHash is one of "sum", "len", "custom" or "xxhash" (matched by prefix)
//   - secondaryHash is as primaryHash, and only used for double hashing
//
// It returns:
//   - aa is a pointer to the new table, nil on error
//   - err is of type crt.UnsupportedTableSize if no prime table size could be found
func New[V any](capacity int64, probingStrategy, primaryHash, secondaryHash string) (aa *AssociativeArray[V], err error) {
	return NewFromConf[V](Conf{
		Capacity:      capacity,
		Probing:       probingStrategy,
		PrimaryHash:   primaryHash,
		SecondaryHash: secondaryHash,
	})
}

// NewFromConf - Returns a new table given a Conf struct, see New.
func NewFromConf[V any](conf Conf) (aa *AssociativeArray[V], err error) {
	size, ok := utils.NextPrime(conf.Capacity)
	if !ok {
		err = fmt.Errorf("cannot create table of size %d: %w", conf.Capacity, crt.UnsupportedTableSize{})
		return
	}

	logger := conf.Logger
	if logger == nil {
		logger = slog.Default()
	}

	primary := conf.PrimaryAlgorithm
	if primary == nil {
		primary = lookupHash(logger, conf.PrimaryHash)
	}
	secondary := conf.SecondaryAlgorithm
	if secondary == nil {
		secondary = lookupHash(logger, conf.SecondaryHash)
	}

	probe, lErr := probing.Lookup(conf.Probing, secondary)
	if lErr != nil {
		logger.Warn("using default probing strategy", "name", conf.Probing, "default", probing.DefaultName, "error", lErr)
	}

	aa = &AssociativeArray[V]{
		slots:             make([]model.Slot[V], size),
		requestedCapacity: conf.Capacity,
		primary:           primary,
		secondary:         secondary,
		probing:           probe,
	}

	return
}

// Len - Returns the number of entries in use
func (A *AssociativeArray[V]) Len() int64 {
	return A.nEntries
}

// Capacity - Returns the number of slots in the table, it never changes
func (A *AssociativeArray[V]) Capacity() int64 {
	return int64(len(A.slots))
}

// Cost - Returns the accumulated probing cost
func (A *AssociativeArray[V]) Cost() Cost {
	return A.cost
}

// Info - Returns a TableInfo struct describing the table
func (A *AssociativeArray[V]) Info() TableInfo {
	return TableInfo{
		Entries:           A.nEntries,
		Capacity:          A.Capacity(),
		RequestedCapacity: A.requestedCapacity,
		Probing:           A.probing.Name(),
		PrimaryHash:       A.primary.Name(),
		SecondaryHash:     A.secondary.Name(),
		Cost:              A.cost,
	}
}

// Destroy - Releases all slots including keys kept by deleted slots. Values are left to the caller.
// Any later operation on the table returns an error of type crt.TableDestroyed.
func (A *AssociativeArray[V]) Destroy() {
	clear(A.slots)
	A.slots = nil
	A.nEntries = 0
	A.destroyed = true
}

// lookupHash - Resolves a hash algorithm by name and warns if the name was unknown
func lookupHash(logger *slog.Logger, name string) hashfunc.HashAlgorithm {
	alg, err := hash.Lookup(name)
	if err != nil {
		logger.Warn("using default hash strategy", "name", name, "default", hash.DefaultName, "error", err)
	}

	return alg
}

// slotStates - Exposes the slot states to the probing algorithms
type slotStates[V any] []model.Slot[V]

// Size - Returns the number of slots
func (S slotStates[V]) Size() int64 {
	return int64(len(S))
}

// State - Returns the state of the slot at index
func (S slotStates[V]) State(index int64) uint8 {
	return S[index].State
}
