// Package doublearray implements the core trie engine: build from sorted
// key/index pairs, exact find, prefix-restricted subtrie, and in-order
// iteration, operating over a storage.Storage backing array.
package doublearray

import "errors"

import "github.com/daruma/wordlattice/storage"


// ErrInvalidArgument is returned when Build is given a zero density factor.
var ErrInvalidArgument = errors.New("doublearray: invalid argument")

// DefaultDensityFactor is the density factor used by darts-clone-style
// implementations when the caller has no tuning preference; Build still
// requires it to be supplied explicitly and rejects 0.
const DefaultDensityFactor = 1000

// DoubleArray is a double-array trie view rooted at an index into a shared
// Storage. A Subtrie shares the same Storage and differs only in root.
type DoubleArray struct {
	store storage.Storage
	root  int
}

// KeyTerminator and VacantCheck are invariant, observable constants.
const (
	KeyTerminator = storage.KeyTerminator
	VacantCheck   = storage.VacantCheck
)

// Wrap constructs a DoubleArray view over an already-populated Storage,
// rooted at the given index (0 for the full trie).
func Wrap(s storage.Storage, root int) *DoubleArray {
	return &DoubleArray{store: s, root: root}
}

func (da *DoubleArray) Storage() storage.Storage { return da.store }
func (da *DoubleArray) Root() int                { return da.root }
