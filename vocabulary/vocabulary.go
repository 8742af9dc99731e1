// Package vocabulary maps an Input to its candidate entries (surface forms
// with costs) and, for any pair (from-node, to-entry), returns a
// transition cost.
package vocabulary

import "math"

import "github.com/daruma/wordlattice/input"


// NoConnection is the sentinel cost returned when no stored transition
// exists between two nodes, used to suppress that transition unless the
// downstream cost clamps it.
const NoConnection int32 = math.MaxInt32

// View is the read-only accessor pair a hash/equality function needs to
// compare an entry against a lattice node, without vocabulary importing
// the lattice package.
type View interface {
	Key() input.Input
	Value() any
}

// Entry is a tuple (key, value, cost). The distinguished BOS/EOS entry has
// an absent key and value (both nil) and a zero cost.
type Entry struct {
	key   input.Input
	value any
	cost  int32
}

// NewEntry constructs an Entry.
func NewEntry(key input.Input, value any, cost int32) Entry {
	return Entry{key: key, value: value, cost: cost}
}

func (e Entry) Key() input.Input { return e.key }
func (e Entry) Value() any       { return e.value }
func (e Entry) Cost() int32      { return e.cost }

// Vocabulary is the contract shared by the hash-map and custom variants.
type Vocabulary interface {
	FindEntries(key input.Input) []Entry
	FindConnection(from, to View) int32
}
