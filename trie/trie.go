// Package trie is the generic wrapper binding a Key-serializer over a
// Double Array and mapping integer indices to opaque values in Storage.
package trie

import "github.com/daruma/wordlattice/doublearray"
import "github.com/daruma/wordlattice/storage"


// Trie binds a caller key type K to the byte-sequence double array via a
// Serialize function. The Go idiom replaces the C++ begin()/end() iterator
// pair with a single Iterator whose Next reports ok=false at the end.
type Trie[K any] struct {
	Serialize func(K) []byte
	da        *doublearray.DoubleArray
}

// New wraps an already-built DoubleArray with a key serializer.
func New[K any](serialize func(K) []byte, da *doublearray.DoubleArray) *Trie[K] {
	return &Trie[K]{Serialize: serialize, da: da}
}

// FromStorage constructs a Trie directly from an externally loaded
// Storage (e.g. a mmap-backed one), rooted at index 0.
func FromStorage[K any](serialize func(K) []byte, s storage.Storage) *Trie[K] {
	return &Trie[K]{Serialize: serialize, da: doublearray.Wrap(s, 0)}
}

func (t *Trie[K]) Contains(key K) bool {
	return t.da.Contains(t.Serialize(key))
}

// Find performs the index-to-value lookup against Storage in addition to
// the Double Array walk.
func (t *Trie[K]) Find(key K) (value any, found bool, err error) {
	idx, ok := t.da.Find(t.Serialize(key))
	if ! ok { return nil, false, nil }

	v, present, err := t.da.Storage().ValueAt(idx)
	if err != nil { return nil, false, err }

	return v, present, nil
}

// Subtrie returns a Trie restricted to descendants of prefix, sharing the
// same Storage and key serializer.
func (t *Trie[K]) Subtrie(prefix K) (*Trie[K], bool) {
	sub, ok := t.da.Subtrie(t.Serialize(prefix))
	if ! ok { return nil, false }

	return &Trie[K]{Serialize: t.Serialize, da: sub}, true
}

// Begin returns an iterator over all keys reachable from this Trie's root,
// in ascending byte-lexicographic order.
func (t *Trie[K]) Begin() *doublearray.Iterator { return t.da.Begin() }

func (t *Trie[K]) GetStorage() storage.Storage { return t.da.Storage() }

func (t *Trie[K]) DoubleArray() *doublearray.DoubleArray { return t.da }
