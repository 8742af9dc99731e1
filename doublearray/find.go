package doublearray

import "github.com/daruma/wordlattice/storage"


// Find walks cells from the root: for each key byte, it computes
// next = BASE(cur) + byte; if CHECK(next) doesn't match, the key is
// absent. After consuming all bytes it makes one more transition with the
// key terminator; if valid, BASE(terminal) is the value index.
func (da *DoubleArray) Find(key []byte) (valueIndex int, found bool) {
	cur := da.root

	for _, k := range key {
		next := int(da.store.BaseAt(cur)) + int(k)
		if next < 0 || da.store.CheckAt(next) != k { return 0, false }

		cur = next
	}

	term := int(da.store.BaseAt(cur)) + int(storage.KeyTerminator)
	if term < 0 || da.store.CheckAt(term) != storage.KeyTerminator { return 0, false }

	return int(da.store.BaseAt(term)), true
}

// Contains reports whether key has an associated value.
func (da *DoubleArray) Contains(key []byte) bool {
	_, found := da.Find(key)
	return found
}

// Subtrie performs exactly the walk of Find but stops at the prefix
// endpoint (before the terminator); the resulting DoubleArray reuses the
// same Storage and is rooted there, restricting iteration to descendants.
func (da *DoubleArray) Subtrie(prefix []byte) (*DoubleArray, bool) {
	cur := da.root

	for _, k := range prefix {
		next := int(da.store.BaseAt(cur)) + int(k)
		if next < 0 || da.store.CheckAt(next) != k { return nil, false }

		cur = next
	}

	return &DoubleArray{store: da.store, root: cur}, true
}
