package doublearray

import "github.com/daruma/wordlattice/storage"


// Iterator performs depth-first, ascending-by-CHECK-byte traversal,
// yielding value indices (and the reconstructed key) in sorted key order.
// It is lazy, single-pass, and not restartable once advanced; Clone
// resumes an independent copy at the same position.
type Iterator struct {
	store storage.Storage
	stack []frame
	path  []byte
}

type frame struct {
	base    int32
	next    int // next char to try, 0..256 (256 means exhausted)
	pathLen int
}

// Begin returns an iterator positioned before the first key reachable
// from da's root.
func (da *DoubleArray) Begin() *Iterator {
	return &Iterator{
		store: da.store,
		stack: []frame{{base: da.store.BaseAt(da.root), next: 0, pathLen: 0}},
		path:  nil,
	}
}

// Next advances the iterator and returns the next key and value index in
// ascending order, or ok=false once exhausted.
func (it *Iterator) Next() (key []byte, valueIndex int, ok bool) {
	for len(it.stack) > 0 {
		top := &it.stack[len(it.stack)-1]

		if top.next > 255 {
			it.stack = it.stack[:len(it.stack)-1]
			continue
		}

		c := top.next
		top.next++

		idx := int(top.base) + c
		if idx < 0 || byte(c) == storage.VacantCheck || it.store.CheckAt(idx) != byte(c) { continue }

		if c == int(storage.KeyTerminator) {
			out := make([]byte, top.pathLen)
			copy(out, it.path[:top.pathLen])

			return out, int(it.store.BaseAt(idx)), true
		}

		childBase := it.store.BaseAt(idx)
		newLen := top.pathLen + 1

		if len(it.path) < newLen { it.path = append(it.path, make([]byte, newLen-len(it.path))...) }
		it.path[top.pathLen] = byte(c)

		it.stack = append(it.stack, frame{base: childBase, next: 0, pathLen: newLen})
	}

	return nil, 0, false
}

// Clone returns an independent iterator that resumes at the same position.
func (it *Iterator) Clone() *Iterator {
	cp := &Iterator{
		store: it.store,
		stack: append([]frame(nil), it.stack...),
		path:  append([]byte(nil), it.path...),
	}

	return cp
}
