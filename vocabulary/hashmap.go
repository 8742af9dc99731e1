package vocabulary

import "github.com/daruma/wordlattice/input"


// Connection is one ((from-entry, to-entry) -> cost) construction pair.
type Connection struct {
	From View
	To   View
	Cost int32
}

// HashMap is the built-from-data Vocabulary variant: entries keyed by the
// string form of their input key, and a connection table using
// hash(from) xor hash(to) as the pair-hash with pointwise equality for
// collisions, per spec.md §4.5.
type HashMap struct {
	entries     map[string][]Entry
	connections map[uint64][]Connection
	hashFn      func(View) uint64
	equalFn     func(a, b View) bool
	// keyFunc renders an input.Input as the string key used for entry
	// lookup. Defaults to the *input.String form when nil.
	keyFunc func(input.Input) string
}

// NewHashMap builds a HashMap vocabulary from (string-key, entries) pairs
// and ((from, to), cost) connection triples, plus the two user-supplied
// functions that define equivalence over entry views.
func NewHashMap(
	entries map[string][]Entry,
	connections []Connection,
	hashFn func(View) uint64,
	equalFn func(a, b View) bool,
	keyFunc func(input.Input) string,
) *HashMap {
	h := &HashMap{
		entries:     entries,
		connections: make(map[uint64][]Connection, len(connections)),
		hashFn:      hashFn,
		equalFn:     equalFn,
		keyFunc:     keyFunc,
	}

	if h.keyFunc == nil { h.keyFunc = defaultKeyFunc }

	for _, c := range connections {
		h2 := hashFn(c.From) ^ hashFn(c.To)
		h.connections[h2] = append(h.connections[h2], c)
	}

	return h
}

func defaultKeyFunc(in input.Input) string {
	if s, ok := in.(*input.String); ok { return string(s.Value) }
	return ""
}

func (h *HashMap) FindEntries(key input.Input) []Entry {
	return h.entries[h.keyFunc(key)]
}

func (h *HashMap) FindConnection(from, to View) int32 {
	h2 := h.hashFn(from) ^ h.hashFn(to)

	for _, c := range h.connections[h2] {
		if h.equalFn(c.From, from) && h.equalFn(c.To, to) { return c.Cost }
	}

	return NoConnection
}
