package storage

import "io"

import "github.com/daruma/wordlattice/codec"


// Shared gives multiple Trie handles aliased ownership of one mutable
// Memory instance: Clone returns a new Shared wrapping the same backing
// Memory rather than copying it, so writes through any handle are visible
// to all of them. Callers must not mutate from more than one logical owner
// concurrently (spec §5, shared resource policy).
type Shared struct {
	inner *Memory
}

// NewShared wraps an existing Memory for shared ownership, or allocates a
// fresh one when m is nil.
func NewShared(m *Memory) *Shared {
	if m == nil { m = NewMemory() }
	return &Shared{inner: m}
}

func (s *Shared) BaseCheckSize() int            { return s.inner.BaseCheckSize() }
func (s *Shared) BaseAt(i int) int32            { return s.inner.BaseAt(i) }
func (s *Shared) CheckAt(i int) uint8           { return s.inner.CheckAt(i) }
func (s *Shared) SetBaseAt(i int, v int32) error  { return s.inner.SetBaseAt(i, v) }
func (s *Shared) SetCheckAt(i int, v uint8) error { return s.inner.SetCheckAt(i, v) }
func (s *Shared) ValueCount() int               { return s.inner.ValueCount() }
func (s *Shared) ValueAt(i int) (any, bool, error) { return s.inner.ValueAt(i) }
func (s *Shared) AddValueAt(i int, value any) error { return s.inner.AddValueAt(i, value) }
func (s *Shared) FillingRate() float64          { return s.inner.FillingRate() }

func (s *Shared) Serialize(w io.Writer, c codec.Codec) error { return s.inner.Serialize(w, c) }

// Clone aliases the same underlying Memory instead of copying it.
func (s *Shared) Clone() Storage { return &Shared{inner: s.inner} }
