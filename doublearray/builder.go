package doublearray

import "bytes"
import "sort"

import "github.com/daruma/wordlattice/storage"


// Entry pairs a key with the index of its value in the caller's value
// array. Build consumes a slice of these and produces the packed cells.
type Entry struct {
	Key        []byte
	ValueIndex int
}

// BuildOpts configures the builder. DensityFactor controls how tightly
// bases may collide: the base scan for a node at current_index starts at
// current_index - current_index/DensityFactor - minChar + 1. Larger values
// pack more tightly at the cost of a slower build. 0 is rejected.
type BuildOpts struct {
	DensityFactor int
}

// Observers lets the builder's caller watch the walk: Adding fires once per
// key terminator in sorted order, Done fires once at the end.
type Observers struct {
	Adding func(key []byte)
	Done   func()
}

// Build performs a stable ascending sort of entries by key and recursively
// assigns BASE/CHECK cells into dst, per spec.md §4.2. It does not touch
// dst's value array; callers populate values at their entries' ValueIndex
// themselves.
func Build(entries []Entry, dst storage.Storage, opts BuildOpts, obs *Observers) (*DoubleArray, error) {
	if opts.DensityFactor <= 0 { return nil, ErrInvalidArgument }

	sorted := make([]Entry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return bytes.Compare(sorted[i].Key, sorted[j].Key) < 0
	})

	b := &builder{
		store:     dst,
		density:   opts.DensityFactor,
		usedBases: make(map[int]bool),
		obs:       obs,
	}

	if err := b.assign(0, sorted, 0); err != nil { return nil, err }

	if obs != nil && obs.Done != nil { obs.Done() }

	return &DoubleArray{store: dst, root: 0}, nil
}

type builder struct {
	store     storage.Storage
	density   int
	usedBases map[int]bool
	obs       *Observers
}

// group is one (char, entries-with-that-char-at-offset) partition.
type group struct {
	char    int // 0..255; 0 is the key terminator
	entries []Entry
}

func (b *builder) assign(nodeIndex int, entries []Entry, offset int) error {
	groups := partition(entries, offset)
	if len(groups) == 0 { return nil }

	chars := make([]int, len(groups))
	for i, g := range groups { chars[i] = g.char }

	base := b.findBase(nodeIndex, chars)
	b.usedBases[base] = true

	if err := b.store.SetBaseAt(nodeIndex, int32(base)); err != nil { return err }

	for _, g := range groups {
		if err := b.store.SetCheckAt(base+g.char, byte(g.char)); err != nil { return err }
	}

	for _, g := range groups {
		idx := base + g.char

		if g.char == int(storage.KeyTerminator) {
			entry := g.entries[0]

			if b.obs != nil && b.obs.Adding != nil { b.obs.Adding(entry.Key) }
			if err := b.store.SetBaseAt(idx, int32(entry.ValueIndex)); err != nil { return err }
		} else {
			if err := b.assign(idx, g.entries, offset+1); err != nil { return err }
		}
	}

	return nil
}

// partition splits entries, already sorted, into contiguous runs sharing
// the same byte at offset (or the key terminator when the key is
// exhausted). Because entries are lexicographically sorted and the
// terminator sorts before any real byte, exhausted keys group first.
func partition(entries []Entry, offset int) []group {
	var groups []group

	i := 0
	for i < len(entries) {
		var char int
		if len(entries[i].Key) == offset {
			char = int(storage.KeyTerminator)
		} else {
			char = int(entries[i].Key[offset])
		}

		j := i + 1
		for j < len(entries) {
			var nextChar int
			if len(entries[j].Key) == offset {
				nextChar = int(storage.KeyTerminator)
			} else {
				nextChar = int(entries[j].Key[offset])
			}

			if nextChar != char { break }
			j++
		}

		groups = append(groups, group{char: char, entries: entries[i:j]})
		i = j
	}

	return groups
}

// findBase locates a base b such that cell(b+c) is vacant for every char c
// in chars, and b has not already been committed as a base elsewhere in
// this build (spec.md §4.2 step 2).
func (b *builder) findBase(nodeIndex int, chars []int) int {
	minChar := chars[0]
	for _, c := range chars {
		if c < minChar { minChar = c }
	}

	guess := nodeIndex - nodeIndex/b.density - minChar + 1
	if guess < 1 { guess = 1 }

	for candidate := guess; ; candidate++ {
		if b.usedBases[candidate] { continue }
		if b.fits(candidate, chars) { return candidate }
	}
}

func (b *builder) fits(base int, chars []int) bool {
	for _, c := range chars {
		idx := base + c
		if idx < 0 { return false }
		if b.store.CheckAt(idx) != storage.VacantCheck { return false }
	}

	return true
}
