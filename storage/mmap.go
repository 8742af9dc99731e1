package storage

import "io"
import "os"

import "github.com/daruma/wordlattice/codec"
import "github.com/daruma/wordlattice/internal/bio"


// MMap is the read-only Storage variant: a memory-mapped view of a
// serialized file (spec §6.1) plus a small LRU value cache. Mutation fails
// with ErrUnsupportedOperation, and loading requires a fixed-value-size
// codec, since the mmap reader indexes value records by a constant stride.
type MMap struct {
	file   *os.File
	data   []byte

	contentOffset int
	cellsOffset   int
	n             int // base-check cell count
	valuesOffset  int
	valueCount    int
	fixedSize     int

	codec codec.Codec
	cache *valueCache
}

// MMapOpts configures loading a serialized trie for mmap access.
type MMapOpts struct {
	// ContentOffset is the absolute byte offset where the payload begins,
	// permitting an embedded trie inside a larger file.
	ContentOffset int
	// CacheCapacity bounds the value LRU; 0 selects the default of 10000.
	CacheCapacity int
}

// LoadMMap opens path, maps it read-only, and parses the header at
// opts.ContentOffset. The codec must report a positive FixedSize.
func LoadMMap(path string, c codec.Codec, opts MMapOpts) (*MMap, error) {
	if c.FixedSize() <= 0 { return nil, ErrInvalidArgument }

	f, openErr := os.Open(path)
	if openErr != nil { return nil, openErr }

	data, mmapErr := mmapBytes(f)
	if mmapErr != nil {
		f.Close()
		return nil, mmapErr
	}

	m := &MMap{
		file:          f,
		data:          data,
		contentOffset: opts.ContentOffset,
		codec:         c,
		cache:         newValueCache(opts.CacheCapacity),
	}

	if parseErr := m.parseHeader(); parseErr != nil {
		m.Close()
		return nil, parseErr
	}

	return m, nil
}

func (m *MMap) parseHeader() error {
	base := m.contentOffset
	if base < 0 || base+4 > len(m.data) { return ErrIOError }

	n, err := bio.Uint32(m.data[base : base+4])
	if err != nil { return ErrIOError }
	m.n = int(n)

	cellsOffset := base + 4
	m.cellsOffset = cellsOffset

	mCountOffset := cellsOffset + 4*m.n
	if mCountOffset+4 > len(m.data) { return ErrIOError }

	valueCount, err := bio.Uint32(m.data[mCountOffset : mCountOffset+4])
	if err != nil { return ErrIOError }
	m.valueCount = int(valueCount)

	fOffset := mCountOffset + 4
	if fOffset+4 > len(m.data) { return ErrIOError }

	fixedSize, err := bio.Uint32(m.data[fOffset : fOffset+4])
	if err != nil { return ErrIOError }
	if fixedSize == 0 { return ErrInvalidArgument }
	m.fixedSize = int(fixedSize)

	m.valuesOffset = fOffset + 4

	end := m.valuesOffset + m.valueCount*m.fixedSize
	if end > len(m.data) { return ErrIOError }

	return nil
}

// Close unmaps the file and closes the underlying descriptor.
func (m *MMap) Close() error {
	unmapErr := munmapBytes(m.data)
	closeErr := m.file.Close()

	if unmapErr != nil { return unmapErr }
	return closeErr
}

func (m *MMap) BaseCheckSize() int { return m.n }

func (m *MMap) cellAt(i int) uint32 {
	if i < 0 || i >= m.n { return packVacant() }

	off := m.cellsOffset + 4*i
	cell, err := bio.Uint32(m.data[off : off+4])
	if err != nil { return packVacant() }

	return cell
}

func (m *MMap) BaseAt(i int) int32 {
	base, _ := unpackCell(m.cellAt(i))
	return base
}

func (m *MMap) CheckAt(i int) uint8 {
	_, check := unpackCell(m.cellAt(i))
	return check
}

func (m *MMap) SetBaseAt(i int, v int32) error  { return ErrUnsupportedOperation }
func (m *MMap) SetCheckAt(i int, v uint8) error { return ErrUnsupportedOperation }
func (m *MMap) AddValueAt(i int, value any) error { return ErrUnsupportedOperation }

func (m *MMap) ValueCount() int { return m.valueCount }

// ValueAt decodes the value record for index i, consulting the LRU cache
// first and populating it on miss. An explicit absent marker is cached so
// repeated lookups of an uninitialized slot skip re-decoding.
func (m *MMap) ValueAt(i int) (any, bool, error) {
	if i < 0 || i >= m.valueCount { return nil, false, nil }

	if cached, ok := m.cache.get(i); ok {
		if _, isAbsent := cached.(absentMarker); isAbsent { return nil, false, nil }
		return cached, true, nil
	}

	off := m.valuesOffset + i*m.fixedSize
	rec := m.data[off : off+m.fixedSize]

	value, decErr := m.codec.Decode(rec)
	if decErr != nil { return nil, false, decErr }

	if value == nil {
		m.cache.put(i, absent)
		return nil, false, nil
	}

	m.cache.put(i, value)
	return value, true, nil
}

func (m *MMap) FillingRate() float64 {
	if m.n == 0 { return 0 }

	filled := 0
	for i := 0; i < m.n; i++ {
		if m.CheckAt(i) != VacantCheck { filled++ }
	}

	return float64(filled) / float64(m.n)
}

// Serialize copies the already-serialized payload verbatim, since the
// mmap's in-memory layout is bit-exact with the on-disk format it was
// loaded from.
func (m *MMap) Serialize(w io.Writer, c codec.Codec) error {
	end := m.valuesOffset + m.valueCount*m.fixedSize
	_, err := w.Write(m.data[m.contentOffset:end])
	return err
}

// Clone returns the same handle, so the mapped bytes and cache are shared;
// the mmap variant is immutable, so aliasing is always safe within one thread.
func (m *MMap) Clone() Storage { return m }
