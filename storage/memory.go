package storage

import "io"

import "github.com/daruma/wordlattice/codec"


// valueSlot holds one value-array entry; present distinguishes a missing
// slot from a stored nil value.
type valueSlot struct {
	present bool
	value   any
}

// Memory is the mutable, clone-on-write in-memory Storage variant used
// while building a double array.
type Memory struct {
	cells  []uint32
	values []valueSlot
}

// NewMemory returns an empty mutable Storage, root-only.
func NewMemory() *Memory {
	return &Memory{cells: []uint32{packVacant()}}
}

func packVacant() uint32 { return packCell(0, VacantCheck) }

func packCell(base int32, check uint8) uint32 { return (uint32(base) << 8) | uint32(check) }

func unpackCell(cell uint32) (int32, uint8) {
	check := uint8(cell & 0xFF)
	raw := int32(cell >> 8)
	if raw&0x00800000 != 0 { raw |= ^int32(0xFFFFFF) }

	return raw, check
}

func (m *Memory) BaseCheckSize() int { return len(m.cells) }

func (m *Memory) BaseAt(i int) int32 {
	if i < 0 || i >= len(m.cells) { return 0 }
	base, _ := unpackCell(m.cells[i])
	return base
}

func (m *Memory) CheckAt(i int) uint8 {
	if i < 0 || i >= len(m.cells) { return VacantCheck }
	_, check := unpackCell(m.cells[i])
	return check
}

func (m *Memory) extendTo(i int) {
	for len(m.cells) <= i { m.cells = append(m.cells, packVacant()) }
}

func (m *Memory) SetBaseAt(i int, v int32) error {
	if i < 0 { return ErrInvalidArgument }

	m.extendTo(i)
	_, check := unpackCell(m.cells[i])
	m.cells[i] = packCell(v, check)
	return nil
}

func (m *Memory) SetCheckAt(i int, v uint8) error {
	if i < 0 { return ErrInvalidArgument }

	m.extendTo(i)
	base, _ := unpackCell(m.cells[i])
	m.cells[i] = packCell(base, v)
	return nil
}

func (m *Memory) ValueCount() int { return len(m.values) }

func (m *Memory) ValueAt(i int) (any, bool, error) {
	if i < 0 || i >= len(m.values) { return nil, false, nil }

	slot := m.values[i]
	return slot.value, slot.present, nil
}

func (m *Memory) AddValueAt(i int, value any) error {
	if i < 0 { return ErrInvalidArgument }

	for len(m.values) <= i { m.values = append(m.values, valueSlot{}) }
	m.values[i] = valueSlot{present: true, value: value}

	return nil
}

func (m *Memory) FillingRate() float64 {
	if len(m.cells) == 0 { return 0 }

	filled := 0
	for _, cell := range m.cells {
		_, check := unpackCell(cell)
		if check != VacantCheck { filled++ }
	}

	return float64(filled) / float64(len(m.cells))
}

func (m *Memory) Serialize(w io.Writer, c codec.Codec) error {
	return serializeStorage(w, c, m)
}

// Clone deep-copies both arrays so the copy may be mutated independently,
// matching the teacher's path-copy discipline applied at the whole-storage
// level instead of per-node.
func (m *Memory) Clone() Storage {
	cp := &Memory{
		cells:  append([]uint32(nil), m.cells...),
		values: append([]valueSlot(nil), m.values...),
	}

	return cp
}
