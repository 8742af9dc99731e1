// Package storage provides the abstract persistent backing for the double
// array: a contiguous array of 32-bit cells (packed BASE:24 / CHECK:8) plus
// an indexed sequence of opaque values. Three variants are provided, each
// sharing the Storage contract but differing on mutability, the way the
// teacher's Mari backs multiple transaction handles over one mutable
// in-memory structure while exposing a read-only mmap-backed view.
package storage

import "errors"
import "io"

import "github.com/daruma/wordlattice/codec"


var (
	// ErrUnsupportedOperation is returned by mutators on the mmap variant.
	ErrUnsupportedOperation = errors.New("storage: unsupported operation on read-only storage")
	// ErrInvalidArgument is returned for out-of-range indices and bad
	// constructor parameters.
	ErrInvalidArgument = errors.New("storage: invalid argument")
	// ErrIOError wraps malformed or truncated serialized streams.
	ErrIOError = errors.New("storage: malformed or truncated stream")
)

const (
	// KeyTerminator is the reserved byte value marking end-of-key inside
	// the double array.
	KeyTerminator byte = 0x00
	// VacantCheck is the CHECK-field sentinel marking a cell as unused.
	VacantCheck uint8 = 0xFF
)

// Storage is the contract shared by the memory, shared, and mmap variants.
type Storage interface {
	BaseCheckSize() int
	BaseAt(i int) int32
	CheckAt(i int) uint8

	// SetBaseAt and SetCheckAt auto-extend the array, filling new cells
	// with BASE=0, CHECK=VacantCheck. They fail with ErrUnsupportedOperation
	// on the mmap variant.
	SetBaseAt(i int, v int32) error
	SetCheckAt(i int, v uint8) error

	ValueCount() int
	// ValueAt returns the decoded value, whether the slot is present, and
	// an error. A missing slot is not an error; present is false.
	ValueAt(i int) (value any, present bool, err error)
	AddValueAt(i int, value any) error

	// FillingRate returns the fraction of cells with CHECK != VacantCheck.
	FillingRate() float64

	Serialize(w io.Writer, c codec.Codec) error
	Clone() Storage
}
