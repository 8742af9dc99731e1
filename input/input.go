// Package input provides the polymorphic key carrier used by the lattice:
// a byte-string input and a user-defined custom input, each supporting
// equality, hashing, length, sub-range, and append.
package input

import "errors"


var (
	// ErrOutOfRange is raised when a subrange's offset+length exceeds the
	// carrier's size.
	ErrOutOfRange = errors.New("input: subrange out of range")
	// ErrInvalidArgument is raised when Append receives a mismatched
	// input variant.
	ErrInvalidArgument = errors.New("input: invalid argument")
)

// Input is the capability set shared by every key carrier variant.
type Input interface {
	Equals(other Input) bool
	Hash() uint64
	Len() int
	Clone() Input
	SubRange(offset, length int) (Input, error)
	Append(other Input) (Input, error)
}
