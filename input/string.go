package input

import "bytes"
import "hash/fnv"


// String is the byte-string Input variant. Values are conceptually
// UTF-8 or opaque bytes; comparison is byte-wise, never Unicode-aware.
type String struct {
	Value []byte
}

// NewString wraps a byte slice (or string) as a String Input.
func NewString(value []byte) *String {
	return &String{Value: value}
}

func (s *String) Equals(other Input) bool {
	o, ok := other.(*String)
	if ! ok { return false }

	return bytes.Equal(s.Value, o.Value)
}

func (s *String) Hash() uint64 {
	h := fnv.New64a()
	h.Write(s.Value)
	return h.Sum64()
}

func (s *String) Len() int { return len(s.Value) }

func (s *String) Clone() Input {
	cp := make([]byte, len(s.Value))
	copy(cp, s.Value)
	return &String{Value: cp}
}

// SubRange fails with ErrOutOfRange if offset+length exceeds the value's
// length.
func (s *String) SubRange(offset, length int) (Input, error) {
	if offset < 0 || length < 0 || offset+length > len(s.Value) { return nil, ErrOutOfRange }

	cp := make([]byte, length)
	copy(cp, s.Value[offset:offset+length])

	return &String{Value: cp}, nil
}

// Append fails with ErrInvalidArgument if other is not a String input.
func (s *String) Append(other Input) (Input, error) {
	o, ok := other.(*String)
	if ! ok { return nil, ErrInvalidArgument }

	out := make([]byte, 0, len(s.Value)+len(o.Value))
	out = append(out, s.Value...)
	out = append(out, o.Value...)

	return &String{Value: out}, nil
}

func (s *String) String() string { return string(s.Value) }
