// Package codec defines the pluggable value serializer used by storage.
// The library never interprets value bytes; codecs are supplied as
// first-class values implementing the Codec interface.
package codec

import "errors"


// ErrInvalidRecord is returned when a value record cannot be decoded.
var ErrInvalidRecord = errors.New("codec: invalid value record")

// Codec encodes and decodes one opaque value. FixedSize reports the
// fixed-value-size mode width in bytes, or 0 for variable-size mode.
// Mmap storage requires FixedSize() > 0.
type Codec interface {
	Encode(value any) ([]byte, error)
	Decode(data []byte) (any, error)
	FixedSize() int
}
