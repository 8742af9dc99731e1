package codec

import "encoding/binary"
import "errors"


// Uint32BE is the fixed-size codec used by the mmap scenarios in the test
// suite: values are big-endian uint32s, 4 bytes wide. An all-0xFF record
// decodes to an absent value.
type Uint32BE struct{}

func (Uint32BE) FixedSize() int { return 4 }

func (Uint32BE) Encode(value any) ([]byte, error) {
	v, ok := value.(uint32)
	if ! ok { return nil, errors.New("codec: Uint32BE.Encode expects a uint32") }

	buf := make([]byte, 4)
	binary.BigEndian.PutUint32(buf, v)
	return buf, nil
}

func (Uint32BE) Decode(data []byte) (any, error) {
	if len(data) != 4 { return nil, ErrInvalidRecord }
	if isAllFF(data) { return nil, nil }

	return binary.BigEndian.Uint32(data), nil
}

// FixedAbsent returns the all-0xFF sentinel record for a fixed-size codec
// of the given width, used by storage to mark an uninitialized value slot.
func FixedAbsent(size int) []byte {
	rec := make([]byte, size)
	for i := range rec { rec[i] = 0xFF }

	return rec
}

func isAllFF(data []byte) bool {
	for _, b := range data {
		if b != 0xFF { return false }
	}

	return true
}
