// Package bio holds the small big-endian packing helpers used by the
// storage package, mirroring the teacher's own
// serializeUint64/deserializeUint64 helpers in Serialize.go but switched to
// big-endian, as the on-disk format in spec.md §6.1 requires.
package bio

import "encoding/binary"
import "errors"


var ErrShortBuffer = errors.New("bio: buffer too short")

func PutUint32(b []byte, v uint32) { binary.BigEndian.PutUint32(b, v) }

func Uint32(b []byte) (uint32, error) {
	if len(b) < 4 { return 0, ErrShortBuffer }
	return binary.BigEndian.Uint32(b), nil
}

func PutUint64(b []byte, v uint64) { binary.BigEndian.PutUint64(b, v) }

func Uint64(b []byte) (uint64, error) {
	if len(b) < 8 { return 0, ErrShortBuffer }
	return binary.BigEndian.Uint64(b), nil
}

// PackCell packs a signed 24-bit BASE and an unsigned 8-bit CHECK into one
// big-endian 32-bit cell word: top 24 bits BASE, low 8 bits CHECK.
func PackCell(base int32, check uint8) uint32 {
	return (uint32(base) << 8) | uint32(check)
}

// UnpackCell reverses PackCell, sign-extending the 24-bit BASE field.
func UnpackCell(cell uint32) (base int32, check uint8) {
	check = uint8(cell & 0xFF)
	raw := int32(cell >> 8)

	if raw & 0x00800000 != 0 { raw |= ^int32(0xFFFFFF) }
	base = raw

	return base, check
}
