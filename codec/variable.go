package codec


// Bytes is the variable-size codec: values are raw byte slices, and Encode
// returns the payload unchanged; the storage serializer writes the 4-byte
// big-endian length prefix in front of each record. A zero length encodes
// an absent value.
type Bytes struct{}

func (Bytes) FixedSize() int { return 0 }

func (Bytes) Encode(value any) ([]byte, error) {
	if value == nil { return []byte{}, nil }

	b, ok := value.([]byte)
	if ! ok { return nil, ErrInvalidRecord }

	return b, nil
}

func (Bytes) Decode(data []byte) (any, error) {
	if len(data) == 0 { return nil, nil }

	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}
