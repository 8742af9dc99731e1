package storage

import "io"

import "github.com/daruma/wordlattice/codec"
import "github.com/daruma/wordlattice/internal/bio"


// serializeStorage writes the on-disk format described in spec §6.1: all
// integers big-endian, byte offsets absolute from the start of the payload.
//
//	offset 0:        4   base-check count N
//	offset 4:        4*N base-check cells
//	offset 4+4N:     4   value count M
//	offset 8+4N:     4   fixed-value-size F (0 = variable)
//	offset 12+4N:    ... M value records
func serializeStorage(w io.Writer, c codec.Codec, s Storage) error {
	n := s.BaseCheckSize()

	header := make([]byte, 4)
	bio.PutUint32(header, uint32(n))
	if _, err := w.Write(header); err != nil { return err }

	cellBuf := make([]byte, 4)
	for i := 0; i < n; i++ {
		cell := packCell(s.BaseAt(i), s.CheckAt(i))
		bio.PutUint32(cellBuf, cell)
		if _, err := w.Write(cellBuf); err != nil { return err }
	}

	m := s.ValueCount()
	mBuf := make([]byte, 4)
	bio.PutUint32(mBuf, uint32(m))
	if _, err := w.Write(mBuf); err != nil { return err }

	fixedSize := c.FixedSize()
	fBuf := make([]byte, 4)
	bio.PutUint32(fBuf, uint32(fixedSize))
	if _, err := w.Write(fBuf); err != nil { return err }

	for i := 0; i < m; i++ {
		value, present, err := s.ValueAt(i)
		if err != nil { return err }

		var rec []byte
		switch {
			case ! present && fixedSize > 0:
				rec = codec.FixedAbsent(fixedSize)
			case ! present:
				rec = nil
			default:
				rec, err = c.Encode(value)
				if err != nil { return err }
		}

		if fixedSize > 0 {
			if len(rec) != fixedSize { return ErrIOError }
			if _, err := w.Write(rec); err != nil { return err }
		} else {
			lenBuf := make([]byte, 4)
			bio.PutUint32(lenBuf, uint32(len(rec)))
			if _, err := w.Write(lenBuf); err != nil { return err }
			if len(rec) > 0 {
				if _, err := w.Write(rec); err != nil { return err }
			}
		}
	}

	return nil
}
