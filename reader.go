package palmdoc

import "io"

// sliceByteReader reads from a byte slice.
type sliceByteReader struct {
	data []byte // The byte slice to read from.
	pos  int    // The current position in the byte slice.
}

// ReadByte reads a byte from the slice.
func (r *sliceByteReader) ReadByte() (byte, error) {
	if r.pos >= len(r.data) {
		return 0, io.EOF
	}

	b := r.data[r.pos]
	r.pos++

	return b, nil
}

// next returns the next n bytes without copying, or io.ErrUnexpectedEOF
// if fewer than n remain. The position is left unchanged on error.
func (r *sliceByteReader) next(n int) ([]byte, error) {
	if n > len(r.data)-r.pos {
		return nil, io.ErrUnexpectedEOF
	}

	p := r.data[r.pos : r.pos+n]
	r.pos += n

	return p, nil
}
