package palmdoc

import (
	"errors"
	"fmt"
	"io"
)

// Decompress decodes a PalmDoc compressed stream.
// Truncated tokens return ErrOffsetOutsideData and bad back-references ErrInvalidOffset;
// no partial output is returned on error.
func Decompress(src []byte) ([]byte, error) {
	return DecompressWithOptions(src, nil)
}

// DecompressWithOptions decodes src like Decompress. Options nil means DefaultDecompressOptions().
func DecompressWithOptions(src []byte, opts *DecompressOptions) ([]byte, error) {
	if opts == nil {
		opts = DefaultDecompressOptions()
	}

	capHint := opts.SizeHint
	if capHint <= 0 {
		capHint = 2 * len(src)
	}
	if opts.MaxOutputSize > 0 && capHint > opts.MaxOutputSize {
		capHint = opts.MaxOutputSize
	}

	reader := &sliceByteReader{data: src}
	out, err := decodeStream(reader, make([]byte, 0, capHint), opts.MaxOutputSize)
	if err != nil {
		return nil, err
	}

	return out, nil
}

// decodeStream appends the decoded stream to out.
// limit > 0 caps the length of out.
func decodeStream(r *sliceByteReader, out []byte, limit int) ([]byte, error) {
	grow := func(n int) error {
		if limit > 0 && len(out)+n > limit {
			return fmt.Errorf("%w: offset=%d size=%d limit=%d", ErrOutputTooLarge, r.pos, len(out)+n, limit)
		}

		return nil
	}

	for {
		start := r.pos
		c, err := r.ReadByte()
		if errors.Is(err, io.EOF) {
			return out, nil
		}

		switch {
		case c == 0:
			// Nulls are literal.
			if err := grow(1); err != nil {
				return nil, err
			}
			out = append(out, c)

		case c <= literalRunMax:
			// The next c bytes are copied verbatim.
			run, err := r.next(int(c))
			if err != nil {
				return nil, fmt.Errorf("%w: literal run of %d at offset %d, %d bytes left",
					ErrOffsetOutsideData, c, start, len(r.data)-r.pos)
			}
			if err := grow(len(run)); err != nil {
				return nil, err
			}
			out = append(out, run...)

		case c <= literalMax:
			if err := grow(1); err != nil {
				return nil, err
			}
			out = append(out, c)

		case c <= backRefMax:
			lo, err := r.ReadByte()
			if err != nil {
				return nil, fmt.Errorf("%w: back-reference at offset %d", ErrOffsetOutsideData, start)
			}

			code := (uint16(c)<<8 | uint16(lo)) & backRefMask
			length := int(code&0x7) + MinMatchLen
			distance := int(code >> 3)
			if distance == 0 || distance > len(out) {
				return nil, fmt.Errorf("%w: distance=%d decoded=%d at offset %d", ErrInvalidOffset, distance, len(out), start)
			}
			if err := grow(length); err != nil {
				return nil, err
			}

			// Source and destination overlap when distance < length: copy one byte at a time
			// so every written byte is visible to the next read.
			for range length {
				out = append(out, out[len(out)-distance])
			}

		default:
			// 0xC0..0xFF: a space followed by the byte XOR 0x80.
			if err := grow(2); err != nil {
				return nil, err
			}
			out = append(out, space, c^quotedSpaceFlag)
		}
	}
}
