/*
Package palmdoc implements PalmDoc compression and decompression.

PalmDoc is the LZ77 variant used for text records of PalmDoc (PDB) and MOBI e-books.
The stream is a sequence of control-byte tokens:

	0x00, 0x09..0x7F  the byte itself
	0x01..0x08        N raw bytes follow
	0x80..0xBF        with the next byte, a big-endian back-reference:
	                  bits 13..3 distance (1..2047), bits 2..0 length-3 (3..10)
	0xC0..0xFF        a space followed by the byte XOR 0x80

The encoder is greedy: a 2048-byte sliding window indexed by hash chains of
3-byte prefixes. Its token rules follow the Calibre encoder, including
the rule that no back-reference starts within MaxMatchLen bytes of either end of
the input. The decoder returns ErrOffsetOutsideData for truncated tokens and
ErrInvalidOffset for back-references that point nowhere; it never returns
partial output.

Inputs are whole buffers, normally one record of at most RecordSize bytes.
Compress and Decompress keep no state between calls and are safe for concurrent use.

# Examples

Round-trip compress and decompress:

	enc := palmdoc.Compress(data)
	dec, err := palmdoc.Decompress(enc)
	if err != nil {
		return err
	}
	// dec equals data

Decode one record and refuse anything larger than a record:

	text, err := palmdoc.DecompressWithOptions(rec, palmdoc.RecordDecompressOptions())
	if errors.Is(err, palmdoc.ErrOutputTooLarge) {
		return err
	}

Compress a whole book into text records and restore it:

	records := palmdoc.CompressRecords(book)
	book, err := palmdoc.DecompressRecords(records)
*/
package palmdoc
