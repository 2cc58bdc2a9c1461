package palmdoc

// PalmDoc format constants.
const (
	WindowSize    = 2048 // Sliding window size (ring buffer); distances are 1..WindowSize-1.
	MaxDistance   = WindowSize - 1
	MinMatchLen   = 3    // Shortest back-reference (encoded as length-3).
	MaxMatchLen   = 10   // Longest back-reference; also the no-match margin at both ends of the input.
	MaxLiteralRun = 8    // Longest binary run behind a 0x01..0x08 control byte.
	RecordSize    = 4096 // Uncompressed size of a PalmDoc text record.
)

// Control byte ranges of the encoded stream.
const (
	literalRunMax   = 0x08 // 0x01..0x08: N raw bytes follow.
	literalMax      = 0x7F // 0x00, 0x09..0x7F: the byte itself.
	backRefMax      = 0xBF // 0x80..0xBF: first byte of a 16-bit back-reference.
	backRefFlag     = 0x8000
	backRefMask     = 0x3FFF // Clears the two ID bits.
	distanceMask    = 0x3FF8 // Bits 12..3 after shifting the distance left by 3.
	quotedSpaceFlag = 0x80   // 0xC0..0xFF: space followed by the byte XOR 0x80.
	space           = 0x20
)

// isPlainLiteral reports whether b is written to the stream unchanged.
func isPlainLiteral(b byte) bool {
	return b == 0 || (b > literalRunMax && b <= literalMax)
}

// isQuotable reports whether b may follow a space in a quoted-space byte.
func isQuotable(b byte) bool {
	return b >= 0x40 && b < 0x80
}
