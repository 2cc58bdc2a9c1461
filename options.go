package palmdoc

// DecompressOptions configures DecompressWithOptions.
type DecompressOptions struct {
	// MaxOutputSize limits the decoded size (0 = no limit).
	// Use RecordSize when decoding a single PalmDoc text record.
	MaxOutputSize int
	// SizeHint preallocates the output buffer (0 = derive from input length).
	SizeHint int
}

// DefaultDecompressOptions returns options with no output limit and no size hint.
func DefaultDecompressOptions() *DecompressOptions {
	return &DecompressOptions{}
}

// RecordDecompressOptions returns options for one text record: output limited to RecordSize.
func RecordDecompressOptions() *DecompressOptions {
	return &DecompressOptions{
		MaxOutputSize: RecordSize,
		SizeHint:      RecordSize,
	}
}
