package palmdoc

import "fmt"

// SplitRecords splits data into consecutive records of at most size bytes.
// size <= 0 means RecordSize. The records share memory with data.
func SplitRecords(data []byte, size int) [][]byte {
	if size <= 0 {
		size = RecordSize
	}

	records := make([][]byte, 0, (len(data)+size-1)/size)
	for start := 0; start < len(data); start += size {
		end := min(start+size, len(data))
		records = append(records, data[start:end:end])
	}

	return records
}

// CompressRecords splits data into RecordSize records and compresses each one independently.
func CompressRecords(data []byte) [][]byte {
	records := SplitRecords(data, RecordSize)
	for i, rec := range records {
		records[i] = Compress(rec)
	}

	return records
}

// DecompressRecords decodes records produced by CompressRecords and concatenates the text.
// Each record must decode to at most RecordSize bytes.
func DecompressRecords(records [][]byte) ([]byte, error) {
	out := make([]byte, 0, len(records)*RecordSize)
	opts := RecordDecompressOptions()
	for i, rec := range records {
		text, err := DecompressWithOptions(rec, opts)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}

		out = append(out, text...)
	}

	return out, nil
}

// Ratio returns original/compressed, or 0 when compressed is 0.
func Ratio(original, compressed int) float64 {
	if compressed == 0 {
		return 0
	}

	return float64(original) / float64(compressed)
}
