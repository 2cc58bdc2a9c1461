package palmdoc

// window holds the last WindowSize bytes consumed by the encoder.
// Back-references are validated and measured against it.
type window struct {
	data [WindowSize]byte
	pos  int // next write slot
}

// push appends b and advances the cursor.
func (w *window) push(b byte) {
	w.data[w.pos] = b
	w.pos = (w.pos + 1) % WindowSize
}

// distanceFrom returns how many bytes back slot i lies from the cursor, in [1, WindowSize].
// i must have been written within the last WindowSize pushes.
func (w *window) distanceFrom(i int) int {
	d := (w.pos - i + WindowSize) % WindowSize
	if d == 0 {
		return WindowSize
	}

	return d
}

// matchLength counts how many leading bytes of key match the window from slot i.
// The comparison never reaches the cursor, so only bytes already pushed are read.
func (w *window) matchLength(key []byte, i int, maxLen int) int {
	n := min(len(key), maxLen)
	for k := 0; k < n; k++ {
		idx := (i + k) % WindowSize
		if idx == w.pos || w.data[idx] != key[k] {
			return k
		}
	}

	return n
}
