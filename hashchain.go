package palmdoc

// Hash chain parameters. Both counts are powers of two so indexes wrap with a mask.
const (
	chainCount  = 4096
	chainLength = 32
	chainNil    = 0xFFFF // empty slot; ends a chain walk

	hashKeyLen = 3

	fnvOffset64 = 0xcbf29ce484222325
	fnvPrime64  = 0x100000001b3
)

// hashChains maps 3-byte prefixes to recent window positions.
// Every bucket is a ring of chainLength slots; inserting into a full bucket overwrites the oldest entry.
type hashChains struct {
	cursor [chainCount]uint16
	slots  [chainCount * chainLength]uint16
}

// reset empties every bucket.
func (t *hashChains) reset() {
	t.cursor = [chainCount]uint16{}
	for i := range t.slots {
		t.slots[i] = chainNil
	}
}

// hashKey returns the bucket for a 3-byte key (FNV-1a, 64 bit).
// It panics if key is not exactly 3 bytes long.
func hashKey(key []byte) int {
	if len(key) != hashKeyLen {
		panic("palmdoc: hash key must be 3 bytes")
	}

	h := uint64(fnvOffset64)
	for _, b := range key {
		h ^= uint64(b)
		h *= fnvPrime64
	}

	return int(h & (chainCount - 1))
}

// chain returns the slots of bucket.
func (t *hashChains) chain(bucket int) []uint16 {
	off := bucket * chainLength
	return t.slots[off : off+chainLength]
}

// insert records window position pos in bucket.
func (t *hashChains) insert(bucket int, pos int) {
	c := t.cursor[bucket]
	t.chain(bucket)[c] = uint16(pos) // #nosec G115 -- pos < WindowSize
	t.cursor[bucket] = (c + 1) & (chainLength - 1)
}

// reference walks bucket from the newest entry back to the oldest and returns
// the longest match for upcoming. Ties keep the most recent (closest) entry.
// ok is false when no match of at least MinMatchLen bytes exists.
func (t *hashChains) reference(bucket int, upcoming []byte, w *window) (distance, length int, ok bool) {
	c := t.chain(bucket)
	cur := t.cursor[bucket]
	for range chainLength {
		cur = (cur - 1) & (chainLength - 1)
		if c[cur] == chainNil {
			break
		}

		idx := int(c[cur])
		d := w.distanceFrom(idx)
		if d > MaxDistance {
			continue
		}

		n := w.matchLength(upcoming, idx, MaxMatchLen)
		if n > length {
			length = n
			distance = d
		}
	}

	if length < MinMatchLen {
		return 0, 0, false
	}

	return distance, length, true
}
