package palmdoc

// encoder carries the per-call state of Compress.
type encoder struct {
	src    []byte
	out    []byte
	win    window
	chains hashChains
}

// Compress compresses src with PalmDoc compression. It never fails; empty input gives empty output.
//
// Token choice follows the Calibre encoder: greedy parse, the same escapes, and no
// back-references near either end of the input. Callers storing PalmDoc text
// records pass at most RecordSize bytes per call.
func Compress(src []byte) []byte {
	if len(src) == 0 {
		return []byte{}
	}

	e := acquireEncoder(src)
	defer releaseEncoder(e)

	i := 0
	for i < len(src) {
		if n, ok := e.backReference(i); ok {
			i += n
			continue
		}

		i += e.literal(i)
	}

	return e.out
}

// index hashes the 3 bytes at i into the chains at the current window position.
// Positions with 3 or fewer bytes remaining are not indexed.
func (e *encoder) index(i int) {
	if i+hashKeyLen < len(e.src) {
		e.chains.insert(hashKey(e.src[i:i+hashKeyLen]), e.win.pos)
	}
}

// backReference indexes position i and, when a match is found and allowed there,
// writes a back-reference and consumes the matched bytes. It returns the number of consumed bytes.
func (e *encoder) backReference(i int) (int, bool) {
	if len(e.src)-i <= hashKeyLen {
		return 0, false
	}

	bucket := hashKey(e.src[i : i+hashKeyLen])
	e.chains.insert(bucket, e.win.pos)

	distance, length, ok := e.chains.reference(bucket, e.src[i:], &e.win)
	if !ok {
		return 0, false
	}

	// Matches starting within MaxMatchLen bytes of either end are never encoded (Calibre compatibility).
	if i <= MaxMatchLen || i >= len(e.src)-MaxMatchLen {
		return 0, false
	}

	code := uint16(backRefFlag | ((distance << 3) & distanceMask) | (length - MinMatchLen)) // #nosec G115 -- fits 16 bits
	e.out = append(e.out, byte(code>>8), byte(code))

	for k := i; k < i+length; k++ {
		e.index(k)
		e.win.push(e.src[k])
	}

	return length, true
}

// literal encodes the byte at i as a quoted space, a plain literal or a binary run.
// It returns the number of consumed bytes.
func (e *encoder) literal(i int) int {
	b := e.src[i]
	e.win.push(b)

	if b == space && i+1 < len(e.src) && isQuotable(e.src[i+1]) {
		next := e.src[i+1]
		e.out = append(e.out, next^quotedSpaceFlag)
		e.index(i + 1)
		e.win.push(next)
		return 2
	}

	if isPlainLiteral(b) {
		e.out = append(e.out, b)
		return 1
	}

	// Binary run: up to MaxLiteralRun bytes outside the plain literal ranges.
	j := i + 1
	for j < len(e.src) && j-i < MaxLiteralRun && !isPlainLiteral(e.src[j]) {
		e.index(j)
		e.win.push(e.src[j])
		j++
	}

	e.out = append(e.out, byte(j-i))
	e.out = append(e.out, e.src[i:j]...)

	return j - i
}
