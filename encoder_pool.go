package palmdoc

import "sync"

// encoderPool is a pool of encoders; each holds a window and a full hash chain table.
var encoderPool = sync.Pool{
	New: func() any {
		return &encoder{}
	},
}

// acquireEncoder takes an encoder from the pool and resets it for src.
func acquireEncoder(src []byte) *encoder {
	e := encoderPool.Get().(*encoder)
	e.src = src
	// Binary runs are the worst case: 9 output bytes for 8 input bytes.
	e.out = make([]byte, 0, len(src)+len(src)/8+1)
	e.win = window{}
	e.chains.reset()
	return e
}

// releaseEncoder returns an encoder to the pool. The output slice is handed to the caller, not reused.
func releaseEncoder(e *encoder) {
	if e == nil {
		return
	}

	e.src = nil
	e.out = nil
	encoderPool.Put(e)
}
