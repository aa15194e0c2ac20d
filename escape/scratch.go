package escape

import "sync"

const (
	// Pool limits to prevent memory bloat
	poolMaxCap  = 1 << 20 // max scratch bytes retained
	poolInitCap = 256
)

// Scratch is a grow-only output buffer for batch encoding loops. It is owned
// by the iterating caller: one Scratch must not be used from multiple
// goroutines without external synchronization.
type Scratch struct {
	buf []byte
}

// Bytes returns a slice of length n backed by the scratch buffer, growing
// the buffer when needed. The buffer never shrinks across a batch, so after
// the largest element every later element encodes without allocating.
// The returned slice is valid until the next Bytes call.
func (s *Scratch) Bytes(n int) []byte {
	if cap(s.buf) < n {
		c := 2 * cap(s.buf)
		if c < n {
			c = n
		}
		s.buf = make([]byte, c)
	}
	return s.buf[:n:cap(s.buf)]
}

// scratch buffer pool for batch callers
var scratchPool = sync.Pool{
	New: func() any {
		return &Scratch{buf: make([]byte, poolInitCap)}
	},
}

func GetScratch() *Scratch {
	return scratchPool.Get().(*Scratch)
}

func PutScratch(s *Scratch) {
	if s == nil || cap(s.buf) > poolMaxCap {
		return // reject oversized
	}
	scratchPool.Put(s)
}
