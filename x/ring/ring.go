// Package ring is a fixed-capacity byte FIFO that may be shared between
// thread and interrupt context. Every access to the indices runs inside a
// critsec.Section, so the producer and consumer may sit on either side of
// an interrupt boundary on a single core.
package ring

import (
	"boardcore/assert"
	"boardcore/critsec"
	"boardcore/x/circ"
)

// Ring holds up to len(buf)-1 bytes; one slot stays empty to tell full
// from empty.
type Ring struct {
	sec  *critsec.Section
	buf  []byte
	rd   uint32 // next slot to read
	wr   uint32 // next slot to write
	size uint32
}

// New returns a ring holding up to capacity bytes, guarded by sec. A nil
// sec uses critsec.Default.
func New(capacity int, sec *critsec.Section) *Ring {
	assert.That(capacity > 0, "ring: capacity must be positive")
	if sec == nil {
		sec = critsec.Default
	}
	return &Ring{
		sec:  sec,
		buf:  make([]byte, capacity+1),
		size: uint32(capacity + 1),
	}
}

// Cap is the maximum number of buffered bytes.
func (r *Ring) Cap() int { return int(r.size - 1) }

func (r *Ring) len() uint32 { return circ.Distance(r.rd, r.wr, r.size) }

// Len returns the number of buffered bytes.
func (r *Ring) Len() int {
	g := r.sec.Enter()
	defer g.Exit()
	return int(r.len())
}

// Free returns the number of bytes that can be written without loss.
func (r *Ring) Free() int {
	g := r.sec.Enter()
	defer g.Exit()
	return int(r.size - 1 - r.len())
}

func (r *Ring) put(b byte) bool {
	next := circ.Inc(r.wr, r.size)
	if next == r.rd {
		return false
	}
	r.buf[r.wr] = b
	r.wr = next
	return true
}

func (r *Ring) get() (byte, bool) {
	if r.rd == r.wr {
		return 0, false
	}
	b := r.buf[r.rd]
	r.rd = circ.Inc(r.rd, r.size)
	return b, true
}

// Put appends b, reporting false if the ring is full.
func (r *Ring) Put(b byte) bool {
	g := r.sec.Enter()
	defer g.Exit()
	return r.put(b)
}

// Get removes the oldest byte.
func (r *Ring) Get() (byte, bool) {
	g := r.sec.Enter()
	defer g.Exit()
	return r.get()
}

// Write appends as much of p as fits and returns the count written.
func (r *Ring) Write(p []byte) int {
	g := r.sec.Enter()
	defer g.Exit()
	n := 0
	for _, b := range p {
		if !r.put(b) {
			break
		}
		n++
	}
	return n
}

// Read fills p from the oldest bytes and returns the count read.
func (r *Ring) Read(p []byte) int {
	g := r.sec.Enter()
	defer g.Exit()
	n := 0
	for n < len(p) {
		b, ok := r.get()
		if !ok {
			break
		}
		p[n] = b
		n++
	}
	return n
}

// Unread pushes b back in front of the oldest byte.
func (r *Ring) Unread(b byte) bool {
	g := r.sec.Enter()
	defer g.Exit()
	prev := circ.Dec(r.rd, r.size)
	if prev == r.wr {
		return false
	}
	r.rd = prev
	r.buf[prev] = b
	return true
}

// Reset drops all buffered bytes.
func (r *Ring) Reset() {
	g := r.sec.Enter()
	defer g.Exit()
	r.rd, r.wr = 0, 0
}
