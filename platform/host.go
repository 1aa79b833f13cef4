package platform

import (
	"context"
	"sync"
	"time"
	"unsafe"

	"boardcore/assert"
	"boardcore/timing"
)

// SleepScheduler implements Scheduler on top of the Go runtime timer,
// converting ticks back to wall time with the picosecond tick constant.
type SleepScheduler struct {
	tick  timing.TickDuration
	sleep func(time.Duration)
}

// NewSleepScheduler returns a scheduler sleeping in units of tick.
func NewSleepScheduler(tick timing.TickDuration) *SleepScheduler {
	return &SleepScheduler{tick: tick, sleep: time.Sleep}
}

// DelayTicks blocks for n ticks.
func (s *SleepScheduler) DelayTicks(n timing.Ticks) {
	if n == 0 {
		return
	}
	s.sleep(s.tick.TicksToDuration(n))
}

// DelayTicksContext blocks for n ticks or until ctx is done.
func (s *SleepScheduler) DelayTicksContext(ctx context.Context, n timing.Ticks) error {
	if n == 0 {
		return ctx.Err()
	}
	t := time.NewTimer(s.tick.TicksToDuration(n))
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// HeapAllocator implements Allocator with the Go heap and keeps track of
// live blocks so that a double or foreign Free is caught.
type HeapAllocator struct {
	mu   sync.Mutex
	live map[*byte]int
}

// NewHeapAllocator returns an empty allocator.
func NewHeapAllocator() *HeapAllocator {
	return &HeapAllocator{live: map[*byte]int{}}
}

// Alloc returns a zeroed block of n bytes. Zero-length requests return nil.
func (h *HeapAllocator) Alloc(n int) []byte {
	if n == 0 {
		return nil
	}
	b := make([]byte, n)
	h.mu.Lock()
	h.live[unsafe.SliceData(b)] = n
	h.mu.Unlock()
	return b
}

// Free releases b, which must come from Alloc and not be freed twice.
func (h *HeapAllocator) Free(b []byte) {
	if b == nil {
		return
	}
	p := unsafe.SliceData(b)
	h.mu.Lock()
	_, ok := h.live[p]
	delete(h.live, p)
	h.mu.Unlock()
	assert.That(ok, "platform: free of unknown or already freed block")
}

// Live returns the number of outstanding blocks.
func (h *HeapAllocator) Live() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.live)
}
