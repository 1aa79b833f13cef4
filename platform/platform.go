// Package platform is the board's thin abstraction over the RTOS and the
// interrupt hardware: delays are expressed in milliseconds and handed to
// the scheduler as wakeup ticks, memory comes from an allocator, and short
// exclusive windows come from a critical section.
package platform

import (
	"context"

	"boardcore/assert"
	"boardcore/critsec"
	"boardcore/timing"
)

// Scheduler suspends the calling execution context for a number of ticks.
type Scheduler interface {
	DelayTicks(n timing.Ticks)
}

// ContextScheduler is a Scheduler whose delay can be cut short.
type ContextScheduler interface {
	Scheduler
	DelayTicksContext(ctx context.Context, n timing.Ticks) error
}

// Allocator hands out and takes back raw memory.
type Allocator interface {
	Alloc(n int) []byte
	Free(b []byte)
}

// Config wires a Platform. Zero fields get host defaults.
type Config struct {
	Clock timing.ClockConfig
	Sched Scheduler
	Mem   Allocator
	IRQ   *critsec.Section
}

// Platform bundles the services used by board code.
type Platform struct {
	Tick  timing.TickDuration
	Sched Scheduler
	Mem   Allocator
	IRQ   *critsec.Section
}

// New derives the tick duration once and fills in defaults: DefaultRTC,
// a SleepScheduler on that tick, a HeapAllocator and critsec.Default.
func New(cfg Config) *Platform {
	if cfg.Clock == (timing.ClockConfig{}) {
		cfg.Clock = timing.DefaultRTC()
	}
	tick := timing.Derive(cfg.Clock)
	if cfg.Sched == nil {
		cfg.Sched = NewSleepScheduler(tick)
	}
	if cfg.Mem == nil {
		cfg.Mem = NewHeapAllocator()
	}
	if cfg.IRQ == nil {
		cfg.IRQ = critsec.Default
	}
	return &Platform{Tick: tick, Sched: cfg.Sched, Mem: cfg.Mem, IRQ: cfg.IRQ}
}

// Delay suspends the caller for ms milliseconds, truncated to whole ticks.
func (p *Platform) Delay(ms uint32) {
	p.Sched.DelayTicks(p.Tick.MsToTicks(ms))
}

// DelayContext is Delay with cancellation, when the scheduler supports it.
// Otherwise it delays fully and reports ctx.Err() afterwards.
func (p *Platform) DelayContext(ctx context.Context, ms uint32) error {
	n := p.Tick.MsToTicks(ms)
	if cs, ok := p.Sched.(ContextScheduler); ok {
		return cs.DelayTicksContext(ctx, n)
	}
	p.Sched.DelayTicks(n)
	return ctx.Err()
}

// Malloc returns n bytes from the platform allocator.
func (p *Platform) Malloc(n int) []byte {
	assert.That(n >= 0, "platform: negative allocation")
	return p.Mem.Alloc(n)
}

// Free returns b to the platform allocator.
func (p *Platform) Free(b []byte) { p.Mem.Free(b) }

// EnterCritical enters the platform critical section. Pair it with Exit on
// the returned guard in the same scope.
func (p *Platform) EnterCritical() critsec.Guard { return p.IRQ.Enter() }

// Critical runs fn with interrupts masked.
func (p *Platform) Critical(fn func()) { p.IRQ.Do(fn) }
