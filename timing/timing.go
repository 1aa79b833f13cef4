// Package timing derives the real-world length of one RTC wakeup tick from
// the board clock configuration and converts millisecond delays into tick
// counts.
//
// Values are computed from an explicit ClockConfig; there is no package
// level clock state.
package timing

import (
	"math"
	"math/bits"
	"time"

	"boardcore/assert"
	"boardcore/x/mathx"
)

const (
	usPerSec = 1_000_000
	psPerSec = 1_000_000_000_000
	psPerUs  = 1_000_000
	psPerNs  = 1_000
)

// ClockConfig describes the low-speed tick source: an oscillator and the
// integer divider in front of the wakeup counter. It is fixed for the life
// of the process.
type ClockConfig struct {
	OscillatorHz uint32 // e.g. LSE, 32768
	Divider      uint32 // RTCCLK divider feeding the counter, e.g. 16
	// WakeupSelDivider is the raw WUCKSEL selector written to the RTC. It is
	// carried through unchanged; the tick length depends on Divider only.
	WakeupSelDivider uint32
}

// Default board values (STM32WB: LSE through RTCCLK/16).
const (
	LSEHz            = 32768
	RTCClockDiv      = 16
	RTCWakeupSel     = 0
	RTCAsyncPrescale = 0x7F
	RTCSyncPrescale  = 0x00FF
)

// DefaultRTC returns the board's wakeup-timer clock configuration.
func DefaultRTC() ClockConfig {
	return ClockConfig{
		OscillatorHz:     LSEHz,
		Divider:          RTCClockDiv,
		WakeupSelDivider: RTCWakeupSel,
	}
}

func (c ClockConfig) check() {
	assert.That(c.OscillatorHz > 0, "timing: zero oscillator frequency")
	assert.That(c.Divider > 0, "timing: zero clock divider")
}

// TickHz is the rounded counter input frequency. It is 0 for ticks longer
// than two seconds.
func (c ClockConfig) TickHz() uint32 {
	c.check()
	return uint32(mathx.RoundDiv(uint64(c.OscillatorHz), uint64(c.Divider)))
}

// Prescalers are the RTC calendar prescalers. They are only used to check a
// board configuration; the wakeup tick does not depend on them.
type Prescalers struct {
	Async uint8
	Sync  uint16
}

// DefaultPrescalers returns the board prescalers (0x7F, 0xFF).
func DefaultPrescalers() Prescalers {
	return Prescalers{Async: RTCAsyncPrescale, Sync: RTCSyncPrescale}
}

// CalendarHz is osc / ((Async+1)*(Sync+1)), truncated.
func (p Prescalers) CalendarHz(oscHz uint32) uint32 {
	return oscHz / ((uint32(p.Async) + 1) * (uint32(p.Sync) + 1))
}

// Ticks counts wakeup-counter ticks.
type Ticks uint32

// MaxDelayMs is the longest delay the converters accept: ms*1000 must fit
// in 32 bits.
const MaxDelayMs = math.MaxUint32 / 1000

// TickDuration is the length of one tick, rounded independently at two
// precisions. Picoseconds is not required to equal Microseconds*1e6.
type TickDuration struct {
	Microseconds uint64
	Picoseconds  uint64
}

// mulRoundDiv returns round(a*b/y), ties up, and whether it fits in 64
// bits. The product is formed in 128 bits.
func mulRoundDiv(a, b, y uint64) (uint64, bool) {
	hi, lo := bits.Mul64(a, b)
	var carry uint64
	lo, carry = bits.Add64(lo, y/2, 0)
	hi += carry
	if hi >= y {
		return 0, false
	}
	q, _ := bits.Div64(hi, lo, y)
	return q, true
}

// InRange reports whether the tick length of c fits in TickDuration. Ticks
// longer than about 213 days (MaxUint64 ps) do not.
func (c ClockConfig) InRange() bool {
	if c.OscillatorHz == 0 || c.Divider == 0 {
		return false
	}
	_, ok := mulRoundDiv(uint64(c.Divider), psPerSec, uint64(c.OscillatorHz))
	return ok
}

// Derive computes the tick duration for cfg with round-to-nearest division.
// cfg must satisfy InRange.
func Derive(cfg ClockConfig) TickDuration {
	cfg.check()
	osc := uint64(cfg.OscillatorHz)
	div := uint64(cfg.Divider)
	ps, ok := mulRoundDiv(div, psPerSec, osc)
	assert.That(ok, "timing: tick longer than MaxUint64 ps")
	return TickDuration{
		// div*1e6 < 2^52, no overflow.
		Microseconds: mathx.RoundDiv(div*usPerSec, osc),
		Picoseconds:  ps,
	}
}

// MsToTicks converts ms to ticks with truncating division. The result can
// be up to one tick short of ms; use MsToTicksCeil for a minimum wait.
// ms must not exceed MaxDelayMs.
func (d TickDuration) MsToTicks(ms uint32) Ticks {
	assert.That(d.Microseconds > 0, "timing: sub-microsecond tick")
	assert.That(ms <= MaxDelayMs, "timing: delay overflows 32-bit microseconds")
	return Ticks(uint64(ms) * 1000 / d.Microseconds)
}

// MsToTicksCeil converts ms to the smallest tick count lasting at least ms
// (measured in whole-microsecond ticks).
func (d TickDuration) MsToTicksCeil(ms uint32) Ticks {
	assert.That(d.Microseconds > 0, "timing: sub-microsecond tick")
	assert.That(ms <= MaxDelayMs, "timing: delay overflows 32-bit microseconds")
	return Ticks(mathx.CeilDiv(uint64(ms)*1000, d.Microseconds))
}

// TicksToPs returns the span of t ticks in picoseconds.
func (d TickDuration) TicksToPs(t Ticks) uint64 {
	hi, lo := bits.Mul64(uint64(t), d.Picoseconds)
	assert.That(hi == 0, "timing: span overflows uint64 ps")
	return lo
}

// TicksToUs returns the span of t ticks in microseconds, rounded. It goes
// through the picosecond constant so long spans do not accumulate the
// microsecond rounding error.
func (d TickDuration) TicksToUs(t Ticks) uint64 {
	us, ok := mulRoundDiv(uint64(t), d.Picoseconds, psPerUs)
	assert.That(ok, "timing: span overflows uint64 us")
	return us
}

// TicksToDuration is TicksToUs at nanosecond resolution.
func (d TickDuration) TicksToDuration(t Ticks) time.Duration {
	ns, ok := mulRoundDiv(uint64(t), d.Picoseconds, psPerNs)
	assert.That(ok && ns <= math.MaxInt64, "timing: span overflows time.Duration")
	return time.Duration(ns)
}
