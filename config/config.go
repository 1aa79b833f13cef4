// Package config resolves the board clock configuration: which low-speed
// oscillator feeds the RTC and how it is divided. Boards are described in
// JSON, either embedded at build time or supplied by the caller.
package config

import (
	"math"

	"github.com/andreyvit/tinyjson"

	"boardcore/errcode"
	"boardcore/timing"
)

// Board is the clock description of one target. JSON keys: name, lse_hz,
// rtcclk_div, wucksel, async_prescaler, sync_prescaler.
type Board struct {
	Name           string
	LSEHz          uint32
	RTCClockDiv    uint32
	WakeupSel      uint32
	AsyncPrescaler uint8
	SyncPrescaler  uint16
}

// Load decodes one board and applies defaults for missing fields.
func Load(raw []byte) (Board, error) {
	var b Board
	if err := decode(&b, raw); err != nil {
		return Board{}, err
	}
	applyDefaults(&b)
	if err := b.Validate(); err != nil {
		return Board{}, err
	}
	return b, nil
}

// decode parses raw into b. tinyjson reports malformed input by panicking,
// usually with a string, sometimes with a runtime bounds error on truncated
// literals; both become InvalidParams.
func decode(b *Board, raw []byte) (err error) {
	defer func() {
		switch r := recover().(type) {
		case nil:
		case string:
			err = &errcode.E{C: errcode.InvalidParams, Op: "config.load", Msg: r}
		case error:
			err = &errcode.E{C: errcode.InvalidParams, Op: "config.load", Err: r}
		default:
			panic(r)
		}
	}()
	r := tinyjson.Raw(raw)
	b.decodeJSON(&r)
	r.EnsureEOF()
	return nil
}

func (b *Board) decodeJSON(raw *tinyjson.Raw) {
	for key := raw.StartObject(); key != nil; key = raw.ContinueObject() {
		switch k := key.Str(); k {
		case "name":
			b.Name = raw.Str()
		case "lse_hz":
			b.LSEHz = uint32(uintField(raw, k, math.MaxUint32))
		case "rtcclk_div":
			b.RTCClockDiv = uint32(uintField(raw, k, math.MaxUint32))
		case "wucksel":
			b.WakeupSel = uint32(uintField(raw, k, math.MaxUint32))
		case "async_prescaler":
			b.AsyncPrescaler = uint8(uintField(raw, k, math.MaxUint8))
		case "sync_prescaler":
			b.SyncPrescaler = uint16(uintField(raw, k, math.MaxUint16))
		default:
			raw.Skip()
		}
	}
}

func uintField(raw *tinyjson.Raw, key string, limit uint64) uint64 {
	v := raw.Uint64()
	if v > limit {
		panic(key + " out of range")
	}
	return v
}

// applyDefaults fills in the STM32WB values for anything left at zero.
func applyDefaults(b *Board) {
	if b.LSEHz == 0 {
		b.LSEHz = timing.LSEHz
	}
	if b.RTCClockDiv == 0 {
		b.RTCClockDiv = timing.RTCClockDiv
	}
	if b.AsyncPrescaler == 0 && b.SyncPrescaler == 0 {
		b.AsyncPrescaler = timing.RTCAsyncPrescale
		b.SyncPrescaler = timing.RTCSyncPrescale
	}
}

// Validate checks the invariants the timing core relies on.
func (b Board) Validate() error {
	switch {
	case b.LSEHz == 0:
		return &errcode.E{C: errcode.InvalidParams, Op: "config.validate", Msg: "lse_hz must be > 0"}
	case b.RTCClockDiv == 0:
		return &errcode.E{C: errcode.InvalidParams, Op: "config.validate", Msg: "rtcclk_div must be > 0"}
	case !b.Clock().InRange():
		return &errcode.E{C: errcode.OutOfRange, Op: "config.validate", Msg: "tick too long"}
	case b.Clock().TickHz() == 0:
		return &errcode.E{C: errcode.OutOfRange, Op: "config.validate", Msg: "tick rate rounds to 0 Hz"}
	case timing.Derive(b.Clock()).Microseconds == 0:
		return &errcode.E{C: errcode.OutOfRange, Op: "config.validate", Msg: "tick shorter than 1us"}
	case b.Prescalers().CalendarHz(b.LSEHz) == 0:
		return &errcode.E{C: errcode.OutOfRange, Op: "config.validate", Msg: "prescalers exceed oscillator"}
	}
	return nil
}

// Clock returns the ClockConfig for the wakeup timer.
func (b Board) Clock() timing.ClockConfig {
	return timing.ClockConfig{
		OscillatorHz:     b.LSEHz,
		Divider:          b.RTCClockDiv,
		WakeupSelDivider: b.WakeupSel,
	}
}

// Prescalers returns the calendar prescalers.
func (b Board) Prescalers() timing.Prescalers {
	return timing.Prescalers{Async: b.AsyncPrescaler, Sync: b.SyncPrescaler}
}
