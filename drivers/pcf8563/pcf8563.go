// Package pcf8563 drives the countdown timer of an NXP PCF8563 RTC as a
// low-power wakeup source. Only the timer and its interrupt flag are
// touched; the calendar registers are left alone.
//
//	d := pcf8563.New(bus)
//	w, err := d.ArmWakeup(500) // INT asserts after ~500 ms
//
// The countdown counts ticks of one of four prescaled outputs of the
// 32.768 kHz crystal. ArmWakeup picks the finest source whose 8-bit counter
// can hold the requested delay, converting with truncating division, so the
// wakeup may come up to one tick early.
package pcf8563

import (
	"errors"

	"tinygo.org/x/drivers"

	"boardcore/errcode"
	"boardcore/timing"
	"boardcore/x/bitx"
)

// I2C address.
const Address = 0x51

// Registers.
const (
	regControl2     = 0x01
	regTimerControl = 0x0E
	regTimer        = 0x0F
)

// Control_status_2 bits.
const (
	bitTIE = 0 // timer interrupt enable
	bitTF  = 2 // timer flag
)

// Timer_control bits.
const (
	bitTE  = 7 // timer enable
	tdMask = 0x03
)

// CrystalHz is the oscillator all timer sources divide down from.
const CrystalHz = 32768

// Errors returned by the driver.
var (
	ErrTooShort = errors.New("pcf8563: delay shorter than one timer tick")
	ErrTooLong  = errors.New("pcf8563: delay exceeds timer range")
)

// Source selects the countdown clock (TD bits).
type Source uint8

const (
	Source4096Hz Source = iota
	Source64Hz
	Source1Hz
	Source1_60Hz
)

var sourceDividers = [...]uint32{
	Source4096Hz: 8,
	Source64Hz:   512,
	Source1Hz:    32768,
	Source1_60Hz: 32768 * 60,
}

func (s Source) String() string {
	switch s {
	case Source4096Hz:
		return "4096Hz"
	case Source64Hz:
		return "64Hz"
	case Source1Hz:
		return "1Hz"
	case Source1_60Hz:
		return "1/60Hz"
	}
	return "invalid"
}

// Clock returns the tick source configuration for s.
func (s Source) Clock() timing.ClockConfig {
	return timing.ClockConfig{OscillatorHz: CrystalHz, Divider: sourceDividers[s&tdMask]}
}

// Wakeup describes an armed countdown.
type Wakeup struct {
	Source Source
	Count  uint8 // value loaded into the countdown register
	Tick   timing.TickDuration
}

// Micros returns the armed span in microseconds.
func (w Wakeup) Micros() uint64 {
	return w.Tick.TicksToUs(timing.Ticks(w.Count))
}

// Device wraps an I2C connection to a PCF8563.
type Device struct {
	bus     drivers.I2C
	Address uint16

	ticks [4]timing.TickDuration
	buf   [2]byte
}

// New creates a Device. The bus must already be configured; the chip is not
// touched.
func New(bus drivers.I2C) Device {
	d := Device{bus: bus, Address: Address}
	for s := range d.ticks {
		d.ticks[s] = timing.Derive(Source(s).Clock())
	}
	return d
}

// Plan chooses the source and count for ms without touching the bus.
func (d *Device) Plan(ms uint32) (Wakeup, error) {
	if ms > timing.MaxDelayMs {
		return Wakeup{}, ErrTooLong
	}
	for s, tick := range d.ticks {
		n := tick.MsToTicks(ms)
		if n == 0 {
			if s == 0 {
				return Wakeup{}, ErrTooShort
			}
			continue
		}
		if n <= 0xFF {
			return Wakeup{Source: Source(s), Count: uint8(n), Tick: tick}, nil
		}
	}
	return Wakeup{}, ErrTooLong
}

// ArmWakeup programs the countdown for ms and enables the timer interrupt.
// Any pending timer flag is cleared.
func (d *Device) ArmWakeup(ms uint32) (Wakeup, error) {
	w, err := d.Plan(ms)
	if err != nil {
		return Wakeup{}, &errcode.E{C: errcode.OutOfRange, Op: "pcf8563.arm", Err: err}
	}
	// Stop the timer while reloading so a stale count cannot fire.
	if err := d.writeReg(regTimerControl, uint8(w.Source)); err != nil {
		return Wakeup{}, wrap("pcf8563.arm", err)
	}
	if err := d.writeReg(regTimer, w.Count); err != nil {
		return Wakeup{}, wrap("pcf8563.arm", err)
	}
	if err := d.writeReg(regTimerControl, bitx.SetBit(uint8(w.Source), bitTE)); err != nil {
		return Wakeup{}, wrap("pcf8563.arm", err)
	}
	err = d.updateReg(regControl2, func(v uint8) uint8 {
		return bitx.SetBit(bitx.ClearBit(v, bitTF), bitTIE)
	})
	if err != nil {
		return Wakeup{}, wrap("pcf8563.arm", err)
	}
	return w, nil
}

// Disarm stops the countdown and masks its interrupt.
func (d *Device) Disarm() error {
	err := d.updateReg(regTimerControl, func(v uint8) uint8 { return bitx.ClearBit(v, bitTE) })
	if err != nil {
		return wrap("pcf8563.disarm", err)
	}
	err = d.updateReg(regControl2, func(v uint8) uint8 { return bitx.ClearBit(v, bitTIE) })
	return wrap("pcf8563.disarm", err)
}

// Fired reports whether the countdown has reached zero since the flag was
// last cleared.
func (d *Device) Fired() (bool, error) {
	v, err := d.readReg(regControl2)
	if err != nil {
		return false, wrap("pcf8563.fired", err)
	}
	return bitx.HasBit(v, bitTF), nil
}

// ClearFlag acknowledges a fired countdown, releasing INT.
func (d *Device) ClearFlag() error {
	err := d.updateReg(regControl2, func(v uint8) uint8 { return bitx.ClearBit(v, bitTF) })
	return wrap("pcf8563.clear", err)
}

// Remaining reads the live countdown value.
func (d *Device) Remaining() (uint8, error) {
	v, err := d.readReg(regTimer)
	return v, wrap("pcf8563.remaining", err)
}

func (d *Device) readReg(reg uint8) (uint8, error) {
	d.buf[0] = reg
	if err := d.bus.Tx(d.Address, d.buf[:1], d.buf[1:2]); err != nil {
		return 0, err
	}
	return d.buf[1], nil
}

func (d *Device) writeReg(reg, v uint8) error {
	d.buf[0], d.buf[1] = reg, v
	return d.bus.Tx(d.Address, d.buf[:2], nil)
}

func (d *Device) updateReg(reg uint8, fn func(uint8) uint8) error {
	v, err := d.readReg(reg)
	if err != nil {
		return err
	}
	return d.writeReg(reg, fn(v))
}

func wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	return &errcode.E{C: errcode.MapDriverErr(err), Op: op, Err: err}
}
