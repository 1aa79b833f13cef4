// Package bitx holds the bit and byte packing helpers used to marshal
// fixed-width integers into buffers and to address packed bit arrays.
//
// Every helper is a pure function. Out-of-range arguments are programming
// errors and trip assert; nothing here returns an error.
package bitx

import (
	"math/bits"

	"golang.org/x/exp/constraints"

	"boardcore/assert"
)

// HighNibble returns bits 7..4 of x.
func HighNibble(x uint8) uint8 { return (x & 0xF0) >> 4 }

// LowNibble returns bits 3..0 of x.
func LowNibble(x uint8) uint8 { return x & 0x0F }

// HighByte returns bits 15..8 of x.
func HighByte(x uint16) uint8 { return uint8((x & 0xFF00) >> 8) }

// LowByte returns bits 7..0 of x.
func LowByte(x uint16) uint8 { return uint8(x & 0x00FF) }

// JoinNibbles packs hi into bits 7..4 and lo into bits 3..0.
func JoinNibbles(hi, lo uint8) uint8 { return (hi&0x0F)<<4 | lo&0x0F }

// JoinBytes packs hi into bits 15..8 and lo into bits 7..0.
func JoinBytes(hi, lo uint8) uint16 { return uint16(hi)<<8 | uint16(lo) }

// Width reports the number of bits in T.
func Width[T constraints.Unsigned]() uint {
	return uint(bits.Len64(uint64(^T(0))))
}

// Bit returns a T with only bit rank set.
func Bit[T constraints.Unsigned](rank uint) T {
	assert.That(rank < Width[T](), "bitx: rank out of range")
	return T(1) << rank
}

// SetBit returns v with bit rank set.
func SetBit[T constraints.Unsigned](v T, rank uint) T { return v | Bit[T](rank) }

// ClearBit returns v with bit rank cleared.
func ClearBit[T constraints.Unsigned](v T, rank uint) T { return v &^ Bit[T](rank) }

// HasBit reports whether bit rank of v is set.
func HasBit[T constraints.Unsigned](v T, rank uint) bool { return v&Bit[T](rank) != 0 }

// EventBit is the event-group flag for event number ev.
func EventBit(ev uint) uint32 { return Bit[uint32](ev) }

// ShiftRound shifts x right by n (n >= 1) rounding to nearest, ties up.
// For n == 0 it returns x unchanged.
func ShiftRound[T constraints.Unsigned](x T, n uint) T {
	if n == 0 {
		return x
	}
	assert.That(n <= Width[T](), "bitx: shift out of range")
	return ((x >> (n - 1)) + 1) >> 1
}
