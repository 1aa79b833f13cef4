package bitx

import "boardcore/assert"

// Packed bit arrays are []uint32 used as a flat bit vector: bit n lives in
// word n/32 at position n%32.

const wordBits = 32

// WordsFor returns the number of uint32 words needed to hold nbits bits.
func WordsFor(nbits uint) uint { return (nbits + wordBits - 1) / wordBits }

func checkIndex(w []uint32, n uint) {
	assert.That(n/wordBits < uint(len(w)), "bitx: bit index out of range")
}

// Test returns bit n of w as 0 or 1.
func Test(w []uint32, n uint) uint32 {
	checkIndex(w, n)
	return (w[n/wordBits] >> (n % wordBits)) & 1
}

// Assign writes v (0 or 1) into bit n of w, leaving every other bit alone.
func Assign(w []uint32, n uint, v uint32) {
	checkIndex(w, n)
	assert.That(v <= 1, "bitx: bit value must be 0 or 1")
	i, s := n/wordBits, n%wordBits
	w[i] = w[i]&^(1<<s) | v<<s
}

// Set sets bit n of w.
func Set(w []uint32, n uint) { Assign(w, n, 1) }

// Clear clears bit n of w.
func Clear(w []uint32, n uint) { Assign(w, n, 0) }
