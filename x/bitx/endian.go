package bitx

import (
	"encoding/binary"

	"boardcore/assert"
)

// The two 32-bit buffer helpers use opposite byte orders and are not
// inverses of each other: PutUint32LE(b, 0x12345678) followed by
// Uint32BE(b) yields 0x78563412. Consumers rely on both orders as they are.

// Uint32BE reads b[0:4] with b[0] as the most significant byte.
func Uint32BE(b []byte) uint32 {
	assert.That(len(b) >= 4, "bitx: buffer shorter than 4 bytes")
	return binary.BigEndian.Uint32(b)
}

// PutUint32LE writes v into b[0:4] with b[0] as the least significant byte.
func PutUint32LE(b []byte, v uint32) {
	assert.That(len(b) >= 4, "bitx: buffer shorter than 4 bytes")
	binary.LittleEndian.PutUint32(b, v)
}
