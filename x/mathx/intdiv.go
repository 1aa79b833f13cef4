package mathx

import (
	"golang.org/x/exp/constraints"

	"boardcore/assert"
)

// FloorDiv returns a/b truncated toward zero.
// b must be non-zero.
func FloorDiv[T constraints.Unsigned](a, b T) T {
	assert.That(b != 0, "mathx: divide by zero")
	return a / b
}

// CeilDiv returns ceil(a/b). b must be non-zero and a+b-1 must not overflow T.
func CeilDiv[T constraints.Unsigned](a, b T) T {
	assert.That(b != 0, "mathx: divide by zero")
	return (a + b - 1) / b
}

// RoundDiv returns floor((a + b/2)/b): round to nearest, ties away from zero.
// b must be non-zero and a+b/2 must not overflow T.
func RoundDiv[T constraints.Unsigned](a, b T) T {
	assert.That(b != 0, "mathx: divide by zero")
	return (a + b/2) / b
}
