// Package circ implements index arithmetic for fixed-size ring buffers.
//
// An index is always in [0, m). Callers must never pass an index or delta
// that is already out of range: reduction is a single wrap, not a modulo.
package circ

import (
	"golang.org/x/exp/constraints"

	"boardcore/assert"
)

func check[T constraints.Unsigned](a, m T) {
	assert.That(m > 0, "circ: zero modulus")
	assert.That(a < m, "circ: index out of range")
}

// Inc returns a+1, wrapping to 0 at m.
func Inc[T constraints.Unsigned](a, m T) T {
	check(a, m)
	a++
	if a >= m {
		a = 0
	}
	return a
}

// Dec returns a-1, wrapping to m-1 below 0.
func Dec[T constraints.Unsigned](a, m T) T {
	check(a, m)
	if a == 0 {
		a = m
	}
	return a - 1
}

// Add returns (a+b) mod m for b < m.
func Add[T constraints.Unsigned](a, b, m T) T {
	check(a, m)
	assert.That(b < m, "circ: delta out of range")
	// a+b may wrap T when m is close to T's max; the subtraction below
	// still lands in range because both operands are < m.
	s := a + b
	if s >= m || s < a {
		s -= m
	}
	return s
}

// Sub returns (a-b) mod m for b < m.
func Sub[T constraints.Unsigned](a, b, m T) T {
	assert.That(b < m, "circ: delta out of range")
	if b == 0 {
		return Add(a, 0, m)
	}
	return Add(a, m-b, m)
}

// Distance returns how many Inc steps take from to to.
func Distance[T constraints.Unsigned](from, to, m T) T {
	return Sub(to, from, m)
}
