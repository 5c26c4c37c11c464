// SPDX-License-Identifier: MIT
// Package: ringmaze/angle
//
// angle.go — exact rational angle in turns.
//
// Contract:
//   • Every Angle produced by this package is reduced and lies in [0,1).
//   • The zero value Angle{} is 0/1 and equals Zero.
//   • New panics on a zero denominator (programmer error).
//   • Results whose reduced denominator does not fit in uint32 panic; callers
//     keep denominators below MaxDenominator so that never happens.

package angle

import (
	"fmt"
	"math"
)

// MaxDenominator bounds the denominators callers should feed into New.
// Sums of two angles with denominators ≤ MaxDenominator always reduce to
// a denominator that fits into uint32.
const MaxDenominator = 1 << 16

// Zero is the angle 0/1, identical to the zero value Angle{}.
var Zero = Angle{}

// Angle is a reduced fraction num/den in [0,1), measured in turns.
// The denominator is stored minus one so that the zero value reads 0/1.
type Angle struct {
	num   uint32
	denM1 uint32
}

// New returns num/den reduced to lowest terms and wrapped into [0,1).
// Panics if den == 0.
// Complexity: O(log den).
func New(num, den uint32) Angle {
	if den == 0 {
		panic("angle: New with zero denominator")
	}
	return reduce(uint64(num%den), uint64(den))
}

// Num returns the reduced numerator.
func (a Angle) Num() uint32 { return a.num }

// Den returns the reduced denominator (1 for Zero).
func (a Angle) Den() uint32 { return a.denM1 + 1 }

// IsZero reports whether a is the zero angle.
func (a Angle) IsZero() bool { return a.num == 0 }

// Add returns a+b wrapped modulo one turn.
// Complexity: O(log(lcm)).
func (a Angle) Add(b Angle) Angle {
	l := lcm(uint64(a.Den()), uint64(b.Den()))
	n := uint64(a.num)*(l/uint64(a.Den())) + uint64(b.num)*(l/uint64(b.Den()))
	return reduce(n%l, l)
}

// Sub returns a-b wrapped modulo one turn.
// Complexity: O(log(lcm)).
func (a Angle) Sub(b Angle) Angle {
	l := lcm(uint64(a.Den()), uint64(b.Den()))
	x := uint64(a.num) * (l / uint64(a.Den()))
	y := uint64(b.num) * (l / uint64(b.Den()))
	if x < y {
		x += l
	}
	return reduce(x-y, l)
}

// Cmp returns -1, 0 or +1 depending on whether a is less than, equal to,
// or greater than b. Exact; no floating point involved.
func (a Angle) Cmp(b Angle) int {
	x := uint64(a.num) * uint64(b.Den())
	y := uint64(b.num) * uint64(a.Den())
	switch {
	case x < y:
		return -1
	case x > y:
		return 1
	default:
		return 0
	}
}

// Less reports whether a < b.
func (a Angle) Less(b Angle) bool { return a.Cmp(b) < 0 }

// MultipleOf reports whether a lies on the lattice {k/step}.
// A reduced n/d equals some k/step iff d divides step.
// MultipleOf(0) is always false.
func (a Angle) MultipleOf(step uint32) bool {
	if step == 0 {
		return false
	}
	return step%a.Den() == 0
}

// Scaled returns k such that a == k/step, and false when a is not on that lattice.
func (a Angle) Scaled(step uint32) (uint32, bool) {
	if !a.MultipleOf(step) {
		return 0, false
	}
	return a.num * (step / a.Den()), true
}

// Turns returns a as a floating-point fraction of a full turn.
func (a Angle) Turns() float64 {
	return float64(a.num) / float64(a.Den())
}

// Radians returns a in radians, in [0, 2π).
func (a Angle) Radians() float64 {
	return a.Turns() * 2 * math.Pi
}

// String renders a as "num/den".
func (a Angle) String() string {
	return fmt.Sprintf("%d/%d", a.num, a.Den())
}

// reduce divides n/d by gcd(n,d); n must already be < d.
func reduce(n, d uint64) Angle {
	if n == 0 {
		return Zero
	}
	g := gcd(n, d)
	n, d = n/g, d/g
	if d > math.MaxUint32 {
		panic(fmt.Sprintf("angle: denominator %d overflows uint32", d))
	}
	return Angle{num: uint32(n), denM1: uint32(d - 1)}
}

func gcd(a, b uint64) uint64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func lcm(a, b uint64) uint64 {
	return a / gcd(a, b) * b
}
