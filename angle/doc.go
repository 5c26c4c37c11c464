// SPDX-License-Identifier: MIT
// Package: ringmaze/angle

// Package angle provides an exact rational position around a circle.
//
// What:
//
//   - Angle is a fraction n/d in [0,1), measured in turns, stored in lowest terms.
//   - Arithmetic (Add, Sub) wraps modulo one full turn.
//   - Equality is plain struct equality, so Angle can be used as a map key.
//   - Ordering (Cmp, Less) uses exact cross multiplication, never floats.
//
// Why:
//
//   - Rings of a circular grid are subdivided into different slice counts.
//     Floating-point positions drift apart at deep rings and make
//     "is this the same spoke?" questions unreliable. Rationals do not.
//
// Conversions to float (Turns, Radians) exist only for renderers.
//
// Complexity:
//
//   - New / Add / Sub: O(log d) for the gcd reduction.
//   - Cmp / Less / MultipleOf: O(1).
package angle
