// SPDX-License-Identifier: MIT
// Package: ringmaze/circular
//
// neighbours.go — exact neighbour derivation.
//
// Policy: validity is filtered once, in NewGrid. Neighbour lookups recompute
// candidates by angle arithmetic and test them with IsValid; they never
// re-derive or patch the subdivision rule.

package circular

import "github.com/katalvlaran/ringmaze/angle"

// Next returns the clockwise neighbour of c on its own ring, wrapping at one
// full turn. It steps by the ring's slice width and skips rejected candidates.
// Returns false if c is not a grid coordinate.
// Complexity: O(k) where k is the number of rejected candidates skipped;
// every inner-aligned candidate is valid, so k stays small.
func (g *Grid) Next(c Coordinate) (Coordinate, bool) {
	if !g.IsValid(c.Ring, c.Angle) {
		return Coordinate{}, false
	}
	step := g.Step(c.Ring)
	a := c.Angle
	for i := uint32(0); i < g.Slices(c.Ring); i++ {
		a = a.Add(step)
		if g.validIndex(c.Ring, latticeIndex(a, g.Slices(c.Ring))) {
			break
		}
	}
	return Coordinate{Ring: c.Ring, Angle: a}, true
}

// Prev returns the counter-clockwise neighbour of c on its own ring.
// Returns false if c is not a grid coordinate.
func (g *Grid) Prev(c Coordinate) (Coordinate, bool) {
	if !g.IsValid(c.Ring, c.Angle) {
		return Coordinate{}, false
	}
	step := g.Step(c.Ring)
	a := c.Angle
	for i := uint32(0); i < g.Slices(c.Ring); i++ {
		a = a.Sub(step)
		if g.validIndex(c.Ring, latticeIndex(a, g.Slices(c.Ring))) {
			break
		}
	}
	return Coordinate{Ring: c.Ring, Angle: a}, true
}

// Neighbour returns the coordinate adjacent to c in direction d.
//
// Radial moves keep the angle and succeed only if that exact angle is valid on
// the target ring: no Inward from ring 0, no Outward from the outer ring, and
// no spoke where the target ring has no matching position.
// Rotational moves always succeed for a valid c (a ring with a single position
// is its own neighbour).
func (g *Grid) Neighbour(c Coordinate, d Direction) (Coordinate, bool) {
	if !g.IsValid(c.Ring, c.Angle) {
		return Coordinate{}, false
	}
	switch d {
	case Inward:
		if c.Ring == 0 || !g.IsValid(c.Ring-1, c.Angle) {
			return Coordinate{}, false
		}
		return Coordinate{Ring: c.Ring - 1, Angle: c.Angle}, true
	case Outward:
		if c.Ring == g.outerRing || !g.IsValid(c.Ring+1, c.Angle) {
			return Coordinate{}, false
		}
		return Coordinate{Ring: c.Ring + 1, Angle: c.Angle}, true
	case Clockwise:
		return g.Next(c)
	case CounterClockwise:
		return g.Prev(c)
	default:
		return Coordinate{}, false
	}
}

// latticeIndex returns k for an angle known to lie on the k/n lattice.
// Sums of lattice angles stay on the lattice, so the flag is not consulted.
func latticeIndex(a angle.Angle, n uint32) uint32 {
	k, _ := a.Scaled(n)
	return k
}
