// SPDX-License-Identifier: MIT
// Package: ringmaze/circular
//
// grid.go — enumeration of valid coordinates on concentric rings.
//
// Contract:
//   • Ring r (0 ≤ r ≤ OuterRing) is cut into (r+1)·BaseSubdivision candidate
//     slices k/((r+1)·S).
//   • Ring 0 keeps every candidate.
//   • Ring r>0 keeps a candidate iff it is aligned with the r·S lattice of the
//     ring inside it, or both gaps to the nearest inner-aligned positions are
//     at least MinDistance own-slice widths.
//   • The rule is evaluated with integers only; MinDistance is fixed to
//     1/minDistanceResolution once, at construction.
//   • A Grid is immutable after NewGrid returns and safe for concurrent reads.

package circular

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/ringmaze/angle"
)

const (
	methodNewGrid = "NewGrid"

	// minDistanceResolution is the denominator MinDistance is rounded to.
	minDistanceResolution = 10000

	// maxMinDistance caps MinDistance: an inner gap is at most (r+1)/r ≤ 2
	// own slices wide, so larger values reject exactly the same candidates.
	maxMinDistance = 2.0
)

// Grid is the immutable set of valid coordinates, ring by ring, each ring
// sorted ascending by angle.
type Grid struct {
	outerRing   uint32
	base        uint32
	minDistance float64
	minNum      uint64 // MinDistance · minDistanceResolution, rounded
	rings       [][]Coordinate
	total       int
}

// NewGrid enumerates all valid coordinates on rings 0..outerRing.
//
// Parameters:
//   - outerRing:       index of the boundary ring, ≥ 1.
//   - baseSubdivision: slices on ring 0, ≥ 1.
//   - minDistance:     minimum gap, in own-slice widths, between a
//     subdivision point and the inner-aligned positions around it.
//
// Returns ErrTooFewRings, ErrTooFewSlices, ErrMinDistance or ErrGridTooLarge.
// Complexity: O(R²·S) time and memory.
func NewGrid(outerRing, baseSubdivision int, minDistance float64) (*Grid, error) {
	if outerRing < 1 {
		return nil, fmt.Errorf("%s: outerRing=%d: %w", methodNewGrid, outerRing, ErrTooFewRings)
	}
	if baseSubdivision < 1 {
		return nil, fmt.Errorf("%s: baseSubdivision=%d: %w", methodNewGrid, baseSubdivision, ErrTooFewSlices)
	}
	if math.IsNaN(minDistance) || math.IsInf(minDistance, 0) || minDistance < 0 {
		return nil, fmt.Errorf("%s: minDistance=%v: %w", methodNewGrid, minDistance, ErrMinDistance)
	}
	if outerRing >= angle.MaxDenominator || baseSubdivision > angle.MaxDenominator ||
		(int64(outerRing)+1)*int64(baseSubdivision) > angle.MaxDenominator {
		return nil, fmt.Errorf("%s: %d rings × %d slices exceeds %d slices per ring: %w",
			methodNewGrid, outerRing+1, baseSubdivision, angle.MaxDenominator, ErrGridTooLarge)
	}

	g := &Grid{
		outerRing:   uint32(outerRing),
		base:        uint32(baseSubdivision),
		minDistance: minDistance,
		minNum:      uint64(math.Round(math.Min(minDistance, maxMinDistance) * minDistanceResolution)),
		rings:       make([][]Coordinate, outerRing+1),
	}
	for r := uint32(0); r <= g.outerRing; r++ {
		g.rings[r] = g.enumerate(r)
		g.total += len(g.rings[r])
	}

	return g, nil
}

// enumerate lists the valid coordinates of one ring in ascending angle order.
func (g *Grid) enumerate(ring uint32) []Coordinate {
	n := g.Slices(ring)
	coords := make([]Coordinate, 0, n)
	for k := uint32(0); k < n; k++ {
		if g.validIndex(ring, k) {
			coords = append(coords, Coordinate{Ring: ring, Angle: angle.New(k, n)})
		}
	}
	return coords
}

// validIndex applies the subdivision rule to candidate k/((ring+1)·S).
//
// With m = (ring+1)·S own slices and p = ring·S inner slices, the candidate
// sits between inner positions j/p and (j+1)/p where j = ⌊k·p/m⌋. Measured in
// own-slice widths the gaps are left/p and right/p with
// left = k·p − j·m and right = (j+1)·m − k·p.
func (g *Grid) validIndex(ring, k uint32) bool {
	if ring == 0 || g.minNum == 0 {
		return true
	}
	m := uint64(ring+1) * uint64(g.base)
	p := uint64(ring) * uint64(g.base)
	kp := uint64(k) * p
	if kp%m == 0 {
		return true // a spoke from the inner ring passes here
	}
	j := kp / m
	left := kp - j*m
	right := (j+1)*m - kp
	need := g.minNum * p

	return left*minDistanceResolution >= need && right*minDistanceResolution >= need
}

// IsValid reports whether a is a grid position on ring.
// It is a pure arithmetic check; no lookup is involved.
func (g *Grid) IsValid(ring uint32, a angle.Angle) bool {
	if ring > g.outerRing {
		return false
	}
	k, ok := a.Scaled(g.Slices(ring))
	if !ok {
		return false
	}
	return g.validIndex(ring, k)
}

// OuterRing returns the index of the boundary ring.
func (g *Grid) OuterRing() uint32 { return g.outerRing }

// BaseSubdivision returns the slice count of ring 0.
func (g *Grid) BaseSubdivision() uint32 { return g.base }

// MinDistance returns the configured minimum distance.
func (g *Grid) MinDistance() float64 { return g.minDistance }

// Rings returns the number of rings, OuterRing()+1.
func (g *Grid) Rings() int { return len(g.rings) }

// Slices returns the candidate slice count (ring+1)·BaseSubdivision.
func (g *Grid) Slices(ring uint32) uint32 { return (ring + 1) * g.base }

// Step returns the angular width of one candidate slice on ring.
func (g *Grid) Step(ring uint32) angle.Angle { return angle.New(1, g.Slices(ring)) }

// Len returns the total number of coordinates on all rings.
func (g *Grid) Len() int { return g.total }

// Ring returns a copy of the sorted coordinates of ring r, or nil if r is out of range.
func (g *Grid) Ring(r uint32) []Coordinate {
	if r > g.outerRing {
		return nil
	}
	out := make([]Coordinate, len(g.rings[r]))
	copy(out, g.rings[r])
	return out
}

// All returns every coordinate ordered by ring, then angle.
func (g *Grid) All() []Coordinate {
	out := make([]Coordinate, 0, g.total)
	for _, ring := range g.rings {
		out = append(out, ring...)
	}
	return out
}

// Index locates c within its ring by binary search.
// Complexity: O(log n).
func (g *Grid) Index(c Coordinate) (int, bool) {
	if c.Ring > g.outerRing {
		return 0, false
	}
	ring := g.rings[c.Ring]
	i := sort.Search(len(ring), func(i int) bool {
		return ring[i].Angle.Cmp(c.Angle) >= 0
	})
	if i < len(ring) && ring[i] == c {
		return i, true
	}
	return 0, false
}

// Contains reports whether c is one of the enumerated coordinates.
func (g *Grid) Contains(c Coordinate) bool {
	_, ok := g.Index(c)
	return ok
}
