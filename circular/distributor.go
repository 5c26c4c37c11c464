// SPDX-License-Identifier: MIT
// Package: ringmaze/circular
//
// distributor.go — claim bookkeeping over an immutable Grid.
//
// Contract:
//   • Claiming is monotonic: a coordinate, once claimed, is never released.
//   • Every take call that returns a coordinate also claims it and reports
//     whether it was Free (claimed just now) or Taken (claimed before).
//   • Neighbours are recomputed by Grid.Neighbour on every call; the
//     Distributor keeps no adjacency index.
//   • A Distributor is single-owner state; it is not safe for concurrent use.

package circular

// Distributor hands out grid coordinates exactly once.
//
// The unclaimed set is a dense slice plus a position index, so TakeFree picks
// uniformly in O(1) and claiming swap-removes in O(1).
type Distributor struct {
	grid   *Grid
	picker Picker
	free   []Coordinate
	slot   map[Coordinate]int
}

// NewDistributor returns a Distributor with every coordinate of g unclaimed.
// Complexity: O(n) time and memory.
func NewDistributor(g *Grid, opts ...Option) *Distributor {
	cfg := newConfig(opts...)
	d := &Distributor{
		grid:   g,
		picker: cfg.picker,
		free:   g.All(),
		slot:   make(map[Coordinate]int, g.Len()),
	}
	for i, c := range d.free {
		d.slot[c] = i
	}
	return d
}

// Grid returns the geometry the Distributor was built on.
func (d *Distributor) Grid() *Grid { return d.grid }

// Len returns the total number of coordinates, claimed or not.
func (d *Distributor) Len() int { return d.grid.Len() }

// FreeCount returns the number of unclaimed coordinates.
func (d *Distributor) FreeCount() int { return len(d.free) }

// ClaimedCount returns the number of claimed coordinates.
func (d *Distributor) ClaimedCount() int { return d.grid.Len() - len(d.free) }

// Claimed reports whether c is a grid coordinate that has been claimed.
func (d *Distributor) Claimed(c Coordinate) bool {
	if _, open := d.slot[c]; open {
		return false
	}
	return d.grid.Contains(c)
}

// TakeFromOuterCircle picks a random coordinate on the outer ring and claims it.
// The returned state is Free on the first claim and Taken afterwards.
func (d *Distributor) TakeFromOuterCircle() (Coordinate, CellState) {
	ring := d.grid.rings[d.grid.outerRing]
	c := ring[d.picker.Intn(len(ring))]
	return c, d.claim(c)
}

// ConsumeOuterCircle claims every coordinate on the outer ring.
func (d *Distributor) ConsumeOuterCircle() {
	for _, c := range d.grid.rings[d.grid.outerRing] {
		d.claim(c)
	}
}

// TakeFree claims and returns a uniformly random unclaimed coordinate.
// Returns false once every coordinate has been claimed.
func (d *Distributor) TakeFree() (Coordinate, bool) {
	if len(d.free) == 0 {
		return Coordinate{}, false
	}
	c := d.free[d.picker.Intn(len(d.free))]
	d.claim(c)
	return c, true
}

// TakeNeighbour derives the neighbour of c in direction dir, claims it and
// reports its previous state. Returns false when no such neighbour exists.
func (d *Distributor) TakeNeighbour(c Coordinate, dir Direction) (Coordinate, CellState, bool) {
	n, ok := d.grid.Neighbour(c, dir)
	if !ok {
		return Coordinate{}, Taken, false
	}
	return n, d.claim(n), true
}

// claim removes c from the unclaimed set and reports its prior state.
func (d *Distributor) claim(c Coordinate) CellState {
	i, open := d.slot[c]
	if !open {
		return Taken
	}
	last := len(d.free) - 1
	moved := d.free[last]
	d.free[i] = moved
	d.slot[moved] = i
	d.free = d.free[:last]
	delete(d.slot, c)
	return Free
}
