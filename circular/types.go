// SPDX-License-Identifier: MIT
// Package: ringmaze/circular
//
// types.go — coordinates, directions and claim states.

package circular

import (
	"fmt"

	"github.com/katalvlaran/ringmaze/angle"
)

// Coordinate identifies one grid position: a ring index and an exact angle.
// Ring 0 is the innermost ring. Coordinate is comparable and usable as a map key.
type Coordinate struct {
	Ring  uint32
	Angle angle.Angle
}

// At is shorthand for Coordinate{Ring: ring, Angle: angle.New(num, den)}.
func At(ring, num, den uint32) Coordinate {
	return Coordinate{Ring: ring, Angle: angle.New(num, den)}
}

// Compare orders coordinates by ring, then by angle.
// Returns -1, 0 or +1.
func (c Coordinate) Compare(o Coordinate) int {
	switch {
	case c.Ring < o.Ring:
		return -1
	case c.Ring > o.Ring:
		return 1
	default:
		return c.Angle.Cmp(o.Angle)
	}
}

// Less reports whether c sorts before o.
func (c Coordinate) Less(o Coordinate) bool { return c.Compare(o) < 0 }

// String renders c as "ring@num/den".
func (c Coordinate) String() string {
	return fmt.Sprintf("%d@%s", c.Ring, c.Angle)
}

// Direction selects one of the four possible neighbours of a coordinate.
type Direction int

const (
	// Inward moves to ring-1 at the same angle.
	Inward Direction = iota
	// Outward moves to ring+1 at the same angle.
	Outward
	// Clockwise moves to the next valid position on the same ring.
	Clockwise
	// CounterClockwise moves to the previous valid position on the same ring.
	CounterClockwise
)

// Directions returns all four directions in a fixed order.
func Directions() [4]Direction {
	return [4]Direction{Inward, Outward, Clockwise, CounterClockwise}
}

// Radial reports whether d crosses rings (Inward or Outward).
func (d Direction) Radial() bool { return d == Inward || d == Outward }

// Opposite returns the direction leading back.
func (d Direction) Opposite() Direction {
	switch d {
	case Inward:
		return Outward
	case Outward:
		return Inward
	case Clockwise:
		return CounterClockwise
	default:
		return Clockwise
	}
}

func (d Direction) String() string {
	switch d {
	case Inward:
		return "inward"
	case Outward:
		return "outward"
	case Clockwise:
		return "clockwise"
	case CounterClockwise:
		return "counter-clockwise"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// CellState tells whether a take call claimed a coordinate just now.
type CellState int

const (
	// Free means the coordinate was unclaimed and is now claimed by the caller.
	Free CellState = iota
	// Taken means the coordinate had already been claimed earlier.
	Taken
)

func (s CellState) String() string {
	if s == Free {
		return "free"
	}
	return "taken"
}
