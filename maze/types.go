// SPDX-License-Identifier: MIT
// Package: ringmaze/maze
//
// types.go — borders, border types, builder states and the Distributor capability.

package maze

import (
	"fmt"

	"github.com/katalvlaran/ringmaze/circular"
)

// Distributor is everything the Builder needs from a grid: claiming and
// neighbour derivation. *circular.Distributor satisfies it.
type Distributor interface {
	// TakeFromOuterCircle claims a random outer-ring coordinate.
	TakeFromOuterCircle() (circular.Coordinate, circular.CellState)
	// ConsumeOuterCircle claims the whole outer ring.
	ConsumeOuterCircle()
	// TakeFree claims a random unclaimed coordinate; false when none is left.
	TakeFree() (circular.Coordinate, bool)
	// TakeNeighbour claims the neighbour of c in dir; false when none exists.
	TakeNeighbour(c circular.Coordinate, dir circular.Direction) (circular.Coordinate, circular.CellState, bool)
	// Len returns the total number of coordinates.
	Len() int
}

var _ Distributor = (*circular.Distributor)(nil)

// BorderType tells a wall along a ring from a wall between rings.
type BorderType int

const (
	// Arc is a wall along one ring, oriented clockwise.
	Arc BorderType = iota
	// Line is a radial wall, oriented outward.
	Line
)

func (t BorderType) String() string {
	if t == Arc {
		return "arc"
	}
	return "line"
}

// Border is one contiguous wall. Its type follows from the endpoints:
// both on the same ring makes an Arc, otherwise a Line.
type Border struct {
	Start circular.Coordinate
	End   circular.Coordinate
}

// Type returns Arc when Start and End share a ring, Line otherwise.
func (b Border) Type() BorderType {
	if b.Start.Ring == b.End.Ring {
		return Arc
	}
	return Line
}

// IsClosed reports whether b is a full ring (Start == End).
func (b Border) IsClosed() bool { return b.Start == b.End }

// String renders b as "arc 2@1/4→2@3/8".
func (b Border) String() string {
	return fmt.Sprintf("%s %s→%s", b.Type(), b.Start, b.End)
}

// State is the phase of a Builder.
type State int

const (
	// Seeding picks the entrance and lays the boundary wall.
	Seeding State = iota
	// Seeking picks the start of the next path.
	Seeking
	// Carving extends the current path.
	Carving
	// Done means every coordinate has been claimed.
	Done
)

func (s State) String() string {
	switch s {
	case Seeding:
		return "seeding"
	case Seeking:
		return "seeking"
	case Carving:
		return "carving"
	case Done:
		return "done"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}
