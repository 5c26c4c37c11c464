// SPDX-License-Identifier: MIT
// Package: ringmaze/verify
//
// check.go — boundary, merge and coverage checks plus the combined Check.

package verify

import (
	"fmt"

	"github.com/katalvlaran/ringmaze/circular"
	"github.com/katalvlaran/ringmaze/maze"
)

// Claims is the part of a Distributor that Coverage inspects.
// *circular.Distributor satisfies it.
type Claims interface {
	Len() int
	ClaimedCount() int
}

// Report summarises a maze's walls.
type Report struct {
	Coordinates int
	Borders     int
	Arcs        int
	Lines       int
	Closed      int
	Segments    int
}

func (r Report) String() string {
	return fmt.Sprintf("%d coordinates, %d borders (%d arcs, %d lines, %d closed), %d wall segments",
		r.Coordinates, r.Borders, r.Arcs, r.Lines, r.Closed, r.Segments)
}

// Minimal returns ErrUnmerged if a non-closed border ends where another
// border of the same type starts.
// Complexity: O(B).
func Minimal(borders []maze.Border) error {
	type key struct {
		typ maze.BorderType
		at  circular.Coordinate
	}
	starts := make(map[key]int, len(borders))
	for i, b := range borders {
		if !b.IsClosed() {
			starts[key{b.Type(), b.Start}] = i
		}
	}
	for i, b := range borders {
		if b.IsClosed() {
			continue
		}
		if j, ok := starts[key{b.Type(), b.End}]; ok {
			return fmt.Errorf("Minimal: %s and %s: %w", borders[i], borders[j], ErrUnmerged)
		}
	}
	return nil
}

// Entrance checks that exactly one unit step of the outer ring is not covered
// by an Arc (none when the outer ring is a single coordinate).
func Entrance(g *circular.Grid, borders []maze.Border) error {
	segs, err := Segments(g, borders)
	if err != nil {
		return fmt.Errorf("Entrance: %w", err)
	}
	return entrance(g, segs)
}

func entrance(g *circular.Grid, segs []Segment) error {
	outer := g.OuterRing()
	ring := len(g.Ring(outer))
	walled := make(map[circular.Coordinate]bool, ring)
	for _, s := range segs {
		if s.Type == maze.Arc && s.From.Ring == outer {
			walled[s.From] = true
		}
	}
	want := ring - 1
	if ring == 1 {
		want = 0
	}
	if len(walled) != want {
		return fmt.Errorf("Entrance: %d of %d outer steps walled: %w", len(walled), ring, ErrEntrance)
	}
	return nil
}

// Coverage returns ErrUnclaimed unless every coordinate has been claimed.
func Coverage(d Claims) error {
	if d.ClaimedCount() != d.Len() {
		return fmt.Errorf("Coverage: %d of %d claimed: %w", d.ClaimedCount(), d.Len(), ErrUnclaimed)
	}
	return nil
}

// Check runs Segments, SpanningTree, Entrance and Minimal and returns the
// report with the first failure, if any.
func Check(g *circular.Grid, borders []maze.Border) (Report, error) {
	r := Report{Coordinates: g.Len(), Borders: len(borders)}
	for _, b := range borders {
		switch {
		case b.IsClosed():
			r.Closed++
			r.Arcs++
		case b.Type() == maze.Arc:
			r.Arcs++
		default:
			r.Lines++
		}
	}

	segs, err := Segments(g, borders)
	if err != nil {
		return r, fmt.Errorf("Check: %w", err)
	}
	r.Segments = len(segs)
	if err = spanningTree(g, segs); err != nil {
		return r, fmt.Errorf("Check: %w", err)
	}
	if err = entrance(g, segs); err != nil {
		return r, fmt.Errorf("Check: %w", err)
	}
	if err = Minimal(borders); err != nil {
		return r, fmt.Errorf("Check: %w", err)
	}
	return r, nil
}
