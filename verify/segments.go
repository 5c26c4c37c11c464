// SPDX-License-Identifier: MIT
// Package: ringmaze/verify
//
// segments.go — expansion of merged borders into unit wall segments.

package verify

import (
	"fmt"

	"github.com/katalvlaran/ringmaze/circular"
	"github.com/katalvlaran/ringmaze/maze"
)

const methodSegments = "Segments"

// Segment is a wall between two neighbouring coordinates, oriented like the
// border it came from (clockwise or outward).
type Segment struct {
	From, To circular.Coordinate
	Type     maze.BorderType
}

// Segments expands borders into unit segments in border order.
// A closed Arc on a ring with a single coordinate is a point and yields no
// segment.
//
// Returns ErrOffGrid if an endpoint is not on g, a Line points inward, or a
// walk cannot reach the border's End.
func Segments(g *circular.Grid, borders []maze.Border) ([]Segment, error) {
	out := make([]Segment, 0, len(borders))
	for i, b := range borders {
		if !g.Contains(b.Start) || !g.Contains(b.End) {
			return nil, fmt.Errorf("%s: border %d (%s): %w", methodSegments, i, b, ErrOffGrid)
		}
		var err error
		switch b.Type() {
		case maze.Arc:
			out, err = appendArc(out, g, b)
		default:
			out, err = appendLine(out, g, b)
		}
		if err != nil {
			return nil, fmt.Errorf("%s: border %d (%s): %w", methodSegments, i, b, err)
		}
	}
	return out, nil
}

// appendArc walks clockwise from Start to End; a closed arc goes once round.
func appendArc(out []Segment, g *circular.Grid, b maze.Border) ([]Segment, error) {
	limit := len(g.Ring(b.Start.Ring))
	c := b.Start
	for steps := 0; steps < limit; steps++ {
		next, ok := g.Next(c)
		if !ok {
			return nil, ErrOffGrid
		}
		if next != c {
			out = append(out, Segment{From: c, To: next, Type: maze.Arc})
		}
		c = next
		if c == b.End {
			return out, nil
		}
	}
	return nil, fmt.Errorf("end not reached within %d steps: %w", limit, ErrOffGrid)
}

// appendLine walks outward from Start to End along one spoke.
func appendLine(out []Segment, g *circular.Grid, b maze.Border) ([]Segment, error) {
	if b.End.Ring < b.Start.Ring || b.End.Angle != b.Start.Angle {
		return nil, fmt.Errorf("line must run outward on one spoke: %w", ErrOffGrid)
	}
	c := b.Start
	for c.Ring < b.End.Ring {
		next, ok := g.Neighbour(c, circular.Outward)
		if !ok {
			return nil, fmt.Errorf("no spoke outward of %s: %w", c, ErrOffGrid)
		}
		out = append(out, Segment{From: c, To: next, Type: maze.Line})
		c = next
	}
	return out, nil
}
