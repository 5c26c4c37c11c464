// SPDX-License-Identifier: MIT
// Package: ringmaze/render
//
// canvas.go — the drawing contract and the border tracer.

package render

import (
	"github.com/jbeda/geom"

	"github.com/katalvlaran/ringmaze/maze"
)

// Canvas receives drawing calls from Trace.
type Canvas interface {
	// MoveTo starts a new stroke at p.
	MoveTo(p geom.Coord)
	// ArcTo draws a clockwise arc of the given radius from the current point
	// to p; largeArc is set when the arc spans more than half a turn.
	ArcTo(radius float64, largeArc bool, p geom.Coord)
	// LineTo draws a straight segment from the current point to p.
	LineTo(p geom.Coord)
	// Circle draws a full circle.
	Circle(center geom.Coord, radius float64)
}

// Trace draws every border onto c in order.
// Closed borders become circles, other arcs start with MoveTo at Start and
// sweep clockwise to End, lines run from Start outward to End.
func Trace(l Layout, borders []maze.Border, c Canvas) {
	for _, b := range borders {
		r := l.Radius(b.Start.Ring)
		if b.IsClosed() {
			c.Circle(l.Center(), r)
			continue
		}

		c.MoveTo(l.Point(b.Start))
		switch b.Type() {
		case maze.Arc:
			sweep := b.End.Angle.Sub(b.Start.Angle)
			c.ArcTo(r, sweep.Turns() > 0.5, l.Point(b.End))
		default:
			c.LineTo(l.Point(b.End))
		}
	}
}
