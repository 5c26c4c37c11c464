// SPDX-License-Identifier: MIT
// Package: ringmaze/render
//
// layout.go — polar grid positions to Cartesian points.

package render

import (
	"errors"
	"fmt"
	"math"

	"github.com/jbeda/geom"

	"github.com/katalvlaran/ringmaze/circular"
)

const (
	// DefaultRingWidth is the radial gap between neighbouring ring walls.
	DefaultRingWidth = 20.0
	// DefaultMargin is the blank border around the outer ring.
	DefaultMargin = 10.0
)

// ErrLayout indicates a layout that cannot be drawn.
var ErrLayout = errors.New("render: invalid layout")

// Layout places a maze with Rings rings on a square drawing.
type Layout struct {
	Rings     int
	RingWidth float64
	Margin    float64
}

// NewLayout returns a layout for rings rings with default spacing.
func NewLayout(rings int) Layout {
	return Layout{Rings: rings, RingWidth: DefaultRingWidth, Margin: DefaultMargin}
}

// Validate returns ErrLayout for non-positive Rings or RingWidth, or a negative Margin.
func (l Layout) Validate() error {
	if l.Rings < 1 || !(l.RingWidth > 0) || l.Margin < 0 || math.IsInf(l.RingWidth, 0) {
		return fmt.Errorf("Validate: rings=%d ring width=%v margin=%v: %w", l.Rings, l.RingWidth, l.Margin, ErrLayout)
	}
	return nil
}

// Size returns the edge length of the drawing.
func (l Layout) Size() float64 {
	return 2 * (float64(l.Rings)*l.RingWidth + l.Margin)
}

// Center returns the common centre of all rings.
func (l Layout) Center() geom.Coord {
	h := l.Size() / 2
	return geom.Coord{X: h, Y: h}
}

// Bounds returns the drawing rectangle, origin at the top-left corner.
func (l Layout) Bounds() geom.Rect {
	return geom.Rect{Min: geom.Coord{}, Max: geom.Coord{X: l.Size(), Y: l.Size()}}
}

// Radius returns the radius of ring's wall.
func (l Layout) Radius(ring uint32) float64 {
	return float64(ring+1) * l.RingWidth
}

// Point returns the Cartesian position of c.
func (l Layout) Point(c circular.Coordinate) geom.Coord {
	theta := c.Angle.Radians()
	dir := geom.Coord{X: math.Cos(theta), Y: math.Sin(theta)}
	return dir.Times(l.Radius(c.Ring)).Plus(l.Center())
}

// sweepAngles lifts a2 into (a1, a1+2π] so that a1→a2 is the clockwise sweep
// on screen. For a clockwise arc the end points fix the sweep, so the
// large-arc flag needs no separate handling.
func sweepAngles(a1, a2 float64) (float64, float64) {
	for a2 <= a1 {
		a2 += 2 * math.Pi
	}
	return a1, a2
}

// angleAt returns the screen angle of p around the centre, for canvases that
// draw arcs by angle rather than by end point.
func (l Layout) angleAt(p geom.Coord) float64 {
	d := p.Minus(l.Center())
	return math.Atan2(d.Y, d.X)
}
