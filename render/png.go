// SPDX-License-Identifier: MIT
// Package: ringmaze/render
//
// png.go — raster canvas on gogpu/gg.

package render

import (
	"fmt"
	"image"
	"io"
	"math"

	"github.com/gogpu/gg"
	"github.com/jbeda/geom"
)

// PNGCanvas strokes borders onto a white gg context. Call Close when done.
type PNGCanvas struct {
	layout Layout
	dc     *gg.Context
	cur    geom.Coord
}

// NewPNGCanvas returns a canvas sized to l, drawing black lines of lineWidth.
func NewPNGCanvas(l Layout, lineWidth float64) *PNGCanvas {
	size := int(math.Ceil(l.Size()))
	dc := gg.NewContext(size, size)
	dc.ClearWithColor(gg.White)
	dc.SetRGB(0, 0, 0)
	dc.SetLineWidth(lineWidth)
	return &PNGCanvas{layout: l, dc: dc}
}

// MoveTo starts a new subpath at p.
func (c *PNGCanvas) MoveTo(p geom.Coord) {
	c.dc.MoveTo(p.X, p.Y)
	c.cur = p
}

// ArcTo sweeps clockwise on screen, towards increasing gg angles. The end
// angle is lifted above the start before DrawArc, so the sweep does not
// depend on how gg treats a2 < a1; largeArc follows from the end points.
func (c *PNGCanvas) ArcTo(radius float64, _ bool, p geom.Coord) {
	o := c.layout.Center()
	a1, a2 := sweepAngles(c.layout.angleAt(c.cur), c.layout.angleAt(p))
	c.dc.DrawArc(o.X, o.Y, radius, a1, a2)
	c.cur = p
}

// LineTo adds a straight segment to p.
func (c *PNGCanvas) LineTo(p geom.Coord) {
	c.dc.LineTo(p.X, p.Y)
	c.cur = p
}

// Circle adds a full circle as its own subpath.
func (c *PNGCanvas) Circle(center geom.Coord, radius float64) {
	c.dc.DrawCircle(center.X, center.Y, radius)
}

// Image strokes the pending path and returns the raster.
func (c *PNGCanvas) Image() (image.Image, error) {
	if err := c.dc.Stroke(); err != nil {
		return nil, fmt.Errorf("Image: %w", err)
	}
	return c.dc.Image(), nil
}

// Encode strokes the pending path and writes the image to w as PNG.
func (c *PNGCanvas) Encode(w io.Writer) error {
	if err := c.dc.Stroke(); err != nil {
		return fmt.Errorf("Encode: stroke: %w", err)
	}
	if err := c.dc.EncodePNG(w); err != nil {
		return fmt.Errorf("Encode: %w", err)
	}
	return nil
}

// Close releases the gg context.
func (c *PNGCanvas) Close() error {
	return c.dc.Close()
}
