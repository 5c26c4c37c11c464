// SPDX-License-Identifier: MIT
// Package: ringmaze/render
//
// svg.go — SVG document canvas.

package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/jbeda/geom"
)

// SVGCanvas collects drawing calls into one path element plus one circle
// element per closed ring, and writes them out as a document with WriteTo.
type SVGCanvas struct {
	layout  Layout
	path    strings.Builder
	circles []svgCircle
	// Style is the inline style shared by all elements.
	Style string
}

type svgCircle struct {
	center geom.Coord
	radius float64
}

// NewSVGCanvas returns an empty canvas for l with black 2-unit strokes.
func NewSVGCanvas(l Layout) *SVGCanvas {
	return &SVGCanvas{
		layout: l,
		Style:  "fill:none;stroke:black;stroke-width:2;stroke-linecap:round",
	}
}

// MoveTo starts a new subpath at p.
func (s *SVGCanvas) MoveTo(p geom.Coord) {
	fmt.Fprintf(&s.path, "M%f,%f ", p.X, p.Y)
}

// ArcTo appends a clockwise elliptical-arc command ending at p.
func (s *SVGCanvas) ArcTo(radius float64, largeArc bool, p geom.Coord) {
	fmt.Fprintf(&s.path, "A%f,%f 0 %s,1 %f,%f ", radius, radius, onezero(largeArc), p.X, p.Y)
}

// LineTo appends a straight segment to p.
func (s *SVGCanvas) LineTo(p geom.Coord) {
	fmt.Fprintf(&s.path, "L%f,%f ", p.X, p.Y)
}

// Circle queues a separate circle element.
func (s *SVGCanvas) Circle(center geom.Coord, radius float64) {
	s.circles = append(s.circles, svgCircle{center: center, radius: radius})
}

// WriteTo writes the SVG document to w.
func (s *SVGCanvas) WriteTo(w io.Writer) (int64, error) {
	sw := &svgWriter{w: w}
	sw.start(s.layout.Bounds())
	if d := strings.TrimSpace(s.path.String()); d != "" {
		sw.printf("<path d='%s' style='%s'/>\n", d, s.Style)
	}
	for _, c := range s.circles {
		sw.printf("<circle cx='%f' cy='%f' r='%f' style='%s'/>\n", c.center.X, c.center.Y, c.radius, s.Style)
	}
	sw.end()
	return sw.n, sw.err
}

// svgWriter keeps the first write error and the byte count.
type svgWriter struct {
	w   io.Writer
	n   int64
	err error
}

func (sw *svgWriter) printf(format string, a ...interface{}) {
	if sw.err != nil {
		return
	}
	n, err := fmt.Fprintf(sw.w, format, a...)
	sw.n += int64(n)
	sw.err = err
}

func (sw *svgWriter) start(viewBox geom.Rect) {
	sw.printf(`<?xml version="1.0"?>
<svg version="1.1"
     viewBox="%f %f %f %f"
     xmlns="http://www.w3.org/2000/svg">
`, viewBox.Min.X, viewBox.Min.Y, viewBox.Width(), viewBox.Height())
}

func (sw *svgWriter) end() {
	sw.printf("</svg>\n")
}

func onezero(b bool) string {
	if b {
		return "1"
	}
	return "0"
}
