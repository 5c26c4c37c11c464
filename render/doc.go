// SPDX-License-Identifier: MIT
// Package: ringmaze/render

// Package render draws maze borders.
//
// Trace converts borders into Cartesian drawing calls on a Canvas; the
// package ships three canvases:
//
//   - SVGCanvas:  a standalone SVG document, one path plus closed rings.
//   - PNGCanvas:  a raster image stroked with gogpu/gg.
//   - TermCanvas: a braille-dot preview for a tcell screen.
//
// Geometry (Layout):
//
//   - The wall of ring r is a circle of radius (r+1)·RingWidth around Center.
//   - Angle 0 points east; increasing angles run clockwise on screen because
//     y grows downwards. Arc borders are therefore drawn with the SVG sweep
//     flag set.
//   - Size is the edge length of the square drawing, margins included.
//
// Errors:
//
//   - ErrLayout: non-positive ring count or ring width, or negative margin.
package render
