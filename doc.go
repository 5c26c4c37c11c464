// SPDX-License-Identifier: MIT

// Package ringmaze generates perfect mazes on concentric rings.
//
// The positions of the maze are exact rational angles on rings whose
// subdivision grows outward, so spokes meet rings exactly and no floating
// point comparison is ever needed. A randomized growing-tree carver claims
// every position once and returns the remaining walls as a minimal list of
// arcs and radial lines.
//
// Packages:
//
//	angle/     — exact fractional angle in turns (reduced, wrapping arithmetic)
//	circular/  — Coordinate, Direction, Grid (enumeration + validity), Distributor
//	maze/      — Border, carving Builder, border merge index, Generate
//	core/      — undirected simple Graph over string IDs (the wall graph)
//	dfs/       — cycle detection on core.Graph
//	bfs/       — breadth-first search on core.Graph
//	verify/    — spanning-tree, entrance, minimality and coverage checks
//	render/    — Canvas, Trace, SVG / PNG (gogpu/gg) / terminal (tcell) canvases
//	cmd/ringmaze — command line front end
//
// Quick start:
//
//	m, err := maze.Generate(ctx, 4, 10, 0.3, maze.WithSeed(42))
//	if err != nil { ... }
//	l := render.NewLayout(m.Grid.Rings())
//	c := render.NewSVGCanvas(l)
//	render.Trace(l, m.Borders, c)
//	c.WriteTo(os.Stdout)
package ringmaze
