// SPDX-License-Identifier: MIT
// Package: ringmaze/maze

// Package maze carves a perfect maze into a circular grid and returns the
// walls that remain as a minimal list of Arc and Line borders.
//
// Model:
//
//   - Walls run between grid positions. The outer ring is the boundary wall,
//     open at exactly one place (the entrance, next to the seed).
//   - Every carving path starts at an unclaimed position and grows a wall,
//     one neighbour at a time, until it touches a position claimed earlier.
//     The walls therefore form a single tree spanning every grid position,
//     which is exactly what makes the passages between them a perfect maze.
//   - Adjacent wall segments of the same type are merged on the fly, so the
//     output never contains two Arcs (or two Lines) that could be joined.
//
// States:
//
//	Seeding → Seeking ⇄ Carving
//	             ↓
//	            Done
//
// Orientation:
//
//   - Arc borders run clockwise from Start to End on one ring; Start == End
//     denotes a fully closed ring.
//   - Line borders run outward from Start (inner ring) to End (outer ring).
//
// Complexity:
//
//   - Build: O(N) claims and O(N) merges for N grid positions; each merge is
//     an O(1) index lookup.
//
// Options:
//
//   - WithSeed, WithRand, WithPicker: inject the path randomness (fixed seed by default).
//   - WithLogger: per-builder slog logger; defaults to the package Logger().
//
// Errors:
//
//   - ErrNilDistributor:   Build called without a Distributor.
//   - ErrCarvingExhausted: a path ran out of directions (grid bug).
//   - ErrGeometry:         the Distributor returned a non-adjacent neighbour.
//   - context errors:      Build honours cancellation between paths.
package maze
