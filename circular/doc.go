// SPDX-License-Identifier: MIT
// Package: ringmaze/circular

// Package circular treats a set of concentric rings as a grid of positions,
// enabling exact neighbour lookups and one-shot cell claiming for maze carving.
//
// What:
//
//   - Grid enumerates every valid Coordinate on rings 0..OuterRing.
//     Ring r is cut into (r+1)·BaseSubdivision slices; a position that does not
//     line up with ring r-1 survives only if it keeps MinDistance (in units of
//     its own slice width) from the inner-aligned positions on both sides.
//   - Neighbour derives the Inward/Outward/Clockwise/CounterClockwise neighbour
//     with exact angle arithmetic; radial neighbours exist only where the same
//     angle is valid on the target ring.
//   - Distributor wraps an immutable Grid with a monotonic claimed-set and a
//     random Picker, answering TakeFree / TakeNeighbour / outer-ring requests.
//
// Why:
//
//   - Circular mazes: rings grow wider outward, so they need more cells;
//     spokes must still meet exactly where rings share a subdivision.
//
// Complexity:
//
//   - NewGrid:        O(R·S·R) time (R rings, S base slices), O(R²·S) memory.
//   - Neighbour:      O(1) radial, O(gap) rotational (gap = skipped candidates).
//   - Index/Contains: O(log n) binary search on the ring.
//   - Distributor:    O(1) per claim; TakeFree is uniform over unclaimed cells.
//
// Options (Distributor):
//
//   - WithSeed, WithRand, WithPicker: inject randomness; the default is a fixed seed.
//
// Errors:
//
//   - ErrTooFewRings:  outer ring index < 1.
//   - ErrTooFewSlices: base subdivision < 1.
//   - ErrMinDistance:  minimum distance negative, NaN or infinite.
//   - ErrGridTooLarge: the outer ring would need more than angle.MaxDenominator slices.
package circular
