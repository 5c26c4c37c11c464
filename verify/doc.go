// SPDX-License-Identifier: MIT
// Package: ringmaze/verify

// Package verify checks a finished maze against the properties that make it
// a perfect maze.
//
// What:
//
//   - Segments expands merged borders back into unit wall segments between
//     neighbouring grid coordinates.
//   - SpanningTree checks that those segments form one tree over every grid
//     coordinate: exactly N−1 segments, no cycle, one component.
//   - WallGraph exposes the segments as a core.Graph keyed by Coordinate.String.
//   - Entrance checks that the outer ring is walled everywhere but one step.
//   - Minimal checks that no two same-type borders could still be merged.
//   - Coverage checks that the Distributor claimed every coordinate.
//   - Check runs all of the above and summarises the walls in a Report.
//
// Complexity:
//
//   - Segments:     O(S) for S unit segments (plus skipped rejected candidates).
//   - SpanningTree: O(N log N + S) on a core.Graph: dfs.DetectCycles for loops,
//     bfs.BFS for reachability.
//   - Minimal:      O(B) for B borders.
//
// Errors:
//
//   - ErrOffGrid:      a border endpoint or intermediate step is not a grid coordinate.
//   - ErrEdgeCount:    more segments than a tree over the grid can hold.
//   - ErrCycle:        two walls enclose a region.
//   - ErrDisconnected: some wall is not attached to the rest.
//   - ErrEntrance:     the boundary is open in more or fewer than one place.
//   - ErrUnmerged:     two adjacent same-type borders survived.
//   - ErrUnclaimed:    a coordinate was never claimed.
package verify
