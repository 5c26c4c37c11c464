// SPDX-License-Identifier: MIT
// Package: ringmaze/bfs

// Package bfs provides breadth-first search over a core.Graph, returning
// visit order, hop distances and parent links.
//
// What:
//
//   - BFS explores vertices in increasing hop distance from a start vertex.
//     Neighbours are expanded in ID order, so results are deterministic.
//   - WithContext makes a long search cancellable; WithMaxDepth stops it at a
//     given distance.
//   - BFSResult.PathTo rebuilds the start→dest path from the parent links.
//
// Complexity:
//
//   - Time O(V + E·log d) (sorted neighbour lists), memory O(V).
//
// Errors:
//
//   - ErrGraphNil, ErrStartVertexNotFound: bad input.
//   - ErrOptionViolation: a negative depth limit.
//   - Context errors are returned as is.
package bfs
