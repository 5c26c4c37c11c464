// SPDX-License-Identifier: MIT
// Package: ringmaze/core

// Package core provides the in-memory Graph that the traversal packages walk.
//
// What:
//
//   - Graph is an undirected simple graph over string vertex IDs: no
//     self-loops and no parallel edges. ringmaze builds one per maze check,
//     with one vertex per grid coordinate and one edge per unit wall segment.
//   - Vertices, Neighbors and NeighborIDs return deterministic, sorted
//     results so traversals and their outputs are reproducible.
//
// Concurrency:
//
//   - All methods are safe for concurrent use; mutations take a write lock,
//     queries a read lock.
//
// Complexity:
//
//   - AddVertex, AddEdge, HasVertex, HasEdge: O(1) amortized.
//   - Neighbors, NeighborIDs: O(d log d) for degree d.
//   - Vertices: O(V log V).
//
// Errors:
//
//   - ErrEmptyVertexID:       an empty vertex ID.
//   - ErrVertexNotFound:      a query on an absent vertex.
//   - ErrLoopNotAllowed:      an edge from a vertex to itself.
//   - ErrMultiEdgeNotAllowed: a second edge between the same two vertices.
package core
