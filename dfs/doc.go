// SPDX-License-Identifier: MIT
// Package: ringmaze/dfs

// Package dfs finds cycles in an undirected core.Graph by depth-first search.
//
// What:
//
//   - DetectCycles runs a three-colour DFS from every unvisited vertex in ID
//     order. An edge that reaches a Gray vertex, other than the edge the
//     search arrived by, closes a cycle; the cycle is read off the DFS stack.
//   - Cycles are returned in canonical form: rotated to start at their
//     smallest ID, walked towards the smaller of its two neighbours, closed by
//     repeating the first ID. The list is sorted by signature.
//
// Complexity:
//
//   - Time O(V + E + C·L) for C cycles of average length L; memory O(V).
//
// Errors:
//
//   - ErrGraphNil: a nil graph.
//   - Neighbour lookup failures from core are wrapped and returned.
package dfs
