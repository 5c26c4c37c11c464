// SPDX-License-Identifier: MIT
// Package: ringmaze/verify
//
// tree.go — checks that wall segments span the grid as one tree, on a
// core.Graph with one vertex per coordinate and one edge per segment.

package verify

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/ringmaze/bfs"
	"github.com/katalvlaran/ringmaze/circular"
	"github.com/katalvlaran/ringmaze/core"
	"github.com/katalvlaran/ringmaze/dfs"
	"github.com/katalvlaran/ringmaze/maze"
)

const methodSpanningTree = "SpanningTree"

// SpanningTree checks that the walls described by borders form a tree over
// every coordinate of g.
//
// Steps:
//  1. Expand borders into unit segments (ErrOffGrid on malformed borders).
//  2. More than g.Len()−1 segments cannot form a tree (ErrEdgeCount).
//  3. Build the wall graph; a segment laid twice encloses the strip between
//     the two copies (ErrCycle).
//  4. dfs.DetectCycles must find nothing (ErrCycle).
//  5. bfs.BFS from the first coordinate must reach all of them
//     (ErrDisconnected). An acyclic wall set with fewer than g.Len()−1
//     segments always ends here.
//
// Complexity: O(N log N + S) time, O(N + S) memory.
func SpanningTree(g *circular.Grid, borders []maze.Border) error {
	segs, err := Segments(g, borders)
	if err != nil {
		return fmt.Errorf("%s: %w", methodSpanningTree, err)
	}
	return spanningTree(g, segs)
}

func spanningTree(g *circular.Grid, segs []Segment) error {
	n := g.Len()
	if len(segs) > n-1 {
		return fmt.Errorf("%s: %d segments for %d coordinates: %w", methodSpanningTree, len(segs), n, ErrEdgeCount)
	}

	walls, err := WallGraph(g, segs)
	if err != nil {
		return fmt.Errorf("%s: %w", methodSpanningTree, err)
	}

	found, cycles, err := dfs.DetectCycles(walls)
	if err != nil {
		return fmt.Errorf("%s: %w", methodSpanningTree, err)
	}
	if found {
		return fmt.Errorf("%s: %d loops, first %s: %w",
			methodSpanningTree, len(cycles), strings.Join(cycles[0], "→"), ErrCycle)
	}

	start := g.All()[0]
	res, err := bfs.BFS(walls, start.String())
	if err != nil {
		return fmt.Errorf("%s: %w", methodSpanningTree, err)
	}
	if len(res.Order) != n {
		return fmt.Errorf("%s: %d of %d coordinates reachable from %s: %w",
			methodSpanningTree, len(res.Order), n, start, ErrDisconnected)
	}
	return nil
}

// WallGraph returns the undirected graph of segs over every coordinate of g,
// keyed by Coordinate.String. A segment laid twice returns ErrCycle.
// Complexity: O(N + S).
func WallGraph(g *circular.Grid, segs []Segment) (*core.Graph, error) {
	walls := core.NewGraph()
	for _, c := range g.All() {
		if err := walls.AddVertex(c.String()); err != nil {
			return nil, err
		}
	}
	for _, s := range segs {
		_, err := walls.AddEdge(s.From.String(), s.To.String())
		switch {
		case errors.Is(err, core.ErrMultiEdgeNotAllowed):
			return nil, fmt.Errorf("%s %s→%s laid twice: %w", s.Type, s.From, s.To, ErrCycle)
		case err != nil:
			return nil, fmt.Errorf("%s %s→%s: %w", s.Type, s.From, s.To, err)
		}
	}
	return walls, nil
}
