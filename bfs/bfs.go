// SPDX-License-Identifier: MIT
// Package: ringmaze/bfs
//
// bfs.go — the traversal loop.

package bfs

import (
	"fmt"

	"github.com/katalvlaran/ringmaze/core"
)

// queueItem pairs a vertex with its depth.
type queueItem struct {
	id    string
	depth int
}

// BFS runs breadth-first search on g from startID.
// Returns ErrGraphNil, ErrStartVertexNotFound, ErrOptionViolation, a wrapped
// neighbour lookup error, or the context's error. On cancellation the partial
// result is returned alongside the error.
func BFS(g *core.Graph, startID string, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasVertex(startID) {
		return nil, ErrStartVertexNotFound
	}

	n := g.VertexCount()
	res := &BFSResult{
		Order:  make([]string, 0, n),
		Depth:  make(map[string]int, n),
		Parent: make(map[string]string, n),
	}
	queue := make([]queueItem, 0, n)
	queue = append(queue, queueItem{id: startID})
	res.Depth[startID] = 0

	for len(queue) > 0 {
		if err := o.ctx.Err(); err != nil {
			return res, err
		}
		item := queue[0]
		queue = queue[1:]
		res.Order = append(res.Order, item.id)

		if o.maxDepth > 0 && item.depth >= o.maxDepth {
			continue
		}
		nbrs, err := g.NeighborIDs(item.id)
		if err != nil {
			return res, fmt.Errorf("bfs: neighbours of %q: %w", item.id, err)
		}
		for _, nbr := range nbrs {
			if _, seen := res.Depth[nbr]; seen {
				continue
			}
			res.Depth[nbr] = item.depth + 1
			res.Parent[nbr] = item.id
			queue = append(queue, queueItem{id: nbr, depth: item.depth + 1})
		}
	}

	return res, nil
}
