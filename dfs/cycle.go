// SPDX-License-Identifier: MIT
// Package: ringmaze/dfs
//
// cycle.go — cycle detection for undirected graphs.

package dfs

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/ringmaze/core"
)

// walker carries the mutable search state.
type walker struct {
	g      *core.Graph
	state  map[string]int
	path   []string
	seen   map[string]struct{}
	cycles [][]string
}

// DetectCycles reports whether g contains a cycle and returns every cycle
// closed by a back edge, in canonical form and sorted.
// Returns (false, nil, nil) for an acyclic graph.
func DetectCycles(g *core.Graph) (bool, [][]string, error) {
	if g == nil {
		return false, nil, ErrGraphNil
	}

	verts := g.Vertices()
	w := &walker{
		g:     g,
		state: make(map[string]int, len(verts)),
		path:  make([]string, 0, len(verts)),
		seen:  make(map[string]struct{}),
	}
	for _, v := range verts {
		if w.state[v] != White {
			continue
		}
		if err := w.visit(v, ""); err != nil {
			return false, nil, fmt.Errorf("dfs: DetectCycles: %w", err)
		}
	}

	if len(w.cycles) == 0 {
		return false, nil, nil
	}
	sort.Slice(w.cycles, func(i, j int) bool {
		return JoinSig(w.cycles[i]) < JoinSig(w.cycles[j])
	})

	return true, w.cycles, nil
}

// visit explores id, which was reached over the edge viaEdge ("" for a root).
func (w *walker) visit(id, viaEdge string) error {
	w.state[id] = Gray
	w.path = append(w.path, id)

	edges, err := w.g.Neighbors(id)
	if err != nil {
		return fmt.Errorf("Neighbors(%q): %w", id, err)
	}
	for _, e := range edges {
		if e.ID == viaEdge {
			continue
		}
		nbr := e.Other(id)
		switch w.state[nbr] {
		case White:
			if err = w.visit(nbr, e.ID); err != nil {
				return err
			}
		case Gray:
			w.record(nbr)
		}
	}

	w.path = w.path[:len(w.path)-1]
	w.state[id] = Black

	return nil
}

// record stores the cycle from start to the top of the stack, once.
func (w *walker) record(start string) {
	idx := IndexOf(w.path, start)
	sig, canon := canonical(w.path[idx:])
	if _, dup := w.seen[sig]; dup {
		return
	}
	w.seen[sig] = struct{}{}
	w.cycles = append(w.cycles, canon)
}
