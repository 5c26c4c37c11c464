// SPDX-License-Identifier: MIT
// Package bfs_test verifies BFS order, depths, limits and cancellation.

package bfs_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ringmaze/bfs"
	"github.com/katalvlaran/ringmaze/core"
)

// tree is A–B, A–C, B–D, C–E, E–F plus an isolated Z.
func tree(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, e := range [][2]string{{"A", "C"}, {"A", "B"}, {"B", "D"}, {"C", "E"}, {"E", "F"}} {
		_, err := g.AddEdge(e[0], e[1])
		require.NoError(t, err)
	}
	require.NoError(t, g.AddVertex("Z"))
	return g
}

func TestBFS(t *testing.T) {
	res, err := bfs.BFS(tree(t), "A")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C", "D", "E", "F"}, res.Order)
	assert.Equal(t, map[string]int{"A": 0, "B": 1, "C": 1, "D": 2, "E": 2, "F": 3}, res.Depth)
	assert.Equal(t, "E", res.Parent["F"])
	_, hasRoot := res.Parent["A"]
	assert.False(t, hasRoot)

	path, err := res.PathTo("F")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "C", "E", "F"}, path)
	path, err = res.PathTo("A")
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, path)
	_, err = res.PathTo("Z")
	assert.Error(t, err, "Z is not reachable")
}

func TestBFS_MaxDepth(t *testing.T) {
	res, err := bfs.BFS(tree(t), "A", bfs.WithMaxDepth(1))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, res.Order)

	res, err = bfs.BFS(tree(t), "A", bfs.WithMaxDepth(0))
	require.NoError(t, err)
	assert.Len(t, res.Order, 6, "0 means no limit")
}

func TestBFS_Errors(t *testing.T) {
	_, err := bfs.BFS(nil, "A")
	assert.ErrorIs(t, err, bfs.ErrGraphNil)
	_, err = bfs.BFS(tree(t), "Q")
	assert.ErrorIs(t, err, bfs.ErrStartVertexNotFound)
	_, err = bfs.BFS(tree(t), "A", bfs.WithMaxDepth(-1))
	assert.ErrorIs(t, err, bfs.ErrOptionViolation)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	res, err := bfs.BFS(tree(t), "A", bfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
	require.NotNil(t, res)
	assert.Empty(t, res.Order)
}
