// SPDX-License-Identifier: MIT
// Package: ringmaze/core
//
// types.go — Graph, Edge and sentinel errors.

package core

import (
	"errors"
	"sync"
)

// Sentinel errors for graph operations.
var (
	// ErrEmptyVertexID indicates that a vertex ID is the empty string.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrLoopNotAllowed indicates a self-loop.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// Edge is an undirected connection between two vertices.
// From and To keep the order in which the edge was added.
type Edge struct {
	// ID is "e1", "e2", ... in insertion order.
	ID   string
	From string
	To   string

	seq uint64
}

// Graph is an undirected simple graph.
type Graph struct {
	mu sync.RWMutex

	nextEdgeID uint64
	vertices   map[string]struct{}
	edges      map[string]*Edge

	// adjacency[a][b] is the edge between a and b, stored under both endpoints.
	adjacency map[string]map[string]*Edge
}

// NewGraph returns an empty Graph.
// Complexity: O(1).
func NewGraph() *Graph {
	return &Graph{
		vertices:  make(map[string]struct{}),
		edges:     make(map[string]*Edge),
		adjacency: make(map[string]map[string]*Edge),
	}
}
