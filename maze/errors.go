// SPDX-License-Identifier: MIT
// Package: ringmaze/maze
//
// errors.go — sentinel errors for maze carving.
//
// Error policy:
//   • Configuration errors come from circular.NewGrid and are passed through.
//   • ErrCarvingExhausted and ErrGeometry are internal invariant violations;
//     Build reports them instead of panicking.

package maze

import "errors"

var (
	// ErrNilDistributor indicates a Builder constructed without a Distributor.
	ErrNilDistributor = errors.New("maze: distributor is nil")
	// ErrCarvingExhausted indicates a path had no usable direction left.
	ErrCarvingExhausted = errors.New("maze: carving exhausted all directions")
	// ErrGeometry indicates a neighbour that is not adjacent in the requested direction.
	ErrGeometry = errors.New("maze: inconsistent neighbour geometry")
)
