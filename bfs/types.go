// SPDX-License-Identifier: MIT
// Package: ringmaze/bfs
//
// types.go — options, result and sentinel errors.

package bfs

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for BFS.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrStartVertexNotFound is returned when the start ID is absent.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option configures BFS. An invalid Option is recorded and surfaced as
// ErrOptionViolation when BFS runs.
type Option func(*options)

type options struct {
	ctx      context.Context
	maxDepth int
	err      error
}

func defaultOptions() options {
	return options{ctx: context.Background()}
}

// WithContext sets a context for cancellation. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *options) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// WithMaxDepth stops the search at depth d; 0 means no limit.
func WithMaxDepth(d int) Option {
	return func(o *options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.maxDepth = d
	}
}

// BFSResult holds the outcome of a traversal.
type BFSResult struct {
	// Order lists vertices in visit sequence.
	Order []string
	// Depth maps each reached vertex to its hop distance from the start.
	Depth map[string]int
	// Parent maps each reached vertex but the start to its predecessor.
	Parent map[string]string
}

// PathTo returns the path from the start vertex to dest.
// Returns an error if dest was not reached.
func (r *BFSResult) PathTo(dest string) ([]string, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("bfs: no path to %q", dest)
	}
	path := make([]string, r.Depth[dest]+1)
	for i, cur := len(path)-1, dest; i >= 0; i-- {
		path[i] = cur
		cur = r.Parent[cur]
	}
	return path, nil
}
