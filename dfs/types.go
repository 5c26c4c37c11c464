// SPDX-License-Identifier: MIT
// Package: ringmaze/dfs
//
// types.go — visitation colours and sentinel errors.

package dfs

import "errors"

// Visitation states of a vertex.
const (
	White = iota // not yet discovered
	Gray         // on the current DFS stack
	Black        // fully explored
)

// ErrGraphNil is returned when a nil *core.Graph is passed in.
var ErrGraphNil = errors.New("dfs: graph is nil")
