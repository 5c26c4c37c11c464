// SPDX-License-Identifier: MIT
// Package: ringmaze/verify
//
// errors.go — sentinel errors reported by the checks.

package verify

import "errors"

var (
	// ErrOffGrid indicates a border that leaves the grid or runs the wrong way.
	ErrOffGrid = errors.New("verify: border not on grid")
	// ErrEdgeCount indicates more than N−1 segments.
	ErrEdgeCount = errors.New("verify: too many wall segments")
	// ErrCycle indicates a closed loop of walls.
	ErrCycle = errors.New("verify: walls contain a cycle")
	// ErrDisconnected indicates walls falling apart into several pieces.
	ErrDisconnected = errors.New("verify: walls are disconnected")
	// ErrEntrance indicates a boundary without exactly one opening.
	ErrEntrance = errors.New("verify: boundary must have exactly one opening")
	// ErrUnmerged indicates two same-type borders that meet end to start.
	ErrUnmerged = errors.New("verify: adjacent borders left unmerged")
	// ErrUnclaimed indicates coordinates the carving never reached.
	ErrUnclaimed = errors.New("verify: unclaimed coordinates remain")
)
