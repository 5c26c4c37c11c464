// SPDX-License-Identifier: MIT
// Package: ringmaze/circular
//
// errors.go — sentinel errors for grid construction.
//
// Error policy:
//   • Only sentinel variables are exposed; branch with errors.Is.
//   • NewGrid attaches parameter context with %w.
//   • Option constructors panic on meaningless input; algorithms never panic.

package circular

import "errors"

var (
	// ErrTooFewRings indicates an outer ring index below 1.
	ErrTooFewRings = errors.New("circular: at least one ring besides the centre ring is required")
	// ErrTooFewSlices indicates a base subdivision below 1.
	ErrTooFewSlices = errors.New("circular: base subdivision must be at least 1")
	// ErrMinDistance indicates a negative, NaN or infinite minimum distance.
	ErrMinDistance = errors.New("circular: minimum distance must be a finite value ≥ 0")
	// ErrGridTooLarge indicates the outer ring would exceed angle.MaxDenominator slices.
	ErrGridTooLarge = errors.New("circular: grid too large")
)
