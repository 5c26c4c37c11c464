// SPDX-License-Identifier: MIT
// Package: ringmaze/maze
//
// generate.go — one-call grid → distributor → builder pipeline.

package maze

import (
	"context"
	"fmt"

	"github.com/katalvlaran/ringmaze/circular"
)

const methodGenerate = "Generate"

// Maze is a finished maze: its geometry, its walls and its entrance.
type Maze struct {
	Grid    *circular.Grid
	Borders []Border
	// Seed is the outer-ring coordinate at the counter-clockwise side of the entrance.
	Seed  circular.Coordinate
	Paths int
	// Claimed is the number of coordinates claimed by the end of Build.
	Claimed int
}

// Entrance returns the two outer-ring coordinates between which the boundary
// is open. Both are Seed when the outer ring has a single coordinate.
func (m *Maze) Entrance() (from, to circular.Coordinate) {
	next, ok := m.Grid.Next(m.Seed)
	if !ok {
		return m.Seed, m.Seed
	}
	return m.Seed, next
}

// Generate builds the grid for (outerRing, baseSubdivision, minDistance) and
// carves a maze into it. WithSeed seeds the Distributor directly and the
// Builder with a stream derived from the same seed; WithRand and WithPicker
// only affect the Builder.
//
// Returns circular configuration errors unchanged (wrapped), and Build errors.
func Generate(ctx context.Context, outerRing, baseSubdivision int, minDistance float64, opts ...Option) (*Maze, error) {
	g, err := circular.NewGrid(outerRing, baseSubdivision, minDistance)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodGenerate, err)
	}

	cfg := newConfig(opts...)
	d := circular.NewDistributor(g, circular.WithSeed(cfg.seed))
	b := NewBuilder(d, opts...)
	borders, err := b.Build(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodGenerate, err)
	}

	return &Maze{
		Grid:    g,
		Borders: borders,
		Seed:    b.Seed(),
		Paths:   b.Paths(),
		Claimed: d.ClaimedCount(),
	}, nil
}
