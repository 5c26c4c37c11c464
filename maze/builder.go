// SPDX-License-Identifier: MIT
// Package: ringmaze/maze
//
// builder.go — the carving state machine.
//
// Contract:
//   • Seeding claims one outer coordinate (the seed), consumes the outer ring
//     and lays the boundary Arc from Next(seed) clockwise round to seed. The
//     segment seed→Next(seed) stays open as the entrance. A single-coordinate
//     outer ring becomes one closed Arc.
//   • Each path starts at TakeFree and keeps a pool of (coordinate, direction)
//     options for every coordinate it has reached. Options are drawn uniformly
//     without replacement; a neighbour already on the path is skipped.
//   • A path ends as soon as a neighbour comes back Taken; the wall laid by that
//     move connects the path to the existing walls.
//   • Context cancellation is checked between paths.

package maze

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/ringmaze/circular"
)

const methodBuild = "Build"

// option is one untried move in the current path's pool.
type option struct {
	from circular.Coordinate
	dir  circular.Direction
}

// Builder carves one maze out of a Distributor. It is single-use and not safe
// for concurrent use.
type Builder struct {
	dist    Distributor
	picker  circular.Picker
	log     *slog.Logger
	state   State
	seed    circular.Coordinate
	head    circular.Coordinate
	borders *borderSet
	paths   int
	walls   int
}

// NewBuilder returns a Builder in the Seeding state.
// A nil d is reported by Build as ErrNilDistributor.
func NewBuilder(d Distributor, opts ...Option) *Builder {
	cfg := newConfig(opts...)
	capacity := 0
	if d != nil {
		capacity = d.Len() / 2
	}
	return &Builder{
		dist:    d,
		picker:  cfg.picker,
		log:     cfg.logger,
		state:   Seeding,
		borders: newBorderSet(capacity),
	}
}

// State returns the current phase.
func (b *Builder) State() State { return b.state }

// Seed returns the outer-ring coordinate chosen during Seeding.
func (b *Builder) Seed() circular.Coordinate { return b.seed }

// Paths returns the number of carved paths so far.
func (b *Builder) Paths() int { return b.paths }

// Walls returns the number of unit wall segments laid by carving,
// not counting the boundary.
func (b *Builder) Walls() int { return b.walls }

// Build runs the state machine to Done and returns the merged borders.
// Calling Build again after Done returns the same borders.
func (b *Builder) Build(ctx context.Context) ([]Border, error) {
	if b.dist == nil {
		return nil, fmt.Errorf("%s: %w", methodBuild, ErrNilDistributor)
	}
	for b.state != Done {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("%s: %s after %d paths: %w", methodBuild, b.state, b.paths, err)
		}

		var err error
		switch b.state {
		case Seeding:
			err = b.seedBoundary()
		case Seeking:
			b.seek()
		case Carving:
			err = b.carve()
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %w", methodBuild, err)
		}
	}

	return b.borders.list(), nil
}

// seedBoundary claims the entrance and walls off the rest of the outer ring.
func (b *Builder) seedBoundary() error {
	seed, _ := b.dist.TakeFromOuterCircle()
	b.dist.ConsumeOuterCircle()

	next, _, ok := b.dist.TakeNeighbour(seed, circular.Clockwise)
	if !ok || next.Ring != seed.Ring {
		return fmt.Errorf("clockwise neighbour of seed %s: %w", seed, ErrGeometry)
	}
	b.seed = seed
	if next == seed {
		b.borders.merge(seed, seed)
	} else {
		b.borders.merge(next, seed)
	}
	b.log.Info("boundary laid", "seed", seed, "entrance", next, "closed", next == seed)

	b.state = Seeking
	return nil
}

func (b *Builder) seek() {
	c, ok := b.dist.TakeFree()
	if !ok {
		b.log.Info("maze complete", "paths", b.paths, "walls", b.walls, "borders", b.borders.count())
		b.state = Done
		return
	}
	b.head = c
	b.state = Carving
}

// carve grows one path from b.head until it touches an earlier wall.
func (b *Builder) carve() error {
	start := b.head
	visited := map[circular.Coordinate]struct{}{start: {}}
	pool := addOptions(make([]option, 0, 8), start)

	for {
		from, to, dir, state, err := b.next(&pool, visited)
		if err != nil {
			return fmt.Errorf("path from %s after %d steps: %w", start, len(visited)-1, err)
		}
		visited[to] = struct{}{}
		b.open(from, to, dir)
		b.head = to
		if state == circular.Taken {
			break
		}
		pool = addOptions(pool, to)
	}

	b.paths++
	b.log.Debug("path carved", "start", start, "end", b.head, "length", len(visited)-1)
	b.state = Seeking
	return nil
}

// next draws options until one yields a neighbour off the current path.
func (b *Builder) next(pool *[]option, visited map[circular.Coordinate]struct{}) (
	from, to circular.Coordinate, dir circular.Direction, state circular.CellState, err error,
) {
	for len(*pool) > 0 {
		opts := *pool
		i := b.picker.Intn(len(opts))
		o := opts[i]
		last := len(opts) - 1
		opts[i] = opts[last]
		*pool = opts[:last]

		n, st, ok := b.dist.TakeNeighbour(o.from, o.dir)
		if !ok {
			continue
		}
		if !adjacent(o.from, n, o.dir) {
			return from, to, dir, state, fmt.Errorf("%s neighbour of %s is %s: %w", o.dir, o.from, n, ErrGeometry)
		}
		if _, seen := visited[n]; seen {
			continue
		}
		return o.from, n, o.dir, st, nil
	}

	return from, to, dir, state, ErrCarvingExhausted
}

// open lays the unit wall between from and to, oriented clockwise or outward.
func (b *Builder) open(from, to circular.Coordinate, dir circular.Direction) {
	switch dir {
	case circular.Outward, circular.Clockwise:
		b.borders.merge(from, to)
	default:
		b.borders.merge(to, from)
	}
	b.walls++
}

func addOptions(pool []option, c circular.Coordinate) []option {
	for _, d := range circular.Directions() {
		pool = append(pool, option{from: c, dir: d})
	}
	return pool
}

// adjacent checks the shape of a neighbour: radial moves change the ring by
// one and keep the angle, rotational moves stay on the ring.
func adjacent(from, to circular.Coordinate, dir circular.Direction) bool {
	switch dir {
	case circular.Inward:
		return to.Ring+1 == from.Ring && to.Angle == from.Angle
	case circular.Outward:
		return to.Ring == from.Ring+1 && to.Angle == from.Angle
	default:
		return to.Ring == from.Ring
	}
}
