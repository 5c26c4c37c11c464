// SPDX-License-Identifier: MIT
// Package: ringmaze/maze
//
// options.go — functional options for Builder and Generate.
//
// Contract:
//   • Option constructors PANIC on nil inputs.
//   • Without a randomness option the Builder uses circular.DefaultSeed.
//   • Generate forwards the same seed to the Distributor it creates, so one
//     seed reproduces the whole maze. The Builder draws from a stream derived
//     from that seed, never from a copy of the Distributor's stream.

package maze

import (
	"log/slog"
	"math/rand"

	"github.com/katalvlaran/ringmaze/circular"
)

// Option customizes a Builder.
type Option func(*config)

type config struct {
	seed   int64
	picker circular.Picker
	logger *slog.Logger
}

// builderStream identifies the Builder's stream among those derived from one seed.
const builderStream uint64 = 1

// WithSeed seeds the path randomness (and, in Generate, the Distributor).
// Zero maps to circular.DefaultSeed. Overrides an earlier WithRand or WithPicker.
func WithSeed(seed int64) Option {
	return func(c *config) {
		if seed == 0 {
			seed = circular.DefaultSeed
		}
		c.seed = seed
		c.picker = nil
	}
}

// WithRand uses r for path randomness. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("maze: WithRand(nil)")
	}
	return func(c *config) {
		c.picker = r
	}
}

// WithPicker uses an arbitrary index source for path randomness. Panics on nil.
func WithPicker(p circular.Picker) Option {
	if p == nil {
		panic("maze: WithPicker(nil)")
	}
	return func(c *config) {
		c.picker = p
	}
}

// WithLogger routes this builder's records to l. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("maze: WithLogger(nil)")
	}
	return func(c *config) {
		c.logger = l
	}
}

func newConfig(opts ...Option) config {
	cfg := config{seed: circular.DefaultSeed}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.picker == nil {
		cfg.picker = circular.NewRand(deriveSeed(cfg.seed, builderStream))
	}
	if cfg.logger == nil {
		cfg.logger = Logger()
	}
	return cfg
}

// deriveSeed mixes a parent seed and a stream id with the SplitMix64
// finalizer, so streams derived from neighbouring seeds stay unrelated.
// Complexity: O(1).
func deriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}
