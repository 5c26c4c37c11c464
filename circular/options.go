// SPDX-License-Identifier: MIT
// Package: ringmaze/circular
//
// options.go — functional options and randomness policy for the Distributor.
//
// Contract:
//   • Options are functional (type Option func(*config)).
//   • Option constructors PANIC on meaningless inputs (nil sources).
//   • Determinism is explicit: without WithSeed/WithRand/WithPicker the
//     Distributor uses a fixed default seed, never the clock.
//   • math/rand.Rand is NOT goroutine-safe; do not share one Picker between
//     concurrently running generators.

package circular

import "math/rand"

// DefaultSeed is used when no randomness source is configured.
const DefaultSeed int64 = 1

// Picker supplies uniform random indices in [0,n). *rand.Rand satisfies it;
// tests may substitute a scripted sequence.
type Picker interface {
	Intn(n int) int
}

// Option customizes a Distributor before it starts handing out cells.
type Option func(*config)

type config struct {
	picker Picker
}

// WithSeed installs a new *rand.Rand seeded with seed.
// A zero seed maps to DefaultSeed so that "unset" stays reproducible.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.picker = NewRand(seed)
	}
}

// WithRand installs r as the randomness source. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("circular: WithRand(nil)")
	}
	return func(c *config) {
		c.picker = r
	}
}

// WithPicker installs an arbitrary index source. Panics on nil.
func WithPicker(p Picker) Option {
	if p == nil {
		panic("circular: WithPicker(nil)")
	}
	return func(c *config) {
		c.picker = p
	}
}

// NewRand returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ DefaultSeed; otherwise the seed verbatim.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = DefaultSeed
	}
	return rand.New(rand.NewSource(seed))
}

// newConfig applies opts in order (last wins) over deterministic defaults.
func newConfig(opts ...Option) config {
	cfg := config{}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.picker == nil {
		cfg.picker = NewRand(DefaultSeed)
	}
	return cfg
}
