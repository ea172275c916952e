// SPDX-License-Identifier: MIT
// Package: gridastar/scenario
//
// options.go - functional options for scenario constructors.
//
// Contract:
//   • Option constructors validate and panic on meaningless inputs;
//     constructors themselves return errors and never panic.
//   • Determinism is explicit: randomness only via WithSeed or WithRand.

package scenario

import (
	"math/rand"

	"github.com/katalvlaran/gridastar/grid"
)

// Option customizes a scenario constructor by mutating config.
type Option func(*config)

// config aggregates all scenario knobs. Later options override earlier ones.
type config struct {
	rng    *rand.Rand        // nil means "no randomness"
	conn   grid.Connectivity // connectivity of generated grids
	layout int               // fixed layout index; -1 draws one with rng
}

func newConfig(opts []Option) config {
	cfg := config{conn: grid.Conn8, layout: -1}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand provides an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("scenario: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

// WithConnectivity sets the connectivity of generated grids (default Conn8).
func WithConnectivity(conn grid.Connectivity) Option {
	return func(c *config) {
		c.conn = conn
	}
}

// WithLayout pins the start/finish layout instead of drawing one at random.
// Panics on an index outside [0, LayoutCount).
func WithLayout(i int) Option {
	if i < 0 || i >= LayoutCount {
		panic("scenario: WithLayout index out of range")
	}
	return func(c *config) {
		c.layout = i
	}
}
