// SPDX-License-Identifier: MIT
// Package: domfuzz/random
//
// options.go — functional options for New.
//
// Contract:
//   • Option constructors panic on nil arguments (programmer error).
//   • Later options override earlier ones.

package random

import "time"

// SourceFactory builds a Source from a resolved, non-zero seed.
type SourceFactory func(seed uint32) Source

// config aggregates the knobs resolved by New.
type config struct {
	factory SourceFactory
	clock   func() time.Time
}

func newConfig(opts ...Option) config {
	cfg := config{
		factory: func(seed uint32) Source { return NewAlea(seed) },
		clock:   time.Now,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// Option customizes New.
type Option func(*config)

// WithSource replaces the default Alea stream.
// Panics on nil.
func WithSource(factory SourceFactory) Option {
	if factory == nil {
		panic("random: WithSource(nil)")
	}
	return func(c *config) {
		c.factory = factory
	}
}

// WithPCG selects the math/rand/v2 PCG stream instead of Alea.
func WithPCG() Option {
	return WithSource(func(seed uint32) Source { return NewPCG(seed) })
}

// WithClock overrides the clock consulted when New receives seed 0.
// Panics on nil.
func WithClock(clock func() time.Time) Option {
	if clock == nil {
		panic("random: WithClock(nil)")
	}
	return func(c *config) {
		c.clock = clock
	}
}

// SourceByName maps a configuration name ("alea", "pcg") to an Option.
// Empty selects the default. The boolean is false for unknown names.
func SourceByName(name string) (Option, bool) {
	switch name {
	case "", SourceAlea:
		return WithSource(func(seed uint32) Source { return NewAlea(seed) }), true
	case SourcePCG:
		return WithPCG(), true
	default:
		return nil, false
	}
}

// Source names accepted by SourceByName.
const (
	SourceAlea = "alea"
	SourcePCG  = "pcg"
)
