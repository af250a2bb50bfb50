// SPDX-License-Identifier: MIT
// Package: trdom/builder
//
// options.go: functional options for the builder package.
//
// Contract (strict):
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves MUST NOT panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import "math/rand"

// BuilderOption customizes the behavior of a constructor by mutating a
// builderConfig instance before graph construction begins.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG for stochastic builders.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
// Use this in tests and examples to lock outcomes.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithIDOffset shifts every vertex id produced by constructors by off.
// Composing Cycle(3) and WithIDOffset(3)+Cycle(3) in two BuildInto calls
// yields two disjoint triangles. Panics if off < 0.
func WithIDOffset(off int) BuilderOption {
	if off < 0 {
		panic("builder: WithIDOffset(off<0)")
	}
	return func(c *builderConfig) {
		c.idOffset = off
	}
}
