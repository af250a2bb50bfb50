// SPDX-License-Identifier: MIT
// Package: trdom/builder
//
// config.go: internal configuration and deterministic defaults.
//
// Deterministic defaults (no surprises):
//   • rng      = nil (pure/deterministic unless seeded)
//   • idOffset = 0

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// RNG for stochastic choices; nil means “no randomness”.
	rng *rand.Rand

	// idOffset is added to every generated vertex id.
	idOffset int
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order (later overrides earlier).
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	var cfg builderConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// id maps a constructor-local index to the vertex id written to the graph.
func (c builderConfig) id(i int) int {
	return c.idOffset + i
}
