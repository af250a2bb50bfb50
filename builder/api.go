// SPDX-License-Identifier: MIT
// Package: trdom/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract (strict):
//   - BuildGraph creates g, resolves cfg, runs cons in order.
//   - BuildInto does the same on an existing graph (composition of pieces).
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.
//   - Safety: never panic; return sentinel errors from constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/trdom/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Preserve determinism for the same config and call order.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph with graph options gopts, resolves the
// builder configuration from bopts, and applies all constructors in order.
// Any constructor error is wrapped with the context "BuildGraph: %w" and
// returned immediately; no partial cleanup is attempted.
//
// Complexity:
//   - Resolving options: O(len(bopts)) time, O(1) space.
//   - Applying K constructors: Σ cost of each constructor.
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	if err := apply(g, newBuilderConfig(bopts...), cons); err != nil {
		return nil, fmt.Errorf("BuildGraph: %w", err)
	}

	return g, nil
}

// BuildInto applies constructors to an existing graph. Use it with
// WithIDOffset to lay several components side by side.
func BuildInto(g *core.Graph, bopts []BuilderOption, cons ...Constructor) error {
	if err := apply(g, newBuilderConfig(bopts...), cons); err != nil {
		return fmt.Errorf("BuildInto: %w", err)
	}

	return nil
}

// apply runs cons sequentially against g.
func apply(g *core.Graph, cfg builderConfig, cons []Constructor) error {
	for i, fn := range cons {
		if fn == nil {
			return fmt.Errorf("nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return err
		}
	}

	return nil
}

// addVertices inserts cfg.id(0..n-1) in ascending order.
func addVertices(method string, g *core.Graph, cfg builderConfig, n int) error {
	for i := 0; i < n; i++ {
		id := cfg.id(i)
		if err := g.AddVertex(id); err != nil {
			return fmt.Errorf("%s: AddVertex(%d): %w", method, id, err)
		}
	}

	return nil
}

// addEdge links local indices i and j, wrapping failures with method context.
func addEdge(method string, g *core.Graph, cfg builderConfig, i, j int) error {
	u, v := cfg.id(i), cfg.id(j)
	if err := g.AddEdge(u, v); err != nil {
		return fmt.Errorf("%s: AddEdge(%d-%d): %w", method, u, v, err)
	}

	return nil
}
