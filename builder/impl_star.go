// SPDX-License-Identifier: MIT
// Package: trdom/builder
//
// impl_star.go: implementation of Star(n) and Wheel(n) constructors.
//
// Contract:
//   • Star: n ≥ 2; hub is local index 0, leaves 1..n-1, spokes emitted in
//     ascending leaf order.
//   • Wheel: n ≥ 3; rim is Cycle(n) on 0..n-1, hub is local index n, spokes
//     emitted in ascending rim order. Total vertices n+1.

package builder

import (
	"fmt"

	"github.com/katalvlaran/trdom/core"
)

const (
	methodStar    = "Star"
	methodWheel   = "Wheel"
	minStarNodes  = 2
	minWheelNodes = 3
)

// Star returns a Constructor that builds a star with hub 0 and n-1 leaves.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		if err := addVertices(methodStar, g, cfg, n); err != nil {
			return err
		}
		for leaf := 1; leaf < n; leaf++ {
			if err := addEdge(methodStar, g, cfg, 0, leaf); err != nil {
				return err
			}
		}

		return nil
	}
}

// Wheel returns a Constructor that builds W_n = C_n + hub.
func Wheel(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodWheel, n, minWheelNodes, ErrTooFewVertices)
		}
		// Build the rim using the same (g,cfg).
		if err := Cycle(n)(g, cfg); err != nil {
			return fmt.Errorf("%s: rim C_%d: %w", methodWheel, n, err)
		}
		for i := 0; i < n; i++ {
			if err := addEdge(methodWheel, g, cfg, n, i); err != nil {
				return err
			}
		}

		return nil
	}
}
