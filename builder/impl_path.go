// SPDX-License-Identifier: MIT
// Package: trdom/builder
//
// impl_path.go: implementation of Path(n) and Isolated(n) constructors.
//
// Contract:
//   • Path: n ≥ 2, edges i-(i+1) for i=0..n-2.
//   • Isolated: n ≥ 1, no edges. A lone vertex is the canonical graph on
//     which no total dominating labeling exists.

package builder

import (
	"fmt"

	"github.com/katalvlaran/trdom/core"
)

const (
	methodPath       = "Path"
	methodIsolated   = "Isolated"
	minPathNodes     = 2
	minIsolatedNodes = 1
)

// Path returns a Constructor that builds a simple path P_n.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		if err := addVertices(methodPath, g, cfg, n); err != nil {
			return err
		}
		for i := 0; i+1 < n; i++ {
			if err := addEdge(methodPath, g, cfg, i, i+1); err != nil {
				return err
			}
		}

		return nil
	}
}

// Isolated returns a Constructor that adds n vertices and no edges.
func Isolated(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minIsolatedNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodIsolated, n, minIsolatedNodes, ErrTooFewVertices)
		}

		return addVertices(methodIsolated, g, cfg, n)
	}
}
