// SPDX-License-Identifier: MIT
// Package genetic_test contains fixtures shared by the genetic tests.
//
// Purpose:
//   - Build graphs through the builder package (C_n, P_n, isolated vertices).
//   - Provide stubGraph, a map-backed Graph that states the collaborator
//     contract without depending on core.
//   - Keep gene literals short via the genes helper.

package genetic_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/trdom/builder"
	"github.com/katalvlaran/trdom/core"
	"github.com/katalvlaran/trdom/genetic"
)

// Seeds used across tests (fixed for reproducibility).
const (
	Seed1  = 1
	Seed7  = 7
	Seed42 = 42
)

// genes converts small ints to a []genetic.Gene.
func genes(vals ...int) []genetic.Gene {
	out := make([]genetic.Gene, len(vals))
	for i, v := range vals {
		out[i] = genetic.Gene(v)
	}
	return out
}

// ints converts a []genetic.Gene back to []int for readable assertions.
func ints(gs []genetic.Gene) []int {
	out := make([]int, len(gs))
	for i, g := range gs {
		out[i] = int(g)
	}
	return out
}

// build runs builder.BuildGraph and fails the test on error.
func build(t testing.TB, cons ...builder.Constructor) *core.Graph {
	t.Helper()
	g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSeed(Seed42)}, cons...)
	require.NoError(t, err)
	return g
}

// cycle5 is the 5-cycle 0-1-2-3-4-0.
func cycle5(t testing.TB) *core.Graph { return build(t, builder.Cycle(5)) }

// newRand returns a seeded generator.
func newRand(seed int64) *rand.Rand { return rand.New(rand.NewSource(seed)) }

// errNoSuchVertex is returned by stubGraph for unknown ids.
var errNoSuchVertex = errors.New("stub: no such vertex")

// stubGraph is a minimal genetic.Graph: adjacency lists keyed by id and an
// explicit vertex count, so tests can declare a count that disagrees with the
// catalog.
type stubGraph struct {
	n   int
	adj map[int][]int
}

func (s stubGraph) VertexCount() int { return s.n }

func (s stubGraph) NeighborIDs(id int) ([]int, error) {
	nbrs, ok := s.adj[id]
	if !ok {
		return nil, errNoSuchVertex
	}
	out := make([]int, len(nbrs))
	copy(out, nbrs)
	return out, nil
}

var _ genetic.Graph = stubGraph{}
var _ genetic.Graph = (*core.Graph)(nil)
