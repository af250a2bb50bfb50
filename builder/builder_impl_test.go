// File: builder_impl_test.go
// Package builder_test contains functional tests for every Constructor in the
// builder package, verifying topology, counts, error wrapping and determinism.
package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/trdom/builder"
	"github.com/katalvlaran/trdom/core"
)

// TestBuilders_Functional runs table-driven functional tests for each builder.
func TestBuilders_Functional(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		ctor        builder.Constructor
		wantV       int
		wantE       int
		sampleCheck func(t *testing.T, g *core.Graph)
	}{
		{
			name:  "Cycle(5)",
			ctor:  builder.Cycle(5),
			wantV: 5, wantE: 5,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				for i := 0; i < 5; i++ {
					assert.True(t, g.HasEdge(i, (i+1)%5), "missing ring edge %d-%d", i, (i+1)%5)
				}
			},
		},
		{
			name:  "Path(4)",
			ctor:  builder.Path(4),
			wantV: 4, wantE: 3,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				assert.False(t, g.HasEdge(0, 3), "path must not close")
				assert.Equal(t, []int{0, 1, 2, 3}, g.Vertices())
			},
		},
		{
			name:  "Isolated(3)",
			ctor:  builder.Isolated(3),
			wantV: 3, wantE: 0,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				assert.Equal(t, []int{0, 1, 2}, g.IsolatedVertices())
			},
		},
		{
			name:  "Star(4)",
			ctor:  builder.Star(4),
			wantV: 4, wantE: 3,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				nbrs, err := g.NeighborIDs(0)
				require.NoError(t, err)
				assert.Equal(t, []int{1, 2, 3}, nbrs)
			},
		},
		{
			name:  "Wheel(4)",
			ctor:  builder.Wheel(4),
			wantV: 5, wantE: 8, // 4 rim + 4 spokes
			sampleCheck: func(t *testing.T, g *core.Graph) {
				assert.True(t, g.HasEdge(0, 1))
				deg, err := g.Degree(4)
				require.NoError(t, err)
				assert.Equal(t, 4, deg)
			},
		},
		{
			name:  "Complete(4)",
			ctor:  builder.Complete(4),
			wantV: 4, wantE: 6,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				assert.Equal(t, 3, g.Stats().MaxDegree)
			},
		},
		{
			name:  "RandomSparse(6,1)",
			ctor:  builder.RandomSparse(6, 1),
			wantV: 6, wantE: 15,
		},
		{
			name:  "RandomSparse(6,0)",
			ctor:  builder.RandomSparse(6, 0),
			wantV: 6, wantE: 0,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g, err := builder.BuildGraph(nil, nil, tc.ctor)
			require.NoError(t, err)
			assert.Equal(t, tc.wantV, g.VertexCount())
			assert.Equal(t, tc.wantE, g.EdgeCount())
			if tc.sampleCheck != nil {
				tc.sampleCheck(t, g)
			}
		})
	}
}

// TestBuilders_Errors VERIFIES sentinel propagation through BuildGraph.
func TestBuilders_Errors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		ctor builder.Constructor
		want error
	}{
		{"Cycle(2)", builder.Cycle(2), builder.ErrTooFewVertices},
		{"Path(1)", builder.Path(1), builder.ErrTooFewVertices},
		{"Isolated(0)", builder.Isolated(0), builder.ErrTooFewVertices},
		{"Star(1)", builder.Star(1), builder.ErrTooFewVertices},
		{"Wheel(2)", builder.Wheel(2), builder.ErrTooFewVertices},
		{"Complete(0)", builder.Complete(0), builder.ErrTooFewVertices},
		{"RandomSparse(0,0.5)", builder.RandomSparse(0, 0.5), builder.ErrTooFewVertices},
		{"RandomSparse(3,1.5)", builder.RandomSparse(3, 1.5), builder.ErrInvalidProbability},
		{"RandomSparse(3,-0.1)", builder.RandomSparse(3, -0.1), builder.ErrInvalidProbability},
		{"RandomSparse(3,0.5) without rng", builder.RandomSparse(3, 0.5), builder.ErrNeedRandSource},
		{"nil constructor", nil, builder.ErrConstructFailed},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g, err := builder.BuildGraph(nil, nil, tc.ctor)
			require.ErrorIs(t, err, tc.want)
			assert.Nil(t, g)
		})
	}
}

// TestRandomSparse_Deterministic VERIFIES equal seeds give equal graphs.
func TestRandomSparse_Deterministic(t *testing.T) {
	t.Parallel()

	build := func(seed int64) []core.Edge {
		g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSeed(seed)}, builder.RandomSparse(20, 0.3))
		require.NoError(t, err)
		return g.Edges()
	}
	assert.Equal(t, build(7), build(7))
	assert.NotEqual(t, build(7), build(8))
}

// TestBuildInto_IDOffset VERIFIES disjoint composition with WithIDOffset.
func TestBuildInto_IDOffset(t *testing.T) {
	t.Parallel()

	g, err := builder.BuildGraph(nil, nil, builder.Cycle(3))
	require.NoError(t, err)
	require.NoError(t, builder.BuildInto(g, []builder.BuilderOption{builder.WithIDOffset(3)}, builder.Cycle(3)))

	assert.Equal(t, 6, g.VertexCount())
	assert.Equal(t, 6, g.EdgeCount())
	assert.True(t, g.HasEdge(3, 5))
	assert.False(t, g.HasEdge(2, 3))

	err = builder.BuildInto(g, nil, builder.Path(1))
	require.ErrorIs(t, err, builder.ErrTooFewVertices)
}

// TestOptions_Panics VERIFIES option constructors reject nonsense eagerly.
func TestOptions_Panics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { builder.WithRand(nil) })
	assert.Panics(t, func() { builder.WithIDOffset(-1) })
}
