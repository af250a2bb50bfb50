// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Thin, deterministic public facade exposing read-only snapshots.
// Policy:
//   - No algorithms or hidden state here.
//   - Concurrency model and invariants are defined in types.go/doc.go.

package core

// GraphStats is an immutable-by-convention snapshot of catalog sizes.
type GraphStats struct {
	// VertexCount is the number of vertices in the catalog.
	VertexCount int

	// EdgeCount is the number of undirected edges.
	EdgeCount int

	// IsolatedCount is the number of degree-zero vertices.
	IsolatedCount int

	// MaxDegree is the largest neighbor-set size (0 for an empty graph).
	MaxDegree int

	// Dense reports whether the catalog is exactly {0, ..., VertexCount-1}.
	Dense bool
}

// Stats produces a deterministic, read-only snapshot of catalog sizes.
//
// Implementation:
//   - Stage 1: Acquire the read lock.
//   - Stage 2: Scan vertices once, counting isolated ones, tracking the maximum
//     degree and whether every id falls inside 0..V-1.
//
// Behavior highlights:
//   - Dense is the precondition under which the genetic package can never hit
//     a vertex lookup failure while walking 0..VertexCount()-1.
//
// Complexity:
//   - Time O(V), Space O(1) plus the returned struct.
func (g *Graph) Stats() *GraphStats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	n := len(g.adjacency)
	stats := GraphStats{
		VertexCount: n,
		EdgeCount:   g.edgeCount,
		Dense:       true,
	}
	for id, nbrs := range g.adjacency {
		if id >= n {
			stats.Dense = false // ids are distinct, so one outside 0..n-1 means a gap
		}
		if len(nbrs) == 0 {
			stats.IsolatedCount++
		}
		if len(nbrs) > stats.MaxDegree {
			stats.MaxDegree = len(nbrs)
		}
	}

	return &stats
}
