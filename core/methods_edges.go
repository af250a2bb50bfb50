// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/RemoveEdge/HasEdge/Edges/EdgeCount.
// Determinism:
//   - Edges() returns edges sorted by (From, To) asc with From < To.
// Concurrency:
//   - Mutations under mu write lock.
//   - Read queries under mu read lock.

package core

import "sort"

// AddEdge connects a and b with an undirected edge.
//
// Steps:
//  1. Validate ids (non-negative) and reject self-loops.
//  2. Lock mu; auto-create missing endpoints.
//  3. Reject a parallel edge; otherwise link both adjacency sets.
//
// Errors:
//   - ErrNegativeVertexID, ErrLoopNotAllowed, ErrMultiEdgeNotAllowed.
//
// Complexity: O(1) amortized (hash-set updates).
func (g *Graph) AddEdge(a, b int) error {
	if a < 0 || b < 0 {
		return ErrNegativeVertexID
	}
	if a == b {
		return ErrLoopNotAllowed
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	ensureVertex(g, a)
	ensureVertex(g, b)
	if _, dup := g.adjacency[a][b]; dup {
		return ErrMultiEdgeNotAllowed
	}
	g.adjacency[a][b] = struct{}{}
	g.adjacency[b][a] = struct{}{}
	g.edgeCount++

	return nil
}

// RemoveEdge deletes the edge between a and b (either order).
// Removing an absent edge returns ErrEdgeNotFound.
// Complexity: O(1).
func (g *Graph) RemoveEdge(a, b int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.adjacency[a][b]; !ok {
		return ErrEdgeNotFound
	}
	delete(g.adjacency[a], b)
	delete(g.adjacency[b], a)
	g.edgeCount--

	return nil
}

// HasEdge reports whether a and b are adjacent. Unknown vertices ⇒ false.
// Complexity: O(1).
func (g *Graph) HasEdge(a, b int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.adjacency[a][b]

	return ok
}

// Edges returns every edge once, normalized to From < To and sorted.
// Complexity: O(E log E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	out := make([]Edge, 0, g.edgeCount)
	for from, nbrs := range g.adjacency {
		for to := range nbrs {
			if from < to {
				out = append(out, Edge{From: from, To: to})
			}
		}
	}
	g.mu.RUnlock()
	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}
		return out[i].To < out[j].To
	})

	return out
}

// EdgeCount returns the number of undirected edges.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}

// ensureVertex allocates the neighbor set of id if missing.
// Caller must hold g.mu for writing.
func ensureVertex(g *Graph, id int) {
	if _, ok := g.adjacency[id]; !ok {
		g.adjacency[id] = make(map[int]struct{})
	}
}
