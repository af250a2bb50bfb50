// File: methods_vertices.go
// Role: Vertex lifecycle & queries.
//
// Determinism:
//   - Vertices() and IsolatedVertices() return ids sorted ascending.
//
// Concurrency:
//   - Catalog mutations under mu write lock; queries under mu read lock.
package core

import "sort"

// AddVertex inserts a vertex if missing (idempotent).
//
// Implementation:
//   - Stage 1: Validate the id is non-negative (ErrNegativeVertexID).
//   - Stage 2: Under the write lock, allocate an empty neighbor set if absent.
//
// Behavior highlights:
//   - Idempotent: adding an existing vertex is a no-op.
//   - Ids need not be contiguous; gaps are reported as missing vertices by queries.
//
// Complexity:
//   - Time O(1) amortized, Space O(1) amortized.
func (g *Graph) AddVertex(id int) error {
	if id < 0 {
		return ErrNegativeVertexID
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, exists := g.adjacency[id]; exists {
		return nil // no-op for existing vertex
	}
	g.adjacency[id] = make(map[int]struct{})

	return nil
}

// HasVertex reports whether the vertex id exists (negative id ⇒ false).
// Complexity: O(1).
func (g *Graph) HasVertex(id int) bool {
	if id < 0 {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.adjacency[id]

	return ok
}

// RemoveVertex deletes a vertex and all incident edges.
//
// Implementation:
//   - Stage 1: Validate id (ErrNegativeVertexID).
//   - Stage 2: Under the write lock verify presence (ErrVertexNotFound).
//   - Stage 3: Drop id from every neighbor's set, then drop its own set.
//
// Complexity:
//   - Time O(deg(id)), Space O(1).
func (g *Graph) RemoveVertex(id int) error {
	if id < 0 {
		return ErrNegativeVertexID
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	nbrs, exists := g.adjacency[id]
	if !exists {
		return ErrVertexNotFound
	}
	for nb := range nbrs {
		delete(g.adjacency[nb], id)
		g.edgeCount--
	}
	delete(g.adjacency, id)

	return nil
}

// Vertices returns all vertex ids sorted ascending.
// Complexity: O(V log V).
func (g *Graph) Vertices() []int {
	g.mu.RLock()
	out := make([]int, 0, len(g.adjacency))
	for id := range g.adjacency {
		out = append(out, id)
	}
	g.mu.RUnlock()
	sort.Ints(out)

	return out
}

// VertexCount returns the number of vertices in the catalog.
//
// For a dense graph this equals max(id)+1; for a sparse catalog some ids in
// 0..VertexCount()-1 are absent and answer ErrVertexNotFound on lookup.
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adjacency)
}

// Degree returns the number of neighbors of id.
//
// Errors:
//   - ErrNegativeVertexID: if id < 0.
//   - ErrVertexNotFound: if the vertex does not exist.
func (g *Graph) Degree(id int) (int, error) {
	if id < 0 {
		return 0, ErrNegativeVertexID
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	nbrs, ok := g.adjacency[id]
	if !ok {
		return 0, ErrVertexNotFound
	}

	return len(nbrs), nil
}

// IsolatedVertices returns the ids of all degree-zero vertices, sorted ascending.
//
// A vertex without neighbors can never satisfy a total domination constraint,
// whatever its label; callers use this to explain why a repair left a
// labeling infeasible.
// Complexity: O(V log V).
func (g *Graph) IsolatedVertices() []int {
	g.mu.RLock()
	var out []int
	for id, nbrs := range g.adjacency {
		if len(nbrs) == 0 {
			out = append(out, id)
		}
	}
	g.mu.RUnlock()
	sort.Ints(out)

	return out
}
