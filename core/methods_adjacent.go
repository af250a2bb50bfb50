// File: methods_adjacent.go
// Role: Neighborhood API (NeighborIDs).
// Determinism:
//   - NeighborIDs() returns unique ids sorted ascending.
// Concurrency:
//   - Read lock only; the returned slice is owned by the caller.

package core

import "sort"

// NeighborIDs returns the set of vertex ids adjacent to id, sorted ascending.
//
// Implementation:
//   - Stage 1: Validate id is non-negative (ErrNegativeVertexID).
//   - Stage 2: Under the read lock, validate existence (ErrVertexNotFound).
//   - Stage 3: Copy the neighbor set into a fresh slice and sort it.
//
// Behavior highlights:
//   - A vertex with no edges yields an empty, non-nil slice and a nil error.
//   - The slice never aliases internal state; callers may modify it freely.
//
// Returns:
//   - []int: neighbor ids, sorted ascending.
//   - error: nil on success; otherwise a sentinel error.
//
// Determinism:
//   - Sorted order makes uniform draws over the result reproducible under a
//     seeded RNG, independent of map iteration order.
//
// Complexity:
//   - Time O(d log d), Space O(d), where d = deg(id).
func (g *Graph) NeighborIDs(id int) ([]int, error) {
	if id < 0 {
		return nil, ErrNegativeVertexID
	}

	g.mu.RLock()
	nbrs, ok := g.adjacency[id]
	if !ok {
		g.mu.RUnlock()
		return nil, ErrVertexNotFound
	}
	out := make([]int, 0, len(nbrs))
	for nb := range nbrs {
		out = append(out, nb)
	}
	g.mu.RUnlock()

	sort.Ints(out)

	return out, nil
}
