// File: methods_clone.go
// Role: Cloning, induced views and clearing graph instances.
// Concurrency:
//   - Read lock for snapshotting; no mutation of the source graph.

package core

// CloneEmpty returns a new Graph with the same vertices but no edges.
// Complexity: O(V).
func (g *Graph) CloneEmpty() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := NewGraph(WithVertexCapacity(len(g.adjacency)))
	for id := range g.adjacency {
		clone.adjacency[id] = make(map[int]struct{})
	}

	return clone
}

// Clone returns a deep copy of the Graph: vertices and adjacency.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := NewGraph(WithVertexCapacity(len(g.adjacency)))
	for id, nbrs := range g.adjacency {
		cp := make(map[int]struct{}, len(nbrs))
		for nb := range nbrs {
			cp[nb] = struct{}{}
		}
		clone.adjacency[id] = cp
	}
	clone.edgeCount = g.edgeCount

	return clone
}

// InducedSubgraph returns a new Graph induced by the set keep of vertex ids:
// the result contains only vertices v where keep[v] is true, and all edges
// whose endpoints are both kept. The input graph is not mutated.
//
// Vertex ids are preserved, so dropping an interior id leaves a gap in the
// catalog that later lookups report as ErrVertexNotFound.
//
// Complexity: O(V + E). Concurrency: read lock only on source.
func InducedSubgraph(g *Graph, keep map[int]bool) *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := NewGraph()
	for id := range g.adjacency {
		if keep[id] {
			out.adjacency[id] = make(map[int]struct{})
		}
	}
	for id, nbrs := range g.adjacency {
		if !keep[id] {
			continue
		}
		for nb := range nbrs {
			if !keep[nb] {
				continue
			}
			out.adjacency[id][nb] = struct{}{}
			if id < nb {
				out.edgeCount++
			}
		}
	}

	return out
}

// Clear resets the graph to an empty state.
// Complexity: O(1) for map reallocation.
func (g *Graph) Clear() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.adjacency = make(map[int]map[int]struct{}, g.capacity)
	g.edgeCount = 0
}
