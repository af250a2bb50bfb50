// Package core provides a thread-safe, in-memory undirected simple Graph over
// non-negative integer vertex identifiers.
//
// The Graph G = (V,E) is the neighborhood oracle consumed by the genetic
// package: a candidate labeling is indexed by vertex id, so the natural
// identifiers are the dense range 0..n-1. Sparse catalogs are permitted; an id
// in 0..VertexCount()-1 that was never added (or was removed) answers
// NeighborIDs with ErrVertexNotFound, which is how callers observe a lookup
// failure.
//
// Policy:
//
//   - Undirected: AddEdge(a,b) makes b a neighbor of a and a a neighbor of b.
//   - Simple: self-loops are rejected (ErrLoopNotAllowed), and a second edge
//     between the same endpoints is rejected (ErrMultiEdgeNotAllowed).
//   - AddEdge auto-adds missing endpoints.
//   - Deterministic iteration: Vertices(), Edges(), NeighborIDs() and
//     IsolatedVertices() all return sorted results.
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(id int) error            // O(1)
//	HasVertex(id int) bool             // O(1)
//	RemoveVertex(id int) error         // O(deg(v))
//
//	// Edge lifecycle
//	AddEdge(a, b int) error            // O(1)
//	RemoveEdge(a, b int) error         // O(1)
//	HasEdge(a, b int) bool             // O(1)
//
//	// Query
//	NeighborIDs(id int) ([]int, error) // O(d·log d), unique, sorted
//	Vertices() []int                   // O(V·log V)
//	Edges() []Edge                     // O(E·log E)
//	Degree(id int) (int, error)        // O(1)
//	IsolatedVertices() []int           // O(V·log V)
//	VertexCount() int                  // O(1)
//	EdgeCount() int                    // O(1)
//	Stats() *GraphStats                // O(V)
//
//	// Cloning & maintenance
//	CloneEmpty() *Graph                // O(V)
//	Clone() *Graph                     // O(V+E)
//	InducedSubgraph(g, keep) *Graph    // O(V+E)
//	Clear()                            // O(1)
//
// Errors:
//
//	ErrNegativeVertexID    – vertex id < 0
//	ErrVertexNotFound      – missing vertex
//	ErrEdgeNotFound        – missing edge
//	ErrLoopNotAllowed      – self-loop
//	ErrMultiEdgeNotAllowed – parallel edge
package core
