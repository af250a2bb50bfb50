// Package core defines the central Graph and Edge types, and provides
// thread-safe primitives for building, querying, and cloning graphs.
//
// All core APIs share one sync.RWMutex internally, so graphs may be queried
// from many goroutines at once (the genetic package evaluates individuals
// concurrently against a single Graph).
//
// This file declares Edge, Graph, GraphOption, sentinel errors, and the
// NewGraph constructor.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrNegativeVertexID indicates that the provided vertex id is below zero.
	ErrNegativeVertexID = errors.New("core: vertex ID is negative")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// Edge is an undirected connection between two vertices.
//
// Edges reported by the Graph are normalized so that From < To.
type Edge struct {
	// From is the smaller endpoint id.
	From int

	// To is the larger endpoint id.
	To int
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithVertexCapacity pre-sizes the vertex catalog for n vertices.
// Non-positive values are ignored.
func WithVertexCapacity(n int) GraphOption {
	return func(g *Graph) {
		if n > 0 {
			g.capacity = n
		}
	}
}

// Graph is the core in-memory undirected simple graph.
//
// mu protects the vertex catalog, the adjacency sets and the edge counter.
type Graph struct {
	mu sync.RWMutex

	// capacity is a construction-time sizing hint.
	capacity int

	// adjacency[v] is the neighbor set of v; every vertex has a non-nil entry.
	adjacency map[int]map[int]struct{}

	// edgeCount is the number of undirected edges.
	edgeCount int
}

// NewGraph creates an empty Graph with the given options.
// Complexity: O(1) (plus O(capacity) when WithVertexCapacity is set).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{}
	// Apply options
	for _, opt := range opts {
		opt(g)
	}
	g.adjacency = make(map[int]map[int]struct{}, g.capacity)

	return g
}
