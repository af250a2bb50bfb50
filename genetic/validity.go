// SPDX-License-Identifier: MIT
// Package: trdom/genetic
//
// validity.go: total Roman domination constraint check.
//
// Contract:
//   • Vertices 0..g.VertexCount()-1 are examined in ascending order.
//   • Lookup failure for any vertex ⇒ invalid (fail closed, no error escapes).
//   • Label 0 needs a neighbor labeled exactly 2.
//   • Label 1 or 2 needs a neighbor labeled > 0.
//   • Any other label, or a vertex with no gene, ⇒ invalid immediately.
//   • A neighbor id outside the gene buffer counts as label 0.
//
// Complexity: O(V + E) time, O(max degree) transient space per lookup.

package genetic

import "fmt"

// IsValidTotalRomanDomination reports whether c is a total Roman dominating
// function on g.
//
// An empty graph is trivially valid. A graph holding an isolated vertex never
// is: the vertex has no neighbor to satisfy either branch.
func (c *Chromosome) IsValidTotalRomanDomination(g Graph) bool {
	n := g.VertexCount()
	for v := 0; v < n; v++ {
		nbrs, err := g.NeighborIDs(v)
		if err != nil {
			return false
		}
		label, ok := geneAt(c.genes, v)
		if !ok {
			return false
		}
		switch label {
		case GeneZero:
			if !hasNeighbor(c.genes, nbrs, isTwo) {
				return false
			}
		case GeneOne, GeneTwo:
			if !hasNeighbor(c.genes, nbrs, isPositive) {
				return false
			}
		default:
			return false
		}
	}

	return true
}

// ViolationKind classifies why a vertex fails the constraint.
type ViolationKind int

const (
	// UnknownVertex: the graph could not answer the neighbor lookup.
	UnknownVertex ViolationKind = iota + 1
	// MalformedGene: the label is outside {0,1,2}, or missing.
	MalformedGene
	// MissingTwo: a 0-vertex without a neighbor labeled 2.
	MissingTwo
	// MissingPositive: a 1/2-vertex without a positively labeled neighbor.
	MissingPositive
)

// String implements fmt.Stringer.
func (k ViolationKind) String() string {
	switch k {
	case UnknownVertex:
		return "unknown-vertex"
	case MalformedGene:
		return "malformed-gene"
	case MissingTwo:
		return "missing-two"
	case MissingPositive:
		return "missing-positive"
	default:
		return fmt.Sprintf("ViolationKind(%d)", int(k))
	}
}

// Violation is one failing vertex.
type Violation struct {
	Vertex int
	Kind   ViolationKind
}

// Violations lists every failing vertex in ascending order. Unlike
// IsValidTotalRomanDomination it does not stop at the first failure. The
// result is empty iff c is valid on g.
func (c *Chromosome) Violations(g Graph) []Violation {
	var out []Violation
	n := g.VertexCount()
	for v := 0; v < n; v++ {
		nbrs, err := g.NeighborIDs(v)
		if err != nil {
			out = append(out, Violation{Vertex: v, Kind: UnknownVertex})
			continue
		}
		label, ok := geneAt(c.genes, v)
		switch {
		case !ok || !label.Valid():
			out = append(out, Violation{Vertex: v, Kind: MalformedGene})
		case label == GeneZero && !hasNeighbor(c.genes, nbrs, isTwo):
			out = append(out, Violation{Vertex: v, Kind: MissingTwo})
		case label != GeneZero && !hasNeighbor(c.genes, nbrs, isPositive):
			out = append(out, Violation{Vertex: v, Kind: MissingPositive})
		}
	}

	return out
}

func isTwo(g Gene) bool      { return g == GeneTwo }
func isPositive(g Gene) bool { return g > GeneZero }

// hasNeighbor reports whether any neighbor's current label satisfies pred.
func hasNeighbor(genes []Gene, nbrs []int, pred func(Gene) bool) bool {
	for _, nb := range nbrs {
		if label, ok := geneAt(genes, nb); ok && pred(label) {
			return true
		}
	}

	return false
}
