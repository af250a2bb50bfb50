// SPDX-License-Identifier: MIT
// Package: trdom/genetic
//
// chromosome.go: label encoding and fitness.
//
// Invariants:
//   • A Chromosome owns its gene buffer exclusively; constructors copy input.
//   • fitness == Σ genes for every live Chromosome (computed once, never mutated).
//   • Labels outside {0,1,2} are representable; only validity/repair judge them.

package genetic

import (
	"fmt"
	"math/rand"
	"strings"
)

// Gene is the label assigned to one vertex.
type Gene uint8

// Labels of a Roman dominating function.
const (
	GeneZero Gene = 0
	GeneOne  Gene = 1
	GeneTwo  Gene = 2
)

// labelCount is the number of admissible labels {0,1,2}.
const labelCount = 3

// Valid reports whether g is one of the admissible labels {0,1,2}.
func (g Gene) Valid() bool { return g <= GeneTwo }

// Graph is the neighborhood oracle a Chromosome is scored against.
//
// Vertex ids are 0..VertexCount()-1. NeighborIDs returns a non-nil error when
// the vertex is unknown to the graph. *core.Graph satisfies this interface.
type Graph interface {
	VertexCount() int
	NeighborIDs(id int) ([]int, error)
}

// Chromosome is one candidate labeling plus its fitness.
type Chromosome struct {
	genes   []Gene
	fitness int
}

// NewChromosome builds a Chromosome from a copy of genes and computes its
// fitness as the sum of all labels. No label validation happens here.
//
// Complexity: O(n) time, O(n) space.
func NewChromosome(genes []Gene) *Chromosome {
	buf := make([]Gene, len(genes))
	copy(buf, genes)

	return newOwnedChromosome(buf)
}

// newOwnedChromosome takes ownership of buf without copying.
func newOwnedChromosome(buf []Gene) *Chromosome {
	sum := 0
	for _, g := range buf {
		sum += int(g)
	}

	return &Chromosome{genes: buf, fitness: sum}
}

// RandomChromosome draws n labels uniformly from {0,1,2}.
// A nil rng falls back to a time-seeded generator.
func RandomChromosome(n int, rng *rand.Rand) *Chromosome {
	rng = orTimeSeeded(rng)
	buf := make([]Gene, n)
	for i := range buf {
		buf[i] = Gene(rng.Intn(labelCount))
	}

	return newOwnedChromosome(buf)
}

// Genes returns a copy of the label vector.
func (c *Chromosome) Genes() []Gene {
	out := make([]Gene, len(c.genes))
	copy(out, c.genes)

	return out
}

// Gene returns the label of vertex i. It panics if i is out of range, like
// slice indexing.
func (c *Chromosome) Gene(i int) Gene { return c.genes[i] }

// Len returns the number of genes.
func (c *Chromosome) Len() int { return len(c.genes) }

// Fitness returns the precomputed sum of labels. O(1).
func (c *Chromosome) Fitness() int { return c.fitness }

// Clone returns an independent deep copy.
func (c *Chromosome) Clone() *Chromosome {
	return &Chromosome{genes: c.Genes(), fitness: c.fitness}
}

// Equal reports whether both chromosomes carry the same labels.
func (c *Chromosome) Equal(other *Chromosome) bool {
	if c == nil || other == nil {
		return c == other
	}
	if len(c.genes) != len(other.genes) {
		return false
	}
	for i := range c.genes {
		if c.genes[i] != other.genes[i] {
			return false
		}
	}

	return true
}

// String renders the labels and fitness, e.g. "[2 0 0 2 1] fitness=5".
func (c *Chromosome) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, g := range c.genes {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%d", g)
	}
	fmt.Fprintf(&sb, "] fitness=%d", c.fitness)

	return sb.String()
}

// geneAt returns the label of id and whether id indexes the buffer.
func geneAt(genes []Gene, id int) (Gene, bool) {
	if id < 0 || id >= len(genes) {
		return 0, false
	}

	return genes[id], true
}
