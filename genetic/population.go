// SPDX-License-Identifier: MIT
// Package: trdom/genetic
//
// population.go: ordered, immutable collection of chromosomes.

package genetic

import "math/rand"

// Population is an ordered collection of Chromosomes. Order carries no
// meaning beyond stable indexing; the size is fixed for the lifetime of the
// value.
type Population struct {
	individuals []*Chromosome
}

// NewPopulation builds a Population from individuals. The slice is copied;
// the chromosomes themselves are immutable and therefore shared.
func NewPopulation(individuals []*Chromosome) *Population {
	buf := make([]*Chromosome, len(individuals))
	copy(buf, individuals)

	return &Population{individuals: buf}
}

// RandomPopulation builds size chromosomes of n uniform labels each.
// A nil rng falls back to a time-seeded generator.
func RandomPopulation(size, n int, rng *rand.Rand) *Population {
	rng = orTimeSeeded(rng)
	buf := make([]*Chromosome, size)
	for i := range buf {
		buf[i] = RandomChromosome(n, rng)
	}

	return &Population{individuals: buf}
}

// Size returns the number of individuals.
func (p *Population) Size() int { return len(p.individuals) }

// Individuals returns a fresh slice over the population's chromosomes.
func (p *Population) Individuals() []*Chromosome {
	out := make([]*Chromosome, len(p.individuals))
	copy(out, p.individuals)

	return out
}

// At returns the i-th individual. It panics if i is out of range.
func (p *Population) At(i int) *Chromosome { return p.individuals[i] }

// Best returns the individual with maximum fitness, ties going to the last
// one in order (the tournament tie-break). Nil for an empty population.
func (p *Population) Best() *Chromosome {
	var best *Chromosome
	for _, c := range p.individuals {
		if best == nil || c.Fitness() >= best.Fitness() {
			best = c
		}
	}

	return best
}

// TotalFitness returns the sum of all fitness values.
func (p *Population) TotalFitness() int {
	total := 0
	for _, c := range p.individuals {
		total += c.Fitness()
	}

	return total
}

// MeanFitness returns TotalFitness()/Size(), or 0 for an empty population.
func (p *Population) MeanFitness() float64 {
	if len(p.individuals) == 0 {
		return 0
	}

	return float64(p.TotalFitness()) / float64(len(p.individuals))
}
