// Package genetic implements the candidate representation and selection core
// of a genetic search for Total Roman Dominating Functions (TRDF).
//
// A TRDF on a graph G = (V,E) labels every vertex with 0, 1 or 2 so that:
//
//   - every vertex labeled 0 has a neighbor labeled 2, and
//   - every vertex labeled 1 or 2 has a neighbor labeled 1 or 2.
//
// The weight of a labeling is the sum of its labels.
//
// Components:
//
//	Chromosome           – immutable label vector + eagerly computed fitness (Σ labels)
//	IsValidTotalRomanDomination – constraint check (fails closed on unknown vertices)
//	FixChromosome        – randomized single-pass repair (skips unknown vertices silently)
//	Population           – ordered collection of chromosomes + concurrent batch ops
//	KTournamentSelection – k-way tournament, max fitness, ties to the last drawn
//
// Randomness is always injectable: every stochastic operation accepts a
// *rand.Rand (or WithRand/WithSeed options). Passing nil falls back to a
// time-seeded generator.
//
// Selection keeps the individual with the HIGHEST fitness, i.e. the heaviest
// labeling, even though the classical problem minimizes weight. Callers that
// want minimization must transform fitness before selection.
//
// Concurrency:
//
//	Chromosome and Population values are immutable after construction and
//	safe to share. A *rand.Rand is not; do not share one generator between
//	goroutines. Population batch methods derive per-individual generators
//	from the supplied one before fanning out.
package genetic
