// SPDX-License-Identifier: MIT
// Package: trdom/genetic
//
// selection.go: turning one generation into the next.
//
// Contract (KTournamentSelection):
//   • Exactly p.Size() tournaments; each draws k DISTINCT indices uniformly
//     without replacement (partial Fisher–Yates over a reused permutation).
//   • The winner has maximum fitness; ties go to the last one drawn.
//   • The winner is cloned into the output; the input population is never
//     mutated. Across tournaments an individual may win many times.
//   • k > p.Size() is a configuration error (ErrTournamentTooLarge).
//
// Complexity: O(p.Size() · (k + n)) time where n is the chromosome length
// (cloning dominates), O(p.Size()) extra space.

package genetic

import (
	"fmt"
	"math/rand"
)

const methodSelect = "KTournamentSelection.Select"

// SelectionStrategy produces the next population from the current one.
type SelectionStrategy interface {
	Select(p *Population) (*Population, error)
}

// KTournamentSelection implements SelectionStrategy with k-way tournaments.
//
// It holds a *rand.Rand and is therefore not safe for concurrent use; give
// each goroutine its own selector.
type KTournamentSelection struct {
	tournamentSize int
	rng            *rand.Rand
}

// SelectionOption customizes a KTournamentSelection.
type SelectionOption func(*KTournamentSelection)

// WithRand sets the generator used for tournament draws. Panics on nil.
func WithRand(r *rand.Rand) SelectionOption {
	if r == nil {
		panic("genetic: WithRand(nil)")
	}
	return func(s *KTournamentSelection) { s.rng = r }
}

// WithSeed seeds a private generator for reproducible tournaments.
func WithSeed(seed int64) SelectionOption {
	return func(s *KTournamentSelection) { s.rng = rand.New(rand.NewSource(seed)) }
}

// NewKTournamentSelection returns a selector running tournaments of size k.
// Without WithRand/WithSeed the selector draws from a time-seeded generator.
//
// Errors:
//   - ErrInvalidTournamentSize: if k < 1.
func NewKTournamentSelection(k int, opts ...SelectionOption) (*KTournamentSelection, error) {
	if k < 1 {
		return nil, fmt.Errorf("NewKTournamentSelection: k=%d: %w", k, ErrInvalidTournamentSize)
	}
	s := &KTournamentSelection{tournamentSize: k}
	for _, opt := range opts {
		opt(s)
	}
	s.rng = orTimeSeeded(s.rng)

	return s, nil
}

// TournamentSize returns k.
func (s *KTournamentSelection) TournamentSize() int { return s.tournamentSize }

// Select runs p.Size() tournaments and returns the winners' clones.
//
// Errors:
//   - ErrNilPopulation: if p is nil.
//   - ErrTournamentTooLarge: if k > p.Size() on a non-empty population.
//
// An empty population yields an empty population and no error.
func (s *KTournamentSelection) Select(p *Population) (*Population, error) {
	if p == nil {
		return nil, fmt.Errorf("%s: %w", methodSelect, ErrNilPopulation)
	}
	size := p.Size()
	if size == 0 {
		return NewPopulation(nil), nil
	}
	if s.tournamentSize > size {
		return nil, fmt.Errorf("%s: k=%d > size=%d: %w", methodSelect, s.tournamentSize, size, ErrTournamentTooLarge)
	}

	// perm is reshuffled in place; any permutation is a valid starting point
	// for a partial Fisher–Yates draw.
	perm := make([]int, size)
	for i := range perm {
		perm[i] = i
	}

	out := make([]*Chromosome, 0, size)
	for t := 0; t < size; t++ {
		winner := p.individuals[fittestOf(p.individuals, s.draw(perm))]
		out = append(out, winner.Clone())
	}

	return &Population{individuals: out}, nil
}

// draw places k distinct uniformly drawn indices in perm[:k] and returns them
// in draw order.
func (s *KTournamentSelection) draw(perm []int) []int {
	k := s.tournamentSize
	for i := 0; i < k; i++ {
		j := i + s.rng.Intn(len(perm)-i)
		perm[i], perm[j] = perm[j], perm[i]
	}

	return perm[:k]
}

// fittestOf returns the drawn index with maximum fitness; on ties the last
// one in draw order wins. drawn must be non-empty.
func fittestOf(individuals []*Chromosome, drawn []int) int {
	best := drawn[0]
	for _, idx := range drawn[1:] {
		if individuals[idx].Fitness() >= individuals[best].Fitness() {
			best = idx
		}
	}

	return best
}

var _ SelectionStrategy = (*KTournamentSelection)(nil)
