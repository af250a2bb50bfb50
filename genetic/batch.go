// SPDX-License-Identifier: MIT
// Package: trdom/genetic
//
// batch.go: per-individual operations fanned out across goroutines.
//
// Contract:
//   • Work is bounded by WithWorkers (default GOMAXPROCS) through errgroup.SetLimit.
//   • Results are written by index, so output order equals population order.
//   • Repair derives one seed per individual from the caller's rng BEFORE
//     fanning out; a seeded rng yields the same population on every run,
//     whatever the scheduling.
//   • A cancelled context aborts the batch with ctx.Err().

package genetic

import (
	"context"
	"math/rand"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// batchConfig is resolved once per batch call.
type batchConfig struct {
	workers int
}

// BatchOption customizes Population batch operations.
type BatchOption func(*batchConfig)

// WithWorkers caps the number of concurrently evaluated individuals.
// Panics if n < 1.
func WithWorkers(n int) BatchOption {
	if n < 1 {
		panic("genetic: WithWorkers(n<1)")
	}
	return func(c *batchConfig) { c.workers = n }
}

func newBatchConfig(opts []BatchOption) batchConfig {
	cfg := batchConfig{workers: runtime.GOMAXPROCS(0)}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// forEach runs fn(i) for every individual index under the worker limit.
func (p *Population) forEach(ctx context.Context, opts []BatchOption, fn func(i int)) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	cfg := newBatchConfig(opts)
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(cfg.workers)
	for i := range p.individuals {
		i := i
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			fn(i)
			return nil
		})
	}

	return eg.Wait()
}

// ValidityMask reports IsValidTotalRomanDomination for every individual.
func (p *Population) ValidityMask(ctx context.Context, g Graph, opts ...BatchOption) ([]bool, error) {
	mask := make([]bool, len(p.individuals))
	err := p.forEach(ctx, opts, func(i int) {
		mask[i] = p.individuals[i].IsValidTotalRomanDomination(g)
	})
	if err != nil {
		return nil, err
	}

	return mask, nil
}

// CountValid returns how many individuals are valid on g.
func (p *Population) CountValid(ctx context.Context, g Graph, opts ...BatchOption) (int, error) {
	mask, err := p.ValidityMask(ctx, g, opts...)
	if err != nil {
		return 0, err
	}
	n := 0
	for _, ok := range mask {
		if ok {
			n++
		}
	}

	return n, nil
}

// Repair applies FixChromosome to every individual and returns the repaired
// population. The receiver is left untouched. A nil rng falls back to a
// time-seeded generator.
func (p *Population) Repair(ctx context.Context, g Graph, rng *rand.Rand, ropts []RepairOption, opts ...BatchOption) (*Population, error) {
	rng = orTimeSeeded(rng)
	seeds := make([]int64, len(p.individuals))
	for i := range seeds {
		seeds[i] = rng.Int63()
	}

	out := make([]*Chromosome, len(p.individuals))
	err := p.forEach(ctx, opts, func(i int) {
		local := rand.New(rand.NewSource(seeds[i]))
		out[i] = p.individuals[i].FixChromosome(g, local, ropts...)
	})
	if err != nil {
		return nil, err
	}

	return &Population{individuals: out}, nil
}
