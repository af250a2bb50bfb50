package genetic_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/trdom/builder"
	"github.com/katalvlaran/trdom/genetic"
)

const benchVertices = 500

func BenchmarkIsValidTotalRomanDomination(b *testing.B) {
	g := build(b, builder.RandomSparse(benchVertices, 0.01))
	all2 := make([]genetic.Gene, benchVertices)
	for i := range all2 {
		all2[i] = genetic.GeneTwo
	}
	c := genetic.NewChromosome(all2)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = c.IsValidTotalRomanDomination(g)
	}
}

func BenchmarkFixChromosome(b *testing.B) {
	g := build(b, builder.RandomSparse(benchVertices, 0.01))
	c := genetic.RandomChromosome(benchVertices, newRand(Seed1))
	rng := newRand(Seed42)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = c.FixChromosome(g, rng)
	}
}

func BenchmarkKTournamentSelect(b *testing.B) {
	pop := genetic.RandomPopulation(200, benchVertices, newRand(Seed1))
	sel, err := genetic.NewKTournamentSelection(5, genetic.WithSeed(Seed7))
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := sel.Select(pop); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkPopulationRepair(b *testing.B) {
	g := build(b, builder.RandomSparse(benchVertices, 0.01))
	pop := genetic.RandomPopulation(200, benchVertices, newRand(Seed1))
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := pop.Repair(ctx, g, newRand(int64(i)), nil); err != nil {
			b.Fatal(err)
		}
	}
}
