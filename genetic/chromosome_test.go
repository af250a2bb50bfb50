package genetic_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/trdom/genetic"
)

func TestChromosome_Creation(t *testing.T) {
	in := genes(1, 0, 1, 1)
	c := genetic.NewChromosome(in)

	assert.Equal(t, in, c.Genes())
	assert.Equal(t, 4, c.Len())
	assert.Equal(t, genetic.GeneOne, c.Gene(0))
	assert.Equal(t, 3, c.Fitness())
}

func TestChromosome_OwnsBuffer(t *testing.T) {
	in := genes(2, 2, 2)
	c := genetic.NewChromosome(in)

	// Mutating the caller's slice or a returned view must not leak in.
	in[0] = 0
	view := c.Genes()
	view[1] = 0

	assert.Equal(t, []int{2, 2, 2}, ints(c.Genes()))
	assert.Equal(t, 6, c.Fitness())
}

func TestChromosome_FitnessIsSumOfGenes(t *testing.T) {
	rng := newRand(Seed7)
	for trial := 0; trial < 200; trial++ {
		n := rng.Intn(40)
		raw := make([]genetic.Gene, n)
		want := 0
		for i := range raw {
			raw[i] = genetic.Gene(rng.Intn(256)) // malformed labels included
			want += int(raw[i])
		}
		c := genetic.NewChromosome(raw)
		require.Equal(t, want, c.Fitness(), "trial %d", trial)
		require.Equal(t, c.Fitness(), c.Fitness(), "fitness is stable across reads")
	}
}

func TestChromosome_WideFitness(t *testing.T) {
	// 255·n overflows a uint8 sum immediately; fitness must be widened first.
	raw := make([]genetic.Gene, 1000)
	for i := range raw {
		raw[i] = 255
	}
	assert.Equal(t, 255000, genetic.NewChromosome(raw).Fitness())
}

func TestChromosome_EmptyAndClone(t *testing.T) {
	empty := genetic.NewChromosome(nil)
	assert.Zero(t, empty.Fitness())
	assert.Zero(t, empty.Len())

	c := genetic.NewChromosome(genes(2, 0, 1))
	cl := c.Clone()
	assert.NotSame(t, c, cl)
	assert.True(t, c.Equal(cl))
	assert.Equal(t, c.Fitness(), cl.Fitness())

	assert.False(t, c.Equal(genetic.NewChromosome(genes(2, 0))))
	assert.False(t, c.Equal(genetic.NewChromosome(genes(2, 0, 2))))
	assert.False(t, c.Equal(nil))
}

func TestChromosome_String(t *testing.T) {
	assert.Equal(t, "[2 0 0 2 1] fitness=5", genetic.NewChromosome(genes(2, 0, 0, 2, 1)).String())
	assert.Equal(t, "[] fitness=0", genetic.NewChromosome(nil).String())
}

func TestGene_Valid(t *testing.T) {
	assert.True(t, genetic.GeneZero.Valid())
	assert.True(t, genetic.GeneOne.Valid())
	assert.True(t, genetic.GeneTwo.Valid())
	assert.False(t, genetic.Gene(3).Valid())
}

func TestRandomChromosome(t *testing.T) {
	a := genetic.RandomChromosome(50, newRand(Seed1))
	b := genetic.RandomChromosome(50, newRand(Seed1))
	require.True(t, a.Equal(b), "same seed, same labels")

	for _, g := range a.Genes() {
		assert.True(t, g.Valid())
	}
	assert.Equal(t, 50, genetic.RandomChromosome(50, nil).Len())
}
