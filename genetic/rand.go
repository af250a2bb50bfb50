package genetic

import (
	"math/rand"
	"time"
)

// orTimeSeeded returns rng, or a fresh time-seeded generator when rng is nil.
func orTimeSeeded(rng *rand.Rand) *rand.Rand {
	if rng != nil {
		return rng
	}

	return rand.New(rand.NewSource(time.Now().UnixNano()))
}
