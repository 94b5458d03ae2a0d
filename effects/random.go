package effects

import (
	"math/rand/v2"

	"github.com/google/uuid"

	"github.com/on-the-ground/funtom_go/effio"
)

// NewRand returns a PCG-backed generator. A zero seed draws one from the
// runtime source.
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return rand.New(rand.NewPCG(seed, seed))
}

// Float64 draws from rng in [0.0, 1.0) when run.
func Float64(rng *rand.Rand) effio.IO[float64] {
	return effio.New(rng.Float64)
}

// IntN draws from rng in [0, n) when run. It panics when run if n <= 0.
func IntN(rng *rand.Rand, n int) effio.IO[int] {
	return effio.New(func() int {
		return rng.IntN(n)
	})
}

// NewUUID generates a random (version 4) UUID when run.
func NewUUID() effio.IO[uuid.UUID] {
	return effio.New(uuid.New)
}
