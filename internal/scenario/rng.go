package scenario

import "math/rand/v2"

// newRNG creates a deterministic source for the provided seed.
func newRNG(seed int64) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(seed), 0))
}

// fillBernoulli sets each buffer cell to 1 with probability density.
func fillBernoulli(r *rand.Rand, buf []uint8, density float64) {
	for i := range buf {
		buf[i] = 0
		if r.Float64() < density {
			buf[i] = 1
		}
	}
}
