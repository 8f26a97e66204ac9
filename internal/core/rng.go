package core

import "math/rand/v2"

// NewRNG creates a deterministic random source from the provided seed.
// Engines use it for reproducible Bernoulli reseeding.
func NewRNG(seed int64) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(seed), 0))
}

// FillBernoulli fills the cell buffer with an independent draw per cell:
// alive with probability density, dead otherwise. Densities outside
// [0,1] are clamped.
func FillBernoulli(r *rand.Rand, cells []uint8, density float64, alive uint8) {
	if density < 0 {
		density = 0
	}
	if density > 1 {
		density = 1
	}
	for i := range cells {
		if r.Float64() < density {
			cells[i] = alive
		} else {
			cells[i] = 0
		}
	}
}
