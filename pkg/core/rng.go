package core

import "math/rand/v2"

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Chance returns true with probability p.
func (r *RNG) Chance(p float64) bool {
	if p <= 0 {
		return false
	}
	if p >= 1 {
		return true
	}
	return r.r.Float64() < p
}

// RandomGrid returns a height×width grid where each cell is alive with the
// given density. The same seed always yields the same grid.
func RandomGrid(height, width int, density float64, seed int64) (*Grid, error) {
	g, err := NewGrid(height, width)
	if err != nil {
		return nil, err
	}
	rng := NewRNG(seed)
	for i := range g.data {
		g.data[i] = rng.Chance(density)
	}
	return g, nil
}
