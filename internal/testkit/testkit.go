// Package testkit provides deterministic random test data for the
// fixedvec test suites.
package testkit

import "math/rand"

// RNG encapsulates a seeded random number generator so test data is
// reproducible.
type RNG struct {
	rand *rand.Rand
	seed int64
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), // nolint gosec
		seed: seed,
	}
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 { return r.seed }

// Intn returns a non-negative pseudo-random number in [0, n).
func (r *RNG) Intn(n int) int { return r.rand.Intn(n) }

// Float64s returns n pseudo-random float64 values in [0, 1).
func (r *RNG) Float64s(n int) []float64 {
	out := make([]float64, n)
	r.Fill(out)
	return out
}

// Fill fills dst with pseudo-random float64 values in [0, 1).
func (r *RNG) Fill(dst []float64) {
	for i := range dst {
		dst[i] = r.rand.Float64()
	}
}
