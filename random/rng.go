// Package random provides the seeded random source shared by generation,
// spawning and combat, plus weighted spawn tables.
package random

import "math/rand"

// RNG wraps math/rand.Rand with a fixed seed so a run can be reproduced.
type RNG struct {
	seed int64
	src  *rand.Rand
}

// NewRNG creates a new deterministic RNG from a seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		seed: seed,
		src:  rand.New(rand.NewSource(seed)),
	}
}

// Seed returns the seed the RNG was created with.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Roll returns a random integer in [1, sides]. Sides below 1 always roll 1.
func (r *RNG) Roll(sides int) int {
	if sides < 1 {
		return 1
	}
	return r.src.Intn(sides) + 1
}

// RollDice rolls n dice with the given number of sides and returns the total.
func (r *RNG) RollDice(n, sides int) int {
	total := 0
	for i := 0; i < n; i++ {
		total += r.Roll(sides)
	}
	return total
}

// Range returns a random integer in [lo, hi). An empty range returns lo.
func (r *RNG) Range(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + r.src.Intn(hi-lo)
}
