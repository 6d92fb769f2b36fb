package random

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRNG_Deterministic(t *testing.T) {
	rng1 := NewRNG(42)
	rng2 := NewRNG(42)

	for i := 0; i < 20; i++ {
		require.Equal(t, rng1.Roll(6), rng2.Roll(6), "roll %d differs for the same seed", i)
	}
}

func TestRNG_RollRange(t *testing.T) {
	rng := NewRNG(99)

	for i := 0; i < 1000; i++ {
		r := rng.Roll(6)
		require.GreaterOrEqual(t, r, 1)
		require.LessOrEqual(t, r, 6)
	}
	assert.Equal(t, 1, rng.Roll(0))
}

func TestRNG_RangeIsHalfOpen(t *testing.T) {
	rng := NewRNG(7)
	seen := map[int]bool{}

	for i := 0; i < 1000; i++ {
		v := rng.Range(6, 10)
		require.GreaterOrEqual(t, v, 6)
		require.Less(t, v, 10)
		seen[v] = true
	}
	assert.Len(t, seen, 4)
	assert.Equal(t, 3, rng.Range(3, 3))
}

func TestRNG_RollDice(t *testing.T) {
	rng := NewRNG(3)

	for i := 0; i < 200; i++ {
		v := rng.RollDice(3, 4)
		require.GreaterOrEqual(t, v, 3)
		require.LessOrEqual(t, v, 12)
	}
}
