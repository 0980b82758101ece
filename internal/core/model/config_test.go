package model

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRangeRandomStaysInRange(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	value := Range{Min: 3 * time.Second, Max: 10 * time.Second}

	for i := 0; i < 1000; i++ {
		sampled := value.Random(rng)
		assert.GreaterOrEqual(t, sampled, value.Min)
		assert.Less(t, sampled, value.Max)
	}
}

func TestRangeRandomDegenerate(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	fixed := Range{Min: 4 * time.Second, Max: 4 * time.Second}
	assert.Equal(t, 4*time.Second, fixed.Random(rng), "equal bounds always return Min")

	inverted := Range{Min: 5 * time.Second, Max: 2 * time.Second}
	assert.Equal(t, 5*time.Second, inverted.Random(rng), "inverted bounds return Min")
}

func TestFrameRangeRandomStaysInRange(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	value := FrameRange{Min: 180, Max: 600}

	seen := map[int]bool{}
	for i := 0; i < 1000; i++ {
		sampled := value.Random(rng)
		assert.GreaterOrEqual(t, sampled, 180)
		assert.Less(t, sampled, 600)
		seen[sampled] = true
	}
	assert.Greater(t, len(seen), 100, "sampling covers the interval")
}

func TestFrameRangeRandomDegenerate(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	assert.Equal(t, 240, FrameRange{Min: 240, Max: 240}.Random(rng))
	assert.Equal(t, 240, FrameRange{Min: 240, Max: 60}.Random(rng))
}
