package anim

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YakiFrog/sirius-face-anim/internal/core/model"
	"github.com/YakiFrog/sirius-face-anim/internal/core/scene"
)

func testWanderConfig() model.WanderConfig {
	return model.WanderConfig{
		Retarget:   model.FrameRange{Min: 180, Max: 600},
		EaseFactor: 0.1,
	}
}

func TestWanderRetargetsOnFirstAdvance(t *testing.T) {
	wander := NewWander(testWanderConfig(), 9, rand.New(rand.NewSource(1)))

	wander.Advance(1)

	require.True(t, wander.primed)
	assert.NotEqual(t, scene.Vec{}, wander.Left().Target)
	assert.NotEqual(t, scene.Vec{}, wander.Right().Target)
	assert.NotEqual(t, wander.Left().Target, wander.Right().Target,
		"each pupil draws its own target")
	assert.InDelta(t, wander.Left().Target.X*0.1, wander.Left().Current.X, 1e-9)
	assert.InDelta(t, wander.Left().Target.Y*0.1, wander.Left().Current.Y, 1e-9)
}

func TestWanderHoldsTargetUntilSchedule(t *testing.T) {
	wander := NewWander(testWanderConfig(), 9, rand.New(rand.NewSource(1)))

	wander.Advance(1)
	held := wander.Left().Target
	next := wander.nextRetarget
	require.GreaterOrEqual(t, next, 1+180)
	require.Less(t, next, 1+600)

	for frame := 2; frame < next; frame++ {
		wander.Advance(frame)
		assert.Equal(t, held, wander.Left().Target)
	}

	wander.Advance(next)
	assert.NotEqual(t, held, wander.Left().Target)
}

func TestWanderStaysWithinRadius(t *testing.T) {
	const radius = 9.0
	wander := NewWander(testWanderConfig(), radius, rand.New(rand.NewSource(7)))

	for frame := 1; frame <= 5000; frame++ {
		wander.Advance(frame)
		for _, pupil := range []Pupil{wander.Left(), wander.Right()} {
			assert.LessOrEqual(t, math.Abs(pupil.Target.X), radius)
			assert.LessOrEqual(t, math.Abs(pupil.Target.Y), radius)
			assert.LessOrEqual(t, math.Abs(pupil.Current.X), radius)
			assert.LessOrEqual(t, math.Abs(pupil.Current.Y), radius)
		}
	}
}

func TestWanderEasesTowardTarget(t *testing.T) {
	wander := NewWander(testWanderConfig(), 9, rand.New(rand.NewSource(3)))

	wander.Advance(1)
	target := wander.Left().Target
	distance := math.Hypot(target.X-wander.Left().Current.X, target.Y-wander.Left().Current.Y)

	for frame := 2; frame <= 50; frame++ {
		wander.Advance(frame)
		next := math.Hypot(target.X-wander.Left().Current.X, target.Y-wander.Left().Current.Y)
		assert.Less(t, next, distance)
		distance = next
	}
}

func TestWanderSetRadiusClampsTargets(t *testing.T) {
	wander := NewWander(testWanderConfig(), 9, rand.New(rand.NewSource(1)))
	wander.left.Target = scene.Vec{X: 30, Y: -30}
	wander.right.Target = scene.Vec{X: -1, Y: 12}

	wander.SetRadius(2)

	assert.Equal(t, scene.Vec{X: 2, Y: -2}, wander.Left().Target)
	assert.Equal(t, scene.Vec{X: -1, Y: 2}, wander.Right().Target)
}

func TestNewWanderNormalizesConfig(t *testing.T) {
	wander := NewWander(model.WanderConfig{}, -3, rand.New(rand.NewSource(1)))

	stock := DefaultConfig().Wander
	assert.Equal(t, stock, wander.config)
	assert.Zero(t, wander.radius, "negative radius collapses to zero")

	wander.Advance(1)
	assert.Equal(t, scene.Vec{}, wander.Left().Target)
	assert.Equal(t, scene.Vec{}, wander.Right().Target)
}
