package model

import (
	"math/rand"
	"time"
)

// Range defines a duration range with random sampling.
type Range struct {
	Min time.Duration
	Max time.Duration
}

// Random returns a random duration in [Min, Max).
func (value Range) Random(rng *rand.Rand) time.Duration {
	if value.Max <= value.Min {
		return value.Min
	}
	delta := value.Max - value.Min
	return value.Min + time.Duration(rng.Int63n(int64(delta)))
}

// FrameRange defines an interval measured in frame counts.
type FrameRange struct {
	Min int
	Max int
}

// Random returns a random frame count in [Min, Max).
func (value FrameRange) Random(rng *rand.Rand) int {
	if value.Max <= value.Min {
		return value.Min
	}
	return value.Min + rng.Intn(value.Max-value.Min)
}

// BlinkConfig contains timing for the blink cycle state machine.
type BlinkConfig struct {
	// OpenDelay is the randomized time the eyes stay open between blinks.
	OpenDelay Range
	// ClosedDuration is the time the lids stay shut once a blink starts.
	ClosedDuration time.Duration
	// EnlargedDuration is the time the eyes stay widened after reopening.
	EnlargedDuration time.Duration
}

// WanderConfig controls pupil retargeting and smoothing.
type WanderConfig struct {
	// Retarget is the frame-count schedule between simultaneous retargets.
	Retarget FrameRange
	// EaseFactor smooths each pupil toward its target every frame.
	EaseFactor float64
}

// AnimationConfig contains runtime settings for the frame integrator.
type AnimationConfig struct {
	OpennessFactor float64
	StretchFactor  float64
	Wander         WanderConfig
}
