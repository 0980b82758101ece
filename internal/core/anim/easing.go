package anim

import "github.com/YakiFrog/sirius-face-anim/internal/core/scene"

// Step moves current toward target by the easing factor and returns the new
// value. Smoothing is exponential: repeated steps approach the target without
// overshooting and never arrive exactly. The factor is clamped to [0, 1]; a
// factor of zero freezes current and a factor of one lands on the target.
func Step(current, target, factor float64) float64 {
	if factor < 0 {
		factor = 0
	}
	if factor > 1 {
		factor = 1
	}
	return current + (target-current)*factor
}

// StepVec applies Step independently to each axis.
func StepVec(current, target scene.Vec, factor float64) scene.Vec {
	return scene.Vec{
		X: Step(current.X, target.X, factor),
		Y: Step(current.Y, target.Y, factor),
	}
}
