package anim

import "github.com/YakiFrog/sirius-face-anim/internal/core/model"

// DefaultConfig returns the stock integrator settings.
func DefaultConfig() model.AnimationConfig {
	return model.AnimationConfig{
		OpennessFactor: 0.3,
		StretchFactor:  0.3,
		Wander: model.WanderConfig{
			Retarget:   model.FrameRange{Min: 180, Max: 600},
			EaseFactor: 0.1,
		},
	}
}
