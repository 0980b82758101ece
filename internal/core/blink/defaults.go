package blink

import (
	"time"

	"github.com/YakiFrog/sirius-face-anim/internal/core/model"
)

// DefaultConfig returns the stock blink timing.
func DefaultConfig() model.BlinkConfig {
	return model.BlinkConfig{
		OpenDelay:        model.Range{Min: 3 * time.Second, Max: 10 * time.Second},
		ClosedDuration:   130 * time.Millisecond,
		EnlargedDuration: 160 * time.Millisecond,
	}
}
