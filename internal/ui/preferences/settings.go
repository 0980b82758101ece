package preferences

import (
	"time"

	"github.com/YakiFrog/sirius-face-anim/internal/core/model"
)

// Settings defines editable user preferences.
type Settings struct {
	Fullscreen bool
	Width      int
	Height     int

	BlinkDelayMin time.Duration
	BlinkDelayMax time.Duration
}

// DefaultSettings returns the stock face configuration.
func DefaultSettings() Settings {
	return Settings{
		Fullscreen:    false,
		Width:         400,
		Height:        400,
		BlinkDelayMin: 3 * time.Second,
		BlinkDelayMax: 10 * time.Second,
	}
}

// BlinkConfig converts settings to the blink cycle timing.
func (settings Settings) BlinkConfig() model.BlinkConfig {
	return model.BlinkConfig{
		OpenDelay: model.Range{
			Min: settings.BlinkDelayMin,
			Max: settings.BlinkDelayMax,
		},
		ClosedDuration:   130 * time.Millisecond,
		EnlargedDuration: 160 * time.Millisecond,
	}
}
