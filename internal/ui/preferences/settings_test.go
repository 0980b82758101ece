package preferences

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/YakiFrog/sirius-face-anim/internal/core/model"
)

func TestDefaultSettings(t *testing.T) {
	settings := DefaultSettings()

	assert.False(t, settings.Fullscreen)
	assert.Equal(t, 400, settings.Width)
	assert.Equal(t, 400, settings.Height)
	assert.Equal(t, 3*time.Second, settings.BlinkDelayMin)
	assert.Equal(t, 10*time.Second, settings.BlinkDelayMax)
}

func TestSettingsBlinkConfig(t *testing.T) {
	settings := DefaultSettings()
	settings.BlinkDelayMin = 2 * time.Second
	settings.BlinkDelayMax = 5 * time.Second

	config := settings.BlinkConfig()

	assert.Equal(t, model.Range{Min: 2 * time.Second, Max: 5 * time.Second}, config.OpenDelay)
	assert.Equal(t, 130*time.Millisecond, config.ClosedDuration)
	assert.Equal(t, 160*time.Millisecond, config.EnlargedDuration)
}
