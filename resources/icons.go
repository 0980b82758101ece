package resources

import (
	"bytes"
	"fmt"
	"image/png"
	"sync"

	"fyne.io/fyne/v2"

	"github.com/YakiFrog/sirius-face-anim/internal/core/scene"
)

const iconSize = 64

var (
	iconOnce   sync.Once
	openIcon   fyne.Resource
	closedIcon fyne.Resource
	iconErr    error
)

// Icon returns the app icon: the face with open eyes.
func Icon() (fyne.Resource, error) {
	renderIcons()
	return openIcon, iconErr
}

// MustIcon returns the app icon or panics on error.
func MustIcon() fyne.Resource {
	resource, err := Icon()
	if err != nil {
		panic(err)
	}
	return resource
}

// PausedIcon returns the closed-eyes icon shown while the face is paused.
func PausedIcon() (fyne.Resource, error) {
	renderIcons()
	return closedIcon, iconErr
}

// MustPausedIcon returns the closed-eyes icon or panics on error.
func MustPausedIcon() fyne.Resource {
	resource, err := PausedIcon()
	if err != nil {
		panic(err)
	}
	return resource
}

// renderIcons rasterizes both icons from the face geometry itself, so the
// tray matches what the window draws without shipping image assets.
func renderIcons() {
	iconOnce.Do(func() {
		openIcon, iconErr = renderIcon("sirius-face-open.png", 1)
		if iconErr != nil {
			return
		}
		closedIcon, iconErr = renderIcon("sirius-face-closed.png", 0.15)
	})
}

func renderIcon(name string, openness float64) (fyne.Resource, error) {
	dims := scene.Dimensions{Width: iconSize, Height: iconSize}
	frame := scene.Compose(scene.Derive(dims), openness, 1, scene.Vec{}, scene.Vec{})

	var buffer bytes.Buffer
	if err := png.Encode(&buffer, scene.Rasterize(frame, iconSize, iconSize)); err != nil {
		return nil, fmt.Errorf("encode icon %s: %w", name, err)
	}
	return fyne.NewStaticResource(name, buffer.Bytes()), nil
}
