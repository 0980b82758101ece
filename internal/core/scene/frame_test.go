package scene

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComposeDrawOrder(t *testing.T) {
	geom := Derive(Dimensions{Width: 400, Height: 400})
	frame := Compose(geom, 1, 1, Vec{}, Vec{})

	require.Len(t, frame.Ellipses, EllipseCount)
	assert.Equal(t, color.Color(BackgroundFill), frame.Background)
	assert.Equal(t, color.Color(EyeFill), frame.Ellipses[IndexLeftEye].Fill)
	assert.Equal(t, color.Color(PupilFill), frame.Ellipses[IndexLeftPupil].Fill)
	assert.Equal(t, color.Color(EyeFill), frame.Ellipses[IndexRightEye].Fill)
	assert.Equal(t, color.Color(PupilFill), frame.Ellipses[IndexRightPupil].Fill)
}

func TestComposeFullyOpen(t *testing.T) {
	geom := Derive(Dimensions{Width: 400, Height: 400})
	frame := Compose(geom, 1, 1, Vec{}, Vec{})

	leftEye := frame.Ellipses[IndexLeftEye]
	assert.Equal(t, geom.LeftCenter, leftEye.Center)
	assert.InDelta(t, geom.EyeSize, leftEye.Width, 1e-9)
	assert.InDelta(t, geom.EyeSize, leftEye.Height, 1e-9)

	pupil := frame.Ellipses[IndexLeftPupil]
	assert.Equal(t, geom.LeftCenter, pupil.Center)
	assert.InDelta(t, geom.PupilSize*1.5, pupil.Width, 1e-9)
	assert.InDelta(t, geom.PupilSize*1.5, pupil.Height, 1e-9)

	rightEye := frame.Ellipses[IndexRightEye]
	assert.Equal(t, geom.RightCenter, rightEye.Center)
}

func TestComposeBlinking(t *testing.T) {
	geom := Derive(Dimensions{Width: 400, Height: 400})
	frame := Compose(geom, 0.15, 1.1, Vec{}, Vec{})

	leftEye := frame.Ellipses[IndexLeftEye]
	assert.InDelta(t, geom.EyeSize, leftEye.Width, 1e-9)
	assert.InDelta(t, geom.EyeSize*1.1*0.15, leftEye.Height, 1e-9)

	pupil := frame.Ellipses[IndexLeftPupil]
	assert.InDelta(t, geom.PupilSize*1.5, pupil.Width, 1e-9)
	assert.InDelta(t, geom.PupilSize*1.5*0.15, pupil.Height, 1e-9)
}

func TestComposePupilOffsets(t *testing.T) {
	geom := Derive(Dimensions{Width: 400, Height: 400})
	left := Vec{X: 3, Y: -2}
	right := Vec{X: -1, Y: 4}
	frame := Compose(geom, 1, 1, left, right)

	assert.Equal(t, geom.LeftCenter.Add(left), frame.Ellipses[IndexLeftPupil].Center)
	assert.Equal(t, geom.RightCenter.Add(right), frame.Ellipses[IndexRightPupil].Center)

	// Offsets move pupils only, never the eyes themselves.
	assert.Equal(t, geom.LeftCenter, frame.Ellipses[IndexLeftEye].Center)
	assert.Equal(t, geom.RightCenter, frame.Ellipses[IndexRightEye].Center)
}

func TestRasterizeFirstFrame(t *testing.T) {
	dims := Dimensions{Width: 400, Height: 400}
	geom := Derive(dims)
	frame := Compose(geom, 1, 1, Vec{}, Vec{})
	img := Rasterize(frame, 400, 400)

	white := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	black := color.RGBA{R: 0, G: 0, B: 0, A: 255}

	// Background corners stay black.
	assert.Equal(t, black, img.RGBAAt(0, 0))
	assert.Equal(t, black, img.RGBAAt(399, 0))
	assert.Equal(t, black, img.RGBAAt(0, 399))
	assert.Equal(t, black, img.RGBAAt(399, 399))

	centerY := int(geom.LeftCenter.Y)

	// The pupil sits on top of the eye center.
	assert.Equal(t, black, img.RGBAAt(int(geom.LeftCenter.X), centerY))
	assert.Equal(t, black, img.RGBAAt(int(geom.RightCenter.X), centerY))

	// Between the pupil rim and the eye rim the sclera shows through.
	scleraShift := (geom.PupilSize*1.5/2 + geom.EyeSize/2) / 2
	assert.Equal(t, white, img.RGBAAt(int(geom.LeftCenter.X+scleraShift), centerY))
	assert.Equal(t, white, img.RGBAAt(int(geom.RightCenter.X-scleraShift), centerY))

	// Just past the eye rim the background returns.
	assert.Equal(t, black, img.RGBAAt(int(geom.LeftCenter.X-geom.EyeSize/2-2), centerY))
}

func TestRasterizeBlinkFlattensEyes(t *testing.T) {
	dims := Dimensions{Width: 400, Height: 400}
	geom := Derive(dims)
	frame := Compose(geom, 0.15, 1.1, Vec{}, Vec{})
	img := Rasterize(frame, 400, 400)

	black := color.RGBA{R: 0, G: 0, B: 0, A: 255}

	// Rows that are sclera when open fall outside the nearly shut lids.
	aboveLid := int(geom.LeftCenter.Y - geom.EyeSize*0.25)
	assert.Equal(t, black, img.RGBAAt(int(geom.LeftCenter.X), aboveLid))

	// The lid line itself still shows the eye.
	white := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	scleraShift := (geom.PupilSize*1.5/2 + geom.EyeSize/2) / 2
	assert.Equal(t, white, img.RGBAAt(int(geom.LeftCenter.X+scleraShift), int(geom.LeftCenter.Y)))
}
