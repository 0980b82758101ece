package scene

import "image/color"

// Face palette. The canvas clears to black; eyes are white with black pupils.
var (
	BackgroundFill = color.NRGBA{R: 0, G: 0, B: 0, A: 255}
	EyeFill        = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	PupilFill      = color.NRGBA{R: 0, G: 0, B: 0, A: 255}
)

// Ellipse is a single filled ellipse draw call, centered at Center.
type Ellipse struct {
	Center Vec
	Width  float64
	Height float64
	Fill   color.Color
}

// Draw-list positions, fixed so a surface can bind canvas objects by index.
const (
	IndexLeftEye = iota
	IndexLeftPupil
	IndexRightEye
	IndexRightPupil
	EllipseCount
)

// Frame is the ordered draw list for one rendered frame: clear to Background,
// then fill each ellipse in slice order (left eye, left pupil, right eye,
// right pupil) so pupils land on top of their eyes.
type Frame struct {
	Background color.Color
	Ellipses   []Ellipse
}

// Compose builds the draw list for the current animation values.
// Eye height shrinks with openness and grows with the vertical stretch;
// pupils shrink vertically with openness and follow their wander offsets.
func Compose(geom Geometry, openness, verticalStretch float64, leftOffset, rightOffset Vec) Frame {
	eyeHeight := geom.EyeSize * verticalStretch * openness
	pupilWidth := geom.PupilSize * 1.5
	pupilHeight := pupilWidth * openness

	ellipses := make([]Ellipse, EllipseCount)
	ellipses[IndexLeftEye] = Ellipse{
		Center: geom.LeftCenter,
		Width:  geom.EyeSize,
		Height: eyeHeight,
		Fill:   EyeFill,
	}
	ellipses[IndexLeftPupil] = Ellipse{
		Center: geom.LeftCenter.Add(leftOffset),
		Width:  pupilWidth,
		Height: pupilHeight,
		Fill:   PupilFill,
	}
	ellipses[IndexRightEye] = Ellipse{
		Center: geom.RightCenter,
		Width:  geom.EyeSize,
		Height: eyeHeight,
		Fill:   EyeFill,
	}
	ellipses[IndexRightPupil] = Ellipse{
		Center: geom.RightCenter.Add(rightOffset),
		Width:  pupilWidth,
		Height: pupilHeight,
		Fill:   PupilFill,
	}

	return Frame{Background: BackgroundFill, Ellipses: ellipses}
}
