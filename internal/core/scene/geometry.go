// Package scene derives face geometry from canvas dimensions and composes
// the ordered draw list for each rendered frame. It knows nothing about the
// rendering surface, so frames can be built and inspected headlessly.
package scene

// Vec is a 2D point or offset in canvas coordinates.
type Vec struct {
	X float64
	Y float64
}

// Add returns the component-wise sum of two vectors.
func (value Vec) Add(other Vec) Vec {
	return Vec{X: value.X + other.X, Y: value.Y + other.Y}
}

// Dimensions describes the drawable canvas size.
type Dimensions struct {
	Width  float64
	Height float64
}

// Geometry holds the derived face measurements for one canvas size.
// Every value is proportional to the dimensions so the face scales on resize.
type Geometry struct {
	EyeSize      float64 // eye ellipse width
	EyeSpacing   float64 // horizontal distance from the canvas center to each eye center
	PupilSize    float64 // base pupil measurement before the 1.5 draw scale
	EyeYOffset   float64 // upward shift of the eye row from the vertical center
	LeftCenter   Vec
	RightCenter  Vec
	WanderRadius float64 // per-axis bound for pupil wander targets
}

// Derive computes the face geometry for the given canvas dimensions.
// Derivation is pure: equal dimensions always yield identical geometry.
func Derive(dims Dimensions) Geometry {
	eyeSize := dims.Width / 4.5
	eyeSpacing := eyeSize * 0.95
	eyeYOffset := dims.Height/2 - dims.Height/2.3
	centerY := dims.Height/2 - eyeYOffset

	return Geometry{
		EyeSize:      eyeSize,
		EyeSpacing:   eyeSpacing,
		PupilSize:    eyeSize / 2.3,
		EyeYOffset:   eyeYOffset,
		LeftCenter:   Vec{X: dims.Width/2 - eyeSpacing, Y: centerY},
		RightCenter:  Vec{X: dims.Width/2 + eyeSpacing, Y: centerY},
		WanderRadius: eyeSize / 10,
	}
}
