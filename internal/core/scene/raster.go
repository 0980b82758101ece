package scene

import (
	"image"
	"image/draw"
	"math"
)

// Rasterize renders a frame into an RGBA image of the given pixel size.
// Containment uses the normalized squared distance (dx/rx)^2 + (dy/ry)^2
// evaluated at pixel centers; a pixel is filled when the value is <= 1.
func Rasterize(frame Frame, width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(frame.Background), image.Point{}, draw.Src)

	for _, ellipse := range frame.Ellipses {
		fillEllipse(img, ellipse)
	}
	return img
}

func fillEllipse(img *image.RGBA, ellipse Ellipse) {
	radiusX := ellipse.Width / 2
	radiusY := ellipse.Height / 2
	if radiusX <= 0 || radiusY <= 0 {
		return
	}

	bounds := img.Bounds()
	minX := int(math.Floor(ellipse.Center.X - radiusX))
	maxX := int(math.Ceil(ellipse.Center.X + radiusX))
	minY := int(math.Floor(ellipse.Center.Y - radiusY))
	maxY := int(math.Ceil(ellipse.Center.Y + radiusY))
	if minX < bounds.Min.X {
		minX = bounds.Min.X
	}
	if maxX > bounds.Max.X {
		maxX = bounds.Max.X
	}
	if minY < bounds.Min.Y {
		minY = bounds.Min.Y
	}
	if maxY > bounds.Max.Y {
		maxY = bounds.Max.Y
	}

	for y := minY; y < maxY; y++ {
		for x := minX; x < maxX; x++ {
			dx := (float64(x) + 0.5 - ellipse.Center.X) / radiusX
			dy := (float64(y) + 0.5 - ellipse.Center.Y) / radiusY
			if dx*dx+dy*dy <= 1 {
				img.Set(x, y, ellipse.Fill)
			}
		}
	}
}
