package face

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"

	"github.com/YakiFrog/sirius-face-anim/internal/core/scene"
	"github.com/YakiFrog/sirius-face-anim/internal/ui/preferences"
)

// Resizer is told about canvas dimension changes and reports the frame to
// repaint afterwards. *anim.Engine satisfies it.
type Resizer interface {
	Resize(dims scene.Dimensions) scene.Geometry
	CurrentFrame() scene.Frame
}

// Window renders the composed eye frames on a borderless black canvas.
type Window struct {
	window     fyne.Window
	background *canvas.Rectangle
	shapes     [scene.EllipseCount]*canvas.Circle
	resizer    Resizer
}

// New creates the face window. Attach the animation with SetResizer once the
// engine exists; until then resizes only stretch the background.
func New(app fyne.App, settings preferences.Settings) *Window {
	window := app.NewWindow("Sirius Face")
	if app.Icon() != nil {
		window.SetIcon(app.Icon())
	}
	window.SetPadded(false)

	face := &Window{
		window:     window,
		background: canvas.NewRectangle(scene.BackgroundFill),
	}

	objects := make([]fyne.CanvasObject, 0, scene.EllipseCount+1)
	objects = append(objects, face.background)
	for i := range face.shapes {
		face.shapes[i] = canvas.NewCircle(initialFill(i))
		objects = append(objects, face.shapes[i])
	}

	window.SetContent(container.New(&faceLayout{face: face}, objects...))
	face.applyWindowMode(settings)

	return face
}

// SetResizer attaches the animation engine driving the shapes.
func (face *Window) SetResizer(resizer Resizer) {
	face.resizer = resizer
}

// Show displays the face window.
func (face *Window) Show() {
	face.window.Show()
	face.window.RequestFocus()
}

// Hide conceals the face window.
func (face *Window) Hide() {
	face.window.Hide()
}

// SetCloseIntercept overrides the window close action.
func (face *Window) SetCloseIntercept(fn func()) {
	face.window.SetCloseIntercept(fn)
}

// ApplySettings switches between fullscreen and fixed-size modes.
func (face *Window) ApplySettings(settings preferences.Settings) {
	face.applyWindowMode(settings)
}

// ApplyFrame positions and recolors the shapes for one composed frame. It
// must run on the UI thread; Sink wraps it with fyne.Do for the engine.
func (face *Window) ApplyFrame(frame scene.Frame) {
	if len(frame.Ellipses) < len(face.shapes) {
		return
	}

	face.background.FillColor = frame.Background
	face.background.Refresh()

	for i, shape := range face.shapes {
		ellipse := frame.Ellipses[i]
		shape.FillColor = ellipse.Fill
		shape.Move(fyne.NewPos(
			float32(ellipse.Center.X-ellipse.Width/2),
			float32(ellipse.Center.Y-ellipse.Height/2),
		))
		shape.Resize(fyne.NewSize(float32(ellipse.Width), float32(ellipse.Height)))
		shape.Refresh()
	}
}

// Sink returns a frame consumer that marshals repaints onto the UI thread.
func (face *Window) Sink() func(scene.Frame) {
	return func(frame scene.Frame) {
		fyne.Do(func() {
			face.ApplyFrame(frame)
		})
	}
}

func (face *Window) applyWindowMode(settings preferences.Settings) {
	if settings.Fullscreen {
		face.window.SetFixedSize(false)
		face.window.SetFullScreen(true)
		return
	}
	face.window.SetFullScreen(false)
	face.window.SetFixedSize(true)
	face.window.Resize(fyne.NewSize(float32(settings.Width), float32(settings.Height)))
	face.window.CenterOnScreen()
}

func initialFill(index int) color.Color {
	if index == scene.IndexLeftPupil || index == scene.IndexRightPupil {
		return scene.PupilFill
	}
	return scene.EyeFill
}

// faceLayout forwards canvas size changes to the animation so the geometry
// rescales, then repaints from the freshly derived frame.
type faceLayout struct {
	face *Window
}

func (layout *faceLayout) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	if len(objects) == 0 {
		return
	}
	objects[0].Move(fyne.NewPos(0, 0))
	objects[0].Resize(size)

	if layout.face.resizer == nil {
		return
	}
	layout.face.resizer.Resize(scene.Dimensions{
		Width:  float64(size.Width),
		Height: float64(size.Height),
	})
	layout.face.ApplyFrame(layout.face.resizer.CurrentFrame())
}

func (layout *faceLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	return fyne.NewSize(50, 50)
}
