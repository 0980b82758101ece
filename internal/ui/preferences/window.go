package preferences

import (
	"fmt"
	"strconv"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// Window handles the preferences UI.
type Window struct {
	window      fyne.Window
	settings    Settings
	onSave      func(Settings)
	widthEntry  *widget.Entry
	heightEntry *widget.Entry
	fullscreen  *widget.Check
	blinkMin    *widget.Entry
	blinkMax    *widget.Entry
}

// New creates a preferences window.
func New(app fyne.App, settings Settings, onSave func(Settings)) *Window {
	window := app.NewWindow("Sirius Face Settings")

	widthEntry := widget.NewEntry()
	heightEntry := widget.NewEntry()
	blinkMin := widget.NewEntry()
	blinkMax := widget.NewEntry()

	widthEntry.SetText(fmt.Sprintf("%d", settings.Width))
	heightEntry.SetText(fmt.Sprintf("%d", settings.Height))
	blinkMin.SetText(fmt.Sprintf("%d", int(settings.BlinkDelayMin.Seconds())))
	blinkMax.SetText(fmt.Sprintf("%d", int(settings.BlinkDelayMax.Seconds())))

	fullscreen := widget.NewCheck("Fullscreen face", nil)
	fullscreen.SetChecked(settings.Fullscreen)

	form := container.NewVBox(
		widget.NewLabelWithStyle("Window", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		container.NewHBox(widget.NewLabel("Width"), widthEntry, widget.NewLabel("px")),
		container.NewHBox(widget.NewLabel("Height"), heightEntry, widget.NewLabel("px")),
		fullscreen,
		widget.NewLabelWithStyle("Blinking", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		container.NewHBox(widget.NewLabel("Eyes open at least"), blinkMin, widget.NewLabel("sec")),
		container.NewHBox(widget.NewLabel("Eyes open at most"), blinkMax, widget.NewLabel("sec")),
	)

	saveButton := widget.NewButton("Save", nil)
	cancelButton := widget.NewButton("Cancel", nil)
	buttons := container.NewHBox(saveButton, layout.NewSpacer(), cancelButton)

	content := container.NewBorder(nil, buttons, nil, nil, form)
	window.SetContent(content)
	window.Resize(fyne.NewSize(380, 320))

	prefs := &Window{
		window:      window,
		settings:    settings,
		onSave:      onSave,
		widthEntry:  widthEntry,
		heightEntry: heightEntry,
		fullscreen:  fullscreen,
		blinkMin:    blinkMin,
		blinkMax:    blinkMax,
	}

	saveButton.OnTapped = prefs.handleSave
	cancelButton.OnTapped = func() {
		prefs.UpdateSettings(prefs.settings)
		window.Hide()
	}

	return prefs
}

// Show displays the preferences window.
func (prefs *Window) Show() {
	prefs.window.Show()
	prefs.window.RequestFocus()
}

// UpdateSettings replaces window values.
func (prefs *Window) UpdateSettings(settings Settings) {
	prefs.settings = settings
	prefs.widthEntry.SetText(fmt.Sprintf("%d", settings.Width))
	prefs.heightEntry.SetText(fmt.Sprintf("%d", settings.Height))
	prefs.fullscreen.SetChecked(settings.Fullscreen)
	prefs.blinkMin.SetText(fmt.Sprintf("%d", int(settings.BlinkDelayMin.Seconds())))
	prefs.blinkMax.SetText(fmt.Sprintf("%d", int(settings.BlinkDelayMax.Seconds())))
}

func (prefs *Window) handleSave() {
	settings := prefs.settings

	if pixels, ok := parsePositiveInt(prefs.widthEntry.Text); ok {
		settings.Width = pixels
	}
	if pixels, ok := parsePositiveInt(prefs.heightEntry.Text); ok {
		settings.Height = pixels
	}
	if seconds, ok := parsePositiveInt(prefs.blinkMin.Text); ok {
		settings.BlinkDelayMin = time.Duration(seconds) * time.Second
	}
	if seconds, ok := parsePositiveInt(prefs.blinkMax.Text); ok {
		settings.BlinkDelayMax = time.Duration(seconds) * time.Second
	}
	if settings.BlinkDelayMax < settings.BlinkDelayMin {
		settings.BlinkDelayMax = settings.BlinkDelayMin
	}

	settings.Fullscreen = prefs.fullscreen.Checked

	prefs.settings = settings
	if prefs.onSave != nil {
		prefs.onSave(settings)
	}
	prefs.window.Hide()
}

func parsePositiveInt(value string) (int, bool) {
	parsed, err := strconv.Atoi(value)
	if err != nil || parsed <= 0 {
		return 0, false
	}
	return parsed, true
}
