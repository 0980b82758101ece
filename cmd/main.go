package main

import (
	"context"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"

	"github.com/YakiFrog/sirius-face-anim/internal/core/anim"
	"github.com/YakiFrog/sirius-face-anim/internal/core/blink"
	"github.com/YakiFrog/sirius-face-anim/internal/core/scene"
	"github.com/YakiFrog/sirius-face-anim/internal/platform"
	"github.com/YakiFrog/sirius-face-anim/internal/storage"
	"github.com/YakiFrog/sirius-face-anim/internal/ui/face"
	"github.com/YakiFrog/sirius-face-anim/internal/ui/preferences"
	"github.com/YakiFrog/sirius-face-anim/internal/ui/tray"
	"github.com/YakiFrog/sirius-face-anim/resources"
)

const appName = "SiriusFace"

func main() {
	lock, err := platform.AcquireInstanceLock(appName)
	if err != nil {
		log.Printf("single instance: %v", err)
		return
	}
	defer func() {
		_ = lock.Release()
	}()

	settings, err := storage.LoadSettings(appName)
	if err != nil {
		log.Printf("load settings: %v (using defaults)", err)
	}

	fyneApp := app.NewWithID("com.siriusface.app")
	fyneApp.SetIcon(resources.MustIcon())

	machine := blink.New(settings.BlinkConfig(), nil, nil)

	faceWindow := face.New(fyneApp, settings)
	engine := anim.New(anim.DefaultConfig(), anim.Config{}, machine, faceWindow.Sink())
	faceWindow.SetResizer(engine)

	prefsWindow := preferences.New(fyneApp, settings, func(updated preferences.Settings) {
		settings = updated
		if err := storage.SaveSettings(appName, settings); err != nil {
			log.Printf("save settings: %v", err)
		}
		machine.UpdateConfig(settings.BlinkConfig())
		faceWindow.ApplySettings(settings)
	})

	quit := func() {
		engine.Stop()
		machine.Stop()
		fyneApp.Quit()
	}

	if desktopApp, ok := fyneApp.(desktop.App); ok {
		runWithTray(desktopApp, machine, engine, faceWindow, prefsWindow, quit)
	} else {
		log.Printf("system tray unsupported on this platform; running window only")
	}

	machine.Start()
	engine.Start(context.Background(), scene.Dimensions{
		Width:  float64(settings.Width),
		Height: float64(settings.Height),
	})

	faceWindow.Show()
	fyneApp.Run()
}

// faceSession reconciles the user's pause toggle with face window visibility.
// The frame integrator runs only while the face is visible and not paused;
// the blink machine keeps running while the face is merely hidden so the tray
// status stays live. Methods run on the fyne event loop, so the flags need no
// lock.
type faceSession struct {
	machine *blink.Machine
	engine  *anim.Engine
	face    *face.Window

	paused bool
	hidden bool

	onPauseChanged func(paused bool)
}

func (session *faceSession) hideFace() {
	session.hidden = true
	session.face.Hide()
	session.syncEngine()
}

func (session *faceSession) showFace() {
	session.hidden = false
	session.face.Show()
	session.syncEngine()
}

func (session *faceSession) togglePause() {
	session.paused = !session.paused
	if session.paused {
		session.machine.Pause()
	} else {
		session.machine.Resume()
	}
	session.syncEngine()
	if session.onPauseChanged != nil {
		session.onPauseChanged(session.paused)
	}
}

func (session *faceSession) syncEngine() {
	if session.paused || session.hidden {
		session.engine.Pause()
	} else {
		session.engine.Resume()
	}
}

func runWithTray(desktopApp desktop.App, machine *blink.Machine, engine *anim.Engine, faceWindow *face.Window, prefsWindow *preferences.Window, quit func()) {
	activeIcon := resources.MustIcon()
	pausedIcon := resources.MustPausedIcon()

	session := &faceSession{machine: machine, engine: engine, face: faceWindow}

	var trayManager *tray.Manager
	session.onPauseChanged = func(paused bool) {
		if paused {
			desktopApp.SetSystemTrayIcon(pausedIcon)
		} else {
			desktopApp.SetSystemTrayIcon(activeIcon)
		}
		trayManager.SetPaused(paused)
	}
	trayManager = tray.New(desktopApp, tray.Callbacks{
		OnShowFace:    session.showFace,
		OnTogglePause: session.togglePause,
		OnBlinkNow:    machine.ForceBlink,
		OnPreferences: prefsWindow.Show,
		OnQuit:        quit,
	})

	desktopApp.SetSystemTrayIcon(activeIcon)

	// Closing the face window parks the app in the tray; the integrator
	// stays paused until the face is shown again.
	faceWindow.SetCloseIntercept(session.hideFace)

	events := machine.Subscribe()
	go func() {
		for event := range events {
			if event.Type != blink.EventPhaseChanged {
				continue
			}
			status := statusForPhase(event.Phase)
			fyne.Do(func() {
				trayManager.SetStatus(status)
			})
		}
	}()
}

func statusForPhase(phase blink.Phase) string {
	switch phase {
	case blink.PhaseBlinking:
		return "blinking"
	case blink.PhaseEnlarged:
		return "eyes wide"
	default:
		return "eyes open"
	}
}
