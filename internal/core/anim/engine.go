package anim

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/YakiFrog/sirius-face-anim/internal/core/model"
	"github.com/YakiFrog/sirius-face-anim/internal/core/scene"
)

// State holds the smoothed animation channels the composer reads each frame.
type State struct {
	Openness        float64
	VerticalStretch float64
}

// TargetSource reports the current blink targets. *blink.Machine satisfies it.
type TargetSource interface {
	Targets() (openness, verticalStretch float64)
}

// Config contains runtime options for the Engine.
type Config struct {
	// TickInterval is the frame period. Defaults to one sixtieth of a second.
	TickInterval time.Duration
	// Seed feeds the wander RNG. Zero draws a seed from the clock.
	Seed int64
}

// Engine integrates the animation state once per tick and hands each composed
// frame to the sink. The sink runs outside the engine lock, so it may call
// back into the engine or marshal onto a UI thread.
type Engine struct {
	mu      sync.Mutex
	config  model.AnimationConfig
	options Config
	source  TargetSource
	sink    func(scene.Frame)
	wander  *Wander
	state   State
	frame   int
	geom    scene.Geometry
	paused  bool
	cancel  context.CancelFunc
}

// New creates an engine that pulls targets from source and pushes composed
// frames into sink. Zero config fields fall back to DefaultConfig values.
func New(config model.AnimationConfig, options Config, source TargetSource, sink func(scene.Frame)) *Engine {
	stock := DefaultConfig()
	if config.OpennessFactor <= 0 {
		config.OpennessFactor = stock.OpennessFactor
	}
	if config.StretchFactor <= 0 {
		config.StretchFactor = stock.StretchFactor
	}
	if options.TickInterval <= 0 {
		options.TickInterval = time.Second / 60
	}
	if options.Seed == 0 {
		options.Seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(options.Seed))
	return &Engine{
		config:  config,
		options: options,
		source:  source,
		sink:    sink,
		wander:  NewWander(config.Wander, 0, rng),
		state:   State{Openness: 1, VerticalStretch: 1},
	}
}

// Start resets the animation for the given canvas size, pushes the fully open
// resting frame, and launches the frame loop. Starting again replaces the
// previous loop.
func (engine *Engine) Start(ctx context.Context, dims scene.Dimensions) {
	engine.mu.Lock()
	if engine.cancel != nil {
		engine.cancel()
	}
	runCtx, cancel := context.WithCancel(ctx)
	engine.cancel = cancel
	engine.paused = false
	engine.frame = 0
	engine.state = State{Openness: 1, VerticalStretch: 1}
	engine.wander.reset()
	engine.resizeLocked(dims)
	frame := engine.composeLocked()
	sink := engine.sink
	engine.mu.Unlock()

	sink(frame)
	go engine.run(runCtx)
}

// Stop halts the frame loop.
func (engine *Engine) Stop() {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	if engine.cancel != nil {
		engine.cancel()
		engine.cancel = nil
	}
}

// Pause freezes the animation in place. Ticks while paused neither integrate
// nor reach the sink.
func (engine *Engine) Pause() {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	engine.paused = true
}

// Resume continues the animation from the frozen state.
func (engine *Engine) Resume() {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	engine.paused = false
}

// Paused reports whether the engine is frozen.
func (engine *Engine) Paused() bool {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	return engine.paused
}

// Resize rederives the proportional geometry for new canvas dimensions and
// returns it. The next frame is composed against the new geometry; wander
// targets are clamped into the rescaled radius.
func (engine *Engine) Resize(dims scene.Dimensions) scene.Geometry {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	engine.resizeLocked(dims)
	return engine.geom
}

// Advance integrates one frame, pushes it to the sink, and returns it. The
// run loop calls this on every tick; tests may call it directly. While paused
// it returns the frozen frame without integrating or pushing.
func (engine *Engine) Advance() scene.Frame {
	engine.mu.Lock()
	if engine.paused {
		frame := engine.composeLocked()
		engine.mu.Unlock()
		return frame
	}
	engine.frame++
	openTarget, stretchTarget := engine.source.Targets()
	engine.state.Openness = Step(engine.state.Openness, openTarget, engine.config.OpennessFactor)
	engine.state.VerticalStretch = Step(engine.state.VerticalStretch, stretchTarget, engine.config.StretchFactor)
	engine.wander.Advance(engine.frame)
	frame := engine.composeLocked()
	sink := engine.sink
	engine.mu.Unlock()

	sink(frame)
	return frame
}

// CurrentFrame composes a frame from the current state without advancing the
// animation. The layout uses it to repaint immediately after a resize.
func (engine *Engine) CurrentFrame() scene.Frame {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	return engine.composeLocked()
}

// Geometry returns the most recently derived canvas geometry.
func (engine *Engine) Geometry() scene.Geometry {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	return engine.geom
}

// State returns the current smoothed animation channels.
func (engine *Engine) State() State {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	return engine.state
}

func (engine *Engine) run(ctx context.Context) {
	ticker := time.NewTicker(engine.options.TickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			engine.Advance()
		}
	}
}

func (engine *Engine) resizeLocked(dims scene.Dimensions) {
	engine.geom = scene.Derive(dims)
	engine.wander.SetRadius(engine.geom.WanderRadius)
}

func (engine *Engine) composeLocked() scene.Frame {
	return scene.Compose(engine.geom, engine.state.Openness, engine.state.VerticalStretch,
		engine.wander.Left().Current, engine.wander.Right().Current)
}
