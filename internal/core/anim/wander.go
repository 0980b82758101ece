package anim

import (
	"math/rand"

	"github.com/YakiFrog/sirius-face-anim/internal/core/model"
	"github.com/YakiFrog/sirius-face-anim/internal/core/scene"
)

// Pupil holds one eye's wander offsets relative to the eye center.
type Pupil struct {
	Target  scene.Vec
	Current scene.Vec
}

// Wander drives the slow random drift of both pupils. The two pupils share a
// retarget schedule but each eases toward its own random target, so their
// glances land in different spots at the same moment.
type Wander struct {
	config model.WanderConfig
	rng    *rand.Rand
	radius float64
	left   Pupil
	right  Pupil

	nextRetarget int
	primed       bool
}

// NewWander creates a controller whose targets stay within radius on each
// axis. Zero config fields fall back to DefaultConfig values.
func NewWander(config model.WanderConfig, radius float64, rng *rand.Rand) *Wander {
	stock := DefaultConfig().Wander
	if config.EaseFactor <= 0 {
		config.EaseFactor = stock.EaseFactor
	}
	if config.Retarget.Min <= 0 || config.Retarget.Max < config.Retarget.Min {
		config.Retarget = stock.Retarget
	}
	if radius < 0 {
		radius = 0
	}
	return &Wander{
		config: config,
		rng:    rng,
		radius: radius,
	}
}

// Left returns the left pupil's offsets.
func (wander *Wander) Left() Pupil {
	return wander.left
}

// Right returns the right pupil's offsets.
func (wander *Wander) Right() Pupil {
	return wander.right
}

// Advance runs one frame: it retargets both pupils when the schedule elapses
// (and on the very first call), then eases each pupil toward its target.
func (wander *Wander) Advance(frame int) {
	if !wander.primed || frame >= wander.nextRetarget {
		wander.retarget(frame)
	}
	wander.left.Current = StepVec(wander.left.Current, wander.left.Target, wander.config.EaseFactor)
	wander.right.Current = StepVec(wander.right.Current, wander.right.Target, wander.config.EaseFactor)
}

// SetRadius changes the wander bound and clamps the standing targets into it.
// Current positions are left alone; they ease back inside on their own.
func (wander *Wander) SetRadius(radius float64) {
	if radius < 0 {
		radius = 0
	}
	wander.radius = radius
	wander.left.Target = clampVec(wander.left.Target, radius)
	wander.right.Target = clampVec(wander.right.Target, radius)
}

func (wander *Wander) reset() {
	wander.left = Pupil{}
	wander.right = Pupil{}
	wander.nextRetarget = 0
	wander.primed = false
}

func (wander *Wander) retarget(frame int) {
	wander.left.Target = wander.randomOffset()
	wander.right.Target = wander.randomOffset()
	wander.nextRetarget = frame + wander.config.Retarget.Random(wander.rng)
	wander.primed = true
}

func (wander *Wander) randomOffset() scene.Vec {
	return scene.Vec{
		X: wander.randomAxis(),
		Y: wander.randomAxis(),
	}
}

// randomAxis draws uniformly from [-radius, radius).
func (wander *Wander) randomAxis() float64 {
	return (wander.rng.Float64()*2 - 1) * wander.radius
}

func clampVec(value scene.Vec, bound float64) scene.Vec {
	return scene.Vec{
		X: clampAxis(value.X, bound),
		Y: clampAxis(value.Y, bound),
	}
}

func clampAxis(value, bound float64) float64 {
	if value > bound {
		return bound
	}
	if value < -bound {
		return -bound
	}
	return value
}
