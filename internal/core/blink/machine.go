package blink

import (
	"math/rand"
	"sync"
	"time"

	"github.com/YakiFrog/sirius-face-anim/internal/core/model"
)

const eventBuffer = 8

// Machine runs the blink cycle: a randomized open delay, a short closed
// squeeze, a widened reopening, and back to open. At most one transition is
// pending at any time; pausing cancels it and resuming restores the exact
// remaining delay.
type Machine struct {
	mu          sync.Mutex
	config      model.BlinkConfig
	clock       Clock
	rng         *rand.Rand
	phase       Phase
	timer       Timer
	generation  uint64
	deadline    time.Time
	remaining   time.Duration
	running     bool
	paused      bool
	subscribers []chan Event
}

// New creates a stopped machine in the normal phase. A nil clock uses the
// system clock and a nil rng seeds one from it. Zero config fields fall back
// to DefaultConfig values.
func New(config model.BlinkConfig, clock Clock, rng *rand.Rand) *Machine {
	if clock == nil {
		clock = SystemClock()
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(clock.Now().UnixNano()))
	}
	return &Machine{
		config: normalizeConfig(config),
		clock:  clock,
		rng:    rng,
		phase:  PhaseNormal,
	}
}

// Start begins the cycle by scheduling the first blink. Starting a running
// machine is a no-op.
func (machine *Machine) Start() {
	machine.mu.Lock()
	defer machine.mu.Unlock()
	if machine.running {
		return
	}
	machine.running = true
	machine.paused = false
	machine.phase = PhaseNormal
	machine.notifyLocked(Event{Type: EventPhaseChanged, Phase: PhaseNormal})
	machine.scheduleLocked(machine.phaseDelayLocked())
}

// Stop cancels the pending transition, halts the cycle, and closes subscriber
// channels so ranging listeners unblock. The phase freezes where it is.
func (machine *Machine) Stop() {
	machine.mu.Lock()
	if !machine.running {
		machine.mu.Unlock()
		return
	}
	machine.cancelTimerLocked()
	machine.running = false
	machine.paused = false
	subscribers := machine.subscribers
	machine.subscribers = nil
	machine.mu.Unlock()

	for _, subscriber := range subscribers {
		close(subscriber)
	}
}

// Pause cancels the pending transition and remembers how much of its delay
// was left.
func (machine *Machine) Pause() {
	machine.mu.Lock()
	defer machine.mu.Unlock()
	if !machine.running || machine.paused {
		return
	}
	machine.remaining = machine.deadline.Sub(machine.clock.Now())
	if machine.remaining < 0 {
		machine.remaining = 0
	}
	machine.cancelTimerLocked()
	machine.paused = true
	machine.notifyLocked(Event{Type: EventPaused, Phase: machine.phase})
}

// Resume reschedules the interrupted transition with the remaining delay.
func (machine *Machine) Resume() {
	machine.mu.Lock()
	defer machine.mu.Unlock()
	if !machine.running || !machine.paused {
		return
	}
	machine.paused = false
	machine.notifyLocked(Event{Type: EventResumed, Phase: machine.phase})
	machine.scheduleLocked(machine.remaining)
}

// ForceBlink starts a blink immediately instead of waiting out the open
// delay. It does nothing while paused or mid-blink.
func (machine *Machine) ForceBlink() {
	machine.mu.Lock()
	defer machine.mu.Unlock()
	if !machine.running || machine.paused || machine.phase != PhaseNormal {
		return
	}
	machine.transitionLocked(PhaseBlinking)
}

// UpdateConfig swaps in new timing. A pending open delay is rescheduled so
// the new range takes effect without waiting out the old one.
func (machine *Machine) UpdateConfig(config model.BlinkConfig) {
	machine.mu.Lock()
	defer machine.mu.Unlock()
	machine.config = normalizeConfig(config)
	if machine.running && !machine.paused && machine.phase == PhaseNormal {
		machine.cancelTimerLocked()
		machine.scheduleLocked(machine.phaseDelayLocked())
	}
}

// Phase returns the current cycle phase.
func (machine *Machine) Phase() Phase {
	machine.mu.Lock()
	defer machine.mu.Unlock()
	return machine.phase
}

// Targets returns the animation targets for the current phase.
func (machine *Machine) Targets() (openness, verticalStretch float64) {
	machine.mu.Lock()
	defer machine.mu.Unlock()
	return machine.phase.Targets()
}

// Paused reports whether the cycle is frozen.
func (machine *Machine) Paused() bool {
	machine.mu.Lock()
	defer machine.mu.Unlock()
	return machine.paused
}

// Subscribe registers a listener for machine events. Slow listeners drop
// events rather than block the machine.
func (machine *Machine) Subscribe() <-chan Event {
	machine.mu.Lock()
	defer machine.mu.Unlock()
	ch := make(chan Event, eventBuffer)
	machine.subscribers = append(machine.subscribers, ch)
	return ch
}

func (machine *Machine) transitionLocked(next Phase) {
	machine.cancelTimerLocked()
	machine.phase = next
	machine.notifyLocked(Event{Type: EventPhaseChanged, Phase: next})
	machine.scheduleLocked(machine.phaseDelayLocked())
}

func (machine *Machine) phaseDelayLocked() time.Duration {
	switch machine.phase {
	case PhaseBlinking:
		return machine.config.ClosedDuration
	case PhaseEnlarged:
		return machine.config.EnlargedDuration
	default:
		return machine.config.OpenDelay.Random(machine.rng)
	}
}

func (machine *Machine) scheduleLocked(delay time.Duration) {
	machine.generation++
	generation := machine.generation
	machine.deadline = machine.clock.Now().Add(delay)
	machine.timer = machine.clock.AfterFunc(delay, func() {
		machine.fire(generation)
	})
}

// fire runs in the timer goroutine. The generation check drops callbacks
// whose timer was superseded after it already fired.
func (machine *Machine) fire(generation uint64) {
	machine.mu.Lock()
	defer machine.mu.Unlock()
	if !machine.running || machine.paused || generation != machine.generation {
		return
	}
	machine.transitionLocked(nextPhase(machine.phase))
}

func (machine *Machine) cancelTimerLocked() {
	if machine.timer != nil {
		machine.timer.Stop()
		machine.timer = nil
	}
}

func (machine *Machine) notifyLocked(event Event) {
	for _, ch := range machine.subscribers {
		select {
		case ch <- event:
		default:
		}
	}
}

func normalizeConfig(config model.BlinkConfig) model.BlinkConfig {
	stock := DefaultConfig()
	if config.OpenDelay.Min <= 0 || config.OpenDelay.Max < config.OpenDelay.Min {
		config.OpenDelay = stock.OpenDelay
	}
	if config.ClosedDuration <= 0 {
		config.ClosedDuration = stock.ClosedDuration
	}
	if config.EnlargedDuration <= 0 {
		config.EnlargedDuration = stock.EnlargedDuration
	}
	return config
}
