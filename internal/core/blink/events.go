package blink

// Phase identifies a stage of the blink cycle.
type Phase string

const (
	// PhaseNormal is the open-eyed rest between blinks.
	PhaseNormal Phase = "normal"
	// PhaseBlinking is the brief squeeze with the lids nearly shut.
	PhaseBlinking Phase = "blinking"
	// PhaseEnlarged is the widened pop right after the lids reopen.
	PhaseEnlarged Phase = "enlarged"
)

// Targets returns the openness and vertical stretch the animation eases
// toward while the machine sits in this phase.
func (phase Phase) Targets() (openness, verticalStretch float64) {
	switch phase {
	case PhaseBlinking:
		return 0.15, 1.1
	case PhaseEnlarged:
		return 1, 1.05
	default:
		return 1, 1
	}
}

func nextPhase(phase Phase) Phase {
	switch phase {
	case PhaseNormal:
		return PhaseBlinking
	case PhaseBlinking:
		return PhaseEnlarged
	default:
		return PhaseNormal
	}
}

// EventType classifies machine notifications.
type EventType string

const (
	// EventPhaseChanged fires on every phase transition.
	EventPhaseChanged EventType = "phase_changed"
	// EventPaused fires when the cycle is frozen.
	EventPaused EventType = "paused"
	// EventResumed fires when the cycle continues.
	EventResumed EventType = "resumed"
)

// Event is a notification delivered to subscribers.
type Event struct {
	Type  EventType
	Phase Phase
}
