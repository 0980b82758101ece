package blink

import "time"

// Clock abstracts timer scheduling so the machine can run against a fake
// clock in tests.
type Clock interface {
	Now() time.Time
	AfterFunc(delay time.Duration, fn func()) Timer
}

// Timer is a cancelable pending callback.
type Timer interface {
	// Stop cancels the callback and reports whether it was still pending.
	Stop() bool
}

// SystemClock returns a Clock backed by the runtime timers.
func SystemClock() Clock {
	return systemClock{}
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}

func (systemClock) AfterFunc(delay time.Duration, fn func()) Timer {
	return systemTimer{timer: time.AfterFunc(delay, fn)}
}

type systemTimer struct {
	timer *time.Timer
}

func (value systemTimer) Stop() bool {
	return value.timer.Stop()
}
