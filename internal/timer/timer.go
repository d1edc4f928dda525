package timer

import (
	"time"

	"github.com/wandb/wandb/stopwatch/internal/clock"
)

// Status is whether a Timer is accumulating time.
type Status int

const (
	Stopped Status = iota
	Running
)

func (s Status) String() string {
	switch s {
	case Running:
		return "running"
	default:
		return "stopped"
	}
}

// Timer tracks elapsed time across any number of start/stop cycles.
//
// All methods are total: calls that make no sense in the current status,
// like Stop on a stopped timer, do nothing.
//
// A Timer is not safe for concurrent use. It is meant to be owned by a
// single event loop.
type Timer struct {
	clock clock.Clock

	status Status

	// accumulated is the elapsed time as of the last Stop.
	//
	// It is authoritative only while stopped.
	accumulated time.Duration

	// anchor is the instant elapsed time is measured from while running.
	//
	// It is the start instant shifted back by the time accumulated before
	// that start, so that Elapsed is simply now - anchor. Zero while stopped.
	anchor time.Time
}

// New creates a stopped timer with zero elapsed time.
func New(clk clock.Clock) *Timer {
	return &Timer{clock: clk}
}

// Start resumes the timer from its accumulated time.
// If the timer is already running, it does nothing.
func (t *Timer) Start() {
	if t.status == Running {
		return
	}

	t.anchor = t.clock.Now().Add(-t.accumulated)
	t.status = Running
}

// Stop freezes the elapsed time.
// If the timer is not running, it does nothing.
func (t *Timer) Stop() {
	if t.status != Running {
		return
	}

	t.accumulated = t.clock.Now().Sub(t.anchor)
	t.anchor = time.Time{}
	t.status = Stopped
}

// Reset stops the timer and discards all elapsed time.
func (t *Timer) Reset() {
	t.Stop()
	t.accumulated = 0
}

// Elapsed returns the elapsed time.
//
// While running it is measured against the clock on every call; while
// stopped it is the value frozen by the last Stop.
func (t *Timer) Elapsed() time.Duration {
	if t.status == Running {
		return t.clock.Now().Sub(t.anchor)
	}
	return t.accumulated
}

// Status returns whether the timer is running.
func (t *Timer) Status() Status {
	return t.status
}

// IsRunning is shorthand for Status() == Running.
func (t *Timer) IsRunning() bool {
	return t.status == Running
}
