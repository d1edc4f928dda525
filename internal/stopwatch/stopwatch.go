// Package stopwatch is the state of a single stopwatch session.
//
// A Stopwatch is constructed once at startup and handed to the UI driver,
// which calls the commands below in response to input and re-reads the
// queries to render. Commands that are invalid in the current status are
// no-ops rather than errors.
package stopwatch

import (
	"iter"
	"time"

	"github.com/wandb/wandb/stopwatch/internal/clock"
	"github.com/wandb/wandb/stopwatch/internal/laplog"
	"github.com/wandb/wandb/stopwatch/internal/timer"
)

// Stopwatch combines a timer with its lap log.
//
// Not safe for concurrent use.
type Stopwatch struct {
	timer *timer.Timer
	laps  *laplog.Log
}

func New(clk clock.Clock) *Stopwatch {
	return &Stopwatch{
		timer: timer.New(clk),
		laps:  laplog.New(),
	}
}

// Start starts or resumes timing. No-op while running.
func (s *Stopwatch) Start() {
	s.timer.Start()
}

// Stop pauses timing. No-op while stopped.
func (s *Stopwatch) Stop() {
	s.timer.Stop()
}

// Toggle starts the stopwatch if it is stopped and stops it if it is running.
func (s *Stopwatch) Toggle() {
	if s.timer.IsRunning() {
		s.timer.Stop()
	} else {
		s.timer.Start()
	}
}

// Reset stops the stopwatch, zeroes it and forgets all laps.
func (s *Stopwatch) Reset() {
	s.timer.Reset()
	s.laps.Clear()
}

// RecordLap snapshots the current elapsed time into the lap log.
//
// Laps only exist during a run: while stopped this does nothing and
// returns false.
func (s *Stopwatch) RecordLap() bool {
	if !s.timer.IsRunning() {
		return false
	}
	return s.laps.Record(s.timer.Elapsed())
}

// Elapsed returns the current elapsed time.
func (s *Stopwatch) Elapsed() time.Duration {
	return s.timer.Elapsed()
}

// LapEntries returns the cumulative time of every lap, oldest first.
func (s *Stopwatch) LapEntries() []time.Duration {
	return s.laps.Entries()
}

// LapDurations yields the duration of every lap, oldest first.
func (s *Stopwatch) LapDurations() iter.Seq[time.Duration] {
	return s.laps.Durations()
}

// Laps yields every lap with its ordinal, split and cumulative time.
func (s *Stopwatch) Laps() iter.Seq[laplog.Lap] {
	return s.laps.Laps()
}

// LapCount returns the number of recorded laps.
func (s *Stopwatch) LapCount() int {
	return s.laps.Len()
}

func (s *Stopwatch) Status() timer.Status {
	return s.timer.Status()
}

func (s *Stopwatch) IsRunning() bool {
	return s.timer.IsRunning()
}

// CanReset reports whether the reset action is offered to the user.
//
// Reset itself works in any status; the driver only offers it while
// stopped.
func (s *Stopwatch) CanReset() bool {
	return !s.timer.IsRunning()
}

// CanRecordLap reports whether the record-lap action is offered to the user.
func (s *Stopwatch) CanRecordLap() bool {
	return s.timer.IsRunning()
}
