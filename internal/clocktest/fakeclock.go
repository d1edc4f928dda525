// Package clocktest defines fakes for package `clock`.
package clocktest

import (
	"sync"
	"time"

	"github.com/wandb/wandb/stopwatch/internal/clock"
)

// FakeClock is a Clock that only moves when a test moves it.
//
// This allows controlling time in a test without resorting to `time.Sleep()`
// and hope.
type FakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func NewFakeClock() *FakeClock {
	return &FakeClock{
		now: time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
	}
}

// Prove we implement the interface.
var _ clock.Clock = &FakeClock{}

func (c *FakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Advance moves the clock forward by d.
//
// A negative d moves it backwards, which is how tests simulate a host clock
// that is not monotonic.
func (c *FakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}
