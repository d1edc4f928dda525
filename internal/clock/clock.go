// Package clock is the timestamp source for timing code.
package clock

import "time"

//go:generate go run go.uber.org/mock/mockgen -destination=../clocktest/clock_mock.go -package=clocktest -mock_names=Clock=MockClock . Clock

// Clock provides the current instant.
//
// Elapsed-time math assumes the clock is monotonic. The real clock satisfies
// this because time.Now carries a monotonic reading that Sub and Since use.
type Clock interface {
	Now() time.Time
}

// New returns the wall clock.
func New() Clock {
	return realClock{}
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }
