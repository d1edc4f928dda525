// Package laplog records lap snapshots of a running stopwatch.
package laplog

import (
	"iter"
	"slices"
	"time"
)

// Lap is one row of the lap table.
type Lap struct {
	// Number is the 1-based lap ordinal.
	Number int

	// Split is the time since the previous lap, or since zero for the first.
	Split time.Duration

	// Total is the cumulative elapsed time when the lap was recorded.
	Total time.Duration
}

// Log is an ordered list of cumulative elapsed-time snapshots.
//
// Entries never decrease. Per-lap durations are not stored; they are
// derived from consecutive entries whenever they are read.
type Log struct {
	entries []time.Duration
}

func New() *Log {
	return &Log{}
}

// Record appends a cumulative snapshot.
//
// Returns false and leaves the log unchanged if total is less than the last
// entry, which can only happen if the clock went backwards.
func (l *Log) Record(total time.Duration) bool {
	if n := len(l.entries); n > 0 && total < l.entries[n-1] {
		return false
	}

	l.entries = append(l.entries, total)
	return true
}

// Clear removes all entries.
func (l *Log) Clear() {
	l.entries = nil
}

// Len returns the number of recorded laps.
func (l *Log) Len() int {
	return len(l.entries)
}

// Entries returns a copy of the cumulative snapshots, oldest first.
func (l *Log) Entries() []time.Duration {
	return slices.Clone(l.entries)
}

// Durations yields the duration of each lap, oldest first.
//
// The sequence reads the log when iterated, so it can be ranged over any
// number of times and always reflects the current entries.
func (l *Log) Durations() iter.Seq[time.Duration] {
	return func(yield func(time.Duration) bool) {
		for lap := range l.Laps() {
			if !yield(lap.Split) {
				return
			}
		}
	}
}

// Laps yields every lap with its ordinal, split and cumulative time.
func (l *Log) Laps() iter.Seq[Lap] {
	return func(yield func(Lap) bool) {
		var prev time.Duration
		for i, total := range l.entries {
			if !yield(Lap{Number: i + 1, Split: total - prev, Total: total}) {
				return
			}
			prev = total
		}
	}
}
