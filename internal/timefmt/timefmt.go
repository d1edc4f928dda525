// Package timefmt renders stopwatch durations.
package timefmt

import (
	"fmt"
	"time"
)

// Format renders d as HH:MM:SS.CC.
//
// The duration is truncated to whole milliseconds and then to centiseconds.
// Hours are not wrapped, so very long runs print more than two hour digits.
// Negative durations render as zero.
func Format(d time.Duration) string {
	ms := max(d.Milliseconds(), 0)

	centis := (ms % 1000) / 10
	seconds := (ms / 1000) % 60
	minutes := (ms / 60_000) % 60
	hours := ms / 3_600_000

	return fmt.Sprintf("%02d:%02d:%02d.%02d", hours, minutes, seconds, centis)
}
