package timefmt_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/wandb/wandb/stopwatch/internal/timefmt"
)

func TestFormat(t *testing.T) {
	testCases := []struct {
		name string
		in   time.Duration
		want string
	}{
		{"zero", 0, "00:00:00.00"},
		{"minute second centis", 61050 * time.Millisecond, "00:01:01.05"},
		{"hour minute second", 3661000 * time.Millisecond, "01:01:01.00"},
		{"truncates to centis", 999 * time.Millisecond, "00:00:00.99"},
		{"truncates sub-millisecond", 19*time.Millisecond + 999*time.Microsecond, "00:00:00.01"},
		{"below one centi", 9 * time.Millisecond, "00:00:00.00"},
		{"just under an hour", time.Hour - time.Millisecond, "00:59:59.99"},
		{"hours do not wrap", 25 * time.Hour, "25:00:00.00"},
		{"hours widen past two digits", 100 * time.Hour, "100:00:00.00"},
		{"negative clamps to zero", -5 * time.Second, "00:00:00.00"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, timefmt.Format(tc.in))
		})
	}
}
