package observability_test

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wandb/wandb/stopwatch/internal/observability"
	"github.com/wandb/wandb/stopwatch/internal/observabilitytest"
)

func TestNewTags(t *testing.T) {
	testCases := []struct {
		name   string
		input  []any
		expect observability.Tags
	}{
		{
			name:   "Tags from slog.Attr",
			input:  []any{slog.Attr{Key: "key1", Value: slog.Int64Value(123)}},
			expect: observability.Tags{"key1": "123"},
		},
		{
			name:   "Tags from string and int",
			input:  []any{"key2", 456},
			expect: observability.Tags{"key2": "456"},
		},
		{
			name: "Tags from a mix of slog.Attr, string, and int",
			input: []any{
				slog.Attr{Key: "key3", Value: slog.StringValue("value3")},
				"key4",
				789,
				slog.Any("key5", "value5"),
			},
			expect: observability.Tags{"key3": "value3", "key4": "789", "key5": "value5"},
		},
		{
			name:   "Trailing key without value is dropped",
			input:  []any{slog.Attr{Key: "key6", Value: slog.Int64Value(123)}, "key7"},
			expect: observability.Tags{"key6": "123"},
		},
		{
			name:   "Tags from empty input",
			input:  []any{},
			expect: observability.Tags{},
		},
		{
			name: "Other types are skipped",
			input: []any{
				slog.Attr{Key: "key8", Value: slog.Int64Value(123)},
				map[string]string{"key9": "value9"},
				"key10",
				10,
			},
			expect: observability.Tags{"key8": "123", "key10": "10"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expect, observability.NewTags(tc.input...))
		})
	}
}

func TestNewNoOpLogger(t *testing.T) {
	logger := observability.NewNoOpLogger()

	assert.NotNil(t, logger.Logger)
	assert.Equal(t, observability.Tags{}, logger.GetTags())
}

func TestCoreLogger_BaseTagsOnEveryRecord(t *testing.T) {
	var buf bytes.Buffer
	logger := observability.NewJSONLogger(&buf, slog.LevelInfo,
		&observability.CoreLoggerParams{
			Tags: observability.Tags{"session": "abc"},
		})

	logger.With("component", "tui").Info("started")
	logger.CaptureError(errors.New("render failed"), "lap", "3")

	records := observabilitytest.ExtractLogs(t, &buf)
	assert.Equal(t, []map[string]string{
		{"level": "INFO", "msg": "started", "session": "abc", "component": "tui"},
		{"level": "ERROR", "msg": "render failed", "session": "abc", "lap": "3"},
	}, records)
}

func TestCoreLogger_DebugFilteredByLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := observability.NewJSONLogger(&buf, slog.LevelInfo, nil)

	logger.Debug("tick")

	assert.Empty(t, buf.String())
}

func TestReraise_WithoutSentryRepanics(t *testing.T) {
	logger := observabilitytest.NewTestLogger(t)

	assert.PanicsWithValue(t, "boom", func() {
		defer logger.Reraise()
		panic("boom")
	})
}
