package sentry_ext_test

import (
	"errors"
	"testing"

	"github.com/getsentry/sentry-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wandb/wandb/stopwatch/internal/sentry_ext"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name   string
		params sentry_ext.Params
	}{
		{"no DSN", sentry_ext.Params{Release: "0.1.0"}},
		{"disabled", sentry_ext.Params{DSN: "https://key@example.com/1", Disabled: true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sc := sentry_ext.New(tt.params)
			assert.NotNil(t, sc, "New() should return a non-nil sentry client")
		})
	}
}

func TestCaptureException_DeduplicatesRecentErrors(t *testing.T) {
	tests := []struct {
		name        string
		lruSize     int
		errs        []error
		numCaptures int
	}{
		{
			name:        "single",
			lruSize:     2,
			errs:        []error{errors.New("error")},
			numCaptures: 1,
		},
		{
			name:        "duplicate",
			lruSize:     2,
			errs:        []error{errors.New("error"), errors.New("error")},
			numCaptures: 1,
		},
		{
			name:        "distinct",
			lruSize:     2,
			errs:        []error{errors.New("error1"), errors.New("error2")},
			numCaptures: 2,
		},
		{
			name:    "exceeds cache",
			lruSize: 2,
			errs: []error{
				errors.New("error1"),
				errors.New("error2"),
				errors.New("error3"),
			},
			numCaptures: 2,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sc := sentry_ext.New(sentry_ext.Params{LRUSize: tt.lruSize})

			for _, err := range tt.errs {
				sc.CaptureException(err, map[string]string{})
			}

			assert.Equal(t, tt.numCaptures, sc.Recent.Len())
		})
	}
}

func TestCaptureMessage_SendsThroughTransport(t *testing.T) {
	transport := &sentry.MockTransport{}
	sc := sentry_ext.New(sentry_ext.Params{Transport: transport})

	sc.CaptureMessage("config file unreadable", map[string]string{"path": "x"})
	sc.CaptureMessage("config file unreadable", map[string]string{"path": "x"})

	events := transport.Events()
	require.Len(t, events, 1)
	assert.Equal(t, "config file unreadable", events[0].Message)
	assert.Equal(t, "x", events[0].Tags["path"])
}

func TestReraise_Panics(t *testing.T) {
	sc := sentry_ext.New(sentry_ext.Params{})

	assert.PanicsWithValue(t, "boom", func() {
		sc.Reraise("boom", map[string]string{})
	})
	assert.NotPanics(t, func() { sc.Reraise(nil, nil) })
}

func TestRemoveBottomFrames(t *testing.T) {
	event := &sentry.Event{
		Exception: []sentry.Exception{
			{
				Stacktrace: &sentry.Stacktrace{
					Frames: []sentry.Frame{
						{AbsPath: "/path/to/model.go"},
						{AbsPath: "/path/to/handlers.go"},
						{AbsPath: "/path/to/client.go"},
						{AbsPath: "/path/to/logging.go"},
					},
				},
			},
			{Stacktrace: nil},
		},
	}

	modified := sentry_ext.RemoveBottomFrames(event, nil)

	assert.Equal(t,
		[]sentry.Frame{
			{AbsPath: "/path/to/model.go"},
			{AbsPath: "/path/to/handlers.go"},
		},
		modified.Exception[0].Stacktrace.Frames)
}
