package sentry_ext

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/getsentry/sentry-go"
)

type Params struct {
	// DSN is the Data Source Name for the sentry client
	DSN string
	// Disabled turns off reporting regardless of the DSN
	Disabled bool
	// AttachStacktrace is a flag to attach stacktrace to the sentry event
	AttachStacktrace bool
	// Release is the version of the application
	Release string
	// Environment is the environment the application is running in
	Environment string
	// BeforeSend is a callback to modify the event before sending it to sentry
	BeforeSend func(*sentry.Event, *sentry.EventHint) *sentry.Event
	// LRUSize is the size of the LRU cache
	LRUSize int
	// Transport overrides the sentry transport, mainly for tests
	Transport sentry.Transport
}

type Client struct {
	// Recent is the cache of recent errors sent to sentry to avoid sending
	// the same error multiple times
	Recent *cache
}

// New initializes the sentry client.
//
// If the DSN is empty or Disabled is set, events are dropped by sentry.
// If we can't create the cache, we will log an error and return nil.
func New(params Params) *Client {
	if params.BeforeSend == nil {
		params.BeforeSend = RemoveBottomFrames
	}

	dsn := params.DSN
	if params.Disabled {
		dsn = ""
	}

	if err := sentry.Init(
		sentry.ClientOptions{
			Dsn:              dsn,
			AttachStacktrace: params.AttachStacktrace,
			Release:          params.Release,
			BeforeSend:       params.BeforeSend,
			Environment:      params.Environment,
			Transport:        params.Transport,
		}); err != nil {
		slog.Error("sentry_ext: New: failed to initialize sentry", "err", err)
	}

	if dsn == "" {
		slog.Debug("sentry_ext: New: sentry is disabled")
	} else {
		slog.Debug("sentry_ext: New: sentry is enabled")
	}

	cache, err := newCache(params.LRUSize)
	if err != nil {
		slog.Error("sentry_ext: New: failed to create cache", "err", err)
		return nil
	}

	return &Client{
		Recent: cache,
	}
}

// CaptureException sends err to sentry as an error level event tagged with
// tags, unless the same error was sent recently.
func (s *Client) CaptureException(err error, tags map[string]string) {
	if !s.Recent.shouldCapture(err) {
		return
	}

	localHub := sentry.CurrentHub().Clone()
	localHub.ConfigureScope(
		func(scope *sentry.Scope) {
			scope.SetTags(tags)
		},
	)
	localHub.CaptureException(err)
}

// CaptureMessage sends msg to sentry as an info level event tagged with
// tags, unless the same message was sent recently.
func (s *Client) CaptureMessage(msg string, tags map[string]string) {
	if !s.Recent.shouldCapture(errors.New(msg)) {
		return
	}

	localHub := sentry.CurrentHub().Clone()
	localHub.ConfigureScope(
		func(scope *sentry.Scope) {
			scope.SetTags(tags)
		},
	)
	localHub.CaptureMessage(msg)
}

// Reraise captures a recovered panic value and panics with it again.
func (s *Client) Reraise(err any, tags map[string]string) {
	if err == nil {
		return
	}

	e, ok := err.(error)
	if !ok {
		e = fmt.Errorf("%v", err)
	}
	s.CaptureException(e, tags)
	sentry.Flush(time.Second * 2)
	panic(err)
}

// Flush waits up to timeout for buffered events to be sent.
func (s *Client) Flush(timeout time.Duration) bool {
	return sentry.CurrentHub().Flush(timeout)
}

// RemoveBottomFrames drops the innermost stack frames that belong to this
// package and the logger, so events point at the code that panicked.
func RemoveBottomFrames(event *sentry.Event, hint *sentry.EventHint) *sentry.Event {
	for i, exception := range event.Exception {
		if exception.Stacktrace == nil {
			continue
		}
		frames := exception.Stacktrace.Frames
		framesLen := len(frames)
		if framesLen < 3 {
			continue
		}
		for j := framesLen - 1; j >= framesLen-3; j-- {
			frame := frames[j]
			if strings.HasSuffix(frame.AbsPath, "client.go") ||
				strings.HasSuffix(frame.AbsPath, "logging.go") {
				frames = frames[:j]
			} else {
				break
			}
		}
		event.Exception[i].Stacktrace.Frames = frames
	}
	return event
}
