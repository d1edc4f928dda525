package observability

import (
	"io"
	"log/slog"

	"github.com/wandb/wandb/stopwatch/internal/sentry_ext"
)

type Tags map[string]string

// NewTags creates a new Tags from a mix of slog.Attr and a string and its
// corresponding value. It ignores incomplete pairs and other types.
func NewTags(args ...any) Tags {
	tags := Tags{}
	for len(args) > 0 {
		switch x := args[0].(type) {
		case slog.Attr:
			tags[x.Key] = x.Value.String()
			args = args[1:]
		case string:
			if len(args) < 2 {
				return tags
			}
			attr := slog.Any(x, args[1])
			tags[attr.Key] = attr.Value.String()
			args = args[2:]
		default:
			args = args[1:]
		}
	}
	return tags
}

type CoreLoggerParams struct {
	Sentry *sentry_ext.Client
	Tags   Tags
}

// CoreLogger is the application logger.
//
// It is a slog.Logger that can additionally forward errors and warnings
// to Sentry when a client is configured.
type CoreLogger struct {
	*slog.Logger
	baseTags Tags
	sentry   *sentry_ext.Client
}

func NewCoreLogger(logger *slog.Logger, params *CoreLoggerParams) *CoreLogger {
	if params == nil {
		params = &CoreLoggerParams{}
	}

	tags := Tags{}
	var args []any
	for key, value := range params.Tags {
		args = append(args, slog.String(key, value))
		tags[key] = value
	}

	return &CoreLogger{
		Logger:   logger.With(args...),
		sentry:   params.Sentry,
		baseTags: tags,
	}
}

// NewJSONLogger returns a CoreLogger writing JSON lines to w at the given
// level.
func NewJSONLogger(
	w io.Writer,
	level slog.Level,
	params *CoreLoggerParams,
) *CoreLogger {
	return NewCoreLogger(
		slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})),
		params,
	)
}

// withArgs merges the given args with the logger's base tags.
//
// The logger's base tags take precedence over args.
func (cl *CoreLogger) withArgs(args ...any) Tags {
	tags := NewTags(args...)
	for key, value := range cl.baseTags {
		tags[key] = value
	}
	return tags
}

// With returns a derived logger that includes the given tags in each message.
func (cl *CoreLogger) With(args ...any) *CoreLogger {
	return &CoreLogger{
		Logger:   cl.Logger.With(args...),
		baseTags: cl.baseTags,
		sentry:   cl.sentry,
	}
}

// CaptureError logs an error and sends it to Sentry.
func (cl *CoreLogger) CaptureError(err error, args ...any) {
	cl.Error(err.Error(), args...)

	if cl.sentry != nil {
		cl.sentry.CaptureException(err, cl.withArgs(args...))
	}
}

// CaptureWarn logs a warning and sends it to Sentry.
func (cl *CoreLogger) CaptureWarn(msg string, args ...any) {
	cl.Warn(msg, args...)

	if cl.sentry != nil {
		cl.sentry.CaptureMessage(msg, cl.withArgs(args...))
	}
}

// Reraise reports panics to Sentry.
//
// Must be deferred directly.
func (cl *CoreLogger) Reraise(args ...any) {
	if err := recover(); err != nil {
		if cl.sentry == nil {
			panic(err)
		}
		cl.sentry.Reraise(err, cl.withArgs(args...))
	}
}

// GetTags returns the tags associated with the logger.
//
// Used for testing.
func (cl *CoreLogger) GetTags() Tags {
	return cl.baseTags
}

// NewNoOpLogger returns a logger that discards all messages.
//
// Used for testing.
func NewNoOpLogger() *CoreLogger {
	return NewCoreLogger(
		slog.New(slog.NewJSONHandler(io.Discard, nil)),
		nil,
	)
}
