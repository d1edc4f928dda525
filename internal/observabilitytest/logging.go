package observabilitytest

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wandb/wandb/stopwatch/internal/observability"
)

// NewTestLogger returns a logger that's captured by the testing framework.
//
// Messages at or above INFO level are displayed in the test output on
// failure.
func NewTestLogger(t *testing.T) *observability.CoreLogger {
	t.Helper()
	return observability.NewCoreLogger(
		slog.New(slog.NewJSONHandler(t.Output(), &slog.HandlerOptions{})),
		nil,
	)
}

// NewRecordingTestLogger is like NewTestLogger but also returns a buffer
// that captures log messages.
func NewRecordingTestLogger(t *testing.T) (
	*observability.CoreLogger,
	*bytes.Buffer,
) {
	t.Helper()

	recordedLogs := &bytes.Buffer{}
	writer := io.MultiWriter(t.Output(), recordedLogs)

	return observability.NewCoreLogger(
		slog.New(slog.NewJSONHandler(writer, &slog.HandlerOptions{})),
		nil,
	), recordedLogs
}

// ExtractLogs parses the records written to a [NewRecordingTestLogger]
// buffer, dropping the "time" key.
func ExtractLogs(t *testing.T, buf *bytes.Buffer) []map[string]string {
	t.Helper()
	records := make([]map[string]string, 0)

	for line := range bytes.Lines(buf.Bytes()) {
		var record map[string]string
		require.NoError(t, json.Unmarshal(line, &record))

		delete(record, "time")

		records = append(records, record)
	}

	return records
}
