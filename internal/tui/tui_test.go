package tui_test

import (
	"bytes"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/exp/teatest"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wandb/wandb/stopwatch/internal/observability"
	"github.com/wandb/wandb/stopwatch/internal/tui"
)

func TestTUI_StartLapQuit_Teatest(t *testing.T) {
	m := tui.InjectModel(
		afero.NewMemMapFs(),
		tui.ConfigPath(testConfigPath),
		observability.NewNoOpLogger(),
	)

	tm := teatest.NewTestModel(t, m, teatest.WithInitialTermSize(80, 24))
	tm.Send(tea.WindowSizeMsg{Width: 80, Height: 24})

	teatest.WaitFor(t, tm.Output(),
		func(b []byte) bool { return bytes.Contains(b, []byte("No laps recorded")) },
		teatest.WithDuration(2*time.Second),
	)

	tm.Type(" ")
	teatest.WaitFor(t, tm.Output(),
		func(b []byte) bool { return bytes.Contains(b, []byte("running")) },
		teatest.WithDuration(2*time.Second),
	)

	tm.Type("l")
	teatest.WaitFor(t, tm.Output(),
		func(b []byte) bool { return bytes.Contains(b, []byte("Lap 1")) },
		teatest.WithDuration(2*time.Second),
	)

	tm.Type("q")
	tm.WaitFinished(t, teatest.WithFinalTimeout(2*time.Second))

	final, ok := tm.FinalModel(t).(*tui.Model)
	require.True(t, ok)
	assert.False(t, final.TestRefresherArmed())
	assert.Equal(t, 1, final.TestLapRows())
}
