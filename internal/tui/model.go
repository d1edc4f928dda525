package tui

import (
	"fmt"
	"runtime/debug"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wandb/wandb/stopwatch/internal/observability"
	"github.com/wandb/wandb/stopwatch/internal/stopwatch"
	"github.com/wandb/wandb/stopwatch/internal/timefmt"
)

const windowTitle = "stopwatch"

// Model describes the application state.
//
// Implements tea.Model.
//
// Bubble Tea calls Update and View serially on its event loop, so the
// stopwatch is only ever touched from one goroutine.
type Model struct {
	sw *stopwatch.Stopwatch

	// Configuration.
	config *ConfigManager

	// Keyboard bindings.
	keyMap map[string]func(*Model, tea.KeyMsg) tea.Cmd

	// Main view size.
	width, height int

	refresher *Refresher

	// UI components
	laps *LapTable
	help *HelpModel

	logger *observability.CoreLogger
}

func NewModel(
	sw *stopwatch.Stopwatch,
	cfg *ConfigManager,
	logger *observability.CoreLogger,
) *Model {
	interval := cfg.RefreshInterval()
	logger.Debug(fmt.Sprintf("model: refresh interval set to %v", interval))

	m := &Model{
		sw:        sw,
		config:    cfg,
		keyMap:    buildKeyMap(StopwatchKeyBindings()),
		refresher: NewRefresher(interval),
		laps:      NewLapTable(cfg.LapOrder()),
		help:      NewHelp(cfg),
		logger:    logger,
	}
	m.laps.Refresh(sw.Laps())

	return m
}

// Config returns the model's preferences.
func (m *Model) Config() *ConfigManager {
	return m.config
}

// SetRefreshInterval overrides the redraw period for this session.
func (m *Model) SetRefreshInterval(d time.Duration) error {
	if err := m.config.OverrideRefreshInterval(d); err != nil {
		return err
	}
	m.refresher.SetInterval(m.config.RefreshInterval())
	return nil
}

// Init initializes the app model and returns the initial command for the
// application to run.
//
// Implements tea.Model.Init.
func (m *Model) Init() tea.Cmd {
	m.logger.Debug("model: Init called")

	var cmds []tea.Cmd
	cmds = append(cmds, windowTitleCmd())
	if m.sw.IsRunning() {
		cmds = append(cmds, m.refresher.Arm())
	}
	return tea.Batch(cmds...)
}

// Update handles incoming events and updates the model accordingly.
//
// Implements tea.Model.Update.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	defer m.logPanic("Update")

	if handled, cmd := m.handleHelp(msg); handled {
		return m, cmd
	}

	switch t := msg.(type) {
	case tea.KeyMsg:
		return m, m.handleKeyMsg(t)

	case tea.MouseMsg:
		return m, m.laps.Update(t)

	case tea.WindowSizeMsg:
		m.width, m.height = t.Width, t.Height
		m.help.SetSize(t.Width, t.Height)
		m.laps.SetSize(t.Width, m.lapBodyHeight())
		return m, nil

	case RefreshMsg:
		cmd, ok := m.refresher.Accept(t)
		if !ok {
			m.logger.Debug("model: dropped stale refresh tick")
		}
		return m, cmd
	}

	return m, nil
}

// handleHelp centralizes help toggle and routing while active.
func (m *Model) handleHelp(msg tea.Msg) (bool, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok {
		switch km.String() {
		case "h", "?":
			m.help.Toggle()
			return true, nil
		}
	}

	// When help is visible, it owns key/mouse.
	if m.help.IsActive() {
		switch msg.(type) {
		case tea.KeyMsg, tea.MouseMsg:
			updated, cmd := m.help.Update(msg)
			m.help = updated
			return true, cmd
		}
	}
	return false, nil
}

// View renders the UI based on the data in the model.
//
// Implements tea.Model.View.
func (m *Model) View() string {
	defer m.logPanic("View")

	if m.help.IsActive() {
		content := lipgloss.JoinVertical(
			lipgloss.Left,
			m.help.View(),
			m.renderStatusBar(),
		)
		return lipgloss.Place(m.width, m.height, lipgloss.Left, lipgloss.Top, content)
	}

	content := lipgloss.JoinVertical(
		lipgloss.Left,
		m.renderElapsed(),
		m.laps.Header(),
		m.laps.View(),
	)

	if m.width == 0 || m.height == 0 {
		return content
	}

	body := lipgloss.Place(
		m.width,
		m.height-StatusBarHeight,
		lipgloss.Center,
		lipgloss.Top,
		content,
	)
	return lipgloss.JoinVertical(lipgloss.Left, body, m.renderStatusBar())
}

func (m *Model) renderElapsed() string {
	style := elapsedStoppedStyle
	if m.sw.IsRunning() {
		style = elapsedRunningStyle
	}
	return style.Render(timefmt.Format(m.sw.Elapsed()))
}

// renderStatusBar shows the run state and enabled actions on the left and
// the help hint on the right.
func (m *Model) renderStatusBar() string {
	statusText := " " + m.statusText()
	helpText := "h: help "

	rightAligned := lipgloss.PlaceHorizontal(
		max(m.width-lipgloss.Width(statusText), 0),
		lipgloss.Right,
		helpText,
	)

	style := statusBarStyle
	if m.width > 0 {
		style = style.Width(m.width).MaxWidth(m.width)
	}
	return style.Render(statusText + rightAligned)
}

func (m *Model) statusText() string {
	text := fmt.Sprintf("%s • %d laps", m.sw.Status(), m.sw.LapCount())

	if m.sw.IsRunning() {
		text += " • space: stop"
	} else {
		text += " • space: start"
	}
	if m.sw.CanRecordLap() {
		text += " • l: lap"
	}
	if m.sw.CanReset() {
		text += " • r: reset"
	}
	return text
}

// lapBodyHeight is the number of rows left for the lap table body.
func (m *Model) lapBodyHeight() int {
	return max(m.height-ElapsedHeight-LapHeaderHeight-StatusBarHeight, 0)
}

// logPanic logs panics to Sentry before re-panicing.
func (m *Model) logPanic(context string) {
	if r := recover(); r != nil {
		stackTrace := string(debug.Stack())
		m.logger.CaptureError(fmt.Errorf(
			"PANIC in %s: %v\nStack trace:\n%s", context, r, stackTrace))

		panic(r)
	}
}
