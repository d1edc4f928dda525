package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/wandb/wandb/stopwatch/internal/timefmt"
)

// handleKeyMsg dispatches a key through the key map.
//
// Keys without a handler go to the lap table for scrolling.
func (m *Model) handleKeyMsg(msg tea.KeyMsg) tea.Cmd {
	if handler, ok := m.keyMap[normalizeKey(msg.String())]; ok {
		return handler(m, msg)
	}
	return m.laps.Update(msg)
}

func (m *Model) handleQuit(tea.KeyMsg) tea.Cmd {
	m.refresher.Disarm()
	m.logger.Debug("model: quit requested")
	return tea.Quit
}

// handleToggle starts or stops the stopwatch and the redraw ticks with it.
func (m *Model) handleToggle(tea.KeyMsg) tea.Cmd {
	m.sw.Toggle()

	if m.sw.IsRunning() {
		m.logger.Debug(fmt.Sprintf(
			"model: started at %s", timefmt.Format(m.sw.Elapsed())))
		return m.refresher.Arm()
	}

	m.refresher.Disarm()
	m.logger.Debug(fmt.Sprintf(
		"model: stopped at %s", timefmt.Format(m.sw.Elapsed())))
	return nil
}

// handleLap records a lap. Ignored while stopped.
func (m *Model) handleLap(tea.KeyMsg) tea.Cmd {
	if !m.sw.CanRecordLap() {
		return nil
	}

	if !m.sw.RecordLap() {
		m.logger.CaptureWarn("model: lap rejected, clock moved backwards",
			"elapsed", m.sw.Elapsed().String())
		return nil
	}

	m.laps.Refresh(m.sw.Laps())
	m.logger.Debug(fmt.Sprintf("model: recorded lap %d", m.sw.LapCount()))
	return nil
}

// handleReset zeroes the stopwatch and clears laps. Ignored while running.
func (m *Model) handleReset(tea.KeyMsg) tea.Cmd {
	if !m.sw.CanReset() {
		return nil
	}

	m.sw.Reset()
	m.refresher.Disarm()
	m.laps.Refresh(m.sw.Laps())
	m.logger.Debug("model: reset")
	return nil
}
