//go:build race

package tui

import tea "github.com/charmbracelet/bubbletea"

func windowTitleCmd() tea.Cmd {
	return nil
}
