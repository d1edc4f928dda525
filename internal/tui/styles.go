package tui

import "github.com/charmbracelet/lipgloss"

// Layout constants
const (
	StatusBarHeight = 1
	ElapsedHeight   = 3
	LapHeaderHeight = 1
	LapColumnWidth  = 14
	LapLabelWidth   = 10
)

const accentColor = lipgloss.Color("#FCBC32")

// Elapsed time display
var (
	elapsedRunningStyle = lipgloss.NewStyle().
				Foreground(accentColor).
				Bold(true).
				Padding(1, 0)

	elapsedStoppedStyle = elapsedRunningStyle.
				Foreground(lipgloss.Color("250")) // light gray
)

// Lap table styles
var (
	lapHeaderStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")). // gray
			Bold(true)

	lapRowStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	lapEmptyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Italic(true)
)

// Status bar styles
var (
	statusBarStyle = lipgloss.NewStyle().
		Foreground(lipgloss.AdaptiveColor{Light: "#000000", Dark: "#2B3038"}).
		Background(lipgloss.AdaptiveColor{Light: "#4ECDC4", Dark: "#E1F7FA"})
)

// Help screen styles
var (
	helpKeyStyle = lipgloss.NewStyle().
			Foreground(accentColor).
			Bold(true).
			Width(20)

	helpDescStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	helpSectionStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("245")).
				Bold(true).
				MarginTop(1)

	helpContentStyle = lipgloss.NewStyle().
				Padding(1, 2)
)
