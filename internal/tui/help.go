package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wandb/wandb/stopwatch/internal/version"
)

// HelpEntry represents a single entry in the help screen.
type HelpEntry struct {
	Key         string
	Description string
}

var blankLine = HelpEntry{}

// HelpModel represents the help screen.
type HelpModel struct {
	viewport viewport.Model
	active   bool
	width    int
	height   int

	config *ConfigManager
}

func NewHelp(cfg *ConfigManager) *HelpModel {
	return &HelpModel{
		viewport: viewport.New(80, 20),
		config:   cfg,
	}
}

// generateHelpContent generates the help screen content.
func (h *HelpModel) generateHelpContent() string {
	var b strings.Builder
	for _, entry := range h.entries() {
		switch {
		case entry.Key == "":
			b.WriteString("\n")
		case entry.Description == "":
			b.WriteString(helpSectionStyle.Render(entry.Key) + "\n")
		default:
			key := helpKeyStyle.Render(entry.Key)
			desc := helpDescStyle.Render(entry.Description)
			b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, key, desc) + "\n")
		}
	}
	return b.String()
}

func (h *HelpModel) entries() []HelpEntry {
	entries := []HelpEntry{
		{Key: "── stopwatch ──"},
		{Key: "version", Description: version.Version},
	}
	if h.config != nil {
		entries = append(entries,
			HelpEntry{Key: "refresh", Description: h.config.RefreshInterval().String()},
			HelpEntry{Key: "lap order", Description: h.config.LapOrder()},
			HelpEntry{Key: "config", Description: h.config.Path()},
		)
	}
	entries = append(entries, blankLine)

	return append(entries, helpEntriesFromCategories(StopwatchKeyBindings())...)
}

func helpEntriesFromCategories[T any](categories []BindingCategory[T]) []HelpEntry {
	var entries []HelpEntry
	for _, category := range categories {
		entries = append(entries, HelpEntry{Key: category.Name})
		for _, binding := range category.Bindings {
			entries = append(entries, HelpEntry{
				Key:         strings.Join(binding.Keys, ", "),
				Description: binding.Description,
			})
		}
		entries = append(entries, blankLine)
	}
	return entries
}

// SetSize updates the size of the help screen.
func (h *HelpModel) SetSize(width, height int) {
	h.width = width
	h.height = max(height-StatusBarHeight, 0)
	h.viewport.Width = width
	h.viewport.Height = h.height

	if h.active {
		h.viewport.SetContent(h.generateHelpContent())
	}
}

// Toggle toggles the help screen visibility.
func (h *HelpModel) Toggle() {
	h.active = !h.active
	if h.active {
		h.viewport.GotoTop()
		h.viewport.SetContent(h.generateHelpContent())
	}
}

// IsActive returns whether the help screen is active.
func (h *HelpModel) IsActive() bool {
	return h.active
}

// Update handles messages for the help screen.
func (h *HelpModel) Update(msg tea.Msg) (*HelpModel, tea.Cmd) {
	if !h.active {
		return h, nil
	}

	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "h", "?", "esc":
			h.Toggle()
			return h, nil
		case "q", "ctrl+c":
			return h, tea.Quit
		default:
			h.viewport, cmd = h.viewport.Update(msg)
		}
	case tea.MouseMsg:
		h.viewport, cmd = h.viewport.Update(msg)
	}

	return h, cmd
}

// View renders the help screen.
func (h *HelpModel) View() string {
	if !h.active {
		return ""
	}

	content := helpContentStyle.Render(h.viewport.View())

	return lipgloss.Place(
		h.width,
		h.height,
		lipgloss.Left,
		lipgloss.Top,
		content,
	)
}
