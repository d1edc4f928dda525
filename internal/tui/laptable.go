package tui

import (
	"fmt"
	"iter"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/wandb/wandb/stopwatch/internal/laplog"
	"github.com/wandb/wandb/stopwatch/internal/timefmt"
)

const noLapsText = "No laps recorded"

// LapTable renders recorded laps in a scrollable viewport.
//
// Content is rebuilt only when the lap log changes, not on every redraw.
type LapTable struct {
	viewport viewport.Model
	order    string
	count    int
	width    int
}

func NewLapTable(order string) *LapTable {
	return &LapTable{
		viewport: viewport.New(0, 0),
		order:    order,
	}
}

// SetSize updates the size of the table body.
func (t *LapTable) SetSize(width, height int) {
	t.width = width
	t.viewport.Width = width
	t.viewport.Height = max(height, 0)
	t.scrollToNewest()
}

// Refresh rebuilds the rows from laps.
func (t *LapTable) Refresh(laps iter.Seq[laplog.Lap]) {
	rows := slices.Collect(laps)
	if t.order == LapOrderNewestFirst {
		slices.Reverse(rows)
	}
	t.count = len(rows)

	if len(rows) == 0 {
		t.viewport.SetContent(lapEmptyStyle.Render(noLapsText))
		t.viewport.GotoTop()
		return
	}

	lines := make([]string, 0, len(rows))
	for _, lap := range rows {
		lines = append(lines, lapRowStyle.Render(formatLapRow(lap)))
	}
	t.viewport.SetContent(strings.Join(lines, "\n"))
	t.scrollToNewest()
}

// scrollToNewest keeps the most recent lap in view.
func (t *LapTable) scrollToNewest() {
	if t.order == LapOrderNewestFirst {
		t.viewport.GotoTop()
	} else {
		t.viewport.GotoBottom()
	}
}

// Update forwards scrolling keys to the viewport.
func (t *LapTable) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	t.viewport, cmd = t.viewport.Update(msg)
	return cmd
}

func (t *LapTable) Count() int {
	return t.count
}

// Header renders the column titles.
func (t *LapTable) Header() string {
	return lapHeaderStyle.Render(fmt.Sprintf(
		"%-*s %*s %*s",
		LapLabelWidth, "Lap",
		LapColumnWidth, "Split",
		LapColumnWidth, "Total",
	))
}

// View renders the visible rows.
func (t *LapTable) View() string {
	return t.viewport.View()
}

func formatLapRow(lap laplog.Lap) string {
	return fmt.Sprintf(
		"%-*s %*s %*s",
		LapLabelWidth, fmt.Sprintf("Lap %d", lap.Number),
		LapColumnWidth, timefmt.Format(lap.Split),
		LapColumnWidth, timefmt.Format(lap.Total),
	)
}
