package tui

import "time"

// Accessors for tests in package tui_test.

func (m *Model) TestRefresherArmed() bool {
	return m.refresher.Armed()
}

func (m *Model) TestRefreshInterval() time.Duration {
	return m.refresher.Interval()
}

func (m *Model) TestHelpActive() bool {
	return m.help.IsActive()
}

func (m *Model) TestLapRows() int {
	return m.laps.Count()
}

func (t *LapTable) TestYOffset() int {
	return t.viewport.YOffset
}

// TestRefreshMsg returns a tick carrying the refresher's current token.
func (r *Refresher) TestRefreshMsg() RefreshMsg {
	return RefreshMsg{token: r.token}
}

// TestStaleRefreshMsg returns a tick from a previous arming.
func (r *Refresher) TestStaleRefreshMsg() RefreshMsg {
	return RefreshMsg{token: r.token - 1}
}

func (m *Model) TestRefresher() *Refresher {
	return m.refresher
}
