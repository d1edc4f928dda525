package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// RefreshMsg asks the model to redraw the elapsed time.
type RefreshMsg struct {
	token uint64
}

// Refresher drives periodic redraws while the stopwatch runs.
//
// Each Arm issues a new token and every tick carries the token it was
// scheduled with. Disarm invalidates the current token, so a tick already
// in flight is dropped by Accept and at most one tick chain is ever live.
//
// Not safe for concurrent use; it is only touched from Model.Update.
type Refresher struct {
	interval time.Duration
	armed    bool
	token    uint64
}

func NewRefresher(interval time.Duration) *Refresher {
	return &Refresher{interval: interval}
}

// Arm starts the tick chain.
//
// Returns nil if it is already armed.
func (r *Refresher) Arm() tea.Cmd {
	if r.armed {
		return nil
	}
	r.armed = true
	r.token++
	return r.tick()
}

// Disarm stops the tick chain.
func (r *Refresher) Disarm() {
	r.armed = false
	r.token++
}

// Accept validates a tick and schedules the next one.
//
// Returns false for ticks from an earlier arming or that arrive while
// disarmed; those must not trigger a redraw.
func (r *Refresher) Accept(msg RefreshMsg) (tea.Cmd, bool) {
	if !r.armed || msg.token != r.token {
		return nil, false
	}
	return r.tick(), true
}

func (r *Refresher) Armed() bool {
	return r.armed
}

func (r *Refresher) Interval() time.Duration {
	return r.interval
}

// SetInterval changes the period of subsequently scheduled ticks.
func (r *Refresher) SetInterval(d time.Duration) {
	r.interval = d
}

func (r *Refresher) tick() tea.Cmd {
	token := r.token
	return tea.Tick(r.interval, func(time.Time) tea.Msg {
		return RefreshMsg{token: token}
	})
}
