package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// KeyBinding defines a key binding for a particular target type.
//
// If Handler is nil, the binding is shown in the help screen but is not
// dispatched through the key map (documentation-only bindings handled by a
// child component).
type KeyBinding[T any] struct {
	Keys        []string
	Description string
	Handler     func(*T, tea.KeyMsg) tea.Cmd
}

// BindingCategory groups related key bindings (primarily for help display).
type BindingCategory[T any] struct {
	Name     string
	Bindings []KeyBinding[T]
}

// StopwatchKeyBindings returns the key bindings of the stopwatch view.
func StopwatchKeyBindings() []BindingCategory[Model] {
	return []BindingCategory[Model]{
		{
			Name: "General",
			Bindings: []KeyBinding[Model]{
				{
					Keys:        []string{"h", "?"},
					Description: "Toggle this help screen",
				},
				{
					Keys:        []string{"q", "ctrl+c"},
					Description: "Quit",
					Handler:     (*Model).handleQuit,
				},
			},
		},
		{
			Name: "Stopwatch",
			Bindings: []KeyBinding[Model]{
				{
					Keys:        []string{"space", "s"},
					Description: "Start / stop",
					Handler:     (*Model).handleToggle,
				},
				{
					Keys:        []string{"l"},
					Description: "Record lap (while running)",
					Handler:     (*Model).handleLap,
				},
				{
					Keys:        []string{"r"},
					Description: "Reset (while stopped)",
					Handler:     (*Model).handleReset,
				},
			},
		},

		// Documentation-only bindings (handled by the lap table viewport).
		{
			Name: "Laps",
			Bindings: []KeyBinding[Model]{
				{
					Keys:        []string{"up", "down"},
					Description: "Scroll laps",
				},
				{
					Keys:        []string{"pgup", "pgdown"},
					Description: "Page through laps",
				},
			},
		},
	}
}

// buildKeyMap builds a fast lookup map from key string to handler.
func buildKeyMap[T any](categories []BindingCategory[T]) map[string]func(*T, tea.KeyMsg) tea.Cmd {
	keyMap := make(map[string]func(*T, tea.KeyMsg) tea.Cmd)
	for _, category := range categories {
		for _, binding := range category.Bindings {
			if binding.Handler == nil {
				continue
			}
			for _, key := range binding.Keys {
				keyMap[normalizeKey(key)] = binding.Handler
			}
		}
	}
	return keyMap
}

// normalizeKey normalizes Bubble Tea's KeyMsg.String() into a stable key
// used by our maps.
//
// Bubble Tea reports space as " "; the help screen shows "space".
func normalizeKey(key string) string {
	if key == " " {
		return "space"
	}
	return key
}
