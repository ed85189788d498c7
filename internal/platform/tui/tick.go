// Package tui hosts the 2040 engine in a Bubble Tea program.
// It owns the frame loop, key bindings, the wall clock and the record
// keeping; the engine only sees actions and elapsed time.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a simulation step.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the given
// frame rate. The engine measures elapsed time itself, so the rate only
// affects smoothness.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
