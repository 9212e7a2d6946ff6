// Package tui provides the Bubble Tea front-end: key bindings feeding the
// input lines, a screen renderer for snapshots and the SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger one loop step.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends a tick after delay.
func tickCmd(delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
