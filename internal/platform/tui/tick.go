// Package tui provides the Bubble Tea front-end for VoltKid.
// It handles the terminal UI loop, input mapping, and the level flow.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// statusTTL is how long a status message stays on screen.
const statusTTL = 3 * time.Second

// StatusExpiredMsg is sent when a status message should be cleared.
type StatusExpiredMsg struct {
	ID int
}

// expireStatusCmd returns a command that clears status message id after ttl.
func expireStatusCmd(id int, ttl time.Duration) tea.Cmd {
	return tea.Tick(ttl, func(time.Time) tea.Msg {
		return StatusExpiredMsg{ID: id}
	})
}
