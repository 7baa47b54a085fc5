// Package tui provides the Bubble Tea front-end of the maze generator.
// It handles the terminal UI loop, input mapping, and the SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// statusTTL is how long a status line message stays visible.
const statusTTL = 3 * time.Second

// StatusExpiredMsg clears the status line if it still shows message ID.
type StatusExpiredMsg struct {
	ID int
}

// expireStatusCmd returns a Bubble Tea command that expires status id after ttl.
func expireStatusCmd(id int, ttl time.Duration) tea.Cmd {
	return tea.Tick(ttl, func(time.Time) tea.Msg {
		return StatusExpiredMsg{ID: id}
	})
}
