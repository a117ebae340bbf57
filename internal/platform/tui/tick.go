// Package tui provides the Bubble Tea integration for the snake platform.
// It handles the terminal loop, key-to-intent mapping, rendering of game
// snapshots, and the SSH server for remote play.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that delivers the next tick after
// the fixed period. The model re-issues it while the controller reports
// Ticking; dropping it is how the scheduler is cancelled.
func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
