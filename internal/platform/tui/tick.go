// Package tui provides the Bubble Tea integration for playform.
// It hosts the studio, catalog browsing and game pages, supplies the
// frame pacing signal to the game runtime, and maps terminal input
// onto the live pressed-key set.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg carries the frame pacing timestamp. The runtime's loops are
// re-armed against the pacer, which fires once per TickMsg.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the
// given rate.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 30
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
