// Package tui provides the Bubble Tea integration for consolekit.
// It feeds terminal events to the window engine, paces its steps and
// renders the composed surface.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// minFrame paces parents that ask for no delay.
const minFrame = 16 * time.Millisecond

// TickMsg is sent to trigger one engine step of the model whose run ID
// it carries.
type TickMsg struct {
	Time time.Time
	Run  uint64
}

var runIDs atomic.Uint64

// nextRun returns a fresh run ID, so a model started after another one
// closed ignores the old model's pending ticks.
func nextRun() uint64 { return runIDs.Add(1) }

// tickCmd returns a Bubble Tea command that sends a tick after delay.
func tickCmd(run uint64, delay time.Duration) tea.Cmd {
	if delay < minFrame {
		delay = minFrame
	}
	return tea.Tick(delay, func(t time.Time) tea.Msg {
		return TickMsg{Time: t, Run: run}
	})
}
