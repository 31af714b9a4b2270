// Package tui provides the Bubble Tea integration for the cat runner.
// It handles the terminal UI loop, input mapping, toasts and the SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// frameClock turns tick timestamps into elapsed milliseconds. The game
// clamps long frames itself, so the clock reports what really elapsed.
type frameClock struct {
	last     time.Time
	fallback float64 // Reported for the first frame
}

func newFrameClock(canonicalMs float64) frameClock {
	return frameClock{fallback: canonicalMs}
}

// elapsed returns the milliseconds since the previous call.
func (c *frameClock) elapsed(now time.Time) float64 {
	if c.last.IsZero() {
		c.last = now
		return c.fallback
	}
	ms := float64(now.Sub(c.last)) / float64(time.Millisecond)
	c.last = now
	if ms < 0 {
		return 0
	}
	return ms
}

// reset forgets the previous frame, e.g. after the game was resumed.
func (c *frameClock) reset() {
	c.last = time.Time{}
}
