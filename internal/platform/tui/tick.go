// Package tui provides the Bubble Tea front end for blightgrid: the world
// view, the run board, and the Wish SSH server that hosts worlds remotely.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/blightgrid/internal/core"
)

// maxFrameStep bounds how much virtual time one frame may advance, so a
// stalled terminal does not make the world jump ahead.
const maxFrameStep = 250 * time.Millisecond

// TickMsg is sent to trigger a frame.
type TickMsg time.Time

// Frame rate bounds. A zero rate falls back to the default.
const (
	defaultTickRate = 30
	maxTickRate     = 120
)

// tickInterval converts a frame rate to the delay between frames.
func tickInterval(tickRate int) time.Duration {
	if tickRate == 0 {
		tickRate = defaultTickRate
	}
	return time.Second / time.Duration(core.Clamp(tickRate, 1, maxTickRate))
}

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	return tea.Tick(tickInterval(tickRate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// frameStep returns the virtual time to advance between two frames.
func frameStep(prev, now time.Time) time.Duration {
	if prev.IsZero() || now.Before(prev) {
		return 0
	}
	return min(now.Sub(prev), maxFrameStep)
}
