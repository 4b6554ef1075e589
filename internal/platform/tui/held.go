package tui

import (
	"time"

	"github.com/vovakirdan/bombjack/internal/core"
)

// HeldKeys turns terminal key presses into held directions. Terminals report
// presses and auto-repeats but never releases, so a direction counts as held
// until its hold window passes without a repeat, or the opposite direction is
// pressed.
type HeldKeys struct {
	window  time.Duration
	expires [5]time.Time // Indexed by Direction
}

// NewHeldKeys creates a tracker with the given hold window.
func NewHeldKeys(window time.Duration) *HeldKeys {
	return &HeldKeys{window: window}
}

// Press records a press or auto-repeat of dir at now.
func (h *HeldKeys) Press(dir Direction, now time.Time) {
	if dir == DirNone {
		return
	}
	h.expires[dir] = now.Add(h.window)
	if opp := opposite(dir); opp != DirNone {
		h.expires[opp] = time.Time{}
	}
}

// Release drops every held direction.
func (h *HeldKeys) Release() {
	h.expires = [5]time.Time{}
}

// Snapshot reports the directions held at now. HeldKeys is a core.InputSource.
func (h *HeldKeys) Snapshot(now time.Time) core.InputSnapshot {
	return core.InputSnapshot{
		Up:    h.held(DirUp, now),
		Down:  h.held(DirDown, now),
		Left:  h.held(DirLeft, now),
		Right: h.held(DirRight, now),
	}
}

func (h *HeldKeys) held(dir Direction, now time.Time) bool {
	return now.Before(h.expires[dir])
}

func opposite(dir Direction) Direction {
	switch dir {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	case DirRight:
		return DirLeft
	}
	return DirNone
}

var _ core.InputSource = (*HeldKeys)(nil)
