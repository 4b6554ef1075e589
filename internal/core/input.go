package core

import "time"

// Action represents a one-shot platform action, abstracted from physical key presses.
// Directional movement is not an action: it is carried as held state in InputSnapshot.
type Action int

const (
	ActionNone    Action = iota
	ActionConfirm        // Enter - confirm selection in menu
	ActionBack           // B, Escape - go back
	ActionRestart        // R key - restart after the round is clear
	ActionQuit           // Q, Ctrl+C - exit game/session
	ActionPause          // P - pause/unpause game
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// InputSnapshot is the directional key state sampled once per frame.
// A key is pressed iff the most recent transition observed for it was a press.
type InputSnapshot struct {
	Up, Down, Left, Right bool
}

// InputSource produces directional key snapshots.
type InputSource interface {
	Snapshot(now time.Time) InputSnapshot
}

// InputFrame is everything the platform hands a game for one Step call:
// held directions plus the one-shot actions triggered since the last frame.
type InputFrame struct {
	Held    InputSnapshot
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets the one-shot actions for the next frame.
// Held state is owned by the input source and is left untouched.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Clock supplies the current time. Sessions read it on every update so
// tests can substitute a manual clock.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock (with its monotonic reading).
type SystemClock struct{}

// Now returns time.Now().
func (SystemClock) Now() time.Time {
	return time.Now()
}
