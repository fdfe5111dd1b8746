package core

// Action is a semantic world action, abstracted from physical key presses.
type Action int

const (
	ActionNone     Action = iota
	ActionUp              // Move the cursor north
	ActionDown            // Move the cursor south
	ActionLeft            // Move the cursor west
	ActionRight           // Move the cursor east
	ActionPanUp           // Scroll the view north, cursor stays
	ActionPanDown
	ActionPanLeft
	ActionPanRight
	ActionPromote         // Reveal and grow at the cursor
	ActionFlag            // Toggle a flag at the cursor
	ActionRecenter        // Jump to the most recent reveals
	ActionReset           // New world from a scrambled seed
	ActionNextWorld       // New world from the next seed
	ActionHelp            // Toggle the full help line
	ActionQuit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionPanUp:
		return "PanUp"
	case ActionPanDown:
		return "PanDown"
	case ActionPanLeft:
		return "PanLeft"
	case ActionPanRight:
		return "PanRight"
	case ActionPromote:
		return "Promote"
	case ActionFlag:
		return "Flag"
	case ActionRecenter:
		return "Recenter"
	case ActionReset:
		return "Reset"
	case ActionNextWorld:
		return "NextWorld"
	case ActionHelp:
		return "Help"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame collects the actions triggered between two frames. Movement
// keys can repeat within one frame, so each action carries a count.
type InputFrame struct {
	counts map[Action]int
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{counts: make(map[Action]int)}
}

// Set records one occurrence of an action.
func (f *InputFrame) Set(a Action) {
	if a == ActionNone {
		return
	}
	if f.counts == nil {
		f.counts = make(map[Action]int)
	}
	f.counts[a]++
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	return f.counts[a] > 0
}

// Count returns how many times the action was triggered this frame.
func (f InputFrame) Count(a Action) int {
	return f.counts[a]
}

// Empty reports whether no action was triggered.
func (f InputFrame) Empty() bool {
	return len(f.counts) == 0
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	clear(f.counts)
}
