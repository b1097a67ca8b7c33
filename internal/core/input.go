package core

// Action represents a semantic game action, abstracted from physical key presses.
// Games work with these intents and never see raw key events.
//
// The declaration order is also the dispatch order: when several actions are
// pending in the same tick they are applied from the lowest value upwards.
type Action int

const (
	ActionNone      Action = iota
	ActionMoveLeft         // Left, h - shift piece one column left
	ActionMoveRight        // Right, l - shift piece one column right
	ActionRotateCW         // Up, x - rotate clockwise
	ActionRotateCCW        // z - rotate counter-clockwise
	ActionSoftDrop         // Down, j - fall one row now (or lock if resting)
	ActionHardDrop         // Space - drop to the floor and lock
	ActionHold             // c - swap with the held piece
	ActionPause            // p - pause the session
	ActionResume           // p - resume a paused session
	ActionRestart          // r - start a new session
	ActionQuit             // q, Ctrl+C - exit (platform only)

	actionCount
)

// Actions lists every real action in dispatch order.
func Actions() []Action {
	out := make([]Action, 0, actionCount-1)
	for a := ActionNone + 1; a < actionCount; a++ {
		out = append(out, a)
	}
	return out
}

// Valid reports whether a is a known action other than ActionNone.
func (a Action) Valid() bool {
	return a > ActionNone && a < actionCount
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionMoveLeft:
		return "MoveLeft"
	case ActionMoveRight:
		return "MoveRight"
	case ActionRotateCW:
		return "RotateCW"
	case ActionRotateCCW:
		return "RotateCCW"
	case ActionSoftDrop:
		return "SoftDrop"
	case ActionHardDrop:
		return "HardDrop"
	case ActionHold:
		return "Hold"
	case ActionPause:
		return "Pause"
	case ActionResume:
		return "Resume"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// ParseAction is the inverse of String. Matching is exact.
func ParseAction(name string) (Action, bool) {
	for _, a := range Actions() {
		if a.String() == name {
			return a, true
		}
	}
	return ActionNone, false
}

// InputFrame represents the input state for a single simulation tick.
// It contains all actions that were triggered during this frame.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
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

// Ordered returns the triggered actions in dispatch order.
func (f InputFrame) Ordered() []Action {
	var out []Action
	for a := ActionNone + 1; a < actionCount; a++ {
		if f.Has(a) {
			out = append(out, a)
		}
	}
	return out
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}
