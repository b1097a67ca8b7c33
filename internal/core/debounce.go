package core

// KeyState is the lifecycle of a single tracked action key.
type KeyState uint8

const (
	KeyNotPressed KeyState = iota // released, nothing pending
	KeyPressed                    // down, waiting to be consumed by a tick
	KeyDone                       // down, already consumed
)

// String returns the state name.
func (s KeyState) String() string {
	switch s {
	case KeyNotPressed:
		return "NotPressed"
	case KeyPressed:
		return "Pressed"
	case KeyDone:
		return "Done"
	default:
		return "Unknown"
	}
}

// Debouncer turns raw key-down/key-up transitions into discrete actions.
//
// A physical press yields exactly one action. Holding a key relies on the
// platform's own auto-repeat to re-arm a consumed key, so repeats are paced
// by the OS rather than by the tick rate.
type Debouncer struct {
	states [actionCount]KeyState
}

// NewDebouncer creates a debouncer with every key released.
func NewDebouncer() *Debouncer {
	return &Debouncer{}
}

// KeyDown records a key-down event. repeat marks a platform auto-repeat.
// A repeat only re-arms a key whose previous press was already consumed.
func (d *Debouncer) KeyDown(a Action, repeat bool) {
	if !a.Valid() {
		return
	}
	if !repeat || d.states[a] == KeyDone {
		d.states[a] = KeyPressed
	}
}

// KeyUp records a key-up event.
func (d *Debouncer) KeyUp(a Action) {
	if !a.Valid() {
		return
	}
	d.states[a] = KeyNotPressed
}

// State returns the lifecycle state of a key.
func (d *Debouncer) State(a Action) KeyState {
	if !a.Valid() {
		return KeyNotPressed
	}
	return d.states[a]
}

// Consume collects every pressed key into a frame, in dispatch order, and
// marks those keys done.
func (d *Debouncer) Consume() InputFrame {
	frame := NewInputFrame()
	for a := ActionNone + 1; a < actionCount; a++ {
		if d.states[a] == KeyPressed {
			frame.Set(a)
			d.states[a] = KeyDone
		}
	}
	return frame
}

// Reset releases every key.
func (d *Debouncer) Reset() {
	d.states = [actionCount]KeyState{}
}
