package engine

// DefaultLongTick is the number of ticks between gravity steps.
const DefaultLongTick = 100

// Gravity counts ticks towards the next gravity step.
type Gravity struct {
	ticks    int
	longTick int
}

// NewGravity creates a gravity timer that fires every longTick ticks.
// Non-positive values fall back to DefaultLongTick.
func NewGravity(longTick int) Gravity {
	if longTick <= 0 {
		longTick = DefaultLongTick
	}
	return Gravity{longTick: longTick}
}

// Advance counts one tick and reports whether a gravity step is due.
func (g *Gravity) Advance() bool {
	g.ticks++
	return g.ticks >= g.longTick
}

// Reset restarts the interval.
func (g *Gravity) Reset() {
	g.ticks = 0
}

// Force makes the next Advance fire immediately.
func (g *Gravity) Force() {
	g.ticks = g.longTick
}

// Ticks returns the current counter value.
func (g Gravity) Ticks() int {
	return g.ticks
}

// LongTick returns the gravity interval in ticks.
func (g Gravity) LongTick() int {
	return g.longTick
}
