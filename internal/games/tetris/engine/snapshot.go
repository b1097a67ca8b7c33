package engine

// Snapshot captures the complete game state for determinism testing and
// rendering. It is comparable with ==.
type Snapshot struct {
	Tick    uint64
	State   State
	Score   int
	Lines   int
	Pieces  int
	Active  Piece
	Held    Type
	CanHold bool
	Queue   [QueueSize]Type
	Gravity int // Ticks counted towards the next gravity step
	Board   Board
}

// Snapshot returns the current game snapshot.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Tick:    s.tick,
		State:   s.state,
		Score:   s.score,
		Lines:   s.lines,
		Pieces:  s.pieces,
		Active:  s.active,
		Held:    s.held,
		CanHold: s.canHold,
		Queue:   s.queue.Peek(),
		Gravity: s.gravity.Ticks(),
		Board:   s.board,
	}
}
