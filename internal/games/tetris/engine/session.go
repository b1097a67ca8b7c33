package engine

import (
	"io"
	"maps"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// State is the session lifecycle state.
type State int

const (
	StatePlaying State = iota
	StatePaused
	StateGameOver
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// DefaultScoreTable maps rows cleared by one lock to points.
func DefaultScoreTable() map[int]int {
	return map[int]int{1: 100, 2: 300, 3: 500, 4: 800}
}

// Option configures a Session.
type Option func(*Session)

// WithSeed draws pieces from a uniform randomizer seeded with seed.
func WithSeed(seed int64) Option {
	return func(s *Session) {
		s.rnd = NewUniformRandomizer(seed)
	}
}

// WithRandomizer draws pieces from r.
func WithRandomizer(r Randomizer) Option {
	return func(s *Session) {
		s.rnd = r
	}
}

// WithLongTick sets the number of ticks between gravity steps.
func WithLongTick(ticks int) Option {
	return func(s *Session) {
		s.longTick = ticks
	}
}

// WithScoreTable replaces the points awarded per rows cleared.
func WithScoreTable(table map[int]int) Option {
	return func(s *Session) {
		s.scoreTable = maps.Clone(table)
	}
}

// WithLogger sets the logger used for session events.
func WithLogger(l *log.Logger) Option {
	return func(s *Session) {
		s.log = l
	}
}

// Session owns all game state and is the only thing that mutates it.
// It is not safe for concurrent use; a single driver calls Dispatch and Tick.
type Session struct {
	id         string
	log        *log.Logger
	rnd        Randomizer
	scoreTable map[int]int
	longTick   int

	board   Board
	active  Piece
	queue   *Queue
	held    Type
	canHold bool
	gravity Gravity

	tick   uint64
	score  int
	lines  int
	pieces int
	state  State
}

// New creates a session and starts the first game.
func New(opts ...Option) *Session {
	s := &Session{
		id:         uuid.NewString(),
		scoreTable: DefaultScoreTable(),
		longTick:   DefaultLongTick,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rnd == nil {
		s.rnd = NewUniformRandomizer(time.Now().UnixNano())
	}
	if s.log == nil {
		s.log = log.New(io.Discard)
	}
	s.log = s.log.With("session", s.id[:8])

	s.Reset()
	return s
}

// Reset re-initializes the game: empty board, fresh queue, no held piece,
// score zero.
func (s *Session) Reset() {
	s.board = NewBoard()
	s.queue = NewQueue(s.rnd)
	s.held = None
	s.canHold = true
	s.gravity = NewGravity(s.longTick)
	s.tick = 0
	s.score = 0
	s.lines = 0
	s.pieces = 0
	s.state = StatePlaying
	s.spawn(s.queue.Pop())
}

// Step applies a frame of input in dispatch order and then advances one
// tick. Input always lands before gravity within the same tick.
func (s *Session) Step(in core.InputFrame) {
	for _, a := range in.Ordered() {
		s.Dispatch(a)
	}
	s.Tick()
}

// Dispatch applies a single player action. While paused only Resume and
// Restart are honoured; after game over only Restart. Unknown actions are
// ignored.
func (s *Session) Dispatch(a core.Action) {
	if a == core.ActionRestart {
		s.log.Info("restart", "score", s.score, "state", s.state)
		s.Reset()
		return
	}

	switch s.state {
	case StatePaused:
		if a == core.ActionResume {
			s.state = StatePlaying
		}
		return
	case StateGameOver:
		return
	}

	switch a {
	case core.ActionMoveLeft:
		s.shift(-1)
	case core.ActionMoveRight:
		s.shift(1)
	case core.ActionRotateCW:
		s.active = Rotate(s.board, s.active, true)
	case core.ActionRotateCCW:
		s.active = Rotate(s.board, s.active, false)
	case core.ActionSoftDrop:
		s.gravity.Force()
	case core.ActionHardDrop:
		s.active = s.active.Moved(0, s.board.DropDistance(s.active))
		s.gravity.Force()
	case core.ActionHold:
		s.hold()
	case core.ActionPause:
		s.state = StatePaused
	}
}

// Tick advances the gravity timer. When the interval is up the active piece
// falls one row, or locks if it is resting.
func (s *Session) Tick() {
	if s.state != StatePlaying {
		return
	}
	s.tick++
	if !s.gravity.Advance() {
		return
	}
	if down := s.active.Moved(0, 1); s.board.IsLegal(down) {
		s.active = down
	} else {
		s.lock()
	}
	s.gravity.Reset()
}

func (s *Session) shift(dx int) {
	if moved := s.active.Moved(dx, 0); s.board.IsLegal(moved) {
		s.active = moved
	}
}

// spawn places a new active piece at the top. Rotations 0..3 are tried at
// the spawn origin and then one row higher; the first legal placement wins.
// If none fits the game is over.
func (s *Session) spawn(t Type) bool {
	origin := SpawnOrigin(t)
	for _, dy := range [...]int{0, -1} {
		for rot := range 4 {
			p := Piece{Origin: origin.Add(Point{Y: dy}), Type: t, Rotation: rot}
			if s.board.IsLegal(p) {
				s.active = p
				return true
			}
		}
	}

	s.gameOver("blocked spawn")
	return false
}

func (s *Session) gameOver(reason string) {
	s.active = Piece{}
	s.state = StateGameOver
	s.log.Info("game over", "reason", reason, "score", s.score, "lines", s.lines, "pieces", s.pieces)
}

// lock converts the active piece into board cells, scores cleared rows and
// brings in the next piece. Cells in the hidden rows stay on the board and
// can block the next spawn.
func (s *Session) lock() {
	board, cleared := s.board.LockAndClear(s.active)
	s.board = board
	s.pieces++
	if cleared > 0 {
		s.lines += cleared
		s.score += s.scoreTable[cleared]
		s.log.Debug("rows cleared", "rows", cleared, "score", s.score)
	}
	s.canHold = true
	s.spawn(s.queue.Pop())
}

// hold parks the active piece. An empty slot takes the next queued piece;
// otherwise the held and active types swap. Allowed once per lock.
func (s *Session) hold() {
	if !s.canHold {
		return
	}
	current := s.active.Type
	next := s.held
	if next == None {
		next = s.queue.Pop()
	}
	s.held = current
	s.canHold = false
	s.gravity.Reset()
	s.log.Debug("hold", "held", current, "active", next)
	s.spawn(next)
}

// ID returns the session identifier used in logs.
func (s *Session) ID() string { return s.id }

// Board returns a copy of the placed cells.
func (s *Session) Board() Board { return s.board }

// Active returns the falling piece. ok is false after game over.
func (s *Session) Active() (p Piece, ok bool) {
	return s.active, s.active.Type.Valid()
}

// ActiveCells returns the absolute cells of the falling piece.
func (s *Session) ActiveCells() []Point {
	if !s.active.Type.Valid() {
		return nil
	}
	cells := s.active.Cells()
	return cells[:]
}

// GhostCells returns where the falling piece would land on a hard drop.
func (s *Session) GhostCells() []Point {
	if !s.active.Type.Valid() {
		return nil
	}
	cells := s.active.Moved(0, s.board.DropDistance(s.active)).Cells()
	return cells[:]
}

// Held returns the held type, or None.
func (s *Session) Held() Type { return s.held }

// CanHold reports whether a hold is allowed before the next lock.
func (s *Session) CanHold() bool { return s.canHold }

// Queue returns the upcoming types, next first.
func (s *Session) Queue() [QueueSize]Type { return s.queue.Peek() }

// Score returns the accumulated score.
func (s *Session) Score() int { return s.score }

// Lines returns the total rows cleared.
func (s *Session) Lines() int { return s.lines }

// Pieces returns the number of pieces locked.
func (s *Session) Pieces() int { return s.pieces }

// State returns the lifecycle state.
func (s *Session) State() State { return s.state }
