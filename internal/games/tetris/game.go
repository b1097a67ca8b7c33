// Package tetris adapts the falling-block engine to the platform game
// contract: it owns one engine.Session, forwards input frames to it and draws
// its state into a core.Screen.
package tetris

import (
	"maps"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris/engine"
)

// Config holds the tunables the game passes to each new session.
type Config struct {
	LongTick   int         // Ticks between gravity steps
	ScoreTable map[int]int // Points per rows cleared by one lock
	Ghost      bool        // Draw the landing projection
	Logger     *log.Logger // Session event log, nil discards
}

// DefaultConfig returns the stock rules with the ghost enabled.
func DefaultConfig() Config {
	return Config{
		LongTick:   engine.DefaultLongTick,
		ScoreTable: engine.DefaultScoreTable(),
		Ghost:      true,
	}
}

// Game implements the platform game contract on top of engine.Session.
type Game struct {
	cfg     Config
	session *engine.Session

	// Screen dimensions
	screenW  int
	screenH  int
	tooSmall bool
}

// New creates a game. Reset must be called before Step or Render.
func New(cfg Config) *Game {
	cfg.ScoreTable = maps.Clone(cfg.ScoreTable)
	return &Game{cfg: cfg}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "tetris"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Tetris"
}

// Reset starts a fresh session. A zero seed lets the engine pick one.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	opts := []engine.Option{engine.WithLongTick(g.cfg.LongTick)}
	if cfg.Seed != 0 {
		opts = append(opts, engine.WithSeed(cfg.Seed))
	}
	if g.cfg.ScoreTable != nil {
		opts = append(opts, engine.WithScoreTable(g.cfg.ScoreTable))
	}
	if g.cfg.Logger != nil {
		opts = append(opts, engine.WithLogger(g.cfg.Logger))
	}
	g.session = engine.New(opts...)
	g.Resize(cfg.ScreenW, cfg.ScreenH)
}

// Resize records new screen dimensions without touching the session.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.tooSmall = w < minWidth || h < minHeight
}

// Step advances the session by one tick. The session is frozen while the
// screen is too small to show the board.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if !g.tooSmall {
		g.session.Step(in)
	}
	return core.StepResult{State: g.State()}
}

// State returns the platform view of the session.
func (g *Game) State() core.GameState {
	if g.session == nil {
		return core.GameState{}
	}
	st := g.session.State()
	return core.GameState{
		Score:    g.session.Score(),
		GameOver: st == engine.StateGameOver,
		Paused:   st == engine.StatePaused,
	}
}

// Session exposes the underlying engine session for queries.
func (g *Game) Session() *engine.Session {
	return g.session
}

// Snapshot returns the session snapshot for determinism checks.
func (g *Game) Snapshot() engine.Snapshot {
	return g.session.Snapshot()
}
