package tetris

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris/engine"
)

func newGame(t *testing.T, cfg Config, w, h int) *Game {
	t.Helper()
	g := New(cfg)
	g.Reset(core.RuntimeConfig{ScreenW: w, ScreenH: h, TickRate: 100, Seed: 42})
	return g
}

func frame(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

// scripted returns the input for tick i of a fixed pseudo-random script.
func scripted(i int) core.InputFrame {
	moves := []core.Action{
		core.ActionMoveLeft, core.ActionRotateCW, core.ActionMoveRight,
		core.ActionSoftDrop, core.ActionRotateCCW, core.ActionHold, core.ActionHardDrop,
	}
	if i%7 != 0 {
		return core.NewInputFrame()
	}
	return frame(moves[(i/7)%len(moves)])
}

func TestDeterminism(t *testing.T) {
	g1 := newGame(t, DefaultConfig(), 80, 24)
	g2 := newGame(t, DefaultConfig(), 80, 24)

	for i := range 2000 {
		g1.Step(scripted(i))
		g2.Step(scripted(i))
	}

	if g1.Snapshot() != g2.Snapshot() {
		t.Errorf("snapshots diverged:\n%+v\n%+v", g1.Snapshot(), g2.Snapshot())
	}
	if g1.Snapshot().Pieces == 0 {
		t.Error("script locked no pieces")
	}
}

func TestIDAndTitle(t *testing.T) {
	g := New(DefaultConfig())
	if g.ID() != "tetris" {
		t.Errorf("ID() = %q, expected %q", g.ID(), "tetris")
	}
	if g.Title() != "Tetris" {
		t.Errorf("Title() = %q, expected %q", g.Title(), "Tetris")
	}
}

func TestStateMapping(t *testing.T) {
	g := newGame(t, DefaultConfig(), 80, 24)

	res := g.Step(frame(core.ActionPause))
	if !res.State.Paused || res.State.GameOver {
		t.Errorf("after Pause state = %+v, expected paused", res.State)
	}

	res = g.Step(frame(core.ActionResume))
	if res.State.Paused {
		t.Errorf("after Resume state = %+v, expected playing", res.State)
	}
}

func TestTooSmallFreezesSession(t *testing.T) {
	g := newGame(t, DefaultConfig(), 20, 10)
	before := g.Snapshot()

	for range 500 {
		g.Step(frame(core.ActionHardDrop))
	}
	if g.Snapshot() != before {
		t.Error("session advanced while the screen was too small")
	}

	screen := core.NewScreen(20, 10)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Window too small") {
		t.Errorf("expected too-small message, got:\n%s", screen.String())
	}

	g.Resize(80, 24)
	g.Step(core.NewInputFrame())
	if g.Snapshot().Tick != before.Tick+1 {
		t.Errorf("Tick = %d, expected %d after resize", g.Snapshot().Tick, before.Tick+1)
	}
}

func TestResizeKeepsSession(t *testing.T) {
	g := newGame(t, DefaultConfig(), 80, 24)
	g.Step(frame(core.ActionMoveLeft))
	s := g.Session()
	before := g.Snapshot()

	g.Resize(100, 40)

	if g.Session() != s || g.Snapshot() != before {
		t.Error("Resize replaced or modified the session")
	}
}

// boardRunes counts r inside the well of an 80-column screen.
func boardRunes(screen *core.Screen, r rune) int {
	x0 := (80-minWidth)/2 + panelW + gap + 1
	n := 0
	for y := 2; y < 2+engine.Height; y++ {
		for x := x0; x < x0+engine.Width*cellWidth; x++ {
			if screen.Get(x, y) == r {
				n++
			}
		}
	}
	return n
}

func TestRenderLayout(t *testing.T) {
	g := newGame(t, DefaultConfig(), 80, 24)
	screen := core.NewScreen(80, 24)
	g.Render(screen)

	out := screen.String()
	for _, want := range []string{"TETRIS", "HOLD", "NEXT", "SCORE", "LINES", "PIECES"} {
		if !strings.Contains(out, want) {
			t.Errorf("screen missing %q", want)
		}
	}

	if n := boardRunes(screen, '█'); n != 4*cellWidth {
		t.Errorf("active piece runes = %d, expected %d", n, 4*cellWidth)
	}
	if n := boardRunes(screen, '░'); n != 4*cellWidth {
		t.Errorf("ghost runes = %d, expected %d", n, 4*cellWidth)
	}
}

func TestRenderActiveColor(t *testing.T) {
	g := newGame(t, DefaultConfig(), 80, 24)
	screen := core.NewScreen(80, 24)
	g.Render(screen)

	p, ok := g.Session().Active()
	if !ok {
		t.Fatal("no active piece")
	}
	x0 := (80-minWidth)/2 + panelW + gap
	for _, c := range g.Session().ActiveCells() {
		if c.Y < 0 {
			continue
		}
		cell := screen.GetCell(x0+1+c.X*cellWidth, 2+c.Y)
		if cell.Color != ColorOf(p.Type) {
			t.Errorf("cell %v color = %v, expected %v", c, cell.Color, ColorOf(p.Type))
		}
	}
}

func TestRenderWithoutGhost(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Ghost = false
	g := newGame(t, cfg, 80, 24)
	screen := core.NewScreen(80, 24)
	g.Render(screen)

	if n := boardRunes(screen, '░'); n != 0 {
		t.Errorf("ghost runes = %d, expected 0", n)
	}
}

func TestRenderOverlays(t *testing.T) {
	g := newGame(t, DefaultConfig(), 80, 24)
	screen := core.NewScreen(80, 24)

	g.Step(frame(core.ActionPause))
	g.Render(screen)
	if !strings.Contains(screen.String(), "PAUSED") {
		t.Error("expected PAUSED overlay")
	}
	// Key names come from the configurable bindings shown in the help bar.
	if strings.Contains(screen.String(), "Press ") {
		t.Error("pause overlay names a fixed key")
	}

	g.Step(frame(core.ActionResume))
	for i := 0; i < 200 && !g.State().GameOver; i++ {
		g.Step(frame(core.ActionHardDrop))
	}
	if !g.State().GameOver {
		t.Fatal("stacking hard drops never ended the game")
	}
	g.Render(screen)
	if !strings.Contains(screen.String(), "GAME OVER") {
		t.Error("expected GAME OVER overlay")
	}
	if !strings.Contains(screen.String(), "Restart to play again") {
		t.Error("expected restart hint on GAME OVER overlay")
	}
	if strings.Contains(screen.String(), "Press ") {
		t.Error("game over overlay names a fixed key")
	}
}

func TestColorOf(t *testing.T) {
	seen := make(map[core.Color]engine.Type)
	for _, typ := range engine.Types {
		c := ColorOf(typ)
		if c == core.ColorDefault {
			t.Errorf("ColorOf(%v) is the default color", typ)
		}
		if prev, ok := seen[c]; ok {
			t.Errorf("ColorOf(%v) = ColorOf(%v)", typ, prev)
		}
		seen[c] = typ
	}
	if ColorOf(engine.Type(99)) != core.ColorDefault {
		t.Error("unknown type should map to the default color")
	}
}
