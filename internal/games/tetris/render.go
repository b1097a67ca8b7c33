package tetris

import (
	"fmt"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris/engine"
)

const (
	cellWidth = 2 // Terminal columns per board cell
	panelW    = 10
	gap       = 1

	boardW = engine.Width*cellWidth + 2 // +2 for borders
	boardH = engine.Height + 2

	holdH = 4
	nextH = engine.QueueSize*3 + 1

	minWidth  = panelW*2 + gap*2 + boardW
	minHeight = boardH + 1 // +1 for the title row
)

// pieceColors maps piece types to screen colors.
var pieceColors = [...]core.Color{
	engine.None: core.ColorDefault,
	engine.I:    core.ColorCyan,
	engine.J:    core.ColorBlue,
	engine.L:    core.ColorOrange,
	engine.O:    core.ColorYellow,
	engine.S:    core.ColorGreen,
	engine.T:    core.ColorMagenta,
	engine.Z:    core.ColorRed,
}

// ColorOf returns the screen color of a piece type.
func ColorOf(t engine.Type) core.Color {
	if int(t) >= len(pieceColors) {
		return core.ColorDefault
	}
	return pieceColors[t]
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	left := core.Clamp((g.screenW-minWidth)/2, 0, g.screenW)
	boardX := left + panelW + gap
	rightX := boardX + boardW + gap
	top := 1

	dst.DrawText(boardX+(boardW-len("TETRIS"))/2, 0, "TETRIS")

	g.renderBoard(dst, boardX, top)
	g.renderHold(dst, left, top)
	g.renderStats(dst, left, top+holdH+1)
	g.renderNext(dst, rightX, top)
	g.renderOverlays(dst, boardX+boardW/2, top+boardH/2)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need %dx%d", minWidth, minHeight))
}

// renderBoard draws the well, the settled cells, the ghost and the active piece.
func (g *Game) renderBoard(dst *core.Screen, x0, y0 int) {
	s := g.session
	dst.DrawBox(core.NewRect(x0, y0, boardW, boardH))

	board := s.Board()
	for y := range engine.Height {
		for x := range engine.Width {
			if t := board.At(x, y); t != engine.None {
				drawCell(dst, x0, y0, x, y, '█', ColorOf(t))
				continue
			}
			dst.SetColored(x0+1+x*cellWidth+1, y0+1+y, '.', core.ColorGray)
		}
	}

	if g.cfg.Ghost {
		for _, c := range s.GhostCells() {
			drawCell(dst, x0, y0, c.X, c.Y, '░', core.ColorGray)
		}
	}

	if p, ok := s.Active(); ok {
		for _, c := range s.ActiveCells() {
			drawCell(dst, x0, y0, c.X, c.Y, '█', ColorOf(p.Type))
		}
	}
}

// well is the board area in cell coordinates.
var well = core.NewRect(0, 0, engine.Width, engine.Height)

// drawCell fills one board cell. Cells above the well are not drawn.
func drawCell(dst *core.Screen, x0, y0, x, y int, r rune, c core.Color) {
	if !well.Contains(x, y) {
		return
	}
	px := x0 + 1 + x*cellWidth
	py := y0 + 1 + y
	for i := range cellWidth {
		dst.SetColored(px+i, py, r, c)
	}
}

// renderHold draws the hold slot. A held piece that cannot be swapped yet is
// greyed out.
func (g *Game) renderHold(dst *core.Screen, x0, y0 int) {
	dst.DrawBox(core.NewRect(x0, y0, panelW, holdH))
	dst.DrawText(x0+2, y0, "HOLD")

	held := g.session.Held()
	if held == engine.None {
		return
	}
	color := ColorOf(held)
	if !g.session.CanHold() {
		color = core.ColorGray
	}
	drawPreview(dst, x0+1, y0+1, held, color)
}

// renderNext draws the queue, nearest piece first.
func (g *Game) renderNext(dst *core.Screen, x0, y0 int) {
	dst.DrawBox(core.NewRect(x0, y0, panelW, nextH))
	dst.DrawText(x0+2, y0, "NEXT")

	for i, t := range g.session.Queue() {
		drawPreview(dst, x0+1, y0+1+i*3, t, ColorOf(t))
	}
}

// drawPreview draws a piece in its spawn rotation inside a 2-row slot.
func drawPreview(dst *core.Screen, x0, y0 int, t engine.Type, c core.Color) {
	offs := engine.Offsets(t, 0)
	minX, minY, maxX := offs[0].X, offs[0].Y, offs[0].X
	for _, o := range offs[1:] {
		minX = min(minX, o.X)
		minY = min(minY, o.Y)
		maxX = max(maxX, o.X)
	}

	width := (maxX - minX + 1) * cellWidth
	pad := (panelW - 2 - width) / 2
	for _, o := range offs {
		px := x0 + pad + (o.X-minX)*cellWidth
		py := y0 + (o.Y - minY)
		for i := range cellWidth {
			dst.SetColored(px+i, py, '█', c)
		}
	}
}

// renderStats draws score, lines and pieces below the hold slot.
func (g *Game) renderStats(dst *core.Screen, x0, y0 int) {
	s := g.session
	rows := []struct {
		label string
		value int
	}{
		{"SCORE", s.Score()},
		{"LINES", s.Lines()},
		{"PIECES", s.Pieces()},
	}
	for i, r := range rows {
		dst.DrawText(x0, y0+i*3, r.label)
		dst.DrawText(x0, y0+i*3+1, fmt.Sprintf("%d", r.value))
	}
}

// renderOverlays draws game state overlays.
func (g *Game) renderOverlays(dst *core.Screen, centerX, centerY int) {
	switch g.session.State() {
	case engine.StatePaused:
		drawOverlay(dst, centerX, centerY, "PAUSED", "Resume to continue")
	case engine.StateGameOver:
		drawOverlay(dst, centerX, centerY, "GAME OVER", fmt.Sprintf("Score: %d", g.session.Score()), "Restart to play again")
	}
}

// drawOverlay draws a centered text overlay.
func drawOverlay(dst *core.Screen, centerX, centerY int, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		if len(line) > maxLen {
			maxLen = len(line)
		}
	}

	boxW := maxLen + 4
	boxH := len(lines) + 2
	boxX := centerX - boxW/2
	boxY := centerY - boxH/2

	// Clear area behind overlay
	for y := boxY; y < boxY+boxH; y++ {
		for x := boxX; x < boxX+boxW; x++ {
			dst.Set(x, y, ' ')
		}
	}

	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))
	for i, line := range lines {
		dst.DrawText(centerX-len(line)/2, boxY+1+i, line)
	}
}
