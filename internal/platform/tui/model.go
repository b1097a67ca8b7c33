package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// footerHeight is the number of rows reserved below the game for help.
const footerHeight = 1

// Game is what the platform needs from a game. Games contain pure logic
// with no Bubble Tea dependency; the platform handles input, timing and
// terminal output.
type Game interface {
	// ID returns a stable identifier, used for screenshot names.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset starts a new game for the given screen and seed.
	Reset(cfg core.RuntimeConfig)

	// Resize reports new screen dimensions without restarting.
	Resize(w, h int)

	// Step advances the simulation by one fixed tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into the screen buffer.
	Render(dst *core.Screen)

	// State returns score, game over and pause flags.
	State() core.GameState
}

// Model is the Bubble Tea model that drives one game.
type Model struct {
	game     Game
	screen   *core.Screen
	config   core.RuntimeConfig
	keys     KeyMap
	help     help.Model
	debounce *core.Debouncer
	log      *log.Logger
	quitting bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game Game, keys KeyMap, cfg core.RuntimeConfig, logger *log.Logger) Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		game:     game,
		screen:   core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-footerHeight, 0)),
		config:   cfg,
		keys:     keys,
		help:     h,
		debounce: core.NewDebouncer(),
		log:      logger,
	}
}

// Init starts the game and the tick loop.
func (m Model) Init() tea.Cmd {
	cfg := m.config
	cfg.ScreenH = m.screen.Height()
	m.game.Reset(cfg)
	m.log.Info("game started", "game", m.game.Title(), "seed", cfg.Seed)

	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey turns a key press into a pending action. Terminals report no
// key-up events, so every message is a fresh press.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+s":
		m.saveScreenshot()
		return m, nil
	case "?":
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}
	if action == core.ActionNone {
		return m, nil
	}

	// The pause key toggles.
	if action == core.ActionPause && m.game.State().Paused {
		action = core.ActionResume
	}
	m.debounce.KeyDown(action, false)

	return m, nil
}

// handleResize processes window resize events. The session is kept.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	h := max(msg.Height-footerHeight, 0)
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, h)
	m.game.Resize(msg.Width, h)
	m.help.Width = msg.Width

	return m, nil
}

// handleTick feeds the debounced input to the game and advances one tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	before := m.game.State()
	result := m.game.Step(m.debounce.Consume())

	if result.State.GameOver && !before.GameOver {
		m.log.Info("game over", "score", result.State.Score)
	}

	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.log.Warn("screenshot skipped", "err", err)
		return
	}
	dir := filepath.Join(home, ".tetris", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.log.Warn("screenshot skipped", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.log.Warn("screenshot failed", "path", path, "err", err)
		return
	}
	m.log.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Run starts the Bubble Tea program with the given game.
func Run(game Game, keys KeyMap, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(game, keys, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
