package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start a game in the terminal.

Default controls:
  Left/H, Right/L  - Move
  Up/X, Z          - Rotate clockwise, counter-clockwise
  Down/J           - Soft drop
  Space            - Hard drop
  C                - Hold
  P/Esc            - Pause (P again or Enter to resume)
  R                - Restart
  Q/Ctrl+C         - Quit
  ?                - Toggle full help
  Ctrl+S           - Save a screenshot to ~/.tetris/screenshots

Key bindings, timing and scoring are read from the config file. Run
'tetris config' to see the effective values.

Examples:
  tetris play
  tetris play --seed 42
  tetris play --config ./my-tetris.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg := loadConfig()

	// The TUI owns the terminal, so logs are dropped unless --log-file is set.
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		fail("%v", err)
	}

	rc := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rc.ScreenW = w
		rc.ScreenH = h
	}
	rc.TickRate = cfg.TickRate()
	rc.Seed = flagSeed

	game := tetris.New(gameConfig(cfg, logger))
	keys := tui.NewKeyMap(cfg.Bindings())

	runErr := tui.Run(game, keys, rc, logger)

	//nolint:errcheck // Best-effort close, the game is over
	closeLog()

	if runErr != nil {
		fail("running game: %v", runErr)
	}
}
