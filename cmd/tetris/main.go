// tetris is a falling-block puzzle game for the terminal.
//
// Usage:
//
//	tetris                   - Play (same as "tetris play")
//	tetris play              - Play the game
//	tetris keys              - Show the effective key bindings
//	tetris config            - Print the effective configuration as YAML
//	tetris sim               - Run a headless seeded simulation
//
// Global flags:
//
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--config <path>      - Path to a custom config YAML
//	--log-file <path>    - Write logs to a file (default: discarded)
//	--log-level <level>  - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
)

var (
	// Global flags
	flagSeed     int64
	flagConfig   string
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tetris",
	Short: "Falling-block puzzle game for your terminal",
	Long: `A falling-block puzzle game played in the terminal.

Available commands:
  play     - Play the game (default)
  keys     - Show key bindings
  config   - Print the effective configuration
  sim      - Run a headless simulation

Examples:
  tetris
  tetris play --seed 42
  tetris play --config ./my-tetris.yaml --log-file tetris.log
  tetris sim --ticks 5000 --seed 1`,
	Run: runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(keysCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(simCmd)
}

// fail prints an error and exits.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

// newLogger builds the process logger. Output goes to --log-file when set,
// otherwise to fallback. The returned closer releases the file.
func newLogger(fallback io.Writer) (*log.Logger, func() error, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid log level %q: %w", flagLogLevel, err)
	}

	out := fallback
	closer := func() error { return nil }
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file %s: %w", flagLogFile, err)
		}
		out = f
		closer = f.Close
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "tetris",
		Level:           level,
	})
	return logger, closer, nil
}

// loadConfig loads and validates the configuration named by --config.
func loadConfig() config.TetrisConfig {
	cfg, err := config.LoadTetris(flagConfig)
	if err != nil {
		fail("%v", err)
	}
	return cfg
}

// gameConfig maps the file configuration onto the game.
func gameConfig(cfg config.TetrisConfig, logger *log.Logger) tetris.Config {
	return tetris.Config{
		LongTick:   cfg.Timing.LongTick,
		ScoreTable: cfg.Scoring,
		Ghost:      cfg.Render.Ghost,
		Logger:     logger,
	}
}
