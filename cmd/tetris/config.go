package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/config"
)

var flagDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration as YAML",
	Long: `Prints the configuration the game would run with, after applying the
search order: --config, ~/.tetris/configs/tetris.yaml, ./configs/tetris.yaml,
then the built-in defaults.

With --defaults the commented built-in file is printed instead, which is a
good starting point for a custom config.

Examples:
  tetris config
  tetris config --defaults > ~/.tetris/configs/tetris.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in default file")
}

func runConfig(cmd *cobra.Command, args []string) {
	if flagDefaults {
		if _, err := os.Stdout.Write(config.DefaultYAML()); err != nil {
			fail("%v", err)
		}
		return
	}

	data, err := config.Marshal(loadConfig())
	if err != nil {
		fail("encoding config: %v", err)
	}
	if _, err := os.Stdout.Write(data); err != nil {
		fail("%v", err)
	}
}
