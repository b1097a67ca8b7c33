package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "Show the effective key bindings",
	Long:  `Lists every action with the keys bound to it in the effective configuration.`,
	Args:  cobra.NoArgs,
	Run:   runKeys,
}

func runKeys(cmd *cobra.Command, args []string) {
	bindings := loadConfig().Bindings()

	// Calculate column widths
	maxLen := len("Action")
	for _, a := range core.Actions() {
		if len(a.String()) > maxLen {
			maxLen = len(a.String())
		}
	}

	fmt.Printf("  %-*s  %s\n", maxLen, "Action", "Keys")
	fmt.Printf("  %-*s  %s\n", maxLen, "------", "----")

	for _, a := range core.Actions() {
		keys := bindings[a]
		shown := "(unbound)"
		if len(keys) > 0 {
			shown = strings.Join(keys, ", ")
		}
		fmt.Printf("  %-*s  %s\n", maxLen, a, shown)
	}
}
