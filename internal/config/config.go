// Package config provides YAML-based configuration loading for the game:
// timing, scoring, key bindings and rendering options.
package config

import (
	"errors"
	"fmt"
	"sort"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// TetrisConfig contains all configuration for the game.
type TetrisConfig struct {
	Timing  TimingConfig        `yaml:"timing"`
	Scoring map[int]int         `yaml:"scoring"`
	Keys    map[string][]string `yaml:"keys"`
	Render  RenderConfig        `yaml:"render"`
}

// TimingConfig defines the time base.
type TimingConfig struct {
	TickMS   int `yaml:"tick_ms"`   // Milliseconds per simulation tick
	LongTick int `yaml:"long_tick"` // Ticks between gravity steps
}

// RenderConfig defines presentation options.
type RenderConfig struct {
	Ghost bool `yaml:"ghost"` // Draw the landing projection of the active piece
}

// TickRate returns the number of simulation ticks per second.
func (c TetrisConfig) TickRate() int {
	if c.Timing.TickMS <= 0 {
		return 0
	}
	rate := 1000 / c.Timing.TickMS
	if rate < 1 {
		rate = 1
	}
	return rate
}

// Bindings resolves the key map into actions.
// Unknown action names are skipped; Validate reports them.
func (c TetrisConfig) Bindings() map[core.Action][]string {
	out := make(map[core.Action][]string, len(c.Keys))
	for name, keys := range c.Keys {
		a, ok := core.ParseAction(name)
		if !ok {
			continue
		}
		out[a] = append([]string(nil), keys...)
	}
	return out
}

// Validate checks the configuration for values the game cannot run with.
func (c TetrisConfig) Validate() error {
	var errs []error

	if c.Timing.TickMS <= 0 {
		errs = append(errs, fmt.Errorf("timing.tick_ms must be positive, got %d", c.Timing.TickMS))
	}
	if c.Timing.LongTick <= 0 {
		errs = append(errs, fmt.Errorf("timing.long_tick must be positive, got %d", c.Timing.LongTick))
	}

	for rows, points := range c.Scoring {
		if rows < 1 || rows > 4 {
			errs = append(errs, fmt.Errorf("scoring: rows must be between 1 and 4, got %d", rows))
		}
		if points < 0 {
			errs = append(errs, fmt.Errorf("scoring[%d] must not be negative, got %d", rows, points))
		}
	}

	// Sorted so the report is stable.
	names := make([]string, 0, len(c.Keys))
	for name := range c.Keys {
		names = append(names, name)
	}
	sort.Strings(names)

	owner := make(map[string]string)
	for _, name := range names {
		if _, ok := core.ParseAction(name); !ok {
			errs = append(errs, fmt.Errorf("keys: unknown action %q", name))
			continue
		}
		for _, k := range c.Keys[name] {
			if k == "" {
				errs = append(errs, fmt.Errorf("keys.%s: empty key", name))
				continue
			}
			if prev, ok := owner[k]; ok && prev != name {
				errs = append(errs, fmt.Errorf("keys: %q bound to both %s and %s", k, prev, name))
				continue
			}
			owner[k] = name
		}
	}

	return errors.Join(errs...)
}
