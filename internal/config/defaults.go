package config

import (
	_ "embed"
)

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

// DefaultTetrisConfig returns the hard-coded configuration.
// It matches defaults/tetris.yaml.
func DefaultTetrisConfig() TetrisConfig {
	return TetrisConfig{
		Timing: TimingConfig{
			TickMS:   10,  // 100 ticks per second
			LongTick: 100, // One row per second
		},
		Scoring: map[int]int{1: 100, 2: 300, 3: 500, 4: 800},
		Keys: map[string][]string{
			"MoveLeft":  {"left", "h"},
			"MoveRight": {"right", "l"},
			"RotateCW":  {"up", "x"},
			"RotateCCW": {"z"},
			"SoftDrop":  {"down", "j"},
			"HardDrop":  {"space"},
			"Hold":      {"c"},
			"Pause":     {"p", "esc"},
			"Resume":    {"enter"},
			"Restart":   {"r"},
			"Quit":      {"q", "ctrl+c"},
		},
		Render: RenderConfig{
			Ghost: true,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultTetrisYAML
}
