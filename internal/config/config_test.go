package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestDefaultConfigIsValid(t *testing.T) {
	assert.NoError(t, DefaultTetrisConfig().Validate())
}

func TestEmbeddedMatchesHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	require.NoError(t, err)
	assert.Equal(t, DefaultTetrisConfig(), cfg)
}

func TestLoadCustomPathOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	writeFile(t, path, "timing:\n  long_tick: 50\nscoring:\n  4: 1200\nrender:\n  ghost: false\n")

	cfg, err := LoadTetris(path)
	require.NoError(t, err)

	assert.Equal(t, 50, cfg.Timing.LongTick)
	assert.Equal(t, 10, cfg.Timing.TickMS)
	assert.Equal(t, 1200, cfg.Scoring[4])
	assert.Equal(t, 100, cfg.Scoring[1])
	assert.False(t, cfg.Render.Ghost)
	assert.Equal(t, []string{"space"}, cfg.Keys["HardDrop"])
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadTetris(filepath.Join(dir, "missing.yaml"))
	assert.ErrorContains(t, err, "failed to read config")

	bad := filepath.Join(dir, "bad.yaml")
	writeFile(t, bad, "timing: [1, 2\n")
	_, err = LoadTetris(bad)
	assert.ErrorContains(t, err, "failed to parse config")

	invalid := filepath.Join(dir, "invalid.yaml")
	writeFile(t, invalid, "timing:\n  tick_ms: 0\n")
	_, err = LoadTetris(invalid)
	assert.ErrorContains(t, err, "tick_ms must be positive")
}

func TestLoadSearchOrder(t *testing.T) {
	home := t.TempDir()
	work := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(work)

	cfg, err := LoadTetris("")
	require.NoError(t, err)
	assert.Equal(t, DefaultTetrisConfig(), cfg, "no files: embedded default")

	writeFile(t, filepath.Join(work, "configs", "tetris.yaml"), "timing:\n  long_tick: 30\n")
	cfg, err = LoadTetris("")
	require.NoError(t, err)
	assert.Equal(t, 30, cfg.Timing.LongTick, "local configs directory")

	writeFile(t, filepath.Join(home, ".tetris", "configs", "tetris.yaml"), "timing:\n  long_tick: 20\n")
	cfg, err = LoadTetris("")
	require.NoError(t, err)
	assert.Equal(t, 20, cfg.Timing.LongTick, "user config wins over local")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*TetrisConfig)
		want   string
	}{
		{"zero tick", func(c *TetrisConfig) { c.Timing.TickMS = 0 }, "tick_ms"},
		{"negative long tick", func(c *TetrisConfig) { c.Timing.LongTick = -1 }, "long_tick"},
		{"negative score", func(c *TetrisConfig) { c.Scoring[2] = -5 }, "scoring[2]"},
		{"five rows", func(c *TetrisConfig) { c.Scoring[5] = 10 }, "between 1 and 4"},
		{"unknown action", func(c *TetrisConfig) { c.Keys["Jump"] = []string{"w"} }, `unknown action "Jump"`},
		{"empty key", func(c *TetrisConfig) { c.Keys["Hold"] = []string{""} }, "empty key"},
		{"duplicate key", func(c *TetrisConfig) { c.Keys["Hold"] = []string{"left"} }, `"left" bound to both`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultTetrisConfig()
			tt.mutate(&cfg)
			assert.ErrorContains(t, cfg.Validate(), tt.want)
		})
	}
}

func TestValidateJoinsErrors(t *testing.T) {
	cfg := DefaultTetrisConfig()
	cfg.Timing.TickMS = 0
	cfg.Timing.LongTick = 0

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tick_ms")
	assert.Contains(t, err.Error(), "long_tick")
}

func TestOverrideConflictsWithDefaultBinding(t *testing.T) {
	_, err := Parse([]byte("keys:\n  HardDrop: [enter]\n"))
	assert.ErrorContains(t, err, `"enter" bound to both`)

	cfg, err := Parse([]byte("keys:\n  HardDrop: [enter]\n  Resume: [p]\n  Pause: [esc]\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"enter"}, cfg.Keys["HardDrop"])
}

func TestTickRate(t *testing.T) {
	cfg := DefaultTetrisConfig()
	assert.Equal(t, 100, cfg.TickRate())

	cfg.Timing.TickMS = 2000
	assert.Equal(t, 1, cfg.TickRate())

	cfg.Timing.TickMS = 0
	assert.Equal(t, 0, cfg.TickRate())
}

func TestBindings(t *testing.T) {
	cfg := DefaultTetrisConfig()
	cfg.Keys["Bogus"] = []string{"b"}

	b := cfg.Bindings()
	assert.Equal(t, []string{"left", "h"}, b[core.ActionMoveLeft])
	assert.Len(t, b, len(core.Actions()))
}

func TestMarshalIsLoadable(t *testing.T) {
	data, err := Marshal(DefaultTetrisConfig())
	require.NoError(t, err)

	cfg, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, DefaultTetrisConfig(), cfg)
}
