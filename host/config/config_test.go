package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stopwatch/core"
)

func writeFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sim.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeFile(t, `
period_ms: 500
phase_delay: 1ms
signal_depth: 4
speed: 10
pause:
  edge: falling
  pull: up
  key: x
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, uint32(500), cfg.PeriodMS)
	assert.Equal(t, time.Millisecond, cfg.PhaseDelay)
	assert.Equal(t, uint32(4), cfg.SignalDepth)
	assert.Equal(t, 10.0, cfg.Speed)
	assert.Equal(t, "x", cfg.Pause.Key)
	assert.Equal(t, "r", cfg.Reset.Key, "unset keys keep defaults")

	coreCfg, err := cfg.Core()
	require.NoError(t, err)
	assert.Equal(t, core.TriggerBinding{Edge: core.EdgeFalling, Pull: core.PullUp}, coreCfg.Triggers.Pause)
	assert.Equal(t, core.DefaultTriggerConfig().Reset, coreCfg.Triggers.Reset)
}

func TestLoadMissingDefaultFile(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestValidateRejects(t *testing.T) {
	cases := map[string]func(*Config){
		"speed":       func(c *Config) { c.Speed = 5000 },
		"dup key":     func(c *Config) { c.Pause.Key = "r" },
		"long key":    func(c *Config) { c.QuitKey = "quit" },
		"edge":        func(c *Config) { c.Reset.Edge = "both" },
		"pull":        func(c *Config) { c.Resume.Pull = "sideways" },
		"level":       func(c *Config) { c.LogLevel = "loud" },
		"phase delay": func(c *Config) { c.PhaseDelay = time.Second },
		"period":      func(c *Config) { c.PeriodMS = 2 * 3600 * 1000 },
	}
	for name, mutate := range cases {
		cfg := Default()
		mutate(cfg)
		assert.Error(t, Validate(cfg), name)
	}

	assert.ErrorIs(t, Validate(nil), errConfigIsNotSet)
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.yaml")
	cfg := Default()
	cfg.Speed = 60

	require.NoError(t, Save(path, cfg))
	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}
