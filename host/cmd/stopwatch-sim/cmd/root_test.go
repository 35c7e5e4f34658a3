package cmd

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stopwatch/host/config"
)

func TestApplyFlags(t *testing.T) {
	require.NoError(t, rootCmd.Flags().Parse([]string{"--speed", "30", "--phase-delay", "1ms", "--debug"}))

	cfg := config.Default()
	applyFlags(rootCmd, cfg)

	assert.Equal(t, 30.0, cfg.Speed)
	assert.Equal(t, time.Millisecond, cfg.PhaseDelay)
	assert.True(t, cfg.Debug)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, uint32(1000), cfg.PeriodMS, "unset flags keep file values")
}

func TestInitConfigWritesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sim.yaml")
	require.NoError(t, initConfigCmd.RunE(initConfigCmd, []string{path}))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}
