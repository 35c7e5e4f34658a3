package sim

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stopwatch/core"
	"stopwatch/host/config"
)

func fastConfig() *config.Config {
	cfg := config.Default()
	cfg.PhaseDelay = 0
	cfg.Speed = 200
	cfg.SignalDepth = 8
	return cfg
}

func TestRunPauseThenQuit(t *testing.T) {
	var out bytes.Buffer
	res, err := Run(context.Background(), Options{
		Config: fastConfig(),
		In:     strings.NewReader("pq"),
		Out:    &out,
	})
	require.NoError(t, err)

	assert.Equal(t, core.Paused, res.State)
	assert.Equal(t, uint32(1), res.Stats.Pauses)
	assert.Contains(t, out.String(), "00:00:00")
}

func TestRunForDuration(t *testing.T) {
	var out bytes.Buffer
	res, err := Run(context.Background(), Options{
		Config:   fastConfig(),
		In:       strings.NewReader(""),
		Out:      &out,
		Duration: 100 * time.Millisecond,
	})
	require.NoError(t, err)

	assert.Equal(t, core.Running, res.State)
	assert.True(t, res.Clock.Valid())
	assert.GreaterOrEqual(t, res.Clock.TotalSeconds(), uint32(1))
	assert.Equal(t, res.Stats.Advanced, res.Clock.TotalSeconds())
	assert.Positive(t, res.Stats.Refreshes)
}

func TestRunRejectsInvalidConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Speed = -3

	_, err := Run(context.Background(), Options{Config: cfg, In: strings.NewReader(""), Out: &bytes.Buffer{}})
	assert.Error(t, err)
}
