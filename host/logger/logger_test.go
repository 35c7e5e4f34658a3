package logger

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestParseLogLevel(t *testing.T) {
	cases := map[string]zapcore.Level{
		"debug":  zapcore.DebugLevel,
		" INFO ": zapcore.InfoLevel,
		"warn":   zapcore.WarnLevel,
		"error":  zapcore.ErrorLevel,
	}
	for s, lvl := range cases {
		got, ok := ParseLogLevel(s)
		require.True(t, ok, s)
		require.Equal(t, lvl, got)
	}

	_, ok := ParseLogLevel("verbose")
	require.False(t, ok)
}

func TestContextLogger(t *testing.T) {
	var buf bytes.Buffer
	l := New(zapcore.DebugLevel, &buf)

	ctx := ToContext(context.Background(), l)
	ctx = WithName(ctx, "sim")
	ctx = WithKV(ctx, "period_ms", 1000)

	InfoKV(ctx, "started", "clock", "00:00:00")
	DebugKV(ctx, "tick")

	out := buf.String()
	assert.Contains(t, out, "started")
	assert.Contains(t, out, "sim")
	assert.Contains(t, out, "period_ms")
	assert.Contains(t, out, "tick")
}

func TestFromContextFallsBackToGlobal(t *testing.T) {
	assert.Same(t, Logger(), FromContext(context.Background()))
}
