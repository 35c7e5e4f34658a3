package core

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventRingRecordsHandlers(t *testing.T) {
	rig, err := newTestRig(testConfig())
	require.NoError(t, err)

	require.NoError(t, rig.tick())
	rig.pause.Fire()
	rig.reset.Fire()
	rig.resume.Fire()

	var types []uint8
	for _, evt := range Events() {
		types = append(types, evt.Type)
	}
	assert.Equal(t, []uint8{EvtElapsed, EvtAdvance, EvtPause, EvtReset, EvtResume}, types)
}

func TestEventRingWraps(t *testing.T) {
	cfg := testConfig()
	rig, err := newTestRig(cfg)
	require.NoError(t, err)

	for i := 0; i < EventRingSize; i++ {
		require.NoError(t, rig.tick())
	}

	events := Events()
	require.Len(t, events, EventRingSize)
	// Oldest surviving entry is the elapsed tick of the 17th second
	assert.Equal(t, uint8(EvtElapsed), events[0].Type)
	assert.Equal(t, Clock{Seconds: 16}, events[0].Clock)
	assert.Equal(t, Clock{Seconds: EventRingSize}, events[len(events)-1].Clock)
}

func TestTickLostEvent(t *testing.T) {
	rig, err := newTestRig(testConfig())
	require.NoError(t, err)

	rig.timer.Tick()
	rig.timer.Tick()

	events := Events()
	require.Len(t, events, 2)
	assert.Equal(t, uint8(EvtTickLost), events[1].Type)
}

func TestDumpEvents(t *testing.T) {
	var lines []string
	SetDebugWriter(func(s string) { lines = append(lines, s) })
	defer SetDebugWriter(nil)

	rig, err := newTestRig(testConfig())
	require.NoError(t, err)
	require.NoError(t, rig.tick())

	DumpEvents()
	require.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[1], "[EVENTS] ELAPSED"))
	assert.Contains(t, lines[2], "ADVANCE")
	assert.Contains(t, lines[2], "clock=00:00:01")
}

func TestDebugPrintlnGate(t *testing.T) {
	var lines []string
	SetDebugWriter(func(s string) { lines = append(lines, s) })
	defer SetDebugWriter(nil)

	SetDebugEnabled(false)
	DebugPrintln("hidden")
	assert.Empty(t, lines)

	SetDebugEnabled(true)
	defer SetDebugEnabled(false)
	assert.True(t, IsDebugEnabled())
	DebugPrintln("shown")
	assert.Equal(t, []string{"shown"}, lines)
}

func TestUtoa(t *testing.T) {
	assert.Equal(t, "0", Utoa(0))
	assert.Equal(t, "4294967295", Utoa(4294967295))
}
