package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sampleClocks covers field boundaries without walking the whole day
func sampleClocks() []Clock {
	var out []Clock
	for _, h := range []uint8{0, 1, 12, 22, 23} {
		for _, m := range []uint8{0, 1, 30, 58, 59} {
			for s := uint8(0); s < SecondsPerMinute; s++ {
				out = append(out, Clock{Seconds: s, Minutes: m, Hours: h})
			}
		}
	}
	return out
}

func advance(c Clock, n int) Clock {
	for i := 0; i < n; i++ {
		c.AdvanceOneSecond()
	}
	return c
}

func TestAdvanceSixtySecondsAddsOneMinute(t *testing.T) {
	for _, start := range sampleClocks() {
		got := advance(start, 60)

		require.True(t, got.Valid(), "from %s", start)
		assert.Equal(t, start.Seconds, got.Seconds, "from %s", start)

		if start.Minutes < MinutesPerHour-1 {
			assert.Equal(t, start.Minutes+1, got.Minutes, "from %s", start)
			assert.Equal(t, start.Hours, got.Hours, "from %s", start)
		} else {
			assert.Equal(t, uint8(0), got.Minutes, "from %s", start)
			assert.Equal(t, (start.Hours+1)%HoursPerDay, got.Hours, "from %s", start)
		}
	}
}

func TestAdvanceOneHourAddsOneHour(t *testing.T) {
	for _, start := range sampleClocks() {
		got := advance(start, 3600)

		assert.Equal(t, start.Seconds, got.Seconds, "from %s", start)
		assert.Equal(t, start.Minutes, got.Minutes, "from %s", start)
		assert.Equal(t, (start.Hours+1)%HoursPerDay, got.Hours, "from %s", start)
	}
}

func TestHoursWrapToZero(t *testing.T) {
	start := Clock{Seconds: 17, Minutes: 5, Hours: 23}
	got := advance(start, 3600)
	assert.Equal(t, Clock{Seconds: 17, Minutes: 5, Hours: 0}, got)

	last := Clock{Seconds: 59, Minutes: 59, Hours: 23}
	last.AdvanceOneSecond()
	assert.Equal(t, Clock{}, last)
}

func TestFullDayStaysInRange(t *testing.T) {
	var c Clock
	for i := uint32(1); i <= 24*3600; i++ {
		c.AdvanceOneSecond()
		if !c.Valid() {
			t.Fatalf("clock out of range after %d seconds: %+v", i, c)
		}
		if got := c.TotalSeconds(); got != i%(24*3600) {
			t.Fatalf("after %d seconds total=%d", i, got)
		}
	}
	assert.Equal(t, Clock{}, c)
}

func TestResetFromAnyState(t *testing.T) {
	for _, start := range sampleClocks() {
		c := start
		c.Reset()
		assert.Equal(t, Clock{}, c, "from %s", start)
	}
}

func TestClockFromSeconds(t *testing.T) {
	assert.Equal(t, Clock{Seconds: 7, Minutes: 42, Hours: 13}, ClockFromSeconds(13*3600+42*60+7))
	assert.Equal(t, Clock{Seconds: 1}, ClockFromSeconds(24*3600+1))
	assert.Equal(t, uint32(49327), ClockFromSeconds(49327).TotalSeconds())
}

func TestClockDigitsAndString(t *testing.T) {
	c := Clock{Seconds: 7, Minutes: 42, Hours: 13}

	assert.Equal(t, "13:42:07", c.String())
	assert.Equal(t, uint8(7), c.Digit(SecondsOnes))
	assert.Equal(t, uint8(0), c.Digit(SecondsTens))
	assert.Equal(t, uint8(2), c.Digit(MinutesOnes))
	assert.Equal(t, uint8(4), c.Digit(MinutesTens))
	assert.Equal(t, uint8(3), c.Digit(HoursOnes))
	assert.Equal(t, uint8(1), c.Digit(HoursTens))
	assert.Equal(t, uint8(0), c.Digit(DigitSelect(NumDigits)))
}
