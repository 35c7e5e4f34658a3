// Package sim provides simulated hardware so the firmware core can run on a
// host: a wall-clock timer interrupt, a terminal digit bus, and keyboard
// control inputs.
package sim

import (
	"context"
	"time"

	"stopwatch/core"
)

// TimeBase plays the part of the hardware timer interrupt. It advances the
// core system time from the wall clock and dispatches due timers.
type TimeBase struct {
	speed    float64
	interval time.Duration
	now      func() time.Time
}

// NewTimeBase creates a time base running speed times faster than real time
func NewTimeBase(speed float64, interval time.Duration) *TimeBase {
	if speed <= 0 {
		speed = 1
	}
	if interval <= 0 {
		interval = time.Millisecond
	}
	return &TimeBase{speed: speed, interval: interval, now: time.Now}
}

// Ticks converts a wall-clock duration to scaled timer ticks
func (tb *TimeBase) Ticks(elapsed time.Duration) uint32 {
	return uint32(float64(elapsed.Microseconds()) * tb.speed * core.TimerFreq / 1e6)
}

// Run dispatches timers every interval until ctx is cancelled
func (tb *TimeBase) Run(ctx context.Context) error {
	start := tb.now()
	base := core.GetTime()

	ticker := time.NewTicker(tb.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			core.ProcessTimers(base + tb.Ticks(tb.now().Sub(start)))
		}
	}
}
