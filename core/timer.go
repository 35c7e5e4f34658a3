package core

import "sync/atomic"

// Software time base runs in microseconds, matching the RP2040 timer
const (
	TimerFreq = 1000000 // 1MHz
)

var systemTicks atomic.Uint32

// GetTime returns the current system time in timer ticks
func GetTime() uint32 {
	return systemTicks.Load()
}

// SetTime sets the current system time (from the hardware counter or a simulation)
func SetTime(ticks uint32) {
	systemTicks.Store(ticks)
}

// TimerFromMS converts milliseconds to timer ticks
func TimerFromMS(ms uint32) uint32 {
	return ms * (TimerFreq / 1000)
}

// TimerToMS converts timer ticks to milliseconds
func TimerToMS(ticks uint32) uint32 {
	return ticks / (TimerFreq / 1000)
}

// timerIsBefore compares two tick values across counter wraparound
func timerIsBefore(a, b uint32) bool {
	return int32(a-b) < 0
}

// ProcessTimers updates the system time and runs every due timer.
// This is the body of the periodic timer interrupt.
func ProcessTimers(now uint32) {
	SetTime(now)
	TimerDispatch()
}
