//go:build tinygo

package core

import "runtime/interrupt"

// disableInterrupts masks every interrupt so the clock fields and the timer
// can be changed as one step. Sections may nest inside handlers.
func disableInterrupts() interrupt.State {
	return interrupt.Disable()
}

// restoreInterrupts returns to the mask saved by disableInterrupts
func restoreInterrupts(state interrupt.State) {
	interrupt.Restore(state)
}
