//go:build !tinygo

package core

import "sync"

// State is a placeholder for interrupt state on regular Go
type State uintptr

// irqMask stands in for the global interrupt enable bit when running on a
// host, where simulated handlers are goroutines. Sections must not nest.
var irqMask sync.Mutex

// disableInterrupts enters the critical section shared with simulated handlers
func disableInterrupts() State {
	irqMask.Lock()
	return 0
}

// restoreInterrupts leaves the critical section
func restoreInterrupts(state State) {
	irqMask.Unlock()
}
