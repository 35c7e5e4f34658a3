package core

import "sync/atomic"

// DefaultSignalDepth latches a single pending tick, like a sticky interrupt flag
const DefaultSignalDepth = 1

// ElapsedSignal latches elapsed-second events raised from interrupt context
// until the main loop consumes them. It is a saturating counter: at most
// depth ticks are buffered and anything beyond that is counted as lost.
type ElapsedSignal struct {
	pending atomic.Uint32
	lost    atomic.Uint32
	depth   uint32
}

// NewElapsedSignal creates a signal buffering up to depth ticks (minimum 1)
func NewElapsedSignal(depth uint32) *ElapsedSignal {
	if depth == 0 {
		depth = DefaultSignalDepth
	}
	return &ElapsedSignal{depth: depth}
}

// Raise latches one tick. Returns false if the buffer was full and the tick
// was dropped. Safe to call from interrupt context.
func (s *ElapsedSignal) Raise() bool {
	for {
		p := s.pending.Load()
		if p >= s.depth {
			s.lost.Add(1)
			return false
		}
		if s.pending.CompareAndSwap(p, p+1) {
			return true
		}
	}
}

// Consume takes exactly one pending tick, reporting whether there was one
func (s *ElapsedSignal) Consume() bool {
	for {
		p := s.pending.Load()
		if p == 0 {
			return false
		}
		if s.pending.CompareAndSwap(p, p-1) {
			return true
		}
	}
}

// Pending returns the number of latched ticks
func (s *ElapsedSignal) Pending() uint32 {
	return s.pending.Load()
}

// Lost returns how many ticks were dropped because the buffer was full
func (s *ElapsedSignal) Lost() uint32 {
	return s.lost.Load()
}

// Depth returns the buffer bound
func (s *ElapsedSignal) Depth() uint32 {
	return s.depth
}

// Clear drops any pending ticks
func (s *ElapsedSignal) Clear() {
	s.pending.Store(0)
}
