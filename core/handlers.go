package core

// Control-signal handlers. Each runs in interrupt context, touches only
// shared state and the timer, and never drives the display.

// HandleReset zeroes the clock. The run state is left alone, so a reset while
// paused stays paused at 00:00:00.
func (s *Stopwatch) HandleReset() {
	state := disableInterrupts()
	defer restoreInterrupts(state)

	s.clock.Reset()
	s.stats.Resets++
	recordEvent(EvtReset, s.clock)
}

// HandlePause stops the time base. Idempotent.
func (s *Stopwatch) HandlePause() {
	state := disableInterrupts()
	defer restoreInterrupts(state)

	if !s.state.CompareAndSwap(uint32(Running), uint32(Paused)) {
		return
	}
	s.timer.Stop()
	s.stats.Pauses++
	recordEvent(EvtPause, s.clock)
}

// HandleResume restarts the time base from where it was frozen. Idempotent,
// and a no-op once the stopwatch has been shut down.
func (s *Stopwatch) HandleResume() {
	state := disableInterrupts()
	defer restoreInterrupts(state)

	if s.shutdown {
		return
	}
	if !s.state.CompareAndSwap(uint32(Paused), uint32(Running)) {
		return
	}
	s.timer.Start()
	s.stats.Resumes++
	recordEvent(EvtResume, s.clock)
}
