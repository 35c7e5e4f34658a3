package core

import "time"

// DefaultPhaseDelay is how long each digit stays lit before the next one
const DefaultPhaseDelay = 2 * time.Millisecond

// MaxPhaseDelay bounds the hold time so a full cycle cannot starve a pending
// elapsed-second signal
const MaxPhaseDelay = 5 * time.Millisecond

// Phase is one step of a refresh cycle: a selected digit and its value
type Phase struct {
	Select DigitSelect
	Value  uint8
}

// DisplayPhases returns the six phases for a clock value in refresh order:
// seconds, minutes, hours, ones before tens.
func DisplayPhases(c Clock) [NumDigits]Phase {
	var phases [NumDigits]Phase
	for i := range phases {
		sel := DigitSelect(i)
		phases[i] = Phase{Select: sel, Value: c.Digit(sel)}
	}
	return phases
}

// Multiplexer lights six digits one at a time, fast enough for persistence of
// vision to show them all at once.
type Multiplexer struct {
	out   DigitOutput
	delay time.Duration
	wait  func(time.Duration)
	yield func() bool
}

// NewMultiplexer creates a multiplexer holding each digit for delay
func NewMultiplexer(out DigitOutput, delay time.Duration) *Multiplexer {
	return &Multiplexer{
		out:   out,
		delay: delay,
		wait:  busyWait,
	}
}

// SetWaitFunc replaces the inter-phase busy-wait (tests use a no-op, the host
// simulator sleeps)
func (m *Multiplexer) SetWaitFunc(wait func(time.Duration)) {
	if wait == nil {
		wait = busyWait
	}
	m.wait = wait
}

// SetYield installs a check run between phases; when it returns true the
// rest of the cycle is skipped
func (m *Multiplexer) SetYield(yield func() bool) {
	m.yield = yield
}

// Delay returns the per-phase hold time
func (m *Multiplexer) Delay() time.Duration {
	return m.delay
}

// Refresh runs one full cycle for the given clock snapshot and returns how
// many phases were emitted.
func (m *Multiplexer) Refresh(c Clock) (int, error) {
	phases := DisplayPhases(c)
	for i, ph := range phases {
		if i > 0 && m.yield != nil && m.yield() {
			return i, nil
		}
		if err := m.out.WriteDigit(ph.Select, ph.Value); err != nil {
			return i, &PhaseError{Select: ph.Select, Err: err}
		}
		if m.delay > 0 {
			m.wait(m.delay)
		}
	}
	return NumDigits, nil
}

// busyWait spins for d. Multiplex delays are too short to hand to a scheduler.
func busyWait(d time.Duration) {
	deadline := time.Now().Add(d)
	for time.Now().Before(deadline) {
	}
}
