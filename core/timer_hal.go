package core

// DefaultPeriodMS is the compare target of the elapsed-second time base
const DefaultPeriodMS = 1000

// TimerSource is a periodic hardware time base.
//
// Start and Stop are only called with interrupts disabled, so an
// implementation may treat each as a single register-level operation.
// Stop must keep both the configured period and the partial count so that
// a later Start neither loses nor gains time.
type TimerSource interface {
	// Configure sets the compare target and the callback raised on each match.
	// The callback runs in interrupt context.
	Configure(periodMS uint32, onElapsed func()) error

	// Start lets the timer count
	Start()

	// Stop freezes the timer without clearing its count
	Stop()
}
