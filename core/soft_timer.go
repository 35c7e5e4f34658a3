package core

// maxPeriodMS bounds the compare target so tick arithmetic stays well inside
// the wraparound window of the 32-bit counter
const maxPeriodMS = 3600 * 1000

// SoftTimerSource is a TimerSource built on the timer scheduler. It behaves
// like a compare-match timer: Stop freezes the partial count and Start
// resumes from it.
type SoftTimerSource struct {
	timer     Timer
	period    uint32 // compare target in ticks
	remaining uint32 // ticks left until the next match while stopped
	onElapsed func()
	running   bool
}

// NewSoftTimerSource creates an unconfigured timer
func NewSoftTimerSource() *SoftTimerSource {
	return &SoftTimerSource{}
}

// Configure sets the period and callback. The timer stays stopped.
func (t *SoftTimerSource) Configure(periodMS uint32, onElapsed func()) error {
	if periodMS == 0 || periodMS > maxPeriodMS {
		return ErrInvalidPeriod
	}
	if onElapsed == nil {
		return ErrNoHandler
	}

	t.period = TimerFromMS(periodMS)
	t.remaining = t.period
	t.onElapsed = onElapsed
	t.timer.Handler = t.fire
	return nil
}

// Start schedules the next match using the frozen remainder.
// Caller must have interrupts disabled.
func (t *SoftTimerSource) Start() {
	if t.running || t.onElapsed == nil {
		return
	}
	t.timer.Next = nil
	t.timer.WakeTime = GetTime() + t.remaining
	insertTimer(&t.timer)
	t.running = true
}

// Stop unschedules the timer and keeps the remainder.
// Caller must have interrupts disabled.
func (t *SoftTimerSource) Stop() {
	if !t.running {
		return
	}
	now := GetTime()
	if timerIsBefore(now, t.timer.WakeTime) {
		t.remaining = t.timer.WakeTime - now
	} else {
		// Match already due but not dispatched yet; fire on the next Start
		t.remaining = 0
	}
	removeTimer(&t.timer)
	t.running = false
}

// Running reports whether the timer is counting
func (t *SoftTimerSource) Running() bool {
	return t.running
}

// Remaining returns the ticks left until the next match while stopped
func (t *SoftTimerSource) Remaining() uint32 {
	return t.remaining
}

// fire runs from TimerDispatch on each compare match
func (t *SoftTimerSource) fire(tm *Timer) uint8 {
	t.onElapsed()
	tm.WakeTime += t.period
	return SF_RESCHEDULE
}
