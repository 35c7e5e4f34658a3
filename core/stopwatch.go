package core

import (
	"context"
	"sync/atomic"
)

// Stats counts what the coordinator has done since Init
type Stats struct {
	Advanced  uint32 // seconds added to the clock
	Lost      uint32 // ticks dropped because the signal buffer was full
	Refreshes uint32 // display cycles started
	Resets    uint32
	Pauses    uint32
	Resumes   uint32
}

// Stopwatch owns the clock and run state and runs the main loop.
// Handlers reach it from interrupt context; the main loop reads and writes
// the clock only inside critical sections.
type Stopwatch struct {
	cfg     Config
	clock   Clock
	state   atomic.Uint32 // RunState
	signal  *ElapsedSignal
	timer   TimerSource
	out     DigitOutput
	display *Multiplexer
	stats   Stats

	initialized bool
	shutdown    bool // set under the critical section; blocks HandleResume
}

// New creates a stopwatch on the given time base and digit bus
func New(cfg Config, timer TimerSource, out DigitOutput) (*Stopwatch, error) {
	if timer == nil || out == nil {
		return nil, ErrMissingHardware
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	s := &Stopwatch{
		cfg:     cfg,
		signal:  NewElapsedSignal(cfg.SignalDepth),
		timer:   timer,
		out:     out,
		display: NewMultiplexer(out, cfg.PhaseDelay),
	}
	if cfg.Wait != nil {
		s.display.SetWaitFunc(cfg.Wait)
	}
	if cfg.YieldOnSignal {
		s.display.SetYield(func() bool { return s.signal.Pending() > 0 })
	}
	s.state.Store(uint32(Paused))

	return s, nil
}

// Init zeroes the display, starts the time base and arms the three control
// inputs. The stopwatch is Running when Init returns.
func (s *Stopwatch) Init(reset, pause, resume TriggerSource) error {
	if s.initialized {
		return ErrAlreadyStarted
	}
	if reset == nil || pause == nil || resume == nil {
		return ErrMissingHardware
	}

	if err := s.out.ConfigureDigits(); err != nil {
		return err
	}

	if err := s.timer.Configure(s.cfg.PeriodMS, s.onElapsed); err != nil {
		return err
	}

	state := disableInterrupts()
	s.clock.Reset()
	s.signal.Clear()
	s.timer.Start()
	s.state.Store(uint32(Running))
	restoreInterrupts(state)

	if err := s.armTriggers(reset, pause, resume); err != nil {
		state := disableInterrupts()
		s.timer.Stop()
		s.state.Store(uint32(Paused))
		restoreInterrupts(state)
		return err
	}

	s.initialized = true
	DebugPrintln("stopwatch: running, period=" + Utoa(s.cfg.PeriodMS) + "ms depth=" + Utoa(s.signal.Depth()))

	return nil
}

func (s *Stopwatch) armTriggers(reset, pause, resume TriggerSource) error {
	t := s.cfg.Triggers
	if err := reset.Arm(t.Reset.Edge, t.Reset.Pull, s.HandleReset); err != nil {
		return err
	}
	if err := pause.Arm(t.Pause.Edge, t.Pause.Pull, s.HandlePause); err != nil {
		return err
	}
	return resume.Arm(t.Resume.Edge, t.Resume.Pull, s.HandleResume)
}

// onElapsed is the compare-match callback; runs in interrupt context
func (s *Stopwatch) onElapsed() {
	if s.signal.Raise() {
		recordEvent(EvtElapsed, s.clock)
	} else {
		recordEvent(EvtTickLost, s.clock)
	}
}

// Step runs one main-loop iteration: a pending tick advances the clock and
// skips the display, otherwise one full refresh cycle runs. Reports whether
// the clock advanced.
func (s *Stopwatch) Step() (bool, error) {
	if !s.initialized {
		return false, ErrNotStarted
	}

	if s.signal.Consume() {
		state := disableInterrupts()
		s.clock.AdvanceOneSecond()
		s.stats.Advanced++
		recordEvent(EvtAdvance, s.clock)
		restoreInterrupts(state)
		return true, nil
	}

	state := disableInterrupts()
	snapshot := s.clock
	s.stats.Refreshes++
	restoreInterrupts(state)

	if _, err := s.display.Refresh(snapshot); err != nil {
		return false, err
	}
	return false, nil
}

// Run loops Step until ctx is cancelled or the digit bus fails
func (s *Stopwatch) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if _, err := s.Step(); err != nil {
			DebugPrintln("stopwatch: " + err.Error())
			return err
		}
	}
}

// Shutdown stops the time base for good and leaves the stopwatch Paused. A
// resume trigger arriving afterwards is ignored. Firmware runs until power-off;
// hosts call this to release the timer when a run ends.
func (s *Stopwatch) Shutdown() {
	state := disableInterrupts()
	s.shutdown = true
	s.state.Store(uint32(Paused))
	s.timer.Stop()
	restoreInterrupts(state)
}

// Clock returns a consistent snapshot of the elapsed time
func (s *Stopwatch) Clock() Clock {
	state := disableInterrupts()
	defer restoreInterrupts(state)

	return s.clock
}

// State returns the current run state
func (s *Stopwatch) State() RunState {
	return RunState(s.state.Load())
}

// PendingTicks returns the number of latched, unconsumed ticks
func (s *Stopwatch) PendingTicks() uint32 {
	return s.signal.Pending()
}

// Stats returns a snapshot of the coordinator counters
func (s *Stopwatch) Stats() Stats {
	state := disableInterrupts()
	st := s.stats
	restoreInterrupts(state)

	st.Lost = s.signal.Lost()
	return st
}

// Display returns the multiplexer driving the digit bus
func (s *Stopwatch) Display() *Multiplexer {
	return s.display
}
