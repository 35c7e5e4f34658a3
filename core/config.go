package core

import "time"

// Config holds the stopwatch tunables
type Config struct {
	// PeriodMS is the compare target of the time base (1000 for a real stopwatch)
	PeriodMS uint32

	// PhaseDelay is how long each digit is held during multiplexing
	PhaseDelay time.Duration

	// SignalDepth is how many elapsed-second ticks may be latched while the
	// main loop is busy. 1 reproduces a single sticky flag.
	SignalDepth uint32

	// YieldOnSignal cuts a refresh cycle short as soon as a tick is pending
	YieldOnSignal bool

	// Triggers holds the edge polarity and bias of the control inputs
	Triggers TriggerConfig

	// Wait replaces the busy-wait between display phases when set
	Wait func(time.Duration)
}

// DefaultConfig returns the configuration of the reference board
func DefaultConfig() Config {
	return Config{
		PeriodMS:    DefaultPeriodMS,
		PhaseDelay:  DefaultPhaseDelay,
		SignalDepth: DefaultSignalDepth,
		Triggers:    DefaultTriggerConfig(),
	}
}

// applyDefaults fills in missing configuration values
func (c *Config) applyDefaults() {
	if c.PeriodMS == 0 {
		c.PeriodMS = DefaultPeriodMS
	}
	if c.SignalDepth == 0 {
		c.SignalDepth = DefaultSignalDepth
	}
}

// Validate checks a configuration after defaults are applied
func (c *Config) Validate() error {
	c.applyDefaults()

	if c.PeriodMS > maxPeriodMS {
		return ErrInvalidPeriod
	}
	if c.PhaseDelay < 0 || c.PhaseDelay > MaxPhaseDelay {
		return ErrInvalidPhaseDelay
	}
	return nil
}
