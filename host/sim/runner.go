package sim

import (
	"context"
	"errors"
	"io"
	"sync"
	"time"

	"stopwatch/core"
	"stopwatch/host/config"
	"stopwatch/host/logger"
)

// Options configures a simulator run
type Options struct {
	Config *config.Config
	// In supplies key presses; Out receives the display line.
	In  io.Reader
	Out io.Writer
	// Duration stops the run after this much wall-clock time when positive.
	Duration time.Duration
}

// Result is the stopwatch state when the run ended
type Result struct {
	Clock core.Clock
	State core.RunState
	Stats core.Stats
}

// Run wires the firmware core to simulated hardware and runs it until the
// quit key, the duration elapses, or ctx is cancelled.
func Run(ctx context.Context, opts Options) (Result, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	if err := config.Validate(cfg); err != nil {
		return Result{}, err
	}

	ctx = logger.WithName(ctx, "sim")

	core.SetDebugWriter(func(s string) { logger.Debug(ctx, s) })
	core.SetDebugEnabled(cfg.Debug)
	core.ClearEvents()

	coreCfg, err := cfg.Core()
	if err != nil {
		return Result{}, err
	}
	// A host has a scheduler; sleeping between phases keeps a core free
	coreCfg.Wait = time.Sleep

	var sw *core.Stopwatch
	display := NewTerminalDisplay(opts.Out, func() string { return sw.State().String() })

	sw, err = core.New(coreCfg, core.NewSoftTimerSource(), display)
	if err != nil {
		return Result{}, err
	}

	keypad := NewKeypad(opts.In, cfg.QuitKey[0])
	reset := keypad.Add("reset", cfg.Reset.Key[0])
	pause := keypad.Add("pause", cfg.Pause.Key[0])
	resume := keypad.Add("resume", cfg.Resume.Key[0])
	keypad.OnKey(func(k *KeyTrigger) {
		logger.DebugKV(ctx, "control input",
			"input", k.Name,
			"edge", k.Edge().String(),
			"clock", sw.Clock().String(),
			"state", sw.State().String())
	})

	if err := sw.Init(reset, pause, resume); err != nil {
		return Result{}, err
	}

	logger.InfoKV(ctx, "stopwatch started",
		"period_ms", coreCfg.PeriodMS,
		"phase_delay", coreCfg.PhaseDelay,
		"signal_depth", coreCfg.SignalDepth,
		"speed", cfg.Speed,
		"keys", cfg.Reset.Key+cfg.Pause.Key+cfg.Resume.Key+cfg.QuitKey)

	if opts.Duration > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Duration)
		defer cancel()
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	timeBase := NewTimeBase(cfg.Speed, cfg.TickInterval)

	var wg sync.WaitGroup
	errs := make(chan error, 3)
	spawn := func(fn func(context.Context) error) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := fn(ctx); err != nil {
				errs <- err
			}
		}()
	}
	spawn(timeBase.Run)
	spawn(keypad.Run)
	spawn(sw.Run)

	err = <-errs
	cancel()
	wg.Wait()

	res := Result{Clock: sw.Clock(), State: sw.State(), Stats: sw.Stats()}
	sw.Shutdown()

	if cfg.Debug {
		core.DumpEvents()
	}

	if err := display.Blank(); err != nil {
		logger.WarnKV(ctx, "clear display", "error", err)
	}

	logger.InfoKV(ctx, "stopwatch stopped",
		"clock", res.Clock.String(),
		"state", res.State.String(),
		"advanced", res.Stats.Advanced,
		"lost", res.Stats.Lost,
		"refreshes", res.Stats.Refreshes)

	switch {
	case errors.Is(err, ErrQuit),
		errors.Is(err, context.Canceled),
		errors.Is(err, context.DeadlineExceeded):
		return res, nil
	default:
		return res, err
	}
}
