package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"stopwatch/host/config"
	"stopwatch/host/logger"
	"stopwatch/host/sim"
)

var (
	// configPath to the configuration YAML file.
	configPath string
	// logLevel overrides the configured log level.
	logLevel string
	// runFor stops the simulation after a wall-clock duration.
	runFor time.Duration

	speed       float64
	periodMS    uint32
	phaseDelay  time.Duration
	signalDepth uint32
	yield       bool
	debug       bool

	// rootCmd runs the stopwatch firmware core on simulated hardware.
	rootCmd = &cobra.Command{
		Use:   "stopwatch-sim",
		Short: "Run the stopwatch firmware on a simulated board in the terminal.",
		Long: `Runs the stopwatch firmware core against simulated hardware: a wall-clock
timer interrupt, a six-digit display drawn on one terminal line, and the
reset, pause and resume inputs mapped to keys (r, p, s by default; q quits).

Settings come from a YAML file; flags override individual values.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          run,
	}

	initConfigCmd = &cobra.Command{
		Use:   "init-config [path]",
		Short: "Write the default settings to a YAML file.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			path := config.DefaultConfigFilename
			if len(args) > 0 {
				path = args[0]
			}
			return config.Save(path, config.Default())
		},
	}
)

// Execute runs the CLI and exits with non-zero status on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.Flags()
	flags.StringVarP(&configPath, "config", "c", "", "path to configuration file (default "+config.DefaultConfigFilename+" if present)")
	flags.StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error")
	flags.DurationVar(&runFor, "for", 0, "stop after this wall-clock duration")
	flags.Float64Var(&speed, "speed", 1, "time base multiplier")
	flags.Uint32Var(&periodMS, "period", 1000, "timer compare target in ms")
	flags.DurationVar(&phaseDelay, "phase-delay", 2*time.Millisecond, "hold time per digit")
	flags.Uint32Var(&signalDepth, "signal-depth", 1, "elapsed-second ticks that may be latched")
	flags.BoolVar(&yield, "yield", false, "cut a display cycle short when a tick arrives")
	flags.BoolVar(&debug, "debug", false, "log firmware debug output and dump the event ring on exit")

	rootCmd.AddCommand(initConfigCmd)
}

func run(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	applyFlags(cmd, cfg)
	if err := config.Validate(cfg); err != nil {
		return err
	}

	level, _ := logger.ParseLogLevel(cfg.LogLevel)
	logger.SetLevel(level)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	restore, err := sim.EnterCbreak(os.Stdin)
	if err != nil {
		logger.DebugKV(ctx, "keys need Enter", "reason", err)
	} else {
		defer func() {
			if err := restore(); err != nil {
				logger.ErrorKV(ctx, "restore terminal", "error", err)
			}
		}()
	}

	res, err := sim.Run(ctx, sim.Options{
		Config:   cfg,
		In:       os.Stdin,
		Out:      os.Stdout,
		Duration: runFor,
	})
	fmt.Fprintln(os.Stdout, res.Clock.String())

	return err
}

// applyFlags copies explicitly set flags over the file settings
func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.LogLevel = logLevel
	}
	if flags.Changed("speed") {
		cfg.Speed = speed
	}
	if flags.Changed("period") {
		cfg.PeriodMS = periodMS
	}
	if flags.Changed("phase-delay") {
		cfg.PhaseDelay = phaseDelay
	}
	if flags.Changed("signal-depth") {
		cfg.SignalDepth = signalDepth
	}
	if flags.Changed("yield") {
		cfg.YieldOnSignal = yield
	}
	if flags.Changed("debug") {
		cfg.Debug = debug
	}
	if cfg.Debug && !flags.Changed("log-level") {
		cfg.LogLevel = "debug"
	}
}
