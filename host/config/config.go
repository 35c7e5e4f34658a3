// Package config loads the simulator settings from YAML.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"stopwatch/core"
	"stopwatch/host/logger"
)

// Trigger is the YAML form of one control input binding
type Trigger struct {
	// Edge is "rising" or "falling".
	Edge string `yaml:"edge"`
	// Pull is "none", "up" or "down".
	Pull string `yaml:"pull"`
	// Key is the keyboard key that produces the edge.
	Key string `yaml:"key"`
}

// Config holds the simulator settings.
type Config struct {
	// PeriodMS is the compare target of the simulated timer.
	PeriodMS uint32 `yaml:"period_ms"`
	// PhaseDelay is how long each digit stays lit.
	PhaseDelay time.Duration `yaml:"phase_delay"`
	// SignalDepth is how many elapsed-second ticks may be latched.
	SignalDepth uint32 `yaml:"signal_depth"`
	// YieldOnSignal cuts a display cycle short when a tick arrives.
	YieldOnSignal bool `yaml:"yield_on_signal"`
	// Speed multiplies the simulated time base (1 = real time).
	Speed float64 `yaml:"speed"`
	// TickInterval is how often the simulated timer interrupt runs.
	TickInterval time.Duration `yaml:"tick_interval"`
	// LogLevel is the zap level name.
	LogLevel string `yaml:"log_level"`
	// Debug routes firmware debug output to the logger.
	Debug bool `yaml:"debug"`
	// QuitKey stops the simulator.
	QuitKey string `yaml:"quit_key"`

	Reset  Trigger `yaml:"reset"`
	Pause  Trigger `yaml:"pause"`
	Resume Trigger `yaml:"resume"`
}

const (
	// DefaultConfigFilename is the default settings file.
	DefaultConfigFilename = "stopwatch-sim.yaml"

	// DefaultTickInterval is the default simulated interrupt period.
	DefaultTickInterval = time.Millisecond

	// DefaultFilePermissions is used when writing a settings file.
	DefaultFilePermissions = 0o600
)

var (
	errConfigIsNotSet = errors.New("configuration is not set")
	errInvalidSpeed   = errors.New("speed must be between 0.1 and 1000")
	errInvalidKey     = errors.New("keys must be single distinct characters")
	errInvalidEdge    = errors.New("edge must be rising or falling")
	errInvalidPull    = errors.New("pull must be none, up or down")
	errInvalidLevel   = errors.New("unknown log level")
)

// Default returns the settings of the reference board in real time.
func Default() *Config {
	return &Config{
		PeriodMS:     core.DefaultPeriodMS,
		PhaseDelay:   core.DefaultPhaseDelay,
		SignalDepth:  core.DefaultSignalDepth,
		Speed:        1,
		TickInterval: DefaultTickInterval,
		LogLevel:     "info",
		QuitKey:      "q",
		Reset:        Trigger{Edge: "falling", Pull: "up", Key: "r"},
		Pause:        Trigger{Edge: "rising", Pull: "none", Key: "p"},
		Resume:       Trigger{Edge: "falling", Pull: "up", Key: "s"},
	}
}

// Load reads settings from path on top of the defaults. A missing file at the
// default location is not an error.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultConfigFilename
	}

	cfg := Default()

	contents, err := os.ReadFile(filepath.Clean(path))
	switch {
	case err == nil:
		if err := yaml.Unmarshal(contents, cfg); err != nil {
			return nil, fmt.Errorf("unmarshal settings: %w", err)
		}
	case errors.Is(err, os.ErrNotExist) && !explicit:
	default:
		return nil, fmt.Errorf("read settings: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes settings to path.
func Save(path string, cfg *Config) error {
	if cfg == nil {
		return errConfigIsNotSet
	}

	if path == "" {
		path = DefaultConfigFilename
	}

	if err := Validate(cfg); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}

	if err := os.WriteFile(filepath.Clean(path), data, DefaultFilePermissions); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}

	return nil
}

// Validate checks the settings and fills in zero values with defaults.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errConfigIsNotSet
	}

	if cfg.Speed == 0 {
		cfg.Speed = 1
	}
	if cfg.Speed < 0.1 || cfg.Speed > 1000 {
		return errInvalidSpeed
	}

	if cfg.TickInterval <= 0 {
		cfg.TickInterval = DefaultTickInterval
	}

	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if _, ok := logger.ParseLogLevel(cfg.LogLevel); !ok {
		return fmt.Errorf("%w: %q", errInvalidLevel, cfg.LogLevel)
	}

	keys := map[string]bool{}
	for _, k := range []string{cfg.QuitKey, cfg.Reset.Key, cfg.Pause.Key, cfg.Resume.Key} {
		if len(k) != 1 || keys[k] {
			return fmt.Errorf("%w: %q", errInvalidKey, k)
		}
		keys[k] = true
	}

	if _, err := cfg.Triggers(); err != nil {
		return err
	}

	coreCfg, err := cfg.Core()
	if err != nil {
		return err
	}

	return coreCfg.Validate()
}

// Core converts the settings to the firmware configuration.
func (cfg *Config) Core() (core.Config, error) {
	triggers, err := cfg.Triggers()
	if err != nil {
		return core.Config{}, err
	}

	return core.Config{
		PeriodMS:      cfg.PeriodMS,
		PhaseDelay:    cfg.PhaseDelay,
		SignalDepth:   cfg.SignalDepth,
		YieldOnSignal: cfg.YieldOnSignal,
		Triggers:      triggers,
	}, nil
}

// Triggers converts the three input bindings.
func (cfg *Config) Triggers() (core.TriggerConfig, error) {
	var (
		out core.TriggerConfig
		err error
	)

	if out.Reset, err = cfg.Reset.binding(); err != nil {
		return out, fmt.Errorf("reset: %w", err)
	}
	if out.Pause, err = cfg.Pause.binding(); err != nil {
		return out, fmt.Errorf("pause: %w", err)
	}
	if out.Resume, err = cfg.Resume.binding(); err != nil {
		return out, fmt.Errorf("resume: %w", err)
	}

	return out, nil
}

func (t Trigger) binding() (core.TriggerBinding, error) {
	var b core.TriggerBinding

	switch strings.ToLower(t.Edge) {
	case "falling", "":
		b.Edge = core.EdgeFalling
	case "rising":
		b.Edge = core.EdgeRising
	default:
		return b, fmt.Errorf("%w: %q", errInvalidEdge, t.Edge)
	}

	switch strings.ToLower(t.Pull) {
	case "none", "":
		b.Pull = core.PullNone
	case "up":
		b.Pull = core.PullUp
	case "down":
		b.Pull = core.PullDown
	default:
		return b, fmt.Errorf("%w: %q", errInvalidPull, t.Pull)
	}

	return b, nil
}
