package config

import (
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"strconv"
	"strings"
)

const (
	DefaultDemoDelay = 1.0
	DefaultLogLevel  = slog.LevelWarn

	// MaxDemoDelay bounds the configurable demo delay.
	MaxDemoDelay = 3600.0

	EnvDemoDelay = "MYPACKAGE_DEMO_DELAY"
	EnvLogLevel  = "MYPACKAGE_LOG_LEVEL"
	EnvSpinner   = "MYPACKAGE_SPINNER"
)

// SpinnerMode controls whether a spinner is drawn while waiting.
type SpinnerMode string

const (
	SpinnerAuto   SpinnerMode = "auto"
	SpinnerAlways SpinnerMode = "always"
	SpinnerNever  SpinnerMode = "never"
)

// ParseSpinnerMode parses a spinner mode name (case-insensitive).
func ParseSpinnerMode(s string) (SpinnerMode, error) {
	switch mode := SpinnerMode(strings.ToLower(strings.TrimSpace(s))); mode {
	case SpinnerAuto, SpinnerAlways, SpinnerNever:
		return mode, nil
	default:
		return "", fmt.Errorf("invalid spinner mode %q: must be one of auto, always, never", s)
	}
}

// Config holds runtime settings for the my-package binaries.
type Config struct {
	// DemoDelay is the number of seconds the demo waits in its delay step.
	DemoDelay float64
	LogLevel  slog.Level
	Spinner   SpinnerMode
}

// Default returns the default config.
func Default() Config {
	return Config{
		DemoDelay: DefaultDemoDelay,
		LogLevel:  DefaultLogLevel,
		Spinner:   SpinnerAuto,
	}
}

// Load reads configuration from the process environment.
func Load() (Config, error) {
	return LoadFrom(os.Getenv)
}

// LoadFrom builds a config from defaults overridden by the variables getenv
// returns. Empty values keep the default.
func LoadFrom(getenv func(string) string) (Config, error) {
	cfg := Default()

	if v := strings.TrimSpace(getenv(EnvDemoDelay)); v != "" {
		d, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return Config{}, fmt.Errorf("parse %s: %w", EnvDemoDelay, err)
		}
		cfg.DemoDelay = d
	}
	if v := strings.TrimSpace(getenv(EnvLogLevel)); v != "" {
		level, err := ParseLogLevel(v)
		if err != nil {
			return Config{}, fmt.Errorf("parse %s: %w", EnvLogLevel, err)
		}
		cfg.LogLevel = level
	}
	if v := strings.TrimSpace(getenv(EnvSpinner)); v != "" {
		mode, err := ParseSpinnerMode(v)
		if err != nil {
			return Config{}, fmt.Errorf("parse %s: %w", EnvSpinner, err)
		}
		cfg.Spinner = mode
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate ensures config values are within supported ranges.
func (c Config) Validate() error {
	if math.IsNaN(c.DemoDelay) || c.DemoDelay < 0 {
		return fmt.Errorf("demo delay must be non-negative, got %v", c.DemoDelay)
	}
	if c.DemoDelay > MaxDemoDelay {
		return fmt.Errorf("demo delay must be at most %v seconds, got %v", MaxDemoDelay, c.DemoDelay)
	}
	if _, err := ParseSpinnerMode(string(c.Spinner)); err != nil {
		return err
	}
	return nil
}

// ParseLogLevel maps debug, info, warn and error to slog levels.
func ParseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("unknown log level %q", s)
	}
}

// NewLogger creates a text logger writing to w at the given level.
func NewLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
}
