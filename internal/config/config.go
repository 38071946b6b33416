// Package config loads gocalc settings from the environment.
package config

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// Colour modes for terminal output.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config holds environment-driven settings shared by the gocalc binaries.
type Config struct {
	LogLevel      string        `env:"GOCALC_LOG_LEVEL"      envDefault:"warn"`
	Color         string        `env:"GOCALC_COLOR"          envDefault:"auto"`
	WatchDebounce time.Duration `env:"GOCALC_WATCH_DEBOUNCE" envDefault:"200ms"`
	MCPSession    string        `env:"GOCALC_MCP_SESSION"    envDefault:"default"`
}

// Load parses the process environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, cfg.Validate()
}

// LoadFrom parses the given variables instead of the process environment.
func LoadFrom(vars map[string]string) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: vars}); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("GOCALC_COLOR must be auto, always or never, got %q", c.Color)
	}
	if c.WatchDebounce <= 0 {
		return fmt.Errorf("GOCALC_WATCH_DEBOUNCE must be positive, got %s", c.WatchDebounce)
	}
	if strings.TrimSpace(c.MCPSession) == "" {
		return fmt.Errorf("GOCALC_MCP_SESSION must not be empty")
	}
	return nil
}

// ParseLevel maps debug|info|warn|error to a slog level.
func ParseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("GOCALC_LOG_LEVEL: %w", err)
	}
	return level, nil
}

// NewLogger returns a text logger writing to w at the configured level.
func (c Config) NewLogger(w io.Writer) *slog.Logger {
	level, err := ParseLevel(c.LogLevel)
	if err != nil {
		level = slog.LevelWarn
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
