// Tripwise - Travel Recommendation and Trip Budget Estimation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tripwise

package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Output formats.
const (
	FormatJSON    = "json"
	FormatConsole = "console"
)

// Config holds logging configuration. Zero values fall back to info level,
// JSON output and stderr.
type Config struct {
	// Level is trace, debug, info, warn, error or disabled.
	Level string

	// Format is FormatJSON or FormatConsole.
	Format string

	// Caller adds file:line to every entry.
	Caller bool

	// Timestamp adds a time field to every entry.
	Timestamp bool

	// Service, when set, tags every entry with service=<name> so the server
	// and tripctl can share a log sink.
	Service string

	Output io.Writer
}

var (
	mu   sync.RWMutex
	root zerolog.Logger
)

//nolint:gochecknoinits // the package must be usable before main calls Init
func init() {
	// Levels live on each logger, not in zerolog's global filter.
	zerolog.SetGlobalLevel(zerolog.TraceLevel)
	zerolog.TimeFieldFormat = time.RFC3339Nano
	root = build(Config{Timestamp: true})
}

// Init replaces the global logger. It may be called more than once; tripctl
// calls it per command. An unknown level falls back to info and is reported
// on the new logger.
func Init(cfg Config) {
	l := build(cfg)

	mu.Lock()
	root = l
	mu.Unlock()

	if cfg.Level != "" {
		if _, err := ParseLevel(cfg.Level); err != nil {
			l.Warn().Err(err).Msg("Falling back to info level")
		}
	}
}

func build(cfg Config) zerolog.Logger {
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}
	if strings.EqualFold(cfg.Format, FormatConsole) {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: "15:04:05"}
	}

	level, err := ParseLevel(cfg.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}

	c := zerolog.New(out).Level(level).With()
	if cfg.Timestamp {
		c = c.Timestamp()
	}
	if cfg.Caller {
		c = c.Caller()
	}
	if cfg.Service != "" {
		c = c.Str("service", cfg.Service)
	}
	return c.Logger()
}

// ParseLevel maps a level name to zerolog. Empty means info and "warning"
// is accepted for warn.
func ParseLevel(s string) (zerolog.Level, error) {
	switch name := strings.ToLower(strings.TrimSpace(s)); name {
	case "":
		return zerolog.InfoLevel, nil
	case "warning":
		return zerolog.WarnLevel, nil
	case "fatal", "panic":
		return zerolog.NoLevel, fmt.Errorf("log level %q is not supported", s)
	default:
		level, err := zerolog.ParseLevel(name)
		if err != nil || level == zerolog.NoLevel {
			return zerolog.NoLevel, fmt.Errorf("unknown log level %q", s)
		}
		return level, nil
	}
}

// Logger returns a copy of the global logger.
func Logger() zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return root
}

// SetLogger replaces the global logger. Tests use it to capture output.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func SetLogger(l zerolog.Logger) {
	mu.Lock()
	root = l
	mu.Unlock()
}

// Level reports the global logger's level.
func Level() zerolog.Level {
	mu.RLock()
	defer mu.RUnlock()
	return root.GetLevel()
}

// SetLevel changes the global logger's level, keeping its fields and output.
func SetLevel(level zerolog.Level) {
	mu.Lock()
	root = root.Level(level)
	mu.Unlock()
}

// With starts a child logger of the global logger.
//
//	l := logging.With().Str("provider", "weather").Logger()
func With() zerolog.Context {
	return Logger().With()
}

// Debug starts a debug entry on the global logger.
func Debug() *zerolog.Event {
	l := Logger()
	return l.Debug()
}

// Info starts an info entry on the global logger.
//
//	logging.Info().Str("addr", srv.Addr).Msg("HTTP server listening")
func Info() *zerolog.Event {
	l := Logger()
	return l.Info()
}

// Warn starts a warning entry on the global logger.
func Warn() *zerolog.Event {
	l := Logger()
	return l.Warn()
}

// Error starts an error entry on the global logger.
//
//	logging.Error().Err(err).Str("provider", name).Msg("Lookup failed")
func Error() *zerolog.Event {
	l := Logger()
	return l.Error()
}

// Fatal starts an entry that exits the process with status 1 once sent.
// Only main packages call it.
func Fatal() *zerolog.Event {
	l := Logger()
	return l.Fatal()
}

// NewTestLogger returns a JSON logger writing to w at trace level.
func NewTestLogger(w io.Writer) zerolog.Logger {
	return zerolog.New(w).Level(zerolog.TraceLevel).With().Timestamp().Logger()
}
