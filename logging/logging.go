// Package logging configures zerolog loggers and carries them through a context.
package logging

import (
	"context"
	"errors"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
)

// Config holds logger configuration
type Config struct {
	// Level is the minimum log level (trace, debug, info, warn, error, disabled)
	Level string `yaml:"level"`
	// Format is json, console or auto (console on a terminal)
	Format string `yaml:"format"`
	// Output is stderr, stdout, discard or a file path
	Output string `yaml:"output"`
}

// DefaultConfig returns default configuration
func DefaultConfig() *Config {
	return &Config{Level: "info", Format: "auto", Output: "stderr"}
}

var (
	mux           sync.RWMutex
	defaultLogger = zerolog.New(os.Stderr).Level(zerolog.InfoLevel).With().Timestamp().Logger()

	filesMux sync.Mutex
	files    = map[string]*os.File{}
)

// New creates a logger for the supplied configuration
func New(cfg *Config) zerolog.Logger {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	level := ParseLevel(cfg.Level)
	logger := zerolog.New(writer(cfg)).Level(level).With().Timestamp().Logger()
	if level <= zerolog.DebugLevel {
		logger = logger.With().Caller().Logger()
	}
	return logger
}

// Configure replaces the default logger
func Configure(cfg *Config) {
	logger := New(cfg)
	SetDefault(logger)
}

// SetDefault sets the default logger
func SetDefault(logger zerolog.Logger) {
	mux.Lock()
	defer mux.Unlock()
	defaultLogger = logger
}

// Default returns the default logger
func Default() *zerolog.Logger {
	mux.RLock()
	defer mux.RUnlock()
	logger := defaultLogger
	return &logger
}

// Nop returns a logger that writes nothing
func Nop() *zerolog.Logger {
	logger := zerolog.Nop()
	return &logger
}

type contextKey int

const loggerKey contextKey = iota

// WithLogger returns a context carrying the logger
func WithLogger(ctx context.Context, logger *zerolog.Logger) context.Context {
	if logger == nil {
		logger = Default()
	}
	return context.WithValue(ctx, loggerKey, logger)
}

// FromContext returns the context logger or the default one
func FromContext(ctx context.Context) *zerolog.Logger {
	if ctx == nil {
		return Default()
	}
	if logger, ok := ctx.Value(loggerKey).(*zerolog.Logger); ok && logger != nil {
		return logger
	}
	return Default()
}

// Ctx is a shorthand for FromContext
func Ctx(ctx context.Context) *zerolog.Logger {
	return FromContext(ctx)
}

// ParseLevel parses a level name, unknown names resolve to info
func ParseLevel(level string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "", "info":
		return zerolog.InfoLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "disabled", "none", "off":
		return zerolog.Disabled
	}
	if parsed, err := zerolog.ParseLevel(level); err == nil {
		return parsed
	}
	return zerolog.InfoLevel
}

func writer(cfg *Config) io.Writer {
	var output io.Writer
	switch strings.ToLower(cfg.Output) {
	case "", "stderr":
		output = os.Stderr
	case "stdout":
		output = os.Stdout
	case "discard", "none":
		return io.Discard
	default:
		file, err := openFile(cfg.Output)
		if err != nil {
			output = os.Stderr
		} else {
			output = file
		}
	}
	format := strings.ToLower(cfg.Format)
	if format == "" || format == "auto" {
		format = "json"
		if file, ok := output.(*os.File); ok && isatty.IsTerminal(file.Fd()) {
			format = "console"
		}
	}
	if format == "console" || format == "pretty" {
		return zerolog.ConsoleWriter{Out: output, TimeFormat: time.Kitchen, NoColor: os.Getenv("NO_COLOR") != ""}
	}
	return output
}

// openFile returns log file for location, a file is opened once and shared by all loggers writing to it
func openFile(location string) (*os.File, error) {
	filesMux.Lock()
	defer filesMux.Unlock()
	if file, ok := files[location]; ok {
		return file, nil
	}
	file, err := os.OpenFile(location, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, err
	}
	files[location] = file
	return file, nil
}

// Close closes log files opened by New, loggers writing to them must not be used afterwards
func Close() error {
	filesMux.Lock()
	defer filesMux.Unlock()
	var errs []error
	for location, file := range files {
		if err := file.Close(); err != nil {
			errs = append(errs, err)
		}
		delete(files, location)
	}
	return errors.Join(errs...)
}
