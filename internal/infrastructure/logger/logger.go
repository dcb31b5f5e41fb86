// Package logger builds the service's zerolog logger.
package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config holds the logger configuration options.
type Config struct {
	// Level is the minimum log level (debug, info, warn, error)
	Level string `env:"LOG_LEVEL" envDefault:"info"`

	// Format is the output format (json, console)
	Format string `env:"LOG_FORMAT" envDefault:"json"`

	// EnableCaller adds caller information to log entries
	EnableCaller bool `env:"LOG_CALLER" envDefault:"false"`

	// ServiceName is attached to every entry as "service"
	ServiceName string `env:"SERVICE_NAME" envDefault:"syria-flight-deals"`
}

// DefaultConfig returns the configuration used when none is loaded.
func DefaultConfig() Config {
	return Config{
		Level:       "info",
		Format:      "json",
		ServiceName: "syria-flight-deals",
	}
}

// Logger wraps zerolog.Logger with helpers for the fields the service attaches.
type Logger struct {
	zerolog.Logger
}

// New creates a Logger writing to stdout.
func New(cfg Config) *Logger {
	return NewWithOutput(cfg, os.Stdout)
}

// NewWithOutput creates a Logger writing to output.
func NewWithOutput(cfg Config, output io.Writer) *Logger {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || cfg.Level == "" {
		level = zerolog.InfoLevel
	}

	var writer io.Writer = output
	if cfg.Format == "console" {
		writer = zerolog.ConsoleWriter{
			Out:        output,
			TimeFormat: time.RFC3339,
		}
	}

	ctx := zerolog.New(writer).
		Level(level).
		With().
		Timestamp().
		Str("service", cfg.ServiceName)

	if cfg.EnableCaller {
		ctx = ctx.Caller()
	}

	return &Logger{Logger: ctx.Logger()}
}

// WithComponent returns a child logger tagged with the emitting component
// (e.g. "deals", "searchapi").
func (l *Logger) WithComponent(name string) *Logger {
	return &Logger{Logger: l.With().Str("component", name).Logger()}
}

// WithRequestID returns a child logger carrying the request ID.
func (l *Logger) WithRequestID(requestID string) *Logger {
	return &Logger{Logger: l.With().Str("request_id", requestID).Logger()}
}

// SetGlobal makes l the logger behind zerolog's log package.
func (l *Logger) SetGlobal() {
	log.Logger = l.Logger
}

// Nop returns a disabled logger for tests.
func Nop() *Logger {
	return &Logger{Logger: zerolog.Nop()}
}
