package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Options describes logger configuration supplied at creation time.
type Options struct {
	Level         string
	HumanReadable bool
	Writer        io.Writer
}

// Logger wraps zerolog to provide a simplified API for the application.
// A nil *Logger is valid and discards everything, so components can take an
// optional logger without guarding each call.
type Logger struct {
	base zerolog.Logger
}

// New creates a configured Logger instance based on Options.
func New(opts Options) (*Logger, error) {
	writer := opts.Writer
	if writer == nil {
		writer = os.Stderr
	}

	level := zerolog.InfoLevel
	if opts.Level != "" {
		parsed, err := zerolog.ParseLevel(strings.ToLower(opts.Level))
		if err != nil {
			return nil, fmt.Errorf("parse log level: %w", err)
		}
		level = parsed
	}

	var output io.Writer = writer
	if opts.HumanReadable {
		console := zerolog.NewConsoleWriter()
		console.Out = writer
		console.TimeFormat = time.RFC3339
		output = console
	}

	logger := zerolog.New(output).Level(level).With().Timestamp().Logger()
	return &Logger{base: logger}, nil
}

// WithFields returns a derived logger that always writes the supplied fields.
func (l *Logger) WithFields(fields map[string]any) *Logger {
	if l == nil {
		return nil
	}

	builder := l.base.With()
	for key, value := range fields {
		builder = builder.Interface(key, value)
	}

	derived := Logger{base: builder.Logger()}
	return &derived
}

// Debug writes a debug-level log entry if enabled. Trailing arguments are
// alternating key/value pairs.
func (l *Logger) Debug(msg string, kv ...any) {
	if l == nil {
		return
	}
	withPairs(l.base.Debug(), kv).Msg(msg)
}

// Info writes an informational log entry.
func (l *Logger) Info(msg string, kv ...any) {
	if l == nil {
		return
	}
	withPairs(l.base.Info(), kv).Msg(msg)
}

// Warn writes a warning level log entry.
func (l *Logger) Warn(msg string, kv ...any) {
	if l == nil {
		return
	}
	withPairs(l.base.Warn(), kv).Msg(msg)
}

// Error writes an error log entry including the supplied error context.
func (l *Logger) Error(err error, msg string, kv ...any) {
	if l == nil {
		return
	}
	event := l.base.Error()
	if err != nil {
		event = event.Err(err)
	}
	withPairs(event, kv).Msg(msg)
}

func withPairs(event *zerolog.Event, kv []any) *zerolog.Event {
	if len(kv) == 0 {
		return event
	}
	if len(kv)%2 != 0 {
		kv = append(kv, "(MISSING)")
	}
	return event.Fields(kv)
}
