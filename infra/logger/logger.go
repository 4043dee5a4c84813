package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/rs/zerolog"
)

// Logger exposes logging methods for common severity levels.
type Logger interface {
	Debugf(format string, args ...any)
	// Debugw logs a message with structured fields.
	Debugw(msg string, fields map[string]any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// NopLogger implements Logger with no-op methods.
type NopLogger struct{}

func (NopLogger) Debugf(string, ...any)         {}
func (NopLogger) Debugw(string, map[string]any) {}
func (NopLogger) Infof(string, ...any)          {}
func (NopLogger) Warnf(string, ...any)          {}
func (NopLogger) Errorf(string, ...any)         {}

var (
	mu     sync.RWMutex
	out    io.Writer = os.Stderr
	format string
)

// Configure sets the global level and output format used by loggers created
// afterwards. An empty format falls back to APP_ENV detection.
func Configure(level, fmtName string) error {
	lvl := zerolog.WarnLevel
	if level != "" {
		var err error
		lvl, err = zerolog.ParseLevel(strings.ToLower(level))
		if err != nil {
			return fmt.Errorf("log level: %w", err)
		}
	}
	switch fmtName {
	case "", "json", "console":
	default:
		return fmt.Errorf("unknown log format %s", fmtName)
	}
	zerolog.SetGlobalLevel(lvl)
	mu.Lock()
	format = fmtName
	mu.Unlock()
	return nil
}

// SetOutput redirects loggers created afterwards. Logs never go to stdout,
// which carries the session transcript.
func SetOutput(w io.Writer) {
	mu.Lock()
	out = w
	mu.Unlock()
}

// New returns a Logger for the given component.
func New(component string) Logger {
	return NewZerologLogger(component)
}
