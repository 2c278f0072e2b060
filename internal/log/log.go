// Package log provides context-aware logging for project-switch.
//
// Diagnostics go to stderr through a charmbracelet/log logger; stdout is
// reserved for the output package.
package log

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	charmlog "github.com/charmbracelet/log"
)

type ctxKey struct{}

// Logger provides leveled diagnostics and verbose command logging.
type Logger struct {
	out     io.Writer
	verbose bool
	quiet   bool
	charm   *charmlog.Logger
}

// New creates a new logger.
// verbose enables debug output; quiet suppresses everything below errors and
// takes precedence over verbose.
func New(out io.Writer, verbose, quiet bool) *Logger {
	level := charmlog.InfoLevel
	switch {
	case quiet:
		level = charmlog.ErrorLevel
	case verbose:
		level = charmlog.DebugLevel
	}

	charm := charmlog.NewWithOptions(out, charmlog.Options{
		Level:           level,
		ReportTimestamp: false,
	})

	return &Logger{out: out, verbose: verbose, quiet: quiet, charm: charm}
}

// WithLogger attaches a logger to the context.
func WithLogger(ctx context.Context, l *Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// FromContext retrieves the logger from context.
// Returns a no-op logger if none is attached.
func FromContext(ctx context.Context) *Logger {
	if l, ok := ctx.Value(ctxKey{}).(*Logger); ok {
		return l
	}
	return New(io.Discard, false, true)
}

// Printf writes formatted output. Suppressed when quiet.
func (l *Logger) Printf(format string, args ...any) {
	if l.quiet {
		return
	}
	fmt.Fprintf(l.out, format, args...)
}

// Println writes a line of output. Suppressed when quiet.
func (l *Logger) Println(args ...any) {
	if l.quiet {
		return
	}
	fmt.Fprintln(l.out, args...)
}

// Debug logs a message with key/value pairs when verbose.
// A trailing key without a value is dropped.
func (l *Logger) Debug(msg string, keyvals ...any) {
	l.charm.Debug(msg, pairs(keyvals)...)
}

// Info logs an informational message.
func (l *Logger) Info(msg string, keyvals ...any) {
	l.charm.Info(msg, pairs(keyvals)...)
}

// Warn logs a warning.
func (l *Logger) Warn(msg string, keyvals ...any) {
	l.charm.Warn(msg, pairs(keyvals)...)
}

// Error logs an error. Printed even when quiet.
func (l *Logger) Error(msg string, keyvals ...any) {
	l.charm.Error(msg, pairs(keyvals)...)
}

// Command logs an external command about to run and returns a function that
// records its duration. Both are no-ops unless verbose (and not quiet).
func (l *Logger) Command(dir, name string, args ...string) func(time.Duration) {
	if !l.IsVerbose() {
		return func(time.Duration) {}
	}

	line := "$ " + strings.TrimSpace(name+" "+strings.Join(args, " "))
	if dir != "" {
		line = "[" + dir + "] " + line
	}
	return func(d time.Duration) {
		fmt.Fprintf(l.out, "%s (%s)\n", line, d.Round(time.Millisecond))
	}
}

// IsVerbose returns true if verbose mode is enabled and not overridden by quiet.
func (l *Logger) IsVerbose() bool {
	return l.verbose && !l.quiet
}

// Writer returns the underlying writer.
func (l *Logger) Writer() io.Writer {
	return l.out
}

func pairs(keyvals []any) []any {
	if len(keyvals)%2 == 1 {
		return keyvals[:len(keyvals)-1]
	}
	return keyvals
}
