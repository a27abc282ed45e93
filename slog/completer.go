package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/danespinosa/unsublink"
)

// Ensure LoggingCompleter implements unsublink.Completer.
var _ unsublink.Completer = (*LoggingCompleter)(nil)

// LoggingCompleter wraps a Completer with debug logging.
type LoggingCompleter struct {
	next   unsublink.Completer
	logger *slog.Logger
}

// NewLoggingCompleter creates a new LoggingCompleter.
func NewLoggingCompleter(next unsublink.Completer, logger *slog.Logger) *LoggingCompleter {
	return &LoggingCompleter{next: next, logger: logger}
}

// Complete delegates to the wrapped completer and logs the call.
func (c *LoggingCompleter) Complete(ctx context.Context, prompt string) (out string, err error) {
	defer func(begin time.Time) {
		c.logger.Debug("complete",
			"prompt_bytes", len(prompt),
			"completion_bytes", len(out),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return c.next.Complete(ctx, prompt)
}

// Ensure LoggingLoader implements unsublink.ModelLoader.
var _ unsublink.ModelLoader = (*LoggingLoader)(nil)

// LoggingLoader wraps a ModelLoader, logs the load and wraps the returned
// completer in a LoggingCompleter.
type LoggingLoader struct {
	next   unsublink.ModelLoader
	logger *slog.Logger
}

// NewLoggingLoader creates a new LoggingLoader.
func NewLoggingLoader(next unsublink.ModelLoader, logger *slog.Logger) *LoggingLoader {
	return &LoggingLoader{next: next, logger: logger}
}

// Load delegates to the wrapped loader.
func (l *LoggingLoader) Load(ctx context.Context) (completer unsublink.Completer, err error) {
	defer func(begin time.Time) {
		if err != nil {
			l.logger.Warn("model unavailable",
				"reason", unsublink.ErrorMessage(err),
				"duration", time.Since(begin),
			)
			return
		}
		l.logger.Info("model loaded", "duration", time.Since(begin))
	}(time.Now())

	c, err := l.next.Load(ctx)
	if err != nil {
		return nil, err
	}
	return NewLoggingCompleter(c, l.logger), nil
}
