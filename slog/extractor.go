// Package slog provides logging decorators for unsublink services using the
// standard library's structured logger.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/danespinosa/unsublink"
)

// Ensure LoggingExtractor implements unsublink.Extractor.
var _ unsublink.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor and logs each extraction.
type LoggingExtractor struct {
	next   unsublink.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next unsublink.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the outcome.
func (e *LoggingExtractor) Extract(ctx context.Context, body string) (result *unsublink.ExtractionResult) {
	defer func(begin time.Time) {
		if result == nil {
			e.logger.Warn("extract returned no result",
				"bytes", len(body),
				"duration", time.Since(begin),
			)
			return
		}
		e.logger.Info("extract",
			"bytes", len(body),
			"stage", stageName(result.Stage),
			"link", result.Link,
			"valid", result.Valid,
			"anchors", len(result.Anchors),
			"duration", time.Since(begin),
		)
	}(time.Now())
	return e.next.Extract(ctx, body)
}

func stageName(s unsublink.Stage) string {
	if s == unsublink.StageNone {
		return "(none)"
	}
	return string(s)
}
