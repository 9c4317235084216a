package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/vvduth/studydoc"
)

// Ensure LoggingExtractor implements studydoc.Extractor.
var _ studydoc.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with debug logging.
type LoggingExtractor struct {
	next   studydoc.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next studydoc.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the operation.
func (e *LoggingExtractor) Extract(ctx context.Context, path, contentType string) (ext *studydoc.Extraction, err error) {
	defer func(begin time.Time) {
		var chars, pages int
		if ext != nil {
			chars = len(ext.Text)
			pages = ext.NumPages
		}
		e.logger.Info("extract",
			"path", path,
			"type", contentType,
			"chars", chars,
			"pages", pages,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.Extract(ctx, path, contentType)
}
