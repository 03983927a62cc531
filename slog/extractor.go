package slog

import (
	"log/slog"
	"time"

	"github.com/rmaia/vitrine"
)

// Ensure LoggingExtractor implements vitrine.Extractor.
var _ vitrine.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with extraction logging.
type LoggingExtractor struct {
	next   vitrine.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next vitrine.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the outcome.
func (e *LoggingExtractor) Extract(sourceURL string, html string) ([]*vitrine.Product, error) {
	begin := time.Now()
	products, err := e.next.Extract(sourceURL, html)
	if err != nil {
		e.logger.Error("extract",
			"url", sourceURL,
			"duration", time.Since(begin),
			"err", err,
		)
		return nil, err
	}

	e.logger.Info("extract",
		"url", sourceURL,
		"records", len(products),
		"duration", time.Since(begin),
	)
	return products, nil
}
