// Package slog provides logging decorators for the service interfaces.
package slog

import (
	"context"
	"log/slog"
	"time"

	explainconfig "github.com/alexandra5000/explain-config"
)

// Ensure LoggingDocsFetcher implements explainconfig.DocsFetcher.
var _ explainconfig.DocsFetcher = (*LoggingDocsFetcher)(nil)

// LoggingDocsFetcher wraps a DocsFetcher with logging.
type LoggingDocsFetcher struct {
	next   explainconfig.DocsFetcher
	source string
	logger *slog.Logger
}

// NewLoggingDocsFetcher creates a new LoggingDocsFetcher. The source
// label identifies which documentation source the fetcher serves.
func NewLoggingDocsFetcher(next explainconfig.DocsFetcher, source string, logger *slog.Logger) *LoggingDocsFetcher {
	return &LoggingDocsFetcher{next: next, source: source, logger: logger}
}

// Fetch delegates to the wrapped fetcher and logs the operation.
func (f *LoggingDocsFetcher) Fetch(ctx context.Context, force bool) (updated bool, err error) {
	defer func(begin time.Time) {
		f.logger.Info("docs fetch",
			"source", f.source,
			"force", force,
			"updated", updated,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return f.next.Fetch(ctx, force)
}
