package slog

import (
	"context"
	"log/slog"
	"time"

	explainconfig "github.com/alexandra5000/explain-config"
)

// Ensure LoggingContextProvider implements explainconfig.ContextProvider.
var _ explainconfig.ContextProvider = (*LoggingContextProvider)(nil)

// LoggingContextProvider wraps a ContextProvider with logging.
type LoggingContextProvider struct {
	next   explainconfig.ContextProvider
	logger *slog.Logger
}

// NewLoggingContextProvider creates a new LoggingContextProvider.
func NewLoggingContextProvider(next explainconfig.ContextProvider, logger *slog.Logger) *LoggingContextProvider {
	return &LoggingContextProvider{next: next, logger: logger}
}

// ComponentContext delegates to the wrapped provider and logs the
// operation.
func (p *LoggingContextProvider) ComponentContext(ctx context.Context, q explainconfig.ComponentQuery) (docContext string, err error) {
	defer func(begin time.Time) {
		p.logger.Info("component context",
			"component", q.Name,
			"type", string(q.Type),
			"chars", len(docContext),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return p.next.ComponentContext(ctx, q)
}
