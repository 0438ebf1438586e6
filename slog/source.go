package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/docindex"
)

// Ensure LoggingSource implements docindex.DocumentSource.
var _ docindex.DocumentSource = (*LoggingSource)(nil)

// LoggingSource wraps a DocumentSource with logging.
type LoggingSource struct {
	next   docindex.DocumentSource
	logger *slog.Logger
}

// NewLoggingSource creates a new LoggingSource.
func NewLoggingSource(next docindex.DocumentSource, logger *slog.Logger) *LoggingSource {
	return &LoggingSource{next: next, logger: logger}
}

// LoadDocuments delegates to the wrapped source and logs the operation.
func (s *LoggingSource) LoadDocuments(ctx context.Context) (docs []*docindex.SourceDocument, err error) {
	defer func(begin time.Time) {
		s.logger.Info("load documents",
			"count", len(docs),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.LoadDocuments(ctx)
}
