package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/docindex"
)

// Ensure LoggingWriter implements docindex.IndexWriter.
var _ docindex.IndexWriter = (*LoggingWriter)(nil)

// LoggingWriter wraps an IndexWriter with logging.
type LoggingWriter struct {
	next   docindex.IndexWriter
	logger *slog.Logger
}

// NewLoggingWriter creates a new LoggingWriter.
func NewLoggingWriter(next docindex.IndexWriter, logger *slog.Logger) *LoggingWriter {
	return &LoggingWriter{next: next, logger: logger}
}

// WriteIndex delegates to the wrapped writer and logs the written file.
func (w *LoggingWriter) WriteIndex(ctx context.Context, idx *docindex.SearchIndex) (res *docindex.WriteResult, err error) {
	defer func(begin time.Time) {
		attrs := []any{"duration", time.Since(begin), "err", err}
		if idx != nil {
			attrs = append(attrs, "entries", idx.TotalEntries)
		}
		if res != nil {
			attrs = append(attrs, "path", res.Path, "bytes", res.Bytes, "checksum", res.Checksum)
		}
		w.logger.Info("write index", attrs...)
	}(time.Now())
	return w.next.WriteIndex(ctx, idx)
}
