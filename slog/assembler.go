// Package slog provides logging decorators for the docindex services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/docindex"
)

// Ensure LoggingAssembler implements docindex.EntryAssembler.
var _ docindex.EntryAssembler = (*LoggingAssembler)(nil)

// LoggingAssembler wraps an EntryAssembler with debug logging.
type LoggingAssembler struct {
	next   docindex.EntryAssembler
	logger *slog.Logger
}

// NewLoggingAssembler creates a new LoggingAssembler.
func NewLoggingAssembler(next docindex.EntryAssembler, logger *slog.Logger) *LoggingAssembler {
	return &LoggingAssembler{next: next, logger: logger}
}

// Assemble delegates to the wrapped assembler and logs the entry count.
func (a *LoggingAssembler) Assemble(ctx context.Context, doc *docindex.SourceDocument) (entries []*docindex.SearchEntry) {
	defer func(begin time.Time) {
		path := ""
		if doc != nil {
			path = doc.Path
		}
		a.logger.Debug("assemble",
			"path", path,
			"count", len(entries),
			"duration", time.Since(begin),
		)
	}(time.Now())
	return a.next.Assemble(ctx, doc)
}
