package mock

import (
	"context"

	"github.com/fwojciec/docindex"
)

var _ docindex.EntryAssembler = (*EntryAssembler)(nil)

// EntryAssembler is a mock implementation of docindex.EntryAssembler.
type EntryAssembler struct {
	AssembleFn func(ctx context.Context, doc *docindex.SourceDocument) []*docindex.SearchEntry
}

func (a *EntryAssembler) Assemble(ctx context.Context, doc *docindex.SourceDocument) []*docindex.SearchEntry {
	return a.AssembleFn(ctx, doc)
}

var _ docindex.IndexWriter = (*IndexWriter)(nil)

// IndexWriter is a mock implementation of docindex.IndexWriter.
type IndexWriter struct {
	WriteIndexFn func(ctx context.Context, idx *docindex.SearchIndex) (*docindex.WriteResult, error)
}

func (w *IndexWriter) WriteIndex(ctx context.Context, idx *docindex.SearchIndex) (*docindex.WriteResult, error) {
	return w.WriteIndexFn(ctx, idx)
}
