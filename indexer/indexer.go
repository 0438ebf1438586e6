package indexer

import (
	"context"
	"fmt"
	"time"

	"github.com/fwojciec/docindex"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency bounds parallel assembly when none is configured.
const DefaultConcurrency = 4

// Indexer runs a whole build: load, assemble, aggregate, write.
type Indexer struct {
	Source    docindex.DocumentSource
	Assembler docindex.EntryAssembler
	Writer    docindex.IndexWriter

	Concurrency int
	Generator   string
	Consumer    map[string]any

	// Now defaults to time.Now.
	Now func() time.Time
}

// Result holds the outcome of a build.
type Result struct {
	Documents int
	Index     *docindex.SearchIndex
	Write     *docindex.WriteResult
}

// ProgressEvent reports progress during a build.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	Path      string
	Entries   int
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFinished
)

// ProgressFunc is a callback for reporting build progress.
type ProgressFunc func(event ProgressEvent)

// assembleResult holds the entries of the document at position.
type assembleResult struct {
	position int
	path     string
	entries  []*docindex.SearchEntry
}

// Run loads all documents, assembles them concurrently and writes the
// index. The progress callback, if provided, receives events as documents
// complete.
func (ix *Indexer) Run(ctx context.Context, progress ProgressFunc) (*Result, error) {
	docs, err := ix.Source.LoadDocuments(ctx)
	if err != nil {
		return nil, fmt.Errorf("load documents: %w", err)
	}

	entries, err := ix.Collect(ctx, docs, progress)
	if err != nil {
		return nil, err
	}

	now := time.Now
	if ix.Now != nil {
		now = ix.Now
	}
	idx, err := Build(entries, ix.Consumer, ix.Generator, now())
	if err != nil {
		return nil, fmt.Errorf("build index: %w", err)
	}

	res := &Result{Documents: len(docs), Index: idx}
	if ix.Writer == nil {
		return res, nil
	}
	if res.Write, err = ix.Writer.WriteIndex(ctx, idx); err != nil {
		return nil, fmt.Errorf("write index: %w", err)
	}
	return res, nil
}

// Collect assembles docs with bounded parallelism. Entries come back in
// document order, and in assembly order within a document, regardless of
// which document finishes first.
func (ix *Indexer) Collect(ctx context.Context, docs []*docindex.SourceDocument, progress ProgressFunc) ([]*docindex.SearchEntry, error) {
	concurrency := ix.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	total := len(docs)
	if progress != nil {
		progress(ProgressEvent{Type: ProgressStarted, Total: total})
	}

	resultCh := make(chan assembleResult, total)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for i, doc := range docs {
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				resultCh <- assembleResult{
					position: i,
					path:     doc.Path,
					entries:  ix.Assembler.Assemble(gctx, doc),
				}
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	results := make([][]*docindex.SearchEntry, total)
	completed := 0
	for result := range resultCh {
		completed++
		results[result.position] = result.entries
		if progress != nil {
			progress(ProgressEvent{
				Type:      ProgressCompleted,
				Completed: completed,
				Total:     total,
				Path:      result.path,
				Entries:   len(result.entries),
			})
		}
	}

	// Partial results must not reach the aggregator.
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var entries []*docindex.SearchEntry
	for _, r := range results {
		entries = append(entries, r...)
	}

	if progress != nil {
		progress(ProgressEvent{Type: ProgressFinished, Completed: total, Total: total})
	}
	return entries, nil
}
