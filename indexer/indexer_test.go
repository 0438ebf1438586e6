package indexer_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/fwojciec/docindex"
	"github.com/fwojciec/docindex/indexer"
	"github.com/fwojciec/docindex/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pageEntries(doc *docindex.SourceDocument) []*docindex.SearchEntry {
	url := docindex.CanonicalURL(doc.Path)
	return []*docindex.SearchEntry{
		{ID: "page:" + url, Type: docindex.EntryPage, URL: url, Content: "x"},
		{ID: "section:" + url + ":1", Type: docindex.EntrySection, URL: url + "#a", SectionIndex: 1},
	}
}

func TestIndexer_Collect(t *testing.T) {
	t.Parallel()

	t.Run("preserves document order regardless of completion order", func(t *testing.T) {
		t.Parallel()

		docs := []*docindex.SourceDocument{{Path: "a.md"}, {Path: "b.md"}, {Path: "c.md"}, {Path: "d.md"}}
		delays := map[string]time.Duration{"a.md": 30 * time.Millisecond, "b.md": 20 * time.Millisecond, "c.md": 10 * time.Millisecond}

		ix := &indexer.Indexer{
			Concurrency: 4,
			Assembler: &mock.EntryAssembler{
				AssembleFn: func(_ context.Context, doc *docindex.SourceDocument) []*docindex.SearchEntry {
					time.Sleep(delays[doc.Path])
					return pageEntries(doc)
				},
			},
		}

		entries, err := ix.Collect(context.Background(), docs, nil)

		require.NoError(t, err)
		require.Len(t, entries, 8)
		assert.Equal(t, "page:/a", entries[0].ID)
		assert.Equal(t, "section:/a:1", entries[1].ID)
		assert.Equal(t, "page:/b", entries[2].ID)
		assert.Equal(t, "page:/d", entries[6].ID)
	})

	t.Run("reports progress", func(t *testing.T) {
		t.Parallel()

		docs := []*docindex.SourceDocument{{Path: "a.md"}, {Path: "b.md"}}
		ix := &indexer.Indexer{
			Assembler: &mock.EntryAssembler{
				AssembleFn: func(_ context.Context, doc *docindex.SourceDocument) []*docindex.SearchEntry {
					return pageEntries(doc)
				},
			},
		}

		var (
			mu     sync.Mutex
			events []indexer.ProgressEvent
		)
		_, err := ix.Collect(context.Background(), docs, func(e indexer.ProgressEvent) {
			mu.Lock()
			defer mu.Unlock()
			events = append(events, e)
		})

		require.NoError(t, err)
		require.Len(t, events, 4)
		assert.Equal(t, indexer.ProgressStarted, events[0].Type)
		assert.Equal(t, indexer.ProgressCompleted, events[1].Type)
		assert.Equal(t, 2, events[1].Entries)
		assert.Equal(t, 2, events[2].Completed)
		assert.Equal(t, indexer.ProgressFinished, events[3].Type)
	})

	t.Run("returns no partial results when cancelled", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		ix := &indexer.Indexer{
			Assembler: &mock.EntryAssembler{
				AssembleFn: func(_ context.Context, doc *docindex.SourceDocument) []*docindex.SearchEntry {
					return pageEntries(doc)
				},
			},
		}

		entries, err := ix.Collect(ctx, []*docindex.SourceDocument{{Path: "a.md"}}, nil)

		assert.ErrorIs(t, err, context.Canceled)
		assert.Nil(t, entries)
	})

	t.Run("handles no documents", func(t *testing.T) {
		t.Parallel()

		ix := &indexer.Indexer{Assembler: &mock.EntryAssembler{}}

		entries, err := ix.Collect(context.Background(), nil, nil)

		require.NoError(t, err)
		assert.Empty(t, entries)
	})
}

func TestIndexer_Run(t *testing.T) {
	t.Parallel()

	now := func() time.Time { return time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC) }

	t.Run("loads, assembles and writes the index", func(t *testing.T) {
		t.Parallel()

		var written *docindex.SearchIndex
		ix := &indexer.Indexer{
			Source: &mock.DocumentSource{
				LoadDocumentsFn: func(context.Context) ([]*docindex.SourceDocument, error) {
					return []*docindex.SourceDocument{{Path: "index.md"}, {Path: "docs/intro.md"}}, nil
				},
			},
			Assembler: &mock.EntryAssembler{
				AssembleFn: func(_ context.Context, doc *docindex.SourceDocument) []*docindex.SearchEntry {
					return pageEntries(doc)
				},
			},
			Writer: &mock.IndexWriter{
				WriteIndexFn: func(_ context.Context, idx *docindex.SearchIndex) (*docindex.WriteResult, error) {
					written = idx
					return &docindex.WriteResult{Path: "search-index.json", Bytes: 42}, nil
				},
			},
			Generator: "site",
			Consumer:  map[string]any{"fuseOptions": map[string]any{}},
			Now:       now,
		}

		res, err := ix.Run(context.Background(), nil)

		require.NoError(t, err)
		assert.Equal(t, 2, res.Documents)
		assert.Equal(t, 4, res.Index.TotalEntries)
		assert.Equal(t, "page:/", res.Index.Entries[0].ID)
		assert.Equal(t, "page:/docs/intro", res.Index.Entries[2].ID)
		assert.Equal(t, now(), res.Index.Generated)
		assert.Same(t, res.Index, written)
		assert.Equal(t, 42, res.Write.Bytes)
	})

	t.Run("wraps source errors", func(t *testing.T) {
		t.Parallel()

		ix := &indexer.Indexer{
			Source: &mock.DocumentSource{
				LoadDocumentsFn: func(context.Context) ([]*docindex.SourceDocument, error) {
					return nil, errors.New("permission denied")
				},
			},
		}

		_, err := ix.Run(context.Background(), nil)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "load documents")
	})

	t.Run("surfaces aggregation errors", func(t *testing.T) {
		t.Parallel()

		ix := &indexer.Indexer{
			Source: &mock.DocumentSource{
				LoadDocumentsFn: func(context.Context) ([]*docindex.SourceDocument, error) {
					return nil, nil
				},
			},
			Assembler: &mock.EntryAssembler{},
		}

		_, err := ix.Run(context.Background(), nil)

		assert.Equal(t, docindex.EINVALID, docindex.ErrorCode(err))
	})
}
