package indexer_test

import (
	"strings"
	"testing"
	"time"

	"github.com/fwojciec/docindex"
	"github.com/fwojciec/docindex/indexer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var buildTime = time.Date(2024, 5, 1, 12, 30, 0, 123456789, time.FixedZone("CEST", 2*60*60))

func consumer() map[string]any {
	return map[string]any{"fuseOptions": docindex.DefaultFuseOptions()}
}

func TestBuild(t *testing.T) {
	t.Parallel()

	t.Run("empty input yields a valid empty index", func(t *testing.T) {
		t.Parallel()

		idx, err := indexer.Build(nil, consumer(), "", buildTime)

		require.NoError(t, err)
		assert.Equal(t, docindex.IndexVersion, idx.Version)
		assert.Equal(t, docindex.DefaultGenerator, idx.Generator)
		assert.Equal(t, 0, idx.TotalEntries)
		assert.NotNil(t, idx.Entries)
		assert.Empty(t, idx.Entries)
		assert.Equal(t, 0, idx.Stats.TotalEntries)
		assert.Equal(t, 0, idx.Stats.AverageContentLength)
		assert.NotNil(t, idx.Stats.EntriesByType)
		assert.Contains(t, idx.Config, "fuseOptions")
	})

	t.Run("stamps the generation time in UTC", func(t *testing.T) {
		t.Parallel()

		idx, err := indexer.Build(nil, consumer(), "site", buildTime)

		require.NoError(t, err)
		assert.Equal(t, time.UTC, idx.Generated.Location())
		assert.Equal(t, time.Date(2024, 5, 1, 10, 30, 0, 123000000, time.UTC), idx.Generated)
		assert.Equal(t, "site", idx.Generator)
	})

	t.Run("requires consumer config", func(t *testing.T) {
		t.Parallel()

		_, err := indexer.Build(nil, nil, "", buildTime)

		assert.Equal(t, docindex.EINVALID, docindex.ErrorCode(err))
	})

	t.Run("rejects entries without identity and names them", func(t *testing.T) {
		t.Parallel()

		entries := []*docindex.SearchEntry{
			{ID: "page:/ok", Type: docindex.EntryPage, URL: "/ok"},
			{Type: docindex.EntrySection, URL: "/broken#x"},
		}

		_, err := indexer.Build(entries, consumer(), "", buildTime)

		assert.Equal(t, docindex.EINVALID, docindex.ErrorCode(err))
		assert.Contains(t, docindex.ErrorMessage(err), "/broken#x")
	})

	t.Run("computes statistics", func(t *testing.T) {
		t.Parallel()

		entries := []*docindex.SearchEntry{
			{ID: "page:/a", Type: docindex.EntryPage, URL: "/a", Content: "12345"},
			{ID: "section:/a:1", Type: docindex.EntrySection, URL: "/a#h", Content: "123456", SectionType: "hero"},
			{ID: "section:/a:2", Type: docindex.EntrySection, URL: "/a#f", SectionType: "hero"},
		}

		idx, err := indexer.Build(entries, consumer(), "", buildTime)

		require.NoError(t, err)
		assert.Equal(t, 3, idx.TotalEntries)
		assert.Equal(t, 3, idx.Stats.TotalEntries)
		assert.Equal(t, map[string]int{"page": 1, "section": 2}, idx.Stats.EntriesByType)
		assert.Equal(t, map[string]int{"hero": 2}, idx.Stats.EntriesBySectionType)
		assert.Equal(t, 11, idx.Stats.TotalContentLength)
		assert.Equal(t, 4, idx.Stats.AverageContentLength)
	})

	t.Run("keeps input order", func(t *testing.T) {
		t.Parallel()

		entries := []*docindex.SearchEntry{
			{ID: "page:/z", Type: docindex.EntryPage, URL: "/z"},
			{ID: "page:/a", Type: docindex.EntryPage, URL: "/a"},
		}

		idx, err := indexer.Build(entries, consumer(), "", buildTime)

		require.NoError(t, err)
		assert.Equal(t, "page:/z", idx.Entries[0].ID)
		assert.Equal(t, "page:/a", idx.Entries[1].ID)
	})

	t.Run("cleans copies and leaves inputs untouched", func(t *testing.T) {
		t.Parallel()

		in := &docindex.SearchEntry{
			ID:      "page:/",
			Type:    docindex.EntryPage,
			URL:     "/",
			Title:   "  Hello \n\t World ☃ ",
			Content: strings.Repeat("a", docindex.MaxFieldLength+50),
			Tags:    []string{" go ", "☃"},
			Score:   7,
		}

		idx, err := indexer.Build([]*docindex.SearchEntry{in}, consumer(), "", buildTime)

		require.NoError(t, err)
		out := idx.Entries[0]
		assert.Equal(t, "Hello World", out.Title)
		assert.Len(t, out.Content, docindex.MaxFieldLength)
		assert.Equal(t, []string{"go"}, out.Tags)
		assert.Zero(t, out.Score)

		assert.Equal(t, "  Hello \n\t World ☃ ", in.Title)
		assert.Equal(t, 7.0, in.Score)
	})

	t.Run("retains empty tag lists", func(t *testing.T) {
		t.Parallel()

		entries := []*docindex.SearchEntry{
			{ID: "page:/", Type: docindex.EntryPage, URL: "/", Tags: []string{"☃"}},
		}

		idx, err := indexer.Build(entries, consumer(), "", buildTime)

		require.NoError(t, err)
		assert.NotNil(t, idx.Entries[0].Tags)
		assert.Empty(t, idx.Entries[0].Tags)
	})
}
