package docindex

import (
	"context"
	"time"
)

// IndexVersion is the version of the index document format.
const IndexVersion = "1.0.0"

// SearchIndex is the index document handed to the search consumer.
// TotalEntries always equals len(Entries).
type SearchIndex struct {
	Version      string         `json:"version"`
	Generator    string         `json:"generator"`
	Generated    time.Time      `json:"generated"`
	TotalEntries int            `json:"totalEntries"`
	Config       map[string]any `json:"config"`
	Stats        IndexStats     `json:"stats"`
	Entries      []*SearchEntry `json:"entries"`
}

// IndexStats summarizes the entries of an index.
type IndexStats struct {
	TotalEntries         int            `json:"totalEntries"`
	EntriesByType        map[string]int `json:"entriesByType"`
	EntriesBySectionType map[string]int `json:"entriesBySectionType"`
	AverageContentLength int            `json:"averageContentLength"`
	TotalContentLength   int            `json:"totalContentLength"`
}

// WriteResult describes a written index file.
type WriteResult struct {
	Path     string
	Bytes    int
	Checksum string
}

// IndexWriter persists the index document into the host's output.
type IndexWriter interface {
	WriteIndex(ctx context.Context, idx *SearchIndex) (*WriteResult, error)
}
