package indexer

import (
	"math"
	"time"
	"unicode/utf8"

	"github.com/fwojciec/docindex"
)

// Build aggregates entries into the index document. Text fields are
// cleaned on copies; the input entries are left untouched and keep their
// order. An empty entry list is valid.
func Build(entries []*docindex.SearchEntry, consumer map[string]any, generator string, now time.Time) (*docindex.SearchIndex, error) {
	if consumer == nil {
		return nil, docindex.Errorf(docindex.EINVALID, "consumer config required")
	}
	if generator == "" {
		generator = docindex.DefaultGenerator
	}

	cleaned := make([]*docindex.SearchEntry, 0, len(entries))
	for _, e := range entries {
		if err := e.Validate(); err != nil {
			return nil, err
		}
		cleaned = append(cleaned, Clean(e))
	}

	return &docindex.SearchIndex{
		Version:      docindex.IndexVersion,
		Generator:    generator,
		Generated:    now.UTC().Truncate(time.Millisecond),
		TotalEntries: len(cleaned),
		Config:       consumer,
		Stats:        Stats(cleaned),
		Entries:      cleaned,
	}, nil
}

// Clean returns a copy of e with its text fields cleaned and capped.
// Identity fields are kept as they are. Tags that clean to nothing are
// dropped, but a present tag list stays present.
func Clean(e *docindex.SearchEntry) *docindex.SearchEntry {
	c := *e
	c.Title = docindex.CleanText(e.Title)
	c.PageName = docindex.CleanText(e.PageName)
	c.Content = docindex.CleanText(e.Content)
	c.Excerpt = docindex.CleanText(e.Excerpt)
	c.Description = docindex.CleanText(e.Description)
	c.Author = docindex.CleanText(e.Author)
	c.Date = docindex.CollapseWhitespace(e.Date)
	c.SectionType = docindex.CollapseWhitespace(e.SectionType)

	if e.Tags != nil {
		c.Tags = make([]string, 0, len(e.Tags))
		for _, tag := range e.Tags {
			if tag = docindex.CleanText(tag); tag != "" {
				c.Tags = append(c.Tags, tag)
			}
		}
	}
	if e.Headings != nil {
		c.Headings = make([]docindex.Heading, len(e.Headings))
		copy(c.Headings, e.Headings)
	}
	c.Score = 0
	return &c
}

// Stats summarizes entries. Content lengths are counted in characters and
// the average is rounded to the nearest integer.
func Stats(entries []*docindex.SearchEntry) docindex.IndexStats {
	stats := docindex.IndexStats{
		TotalEntries:         len(entries),
		EntriesByType:        make(map[string]int),
		EntriesBySectionType: make(map[string]int),
	}
	for _, e := range entries {
		stats.EntriesByType[string(e.Type)]++
		if e.SectionType != "" {
			stats.EntriesBySectionType[e.SectionType]++
		}
		stats.TotalContentLength += utf8.RuneCountInString(e.Content)
	}
	if len(entries) > 0 {
		avg := float64(stats.TotalContentLength) / float64(len(entries))
		stats.AverageContentLength = int(math.Round(avg))
	}
	return stats
}
