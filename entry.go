package docindex

import "context"

// EntryType is the granularity of a search entry.
type EntryType string

// Entry types, also used as index levels.
const (
	EntryPage      EntryType = "page"
	EntrySection   EntryType = "section"
	EntryComponent EntryType = "component"
)

// SearchEntry is one independently linkable unit of indexed content.
// Score is always zero; ranking belongs to the search consumer.
type SearchEntry struct {
	ID           string    `json:"id"`
	Type         EntryType `json:"type"`
	URL          string    `json:"url"`
	Title        string    `json:"title,omitempty"`
	PageName     string    `json:"pageName,omitempty"`
	Content      string    `json:"content,omitempty"`
	Excerpt      string    `json:"excerpt,omitempty"`
	Description  string    `json:"description,omitempty"`
	Tags         []string  `json:"tags,omitzero"`
	Date         string    `json:"date,omitempty"`
	Author       string    `json:"author,omitempty"`
	SectionType  string    `json:"sectionType,omitempty"`
	SectionIndex int       `json:"sectionIndex"`
	Headings     []Heading `json:"headings,omitzero"`
	WordCount    int       `json:"wordCount"`
	Score        float64   `json:"score"`
}

// Validate returns an error if the entry lacks identity fields.
func (e *SearchEntry) Validate() error {
	if e == nil {
		return Errorf(EINVALID, "search entry required")
	}
	if e.ID == "" {
		return Errorf(EINVALID, "search entry id required (url %q)", e.URL)
	}
	if e.URL == "" {
		return Errorf(EINVALID, "search entry url required (id %q)", e.ID)
	}
	switch e.Type {
	case EntryPage, EntrySection, EntryComponent:
	default:
		return Errorf(EINVALID, "search entry %q has unknown type %q", e.URL, e.Type)
	}
	return nil
}

// EntryAssembler turns one source document into zero or more entries.
// Implementations must not fail the build for a single bad document.
type EntryAssembler interface {
	Assemble(ctx context.Context, doc *SourceDocument) []*SearchEntry
}
