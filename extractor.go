package docindex

// ExtractResult holds the extracted content from an HTML page.
type ExtractResult struct {
	// Title, Description, Author, Date and Tags come from page metadata
	// (meta tags, JSON+LD, etc.) and may be empty.
	Title       string
	Description string
	Author      string
	Date        string
	Tags        []string

	// ContentHTML is the main content as clean HTML.
	// Boilerplate (nav, footer, sidebar, ads) has been removed.
	ContentHTML string
}

// Extractor extracts main content from HTML pages, removing boilerplate.
type Extractor interface {
	Extract(html string) (*ExtractResult, error)
}
