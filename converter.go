package docindex

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms HTML content into Markdown, preserving headings
	// as line-leading # markers.
	Convert(html string) (string, error)
}

// MarkdownRenderer renders Markdown source documents to HTML.
type MarkdownRenderer interface {
	Render(markdown string) (string, error)
}
