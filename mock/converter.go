package mock

import "github.com/fwojciec/docindex"

var _ docindex.Converter = (*Converter)(nil)

// Converter is a mock implementation of docindex.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}

var _ docindex.MarkdownRenderer = (*MarkdownRenderer)(nil)

// MarkdownRenderer is a mock implementation of docindex.MarkdownRenderer.
type MarkdownRenderer struct {
	RenderFn func(markdown string) (string, error)
}

func (r *MarkdownRenderer) Render(markdown string) (string, error) {
	return r.RenderFn(markdown)
}
