// Package markdown renders Markdown source documents to HTML using
// github.com/gomarkdown/markdown.
package markdown

import (
	"strings"

	"github.com/fwojciec/docindex"
	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
)

// Ensure Renderer implements docindex.MarkdownRenderer at compile time.
var _ docindex.MarkdownRenderer = (*Renderer)(nil)

// Renderer converts Markdown to HTML. Heading ids are only emitted for
// explicit {#id} markers; generated anchors are assigned downstream.
type Renderer struct {
	extensions parser.Extensions
	flags      html.Flags
}

// NewRenderer creates a new Renderer with CommonMark-style extensions.
func NewRenderer() *Renderer {
	return &Renderer{
		extensions: parser.CommonExtensions,
		flags:      html.CommonFlags,
	}
}

// Render transforms Markdown into HTML.
func (r *Renderer) Render(md string) (string, error) {
	if strings.TrimSpace(md) == "" {
		return "", nil
	}

	// Parsers keep state between calls, so each render gets a fresh one.
	p := parser.NewWithExtensions(r.extensions)
	renderer := html.NewRenderer(html.RendererOptions{Flags: r.flags})

	return string(markdown.ToHTML([]byte(md), p, renderer)), nil
}
