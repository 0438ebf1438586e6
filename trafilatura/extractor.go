// Package trafilatura strips page boilerplate and reads page metadata
// using github.com/markusmobius/go-trafilatura.
package trafilatura

import (
	"bytes"
	"strings"

	"github.com/fwojciec/docindex"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// Ensure Extractor implements docindex.Extractor at compile time.
var _ docindex.Extractor = (*Extractor)(nil)

// dateLayout is the format of ExtractResult.Date.
const dateLayout = "2006-01-02"

// Extractor wraps go-trafilatura to extract main content from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the main content together with
// whatever metadata the page declares.
func (e *Extractor) Extract(rawHTML string) (*docindex.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, docindex.Errorf(docindex.EINVALID, "empty HTML input")
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return nil, docindex.Errorf(docindex.EINVALID, "failed to extract content: %v", err)
	}

	var contentHTML string
	if result.ContentNode != nil {
		contentHTML, err = renderNode(result.ContentNode)
		if err != nil {
			return nil, docindex.Errorf(docindex.EINTERNAL, "failed to render content: %v", err)
		}
	}

	meta := result.Metadata
	out := &docindex.ExtractResult{
		Title:       meta.Title,
		Description: meta.Description,
		Author:      meta.Author,
		Tags:        meta.Tags,
		ContentHTML: contentHTML,
	}
	if !meta.Date.IsZero() {
		out.Date = meta.Date.Format(dateLayout)
	}
	return out, nil
}

// renderNode converts an html.Node to a string.
func renderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}
