// Package htmltomarkdown converts HTML bodies to Markdown so that headings
// become line-leading # markers for content segmentation.
package htmltomarkdown

import (
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/fwojciec/docindex"
)

// Ensure Converter implements docindex.Converter at compile time.
var _ docindex.Converter = (*Converter)(nil)

// Converter wraps html-to-markdown to convert HTML to Markdown.
type Converter struct {
	conv *converter.Converter
}

// NewConverter creates a new Converter. The commonmark plugin emits ATX
// headings and fenced code blocks, which the segmenter recognizes.
func NewConverter() *Converter {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			table.NewTablePlugin(),
		),
	)
	return &Converter{conv: conv}
}

// Convert transforms HTML content into segmentable Markdown. Blank input
// converts to an empty string.
func (c *Converter) Convert(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", nil
	}

	result, err := c.conv.ConvertString(html)
	if err != nil {
		return "", docindex.Errorf(docindex.EINVALID, "failed to convert HTML: %v", err)
	}

	return tidy(result), nil
}

// tidy normalizes line endings, drops trailing whitespace and collapses
// runs of blank lines outside fenced code, so every heading starts a line
// after at most one blank line.
func tidy(md string) string {
	md = strings.ReplaceAll(md, "\r\n", "\n")

	var (
		b       strings.Builder
		inFence bool
		blank   bool
	)
	for _, line := range strings.Split(md, "\n") {
		line = strings.TrimRight(line, " \t")
		if fence := strings.TrimSpace(line); strings.HasPrefix(fence, "```") || strings.HasPrefix(fence, "~~~") {
			inFence = !inFence
		}
		if line == "" && !inFence {
			if blank {
				continue
			}
			blank = true
		} else {
			blank = false
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return strings.TrimSpace(b.String())
}
