package goquery

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/docindex"
)

// Ensure HeadingExtractor implements docindex.HeadingExtractor at compile time.
var _ docindex.HeadingExtractor = (*HeadingExtractor)(nil)

const headingSelector = "h1, h2, h3, h4, h5, h6"

var fullDocumentRe = regexp.MustCompile(`(?i)<(!doctype|html|body)[\s>]`)

// HeadingExtractor assigns unique anchor ids to HTML headings.
type HeadingExtractor struct{}

// NewHeadingExtractor creates a new HeadingExtractor.
func NewHeadingExtractor() *HeadingExtractor {
	return &HeadingExtractor{}
}

// EnsureAnchors returns raw with an id on every non-empty heading, plus the
// headings in document order. Ids already present in the markup are kept
// verbatim and reserved before any id is generated. A fragment in yields a
// fragment out; a full document yields a full document.
func (e *HeadingExtractor) EnsureAnchors(raw string, set *docindex.AnchorSet, opts docindex.AnchorOptions) (string, []docindex.Heading, error) {
	if set == nil {
		set = docindex.NewAnchorSet()
	}
	if strings.TrimSpace(raw) == "" {
		return raw, nil, nil
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(raw))
	if err != nil {
		return "", nil, docindex.Errorf(docindex.EINVALID, "failed to parse HTML: %v", err)
	}

	headings := doc.Find(headingSelector)
	headings.Each(func(_ int, sel *goquery.Selection) {
		if id := strings.TrimSpace(sel.AttrOr("id", "")); id != "" && headingText(sel) != "" {
			set.Reserve(id)
		}
	})

	var out []docindex.Heading
	changed := false
	headings.Each(func(_ int, sel *goquery.Selection) {
		title := headingText(sel)
		if title == "" {
			return
		}

		id := strings.TrimSpace(sel.AttrOr("id", ""))
		if id == "" {
			id = set.Claim(docindex.GenerateAnchorID(title, opts))
			sel.SetAttr("id", id)
			changed = true
		}

		out = append(out, docindex.Heading{
			Level: headingLevel(sel),
			ID:    id,
			Title: title,
		})
	})

	if !changed {
		return raw, out, nil
	}

	rendered, err := render(doc, raw)
	if err != nil {
		return "", nil, err
	}
	return rendered, out, nil
}

// render serializes doc in the same shape as the raw markup it was parsed
// from: a full document for full documents, the body contents otherwise.
func render(doc *goquery.Document, raw string) (string, error) {
	var (
		rendered string
		err      error
	)
	if fullDocumentRe.MatchString(raw) {
		rendered, err = doc.Html()
	} else {
		rendered, err = doc.Find("body").Html()
	}
	if err != nil {
		return "", docindex.Errorf(docindex.EINTERNAL, "failed to render HTML: %v", err)
	}
	return rendered, nil
}

func headingText(sel *goquery.Selection) string {
	return docindex.CollapseWhitespace(sel.Text())
}

func headingLevel(sel *goquery.Selection) int {
	name := goquery.NodeName(sel)
	if len(name) != 2 {
		return 0
	}
	return int(name[1] - '0')
}
