// Package goquery implements markup normalization and heading anchoring
// on top of github.com/PuerkitoBio/goquery.
package goquery

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/docindex"
	"golang.org/x/net/html"
)

// Ensure Normalizer implements docindex.Normalizer at compile time.
var _ docindex.Normalizer = (*Normalizer)(nil)

// alwaysRemoved is stripped regardless of configuration.
const alwaysRemoved = "script, style, noscript, template"

// blockElements start and end a line of text.
var blockElements = map[string]bool{
	"address": true, "article": true, "aside": true, "blockquote": true,
	"br": true, "caption": true, "dd": true, "details": true, "dialog": true,
	"div": true, "dl": true, "dt": true, "fieldset": true, "figcaption": true,
	"figure": true, "footer": true, "form": true, "h1": true, "h2": true,
	"h3": true, "h4": true, "h5": true, "h6": true, "header": true,
	"hgroup": true, "hr": true, "li": true, "main": true, "nav": true,
	"ol": true, "p": true, "pre": true, "section": true, "summary": true,
	"table": true, "tbody": true, "tfoot": true, "thead": true, "tr": true,
	"ul": true,
}

// cellElements are separated by spaces.
var cellElements = map[string]bool{"td": true, "th": true}

var entityReplacer = strings.NewReplacer(
	"&amp;", "&",
	"&lt;", "<",
	"&gt;", ">",
	"&quot;", `"`,
	"&apos;", "'",
	"&#39;", "'",
	"&#x27;", "'",
	"&nbsp;", "\u00a0",
	"&mdash;", "—",
	"&ndash;", "–",
	"&hellip;", "…",
	"&copy;", "©",
	"&reg;", "®",
	"&trade;", "™",
	"&lsquo;", "‘",
	"&rsquo;", "’",
	"&ldquo;", "“",
	"&rdquo;", "”",
	"&bull;", "•",
	"&middot;", "·",
)

// markupRe matches complete tags, comments, doctypes and processing
// instructions.
var markupRe = regexp.MustCompile(`(?s)<(?:/?[a-zA-Z][^<>]*|!--.*?--|![^<>]*|\?[^<>]*)>`)

// escapeStrayBrackets escapes every "<" that does not open complete markup,
// so text like "x<y" is not swallowed as the start of a tag.
func escapeStrayBrackets(s string) string {
	if !strings.Contains(s, "<") {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	last := 0
	for _, loc := range markupRe.FindAllStringIndex(s, -1) {
		b.WriteString(strings.ReplaceAll(s[last:loc[0]], "<", "&lt;"))
		b.WriteString(s[loc[0]:loc[1]])
		last = loc[1]
	}
	b.WriteString(strings.ReplaceAll(s[last:], "<", "&lt;"))
	return b.String()
}

// DecodeEntities replaces the common named entities with their characters.
// Unknown entities are left untouched.
func DecodeEntities(s string) string {
	return entityReplacer.Replace(s)
}

// Normalizer derives plain text from HTML.
type Normalizer struct{}

// NewNormalizer creates a new Normalizer.
func NewNormalizer() *Normalizer {
	return &Normalizer{}
}

// Normalize returns the visible text of html. Block elements become line
// breaks, whitespace within a line collapses to single spaces and blank
// lines are dropped.
func (n *Normalizer) Normalize(raw string, opts docindex.NormalizeOptions) (string, error) {
	if strings.TrimSpace(raw) == "" {
		return "", nil
	}

	// Escape ampersands so the parser keeps entities as literal text and
	// only the fixed table below is ever decoded.
	protected := escapeStrayBrackets(strings.ReplaceAll(raw, "&", "&amp;"))

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(protected))
	if err != nil {
		return "", docindex.Errorf(docindex.EINVALID, "failed to parse HTML: %v", err)
	}

	prune(doc, opts.ExcludeSelectors)

	var b strings.Builder
	for _, node := range doc.Find("body").Nodes {
		writeText(&b, node, false)
	}

	text := b.String()
	if opts.DecodeEntities {
		text = DecodeEntities(text)
	}
	return collapseLines(text), nil
}

// Prune returns raw with scripts, styles and excluded regions removed.
// Fragments stay fragments; full documents keep their head.
func (n *Normalizer) Prune(raw string, opts docindex.NormalizeOptions) (string, error) {
	if strings.TrimSpace(raw) == "" {
		return "", nil
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(escapeStrayBrackets(raw)))
	if err != nil {
		return "", docindex.Errorf(docindex.EINVALID, "failed to parse HTML: %v", err)
	}
	prune(doc, opts.ExcludeSelectors)

	return render(doc, raw)
}

func prune(doc *goquery.Document, excludeSelectors []string) {
	doc.Find(alwaysRemoved).Remove()
	for _, sel := range excludeSelectors {
		if strings.TrimSpace(sel) == "" {
			continue
		}
		doc.Find(sel).Remove()
	}
}

// StripHTML returns the plain text of html with entities decoded.
// Unparseable input yields an empty string.
func StripHTML(raw string, excludeSelectors ...string) string {
	text, err := NewNormalizer().Normalize(raw, docindex.NormalizeOptions{
		ExcludeSelectors: excludeSelectors,
		DecodeEntities:   true,
	})
	if err != nil {
		return ""
	}
	return text
}

// writeText appends the text below n. Line breaks in text nodes are
// soft except inside pre.
func writeText(b *strings.Builder, n *html.Node, pre bool) {
	switch n.Type {
	case html.TextNode:
		if pre {
			b.WriteString(n.Data)
		} else {
			b.WriteString(strings.ReplaceAll(n.Data, "\n", " "))
		}
		return
	case html.CommentNode:
		return
	}

	block := n.Type == html.ElementNode && blockElements[n.Data]
	cell := n.Type == html.ElementNode && cellElements[n.Data]
	if block {
		b.WriteByte('\n')
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		writeText(b, c, pre || n.Data == "pre")
	}
	if block {
		b.WriteByte('\n')
	}
	if cell {
		b.WriteByte(' ')
	}
}

func collapseLines(s string) string {
	lines := strings.Split(s, "\n")
	out := lines[:0]
	for _, line := range lines {
		if line = docindex.CollapseWhitespace(line); line != "" {
			out = append(out, line)
		}
	}
	return strings.Join(out, "\n")
}
