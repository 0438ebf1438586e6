// Package indexer turns source documents into search entries and
// aggregates them into the search index.
package indexer

import (
	"context"
	"log/slog"
	"slices"
	"strconv"
	"strings"
	"unicode"

	"github.com/fwojciec/docindex"
)

// Ensure Assembler implements docindex.EntryAssembler at compile time.
var _ docindex.EntryAssembler = (*Assembler)(nil)

// Fallback titles.
const (
	UntitledPage    = "Untitled Page"
	UntitledSection = "Untitled"
)

// Assembler produces the page and section entries of one document.
type Assembler struct {
	Normalizer docindex.Normalizer
	Headings   docindex.HeadingExtractor
	Converter  docindex.Converter
	Renderer   docindex.MarkdownRenderer

	// Extractor strips boilerplate from HTML sources when
	// Config.ExtractMain is set. Optional.
	Extractor docindex.Extractor

	// Chrome supplies framework navigation selectors when
	// Config.StripChrome is set. Optional.
	Chrome docindex.ChromeRegistry

	Config *docindex.Config

	// Logger receives recovered per-document failures. Defaults to discarding.
	Logger *slog.Logger
}

// document is the per-document working state of Assemble.
type document struct {
	src      *docindex.SourceDocument
	url      string
	name     string
	meta     pageMeta
	anchors  *docindex.AnchorSet
	headings []docindex.Heading

	// html is the markup the body text is derived from; segments is the
	// markdown the content segmenter splits.
	html     string
	segments string

	// opts normalizes the page body; it extends the configured options
	// with the detected chrome.
	opts docindex.NormalizeOptions

	index int
}

// pageMeta is the metadata a page entry carries.
type pageMeta struct {
	title       string
	description string
	excerpt     string
	author      string
	date        string
	tags        []string
}

// nextIndex returns the next section index within the document.
func (d *document) nextIndex() int {
	i := d.index
	d.index++
	return i
}

// Assemble returns the entries for doc per the configured levels.
// Failures are logged and degrade to fewer entries; they never propagate.
func (a *Assembler) Assemble(ctx context.Context, src *docindex.SourceDocument) []*docindex.SearchEntry {
	if err := src.Validate(); err != nil {
		a.logger().Warn("skipping document", "error", err)
		return nil
	}
	if ctx.Err() != nil {
		return nil
	}

	cfg := a.config()
	d := a.prepare(src, cfg)

	var entries []*docindex.SearchEntry
	if cfg.HasLevel(docindex.EntryPage) {
		if e := a.pageEntry(d, cfg); e != nil {
			entries = append(entries, e)
		}
	}
	if cfg.HasLevel(docindex.EntrySection) {
		if len(src.Sections) > 0 {
			entries = append(entries, a.structuredEntries(d, cfg)...)
		} else {
			entries = append(entries, a.segmentEntries(d, cfg)...)
		}
	}
	// The component level has no entries of its own yet.
	return entries
}

// prepare renders the body, assigns anchors and collects metadata.
func (a *Assembler) prepare(src *docindex.SourceDocument, cfg *docindex.Config) *document {
	d := &document{
		src:     src,
		url:     docindex.CanonicalURL(src.Path),
		anchors: docindex.NewAnchorSet(),
		opts:    cfg.NormalizeOptions(),
	}

	// Author-supplied section ids win over anything generated below.
	for _, s := range src.Sections {
		if s.ID != "" {
			d.anchors.Reserve(s.ID)
		}
	}

	var extracted *docindex.ExtractResult
	switch src.Format {
	case docindex.FormatMarkdown:
		body := string(src.Content)
		d.headings = docindex.ExtractHeadings(body, d.anchors, cfg.Anchor)
		d.html = a.render(src.Path, body)
		d.segments = body
	case docindex.FormatHTML:
		raw := string(src.Content)
		anchored, headings, err := a.Headings.EnsureAnchors(raw, d.anchors, cfg.Anchor)
		if err != nil {
			a.warn(src, "failed to ensure heading anchors", err)
			anchored = raw
		} else if anchored != raw {
			src.Content = []byte(anchored)
		}
		d.headings = headings
		// Text comes from the original markup: rendering the anchored tree
		// re-encodes entities the normalizer must see verbatim.
		d.html = raw

		if cfg.StripChrome && a.Chrome != nil {
			if chrome := a.Chrome.ChromeForHTML(raw); len(chrome.Exclude) > 0 {
				d.opts.ExcludeSelectors = append(slices.Clone(d.opts.ExcludeSelectors), chrome.Exclude...)
			}
		}

		if cfg.ExtractMain && a.Extractor != nil && strings.TrimSpace(raw) != "" {
			if res, err := a.Extractor.Extract(raw); err != nil {
				a.warn(src, "failed to extract main content", err)
			} else {
				extracted = res
				if strings.TrimSpace(res.ContentHTML) != "" {
					d.html = res.ContentHTML
				}
			}
		}
		d.segments = a.markdown(src, d.html, d.opts)
	}

	a.ensureSectionIDs(d, cfg)
	d.meta = a.metadata(src.Meta, extracted)
	d.name = docindex.DisplayName(src.Meta, firstNonEmpty(d.meta.title, UntitledPage))
	return d
}

// ensureSectionIDs writes a generated anchor onto every enabled section
// lacking one.
func (a *Assembler) ensureSectionIDs(d *document, cfg *docindex.Config) {
	for _, s := range d.src.Sections {
		if s.ID != "" || s.Disabled {
			continue
		}
		candidate := s.Type
		for _, field := range []string{"title", "leadIn"} {
			if text, ok := docindex.ResolveField(s.Fields, field); ok && strings.TrimSpace(text) != "" {
				candidate = a.plain(d.src, text, cfg)
				break
			}
		}
		s.ID = d.anchors.Claim(docindex.GenerateAnchorID(candidate, cfg.Anchor))
	}
}

func (a *Assembler) metadata(meta docindex.Value, extracted *docindex.ExtractResult) pageMeta {
	m := pageMeta{
		title:       meta.StringField("title"),
		description: meta.StringField("description"),
		excerpt:     meta.StringField("excerpt"),
		author:      meta.StringField("author"),
		date:        meta.StringField("date"),
		tags:        meta.StringsField("tags"),
	}
	if extracted == nil {
		return m
	}
	m.title = firstNonEmpty(m.title, extracted.Title)
	m.description = firstNonEmpty(m.description, extracted.Description)
	m.author = firstNonEmpty(m.author, extracted.Author)
	m.date = firstNonEmpty(m.date, extracted.Date)
	if len(m.tags) == 0 {
		m.tags = extracted.Tags
	}
	return m
}

// pageEntry aggregates metadata and body text. A page with neither yields nil.
func (a *Assembler) pageEntry(d *document, cfg *docindex.Config) *docindex.SearchEntry {
	var parts []string
	if d.src.Format == docindex.FormatData {
		for _, s := range d.src.Sections {
			if s.Disabled {
				continue
			}
			parts = append(parts, a.sectionTexts(d, s, cfg)...)
		}
	} else if text := a.normalize(d.src, d.html, d.opts); text != "" {
		parts = append(parts, text)
	}
	for _, field := range cfg.ExtraFields {
		if text := a.plain(d.src, metaText(d.src.Meta, field), cfg); text != "" {
			parts = append(parts, text)
		}
	}
	content := strings.Join(parts, "\n")

	m := d.meta
	if content == "" && m.title == "" && m.description == "" && m.excerpt == "" && len(m.tags) == 0 {
		return nil
	}

	excerpt := m.excerpt
	if excerpt == "" {
		excerpt = docindex.Excerpt(firstNonEmpty(content, m.description))
	}

	return &docindex.SearchEntry{
		ID:           "page:" + d.url,
		Type:         docindex.EntryPage,
		URL:          d.url,
		Title:        d.name,
		PageName:     d.name,
		Content:      content,
		Excerpt:      excerpt,
		Description:  m.description,
		Tags:         m.tags,
		Date:         m.date,
		Author:       m.author,
		SectionIndex: d.nextIndex(),
		Headings:     d.headings,
		WordCount:    docindex.WordCount(content),
	}
}

// structuredEntries emits one entry per enabled section with content.
func (a *Assembler) structuredEntries(d *document, cfg *docindex.Config) []*docindex.SearchEntry {
	var entries []*docindex.SearchEntry
	for _, s := range d.src.Sections {
		if s.Disabled {
			continue
		}
		texts := a.sectionTexts(d, s, cfg)
		if len(texts) == 0 {
			continue
		}
		content := strings.Join(texts, "\n")
		idx := d.nextIndex()
		entries = append(entries, &docindex.SearchEntry{
			ID:           sectionEntryID(d.url, idx),
			Type:         docindex.EntrySection,
			URL:          docindex.SectionURL(d.url, s.ID),
			Title:        a.sectionTitle(d, s, cfg),
			PageName:     d.name,
			Content:      content,
			Excerpt:      docindex.Excerpt(content),
			Tags:         d.meta.tags,
			SectionType:  s.Type,
			SectionIndex: idx,
			WordCount:    docindex.WordCount(content),
		})
	}
	return entries
}

func sectionEntryID(url string, index int) string {
	return "section:" + url + ":" + strconv.Itoa(index)
}

// sectionTexts resolves the configured fields of s and strips their markup.
func (a *Assembler) sectionTexts(d *document, s *docindex.ContentSection, cfg *docindex.Config) []string {
	var texts []string
	for _, field := range cfg.FieldsFor(s.Type) {
		raw, ok := docindex.ResolveField(s.Fields, field)
		if !ok {
			continue
		}
		if text := a.plain(d.src, raw, cfg); text != "" {
			texts = append(texts, text)
		}
	}
	return texts
}

func (a *Assembler) sectionTitle(d *document, s *docindex.ContentSection, cfg *docindex.Config) string {
	for _, field := range []string{"title", "leadIn"} {
		if raw, ok := docindex.ResolveField(s.Fields, field); ok {
			if text := a.plain(d.src, raw, cfg); text != "" {
				return docindex.CollapseWhitespace(text)
			}
		}
	}
	if s.Type != "" {
		return docindex.Capitalize(s.Type) + " Section"
	}
	return UntitledSection
}

// segmentEntries splits long-form content on headings and emits one entry
// per surviving block.
func (a *Assembler) segmentEntries(d *document, cfg *docindex.Config) []*docindex.SearchEntry {
	blocks := docindex.SplitHeadings(d.segments)

	segments := make([]docindex.Segment, 0, len(blocks))
	next := 0
	for _, b := range blocks {
		seg := docindex.Segment{Content: a.markdownText(d.src, b.Content, cfg)}
		if b.Heading != "" {
			seg.Heading, seg.Anchor, next = a.headingFor(d, b.Heading, next, cfg)
		}
		segments = append(segments, seg)
	}

	var entries []*docindex.SearchEntry
	for _, seg := range docindex.ChunkSegments(segments, cfg.Segment) {
		idx := d.nextIndex()
		entries = append(entries, &docindex.SearchEntry{
			ID:           sectionEntryID(d.url, idx),
			Type:         docindex.EntrySection,
			URL:          docindex.SectionURL(d.url, seg.Anchor),
			Title:        firstNonEmpty(seg.Heading, d.name),
			PageName:     d.name,
			Content:      seg.Content,
			Excerpt:      docindex.Excerpt(seg.Content),
			Tags:         d.meta.tags,
			SectionIndex: idx,
			WordCount:    docindex.WordCount(seg.Content),
		})
	}
	return entries
}

// headingFor resolves a block heading to the first document heading at
// or after next and returns its title, its anchor and the position after
// it. Markdown headings match on their source text. Converted HTML
// headings match on their letters and digits, then fall back to document
// order, since conversion drops headings but never adds or reorders them.
// A heading the document does not carry gets a fresh anchor.
func (a *Assembler) headingFor(d *document, heading string, next int, cfg *docindex.Config) (string, string, int) {
	// Rendered as a heading so list markers and the like stay inline text.
	html := a.render(d.src.Path, "# "+heading)
	title := a.normalize(d.src, html, cfg.NormalizeOptions())
	key := matchKey(a.normalize(d.src, html, docindex.NormalizeOptions{DecodeEntities: true}))

	isHTML := d.src.Format == docindex.FormatHTML
	for i := next; i < len(d.headings); i++ {
		h := d.headings[i]
		if h.Title == heading || (key != "" && matchKey(h.Title) == key) {
			if isHTML {
				title = h.Title
			}
			return title, h.ID, i + 1
		}
	}
	if isHTML && next < len(d.headings) {
		h := d.headings[next]
		return h.Title, h.ID, next + 1
	}
	return title, d.anchors.Claim(docindex.GenerateAnchorID(title, cfg.Anchor)), next
}

// matchKey reduces a heading title to its lowercased letters and digits.
func matchKey(title string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(title) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// markdown converts the pruned body markup into markdown for segmentation.
func (a *Assembler) markdown(src *docindex.SourceDocument, html string, opts docindex.NormalizeOptions) string {
	if strings.TrimSpace(html) == "" {
		return ""
	}
	pruned, err := a.Normalizer.Prune(html, opts)
	if err != nil {
		a.warn(src, "failed to prune markup", err)
		return ""
	}
	md, err := a.Converter.Convert(pruned)
	if err != nil {
		a.warn(src, "failed to convert markup", err)
		return ""
	}
	return md
}

// markdownText renders a markdown fragment and returns its plain text.
func (a *Assembler) markdownText(src *docindex.SourceDocument, md string, cfg *docindex.Config) string {
	if strings.TrimSpace(md) == "" {
		return ""
	}
	return a.normalize(src, a.render(src.Path, md), cfg.NormalizeOptions())
}

func (a *Assembler) render(path, md string) string {
	if strings.TrimSpace(md) == "" {
		return ""
	}
	html, err := a.Renderer.Render(md)
	if err != nil {
		a.logger().Warn("failed to render markdown", "path", path, "error", err)
		return ""
	}
	return html
}

// plain strips markup from a metadata or section field.
func (a *Assembler) plain(src *docindex.SourceDocument, text string, cfg *docindex.Config) string {
	if strings.TrimSpace(text) == "" {
		return ""
	}
	return a.normalize(src, text, cfg.NormalizeOptions())
}

func (a *Assembler) normalize(src *docindex.SourceDocument, html string, opts docindex.NormalizeOptions) string {
	if strings.TrimSpace(html) == "" {
		return ""
	}
	text, err := a.Normalizer.Normalize(html, opts)
	if err != nil {
		a.warn(src, "failed to normalize markup", err)
		return ""
	}
	return text
}

func (a *Assembler) warn(src *docindex.SourceDocument, msg string, err error) {
	a.logger().Warn(msg, "path", src.Path, "error", err)
}

func (a *Assembler) logger() *slog.Logger {
	if a.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return a.Logger
}

func (a *Assembler) config() *docindex.Config {
	if a.Config == nil {
		return docindex.DefaultConfig()
	}
	return a.Config
}

// metaText returns the text of a frontmatter field. Lists are joined with
// spaces; nested objects are searched for a string of the same name.
func metaText(meta docindex.Value, name string) string {
	v, ok := meta.Get(name)
	if !ok {
		return ""
	}
	switch v.Kind {
	case docindex.KindArray:
		return strings.Join(meta.StringsField(name), " ")
	case docindex.KindObject:
		text, _ := docindex.ResolveField(v, name)
		return text
	}
	return v.Text()
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
