package docindex

import (
	"context"
	"path"
	"strings"
)

// Format identifies how a source document's content is encoded.
type Format string

// Supported source formats.
const (
	FormatHTML     Format = "html"
	FormatMarkdown Format = "markdown"
	FormatData     Format = "data" // JSON or YAML content tree without a body
)

// FormatFromPath infers the source format from a file extension.
// Returns false for unsupported extensions.
func FormatFromPath(p string) (Format, bool) {
	switch strings.ToLower(path.Ext(p)) {
	case ".html", ".htm":
		return FormatHTML, true
	case ".md", ".markdown":
		return FormatMarkdown, true
	case ".json", ".yaml", ".yml":
		return FormatData, true
	}
	return "", false
}

// SourceDocument is a page supplied by the host pipeline.
// The core only reads it, except for anchor ids written back onto
// sections that lack one.
type SourceDocument struct {
	// Path is the document's path relative to the site root, using forward slashes.
	Path    string
	Format  Format
	Content []byte

	// Meta holds the frontmatter as an object Value.
	Meta Value

	// Sections is the optional structured content tree.
	Sections []*ContentSection
}

// Validate returns an error if the document cannot be indexed at all.
func (d *SourceDocument) Validate() error {
	if d == nil {
		return Errorf(EINVALID, "document required")
	}
	if d.Path == "" {
		return Errorf(EINVALID, "document path required")
	}
	return nil
}

// ContentSection is one block of a structured content tree.
type ContentSection struct {
	Type     string
	ID       string
	Disabled bool

	// Fields holds the section's own data as an object Value, including
	// arbitrarily nested objects.
	Fields Value
}

// SectionFromValue builds a ContentSection from a decoded object. The
// sectionType, id and disabled keys are lifted into typed fields; the
// object itself is kept as Fields.
func SectionFromValue(v Value) *ContentSection {
	s := &ContentSection{Fields: v}
	s.Type = v.StringField("sectionType")
	s.ID = v.StringField("id")
	for _, key := range []string{"disabled", "isDisabled"} {
		if f, ok := v.Get(key); ok && f.Kind == KindBool && f.Bool {
			s.Disabled = true
		}
	}
	return s
}

// DocumentSource supplies the documents in scope for a build.
type DocumentSource interface {
	// LoadDocuments returns documents in a stable order.
	LoadDocuments(ctx context.Context) ([]*SourceDocument, error)
}

// MetadataParser decodes frontmatter and content-tree files.
type MetadataParser interface {
	// SplitFrontmatter separates a leading frontmatter block from the body.
	// Content without frontmatter returns a null Value and the input unchanged.
	SplitFrontmatter(content []byte) (Value, []byte, error)

	// DecodeTree decodes a JSON or YAML document into an order-preserving Value.
	DecodeTree(content []byte) (Value, error)
}
