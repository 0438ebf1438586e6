package fs

import (
	"context"
	iofs "io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/fwojciec/docindex"
)

// Ensure Source implements docindex.DocumentSource at compile time.
var _ docindex.DocumentSource = (*Source)(nil)

// sectionsKey holds the content tree of a data file.
const sectionsKey = "sections"

// Source loads documents from a directory tree.
type Source struct {
	fsys   iofs.FS
	parser docindex.MetadataParser

	// Include and Exclude are doublestar patterns matched against slash
	// separated paths relative to the root. An empty Include matches nothing.
	Include []string
	Exclude []string

	// Logger receives a warning for every file that is skipped because its
	// metadata cannot be decoded. Defaults to discarding.
	Logger *slog.Logger
}

// NewSource creates a Source rooted at dir.
func NewSource(dir string, parser docindex.MetadataParser) *Source {
	return NewSourceFS(os.DirFS(dir), parser)
}

// NewSourceFS creates a Source over an arbitrary filesystem.
func NewSourceFS(fsys iofs.FS, parser docindex.MetadataParser) *Source {
	return &Source{
		fsys:    fsys,
		parser:  parser,
		Include: docindex.DefaultConfig().Include,
		Logger:  slog.New(slog.DiscardHandler),
	}
}

// LoadDocuments walks the tree in lexical order and returns every
// supported file matched by Include and not by Exclude. Hidden
// directories are skipped.
func (s *Source) LoadDocuments(ctx context.Context) ([]*docindex.SourceDocument, error) {
	for _, p := range append(append([]string(nil), s.Include...), s.Exclude...) {
		if err := ValidatePattern(p); err != nil {
			return nil, err
		}
	}

	var docs []*docindex.SourceDocument
	err := iofs.WalkDir(s.fsys, ".", func(p string, d iofs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if d.IsDir() {
			if p != "." && strings.HasPrefix(d.Name(), ".") {
				return iofs.SkipDir
			}
			return nil
		}
		if !matchAny(s.Include, p) || matchAny(s.Exclude, p) {
			return nil
		}
		format, ok := docindex.FormatFromPath(p)
		if !ok {
			return nil
		}

		content, err := iofs.ReadFile(s.fsys, p)
		if err != nil {
			return err
		}
		doc, err := s.decode(p, format, content)
		if err != nil {
			s.Logger.Warn("skipping document", "path", p, "error", err)
			return nil
		}
		docs = append(docs, doc)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return docs, nil
}

func (s *Source) decode(p string, format docindex.Format, content []byte) (*docindex.SourceDocument, error) {
	doc := &docindex.SourceDocument{Path: p, Format: format}

	if format != docindex.FormatData {
		meta, body, err := s.parser.SplitFrontmatter(content)
		if err != nil {
			return nil, err
		}
		doc.Meta = meta
		doc.Content = body
		return doc, nil
	}

	tree, err := s.parser.DecodeTree(content)
	if err != nil {
		return nil, err
	}
	if !tree.IsObject() {
		return nil, docindex.Errorf(docindex.EINVALID, "data file must contain an object: %s", p)
	}

	meta := docindex.Object()
	for _, f := range tree.Fields {
		if f.Key != sectionsKey {
			meta.Fields = append(meta.Fields, f)
			continue
		}
		for _, item := range f.Value.Items {
			if item.IsObject() {
				doc.Sections = append(doc.Sections, docindex.SectionFromValue(item))
			}
		}
	}
	doc.Meta = meta
	return doc, nil
}
