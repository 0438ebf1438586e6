package mock

import (
	"context"

	"github.com/fwojciec/docindex"
)

var _ docindex.DocumentSource = (*DocumentSource)(nil)

// DocumentSource is a mock implementation of docindex.DocumentSource.
type DocumentSource struct {
	LoadDocumentsFn func(ctx context.Context) ([]*docindex.SourceDocument, error)
}

func (s *DocumentSource) LoadDocuments(ctx context.Context) ([]*docindex.SourceDocument, error) {
	return s.LoadDocumentsFn(ctx)
}

var _ docindex.MetadataParser = (*MetadataParser)(nil)

// MetadataParser is a mock implementation of docindex.MetadataParser.
type MetadataParser struct {
	SplitFrontmatterFn func(content []byte) (docindex.Value, []byte, error)
	DecodeTreeFn       func(content []byte) (docindex.Value, error)
}

func (p *MetadataParser) SplitFrontmatter(content []byte) (docindex.Value, []byte, error) {
	return p.SplitFrontmatterFn(content)
}

func (p *MetadataParser) DecodeTree(content []byte) (docindex.Value, error) {
	return p.DecodeTreeFn(content)
}
