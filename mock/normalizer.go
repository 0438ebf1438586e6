package mock

import "github.com/fwojciec/docindex"

var _ docindex.Normalizer = (*Normalizer)(nil)

// Normalizer is a mock implementation of docindex.Normalizer.
type Normalizer struct {
	NormalizeFn func(html string, opts docindex.NormalizeOptions) (string, error)
	PruneFn     func(html string, opts docindex.NormalizeOptions) (string, error)
}

func (n *Normalizer) Normalize(html string, opts docindex.NormalizeOptions) (string, error) {
	return n.NormalizeFn(html, opts)
}

func (n *Normalizer) Prune(html string, opts docindex.NormalizeOptions) (string, error) {
	return n.PruneFn(html, opts)
}

var _ docindex.HeadingExtractor = (*HeadingExtractor)(nil)

// HeadingExtractor is a mock implementation of docindex.HeadingExtractor.
type HeadingExtractor struct {
	EnsureAnchorsFn func(html string, set *docindex.AnchorSet, opts docindex.AnchorOptions) (string, []docindex.Heading, error)
}

func (e *HeadingExtractor) EnsureAnchors(html string, set *docindex.AnchorSet, opts docindex.AnchorOptions) (string, []docindex.Heading, error) {
	return e.EnsureAnchorsFn(html, set, opts)
}
