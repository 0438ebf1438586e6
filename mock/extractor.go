package mock

import "github.com/fwojciec/docindex"

var _ docindex.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of docindex.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*docindex.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*docindex.ExtractResult, error) {
	return e.ExtractFn(html)
}
