package mock

import "github.com/fwojciec/docindex"

var _ docindex.FrameworkDetector = (*FrameworkDetector)(nil)

// FrameworkDetector is a mock implementation of docindex.FrameworkDetector.
type FrameworkDetector struct {
	DetectFn func(html string) docindex.Framework
}

func (d *FrameworkDetector) Detect(html string) docindex.Framework {
	return d.DetectFn(html)
}

var _ docindex.ChromeRegistry = (*ChromeRegistry)(nil)

// ChromeRegistry is a mock implementation of docindex.ChromeRegistry.
type ChromeRegistry struct {
	GetFn           func(framework docindex.Framework) (docindex.Chrome, bool)
	ChromeForHTMLFn func(html string) docindex.Chrome
	RegisterFn      func(framework docindex.Framework, exclude ...string)
	ListFn          func() []docindex.Framework
}

func (r *ChromeRegistry) Get(framework docindex.Framework) (docindex.Chrome, bool) {
	return r.GetFn(framework)
}

func (r *ChromeRegistry) ChromeForHTML(html string) docindex.Chrome {
	return r.ChromeForHTMLFn(html)
}

func (r *ChromeRegistry) Register(framework docindex.Framework, exclude ...string) {
	r.RegisterFn(framework, exclude...)
}

func (r *ChromeRegistry) List() []docindex.Framework {
	return r.ListFn()
}
