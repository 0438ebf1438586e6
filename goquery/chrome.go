package goquery

import (
	"slices"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/docindex"
)

var (
	_ docindex.FrameworkDetector = (*Detector)(nil)
	_ docindex.ChromeRegistry    = (*Registry)(nil)
)

// frameworkMarkers lists, in detection order, the selectors unique to each
// framework. VitePress precedes VuePress because it reuses some VuePress
// class names.
var frameworkMarkers = []struct {
	framework docindex.Framework
	selectors []string
}{
	{docindex.FrameworkDocusaurus, []string{
		"#__docusaurus_skipToContent_fallback",
		".theme-doc-sidebar-container",
		"html[data-rh][data-theme]",
	}},
	{docindex.FrameworkMkDocs, []string{
		"[data-md-color-scheme]",
		"[data-md-component]",
		".md-nav--primary",
	}},
	{docindex.FrameworkSphinx, []string{
		".toctree-wrapper",
		".wy-nav-side",
		".wy-menu-vertical",
		".sphinxsidebar",
	}},
	{docindex.FrameworkVitePress, []string{"#VPContent", ".VPDoc", ".VPDocAsideOutline"}},
	{docindex.FrameworkVuePress, []string{".theme-default-content", ".sidebar-links", ".vuepress-navbar"}},
	{docindex.FrameworkGitBook, []string{
		"[data-testid='space.sidebar']",
		"[data-testid='page.desktopTableOfContents']",
	}},
	{docindex.FrameworkNextra, []string{".nextra-navbar", ".nextra-sidebar", ".nextra-toc"}},
}

// Detector identifies documentation frameworks from their meta generator
// tag or, failing that, from framework-specific markup.
type Detector struct{}

// NewDetector creates a new Detector.
func NewDetector() *Detector {
	return &Detector{}
}

// Detect returns the framework that generated html.
func (d *Detector) Detect(html string) docindex.Framework {
	if strings.TrimSpace(html) == "" {
		return docindex.FrameworkUnknown
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return docindex.FrameworkUnknown
	}
	return detect(doc)
}

func detect(doc *goquery.Document) docindex.Framework {
	if f := fromGenerator(doc); f != docindex.FrameworkUnknown {
		return f
	}
	for _, m := range frameworkMarkers {
		for _, sel := range m.selectors {
			if doc.Find(sel).Length() > 0 {
				return m.framework
			}
		}
	}
	if hasGitBookClasses(doc) {
		return docindex.FrameworkGitBook
	}
	return docindex.FrameworkUnknown
}

// fromGenerator reads the meta generator tag, the most reliable signal
// when present.
func fromGenerator(doc *goquery.Document) docindex.Framework {
	generator := strings.ToLower(doc.Find("meta[name='generator']").Last().AttrOr("content", ""))
	if generator == "" {
		return docindex.FrameworkUnknown
	}
	for _, f := range []docindex.Framework{
		docindex.FrameworkSphinx,
		docindex.FrameworkGitBook,
		docindex.FrameworkDocusaurus,
		docindex.FrameworkMkDocs,
		docindex.FrameworkVitePress,
		docindex.FrameworkVuePress,
		docindex.FrameworkNextra,
	} {
		if strings.Contains(generator, string(f)) {
			return f
		}
	}
	return docindex.FrameworkUnknown
}

// hasGitBookClasses reports whether the html element carries at least two
// of GitBook's theme classes.
func hasGitBookClasses(doc *goquery.Document) bool {
	classes := strings.Fields(doc.Find("html").AttrOr("class", ""))
	count := 0
	for _, c := range []string{"circular-corners", "theme-clean", "tint"} {
		if slices.Contains(classes, c) {
			count++
		}
	}
	return count >= 2
}

// Registry maps frameworks to the selectors of their navigation chrome.
type Registry struct {
	detector docindex.FrameworkDetector
	chrome   map[docindex.Framework][]string
}

// NewRegistry creates an empty Registry using detector.
func NewRegistry(detector docindex.FrameworkDetector) *Registry {
	return &Registry{
		detector: detector,
		chrome:   make(map[docindex.Framework][]string),
	}
}

// NewDefaultRegistry creates a Registry with chrome selectors for every
// recognized framework.
func NewDefaultRegistry() *Registry {
	r := NewRegistry(NewDetector())
	r.Register(docindex.FrameworkDocusaurus,
		".theme-doc-sidebar-container", ".table-of-contents", "nav.navbar",
		".theme-doc-breadcrumbs", ".pagination-nav", "footer")
	r.Register(docindex.FrameworkMkDocs,
		".md-header", ".md-tabs", ".md-sidebar", "[data-md-component='navigation']",
		"[data-md-component='toc']", ".md-footer", ".headerlink")
	r.Register(docindex.FrameworkSphinx,
		".wy-nav-side", ".wy-menu-vertical", ".sphinxsidebar", "#localtoc",
		".related", ".rst-footer-buttons", ".headerlink", "footer")
	r.Register(docindex.FrameworkVitePress,
		".VPNav", ".VPLocalNav", ".VPSidebar", ".VPDocAsideOutline", ".VPDocFooter")
	r.Register(docindex.FrameworkVuePress,
		".navbar", ".sidebar", ".sidebar-links", ".page-nav", ".page-edit")
	r.Register(docindex.FrameworkGitBook,
		"[data-testid='space.header']", "[data-testid='space.sidebar']",
		"[data-testid='page.desktopTableOfContents']", "footer")
	r.Register(docindex.FrameworkNextra,
		".nextra-navbar", ".nextra-sidebar-container", ".nextra-sidebar", ".nextra-toc", "footer")
	return r
}

// Get returns the chrome registered for framework.
func (r *Registry) Get(framework docindex.Framework) (docindex.Chrome, bool) {
	exclude, ok := r.chrome[framework]
	if !ok {
		return docindex.Chrome{}, false
	}
	return docindex.Chrome{Framework: framework, Exclude: slices.Clone(exclude)}, true
}

// ChromeForHTML detects the framework of html and returns its chrome.
func (r *Registry) ChromeForHTML(html string) docindex.Chrome {
	framework := r.detector.Detect(html)
	if chrome, ok := r.Get(framework); ok {
		return chrome
	}
	return docindex.Chrome{Framework: framework}
}

// Register adds or replaces the chrome selectors of a framework.
func (r *Registry) Register(framework docindex.Framework, exclude ...string) {
	r.chrome[framework] = slices.Clone(exclude)
}

// List returns the registered frameworks in name order.
func (r *Registry) List() []docindex.Framework {
	frameworks := make([]docindex.Framework, 0, len(r.chrome))
	for f := range r.chrome {
		frameworks = append(frameworks, f)
	}
	slices.Sort(frameworks)
	return frameworks
}
