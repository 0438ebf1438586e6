package docindex

// Framework identifies the documentation generator that produced a page.
type Framework string

// Recognized documentation frameworks.
const (
	FrameworkUnknown    Framework = ""
	FrameworkDocusaurus Framework = "docusaurus"
	FrameworkMkDocs     Framework = "mkdocs"
	FrameworkSphinx     Framework = "sphinx"
	FrameworkVuePress   Framework = "vuepress"
	FrameworkVitePress  Framework = "vitepress"
	FrameworkGitBook    Framework = "gitbook"
	FrameworkNextra     Framework = "nextra"
)

// Chrome describes the navigation a framework wraps around page content:
// sidebars, tables of contents, navbars and footers.
type Chrome struct {
	Framework Framework

	// Exclude lists CSS selectors matching the chrome regions.
	Exclude []string
}

// FrameworkDetector identifies documentation frameworks from HTML.
type FrameworkDetector interface {
	// Detect returns FrameworkUnknown if the framework cannot be determined.
	Detect(html string) Framework
}

// ChromeRegistry maps frameworks to their chrome.
type ChromeRegistry interface {
	// Get returns the chrome registered for framework, if any.
	Get(framework Framework) (Chrome, bool)

	// ChromeForHTML detects the framework of html and returns its chrome.
	// Unrecognized pages yield a Chrome with no selectors.
	ChromeForHTML(html string) Chrome

	// Register adds or replaces the chrome selectors of a framework.
	Register(framework Framework, exclude ...string)

	// List returns the registered frameworks.
	List() []Framework
}
