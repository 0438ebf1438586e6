package docindex

// Defaults for Config.
const (
	DefaultOutput    = "search-index.json"
	DefaultGenerator = "docindex"
)

// Config controls a build. Zero values take the defaults from
// DefaultConfig when merged.
type Config struct {
	// Levels lists the entry types to produce.
	Levels []EntryType `yaml:"levels"`

	// Include and Exclude are doublestar patterns relative to the source root.
	Include []string `yaml:"include"`
	Exclude []string `yaml:"exclude"`

	// ExcludeSelectors are CSS selectors removed before text extraction.
	ExcludeSelectors []string `yaml:"excludeSelectors"`

	// KeepEntities leaves named entities undecoded.
	KeepEntities bool `yaml:"keepEntities"`

	// ExtractMain strips page boilerplate from HTML sources before indexing.
	ExtractMain bool `yaml:"extractMain"`

	// StripChrome removes the navigation of recognized documentation
	// frameworks from HTML sources.
	StripChrome bool `yaml:"stripChrome"`

	Anchor  AnchorOptions  `yaml:"anchor"`
	Segment SegmentOptions `yaml:"segment"`

	// ExtraFields are frontmatter keys whose text is added to page content.
	ExtraFields []string `yaml:"extraFields"`

	// SectionFields maps a section type to the fields resolved for it.
	// Types without an entry use DefaultSectionFields.
	SectionFields        map[string][]string `yaml:"sectionFields"`
	DefaultSectionFields []string            `yaml:"defaultSectionFields"`

	// Output is the index path relative to the output directory.
	Output    string `yaml:"output"`
	Generator string `yaml:"generator"`

	// Concurrency bounds parallel document processing.
	Concurrency int `yaml:"concurrency"`

	// Consumer is forwarded verbatim into the index for the search client,
	// e.g. {"fuseOptions": {...}}.
	Consumer map[string]any `yaml:"consumer"`
}

// DefaultConfig returns the default build configuration.
func DefaultConfig() *Config {
	return &Config{
		Levels:               []EntryType{EntryPage, EntrySection},
		Include:              []string{"**/*.{html,htm,md,markdown,json,yaml,yml}"},
		Segment:              DefaultSegmentOptions(),
		DefaultSectionFields: []string{"title", "leadIn", "subtitle", "prose", "text", "description"},
		Output:               DefaultOutput,
		Generator:            DefaultGenerator,
		Concurrency:          4,
		Consumer: map[string]any{
			"fuseOptions": DefaultFuseOptions(),
		},
	}
}

// DefaultFuseOptions returns options for a Fuse.js-style consumer.
func DefaultFuseOptions() map[string]any {
	return map[string]any{
		"includeScore":       true,
		"includeMatches":     true,
		"minMatchCharLength": 2,
		"threshold":          0.3,
		"ignoreLocation":     true,
		"keys": []any{
			map[string]any{"name": "title", "weight": 0.4},
			map[string]any{"name": "content", "weight": 0.3},
			map[string]any{"name": "tags", "weight": 0.15},
			map[string]any{"name": "excerpt", "weight": 0.1},
			map[string]any{"name": "pageName", "weight": 0.05},
		},
	}
}

// HasLevel reports whether entries of type t should be produced.
func (c *Config) HasLevel(t EntryType) bool {
	for _, l := range c.Levels {
		if l == t {
			return true
		}
	}
	return false
}

// FieldsFor returns the fields resolved for a section type.
func (c *Config) FieldsFor(sectionType string) []string {
	if fields, ok := c.SectionFields[sectionType]; ok && len(fields) > 0 {
		return fields
	}
	return c.DefaultSectionFields
}

// NormalizeOptions returns the normalizer settings implied by c.
func (c *Config) NormalizeOptions() NormalizeOptions {
	return NormalizeOptions{
		ExcludeSelectors: c.ExcludeSelectors,
		DecodeEntities:   !c.KeepEntities,
	}
}

// Validate rejects levels and settings a build cannot honour.
func (c *Config) Validate() error {
	for _, l := range c.Levels {
		switch l {
		case EntryPage, EntrySection, EntryComponent:
		default:
			return Errorf(EINVALID, "unknown index level %q", l)
		}
	}
	if c.Concurrency < 0 {
		return Errorf(EINVALID, "concurrency must not be negative")
	}
	return nil
}
