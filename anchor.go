package docindex

import (
	"regexp"
	"strconv"
	"strings"
)

// FallbackAnchorID is returned when a text yields no usable characters.
const FallbackAnchorID = "section"

// AnchorOptions controls how anchor ids are generated.
type AnchorOptions struct {
	// MaxLength caps the slug before prefix and suffix are added.
	// Zero means 50.
	MaxLength int `yaml:"maxLength" json:"maxLength,omitempty"`

	// StripDigits removes digits from the slug. Digits are kept by default.
	StripDigits bool `yaml:"stripDigits" json:"stripDigits,omitempty"`

	// Separator joins words. Empty means "-".
	Separator string `yaml:"separator" json:"separator,omitempty"`

	Prefix string `yaml:"prefix" json:"prefix,omitempty"`
	Suffix string `yaml:"suffix" json:"suffix,omitempty"`
}

func (o AnchorOptions) maxLength() int {
	if o.MaxLength <= 0 {
		return 50
	}
	return o.MaxLength
}

func (o AnchorOptions) separator() string {
	if o.Separator == "" {
		return "-"
	}
	return o.Separator
}

var (
	anchorTagRe     = regexp.MustCompile(`<[^>]*>`)
	anchorInvalidRe = regexp.MustCompile(`[^\w\s-]`)
	anchorSpaceRe   = regexp.MustCompile(`[\s_]+`)
	anchorDigitRe   = regexp.MustCompile(`[0-9]`)
)

// GenerateAnchorID converts text into a URL-fragment-safe id.
// It never returns an empty string.
func GenerateAnchorID(text string, opts AnchorOptions) string {
	sep := opts.separator()
	repeatedSep := regexp.MustCompile(`(?:` + regexp.QuoteMeta(sep) + `)+`)

	collapse := func(s string) string {
		s = repeatedSep.ReplaceAllString(s, sep)
		return trimSeparator(s, sep)
	}

	id := strings.ToLower(text)
	id = anchorTagRe.ReplaceAllString(id, "")
	id = anchorInvalidRe.ReplaceAllString(id, "")
	id = anchorSpaceRe.ReplaceAllString(strings.TrimSpace(id), sep)
	id = collapse(id)

	if opts.StripDigits {
		id = collapse(anchorDigitRe.ReplaceAllString(id, ""))
	}

	if limit := opts.maxLength(); len(id) > limit {
		id = trimSeparator(id[:limit], sep)
	}

	parts := make([]string, 0, 3)
	for _, p := range []string{opts.Prefix, id, opts.Suffix} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	id = strings.Join(parts, sep)

	if strings.TrimSpace(id) == "" {
		return FallbackAnchorID
	}
	return id
}

func trimSeparator(s, sep string) string {
	for strings.HasPrefix(s, sep) {
		s = s[len(sep):]
	}
	for strings.HasSuffix(s, sep) {
		s = s[:len(s)-len(sep)]
	}
	return s
}

// AnchorSet tracks the anchor ids used within one document.
// Uniqueness is document-scoped: allocate a new set per document.
type AnchorSet struct {
	used map[string]struct{}
}

// NewAnchorSet returns an empty AnchorSet.
func NewAnchorSet() *AnchorSet {
	return &AnchorSet{used: make(map[string]struct{})}
}

// Reserve records an id chosen by the author. Explicit ids are never
// rewritten, even when they collide.
func (s *AnchorSet) Reserve(id string) {
	s.used[id] = struct{}{}
}

// Has reports whether id is already in use.
func (s *AnchorSet) Has(id string) bool {
	_, ok := s.used[id]
	return ok
}

// Claim returns candidate, or candidate suffixed with the first free
// "-N", and records the result as used.
func (s *AnchorSet) Claim(candidate string) string {
	id := candidate
	for n := 1; s.Has(id); n++ {
		id = candidate + "-" + strconv.Itoa(n)
	}
	s.Reserve(id)
	return id
}

// Len returns the number of ids in use.
func (s *AnchorSet) Len() int {
	return len(s.used)
}
