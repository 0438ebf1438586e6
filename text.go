package docindex

import (
	"path"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Limits applied to index text.
const (
	// MaxFieldLength caps every cleaned text field.
	MaxFieldLength = 2000

	// ExcerptThreshold is the length above which excerpts are truncated.
	ExcerptThreshold = 300

	// ExcerptLength is the target length of a truncated excerpt.
	ExcerptLength = 250
)

// CanonicalURL derives the page URL from a document path. Source
// extensions are dropped and a trailing index collapses to its parent, so
// "index.html" becomes "/" and "foo/index.html" becomes "/foo". Other
// extensions are part of the URL.
func CanonicalURL(p string) string {
	p = strings.ReplaceAll(strings.TrimSpace(p), "\\", "/")
	if _, ok := FormatFromPath(p); ok {
		p = strings.TrimSuffix(p, path.Ext(p))
	}
	p = path.Clean("/" + p)
	if p == "/index" {
		return "/"
	}
	p = strings.TrimSuffix(p, "/index")
	if p == "" {
		return "/"
	}
	return p
}

// SectionURL appends an anchor fragment to a page URL.
func SectionURL(pageURL, anchor string) string {
	if anchor == "" {
		return pageURL
	}
	return pageURL + "#" + anchor
}

// DisplayName picks the page name from metadata: an explicit pageName,
// then a nested seo.title, then title, then fallback.
func DisplayName(meta Value, fallback string) string {
	if s := meta.StringField("pageName"); s != "" {
		return s
	}
	if seo, ok := meta.Get("seo"); ok {
		if s := seo.StringField("title"); s != "" {
			return s
		}
	}
	if s := meta.StringField("title"); s != "" {
		return s
	}
	return fallback
}

// Excerpt returns text unchanged when it is at most ExcerptThreshold
// characters. Longer text is cut to ExcerptLength characters at the last
// whole word and suffixed with "...".
func Excerpt(text string) string {
	text = strings.TrimSpace(text)
	if utf8.RuneCountInString(text) <= ExcerptThreshold {
		return text
	}

	cut := string([]rune(text)[:ExcerptLength])
	if i := strings.LastIndexFunc(cut, unicode.IsSpace); i > 0 {
		cut = cut[:i]
	}
	cut = strings.TrimRightFunc(cut, func(r rune) bool {
		return unicode.IsSpace(r) || unicode.IsPunct(r)
	})
	return cut + "..."
}

// WordCount counts whitespace-separated words.
func WordCount(text string) int {
	return len(strings.Fields(text))
}

// CollapseWhitespace trims text and joins its words with single spaces.
func CollapseWhitespace(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

// CleanText collapses whitespace, drops characters outside letters,
// digits and a safe punctuation set, and truncates to MaxFieldLength.
func CleanText(text string) string {
	text = strings.Map(func(r rune) rune {
		switch {
		case unicode.IsLetter(r), unicode.IsDigit(r), unicode.IsMark(r):
			return r
		case unicode.IsSpace(r):
			return ' '
		case strings.ContainsRune(safePunctuation, r):
			return r
		}
		return -1
	}, text)

	text = CollapseWhitespace(text)
	if utf8.RuneCountInString(text) > MaxFieldLength {
		text = strings.TrimSpace(string([]rune(text)[:MaxFieldLength]))
	}
	return text
}

const safePunctuation = `.,;:!?'"()[]{}-_/\&@#%+*=$|~^` + "–—‘’“”…"

// Capitalize upper-cases the first letter of s.
func Capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
