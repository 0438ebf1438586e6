package docindex

import (
	"regexp"
	"strings"
)

// Heading is an anchored heading in a document.
type Heading struct {
	Level int    `json:"level"`
	ID    string `json:"id"`
	Title string `json:"title"`
}

// HeadingExtractor assigns anchors to the headings of an HTML document.
type HeadingExtractor interface {
	// EnsureAnchors visits h1-h6 in document order. Existing ids are kept
	// and reserved in set; missing ids are generated, disambiguated against
	// set and written back. It returns the updated markup and the ordered
	// heading list.
	EnsureAnchors(html string, set *AnchorSet, opts AnchorOptions) (string, []Heading, error)
}

var (
	markdownHeadingRe = regexp.MustCompile(`^(#{1,6})\s+(.+?)(?:\s+#+)?\s*$`)
	explicitIDRe      = regexp.MustCompile(`\s*\{#([^}\s]+)\}$`)
)

// ExtractHeadings parses markdown and returns all headings (H1-H6) with
// unique anchors. Headings inside fenced code blocks are ignored. A
// trailing {#id} on a heading is kept verbatim as its anchor and reserved
// before any anchor is generated.
func ExtractHeadings(markdown string, set *AnchorSet, opts AnchorOptions) []Heading {
	if markdown == "" {
		return nil
	}
	if set == nil {
		set = NewAnchorSet()
	}

	var headings []Heading
	forEachLine(markdown, func(line string, inFence bool) {
		if inFence {
			return
		}
		m := markdownHeadingRe.FindStringSubmatch(line)
		if m == nil {
			return
		}

		title := strings.TrimSpace(m[2])
		var id string
		if em := explicitIDRe.FindStringSubmatch(title); em != nil {
			title = strings.TrimSpace(explicitIDRe.ReplaceAllString(title, ""))
			id = em[1]
			set.Reserve(id)
		}
		if title == "" {
			return
		}
		headings = append(headings, Heading{Level: len(m[1]), ID: id, Title: title})
	})

	for i := range headings {
		if headings[i].ID == "" {
			headings[i].ID = set.Claim(GenerateAnchorID(headings[i].Title, opts))
		}
	}

	return headings
}

// forEachLine calls fn for every line, reporting whether the line is part
// of a fenced code block. Fence delimiter lines count as inside the fence.
func forEachLine(s string, fn func(line string, inFence bool)) {
	inFence := false
	for _, line := range strings.Split(s, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "```") || strings.HasPrefix(trimmed, "~~~") {
			fn(line, true)
			inFence = !inFence
			continue
		}
		fn(line, inFence)
	}
}
