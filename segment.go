package docindex

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Segment is a heading-bounded block of long-form content.
type Segment struct {
	// Heading is the most recent heading title, or empty for leading content.
	Heading string
	Content string

	// Anchor is the id of the heading the segment belongs to, if known.
	// Chunks inherit the anchor of the segment they were split from.
	Anchor string
}

// SegmentOptions bounds segment sizes. Lengths are counted in characters.
type SegmentOptions struct {
	// MaxSectionLength is the length above which a block is chunked.
	MaxSectionLength int `yaml:"maxSectionLength" json:"maxSectionLength,omitempty"`

	// ChunkSize is the target chunk length. Chunks only exceed it when a
	// single sentence is longer.
	ChunkSize int `yaml:"chunkSize" json:"chunkSize,omitempty"`

	// MinSectionLength drops blocks shorter than this after trimming.
	MinSectionLength int `yaml:"minSectionLength" json:"minSectionLength,omitempty"`
}

// DefaultSegmentOptions returns the default segment bounds.
func DefaultSegmentOptions() SegmentOptions {
	return SegmentOptions{
		MaxSectionLength: 1000,
		ChunkSize:        500,
		MinSectionLength: 50,
	}
}

func (o SegmentOptions) withDefaults() SegmentOptions {
	def := DefaultSegmentOptions()
	if o.MaxSectionLength <= 0 {
		o.MaxSectionLength = def.MaxSectionLength
	}
	if o.ChunkSize <= 0 {
		o.ChunkSize = def.ChunkSize
	}
	if o.MinSectionLength < 0 {
		o.MinSectionLength = 0
	}
	return o
}

var headingTagRe = regexp.MustCompile(`(?is)^\s*<h[1-6][^>]*>(.*?)</h[1-6]>\s*$`)

// SegmentText splits text on headings, chunks over-long blocks on sentence
// boundaries and drops blocks shorter than the minimum.
func SegmentText(text string, opts SegmentOptions) []Segment {
	return ChunkSegments(SplitHeadings(text), opts)
}

// SplitHeadings splits text on line-leading markdown headings or heading
// tags. Each block is associated with the most recent heading title.
// Headings inside fenced code blocks are treated as content.
func SplitHeadings(text string) []Segment {
	var (
		segments []Segment
		heading  string
		started  bool
		body     strings.Builder
	)

	flush := func() {
		content := strings.TrimSpace(body.String())
		if started || content != "" {
			segments = append(segments, Segment{Heading: heading, Content: content})
		}
		body.Reset()
	}

	forEachLine(text, func(line string, inFence bool) {
		if !inFence {
			if title, ok := headingTitle(line); ok {
				flush()
				heading = title
				started = true
				return
			}
		}
		body.WriteString(line)
		body.WriteByte('\n')
	})
	flush()

	return segments
}

func headingTitle(line string) (string, bool) {
	if m := markdownHeadingRe.FindStringSubmatch(line); m != nil {
		title := strings.TrimSpace(explicitIDRe.ReplaceAllString(m[2], ""))
		return title, true
	}
	if m := headingTagRe.FindStringSubmatch(line); m != nil {
		title := strings.Join(strings.Fields(anchorTagRe.ReplaceAllString(m[1], "")), " ")
		return title, true
	}
	return "", false
}

// ChunkSegments splits segments longer than MaxSectionLength into
// sentence-aligned chunks labelled "<heading> (Part N)", then drops
// segments shorter than MinSectionLength.
func ChunkSegments(segments []Segment, opts SegmentOptions) []Segment {
	opts = opts.withDefaults()

	var out []Segment
	for _, seg := range segments {
		if utf8.RuneCountInString(seg.Content) <= opts.MaxSectionLength {
			out = append(out, seg)
			continue
		}
		for i, chunk := range ChunkText(seg.Content, opts.ChunkSize) {
			out = append(out, Segment{
				Heading: partLabel(seg.Heading, i+1),
				Content: chunk,
				Anchor:  seg.Anchor,
			})
		}
	}

	filtered := out[:0]
	for _, seg := range out {
		seg.Content = strings.TrimSpace(seg.Content)
		if utf8.RuneCountInString(seg.Content) < opts.MinSectionLength || seg.Content == "" {
			continue
		}
		filtered = append(filtered, seg)
	}
	return filtered
}

func partLabel(heading string, n int) string {
	if heading == "" {
		return fmt.Sprintf("Part %d", n)
	}
	return fmt.Sprintf("%s (Part %d)", heading, n)
}

// ChunkText accumulates whole sentences into chunks of at most size
// characters. A sentence is never split, so a single sentence longer
// than size becomes its own chunk.
func ChunkText(text string, size int) []string {
	var (
		chunks  []string
		current strings.Builder
		length  int
	)

	for _, sentence := range SplitSentences(text) {
		n := utf8.RuneCountInString(sentence)
		if length > 0 && length+1+n > size {
			chunks = append(chunks, current.String())
			current.Reset()
			length = 0
		}
		if length > 0 {
			current.WriteByte(' ')
			length++
		}
		current.WriteString(sentence)
		length += n
	}
	if length > 0 {
		chunks = append(chunks, current.String())
	}
	return chunks
}

// SplitSentences splits text after sentence-ending punctuation (. ! ?)
// that is followed by whitespace. Sentences are trimmed; empty ones are
// dropped.
func SplitSentences(text string) []string {
	var (
		sentences []string
		start     int
	)

	emit := func(end int) {
		if s := strings.TrimSpace(text[start:end]); s != "" {
			sentences = append(sentences, s)
		}
		start = end
	}

	for i, r := range text {
		if r != '.' && r != '!' && r != '?' {
			continue
		}
		next := i + utf8.RuneLen(r)
		if next >= len(text) {
			break
		}
		nr, _ := utf8.DecodeRuneInString(text[next:])
		if unicode.IsSpace(nr) {
			emit(next)
		}
	}
	emit(len(text))

	return sentences
}
