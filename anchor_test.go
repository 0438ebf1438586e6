package docindex_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/docindex"
	"github.com/stretchr/testify/assert"
)

func TestGenerateAnchorID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		opts docindex.AnchorOptions
		want string
	}{
		{
			name: "lowercases and hyphenates words",
			text: "Getting Started With Go",
			want: "getting-started-with-go",
		},
		{
			name: "strips special characters",
			text: "API Reference (v2.0)",
			want: "api-reference-v20",
		},
		{
			name: "strips embedded markup",
			text: "Use <code>goquery</code> here",
			want: "use-goquery-here",
		},
		{
			name: "collapses underscores and repeated separators",
			text: "snake_case -- and   spaces",
			want: "snake-case-and-spaces",
		},
		{
			name: "trims leading and trailing separators",
			text: "  -- Hello --  ",
			want: "hello",
		},
		{
			name: "strips digits when requested",
			text: "Step 2 Configure",
			opts: docindex.AnchorOptions{StripDigits: true},
			want: "step-configure",
		},
		{
			name: "uses custom separator",
			text: "Hello World",
			opts: docindex.AnchorOptions{Separator: "_"},
			want: "hello_world",
		},
		{
			name: "adds prefix and suffix",
			text: "Install",
			opts: docindex.AnchorOptions{Prefix: "doc", Suffix: "top"},
			want: "doc-install-top",
		},
		{
			name: "truncates without trailing separator",
			text: "alpha beta gamma",
			opts: docindex.AnchorOptions{MaxLength: 11},
			want: "alpha-beta",
		},
		{
			name: "falls back for empty input",
			text: "",
			want: "section",
		},
		{
			name: "falls back for whitespace input",
			text: "   \t ",
			want: "section",
		},
		{
			name: "falls back when only symbols remain",
			text: "!!! ??? ***",
			want: "section",
		},
		{
			name: "falls back for numeric input without numbers",
			text: "12345",
			opts: docindex.AnchorOptions{StripDigits: true},
			want: "section",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := docindex.GenerateAnchorID(tt.text, tt.opts)

			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGenerateAnchorID_DefaultMaxLength(t *testing.T) {
	t.Parallel()

	got := docindex.GenerateAnchorID(strings.Repeat("word ", 40), docindex.AnchorOptions{})

	assert.LessOrEqual(t, len(got), 50)
	assert.False(t, strings.HasSuffix(got, "-"))
}

func TestAnchorSet_Claim(t *testing.T) {
	t.Parallel()

	t.Run("suffixes duplicates in order", func(t *testing.T) {
		t.Parallel()

		set := docindex.NewAnchorSet()

		assert.Equal(t, "intro", set.Claim("intro"))
		assert.Equal(t, "intro-1", set.Claim("intro"))
		assert.Equal(t, "intro-2", set.Claim("intro"))
		assert.Equal(t, 3, set.Len())
	})

	t.Run("skips suffixes already reserved", func(t *testing.T) {
		t.Parallel()

		set := docindex.NewAnchorSet()
		set.Reserve("intro")
		set.Reserve("intro-1")

		assert.Equal(t, "intro-2", set.Claim("intro"))
	})
}
