package docindex_test

import (
	"testing"

	"github.com/fwojciec/docindex"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractHeadings(t *testing.T) {
	t.Parallel()

	t.Run("extracts H1 heading", func(t *testing.T) {
		t.Parallel()

		headings := docindex.ExtractHeadings("# Introduction\n\nSome content here.", nil, docindex.AnchorOptions{})

		require.Len(t, headings, 1)
		assert.Equal(t, docindex.Heading{Level: 1, ID: "introduction", Title: "Introduction"}, headings[0])
	})

	t.Run("extracts H2 through H6 headings", func(t *testing.T) {
		t.Parallel()

		markdown := `# H1 Title
## H2 Title
### H3 Title
#### H4 Title
##### H5 Title
###### H6 Title`

		headings := docindex.ExtractHeadings(markdown, nil, docindex.AnchorOptions{})

		require.Len(t, headings, 6)
		for i, h := range headings {
			assert.Equal(t, i+1, h.Level)
		}
	})

	t.Run("handles duplicate headings with numeric suffixes", func(t *testing.T) {
		t.Parallel()

		markdown := `# Example
## Example
### Example`

		headings := docindex.ExtractHeadings(markdown, nil, docindex.AnchorOptions{})

		require.Len(t, headings, 3)
		assert.Equal(t, "example", headings[0].ID)
		assert.Equal(t, "example-1", headings[1].ID)
		assert.Equal(t, "example-2", headings[2].ID)
	})

	t.Run("keeps explicit ids", func(t *testing.T) {
		t.Parallel()

		markdown := "## Setup {#install}\n## Install"

		headings := docindex.ExtractHeadings(markdown, nil, docindex.AnchorOptions{})

		require.Len(t, headings, 2)
		assert.Equal(t, "install", headings[0].ID)
		assert.Equal(t, "Setup", headings[0].Title)
		assert.Equal(t, "install-1", headings[1].ID)
	})

	t.Run("reserves explicit ids before generating any", func(t *testing.T) {
		t.Parallel()

		markdown := "# Same\n# Same\n## Other {#same-1}"

		headings := docindex.ExtractHeadings(markdown, nil, docindex.AnchorOptions{})

		require.Len(t, headings, 3)
		assert.Equal(t, "same", headings[0].ID)
		assert.Equal(t, "same-2", headings[1].ID)
		assert.Equal(t, "same-1", headings[2].ID)
	})

	t.Run("shares uniqueness with the given set", func(t *testing.T) {
		t.Parallel()

		set := docindex.NewAnchorSet()
		set.Reserve("overview")

		headings := docindex.ExtractHeadings("# Overview", set, docindex.AnchorOptions{})

		require.Len(t, headings, 1)
		assert.Equal(t, "overview-1", headings[0].ID)
	})

	t.Run("returns empty slice for empty markdown", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, docindex.ExtractHeadings("", nil, docindex.AnchorOptions{}))
	})

	t.Run("returns empty slice for markdown without headings", func(t *testing.T) {
		t.Parallel()

		headings := docindex.ExtractHeadings("Just some text\n\nWith paragraphs.", nil, docindex.AnchorOptions{})

		assert.Empty(t, headings)
	})

	t.Run("keeps a trailing hash that is part of the title", func(t *testing.T) {
		t.Parallel()

		headings := docindex.ExtractHeadings("## Learning C#", nil, docindex.AnchorOptions{})

		require.Len(t, headings, 1)
		assert.Equal(t, "Learning C#", headings[0].Title)
	})

	t.Run("ignores code blocks with hash symbols", func(t *testing.T) {
		t.Parallel()

		markdown := "# Real Heading\n\n```bash\n# This is a comment\necho hello\n```\n\n## Another Real Heading"

		headings := docindex.ExtractHeadings(markdown, nil, docindex.AnchorOptions{})

		require.Len(t, headings, 2)
		assert.Equal(t, "Real Heading", headings[0].Title)
		assert.Equal(t, "Another Real Heading", headings[1].Title)
	})
}
