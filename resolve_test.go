package docindex_test

import (
	"testing"

	"github.com/fwojciec/docindex"
	"github.com/stretchr/testify/assert"
)

func TestResolveField(t *testing.T) {
	t.Parallel()

	t.Run("finds deeply nested field", func(t *testing.T) {
		t.Parallel()

		section := docindex.FromAny(map[string]any{
			"sectionType": "x",
			"content": map[string]any{
				"main": map[string]any{
					"text": map[string]any{"title": "Deep Title"},
				},
			},
		})

		got, ok := docindex.ResolveField(section, "title")

		assert.True(t, ok)
		assert.Equal(t, "Deep Title", got)
	})

	t.Run("prefers direct field over nested one", func(t *testing.T) {
		t.Parallel()

		section := docindex.Object(
			docindex.F("nested", docindex.Object(docindex.F("title", docindex.String("Nested")))),
			docindex.F("title", docindex.String("Direct")),
		)

		got, ok := docindex.ResolveField(section, "title")

		assert.True(t, ok)
		assert.Equal(t, "Direct", got)
	})

	t.Run("returns first match in field order", func(t *testing.T) {
		t.Parallel()

		section := docindex.Object(
			docindex.F("b", docindex.Object(docindex.F("text", docindex.String("first")))),
			docindex.F("a", docindex.Object(docindex.F("text", docindex.String("second")))),
		)

		got, ok := docindex.ResolveField(section, "text")

		assert.True(t, ok)
		assert.Equal(t, "first", got)
	})

	t.Run("does not descend into arrays", func(t *testing.T) {
		t.Parallel()

		section := docindex.Object(
			docindex.F("items", docindex.Array(docindex.Object(docindex.F("title", docindex.String("Item"))))),
		)

		_, ok := docindex.ResolveField(section, "title")

		assert.False(t, ok)
	})

	t.Run("ignores non-string values with the target name", func(t *testing.T) {
		t.Parallel()

		section := docindex.Object(
			docindex.F("title", docindex.Number(3)),
			docindex.F("inner", docindex.Object(docindex.F("title", docindex.String("Text")))),
		)

		got, ok := docindex.ResolveField(section, "title")

		assert.True(t, ok)
		assert.Equal(t, "Text", got)
	})

	t.Run("returns not found for non-object input", func(t *testing.T) {
		t.Parallel()

		_, ok := docindex.ResolveField(docindex.String("title"), "title")
		assert.False(t, ok)

		_, ok = docindex.ResolveField(docindex.Value{}, "title")
		assert.False(t, ok)
	})

	t.Run("fails closed beyond maximum depth", func(t *testing.T) {
		t.Parallel()

		v := docindex.Object(docindex.F("title", docindex.String("Bottom")))
		for i := 0; i < docindex.MaxResolveDepth+1; i++ {
			v = docindex.Object(docindex.F("child", v))
		}

		_, ok := docindex.ResolveField(v, "title")

		assert.False(t, ok)
	})
}
