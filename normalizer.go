package docindex

// NormalizeOptions controls markup normalization.
type NormalizeOptions struct {
	// ExcludeSelectors lists CSS selectors whose elements are removed
	// before text extraction. Scripts and styles are always removed.
	ExcludeSelectors []string

	// DecodeEntities maps the common named entities to characters.
	// Unknown entities are left untouched.
	DecodeEntities bool
}

// Normalizer derives plain text from markup.
type Normalizer interface {
	// Normalize returns plain text with whitespace collapsed within lines
	// and block boundaries kept as single newlines. Unparseable input
	// returns an EINVALID error.
	Normalize(html string, opts NormalizeOptions) (string, error)

	// Prune returns html with scripts, styles and excluded regions
	// removed, leaving the remaining markup intact.
	Prune(html string, opts NormalizeOptions) (string, error)
}
