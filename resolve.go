package docindex

// MaxResolveDepth bounds how deep ResolveField descends into nested objects.
const MaxResolveDepth = 32

// ResolveField searches v depth-first, pre-order, for a string-valued
// field named name. A direct field wins over nested ones; otherwise object
// fields are searched in order. Arrays are not descended into.
// Returns false for non-objects, when nothing matches, or when the tree
// is deeper than MaxResolveDepth.
func ResolveField(v Value, name string) (string, bool) {
	return resolveField(v, name, 0)
}

func resolveField(v Value, name string, depth int) (string, bool) {
	if v.Kind != KindObject || depth >= MaxResolveDepth {
		return "", false
	}

	if f, ok := v.Get(name); ok && f.Kind == KindString {
		return f.Str, true
	}

	for _, f := range v.Fields {
		if f.Value.Kind != KindObject {
			continue
		}
		if s, ok := resolveField(f.Value, name, depth+1); ok {
			return s, true
		}
	}
	return "", false
}
