package docindex

import (
	"sort"
	"strconv"
	"strings"
)

// Kind identifies the variant held by a Value.
type Kind int

// Value kinds.
const (
	KindNull Kind = iota
	KindString
	KindNumber
	KindBool
	KindObject
	KindArray
)

// Field is a single key/value pair of an object Value.
type Field struct {
	Key   string
	Value Value
}

// Value is a node of an arbitrarily nested content tree: a scalar, an
// object with ordered fields, or an array. The zero Value is null.
//
// Objects keep their fields in source order so that searches which return
// the first match are deterministic.
type Value struct {
	Kind   Kind
	Str    string
	Num    float64
	Bool   bool
	Fields []Field
	Items  []Value
}

// String returns a string Value.
func String(s string) Value { return Value{Kind: KindString, Str: s} }

// Number returns a number Value.
func Number(n float64) Value { return Value{Kind: KindNumber, Num: n} }

// Bool returns a bool Value.
func Bool(b bool) Value { return Value{Kind: KindBool, Bool: b} }

// Object returns an object Value with the given fields in order.
func Object(fields ...Field) Value { return Value{Kind: KindObject, Fields: fields} }

// Array returns an array Value.
func Array(items ...Value) Value { return Value{Kind: KindArray, Items: items} }

// F is shorthand for constructing a Field.
func F(key string, v Value) Field { return Field{Key: key, Value: v} }

// IsObject reports whether v is an object.
func (v Value) IsObject() bool { return v.Kind == KindObject }

// Get returns the value of the named field of an object.
// Returns false if v is not an object or has no such field.
func (v Value) Get(key string) (Value, bool) {
	if v.Kind != KindObject {
		return Value{}, false
	}
	for _, f := range v.Fields {
		if f.Key == key {
			return f.Value, true
		}
	}
	return Value{}, false
}

// Path follows a chain of object keys.
func (v Value) Path(keys ...string) (Value, bool) {
	cur := v
	for _, k := range keys {
		next, ok := cur.Get(k)
		if !ok {
			return Value{}, false
		}
		cur = next
	}
	return cur, true
}

// Text renders a scalar Value as text. Objects, arrays and null render
// as the empty string.
func (v Value) Text() string {
	switch v.Kind {
	case KindString:
		return v.Str
	case KindNumber:
		return strconv.FormatFloat(v.Num, 'f', -1, 64)
	case KindBool:
		return strconv.FormatBool(v.Bool)
	default:
		return ""
	}
}

// StringField returns the trimmed text of the named scalar field.
func (v Value) StringField(key string) string {
	f, ok := v.Get(key)
	if !ok {
		return ""
	}
	return strings.TrimSpace(f.Text())
}

// StringsField returns the named field as a list of strings. A scalar
// field is split on commas; an array yields the text of its scalar items.
func (v Value) StringsField(key string) []string {
	f, ok := v.Get(key)
	if !ok {
		return nil
	}
	var out []string
	switch f.Kind {
	case KindArray:
		for _, item := range f.Items {
			if s := strings.TrimSpace(item.Text()); s != "" {
				out = append(out, s)
			}
		}
	case KindString:
		for _, part := range strings.Split(f.Str, ",") {
			if s := strings.TrimSpace(part); s != "" {
				out = append(out, s)
			}
		}
	}
	return out
}

// FromAny converts decoded Go values (as produced by encoding/json or
// map literals) into a Value. Map keys are sorted since Go maps carry no
// order.
func FromAny(x any) Value {
	switch t := x.(type) {
	case nil:
		return Value{}
	case Value:
		return t
	case string:
		return String(t)
	case bool:
		return Bool(t)
	case int:
		return Number(float64(t))
	case int64:
		return Number(float64(t))
	case float64:
		return Number(t)
	case []any:
		items := make([]Value, 0, len(t))
		for _, item := range t {
			items = append(items, FromAny(item))
		}
		return Array(items...)
	case []string:
		items := make([]Value, 0, len(t))
		for _, item := range t {
			items = append(items, String(item))
		}
		return Array(items...)
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		fields := make([]Field, 0, len(keys))
		for _, k := range keys {
			fields = append(fields, F(k, FromAny(t[k])))
		}
		return Object(fields...)
	default:
		return Value{}
	}
}
