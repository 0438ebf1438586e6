// Package yaml decodes frontmatter, content trees and configuration files
// using gopkg.in/yaml.v3.
package yaml

import (
	"bytes"
	"strconv"

	"github.com/fwojciec/docindex"
	"gopkg.in/yaml.v3"
)

// Ensure Parser implements docindex.MetadataParser at compile time.
var _ docindex.MetadataParser = (*Parser)(nil)

// maxAliasDepth bounds alias expansion so self-referencing anchors fail closed.
const maxAliasDepth = docindex.MaxResolveDepth

// Parser decodes YAML and JSON into order-preserving values.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// SplitFrontmatter separates a leading "---" delimited block from the body.
// The block must decode to a mapping. An empty block yields an empty object.
func (p *Parser) SplitFrontmatter(content []byte) (docindex.Value, []byte, error) {
	block, body, ok := splitFrontmatter(content)
	if !ok {
		return docindex.Value{}, content, nil
	}
	if len(bytes.TrimSpace(block)) == 0 {
		return docindex.Object(), body, nil
	}

	meta, err := p.DecodeTree(block)
	if err != nil {
		return docindex.Value{}, nil, err
	}
	if !meta.IsObject() {
		return docindex.Value{}, nil, docindex.Errorf(docindex.EINVALID, "frontmatter must be a mapping")
	}
	return meta, body, nil
}

// DecodeTree decodes a YAML or JSON document. Mapping keys keep their
// source order.
func (p *Parser) DecodeTree(content []byte) (docindex.Value, error) {
	var node yaml.Node
	if err := yaml.Unmarshal(content, &node); err != nil {
		return docindex.Value{}, docindex.Errorf(docindex.EINVALID, "failed to decode: %v", err)
	}
	return fromNode(&node, 0)
}

// fromNode converts n. depth counts the aliases being expanded.
func fromNode(n *yaml.Node, depth int) (docindex.Value, error) {
	if depth > maxAliasDepth {
		return docindex.Value{}, docindex.Errorf(docindex.EINVALID, "aliases nested deeper than %d levels", maxAliasDepth)
	}

	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return docindex.Value{}, nil
		}
		return fromNode(n.Content[0], depth)
	case yaml.AliasNode:
		return fromNode(n.Alias, depth+1)
	case yaml.MappingNode:
		fields := make([]docindex.Field, 0, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			v, err := fromNode(n.Content[i+1], depth)
			if err != nil {
				return docindex.Value{}, err
			}
			fields = append(fields, docindex.F(n.Content[i].Value, v))
		}
		return docindex.Object(fields...), nil
	case yaml.SequenceNode:
		items := make([]docindex.Value, 0, len(n.Content))
		for _, c := range n.Content {
			v, err := fromNode(c, depth)
			if err != nil {
				return docindex.Value{}, err
			}
			items = append(items, v)
		}
		return docindex.Array(items...), nil
	case yaml.ScalarNode:
		return fromScalar(n), nil
	}
	return docindex.Value{}, nil
}

func fromScalar(n *yaml.Node) docindex.Value {
	switch n.ShortTag() {
	case "!!null":
		return docindex.Value{}
	case "!!bool":
		var b bool
		if err := n.Decode(&b); err == nil {
			return docindex.Bool(b)
		}
	case "!!int", "!!float":
		var f float64
		if err := n.Decode(&f); err == nil {
			return docindex.Number(f)
		}
		if f, err := strconv.ParseFloat(n.Value, 64); err == nil {
			return docindex.Number(f)
		}
	}
	return docindex.String(n.Value)
}

// splitFrontmatter returns the block between an opening "---" line and the
// next "---" or "..." line, and the remaining body.
func splitFrontmatter(content []byte) (block, body []byte, ok bool) {
	content = bytes.TrimPrefix(content, []byte("\ufeff"))

	first, rest, found := cutLine(content)
	if !found || string(bytes.TrimRight(first, " \t")) != "---" {
		return nil, content, false
	}

	offset := 0
	for remaining := rest; len(remaining) > 0; {
		line, next, _ := cutLine(remaining)
		if trimmed := string(bytes.TrimRight(line, " \t")); trimmed == "---" || trimmed == "..." {
			return rest[:offset], next, true
		}
		offset += len(remaining) - len(next)
		remaining = next
	}
	return nil, content, false
}

// cutLine splits off the first line, dropping its terminator.
func cutLine(b []byte) (line, rest []byte, found bool) {
	line, rest, found = bytes.Cut(b, []byte("\n"))
	return bytes.TrimSuffix(line, []byte("\r")), rest, found
}
