package llmjson

import (
	"errors"
	"fmt"
	"math"

	"gopkg.in/yaml.v3"
)

// ErrNotLiteral: текст разобрался как YAML, но это не литерал данных (проза, блочный YAML).
var ErrNotLiteral = errors.New("llmjson: text is not a literal data expression")

// maxLiteralNodes ограничивает обход, чтобы алиасы YAML не раздули ответ.
const maxLiteralNodes = 100_000

type lenientLiteral struct{}

// LenientLiteral parses literal data written with non-JSON conventions: single
// quoted strings with Python escapes, trailing commas, unquoted keys,
// True/False/None. Strings are re-quoted as JSON first, then the text is read
// as a YAML flow collection and converted to the value types encoding/json
// produces.
func LenientLiteral() Strategy { return lenientLiteral{} }

func (lenientLiteral) Name() string { return "literal" }

func (lenientLiteral) Parse(text string) (any, error) {
	requoted, err := requotePythonStrings(text)
	if err != nil {
		return nil, fmt.Errorf("literal: %w", err)
	}
	var doc yaml.Node
	if err := yaml.Unmarshal([]byte(requoted), &doc); err != nil {
		return nil, fmt.Errorf("literal: %w", err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) != 1 {
		return nil, ErrNotLiteral
	}
	root := doc.Content[0]
	switch root.Kind {
	case yaml.MappingNode, yaml.SequenceNode:
		if root.Style&yaml.FlowStyle == 0 {
			return nil, ErrNotLiteral
		}
	case yaml.ScalarNode:
		if isPlain(root) && root.ShortTag() == "!!str" && root.Value != "None" {
			return nil, ErrNotLiteral
		}
	}
	c := &literalConverter{}
	return c.convert(root)
}

type literalConverter struct {
	visited int
}

func (c *literalConverter) convert(n *yaml.Node) (any, error) {
	c.visited++
	if c.visited > maxLiteralNodes {
		return nil, fmt.Errorf("literal: more than %d nodes", maxLiteralNodes)
	}
	switch n.Kind {
	case yaml.AliasNode:
		if n.Alias == nil {
			return nil, ErrNotLiteral
		}
		return c.convert(n.Alias)
	case yaml.SequenceNode:
		out := make([]any, 0, len(n.Content))
		for _, item := range n.Content {
			v, err := c.convert(item)
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		}
		return out, nil
	case yaml.MappingNode:
		out := make(map[string]any, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			key := n.Content[i]
			if key.Kind == yaml.AliasNode && key.Alias != nil {
				key = key.Alias
			}
			if key.Kind != yaml.ScalarNode {
				return nil, fmt.Errorf("literal: line %d: non-scalar key", key.Line)
			}
			v, err := c.convert(n.Content[i+1])
			if err != nil {
				return nil, err
			}
			out[key.Value] = v
		}
		return out, nil
	case yaml.ScalarNode:
		return scalarValue(n)
	default:
		return nil, ErrNotLiteral
	}
}

func scalarValue(n *yaml.Node) (any, error) {
	if !isPlain(n) {
		return n.Value, nil
	}
	if n.Value == "None" {
		return nil, nil
	}
	switch n.ShortTag() {
	case "!!null":
		return nil, nil
	case "!!bool":
		var b bool
		if err := n.Decode(&b); err != nil {
			return nil, fmt.Errorf("literal: %w", err)
		}
		return b, nil
	case "!!int", "!!float":
		var f float64
		if err := n.Decode(&f); err != nil {
			return nil, fmt.Errorf("literal: %w", err)
		}
		if math.IsInf(f, 0) || math.IsNaN(f) {
			return n.Value, nil
		}
		return f, nil
	default:
		return n.Value, nil
	}
}

func isPlain(n *yaml.Node) bool {
	return n.Style&(yaml.SingleQuotedStyle|yaml.DoubleQuotedStyle|yaml.LiteralStyle|yaml.FoldedStyle) == 0
}
