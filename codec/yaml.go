package codec

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/authcorp/optics/tree"
	"gopkg.in/yaml.v3"
)

// YAMLCodec encodes/decodes using YAML.
type YAMLCodec struct {
	Indent int
}

// NewYAMLCodec creates a new YAML codec.
func NewYAMLCodec() *YAMLCodec {
	return &YAMLCodec{Indent: 2}
}

// WithIndent sets the indentation level.
func (c *YAMLCodec) WithIndent(indent int) *YAMLCodec {
	c.Indent = indent
	return c
}

func (c *YAMLCodec) Name() string { return "yaml" }

// Encode writes v as a YAML document with keys in tree order.
func (c *YAMLCodec) Encode(v tree.Value) ([]byte, error) {
	node, err := toNode(v)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(c.Indent)
	if err := encoder.Encode(node); err != nil {
		return nil, err
	}
	if err := encoder.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Decode parses the first YAML document. Mapping order is preserved,
// aliases are expanded and timestamps are kept as their source text.
func (c *YAMLCodec) Decode(data []byte) (tree.Value, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if doc.Kind == 0 {
		return nil, nil
	}
	d := &yamlDecoder{aliases: make(map[*yaml.Node]bool)}
	return d.fromNode(&doc)
}

// Alias expansion limits, matching the ratio yaml.v3 applies when it
// decodes into Go values.
const (
	aliasRatioRangeLow  = 400000
	aliasRatioRangeHigh = 4000000
	aliasRatioRange     = float64(aliasRatioRangeHigh - aliasRatioRangeLow)
)

func allowedAliasRatio(decodeCount int) float64 {
	switch {
	case decodeCount <= aliasRatioRangeLow:
		return 0.99
	case decodeCount >= aliasRatioRangeHigh:
		return 0.10
	default:
		return 0.99 - 0.89*(float64(decodeCount-aliasRatioRangeLow)/aliasRatioRange)
	}
}

// yamlDecoder tracks alias expansion so that self-referencing anchors and
// exponential alias fan-out fail instead of exhausting the stack or memory.
type yamlDecoder struct {
	aliases     map[*yaml.Node]bool
	aliasDepth  int
	decodeCount int
	aliasCount  int
}

func (d *yamlDecoder) fromNode(n *yaml.Node) (tree.Value, error) {
	d.decodeCount++
	if d.aliasDepth > 0 {
		d.aliasCount++
	}
	if d.aliasCount > 100 && d.decodeCount > 1000 &&
		float64(d.aliasCount)/float64(d.decodeCount) > allowedAliasRatio(d.decodeCount) {
		return nil, fmt.Errorf("line %d: document contains excessive aliasing", n.Line)
	}
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return nil, nil
		}
		return d.fromNode(n.Content[0])
	case yaml.AliasNode:
		if d.aliases[n] {
			return nil, fmt.Errorf("line %d: anchor %q value contains itself", n.Line, n.Value)
		}
		d.aliases[n] = true
		d.aliasDepth++
		v, err := d.fromNode(n.Alias)
		d.aliasDepth--
		delete(d.aliases, n)
		return v, err
	case yaml.MappingNode:
		fields := make([]tree.Field, 0, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			k, v := n.Content[i], n.Content[i+1]
			if k.Kind != yaml.ScalarNode {
				return nil, fmt.Errorf("line %d: mapping key must be a scalar", k.Line)
			}
			child, err := d.fromNode(v)
			if err != nil {
				return nil, err
			}
			fields = append(fields, tree.F(k.Value, child))
		}
		return tree.NewObject(fields...), nil
	case yaml.SequenceNode:
		items := make([]tree.Value, 0, len(n.Content))
		for _, c := range n.Content {
			child, err := d.fromNode(c)
			if err != nil {
				return nil, err
			}
			items = append(items, child)
		}
		return tree.NewArray(items...), nil
	case yaml.ScalarNode:
		var x any
		if err := n.Decode(&x); err != nil {
			return nil, fmt.Errorf("line %d: %w", n.Line, err)
		}
		switch s := x.(type) {
		case int:
			return int64(s), nil
		case uint64:
			return float64(s), nil
		case time.Time:
			return n.Value, nil
		case []byte:
			return string(s), nil
		}
		return x, nil
	}
	return nil, fmt.Errorf("line %d: unsupported YAML node kind %d", n.Line, n.Kind)
}

func toNode(v tree.Value) (*yaml.Node, error) {
	switch x := v.(type) {
	case *tree.Object:
		node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		var err error
		x.Fields()(func(f tree.Field) bool {
			var child *yaml.Node
			if child, err = toNode(f.Value); err != nil {
				return false
			}
			key := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: f.Key}
			node.Content = append(node.Content, key, child)
			return true
		})
		return node, err
	case *tree.Array:
		node := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		var err error
		x.Values()(func(item tree.Value) bool {
			var child *yaml.Node
			if child, err = toNode(item); err != nil {
				return false
			}
			node.Content = append(node.Content, child)
			return true
		})
		return node, err
	case json.Number:
		if n, ok := normalizeNumber(x).(json.Number); ok {
			return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!float", Value: n.String()}, nil
		}
		return toNode(normalizeNumber(x))
	}
	node := &yaml.Node{}
	if err := node.Encode(v); err != nil {
		return nil, fmt.Errorf("cannot encode %s as YAML: %w", tree.Describe(v), err)
	}
	return node, nil
}
