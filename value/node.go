package value

import (
	"fmt"

	"go.yaml.in/yaml/v4"

	"github.com/erraggy/oasquery/oaserrors"
)

// Default limits applied by FromNode when a Limits field is zero.
const (
	DefaultMaxDepth = 256
	DefaultMaxNodes = 1_000_000
)

// Limits bounds the size of the tree built by FromNode. Aliases are expanded
// into copies, so both limits count expanded nodes, not source nodes.
type Limits struct {
	// MaxDepth is the maximum nesting depth (0 means DefaultMaxDepth).
	MaxDepth int
	// MaxNodes is the maximum number of values built (0 means DefaultMaxNodes).
	MaxNodes int
}

type converter struct {
	maxDepth int
	maxNodes int
	nodes    int
}

// FromNode converts a decoded YAML node tree into a Value. Document nodes are
// unwrapped, aliases are replaced by copies of their targets, and merge keys
// ("<<") contribute entries that the mapping does not define itself.
//
// Exceeding a limit returns a *oaserrors.ResourceLimitError.
func FromNode(n *yaml.Node, limits Limits) (Value, error) {
	c := &converter{maxDepth: limits.MaxDepth, maxNodes: limits.MaxNodes}
	if c.maxDepth <= 0 {
		c.maxDepth = DefaultMaxDepth
	}
	if c.maxNodes <= 0 {
		c.maxNodes = DefaultMaxNodes
	}
	return c.convert(n, 0)
}

func (c *converter) convert(n *yaml.Node, depth int) (Value, error) {
	if n == nil {
		return Null(), nil
	}
	if depth > c.maxDepth {
		return Value{}, &oaserrors.ResourceLimitError{
			ResourceType: "nesting_depth",
			Limit:        int64(c.maxDepth),
			Message:      fmt.Sprintf("document nesting exceeds %d levels near line %d", c.maxDepth, n.Line),
		}
	}
	c.nodes++
	if c.nodes > c.maxNodes {
		return Value{}, &oaserrors.ResourceLimitError{
			ResourceType: "node_count",
			Limit:        int64(c.maxNodes),
			Message:      "document expands to too many values (check for recursive aliases)",
		}
	}

	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return Null(), nil
		}
		return c.convert(n.Content[0], depth)
	case yaml.AliasNode:
		return c.convert(n.Alias, depth+1)
	case yaml.SequenceNode:
		items := make([]Value, 0, len(n.Content))
		for _, child := range n.Content {
			item, err := c.convert(child, depth+1)
			if err != nil {
				return Value{}, err
			}
			items = append(items, item)
		}
		return Seq(items...), nil
	case yaml.MappingNode:
		return c.mapping(n, depth)
	case yaml.ScalarNode:
		return scalar(n), nil
	default:
		return Value{}, fmt.Errorf("value: unsupported node kind %d at line %d", n.Kind, n.Line)
	}
}

func (c *converter) mapping(n *yaml.Node, depth int) (Value, error) {
	m := NewMap(len(n.Content) / 2)
	var merges []*yaml.Node
	for i := 0; i+1 < len(n.Content); i += 2 {
		key, val := n.Content[i], n.Content[i+1]
		if key.Kind == yaml.ScalarNode && key.ShortTag() == "!!merge" {
			merges = append(merges, val)
			continue
		}
		v, err := c.convert(val, depth+1)
		if err != nil {
			return Value{}, err
		}
		m.Set(keyString(key), v)
	}
	for _, src := range merges {
		if err := c.merge(m, src, depth); err != nil {
			return Value{}, err
		}
	}
	return m.Value(), nil
}

// merge copies entries from a merge source (a mapping, an alias to one, or a
// sequence of those) without overriding keys already present.
func (c *converter) merge(m *Map, src *yaml.Node, depth int) error {
	if src.Kind == yaml.SequenceNode {
		for _, item := range src.Content {
			if err := c.merge(m, item, depth); err != nil {
				return err
			}
		}
		return nil
	}
	v, err := c.convert(src, depth+1)
	if err != nil {
		return err
	}
	for _, e := range v.Entries() {
		m.SetDefault(e.Key, e.Value)
	}
	return nil
}

// keyString stringifies a mapping key as written in the source.
func keyString(key *yaml.Node) string {
	for key.Kind == yaml.AliasNode && key.Alias != nil {
		key = key.Alias
	}
	if key.Kind == yaml.ScalarNode {
		return key.Value
	}
	// Complex keys are rare in OpenAPI documents; render them inline.
	out, err := yaml.Dump(key, yaml.WithFlowSimpleCollections(true))
	if err != nil {
		return fmt.Sprintf("<key at line %d>", key.Line)
	}
	return string(trimNewline(out))
}

func scalar(n *yaml.Node) Value {
	switch n.ShortTag() {
	case "!!null":
		return Null()
	case "!!bool":
		var b bool
		if err := n.Decode(&b); err != nil {
			return String(n.Value)
		}
		return Bool(b)
	case "!!int":
		return Value{kind: KindNumber, text: n.Value, isInt: true}
	case "!!float":
		return Value{kind: KindNumber, text: n.Value}
	default:
		return String(n.Value)
	}
}

// ToNode converts v into a YAML node tree with no anchors or aliases.
// Absent values are emitted as null.
func ToNode(v Value) *yaml.Node {
	switch v.kind {
	case KindBool:
		return scalarNode("!!bool", v.Scalar())
	case KindNumber:
		if v.isInt {
			return scalarNode("!!int", v.text)
		}
		return scalarNode("!!float", v.text)
	case KindString:
		return scalarNode("!!str", v.text)
	case KindSequence:
		n := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq", Content: make([]*yaml.Node, 0, len(v.seq))}
		for _, item := range v.seq {
			n.Content = append(n.Content, ToNode(item))
		}
		return n
	case KindMapping:
		n := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map", Content: make([]*yaml.Node, 0, 2*v.m.Len())}
		for _, e := range v.m.entries {
			n.Content = append(n.Content, scalarNode("!!str", e.Key), ToNode(e.Value))
		}
		return n
	default:
		return scalarNode("!!null", "null")
	}
}

func scalarNode(tag, val string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: val}
}

func trimNewline(b []byte) []byte {
	for len(b) > 0 && (b[len(b)-1] == '\n' || b[len(b)-1] == '\r') {
		b = b[:len(b)-1]
	}
	return b
}
