package schema

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	tagNull  = "!!null"
	tagInt   = "!!int"
	tagStr   = "!!str"
	tagBool  = "!!bool"
	tagMerge = "!!merge"
)

// Mapping is an ordered, read-only YAML mapping.
type Mapping struct {
	keys   []string
	values map[string]*yaml.Node
	lines  map[string]int
	line   int
}

// newMapping builds a Mapping from a YAML mapping node, resolving aliases
// and "<<" merge keys.
func newMapping(node *yaml.Node) (*Mapping, error) {
	node = resolveAlias(node)
	if node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("line %d: %w, got %s", node.Line, ErrNotMapping, kindName(node))
	}

	m := &Mapping{
		values: make(map[string]*yaml.Node),
		lines:  make(map[string]int),
		line:   node.Line,
	}

	// Explicit keys always win over merged ones, wherever "<<" appears.
	explicit := make(map[string]struct{})

	for i := 0; i+1 < len(node.Content); i += 2 {
		key := node.Content[i]
		if key.ShortTag() == tagMerge {
			continue
		}

		if _, dup := explicit[key.Value]; dup {
			return nil, fmt.Errorf("line %d: duplicate key %q", key.Line, key.Value)
		}

		explicit[key.Value] = struct{}{}
	}

	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i], resolveAlias(node.Content[i+1])

		if key.ShortTag() != tagMerge {
			m.set(key.Value, value, key.Line)
			continue
		}

		sources, err := mergeSources(value)
		if err != nil {
			return nil, err
		}

		for _, src := range sources {
			merged, err := newMapping(src)
			if err != nil {
				return nil, fmt.Errorf("merge key: %w", err)
			}

			for _, k := range merged.keys {
				if _, ok := explicit[k]; ok {
					continue
				}

				if _, ok := m.values[k]; ok {
					continue
				}

				m.set(k, merged.values[k], merged.lines[k])
			}
		}
	}

	return m, nil
}

func (m *Mapping) set(key string, value *yaml.Node, line int) {
	m.keys = append(m.keys, key)
	m.values[key] = value
	m.lines[key] = line
}

// mergeSources returns the mapping nodes referenced by a "<<" value, which is
// either a single mapping or a sequence of mappings.
func mergeSources(value *yaml.Node) ([]*yaml.Node, error) {
	switch value.Kind {
	case yaml.MappingNode:
		return []*yaml.Node{value}, nil
	case yaml.SequenceNode:
		out := make([]*yaml.Node, 0, len(value.Content))
		for _, item := range value.Content {
			out = append(out, resolveAlias(item))
		}

		return out, nil
	default:
		return nil, fmt.Errorf("line %d: merge value must be a mapping or a sequence of mappings, got %s",
			value.Line, kindName(value))
	}
}

// Keys returns the keys in source order.
func (m *Mapping) Keys() []string {
	if m == nil {
		return nil
	}

	return slices.Clone(m.keys)
}

// Line returns the source line of the mapping.
func (m *Mapping) Line() int {
	if m == nil {
		return 0
	}

	return m.line
}

// KeyLine returns the source line of key, or 0 if absent.
func (m *Mapping) KeyLine(key string) int {
	if m == nil {
		return 0
	}

	return m.lines[key]
}

// Get returns the value stored under key. Null values are reported as absent.
func (m *Mapping) Get(key string) (Value, bool) {
	if m == nil {
		return Value{}, false
	}

	node, ok := m.values[key]
	if !ok || isNull(node) {
		return Value{}, false
	}

	return Value{key: key, node: node}, true
}

// Mapping returns the nested mapping stored under key, or nil if the key is
// absent or null.
func (m *Mapping) Mapping(key string) (*Mapping, error) {
	v, ok := m.Get(key)
	if !ok {
		return nil, nil
	}

	nested, err := newMapping(v.node)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", key, err)
	}

	return nested, nil
}

// Sequence returns the list of mappings stored under key, or nil if the key
// is absent or null.
func (m *Mapping) Sequence(key string) ([]*Mapping, error) {
	v, ok := m.Get(key)
	if !ok {
		return nil, nil
	}

	if v.node.Kind != yaml.SequenceNode {
		return nil, fmt.Errorf("line %d: %s: expected a sequence, got %s", v.node.Line, key, kindName(v.node))
	}

	out := make([]*Mapping, 0, len(v.node.Content))

	for i, item := range v.node.Content {
		entry, err := newMapping(item)
		if err != nil {
			return nil, fmt.Errorf("%s[%d]: %w", key, i, err)
		}

		out = append(out, entry)
	}

	return out, nil
}

// Value is a single non-null YAML value.
type Value struct {
	key  string
	node *yaml.Node
}

// Line returns the source line of the value.
func (v Value) Line() int {
	if v.node == nil {
		return 0
	}

	return v.node.Line
}

// IsScalar returns true if the value is a scalar.
func (v Value) IsScalar() bool {
	return v.node != nil && v.node.Kind == yaml.ScalarNode
}

// String returns the scalar text of the value.
func (v Value) String() (string, error) {
	if !v.IsScalar() {
		return "", v.typeError("string")
	}

	return v.node.Value, nil
}

// Int decodes the value as a base 10, 0x, 0o or 0b integer. Quoted numbers
// are accepted.
func (v Value) Int() (int64, error) {
	if !v.IsScalar() {
		return 0, v.typeError("integer")
	}

	switch v.node.ShortTag() {
	case tagInt:
		var i int64
		if err := v.node.Decode(&i); err != nil {
			return 0, fmt.Errorf("line %d: %s: %w", v.Line(), v.key, err)
		}

		return i, nil
	case tagStr:
		i, err := strconv.ParseInt(strings.TrimSpace(v.node.Value), 0, 64)
		if err != nil {
			return 0, v.typeError("integer")
		}

		return i, nil
	default:
		return 0, v.typeError("integer")
	}
}

// Bool decodes the value as a boolean.
func (v Value) Bool() (bool, error) {
	if !v.IsScalar() || v.node.ShortTag() != tagBool {
		return false, v.typeError("boolean")
	}

	var b bool
	if err := v.node.Decode(&b); err != nil {
		return false, fmt.Errorf("line %d: %s: %w", v.Line(), v.key, err)
	}

	return b, nil
}

// IsBool returns true if the value is a YAML boolean.
func (v Value) IsBool() bool {
	return v.IsScalar() && v.node.ShortTag() == tagBool
}

func (v Value) typeError(want string) error {
	if v.node == nil {
		return fmt.Errorf("%s: expected %s, got nothing", v.key, want)
	}

	got := kindName(v.node)
	if v.node.Kind == yaml.ScalarNode {
		got = fmt.Sprintf("%q", v.node.Value)
	}

	return fmt.Errorf("line %d: %s: expected %s, got %s", v.node.Line, v.key, want, got)
}

func resolveAlias(node *yaml.Node) *yaml.Node {
	for node != nil && node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}

	return node
}

func isNull(node *yaml.Node) bool {
	return node == nil || (node.Kind == yaml.ScalarNode && node.ShortTag() == tagNull)
}

func kindName(node *yaml.Node) string {
	switch node.Kind {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return "nothing"
	}
}
