package field

import (
	"fmt"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Attr is one resolved attribute.
type Attr struct {
	Field Field
	Value any
	// FromSource is false when the value is a default.
	FromSource bool
}

// Render renders the attribute value with its field format.
func (a Attr) Render() (string, error) {
	s, err := a.Field.Format.Render(a.Value)
	if err != nil {
		return "", fmt.Errorf("%s: %w", a.Field.Name, err)
	}

	return s, nil
}

// Attrs is an ordered set of resolved attributes.
type Attrs struct {
	m *orderedmap.OrderedMap[string, Attr]
}

// NewAttrs returns an empty attribute set.
func NewAttrs() *Attrs {
	return &Attrs{m: orderedmap.New[string, Attr]()}
}

// Set stores a value. An existing attribute keeps its position.
func (a *Attrs) Set(f Field, value any, fromSource bool) {
	a.m.Set(f.Name, Attr{Field: f, Value: value, FromSource: fromSource})
}

// Override replaces the value of an existing attribute, keeping its field
// and position. It returns false if the attribute is absent.
func (a *Attrs) Override(name string, value any) bool {
	attr, ok := a.m.Get(name)
	if !ok {
		return false
	}

	attr.Value = value
	a.m.Set(name, attr)

	return true
}

// Delete removes an attribute.
func (a *Attrs) Delete(name string) {
	a.m.Delete(name)
}

// Get returns the attribute with the given name.
func (a *Attrs) Get(name string) (Attr, bool) {
	return a.m.Get(name)
}

// Has returns true if the attribute is present.
func (a *Attrs) Has(name string) bool {
	_, ok := a.m.Get(name)
	return ok
}

// Names returns attribute names in order.
func (a *Attrs) Names() []string {
	names := make([]string, 0, a.m.Len())
	for pair := a.m.Oldest(); pair != nil; pair = pair.Next() {
		names = append(names, pair.Key)
	}

	return names
}

// List returns the attributes in order.
func (a *Attrs) List() []Attr {
	out := make([]Attr, 0, a.m.Len())
	for pair := a.m.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, pair.Value)
	}

	return out
}

// String returns a string attribute value, or "" if absent or not a string.
func (a *Attrs) String(name string) string {
	attr, ok := a.m.Get(name)
	if !ok {
		return ""
	}

	s, _ := attr.Value.(string)

	return s
}

// Int returns an integer attribute value and whether it was present.
func (a *Attrs) Int(name string) (int64, bool) {
	attr, ok := a.m.Get(name)
	if !ok {
		return 0, false
	}

	n, err := toInt64(attr.Value)
	if err != nil {
		return 0, false
	}

	return n, true
}
