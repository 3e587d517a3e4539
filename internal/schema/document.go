package schema

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrNotMapping is returned when a node expected to be a mapping is not one.
var ErrNotMapping = errors.New("expected a mapping")

// Document is an ordered mapping of module name to module body.
type Document struct {
	Modules []Module
}

// Module is one top-level entry of a Document.
type Module struct {
	// Name is the document key of the module.
	Name string
	// Body is nil when the module is declared without a body.
	Body *Mapping
	// Line is the source line of the module key.
	Line int
}

// Defined returns true if the module has a body.
func (m Module) Defined() bool {
	return m.Body != nil
}

// LoadFile loads and parses a YAML device description from the given path.
func LoadFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema file %s: %w", path, err)
	}

	doc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return doc, nil
}

// Parse parses YAML data into a Document.
func Parse(data []byte) (*Document, error) {
	var root yaml.Node

	err := yaml.Unmarshal(data, &root)
	if err != nil {
		return nil, fmt.Errorf("failed to parse schema YAML: %w", err)
	}

	doc := &Document{}

	// An empty file decodes into a zero node.
	if root.Kind == 0 || len(root.Content) == 0 {
		return doc, nil
	}

	top := resolveAlias(root.Content[0])
	if isNull(top) {
		return doc, nil
	}

	body, err := newMapping(top)
	if err != nil {
		return nil, fmt.Errorf("document root: %w", err)
	}

	for _, key := range body.keys {
		value := body.values[key]
		mod := Module{Name: key, Line: body.lines[key]}

		if !isNull(value) {
			mod.Body, err = newMapping(value)
			if err != nil {
				return nil, fmt.Errorf("module %q: %w", key, err)
			}
		}

		doc.Modules = append(doc.Modules, mod)
	}

	return doc, nil
}
