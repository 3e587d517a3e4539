package model

import (
	"fmt"

	"yaml2rogue/internal/diagnostic"
	"yaml2rogue/internal/field"
	"yaml2rogue/internal/schema"
)

// Build resolves every module of doc in document order.
//
// Modules declared without a body are skipped with an info diagnostic.
// Unsupported children produce warnings. Malformed values produce an error
// naming the module and child.
func Build(doc *schema.Document, cfg Config) (*Document, diagnostic.Diagnostics, error) {
	var diags diagnostic.Diagnostics

	out := &Document{}

	for _, sm := range doc.Modules {
		if !sm.Defined() {
			out.Skipped = append(out.Skipped, sm.Name)
			diags.Add(diagnostic.Diagnostic{
				Severity: diagnostic.SeverityInfo,
				Code:     diagnostic.CodeUndefinedModule,
				Message:  "module has no body, skipped",
				Module:   sm.Name,
				Line:     sm.Line,
			})

			continue
		}

		c := &classifier{cfg: cfg, diags: &diags, module: sm.Name}

		m, err := c.buildModule(sm)
		if err != nil {
			return nil, diags, fmt.Errorf("module %s: %w", sm.Name, err)
		}

		out.Modules = append(out.Modules, m)
	}

	return out, diags, nil
}

func (c *classifier) buildModule(sm schema.Module) (*Module, error) {
	own := field.Bind(sm.Body, c.cfg.ModuleVocabulary)

	attrs, err := c.cfg.ModuleTemplate.Resolve(own)
	if err != nil {
		return nil, err
	}

	attrs.Override(AttrName, sm.Name)
	c.unknown("", own, "", KeyChildren, KeySize, KeyClass)

	m := &Module{
		Name:  sm.Name,
		Line:  sm.Line,
		Attrs: attrs,
	}

	children, err := sm.Body.Mapping(KeyChildren)
	if err != nil {
		return nil, err
	}

	for _, name := range children.Keys() {
		body, err := children.Mapping(name)
		if err != nil {
			return nil, fmt.Errorf("child %s: %w", name, err)
		}

		child, err := c.classify(name, body, children.KeyLine(name))
		if err != nil {
			return nil, fmt.Errorf("child %s: %w", name, err)
		}

		m.add(child)
	}

	return m, nil
}
