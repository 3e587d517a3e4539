package model

import (
	"fmt"
	"slices"

	"yaml2rogue/internal/diagnostic"
	"yaml2rogue/internal/field"
	"yaml2rogue/internal/match"
	"yaml2rogue/internal/schema"
)

// classifier turns child bodies into a Variable, Command or Unsupported,
// collecting diagnostics for the module being built.
type classifier struct {
	cfg    Config
	diags  *diagnostic.Diagnostics
	module string
}

func (c *classifier) classify(name string, body *schema.Mapping, line int) (Child, error) {
	if body != nil {
		line = body.Line()
	}

	class := ""
	if v, ok := body.Get(KeyClass); ok {
		s, err := v.String()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", KeyClass, err)
		}

		class = s
	}

	switch {
	case body != nil && slices.Contains(c.cfg.VariableClasses, class):
		return c.variable(name, class, body)
	case body != nil && slices.Contains(c.cfg.CommandClasses, class):
		return c.command(name, class, body)
	default:
		return c.unsupported(name, class, line), nil
	}
}

func (c *classifier) variable(name, class string, body *schema.Mapping) (*Variable, error) {
	at, err := body.Mapping(KeyPlacement)
	if err != nil {
		return nil, err
	}

	placement := field.Bind(at, c.cfg.PlacementVocabulary)
	own := field.Bind(body, c.cfg.VariableVocabulary)

	attrs, err := c.cfg.VariableTemplate.Resolve(placement, own)
	if err != nil {
		return nil, err
	}

	c.unknown(name, placement, KeyPlacement+".")
	c.unknown(name, own, "", KeyClass, KeyPlacement, KeyEnums)

	v := &Variable{
		Name:  name,
		Class: class,
		Line:  body.Line(),
		Attrs: attrs,
		Array: attrs.Has(AttrNumber),
	}

	if n, ok := attrs.Int(AttrBitSize); ok && n == 0 {
		return nil, fmt.Errorf("line %d: %s must be positive", body.Line(), AttrBitSize)
	}

	if v.Array {
		if n, _ := attrs.Int(AttrNumber); n == 0 {
			return nil, fmt.Errorf("line %d: element count must be positive", at.Line())
		}

		if !attrs.Has(AttrStride) {
			f, _ := c.cfg.VariableTemplate.Lookup(AttrStride)
			attrs.Set(f, c.cfg.DefaultStride, false)
		}
	} else {
		attrs.Delete(AttrStride)
	}

	enum, err := enumEntries(body)
	if err != nil {
		return nil, err
	}

	if len(enum) > 0 {
		v.Enumerated = true
		v.Enum = enum
		attrs.Override(AttrBase, EnumBase)
	}

	return v, nil
}

func enumEntries(body *schema.Mapping) ([]EnumEntry, error) {
	items, err := body.Sequence(KeyEnums)
	if err != nil {
		return nil, err
	}

	out := make([]EnumEntry, 0, len(items))

	for i, item := range items {
		name, err := requiredString(item, KeyEnumName)
		if err != nil {
			return nil, fmt.Errorf("%s[%d]: %w", KeyEnums, i, err)
		}

		value, err := requiredInt(item, KeyValue)
		if err != nil {
			return nil, fmt.Errorf("%s[%d]: %w", KeyEnums, i, err)
		}

		out = append(out, EnumEntry{Value: value, Name: name})
	}

	return out, nil
}

func (c *classifier) command(name, class string, body *schema.Mapping) (*Command, error) {
	own := field.Bind(body, c.cfg.CommandVocabulary)

	attrs, err := c.cfg.CommandTemplate.Resolve(own)
	if err != nil {
		return nil, err
	}

	c.unknown(name, own, "", KeyClass, KeySequence)

	items, err := body.Sequence(KeySequence)
	if err != nil {
		return nil, err
	}

	cmd := &Command{
		Name:     name,
		Class:    class,
		Line:     body.Line(),
		Attrs:    attrs,
		Sequence: make([]Step, 0, len(items)),
	}

	for i, item := range items {
		entry, err := requiredString(item, KeyEntry)
		if err != nil {
			return nil, fmt.Errorf("%s[%d]: %w", KeySequence, i, err)
		}

		value, err := requiredInt(item, KeyValue)
		if err != nil {
			return nil, fmt.Errorf("%s[%d]: %w", KeySequence, i, err)
		}

		cmd.Sequence = append(cmd.Sequence, Step{Entry: entry, Value: value})
	}

	return cmd, nil
}

func (c *classifier) unsupported(name, class string, line int) *Unsupported {
	u := &Unsupported{
		Name:        name,
		Class:       class,
		Line:        line,
		Suggestions: match.Suggest(class, c.cfg.KnownClasses(), match.DefaultMinScore, 1),
	}

	msg := fmt.Sprintf("class %q is not supported, child skipped", class)
	if class == "" {
		msg = "child has no class, skipped"
	}

	c.diags.Add(diagnostic.Diagnostic{
		Severity:    diagnostic.SeverityWarning,
		Code:        diagnostic.CodeUnsupportedChild,
		Message:     msg,
		Module:      c.module,
		Child:       name,
		Line:        line,
		Suggestions: u.Suggestions,
	})

	return u
}

// unknown reports source keys no vocabulary term consumes.
func (c *classifier) unknown(child string, b field.Binding, prefix string, ignore ...string) {
	keys := b.Unknown(ignore...)
	if len(keys) == 0 {
		return
	}

	known := make([]string, 0, len(b.Vocabulary))
	for _, t := range b.Vocabulary {
		known = append(known, t.Source)
	}

	for _, k := range keys {
		c.diags.Add(diagnostic.Diagnostic{
			Severity:    diagnostic.SeverityInfo,
			Code:        diagnostic.CodeUnknownAttribute,
			Message:     fmt.Sprintf("attribute %s%s is ignored", prefix, k),
			Module:      c.module,
			Child:       child,
			Line:        b.Source.KeyLine(k),
			Suggestions: match.Suggest(k, known, match.DefaultMinScore, 1),
		})
	}
}

func requiredString(m *schema.Mapping, key string) (string, error) {
	v, ok := m.Get(key)
	if !ok {
		return "", fmt.Errorf("line %d: missing %s", m.Line(), key)
	}

	return v.String()
}

func requiredInt(m *schema.Mapping, key string) (int64, error) {
	v, ok := m.Get(key)
	if !ok {
		return 0, fmt.Errorf("line %d: missing %s", m.Line(), key)
	}

	return v.Int()
}
