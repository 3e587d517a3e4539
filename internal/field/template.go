package field

import (
	"fmt"
	"regexp"
	"slices"

	"yaml2rogue/internal/schema"
)

// Field is one slot of a Template.
type Field struct {
	// Name is the emitted key.
	Name string
	// Default is used when no binding supplies a value. Ignored for
	// optional fields.
	Default any
	// Format decides decoding and rendering.
	Format Format
	// Optional fields are left out of the result unless a source supplies them.
	Optional bool
}

// Template is an immutable ordered list of fields.
type Template struct {
	name   string
	fields []Field
}

// NewTemplate creates a template. Field order is kept as given.
// It panics on duplicate or invalid fields since templates are static.
func NewTemplate(name string, fields ...Field) Template {
	seen := make(map[string]struct{}, len(fields))

	for _, f := range fields {
		if f.Name == "" {
			panic(fmt.Sprintf("template %s: field without a name", name))
		}

		if f.Format < FormatString || f.Format > FormatBool {
			panic(fmt.Sprintf("template %s: field %s has invalid format %s", name, f.Name, f.Format))
		}

		if _, dup := seen[f.Name]; dup {
			panic(fmt.Sprintf("template %s: duplicate field %s", name, f.Name))
		}

		seen[f.Name] = struct{}{}
	}

	return Template{name: name, fields: slices.Clone(fields)}
}

// Lookup returns the field with the given name.
func (t Template) Lookup(name string) (Field, bool) {
	for _, f := range t.fields {
		if f.Name == name {
			return f, true
		}
	}

	return Field{}, false
}

// Resolve produces the ordered attribute set of t from the given bindings.
func (t Template) Resolve(bindings ...Binding) (*Attrs, error) {
	attrs := NewAttrs()

	for _, f := range t.fields {
		value, found, err := lookup(f, bindings)
		if err != nil {
			return nil, fmt.Errorf("%s.%s: %w", t.name, f.Name, err)
		}

		switch {
		case found:
			attrs.Set(f, value, true)
		case !f.Optional:
			attrs.Set(f, f.Default, false)
		}
	}

	return attrs, nil
}

func lookup(f Field, bindings []Binding) (any, bool, error) {
	for _, b := range bindings {
		for _, term := range b.Vocabulary {
			if term.Key != f.Name {
				continue
			}

			v, ok := b.Source.Get(term.Source)
			if !ok {
				continue
			}

			decoded, err := Decode(f.Format, v)
			if err != nil {
				return nil, false, err
			}

			return decoded, true, nil
		}
	}

	return nil, false, nil
}

// dottedName matches a Python name or attribute path such as self.parent.
var dottedName = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*(\.[A-Za-z_][A-Za-z0-9_]*)*$`)

// Decode converts a source value according to format. Literal values must
// be booleans or Python names.
func Decode(format Format, v schema.Value) (any, error) {
	switch format {
	case FormatString:
		return v.String()

	case FormatLiteral:
		if v.IsBool() {
			b, err := v.Bool()
			if err != nil {
				return nil, err
			}

			return Bool(b), nil
		}

		s, err := v.String()
		if err != nil {
			return nil, err
		}

		if !dottedName.MatchString(s) {
			return nil, fmt.Errorf("line %d: %q is not a Python name", v.Line(), s)
		}

		return Literal(s), nil

	case FormatBool:
		b, err := v.Bool()
		if err != nil {
			return nil, err
		}

		return Bool(b), nil

	case FormatHex, FormatDecimal:
		n, err := v.Int()
		if err != nil {
			return nil, err
		}

		if n < 0 {
			return nil, fmt.Errorf("line %d: value %d must not be negative", v.Line(), n)
		}

		return n, nil

	default:
		return nil, fmt.Errorf("unknown format %s", format)
	}
}

// Term maps one source key to a template key.
type Term struct {
	Source string
	Key    string
}

// Vocabulary is an ordered list of terms. When several terms map to the
// same template key, the first one present in the source wins.
type Vocabulary []Term

// Identity returns a vocabulary where every key maps to itself.
func Identity(keys ...string) Vocabulary {
	v := make(Vocabulary, 0, len(keys))
	for _, k := range keys {
		v = append(v, Term{Source: k, Key: k})
	}

	return v
}

// Knows returns true if some term uses the source key.
func (v Vocabulary) Knows(source string) bool {
	return slices.ContainsFunc(v, func(t Term) bool { return t.Source == source })
}

// Binding pairs a source mapping with its vocabulary.
type Binding struct {
	Source     *schema.Mapping
	Vocabulary Vocabulary
}

// Bind creates a Binding. A nil source is allowed and supplies nothing.
func Bind(source *schema.Mapping, vocab Vocabulary) Binding {
	return Binding{Source: source, Vocabulary: vocab}
}

// Unknown returns the source keys the vocabulary does not know, in source
// order, skipping the ones listed in ignore.
func (b Binding) Unknown(ignore ...string) []string {
	var out []string

	for _, k := range b.Source.Keys() {
		if b.Vocabulary.Knows(k) || slices.Contains(ignore, k) {
			continue
		}

		out = append(out, k)
	}

	return out
}
