package gen

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"yaml2rogue/internal/field"
	"yaml2rogue/internal/model"
)

// GeneratorConfig holds configuration for code generation.
type GeneratorConfig struct {
	// Layout holds the output columns.
	Layout Layout
	// Extension is appended to the module name to form the file name.
	Extension string
	// VariableToken, ArrayToken and CommandToken open registration blocks.
	VariableToken string
	ArrayToken    string
	CommandToken  string
	// BaseClass is the parent class of every generated class.
	BaseClass string
}

// DefaultGeneratorConfig returns the default generator configuration.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		Layout:        DefaultLayout(),
		Extension:     ".py",
		VariableToken: "self.addVariable",
		ArrayToken:    "self.addVariables",
		CommandToken:  "self.addCommand",
		BaseClass:     "pr.Device",
	}
}

// Generator generates PyRogue code from a resolved document.
type Generator struct {
	config GeneratorConfig
}

// NewGenerator creates a new Generator with the given configuration.
func NewGenerator(config GeneratorConfig) *Generator {
	return &Generator{config: config}
}

// GeneratedFile represents a generated Python source file.
type GeneratedFile struct {
	// Filename is the name of the file (e.g., "AxiVersion.py").
	Filename string
	// Content is the generated source.
	Content []byte
}

var identifier = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

const separator = "##############################"

// Generate renders the header followed by every module of doc, in order.
func (g *Generator) Generate(doc *model.Document, h Header) (GeneratedFile, error) {
	var buf bytes.Buffer

	if err := writeHeader(&buf, h, g.config.Extension); err != nil {
		return GeneratedFile{}, err
	}

	e := &emitter{config: g.config, buf: &buf}

	for i, m := range doc.Modules {
		if i > 0 {
			e.blank()
		}

		if err := e.module(m); err != nil {
			return GeneratedFile{}, fmt.Errorf("generating %s: %w", m.Name, err)
		}
	}

	return GeneratedFile{
		Filename: h.Module + g.config.Extension,
		Content:  buf.Bytes(),
	}, nil
}

type emitter struct {
	config GeneratorConfig
	buf    *bytes.Buffer
}

func (e *emitter) line(s string) {
	e.buf.WriteString(s)
	e.buf.WriteByte('\n')
}

func (e *emitter) blank() {
	e.buf.WriteByte('\n')
}

func (e *emitter) module(m *model.Module) error {
	if !identifier.MatchString(m.Name) {
		return fmt.Errorf("module name %q is not a valid Python identifier", m.Name)
	}

	l := e.config.Layout
	attrs := m.Attrs.List()

	params := make([]string, 0, len(attrs))
	forward := make([]string, 0, len(attrs))

	for _, a := range attrs {
		v, err := a.Render()
		if err != nil {
			return err
		}

		if a.Field.Format.Quoted() {
			v = pyQuote(v, '"')
		}

		params = append(params, a.Field.Name+"="+v)
		forward = append(forward, a.Field.Name+"="+a.Field.Name)
	}

	e.line(fmt.Sprintf("class %s(%s):", m.Name, e.config.BaseClass))
	e.line(at(l.Indent, "def __init__(self, "+strings.Join(params, ", ")+"):"))
	e.line(at(2*l.Indent, "super(self.__class__, self).__init__("+strings.Join(forward, ", ")+")"))
	e.blank()

	if m.VariableCount() > 0 {
		e.group("Variables")

		for _, v := range m.Variables {
			if err := e.variable(v); err != nil {
				return fmt.Errorf("variable %s: %w", v.Name, err)
			}
		}
	}

	if m.CommandCount() > 0 {
		e.group("Commands")

		for _, c := range m.Commands {
			if err := e.command(c); err != nil {
				return fmt.Errorf("command %s: %w", c.Name, err)
			}
		}
	}

	return nil
}

func (e *emitter) group(title string) {
	col := e.config.Layout.Call

	e.line(at(col, separator))
	e.line(at(col, "# "+title))
	e.line(at(col, separator))
	e.blank()
}

func (e *emitter) variable(v *model.Variable) error {
	l := e.config.Layout

	token := e.config.VariableToken
	if v.Array {
		token = e.config.ArrayToken
	}

	e.line(l.open(token, model.AttrName, "= "+pyQuote(v.Name, '\'')+","))

	if err := e.attrs(v.Attrs); err != nil {
		return err
	}

	if v.Enumerated {
		e.line(l.arg("enum", "= {"))

		for _, entry := range v.Enum {
			e.line(l.body(fmt.Sprintf("%d : %s,", entry.Value, pyQuote(entry.Name, '\''))))
		}

		e.line(at(l.Assign, "},"))
	}

	e.close()

	return nil
}

func (e *emitter) command(c *model.Command) error {
	l := e.config.Layout

	e.line(l.open(e.config.CommandToken, model.AttrName, "= "+pyQuote(c.Name, '\'')+","))

	if err := e.attrs(c.Attrs); err != nil {
		return err
	}

	e.line(l.arg("function", `= """\`))

	for _, step := range c.Sequence {
		if !identifier.MatchString(step.Entry) {
			return fmt.Errorf("sequence entry %q is not a valid Python identifier", step.Entry)
		}

		e.line(l.body(fmt.Sprintf("self.%s.set(%d)", step.Entry, step.Value)))
	}

	e.line(l.body(`"""`))
	e.close()

	return nil
}

func (e *emitter) attrs(attrs *field.Attrs) error {
	for _, a := range attrs.List() {
		v, err := assignment(a)
		if err != nil {
			return err
		}

		e.line(e.config.Layout.arg(a.Field.Name, v))
	}

	return nil
}

func (e *emitter) close() {
	e.line(at(e.config.Layout.Paren, ")"))
	e.blank()
}

// assignment renders "= 'text'," for quoted formats and "=  value," otherwise.
func assignment(a field.Attr) (string, error) {
	v, err := a.Render()
	if err != nil {
		return "", err
	}

	if a.Field.Format.Quoted() {
		return "= " + pyQuote(v, '\'') + ",", nil
	}

	return "=  " + v + ",", nil
}

// pyQuote returns s as a Python string literal delimited by quote.
func pyQuote(s string, quote rune) string {
	var sb strings.Builder

	sb.Grow(len(s) + 2)
	sb.WriteRune(quote)

	for _, r := range s {
		switch r {
		case '\\':
			sb.WriteString(`\\`)
		case quote:
			sb.WriteRune('\\')
			sb.WriteRune(r)
		case '\n':
			sb.WriteString(`\n`)
		case '\r':
			sb.WriteString(`\r`)
		case '\t':
			sb.WriteString(`\t`)
		default:
			sb.WriteRune(r)
		}
	}

	sb.WriteRune(quote)

	return sb.String()
}
