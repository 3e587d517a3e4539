package model

import (
	"yaml2rogue/internal/field"
)

// Kind identifies the variant of a child.
type Kind int

const (
	_ Kind = iota

	KindVariable
	KindCommand
	KindUnsupported
)

// String returns the lower case kind name.
func (k Kind) String() string {
	switch k {
	case KindVariable:
		return "variable"
	case KindCommand:
		return "command"
	case KindUnsupported:
		return "unsupported"
	default:
		return "unknown"
	}
}

// Child is one classified module child.
type Child interface {
	ChildName() string
	Kind() Kind
}

// Document is the resolved model of a schema document.
type Document struct {
	// Modules in document order. Modules declared without a body are not
	// included.
	Modules []*Module
	// Skipped lists modules declared without a body.
	Skipped []string
}

// Module returns the module with the given name.
func (d *Document) Module(name string) (*Module, bool) {
	for _, m := range d.Modules {
		if m.Name == name {
			return m, true
		}
	}

	return nil, false
}

// Module is one device class.
type Module struct {
	Name  string
	Line  int
	Attrs *field.Attrs

	Variables   []*Variable
	Commands    []*Command
	Unsupported []*Unsupported

	children []Child
}

// Description returns the resolved module description.
func (m *Module) Description() string {
	return m.Attrs.String(AttrDescription)
}

// VariableCount returns the number of variable children.
func (m *Module) VariableCount() int {
	return len(m.Variables)
}

// CommandCount returns the number of command children.
func (m *Module) CommandCount() int {
	return len(m.Commands)
}

// Children returns every child, unsupported ones included, in document order.
func (m *Module) Children() []Child {
	return append([]Child(nil), m.children...)
}

func (m *Module) add(c Child) {
	m.children = append(m.children, c)

	switch c := c.(type) {
	case *Variable:
		m.Variables = append(m.Variables, c)
	case *Command:
		m.Commands = append(m.Commands, c)
	case *Unsupported:
		m.Unsupported = append(m.Unsupported, c)
	}
}

// Variable is a register field.
type Variable struct {
	Name  string
	Class string
	Line  int
	// Attrs are resolved from the variable template. Number and stride are
	// present only for arrays.
	Attrs *field.Attrs
	// Array is set when the placement supplies an element count.
	Array bool
	// Enumerated is set when the child declares enums; base is then "enum".
	Enumerated bool
	// Enum entries in source order.
	Enum []EnumEntry
}

// ChildName implements Child.
func (v *Variable) ChildName() string { return v.Name }

// Kind implements Child.
func (v *Variable) Kind() Kind { return KindVariable }

// EnumEntry maps a raw value to its display name.
type EnumEntry struct {
	Value int64
	Name  string
}

// Command is a scripted sequence of register writes.
type Command struct {
	Name  string
	Class string
	Line  int
	Attrs *field.Attrs
	// Sequence steps in execution order.
	Sequence []Step
}

// ChildName implements Child.
func (c *Command) ChildName() string { return c.Name }

// Kind implements Child.
func (c *Command) Kind() Kind { return KindCommand }

// Step writes Value to the entry named Entry.
type Step struct {
	Entry string
	Value int64
}

// Unsupported is a child whose class tag is not recognized.
type Unsupported struct {
	Name  string
	Class string
	Line  int
	// Suggestions are known classes close to Class.
	Suggestions []string
}

// ChildName implements Child.
func (u *Unsupported) ChildName() string { return u.Name }

// Kind implements Child.
func (u *Unsupported) Kind() Kind { return KindUnsupported }
