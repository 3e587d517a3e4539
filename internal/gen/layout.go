package gen

import (
	"strings"
	"unicode/utf8"
)

// Layout holds the 0-based columns of the emitted constructs.
type Layout struct {
	// Indent is the class body indentation.
	Indent int
	// Call is the column of registration tokens and group separators.
	Call int
	// Paren is the column of the opening and closing parenthesis.
	Paren int
	// Key is the column of keyword arguments.
	Key int
	// Assign is the column of '='.
	Assign int
	// Body is the column of enum entries and command script lines.
	Body int
}

// DefaultLayout returns the PyRogue column layout.
func DefaultLayout() Layout {
	return Layout{
		Indent: 4,
		Call:   8,
		Paren:  28,
		Key:    32,
		Assign: 45,
		Body:   47,
	}
}

// PadTo pads s with spaces so that the next character lands on column col.
// s is returned unchanged if it already reaches col.
func PadTo(s string, col int) string {
	n := utf8.RuneCountInString(s)
	if n >= col {
		return s
	}

	return s + strings.Repeat(" ", col-n)
}

// open returns the first line of a registration block.
func (l Layout) open(token, key, value string) string {
	s := PadTo("", l.Call) + token
	s = PadTo(s, l.Paren) + "("
	s = PadTo(s, l.Key) + key

	return PadTo(s, l.Assign) + value
}

// arg returns a keyword argument line.
func (l Layout) arg(key, value string) string {
	return PadTo(PadTo("", l.Key)+key, l.Assign) + value
}

// body returns a line starting at the body column.
func (l Layout) body(s string) string {
	return PadTo("", l.Body) + s
}

// at returns s starting at column col.
func at(col int, s string) string {
	return PadTo("", col) + s
}
