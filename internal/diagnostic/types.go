package diagnostic

import (
	"errors"
	"fmt"
	"strings"
)

// Diagnostic codes.
const (
	CodeUnsupportedChild = "unsupported_child_class"
	CodeUnknownAttribute = "unknown_attribute"
	CodeUndefinedModule  = "undefined_module"
)

// Diagnostics holds all diagnostic information from a model build.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
	Infos    []Diagnostic
}

// Diagnostic represents a single diagnostic message.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity Severity
	// Code is a unique identifier for this type of diagnostic.
	Code string
	// Message is the human-readable description.
	Message string
	// Module is the module this relates to (if any).
	Module string
	// Child is the child this relates to (if any).
	Child string
	// Line is the source line (0 if unknown).
	Line int
	// Suggestions are potential fixes or alternatives.
	Suggestions []string
}

// Severity represents the severity level of a diagnostic.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
)

// String returns a human-readable severity name.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

// Add appends a diagnostic to the list matching its severity.
func (d *Diagnostics) Add(diag Diagnostic) {
	switch diag.Severity {
	case SeverityError:
		d.Errors = append(d.Errors, diag)
	case SeverityWarning:
		d.Warnings = append(d.Warnings, diag)
	default:
		d.Infos = append(d.Infos, diag)
	}
}

// HasErrors returns true if there are any error diagnostics.
func (d *Diagnostics) HasErrors() bool {
	return len(d.Errors) > 0
}

// Strict returns a copy where every warning is promoted to an error.
func (d *Diagnostics) Strict() Diagnostics {
	out := Diagnostics{Infos: append([]Diagnostic(nil), d.Infos...)}
	out.Errors = append(out.Errors, d.Errors...)

	for _, w := range d.Warnings {
		w.Severity = SeverityError
		out.Errors = append(out.Errors, w)
	}

	return out
}

// All returns every diagnostic, errors first.
func (d *Diagnostics) All() []Diagnostic {
	out := make([]Diagnostic, 0, len(d.Errors)+len(d.Warnings)+len(d.Infos))
	out = append(out, d.Errors...)
	out = append(out, d.Warnings...)

	return append(out, d.Infos...)
}

// IsValid returns true if there are no errors.
func (d *Diagnostics) IsValid() bool {
	return len(d.Errors) == 0
}

// Error returns a combined error from all error diagnostics, or nil if valid.
func (d *Diagnostics) Error() error {
	if d.IsValid() {
		return nil
	}

	var parts []string
	for _, e := range d.Errors {
		parts = append(parts, e.String())
	}

	return errors.New(strings.Join(parts, "; "))
}

// Location returns "Module.Child" style location text.
func (d Diagnostic) Location() string {
	switch {
	case d.Module != "" && d.Child != "":
		return d.Module + "." + d.Child
	case d.Module != "":
		return d.Module
	default:
		return d.Child
	}
}

// String returns a formatted diagnostic string.
func (d Diagnostic) String() string {
	msg := d.Message
	if d.Code != "" {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	if len(d.Suggestions) > 0 {
		msg += fmt.Sprintf(" (did you mean %s?)", strings.Join(d.Suggestions, ", "))
	}

	loc := d.Location()
	if d.Line > 0 {
		loc = fmt.Sprintf("%s (line %d)", loc, d.Line)
	}

	if loc != "" {
		return loc + ": " + msg
	}

	return msg
}
