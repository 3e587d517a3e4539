// Package field provides ordered field templates and their resolution
// against YAML sources.
//
// A Template is an immutable, ordered list of fields. Each field has a name,
// a default value and a Format tag which decides both how a source value is
// decoded and how the resolved value is rendered:
//
//   - FormatString: quoted text ('RO', "Top")
//   - FormatLiteral: unquoted Python name (None, self.parent)
//   - FormatHex: 0x followed by at least two uppercase digits (0x0A, 0x12C)
//   - FormatDecimal: plain base 10 integer
//   - FormatBool: True or False
//
// Resolution walks the template in order and looks every field up through a
// list of Bindings. A Binding pairs a source mapping with a Vocabulary that
// translates source keys to template keys (e.g. "sizeBits" -> "bitSize").
// The first binding that provides a value wins; otherwise the default is
// used, or, for optional fields, the field is left out. Source keys that no
// vocabulary term knows are ignored by resolution; Binding.Unknown reports
// them.
//
// Template order is emission order and is never re-sorted.
package field
