package model

import (
	"yaml2rogue/internal/field"
)

// Emitted attribute names.
const (
	AttrName        = "name"
	AttrDescription = "description"
	AttrMemBase     = "memBase"
	AttrOffset      = "offset"
	AttrHidden      = "hidden"
	AttrBitSize     = "bitSize"
	AttrBitOffset   = "bitOffset"
	AttrBase        = "base"
	AttrMode        = "mode"
	AttrNumber      = "number"
	AttrStride      = "stride"
)

// Schema keys with structural meaning.
const (
	KeyChildren  = "children"
	KeyClass     = "class"
	KeyPlacement = "at"
	KeyEnums     = "enums"
	KeySequence  = "sequence"
	KeySize      = "size"
	KeyEntry     = "entry"
	KeyValue     = "value"
	KeyEnumName  = "name"
)

// EnumBase is the base of every enumerated variable.
const EnumBase = "enum"

// Config holds the templates and vocabularies used to build a model.
type Config struct {
	// ModuleTemplate resolves module attributes; its name field is always
	// set to the module key.
	ModuleTemplate field.Template
	// ModuleVocabulary maps module body keys to template keys.
	ModuleVocabulary field.Vocabulary

	// VariableTemplate resolves variable attributes.
	VariableTemplate field.Template
	// PlacementVocabulary maps "at" container keys to template keys.
	PlacementVocabulary field.Vocabulary
	// VariableVocabulary maps the child's own keys to template keys.
	VariableVocabulary field.Vocabulary

	// CommandTemplate resolves command attributes.
	CommandTemplate field.Template
	// CommandVocabulary maps the child's own keys to template keys.
	CommandVocabulary field.Vocabulary

	// VariableClasses and CommandClasses are the recognized class tags.
	VariableClasses []string
	CommandClasses  []string

	// DefaultStride is the array stride used when "at" has no stride.
	DefaultStride int64
}

// DefaultConfig returns the CPSW YAML to PyRogue configuration.
func DefaultConfig() Config {
	return Config{
		ModuleTemplate: field.NewTemplate("module",
			field.Field{Name: AttrName, Default: "", Format: field.FormatString},
			field.Field{Name: AttrDescription, Default: "", Format: field.FormatString},
			field.Field{Name: AttrMemBase, Default: field.None, Format: field.FormatLiteral},
			field.Field{Name: AttrOffset, Default: int64(0), Format: field.FormatHex},
			field.Field{Name: AttrHidden, Default: field.False, Format: field.FormatBool},
		),
		ModuleVocabulary: field.Identity(AttrDescription, AttrMemBase, AttrOffset, AttrHidden),

		VariableTemplate: field.NewTemplate("variable",
			field.Field{Name: AttrDescription, Default: "", Format: field.FormatString},
			field.Field{Name: AttrOffset, Default: int64(0), Format: field.FormatHex},
			field.Field{Name: AttrBitSize, Default: int64(32), Format: field.FormatDecimal},
			field.Field{Name: AttrBitOffset, Default: int64(0), Format: field.FormatHex},
			field.Field{Name: AttrBase, Default: "hex", Format: field.FormatString},
			field.Field{Name: AttrMode, Default: "RO", Format: field.FormatString},
			field.Field{Name: AttrNumber, Format: field.FormatDecimal, Optional: true},
			field.Field{Name: AttrStride, Format: field.FormatDecimal, Optional: true},
		),
		PlacementVocabulary: field.Vocabulary{
			{Source: "offset", Key: AttrOffset},
			{Source: "bitOffset", Key: AttrBitOffset},
			{Source: "nelms", Key: AttrNumber},
			{Source: "stride", Key: AttrStride},
		},
		VariableVocabulary: field.Vocabulary{
			{Source: "description", Key: AttrDescription},
			{Source: "sizeBits", Key: AttrBitSize},
			{Source: "lsBit", Key: AttrBitOffset},
			{Source: "base", Key: AttrBase},
			{Source: "mode", Key: AttrMode},
		},

		CommandTemplate: field.NewTemplate("command",
			field.Field{Name: AttrDescription, Default: "", Format: field.FormatString},
		),
		CommandVocabulary: field.Identity(AttrDescription),

		VariableClasses: []string{"IntField"},
		CommandClasses:  []string{"SequenceCommand"},

		DefaultStride: 4,
	}
}

// KnownClasses returns every recognized class tag.
func (c Config) KnownClasses() []string {
	out := make([]string, 0, len(c.VariableClasses)+len(c.CommandClasses))
	out = append(out, c.VariableClasses...)

	return append(out, c.CommandClasses...)
}
