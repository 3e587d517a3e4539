package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"yaml2rogue/internal/diagnostic"
	"yaml2rogue/internal/field"
	"yaml2rogue/internal/schema"
)

func build(t *testing.T, src string) (*Document, diagnostic.Diagnostics) {
	t.Helper()

	doc, err := schema.Parse([]byte(src))
	require.NoError(t, err)

	out, diags, err := Build(doc, DefaultConfig())
	require.NoError(t, err)

	return out, diags
}

func attrValue(t *testing.T, attrs *field.Attrs, name string) any {
	t.Helper()

	a, ok := attrs.Get(name)
	require.True(t, ok, "missing attribute %s", name)

	return a.Value
}

func TestBuildVariable(t *testing.T) {
	doc, diags := build(t, `
AxiVersion:
  description: Firmware version
  children:
    FpgaVersion:
      class: IntField
      at: { offset: 0x00 }
      sizeBits: 32
      mode: RO
      description: FPGA version
`)

	require.Len(t, doc.Modules, 1)
	assert.Empty(t, diags.All())

	m := doc.Modules[0]
	assert.Equal(t, "AxiVersion", m.Name)
	assert.Equal(t, "Firmware version", m.Description())
	assert.Equal(t, 1, m.VariableCount())
	assert.Equal(t, 0, m.CommandCount())
	assert.Equal(t, []string{AttrName, AttrDescription, AttrMemBase, AttrOffset, AttrHidden}, m.Attrs.Names())
	assert.Equal(t, "AxiVersion", attrValue(t, m.Attrs, AttrName))

	v := m.Variables[0]
	assert.Equal(t, "FpgaVersion", v.Name)
	assert.False(t, v.Array)
	assert.False(t, v.Enumerated)
	assert.Equal(t,
		[]string{AttrDescription, AttrOffset, AttrBitSize, AttrBitOffset, AttrBase, AttrMode},
		v.Attrs.Names())
	assert.Equal(t, "FPGA version", attrValue(t, v.Attrs, AttrDescription))
	assert.Equal(t, int64(32), attrValue(t, v.Attrs, AttrBitSize))
	assert.Equal(t, "hex", attrValue(t, v.Attrs, AttrBase))

	base, _ := v.Attrs.Get(AttrBase)
	assert.False(t, base.FromSource)
}

func TestBuildVariableDefaults(t *testing.T) {
	doc, _ := build(t, `
M:
  children:
    R:
      class: IntField
`)

	v := doc.Modules[0].Variables[0]
	assert.Equal(t, "", attrValue(t, v.Attrs, AttrDescription))
	assert.Equal(t, int64(0), attrValue(t, v.Attrs, AttrOffset))
	assert.Equal(t, int64(32), attrValue(t, v.Attrs, AttrBitSize))
	assert.Equal(t, int64(0), attrValue(t, v.Attrs, AttrBitOffset))
	assert.Equal(t, "hex", attrValue(t, v.Attrs, AttrBase))
	assert.Equal(t, "RO", attrValue(t, v.Attrs, AttrMode))
}

func TestBuildArray(t *testing.T) {
	doc, _ := build(t, `
M:
  children:
    Scratch:
      class: IntField
      at: { offset: 0x10, nelms: 8 }
    Wide:
      class: IntField
      at: { offset: 0x40, nelms: 4, stride: 8 }
    Single:
      class: IntField
      at: { offset: 0x80, stride: 8 }
`)

	vars := doc.Modules[0].Variables
	require.Len(t, vars, 3)

	assert.True(t, vars[0].Array)
	assert.Equal(t, int64(8), attrValue(t, vars[0].Attrs, AttrNumber))
	assert.Equal(t, int64(4), attrValue(t, vars[0].Attrs, AttrStride))
	assert.Equal(t, []string{AttrNumber, AttrStride}, vars[0].Attrs.Names()[6:])

	assert.True(t, vars[1].Array)
	assert.Equal(t, int64(8), attrValue(t, vars[1].Attrs, AttrStride))

	assert.False(t, vars[2].Array)
	assert.False(t, vars[2].Attrs.Has(AttrStride))
	assert.False(t, vars[2].Attrs.Has(AttrNumber))
}

func TestBuildEnum(t *testing.T) {
	doc, _ := build(t, `
M:
  children:
    Mode:
      class: IntField
      base: hex
      sizeBits: 2
      enums:
        - { name: Off, value: 0 }
        - { name: On, value: 1 }
        - { name: Auto, value: 3 }
`)

	v := doc.Modules[0].Variables[0]
	assert.True(t, v.Enumerated)
	assert.Equal(t, EnumBase, attrValue(t, v.Attrs, AttrBase))
	assert.Equal(t, []EnumEntry{{0, "Off"}, {1, "On"}, {3, "Auto"}}, v.Enum)
}

func TestBuildEmptyEnumList(t *testing.T) {
	doc, _ := build(t, `
M:
  children:
    Empty:
      class: IntField
      base: uint
      enums: []
    Null:
      class: IntField
      enums:
`)

	for _, v := range doc.Modules[0].Variables {
		assert.False(t, v.Enumerated, v.Name)
		assert.Empty(t, v.Enum, v.Name)
	}

	assert.Equal(t, "uint", attrValue(t, doc.Modules[0].Variables[0].Attrs, AttrBase))
	assert.Equal(t, "hex", attrValue(t, doc.Modules[0].Variables[1].Attrs, AttrBase))
}

func TestBuildCommand(t *testing.T) {
	doc, _ := build(t, `
M:
  children:
    Reset:
      class: SequenceCommand
      description: Pulse reset
      sequence:
        - { entry: RstReg, value: 1 }
        - { entry: RstReg, value: 0 }
`)

	m := doc.Modules[0]
	require.Equal(t, 1, m.CommandCount())
	assert.Equal(t, 0, m.VariableCount())

	cmd := m.Commands[0]
	assert.Equal(t, "Pulse reset", attrValue(t, cmd.Attrs, AttrDescription))
	assert.Equal(t, []Step{{"RstReg", 1}, {"RstReg", 0}}, cmd.Sequence)
}

func TestBuildUnsupported(t *testing.T) {
	doc, diags := build(t, `
M:
  children:
    A:
      class: IntField
    Mmio:
      class: MMIODev
    Typo:
      class: IntFeild
    NoClass:
      description: orphan
    Empty:
`)

	m := doc.Modules[0]
	assert.Equal(t, 1, m.VariableCount())
	assert.Equal(t, 0, m.CommandCount())
	require.Len(t, m.Unsupported, 4)

	names := make([]string, 0, len(m.Children()))
	for _, c := range m.Children() {
		names = append(names, c.ChildName())
	}

	assert.Equal(t, []string{"A", "Mmio", "Typo", "NoClass", "Empty"}, names)
	assert.Equal(t, KindVariable, m.Children()[0].Kind())
	assert.Equal(t, KindUnsupported, m.Children()[1].Kind())

	assert.Equal(t, "IntFeild", m.Unsupported[1].Class)
	assert.Equal(t, []string{"IntField"}, m.Unsupported[1].Suggestions)
	assert.Empty(t, m.Unsupported[0].Suggestions)
	assert.Equal(t, "", m.Unsupported[3].Class)
	assert.Positive(t, m.Unsupported[3].Line)

	require.Len(t, diags.Warnings, 4)
	assert.Equal(t, diagnostic.CodeUnsupportedChild, diags.Warnings[0].Code)
	assert.Equal(t, "M", diags.Warnings[0].Module)
	assert.Equal(t, "Mmio", diags.Warnings[0].Child)
	assert.True(t, diags.IsValid())

	strict := diags.Strict()
	assert.False(t, strict.IsValid())
}

func TestBuildUnknownAttributes(t *testing.T) {
	_, diags := build(t, `
M:
  size: 0x100
  children:
    R:
      class: IntField
      at: { ofset: 4 }
      sizebits: 8
`)

	require.Len(t, diags.Infos, 2)
	assert.Empty(t, diags.Warnings)

	assert.Equal(t, diagnostic.CodeUnknownAttribute, diags.Infos[0].Code)
	assert.Contains(t, diags.Infos[0].Message, "at.ofset")
	assert.Equal(t, []string{"offset"}, diags.Infos[0].Suggestions)
	assert.Equal(t, []string{"sizeBits"}, diags.Infos[1].Suggestions)
	assert.Positive(t, diags.Infos[1].Line)
}

func TestBuildSkipsModulesWithoutBody(t *testing.T) {
	doc, diags := build(t, `
First:
Second:
  description: kept
Third: ~
`)

	require.Len(t, doc.Modules, 1)
	assert.Equal(t, "Second", doc.Modules[0].Name)
	assert.Equal(t, []string{"First", "Third"}, doc.Skipped)
	require.Len(t, diags.Infos, 2)
	assert.Equal(t, diagnostic.CodeUndefinedModule, diags.Infos[0].Code)

	_, ok := doc.Module("First")
	assert.False(t, ok)

	m, ok := doc.Module("Second")
	require.True(t, ok)
	assert.Equal(t, "kept", m.Description())
}

func TestBuildPreservesOrder(t *testing.T) {
	doc, _ := build(t, `
Zeta:
  children:
    C: { class: IntField }
    A: { class: SequenceCommand }
    B: { class: IntField }
Alpha:
  children: {}
`)

	require.Len(t, doc.Modules, 2)
	assert.Equal(t, "Zeta", doc.Modules[0].Name)
	assert.Equal(t, "Alpha", doc.Modules[1].Name)
	assert.Equal(t, "C", doc.Modules[0].Variables[0].Name)
	assert.Equal(t, "B", doc.Modules[0].Variables[1].Name)
	assert.Equal(t, "A", doc.Modules[0].Commands[0].Name)
}

func TestBuildErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{
			name: "negative offset",
			src:  "M:\n  children:\n    R:\n      class: IntField\n      at: { offset: -4 }\n",
			want: "must not be negative",
		},
		{
			name: "zero bit size",
			src:  "M:\n  children:\n    R:\n      class: IntField\n      sizeBits: 0\n",
			want: "bitSize must be positive",
		},
		{
			name: "zero elements",
			src:  "M:\n  children:\n    R:\n      class: IntField\n      at: { nelms: 0 }\n",
			want: "element count must be positive",
		},
		{
			name: "non integer size",
			src:  "M:\n  children:\n    R:\n      class: IntField\n      sizeBits: wide\n",
			want: "expected integer",
		},
		{
			name: "sequence step without value",
			src:  "M:\n  children:\n    C:\n      class: SequenceCommand\n      sequence:\n        - { entry: R }\n",
			want: "missing value",
		},
		{
			name: "enum without name",
			src:  "M:\n  children:\n    R:\n      class: IntField\n      enums:\n        - { value: 1 }\n",
			want: "missing name",
		},
		{
			name: "hidden is not a boolean",
			src:  "M:\n  hidden: 1\n",
			want: "expected boolean",
		},
		{
			name: "memBase is not a name",
			src:  "M:\n  memBase: \"a b; import os\"\n",
			want: "is not a Python name",
		},
		{
			name: "children is a list",
			src:  "M:\n  children: [1, 2]\n",
			want: "expected a mapping",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := schema.Parse([]byte(tt.src))
			require.NoError(t, err)

			_, _, err = Build(doc, DefaultConfig())
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
			assert.Contains(t, err.Error(), "module M")
		})
	}
}

func TestClassify(t *testing.T) {
	doc, err := schema.Parse([]byte(`
M:
  children:
    V: { class: IntField }
    C: { class: SequenceCommand }
    U: { class: Other }
`))
	require.NoError(t, err)

	children, err := doc.Modules[0].Body.Mapping(KeyChildren)
	require.NoError(t, err)

	var diags diagnostic.Diagnostics

	c := &classifier{cfg: DefaultConfig(), diags: &diags, module: "M"}

	want := map[string]Kind{"V": KindVariable, "C": KindCommand, "U": KindUnsupported}
	for name, kind := range want {
		body, err := children.Mapping(name)
		require.NoError(t, err)

		child, err := c.classify(name, body, 0)
		require.NoError(t, err)
		assert.Equal(t, kind, child.Kind(), name)
		assert.Equal(t, name, child.ChildName())
	}

	child, err := c.classify("Nil", nil, 7)
	require.NoError(t, err)
	assert.Equal(t, KindUnsupported, child.Kind())

	require.Len(t, diags.Warnings, 2)
	assert.Equal(t, "Nil", diags.Warnings[1].Child)
	assert.Equal(t, "M", diags.Warnings[1].Module)
	assert.Equal(t, 7, diags.Warnings[1].Line)
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "variable", KindVariable.String())
	assert.Equal(t, "command", KindCommand.String())
	assert.Equal(t, "unsupported", KindUnsupported.String())
	assert.Equal(t, "unknown", Kind(0).String())
}
