package gen

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"yaml2rogue/internal/model"
	"yaml2rogue/internal/schema"
)

func buildDoc(t *testing.T, src string) *model.Document {
	t.Helper()

	doc, err := schema.Parse([]byte(src))
	require.NoError(t, err)

	out, _, err := model.Build(doc, model.DefaultConfig())
	require.NoError(t, err)

	return out
}

func testHeader() Header {
	return Header{
		Title:       "PyRogue Test device",
		Description: "PyRogue Test device",
		Module:      "Dev",
		Created:     time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC),
	}
}

// generateBody returns the generated text after the header.
func generateBody(t *testing.T, src string) string {
	t.Helper()

	file, err := NewGenerator(DefaultGeneratorConfig()).Generate(buildDoc(t, src), testHeader())
	require.NoError(t, err)

	parts := strings.SplitN(string(file.Content), "import pyrogue as pr\n\n", 2)
	require.Len(t, parts, 2)

	return parts[1]
}

func lines(l ...string) string {
	return strings.Join(l, "\n") + "\n"
}

const deviceYAML = `
Dev:
  description: Test device
  children:
    Scratch:
      class: IntField
      description: Scratch pad
      at: { offset: 0x10 }
      mode: RW
    Buf:
      class: IntField
      sizeBits: 8
      at: { offset: 300, nelms: 4 }
    Reset:
      class: SequenceCommand
      description: Pulse reset
      sequence:
        - { entry: A, value: 1 }
        - { entry: B, value: 2 }
    Mode:
      class: IntField
      sizeBits: 2
      lsBit: 10
      base: hex
      mode: RW
      enums:
        - { name: Disabled, value: 0 }
        - { name: Enabled, value: 1 }
`

func TestGenerator_Generate_Device(t *testing.T) {
	want := lines(
		`class Dev(pr.Device):`,
		`    def __init__(self, name="Dev", description="Test device", memBase=None, offset=0x00, hidden=False):`,
		`        super(self.__class__, self).__init__(name=name, description=description, memBase=memBase, offset=offset, hidden=hidden)`,
		``,
		`        ##############################`,
		`        # Variables`,
		`        ##############################`,
		``,
		`        self.addVariable    (   name         = 'Scratch',`,
		`                                description  = 'Scratch pad',`,
		`                                offset       =  0x10,`,
		`                                bitSize      =  32,`,
		`                                bitOffset    =  0x00,`,
		`                                base         = 'hex',`,
		`                                mode         = 'RW',`,
		`                            )`,
		``,
		`        self.addVariables   (   name         = 'Buf',`,
		`                                description  = '',`,
		`                                offset       =  0x12C,`,
		`                                bitSize      =  8,`,
		`                                bitOffset    =  0x00,`,
		`                                base         = 'hex',`,
		`                                mode         = 'RO',`,
		`                                number       =  4,`,
		`                                stride       =  4,`,
		`                            )`,
		``,
		`        self.addVariable    (   name         = 'Mode',`,
		`                                description  = '',`,
		`                                offset       =  0x00,`,
		`                                bitSize      =  2,`,
		`                                bitOffset    =  0x0A,`,
		`                                base         = 'enum',`,
		`                                mode         = 'RW',`,
		`                                enum         = {`,
		`                                               0 : 'Disabled',`,
		`                                               1 : 'Enabled',`,
		`                                             },`,
		`                            )`,
		``,
		`        ##############################`,
		`        # Commands`,
		`        ##############################`,
		``,
		`        self.addCommand     (   name         = 'Reset',`,
		`                                description  = 'Pulse reset',`,
		`                                function     = """\`,
		`                                               self.A.set(1)`,
		`                                               self.B.set(2)`,
		`                                               """`,
		`                            )`,
		``,
	)

	assert.Equal(t, want, generateBody(t, deviceYAML))
}

func TestGenerator_Generate_Header(t *testing.T) {
	file, err := NewGenerator(DefaultGeneratorConfig()).Generate(buildDoc(t, deviceYAML), testHeader())
	require.NoError(t, err)

	assert.Equal(t, "Dev.py", file.Filename)

	want := lines(
		`#!/usr/bin/env python`,
		`#-----------------------------------------------------------------------------`,
		`# Title      : PyRogue Test device`,
		`#-----------------------------------------------------------------------------`,
		`# File       : Dev.py`,
		`# Created    : 2024-03-05`,
		`#-----------------------------------------------------------------------------`,
		`# Description:`,
		`# PyRogue Test device`,
		`#-----------------------------------------------------------------------------`,
	)
	assert.True(t, strings.HasPrefix(string(file.Content), want), string(file.Content))
	assert.Contains(t, string(file.Content), "# contained in the LICENSE.txt file.\n")
	assert.Equal(t, 1, strings.Count(string(file.Content), "import pyrogue as pr\n"))
}

func TestGenerator_Generate_MultiLineDescription(t *testing.T) {
	h := testHeader()
	h.Description = "first\nsecond"

	file, err := NewGenerator(DefaultGeneratorConfig()).Generate(&model.Document{}, h)
	require.NoError(t, err)
	assert.Contains(t, string(file.Content), "# Description:\n# first\n# second\n")
}

func TestGenerator_Generate_EmptyModule(t *testing.T) {
	got := generateBody(t, "Top:\n  description: Top\n")

	want := lines(
		`class Top(pr.Device):`,
		`    def __init__(self, name="Top", description="Top", memBase=None, offset=0x00, hidden=False):`,
		`        super(self.__class__, self).__init__(name=name, description=description, memBase=memBase, offset=offset, hidden=hidden)`,
		``,
	)
	assert.Equal(t, want, got)
	assert.NotContains(t, got, "# Variables")
	assert.NotContains(t, got, "# Commands")
}

func TestGenerator_Generate_UnsupportedChildrenOnly(t *testing.T) {
	got := generateBody(t, `
Top:
  children:
    Mmio:
      class: MMIODev
`)

	assert.NotContains(t, got, "# Variables")
	assert.NotContains(t, got, "Mmio")
}

func TestGenerator_Generate_ModuleAttributes(t *testing.T) {
	got := generateBody(t, `
Top:
  description: It's "quoted"
  offset: 0x1000
  hidden: true
  memBase: base
`)

	assert.Contains(t, got,
		`    def __init__(self, name="Top", description="It's \"quoted\"", memBase=base, offset=0x1000, hidden=True):`)
}

func TestGenerator_Generate_QuotesStrings(t *testing.T) {
	got := generateBody(t, `
Top:
  children:
    R:
      class: IntField
      description: it's a 'test'
`)

	assert.Contains(t, got, `description  = 'it\'s a \'test\'',`)
}

func TestGenerator_Generate_MultipleModules(t *testing.T) {
	got := generateBody(t, `
B:
  description: second
A:
Z:
  description: third
`)

	b := strings.Index(got, "class B(pr.Device):")
	z := strings.Index(got, "class Z(pr.Device):")

	require.GreaterOrEqual(t, b, 0)
	require.Greater(t, z, b)
	assert.NotContains(t, got, "class A(")
	assert.Contains(t, got, "hidden=hidden)\n\n\nclass Z(pr.Device):")
}

func TestGenerator_Generate_ArrayStride(t *testing.T) {
	got := generateBody(t, `
Top:
  children:
    Wide:
      class: IntField
      at: { nelms: 2, stride: 8 }
    Single:
      class: IntField
      at: { stride: 8 }
`)

	assert.Contains(t, got, `        self.addVariables   (   name         = 'Wide',`)
	assert.Contains(t, got, `        self.addVariable    (   name         = 'Single',`)
	assert.Equal(t, 1, strings.Count(got, "stride"))
	assert.Contains(t, got, `                                stride       =  8,`)
}

func TestGenerator_Generate_EmptySequence(t *testing.T) {
	got := generateBody(t, `
Top:
  children:
    Noop:
      class: SequenceCommand
`)

	assert.Contains(t, got, lines(
		`                                function     = """\`,
		`                                               """`,
		`                            )`,
	))
}

func TestGenerator_Generate_InvalidIdentifiers(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{
			name: "module name",
			src:  "My-Dev:\n  description: x\n",
			want: `module name "My-Dev"`,
		},
		{
			name: "sequence entry",
			src: `
Dev:
  children:
    C:
      class: SequenceCommand
      sequence:
        - { entry: "A.B()", value: 1 }
`,
			want: `sequence entry "A.B()"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewGenerator(DefaultGeneratorConfig()).Generate(buildDoc(t, tt.src), testHeader())
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestHexRendering(t *testing.T) {
	tests := map[string]string{
		"0":     "0x00",
		"10":    "0x0A",
		"0x0a":  "0x0A",
		"300":   "0x12C",
		"65535": "0xFFFF",
	}

	for in, want := range tests {
		got := generateBody(t, "Top:\n  children:\n    R:\n      class: IntField\n      at: { offset: "+in+" }\n")
		assert.Contains(t, got, "offset       =  "+want+",", in)
	}
}

func TestPyQuote(t *testing.T) {
	assert.Equal(t, `'plain'`, pyQuote("plain", '\''))
	assert.Equal(t, `'it\'s'`, pyQuote("it's", '\''))
	assert.Equal(t, `"it's"`, pyQuote("it's", '"'))
	assert.Equal(t, `"a\\b\nc"`, pyQuote("a\\b\nc", '"'))
}
