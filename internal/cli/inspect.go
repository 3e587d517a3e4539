package cli

import (
	"bytes"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"yaml2rogue/internal/flags/log"
	"yaml2rogue/internal/model"
)

// NewInspectCommand returns the inspect command.
func NewInspectCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect -M <module> [-D <dir>]",
		Short: "Print the resolved children of <dir>/<module>.yaml",
		Long: `Inspect resolves <dir>/<module>.yaml like generate does and prints one row
per child: its module, name, class tag, kind (variable, command or
unsupported), element count for arrays and number of enum entries.`,
		Args: cobra.NoArgs,
		RunE: runInspect,
	}

	cmd.Flags().StringP(FlagModule, "M", "", "module name, read from <dir>/<module>.yaml (required)")
	cmd.Flags().StringP(FlagDir, "D", ".", "input directory")

	return cmd
}

func runInspect(cmd *cobra.Command, _ []string) error {
	module, err := cmd.Flags().GetString(FlagModule)
	if err != nil {
		return err
	}

	dir, err := cmd.Flags().GetString(FlagDir)
	if err != nil {
		return err
	}

	logger, err := log.GetBaseLogger(cmd)
	if err != nil {
		return err
	}

	in, err := load(module, dir)
	if err != nil {
		return err
	}

	report(cmd.Context(), logger, in.Diags)

	_, err = cmd.OutOrStdout().Write(encodeTable(in.Doc))

	return err
}

func encodeTable(doc *model.Document) []byte {
	var buf bytes.Buffer

	t := table.NewWriter()
	t.SetOutputMirror(&buf)
	t.AppendHeader(table.Row{"Module", "Child", "Class", "Kind", "Array", "Enum"})

	for _, m := range doc.Modules {
		children := m.Children()
		if len(children) == 0 {
			t.AppendRow(table.Row{m.Name, "", "", "", "", ""})
			continue
		}

		for _, c := range children {
			t.AppendRow(childRow(m.Name, c))
		}
	}

	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, AutoMerge: true},
	})

	style := table.StyleLight
	style.Options.DrawBorder = false
	t.SetStyle(style)
	t.Render()

	return buf.Bytes()
}

func childRow(module string, c model.Child) table.Row {
	row := table.Row{module, c.ChildName(), "", c.Kind().String(), "", ""}

	switch c := c.(type) {
	case *model.Variable:
		row[2] = c.Class

		if n, ok := c.Attrs.Int(model.AttrNumber); ok {
			row[4] = strconv.FormatInt(n, 10)
		}

		if c.Enumerated {
			row[5] = strconv.Itoa(len(c.Enum))
		}
	case *model.Command:
		row[2] = c.Class
	case *model.Unsupported:
		row[2] = c.Class
	}

	return row
}
