package cli

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"yaml2rogue/internal/common"
	"yaml2rogue/internal/flags/log"
	"yaml2rogue/internal/gen"
	"yaml2rogue/internal/model"
)

// Flag names.
const (
	FlagModule      = "module"
	FlagDir         = "dir"
	FlagOutput      = "output"
	FlagTitle       = "title"
	FlagDescription = "description"
	FlagStdout      = "stdout"
	FlagStrict      = "strict"
	FlagDump        = "dump"
)

// DefaultPrefix starts the default title and description.
const DefaultPrefix = "PyRogue "

// now is replaced in tests.
var now = time.Now

type generateOptions struct {
	Module      string
	Dir         string
	Output      string
	Title       string
	Description string
	Stdout      bool
	Strict      bool
	Dump        bool
}

// NewGenerateCommand returns the generate command.
func NewGenerateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate -M <module> [-D <dir>] [-o <dir>]",
		Short: "Generate <module>.py from <dir>/<module>.yaml",
		Long: `Generate reads the CPSW YAML register map <dir>/<module>.yaml and writes the
equivalent PyRogue device classes to <output>/<module>.py.

Every module of the document with a body becomes one pr.Device class, in
document order. IntField children become variables and SequenceCommand
children become commands. Other classes are skipped with a warning, or fail
the run with --strict.`,
		Example: `yaml2rogue generate -M AxiVersion -D yaml -o python --title "AXI version"`,
		Args:    cobra.NoArgs,
		RunE:    runGenerate,
	}

	addGenerateFlags(cmd.Flags())

	return cmd
}

func addGenerateFlags(fs *pflag.FlagSet) {
	fs.StringP(FlagModule, "M", "", "module name, read from <dir>/<module>.yaml (required)")
	fs.StringP(FlagDir, "D", ".", "input directory")
	fs.StringP(FlagOutput, "o", ".", "output directory")
	fs.StringP(FlagTitle, "t", "", `title written to the file header (default "PyRogue <module description>")`)
	fs.StringP(FlagDescription, "d", "", `description written to the file header (default "PyRogue <module description>")`)
	fs.Bool(FlagStdout, false, "write the generated code to standard output instead of a file")
	fs.Bool(FlagStrict, false, "fail on unsupported child classes")
	fs.Bool(FlagDump, false, "dump the resolved model to standard error")
}

func generateOptionsFromFlags(fs *pflag.FlagSet) (generateOptions, error) {
	var (
		opts generateOptions
		err  error
	)

	stringFlags := map[string]*string{
		FlagModule:      &opts.Module,
		FlagDir:         &opts.Dir,
		FlagOutput:      &opts.Output,
		FlagTitle:       &opts.Title,
		FlagDescription: &opts.Description,
	}
	for name, target := range stringFlags {
		if *target, err = fs.GetString(name); err != nil {
			return opts, fmt.Errorf("failed to get flag %s: %w", name, err)
		}
	}

	boolFlags := map[string]*bool{
		FlagStdout: &opts.Stdout,
		FlagStrict: &opts.Strict,
		FlagDump:   &opts.Dump,
	}
	for name, target := range boolFlags {
		if *target, err = fs.GetBool(name); err != nil {
			return opts, fmt.Errorf("failed to get flag %s: %w", name, err)
		}
	}

	return opts, nil
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	opts, err := generateOptionsFromFlags(cmd.Flags())
	if err != nil {
		return err
	}

	logger, err := log.GetBaseLogger(cmd)
	if err != nil {
		return err
	}

	if !opts.Stdout {
		if err := requireDir(opts.Output); err != nil {
			return err
		}
	}

	in, err := load(opts.Module, opts.Dir)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	report(ctx, logger, in.Diags)

	diags := in.Diags
	if opts.Strict {
		diags = diags.Strict()
	}

	if diags.HasErrors() {
		return fmt.Errorf("%s: %w", in.Path, diags.Error())
	}

	for _, m := range in.Doc.Modules {
		logger.DebugContext(ctx, "resolved module",
			slog.String("module", m.Name),
			slog.Int("variables", m.VariableCount()),
			slog.Int("commands", m.CommandCount()),
			slog.Int("unsupported", len(m.Unsupported)),
			slog.Any("attributes", m.Attrs.Names()))
	}

	if opts.Dump {
		dumper := spew.ConfigState{Indent: "  ", DisablePointerAddresses: true, DisableCapacities: true}
		dumper.Fdump(cmd.ErrOrStderr(), in.Doc)
	}

	file, err := gen.NewGenerator(gen.DefaultGeneratorConfig()).Generate(in.Doc, header(opts, in.Doc))
	if err != nil {
		return err
	}

	if opts.Stdout {
		_, err := cmd.OutOrStdout().Write(file.Content)
		return err
	}

	path, err := gen.WriteFile(file, opts.Output)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(cmd.OutOrStdout(), "Generated %s\n", path)

	return err
}

// header fills the file header, defaulting title and description to the
// prefixed description of the named module, or of the first module.
func header(opts generateOptions, doc *model.Document) gen.Header {
	var description string

	if m, ok := doc.Module(opts.Module); ok {
		description = m.Description()
	} else if first, ok := common.First(doc.Modules); ok {
		description = first.Description()
	}

	h := gen.Header{
		Title:       opts.Title,
		Description: opts.Description,
		Module:      opts.Module,
		Created:     now(),
	}

	if h.Title == "" {
		h.Title = DefaultPrefix + description
	}

	if h.Description == "" {
		h.Description = DefaultPrefix + description
	}

	return h
}
