package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"yaml2rogue/internal/flags/log"
)

// New returns the root command. Without a subcommand it runs generate.
func New() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "yaml2rogue -M <module> [-D <dir>] [-o <dir>]",
		Short: "Generate PyRogue device classes from CPSW YAML register maps",
		Long: `yaml2rogue converts a CPSW YAML register map into PyRogue Python source.

Run without a subcommand it behaves like "yaml2rogue generate".`,
		Args:              cobra.NoArgs,
		RunE:              runGenerate,
		DisableAutoGenTag: true,
		SilenceUsage:      true,
		SilenceErrors:     true,
	}

	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %w", ErrConfiguration, err)
	})

	addGenerateFlags(cmd.Flags())
	log.RegisterLoggingFlags(cmd.PersistentFlags())

	cmd.AddCommand(NewGenerateCommand())
	cmd.AddCommand(NewInspectCommand())

	return cmd
}
