// Package main provides the CLI entrypoint for yaml2rogue.
//
// yaml2rogue is a code generator that:
//   - Loads a CPSW YAML register map
//   - Resolves modules, variables and commands against field templates
//   - Writes equivalent PyRogue device classes
package main

import (
	"context"
	"fmt"
	"os"

	"yaml2rogue/internal/cli"
)

func main() {
	if err := run(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(cli.ExitCode(err))
	}
}

func run(ctx context.Context) error {
	return cli.New().ExecuteContext(ctx)
}
