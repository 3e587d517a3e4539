// Package cli implements the yaml2rogue command line.
//
// The root command generates <module>.py from <dir>/<module>.yaml; the
// generate subcommand is the same action spelled out, and inspect prints the
// resolved model as a table. Schema findings are logged through slog;
// errors carry ErrConfiguration or ErrNotFound so ExitCode can map them to
// status 2, and to status 1 otherwise.
package cli
