package cli

import (
	"errors"
)

var (
	// ErrConfiguration is returned for a missing module name, an unknown flag
	// or a missing input or output directory.
	ErrConfiguration = errors.New("configuration error")
	// ErrNotFound is returned when the input document does not exist.
	ErrNotFound = errors.New("not found")
)

// Exit statuses.
const (
	ExitOK     = 0
	ExitFailed = 1
	ExitUsage  = 2
)

// ExitCode maps an error returned by a command to a process exit status.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, ErrConfiguration), errors.Is(err, ErrNotFound):
		return ExitUsage
	default:
		return ExitFailed
	}
}
