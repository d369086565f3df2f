package cli

import "errors"

// Exit codes for golst.
const (
	// ExitSuccess indicates successful execution.
	ExitSuccess = 0

	// ExitChangesPending indicates a dry run found files that would be
	// rewritten.
	ExitChangesPending = 1

	// ExitFilesFailed indicates at least one file could not be processed.
	ExitFilesFailed = 2

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitConfigError indicates configuration file errors.
	ExitConfigError = 65

	// ExitInternalError indicates an internal error.
	ExitInternalError = 70
)

// Errors that select an exit code.
var (
	// ErrChangesPending is returned by a dry run that found changes.
	ErrChangesPending = errors.New("changes pending")

	// ErrFilesFailed is returned when some files could not be processed.
	ErrFilesFailed = errors.New("some files failed")

	// ErrUsage wraps invalid command-line usage.
	ErrUsage = errors.New("invalid usage")

	// ErrConfig wraps configuration errors.
	ErrConfig = errors.New("configuration error")
)

// ExitCode determines the process exit code for an error returned by a
// command.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, ErrChangesPending):
		return ExitChangesPending
	case errors.Is(err, ErrFilesFailed):
		return ExitFilesFailed
	case errors.Is(err, ErrUsage):
		return ExitInvalidUsage
	case errors.Is(err, ErrConfig):
		return ExitConfigError
	default:
		return ExitInternalError
	}
}

// ShouldLog reports whether err deserves an error message, as opposed to
// only setting the exit code.
func ShouldLog(err error) bool {
	return err != nil && !isExitSignal(err)
}
