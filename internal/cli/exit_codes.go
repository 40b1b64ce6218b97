package cli

import (
	"errors"
	"fmt"

	clierrors "github.com/ariel-frischer/chog/internal/errors"
)

// Exit codes for the chog CLI
const (
	// ExitSuccess indicates successful command execution
	ExitSuccess = 0

	// ExitFailure indicates the command failed
	ExitFailure = 1

	// ExitUsage indicates invalid command arguments (EX_USAGE from sysexits.h)
	ExitUsage = 64
)

// ExitError carries the process exit code for a failed command.
// An ExitError without Err has already been reported to the user.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit status %d", e.Code)
	}
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError returns an error that only sets the exit code.
func NewExitError(code int) *ExitError {
	return &ExitError{Code: code}
}

// ExitCode maps an error returned by Execute to a process exit code.
// Argument errors exit with ExitUsage, everything else with ExitFailure.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	if cliErr := clierrors.AsCLIError(err); cliErr != nil && cliErr.Category == clierrors.Argument {
		return ExitUsage
	}
	return ExitFailure
}
