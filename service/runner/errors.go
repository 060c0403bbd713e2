package runner

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidVerbosity reports a verbosity outside {0, 1, 2}.
	ErrInvalidVerbosity = errors.New("verbosity must be 0, 1, or 2")
	// ErrInvalidLineLimit reports a line limit below -1.
	ErrInvalidLineLimit = errors.New("line limit must be -1 (unlimited) or greater")
	// ErrInterrupted reports that the caller cancelled the run; the spawned
	// process has been killed before this error is returned.
	ErrInterrupted = errors.New("mothur run interrupted")
)

// ExecutionError reports a failed mothur run: either the process exited
// non-zero or an error marker was detected in the output stream. Both are
// checked because mothur sometimes exits zero on failure.
type ExecutionError struct {
	ExitCode  int
	ErrorFlag bool
}

// Error implements the error interface.
func (e *ExecutionError) Error() string {
	return fmt.Sprintf("mothur encountered an error: exit code %d, error flag %v", e.ExitCode, e.ErrorFlag)
}
