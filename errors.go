package mothur

import (
	"errors"

	"github.com/campenr/mothur-go/service/runner"
)

var (
	// ErrInvalidCommand reports a command name that can never be forwarded
	// to mothur, e.g. one using the reserved "_" prefix.
	ErrInvalidCommand = errors.New("invalid mothur command")

	// Re-exported so callers can match engine errors without importing
	// service/runner.
	ErrInvalidVerbosity = runner.ErrInvalidVerbosity
	ErrInvalidLineLimit = runner.ErrInvalidLineLimit
	ErrInterrupted      = runner.ErrInterrupted
)

// ExecutionError reports a failed mothur run; see service/runner.
type ExecutionError = runner.ExecutionError
