// Package runner spawns mothur in batch mode, streams its combined output
// through the line classifier and maps process completion onto the session's
// error taxonomy.
package runner

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/rs/zerolog"
)

const (
	scannerInitialBufSize = 256 * 1024
	scannerMaxBufSize     = 1024 * 1024
)

// Request describes one batch execution.
type Request struct {
	// Batch is the semicolon-joined command script, without the leading '#'.
	Batch string
	// Base is the rendered user command; its echo demarcates the user
	// segment in the output stream.
	Base string
	// Verbosity controls live echo: 0 silent, 1 user segment plus
	// diagnostics, 2 everything.
	Verbosity int
	// LineLimit caps echoed user-segment lines; -1 means unlimited.
	LineLimit int
	// Echo receives echoed lines; nil discards them.
	Echo io.Writer
}

// Service executes batch scripts against a mothur executable.
type Service struct {
	executable string
	logger     zerolog.Logger
}

// Option customises the service.
type Option func(*Service)

// WithLogger sets the logger used for per-run diagnostics.
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// New creates a runner for the given executable. The executable may be a
// bare name resolved via PATH or an absolute path.
func New(executable string, options ...Option) *Service {
	ret := &Service{
		executable: executable,
		logger:     zerolog.Nop(),
	}
	for _, option := range options {
		option(ret)
	}
	return ret
}

// Run executes the request and returns the classification outcome. The
// outcome is returned even when err is non-nil so that callers can merge the
// partial state mothur reported before failing. Cancelling ctx kills the
// spawned process before ErrInterrupted is returned.
func (s *Service) Run(ctx context.Context, request *Request) (*Outcome, error) {
	state, err := NewScanner(request.Base, request.Verbosity, request.LineLimit, request.Echo)
	if err != nil {
		return nil, err
	}

	cmd := exec.CommandContext(ctx, s.executable, "#"+request.Batch)
	reader, writer, err := os.Pipe()
	if err != nil {
		return nil, fmt.Errorf("failed to create output pipe: %w", err)
	}
	// stderr is merged into the stdout stream; mothur interleaves both
	cmd.Stdout = writer
	cmd.Stderr = writer

	s.logger.Debug().Str("executable", s.executable).Str("batch", request.Batch).Msg("starting mothur")
	if err := cmd.Start(); err != nil {
		_ = reader.Close()
		_ = writer.Close()
		return nil, fmt.Errorf("failed to start %s: %w", s.executable, err)
	}
	// the child holds its own copy of the write end
	_ = writer.Close()

	lines := bufio.NewScanner(reader)
	lines.Buffer(make([]byte, scannerInitialBufSize), scannerMaxBufSize)
	for lines.Scan() {
		state.Line(strings.ReplaceAll(lines.Text(), "\r", ""))
	}
	_ = reader.Close()

	waitErr := cmd.Wait()
	outcome := state.Outcome()
	outcome.ReturnCode = cmd.ProcessState.ExitCode()

	if ctx.Err() != nil {
		return outcome, fmt.Errorf("%w: %v", ErrInterrupted, ctx.Err())
	}
	if outcome.ReturnCode != 0 || outcome.ErrorSeen {
		return outcome, &ExecutionError{ExitCode: outcome.ReturnCode, ErrorFlag: outcome.ErrorSeen}
	}
	if waitErr != nil {
		return outcome, fmt.Errorf("failed to wait for %s: %w", s.executable, waitErr)
	}
	return outcome, nil
}
