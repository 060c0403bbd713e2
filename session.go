package mothur

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/campenr/mothur-go/internal/idgen"
	"github.com/campenr/mothur-go/service/batch"
	"github.com/campenr/mothur-go/service/logfile"
	"github.com/campenr/mothur-go/service/params"
	"github.com/campenr/mothur-go/service/runner"
	"github.com/campenr/mothur-go/tracing"
	"github.com/rs/zerolog"
)

// Version is the engine version reported on trace spans.
const Version = "0.1.0"

// Session drives a mothur executable through its interactive batch-command
// protocol. It holds the tool configuration together with mothur's own
// persisted notion of current directories, current files and the output
// files produced by the last command.
//
// A Session is long-lived and mutated in place by completed invocations. It
// is not safe for concurrent calls; callers must serialise access.
type Session struct {
	config *Config
	logger zerolog.Logger
	echo   io.Writer
	random *rand.Rand

	logfiles *logfile.Service
	runner   *runner.Service

	logfileName  string
	currentDirs  map[string]string
	currentFiles map[string]string
	outputFiles  map[string][]string
}

// New creates a session with the supplied options layered over
// DefaultConfig.
func New(options ...Option) *Session {
	ret := &Session{
		config:       DefaultConfig(),
		logger:       newLogger(),
		echo:         os.Stdout,
		currentDirs:  map[string]string{},
		currentFiles: map[string]string{},
		outputFiles:  map[string][]string{},
	}
	for _, option := range options {
		option(ret)
	}
	logfileOptions := []logfile.Option{logfile.WithLogger(ret.logger)}
	if ret.random != nil {
		logfileOptions = append(logfileOptions, logfile.WithRand(ret.random))
	}
	ret.logfiles = logfile.New(logfileOptions...)
	ret.runner = runner.New(ret.config.Executable, runner.WithLogger(ret.logger))
	return ret
}

// newLogger builds the default console logger; warnings and above only.
func newLogger() zerolog.Logger {
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}
	return zerolog.New(output).With().Timestamp().Str("app", "mothur-go").Logger().
		Level(zerolog.WarnLevel)
}

// Config returns the session configuration.
func (s *Session) Config() *Config {
	return s.config
}

// CurrentDirs returns a copy of mothur's current directories keyed by role
// (input, output, tempdefault).
func (s *Session) CurrentDirs() map[string]string {
	return copyMap(s.currentDirs)
}

// CurrentFiles returns a copy of mothur's current files keyed by file-type
// tag.
func (s *Session) CurrentFiles() map[string]string {
	return copyMap(s.currentFiles)
}

// OutputFiles returns a copy of the files reported by the last completed
// command, keyed by filename extension in encounter order.
func (s *Session) OutputFiles() map[string][]string {
	ret := make(map[string][]string, len(s.outputFiles))
	for extension, paths := range s.outputFiles {
		ret[extension] = append([]string(nil), paths...)
	}
	return ret
}

// LogfileName returns the logfile assigned to this session, empty before the
// first invocation.
func (s *Session) LogfileName() string {
	return s.logfileName
}

// SetCurrentDir pins a current directory role ahead of the next invocation.
func (s *Session) SetCurrentDir(role, path string) {
	s.currentDirs[role] = path
}

// SetCurrentFile pins a current file ahead of the next invocation.
func (s *Session) SetCurrentFile(fileType, path string) {
	s.currentFiles[fileType] = path
}

// ResetCurrent clears all current directories and files.
func (s *Session) ResetCurrent() {
	s.currentDirs = map[string]string{}
	s.currentFiles = map[string]string{}
}

// String implements fmt.Stringer.
func (s *Session) String() string {
	return fmt.Sprintf("mothur.Session(executable=%s)", s.config.Executable)
}

// Run invokes the named mothur command. Values of type Param are rendered as
// named arguments, everything else as positional ones. The session state is
// updated from mothur's output even when the run fails part-way.
func (s *Session) Run(ctx context.Context, name string, args ...interface{}) error {
	return s.Command(name).Call(ctx, args...)
}

// run is the invocation pipeline: format arguments, pick a logfile, build
// the batch script, execute it and fold the classified output back into the
// session.
func (s *Session) run(ctx context.Context, name string, args []interface{}, named []params.KeyValue) (err error) {
	runID := idgen.New()
	logger := s.logger.With().Str("command", name).Str("run_id", runID).Logger()

	logfileName, err := s.logfiles.Name(ctx, s.logfileName)
	if err != nil {
		return fmt.Errorf("failed to assign logfile for %s: %w", name, err)
	}
	s.logfileName = logfileName

	script := batch.Build(
		batch.Invocation{Name: name, Args: params.Format(args, named)},
		batch.State{Dirs: s.currentDirs, Files: s.currentFiles},
		logfileName,
		s.config.Seed,
	)

	ctx, span := tracing.StartSpan(ctx, "mothur."+name, "CLIENT")
	span.WithAttributes(map[string]string{
		"command": name,
		"run_id":  runID,
		"logfile": logfileName,
	})

	var outcome *runner.Outcome
	defer func() {
		// state merge and logfile cleanup run on every exit path,
		// including cancellation, so partial progress is preserved
		s.merge(outcome)
		if s.config.SuppressLogfile {
			s.logfiles.Remove(context.Background(), logfileName, s.currentDirs["output"])
		}
		tracing.EndSpan(span, err)
	}()

	logger.Debug().Str("batch", script.Batch()).Msg("running mothur command")
	outcome, err = s.runner.Run(ctx, &runner.Request{
		Batch:     script.Batch(),
		Base:      script.Base(),
		Verbosity: s.config.Verbosity,
		LineLimit: s.config.LineLimit,
		Echo:      s.echo,
	})
	if err != nil {
		return fmt.Errorf("failed to run %s: %w", name, err)
	}
	return nil
}

// merge folds a classified outcome into the session: current directories and
// files are overwrite-merged, output files are replaced wholesale.
func (s *Session) merge(outcome *runner.Outcome) {
	if outcome == nil {
		return
	}
	for role, path := range outcome.Dirs {
		s.currentDirs[role] = path
	}
	for fileType, path := range outcome.Files {
		s.currentFiles[fileType] = path
	}
	s.outputFiles = outcome.OutputFiles
}

func copyMap(source map[string]string) map[string]string {
	ret := make(map[string]string, len(source))
	for k, v := range source {
		ret[k] = v
	}
	return ret
}
