package mothur

import (
	"io"
	"math/rand"

	"github.com/rs/zerolog"
)

// Option customises a Session.
type Option func(s *Session)

// WithConfig replaces the whole session configuration.
func WithConfig(config *Config) Option {
	return func(s *Session) {
		if config != nil {
			s.config = config
		}
	}
}

// WithExecutable sets the path or name of the mothur executable.
func WithExecutable(executable string) Option {
	return func(s *Session) { s.config.Executable = executable }
}

// WithVerbosity sets the live echo verbosity (0, 1 or 2).
func WithVerbosity(verbosity int) Option {
	return func(s *Session) { s.config.Verbosity = verbosity }
}

// WithSeed fixes the random seed passed to seedable mothur commands.
func WithSeed(seed int) Option {
	return func(s *Session) { s.config.Seed = &seed }
}

// WithLineLimit caps the echoed lines of a command's own output; -1 means
// unlimited.
func WithLineLimit(limit int) Option {
	return func(s *Session) { s.config.LineLimit = limit }
}

// WithSuppressLogfile removes the mothur logfile after each run.
func WithSuppressLogfile(suppress bool) Option {
	return func(s *Session) { s.config.SuppressLogfile = suppress }
}

// WithCurrentDirs pre-seeds the session's current directories (roles:
// input, output, tempdefault).
func WithCurrentDirs(dirs map[string]string) Option {
	return func(s *Session) {
		for role, path := range dirs {
			s.currentDirs[role] = path
		}
	}
}

// WithCurrentFiles pre-seeds the session's current files keyed by mothur
// file-type tag, e.g. "fasta".
func WithCurrentFiles(files map[string]string) Option {
	return func(s *Session) {
		for fileType, path := range files {
			s.currentFiles[fileType] = path
		}
	}
}

// WithLogger sets the logger used for session diagnostics and cleanup
// warnings.
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Session) { s.logger = logger }
}

// WithEcho sets the writer receiving mothur's echoed output; defaults to
// os.Stdout.
func WithEcho(echo io.Writer) Option {
	return func(s *Session) { s.echo = echo }
}

// WithRand overrides the random source used for logfile name generation, so
// tests can make generated names deterministic.
func WithRand(random *rand.Rand) Option {
	return func(s *Session) { s.random = random }
}
