// Package logfile owns the naming and post-run cleanup of the logfiles
// mothur writes on every invocation. Names are generated up front so that the
// batch script can pin the logfile with set.logfile before the user command
// runs; repeated calls on one session reuse the same name and append to it.
package logfile

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/rs/zerolog"
	"github.com/viant/afs"
	"github.com/viant/afs/url"
)

const defaultPrefix = "mothur.go"

// Service generates logfile names and removes logfiles after a run.
type Service struct {
	fs     afs.Service
	random *rand.Rand
	prefix string
	logger zerolog.Logger
}

// Option customises the service.
type Option func(*Service)

// WithRand overrides the random source used for name generation, so tests
// can make generated names deterministic.
func WithRand(random *rand.Rand) Option {
	return func(s *Service) {
		s.random = random
	}
}

// WithPrefix overrides the logfile name prefix.
func WithPrefix(prefix string) Option {
	return func(s *Service) {
		s.prefix = prefix
	}
}

// WithLogger sets the logger used for cleanup warnings.
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// New creates a logfile service.
func New(options ...Option) *Service {
	ret := &Service{
		fs:     afs.New(),
		random: rand.New(rand.NewSource(time.Now().UnixNano())),
		prefix: defaultPrefix,
		logger: zerolog.Nop(),
	}
	for _, option := range options {
		option(ret)
	}
	return ret
}

// Name returns the logfile name for the next run. A previously assigned name
// is reused so that repeated calls keep appending to one logfile. Otherwise a
// fresh <prefix>.<5 digits>.logfile name is sampled until it does not collide
// with an existing file. Candidates are checked in the working directory;
// mothur's output directory may not be known yet at generation time.
func (s *Service) Name(ctx context.Context, existing string) (string, error) {
	if existing != "" {
		return existing, nil
	}
	for {
		candidate := fmt.Sprintf("%s.%d.logfile", s.prefix, 10000+s.random.Intn(90000))
		exists, err := s.fs.Exists(ctx, candidate)
		if err != nil {
			return "", fmt.Errorf("failed to check logfile candidate %s: %w", candidate, err)
		}
		if !exists {
			return candidate, nil
		}
	}
}

// Remove deletes the logfile after a run. Mothur may have relocated it into
// its output directory, so removal is attempted at the plain name first and
// then under outputDir. Failure is never fatal; the user is warned that the
// file needs manual removal.
func (s *Service) Remove(ctx context.Context, name, outputDir string) {
	if name == "" {
		return
	}
	err := s.fs.Delete(ctx, name)
	if err == nil {
		return
	}
	if outputDir != "" {
		relocated := url.Join(outputDir, name)
		if relocatedErr := s.fs.Delete(ctx, relocated); relocatedErr == nil {
			return
		}
	}
	s.logger.Warn().Str("logfile", name).Err(err).
		Msg("could not delete mothur logfile, remove it manually")
}
