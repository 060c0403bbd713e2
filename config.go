package mothur

import (
	"context"
	"fmt"

	"github.com/campenr/mothur-go/service/runner"
	"github.com/viant/afs"
	"gopkg.in/yaml.v3"
)

// Config is a serialisable representation of the session configuration. It
// can be populated from JSON or YAML. The zero values of Verbosity and
// SuppressLogfile are useful defaults; use DefaultConfig for the rest.
type Config struct {
	// Executable locates the mothur binary; a bare name is resolved via
	// PATH.
	Executable string `json:"executable,omitempty" yaml:"executable,omitempty"`
	// Verbosity controls live output echo: 0 silent, 1 user command output
	// plus warnings and errors, 2 everything.
	Verbosity int `json:"verbosity,omitempty" yaml:"verbosity,omitempty"`
	// Seed, when set, is appended as seed=<n> to every command that
	// accepts one.
	Seed *int `json:"seed,omitempty" yaml:"seed,omitempty"`
	// LineLimit caps the echoed lines of a command's own output; -1 means
	// unlimited.
	LineLimit int `json:"lineLimit,omitempty" yaml:"lineLimit,omitempty"`
	// SuppressLogfile removes the mothur logfile after each run.
	SuppressLogfile bool `json:"suppressLogfile,omitempty" yaml:"suppressLogfile,omitempty"`
}

// DefaultConfig returns a Config with the package defaults: the "mothur"
// executable resolved via PATH, silent echo and no line limit.
func DefaultConfig() *Config {
	return &Config{
		Executable: "mothur",
		Verbosity:  0,
		LineLimit:  -1,
	}
}

// Validate returns an error describing invalid settings or nil. The engine
// also re-checks these lazily on every invocation, so calling Validate is
// optional.
func (c *Config) Validate() error {
	if c == nil {
		return nil
	}
	if c.Executable == "" {
		return fmt.Errorf("executable must not be empty")
	}
	if c.Verbosity < 0 || c.Verbosity > 2 {
		return fmt.Errorf("%w, got %d", runner.ErrInvalidVerbosity, c.Verbosity)
	}
	if c.LineLimit < -1 {
		return fmt.Errorf("%w, got %d", runner.ErrInvalidLineLimit, c.LineLimit)
	}
	return nil
}

// LoadConfig reads a YAML config from the specified URL or path, layered
// over DefaultConfig.
func LoadConfig(ctx context.Context, URL string) (*Config, error) {
	fs := afs.New()
	data, err := fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to load config from %s: %w", URL, err)
	}
	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config from %s: %w", URL, err)
	}
	return config, nil
}
