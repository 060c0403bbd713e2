package mothur

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()
	assert.Equal(t, "mothur", config.Executable)
	assert.Equal(t, 0, config.Verbosity)
	assert.Equal(t, -1, config.LineLimit)
	assert.Nil(t, config.Seed)
	assert.False(t, config.SuppressLogfile)
	assert.NoError(t, config.Validate())
}

func TestConfig_Validate(t *testing.T) {
	testCases := []struct {
		name     string
		mutate   func(c *Config)
		expected error
	}{
		{
			name:     "invalid verbosity",
			mutate:   func(c *Config) { c.Verbosity = 3 },
			expected: ErrInvalidVerbosity,
		},
		{
			name:     "negative verbosity",
			mutate:   func(c *Config) { c.Verbosity = -1 },
			expected: ErrInvalidVerbosity,
		},
		{
			name:     "invalid line limit",
			mutate:   func(c *Config) { c.LineLimit = -2 },
			expected: ErrInvalidLineLimit,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			config := DefaultConfig()
			tc.mutate(config)
			assert.ErrorIs(t, config.Validate(), tc.expected)
		})
	}
}

func TestLoadConfig(t *testing.T) {
	config, err := LoadConfig(context.Background(), "testdata/config.yaml")
	require.NoError(t, err)
	assert.Equal(t, "/usr/local/bin/mothur", config.Executable)
	assert.Equal(t, 2, config.Verbosity)
	require.NotNil(t, config.Seed)
	assert.Equal(t, 42, *config.Seed)
	assert.Equal(t, 100, config.LineLimit)
	assert.True(t, config.SuppressLogfile)
}

func TestLoadConfig_Defaults(t *testing.T) {
	config, err := LoadConfig(context.Background(), "testdata/minimal.yaml")
	require.NoError(t, err)
	assert.Equal(t, "mothur", config.Executable)
	assert.Equal(t, -1, config.LineLimit, "absent settings keep their defaults")
}

func TestLoadConfig_Missing(t *testing.T) {
	_, err := LoadConfig(context.Background(), "testdata/nope.yaml")
	assert.Error(t, err)
}
