package options

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	opts, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "warn", opts.LogLevel)
	assert.Equal(t, FormatText, opts.Format)
	assert.False(t, opts.NoColor)
	assert.False(t, opts.NonInteractive)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("LIFTCONF_LOG_LEVEL", "debug")
	t.Setenv("LIFTCONF_FORMAT", "yaml")
	t.Setenv("LIFTCONF_NO_COLOR", "true")
	t.Setenv("LIFTCONF_NON_INTERACTIVE", "1")

	opts, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "debug", opts.LogLevel)
	assert.Equal(t, FormatYAML, opts.Format)
	assert.True(t, opts.NoColor)
	assert.True(t, opts.NonInteractive)
}

func TestLoadRejectsUnknownFormat(t *testing.T) {
	t.Setenv("LIFTCONF_FORMAT", "xml")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid format "xml"`)
}

func TestLoadRejectsBadBool(t *testing.T) {
	t.Setenv("LIFTCONF_NO_COLOR", "maybe")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error getting env options")
}
