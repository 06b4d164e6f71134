package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nvandessel/liftconf/internal/boundary"
	"github.com/nvandessel/liftconf/internal/handle"
)

func TestErrorSlot(t *testing.T) {
	var s errorSlot

	_, ok := s.take()
	assert.False(t, ok)

	s.store("liftconf/ConfigException", "first")
	s.store("liftconf/ConfigException", "second")

	msg, ok := s.take()
	assert.True(t, ok)
	assert.Equal(t, "liftconf/ConfigException: first", msg)

	_, ok = s.take()
	assert.False(t, ok, "take clears the slot")

	s.store("java/lang/RuntimeException", "after take")
	msg, ok = s.take()
	assert.True(t, ok)
	assert.Equal(t, "java/lang/RuntimeException: after take", msg)
}

func TestNewAdapter(t *testing.T) {
	t.Setenv("LIFTCONF_LOG_LEVEL", "debug")

	path := filepath.Join(t.TempDir(), ".lift.toml")
	require.NoError(t, os.WriteFile(path, []byte(`tools = ["infer"]`), 0o644))

	var logs bytes.Buffer
	host := &boundary.GoHost{}
	a := newAdapter(host, &logs)

	h := a.Open(path)
	require.NotEqual(t, handle.Null, h)
	assert.Equal(t, []string{"infer"}, a.GetTools(h))
	a.Close(h)
	require.NoError(t, host.TakeException())

	assert.Contains(t, logs.String(), `"role":"libliftconf"`)
	assert.Contains(t, logs.String(), "opened configuration")
}

func TestNewAdapter_BadEnvironment(t *testing.T) {
	t.Setenv("LIFTCONF_FORMAT", "xml")

	var logs bytes.Buffer
	a := newAdapter(&boundary.GoHost{}, &logs)

	require.NotNil(t, a)
	assert.Contains(t, logs.String(), "ignoring invalid environment")
}
