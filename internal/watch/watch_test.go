package watch

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nvandessel/liftconf/internal/config"
)

func startWatcher(t *testing.T, root string) <-chan Event {
	t.Helper()

	w, err := New(root, config.NewLoader(zerolog.Nop()), zerolog.Nop())
	require.NoError(t, err)
	w.Debounce = 20 * time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	events := make(chan Event)
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx, events) }()

	t.Cleanup(func() {
		cancel()
		assert.NoError(t, <-done)
	})
	return events
}

// waitFor reads events until one satisfies match.
func waitFor(t *testing.T, events <-chan Event, what string, match func(Event) bool) Event {
	t.Helper()
	timeout := time.After(5 * time.Second)
	for {
		select {
		case ev := <-events:
			if match(ev) {
				return ev
			}
		case <-timeout:
			t.Fatalf("timed out waiting for %s", what)
		}
	}
}

func build(ev Event) string {
	if ev.Record == nil {
		return ""
	}
	b, _ := ev.Record.Build()
	return b
}

func TestWatcher_FollowsActiveConfiguration(t *testing.T) {
	root := t.TempDir()
	events := startWatcher(t, root)

	first := waitFor(t, events, "initial state", func(Event) bool { return true })
	assert.Empty(t, first.Path)
	assert.Nil(t, first.Record)
	assert.NoError(t, first.Err)

	muse := filepath.Join(root, ".muse.toml")
	require.NoError(t, os.WriteFile(muse, []byte(`build = "mvn"`), 0o644))
	ev := waitFor(t, events, ".muse.toml", func(ev Event) bool { return build(ev) == "mvn" })
	assert.Equal(t, muse, ev.Path)

	// A higher priority file in a directory that did not exist yet shadows it.
	lift := filepath.Join(root, ".lift", "config.toml")
	require.NoError(t, os.MkdirAll(filepath.Dir(lift), 0o755))
	require.NoError(t, os.WriteFile(lift, []byte(`build = "gradle"`), 0o644))
	ev = waitFor(t, events, ".lift/config.toml", func(ev Event) bool { return build(ev) == "gradle" })
	assert.Equal(t, lift, ev.Path)

	require.NoError(t, os.WriteFile(lift, []byte(`build = 3`), 0o644))
	ev = waitFor(t, events, "parse error", func(ev Event) bool { return ev.Err != nil })
	assert.ErrorIs(t, ev.Err, config.ErrParseFailed)
	assert.Equal(t, lift, ev.Path)

	require.NoError(t, os.RemoveAll(filepath.Dir(lift)))
	ev = waitFor(t, events, "fallback to .muse.toml", func(ev Event) bool { return ev.Path == muse })
	assert.Equal(t, "mvn", build(ev))

	require.NoError(t, os.Remove(muse))
	waitFor(t, events, "no configuration", func(ev Event) bool { return ev.Path == "" && ev.Err == nil })
}

func TestWatcher_IgnoresUnrelatedFiles(t *testing.T) {
	root := t.TempDir()
	events := startWatcher(t, root)
	waitFor(t, events, "initial state", func(Event) bool { return true })

	require.NoError(t, os.WriteFile(filepath.Join(root, "README.md"), []byte("# app"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "lift.toml"), []byte(`build = "x"`), 0o644))

	select {
	case ev := <-events:
		t.Fatalf("unexpected event %+v", ev)
	case <-time.After(200 * time.Millisecond):
	}
}

func TestNew_RejectsMissingRoot(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "missing"), config.NewLoader(zerolog.Nop()), zerolog.Nop())
	require.Error(t, err)
	assert.True(t, config.IsDirectoryNotFound(err))
}

func TestWatcher_RelativeRoot(t *testing.T) {
	t.Chdir(t.TempDir())
	events := startWatcher(t, ".")
	waitFor(t, events, "initial state", func(Event) bool { return true })

	require.NoError(t, os.WriteFile(".lift.toml", []byte(`build = "make"`), 0o644))
	ev := waitFor(t, events, ".lift.toml", func(ev Event) bool { return build(ev) == "make" })
	assert.True(t, filepath.IsAbs(ev.Path), "path %q is not absolute", ev.Path)
	assert.Equal(t, ".lift.toml", filepath.Base(ev.Path))
}
