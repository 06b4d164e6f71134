package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeFile creates root/rel with content, making parent directories as needed.
func writeFile(t *testing.T, root, rel, content string) string {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLocateFindsNoConfigs(t *testing.T) {
	found, err := Locate(t.TempDir())
	require.NoError(t, err)
	assert.NotNil(t, found)
	assert.Empty(t, found)
}

func TestLocateFindsAllConfigsInPriorityOrder(t *testing.T) {
	root := t.TempDir()

	// Create in reverse so directory order cannot line up with priority by accident.
	for i := len(CandidateFiles) - 1; i >= 0; i-- {
		writeFile(t, root, CandidateFiles[i], "")
	}

	found, err := Locate(root)
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(root, ".lift", "config.toml"),
		filepath.Join(root, ".lift.toml"),
		filepath.Join(root, ".muse", "config.toml"),
		filepath.Join(root, ".muse.toml"),
		filepath.Join(root, ".muse", "config"),
	}, found)
}

func TestLocateSkipsDirectoriesAndDanglingLinks(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, ".lift.toml"), 0o755))
	require.NoError(t, os.Symlink(filepath.Join(root, "missing.toml"), filepath.Join(root, ".muse.toml")))
	writeFile(t, root, ".muse/config", "")

	found, err := Locate(root)
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(root, ".muse", "config")}, found)
}

func TestLocateFollowsLinksToFiles(t *testing.T) {
	root := t.TempDir()
	target := writeFile(t, root, "shared/lift.toml", "")
	require.NoError(t, os.Symlink(target, filepath.Join(root, ".lift.toml")))

	found, err := Locate(root)
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(root, ".lift.toml")}, found)
}

func TestLocateRootErrors(t *testing.T) {
	dir := t.TempDir()
	file := writeFile(t, dir, "plain.txt", "")

	tests := []struct {
		name string
		root string
	}{
		{name: "missing root", root: filepath.Join(dir, "does-not-exist")},
		{name: "root is a file", root: file},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			found, err := Locate(tt.root)
			require.Error(t, err)
			assert.Nil(t, found)
			assert.True(t, IsDirectoryNotFound(err))
			assert.False(t, IsNotFound(err))

			var cfgErr *Error
			require.ErrorAs(t, err, &cfgErr)
			assert.Equal(t, tt.root, cfgErr.Path)
		})
	}
}
