package config

import (
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
)

// CandidateFiles are the configuration locations relative to a project root,
// highest priority first.
var CandidateFiles = []string{
	".lift/config.toml",
	".lift.toml",
	".muse/config.toml",
	".muse.toml",
	".muse/config",
}

// DefaultIgnoresFile holds ignore prefixes used when a configuration sets none.
const DefaultIgnoresFile = ".muse/ignoreFiles"

// Locate returns the candidate files that exist as regular files under root,
// in priority order. A root without any of them yields an empty slice and no error.
func Locate(root string) ([]string, error) {
	return locate(root, zerolog.Nop())
}

func locate(root string, log zerolog.Logger) ([]string, error) {
	stat, err := os.Stat(root)
	if err != nil {
		return nil, newError(ErrDirectoryNotFound, root, err)
	}
	if !stat.IsDir() {
		return nil, newError(ErrDirectoryNotFound, root, nil)
	}

	found := make([]string, 0, len(CandidateFiles))
	for _, candidate := range CandidateFiles {
		path := joinCandidate(root, candidate)
		if isRegularFile(path) {
			found = append(found, path)
			continue
		}
		log.Debug().Str("path", path).Msg("configuration candidate not present")
	}
	return found, nil
}

func joinCandidate(root, candidate string) string {
	return filepath.Join(root, filepath.FromSlash(candidate))
}

// isRegularFile follows symlinks, so a dangling link is not a file.
func isRegularFile(path string) bool {
	stat, err := os.Stat(path)
	return err == nil && stat.Mode().IsRegular()
}
