package config

import (
	"os"

	"github.com/rs/zerolog"
)

// LoadFile reads and parses a single Lift configuration file.
//
// A path that does not exist or is not a regular file yields an *Error of
// kind ErrFileNotFound carrying the path exactly as given.
func LoadFile(path string) (*Record, error) {
	return loadFile(path, zerolog.Nop())
}

// LoadFromDirectory parses the highest priority configuration under root.
// It returns a nil record and an empty path when root has no configuration.
// Lower priority candidates are never consulted, even when the first one
// fails to parse.
func LoadFromDirectory(root string) (*Record, string, error) {
	return loadFromDirectory(root, zerolog.Nop())
}

// LoadFromPath loads path as a project root when it is a directory and as a
// configuration file otherwise.
func LoadFromPath(path string) (*Record, string, error) {
	return loadFromPath(path, zerolog.Nop())
}

// DefaultIgnores reads the normalized contents of .muse/ignoreFiles under root.
// ok is false when the file does not exist.
func DefaultIgnores(root string) (ignores string, ok bool, err error) {
	path := joinCandidate(root, DefaultIgnoresFile)
	if !isRegularFile(path) {
		return "", false, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", false, newError(ErrReadFailed, path, err)
	}
	return NormalizeIgnoreFiles(string(data)), true, nil
}

// EffectiveIgnoreFiles returns the record's ignoreFiles, falling back to the
// project's default ignores file when the record does not set one.
func EffectiveIgnoreFiles(root string, rec *Record) (string, bool, error) {
	if rec != nil {
		if v, ok := rec.IgnoreFiles(); ok {
			return v, true, nil
		}
	}
	return DefaultIgnores(root)
}

func loadFile(path string, log zerolog.Logger) (*Record, error) {
	if !isRegularFile(path) {
		return nil, newError(ErrFileNotFound, path, nil)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, newError(ErrReadFailed, path, err)
	}

	rec, err := parseRecord(data)
	if err != nil {
		return nil, newError(ErrParseFailed, path, err)
	}

	log.Debug().Str("path", path).Int("fields", len(rec.Map())).Msg("loaded configuration")
	return rec, nil
}

func loadFromDirectory(root string, log zerolog.Logger) (*Record, string, error) {
	found, err := locate(root, log)
	if err != nil {
		return nil, "", err
	}
	if len(found) == 0 {
		log.Debug().Str("root", root).Msg("no configuration found")
		return nil, "", nil
	}
	if len(found) > 1 {
		log.Debug().Str("using", found[0]).Strs("shadowed", found[1:]).Msg("multiple configurations found")
	}

	rec, err := loadFile(found[0], log)
	if err != nil {
		return nil, found[0], err
	}
	return rec, found[0], nil
}

func loadFromPath(path string, log zerolog.Logger) (*Record, string, error) {
	stat, err := os.Stat(path)
	if err == nil && stat.IsDir() {
		return loadFromDirectory(path, log)
	}
	rec, err := loadFile(path, log)
	if err != nil {
		return nil, path, err
	}
	return rec, path, nil
}
