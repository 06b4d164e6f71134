package config

import (
	"errors"
	"fmt"
)

// Error kinds returned by the locator and loader. Match them with errors.Is.
var (
	// ErrFileNotFound means there is no configuration at the given path.
	// Callers treat it as "no configuration present", not as a fault.
	ErrFileNotFound = errors.New("could not find configuration")

	// ErrDirectoryNotFound means the project root does not exist or is not a directory.
	ErrDirectoryNotFound = errors.New("could not find configurations in folder")

	// ErrReadFailed means an existing configuration file could not be read.
	ErrReadFailed = errors.New("could not read configuration file")

	// ErrParseFailed means the file is not valid TOML or a value has the wrong type.
	ErrParseFailed = errors.New("failed to parse file as a toml file")
)

// Error describes a failure to locate or load a configuration.
type Error struct {
	// Kind is one of the Err* sentinels above.
	Kind error
	// Path is the file or directory the operation was given.
	Path string
	// Err is the underlying cause, if any.
	Err error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%v %q", e.Kind, e.Path)
	}
	return fmt.Sprintf("%v %q: %v", e.Kind, e.Path, e.Err)
}

// Unwrap exposes both the kind and the cause to errors.Is and errors.As.
func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

func newError(kind error, path string, cause error) *Error {
	return &Error{Kind: kind, Path: path, Err: cause}
}

// IsNotFound reports whether err means the configuration file does not exist.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrFileNotFound)
}

// IsDirectoryNotFound reports whether err means the project root is unusable.
func IsDirectoryNotFound(err error) bool {
	return errors.Is(err, ErrDirectoryNotFound)
}
