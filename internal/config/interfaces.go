package config

import "github.com/rs/zerolog"

//go:generate mockgen -source=interfaces.go -destination=../mock/loader_mock.go -package=mock

// Loader defines the interface for locating and loading Lift configurations.
// This interface allows for easier testing by providing a mockable contract.
type Loader interface {
	// Locate returns the configuration files present under root, highest priority first.
	Locate(root string) ([]string, error)

	// LoadFile reads and parses the configuration file at path.
	LoadFile(path string) (*Record, error)

	// LoadFromDirectory parses the highest priority configuration under root.
	LoadFromDirectory(root string) (*Record, string, error)

	// LoadFromPath dispatches to LoadFromDirectory or LoadFile.
	LoadFromPath(path string) (*Record, string, error)
}

// DefaultLoader is the production implementation of Loader.
// It traces discovery decisions at debug level.
type DefaultLoader struct {
	Log zerolog.Logger
}

// Locate returns the configuration files present under root.
func (l *DefaultLoader) Locate(root string) ([]string, error) {
	return locate(root, l.Log)
}

// LoadFile reads and parses the configuration file at path.
func (l *DefaultLoader) LoadFile(path string) (*Record, error) {
	return loadFile(path, l.Log)
}

// LoadFromDirectory parses the highest priority configuration under root.
func (l *DefaultLoader) LoadFromDirectory(root string) (*Record, string, error) {
	return loadFromDirectory(root, l.Log)
}

// LoadFromPath dispatches to LoadFromDirectory or LoadFile.
func (l *DefaultLoader) LoadFromPath(path string) (*Record, string, error) {
	return loadFromPath(path, l.Log)
}

// NewLoader creates a DefaultLoader that logs to log.
func NewLoader(log zerolog.Logger) Loader {
	return &DefaultLoader{Log: log}
}
