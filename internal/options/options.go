// Package options holds settings for the liftconf tools themselves.
//
// They come from LIFTCONF_* environment variables and can be overridden by
// command line flags. They never change how a Lift configuration is parsed.
package options

import (
	"fmt"
	"slices"

	"github.com/caarlos0/env/v11"
)

// EnvPrefix is prepended to every variable name below.
const EnvPrefix = "LIFTCONF_"

// Output formats accepted by Format.
const (
	FormatText = "text"
	FormatYAML = "yaml"
	FormatJSON = "json"
	FormatTOML = "toml"
)

// Formats lists the valid output formats.
var Formats = []string{FormatText, FormatYAML, FormatJSON, FormatTOML}

// Options configures logging and output for the CLI and the shared library.
type Options struct {
	// LogLevel is a zerolog level name.
	LogLevel string `env:"LOG_LEVEL" envDefault:"warn"`
	// Format is the default output format for commands that print a record.
	Format string `env:"FORMAT" envDefault:"text"`
	// NoColor disables styled output even on a terminal.
	NoColor bool `env:"NO_COLOR"`
	// NonInteractive disables prompts and the browser.
	NonInteractive bool `env:"NON_INTERACTIVE"`
}

// Load reads Options from the environment.
func Load() (*Options, error) {
	opts := &Options{}
	if err := env.ParseWithOptions(opts, env.Options{Prefix: EnvPrefix}); err != nil {
		return nil, fmt.Errorf("error getting env options: %w", err)
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return opts, nil
}

// Validate checks that enumerated settings hold known values.
func (o *Options) Validate() error {
	if !slices.Contains(Formats, o.Format) {
		return fmt.Errorf("invalid format %q (expected one of %v)", o.Format, Formats)
	}
	return nil
}
