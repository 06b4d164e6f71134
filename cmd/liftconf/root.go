package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nvandessel/liftconf/internal/config"
	"github.com/nvandessel/liftconf/internal/logger"
	"github.com/nvandessel/liftconf/internal/options"
	"github.com/nvandessel/liftconf/internal/ui"
)

var (
	// Version information (set during build)
	Version   = "dev"
	BuildTime = "unknown"
	GoVersion = "unknown"
)

// Settings resolved for the running command.
var (
	opts   = &options.Options{LogLevel: "warn", Format: options.FormatText}
	log    = logger.Nop()
	loader = config.NewLoader(log.Logger)
)

var (
	flagLogLevel       string
	flagFormat         string
	flagNoColor        bool
	flagNonInteractive bool
)

var rootCmd = &cobra.Command{
	Use:   "liftconf",
	Short: "liftconf - inspect Lift and Muse analysis configurations",
	Long: `liftconf finds and reads the TOML configuration files that control
Lift (formerly Muse) static analysis of a repository.

A project root is searched for, in priority order:
  .lift/config.toml
  .lift.toml
  .muse/config.toml
  .muse.toml
  .muse/config

Only the first file found is used; the others are reported as shadowed.

Settings can also be given as LIFTCONF_LOG_LEVEL, LIFTCONF_FORMAT,
LIFTCONF_NO_COLOR and LIFTCONF_NON_INTERACTIVE environment variables.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Display version information",
	Long:  "Display liftconf version, build time, and Go version",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "liftconf %s\n", Version)
		fmt.Fprintf(out, "Built:      %s\n", BuildTime)
		fmt.Fprintf(out, "Go version: %s\n", GoVersion)
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagLogLevel, "log-level", "", "log level: debug, info, warn or error (default warn)")
	pf.StringVarP(&flagFormat, "format", "o", "", "output format: text, yaml, json or toml (default text)")
	pf.BoolVar(&flagNoColor, "no-color", false, "disable styled output")
	pf.BoolVar(&flagNonInteractive, "non-interactive", false, "never prompt or open the browser")

	rootCmd.AddCommand(versionCmd)
}

// setup merges environment settings with flags and builds the logger and
// loader every command uses.
func setup(cmd *cobra.Command, args []string) error {
	o, err := options.Load()
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		o.LogLevel = flagLogLevel
	}
	if flags.Changed("format") {
		o.Format = flagFormat
	}
	if flags.Changed("no-color") {
		o.NoColor = flagNoColor
	}
	if flags.Changed("non-interactive") {
		o.NonInteractive = flagNonInteractive
	}
	if err := o.Validate(); err != nil {
		return err
	}

	opts = o
	ui.Out = cmd.OutOrStdout()
	ui.SetNoColor(o.NoColor)
	ui.SetNonInteractive(o.NonInteractive)

	log = logger.New(cmd.ErrOrStderr(), o.LogLevel, o.NoColor)
	loader = config.NewLoader(log.Logger)
	log.Debug().Str("command", cmd.Name()).Str("format", o.Format).Msg("starting")
	return nil
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
