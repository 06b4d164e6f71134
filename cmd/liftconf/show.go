package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nvandessel/liftconf/internal/config"
	"github.com/nvandessel/liftconf/internal/options"
	"github.com/nvandessel/liftconf/internal/ui"
)

var showPick bool

var showCmd = &cobra.Command{
	Use:   "show [path]",
	Short: "Display a configuration",
	Long: `Display the parsed contents of a configuration.

The path may be a configuration file or a project root. For a project root
the active configuration is shown, or with --pick, one chosen from all the
configurations present.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := pathArg(args)
		if err != nil {
			return err
		}

		rec, source, err := loadForShow(path)
		if err != nil {
			return err
		}
		if rec == nil {
			return fmt.Errorf("no Lift configuration found in %s", path)
		}

		if opts.Format != options.FormatText {
			return writeStructured(cmd.OutOrStdout(), opts.Format, rec.Map())
		}

		ui.Section("Configuration from: " + source)
		fmt.Fprint(cmd.OutOrStdout(), ui.RenderRecord(rec, ui.ColorEnabled()))

		if _, ok := rec.IgnoreFiles(); !ok && isDir(path) {
			ignores, ok, err := config.EffectiveIgnoreFiles(path, rec)
			if err != nil {
				log.Warn().Err(err).Msg("failed to read default ignores")
			} else if ok {
				ui.Info("ignoreFiles not set, using %s:", config.DefaultIgnoresFile)
				for _, prefix := range config.IgnorePrefixes(ignores) {
					fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", prefix)
				}
			}
		}
		return nil
	},
}

func loadForShow(path string) (*config.Record, string, error) {
	if !showPick || !isDir(path) {
		return loader.LoadFromPath(path)
	}

	found, err := loader.Locate(path)
	if err != nil {
		return nil, "", err
	}
	if len(found) == 0 {
		return nil, "", nil
	}
	source, err := ui.PickConfig(path, found)
	if err != nil {
		return nil, "", err
	}
	rec, err := loader.LoadFile(source)
	return rec, source, err
}

func init() {
	showCmd.Flags().BoolVar(&showPick, "pick", false, "choose among all configurations in the project")
	rootCmd.AddCommand(showCmd)
}
