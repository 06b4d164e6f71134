package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nvandessel/liftconf/internal/options"
	"github.com/nvandessel/liftconf/internal/ui"
)

type locateResult struct {
	Root       string   `json:"root" yaml:"root" toml:"root"`
	Active     string   `json:"active,omitempty" yaml:"active,omitempty" toml:"active,omitempty"`
	Candidates []string `json:"candidates" yaml:"candidates" toml:"candidates"`
}

var locateCmd = &cobra.Command{
	Use:   "locate [dir]",
	Short: "List the configuration files in a project",
	Long: `List every Lift configuration file present in a project root, in
priority order. The first one is the file Lift uses.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := pathArg(args)
		if err != nil {
			return err
		}

		found, err := loader.Locate(root)
		if err != nil {
			return err
		}

		if opts.Format != options.FormatText {
			res := locateResult{Root: root, Candidates: found}
			if len(found) > 0 {
				res.Active = found[0]
			}
			return writeStructured(cmd.OutOrStdout(), opts.Format, res)
		}

		if len(found) == 0 {
			ui.Warning("No Lift configuration found in %s", root)
			return nil
		}

		out := cmd.OutOrStdout()
		for i, path := range found {
			if i == 0 {
				fmt.Fprintf(out, "%s (active)\n", path)
				continue
			}
			fmt.Fprintf(out, "%s (shadowed)\n", path)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(locateCmd)
}
