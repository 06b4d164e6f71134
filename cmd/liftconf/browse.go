package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/nvandessel/liftconf/internal/ui"
)

var browseCmd = &cobra.Command{
	Use:   "browse [dir]",
	Short: "Browse the configurations in a project",
	Long: `Open a full screen view listing every configuration in a project root,
showing the parsed contents of the highlighted one.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !ui.IsInteractive() {
			return errors.New("browse needs an interactive terminal; use 'liftconf locate' and 'liftconf show' instead")
		}

		root, err := pathArg(args)
		if err != nil {
			return err
		}
		found, err := loader.Locate(root)
		if err != nil {
			return err
		}
		return ui.RunBrowser(root, found, loader.LoadFile)
	},
}

func init() {
	rootCmd.AddCommand(browseCmd)
}
