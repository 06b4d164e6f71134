package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nvandessel/liftconf/internal/boundary"
	"github.com/nvandessel/liftconf/internal/config"
	"github.com/nvandessel/liftconf/internal/handle"
	"github.com/nvandessel/liftconf/internal/options"
	"github.com/nvandessel/liftconf/internal/ui"
)

var getCmd = &cobra.Command{
	Use:   "get <field> [path]",
	Short: "Print a single configuration field",
	Long: `Print one field of a configuration, by TOML key (ignoreFiles) or by
name (ignore_files). Lists are printed one item per line.

The command fails when the field is not set.`,
	Args: cobra.RangeArgs(1, 2),
	ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		if len(args) > 0 {
			return nil, cobra.ShellCompDirectiveDefault
		}
		keys := make([]string, 0, len(config.Fields()))
		for _, f := range config.Fields() {
			keys = append(keys, f.Key)
		}
		return keys, cobra.ShellCompDirectiveNoFileComp
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		field, ok := config.LookupField(args[0])
		if !ok {
			return fmt.Errorf("unknown field %q", args[0])
		}

		path, err := pathArg(args[1:])
		if err != nil {
			return err
		}
		file, err := resolveFile(path)
		if err != nil {
			return err
		}

		host := &boundary.GoHost{}
		adapter := boundary.New(host, loader, log.Logger)

		h := adapter.Open(file)
		if err := host.TakeException(); err != nil {
			return err
		}
		if h == handle.Null {
			return fmt.Errorf("no Lift configuration at %s", file)
		}
		defer adapter.Close(h)

		v := adapter.GetField(h, field.Key)
		if err := host.TakeException(); err != nil {
			return err
		}
		if v == nil {
			return fmt.Errorf("%s is not set in %s", field.Key, file)
		}

		if opts.Format != options.FormatText {
			return writeStructured(cmd.OutOrStdout(), opts.Format, map[string]any{field.Key: v})
		}

		out := cmd.OutOrStdout()
		if list, ok := v.([]string); ok {
			if len(list) > 0 {
				fmt.Fprintln(out, strings.Join(list, "\n"))
			}
			return nil
		}
		fmt.Fprintln(out, ui.FormatValue(v))
		return nil
	},
}

// resolveFile maps a project root to its active configuration file.
func resolveFile(path string) (string, error) {
	if !isDir(path) {
		return path, nil
	}
	found, err := loader.Locate(path)
	if err != nil {
		return "", err
	}
	if len(found) == 0 {
		return "", fmt.Errorf("no Lift configuration found in %s", path)
	}
	return found[0], nil
}

func init() {
	rootCmd.AddCommand(getCmd)
}
