package main

import (
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/nvandessel/liftconf/internal/options"
	"github.com/nvandessel/liftconf/internal/ui"
	"github.com/nvandessel/liftconf/internal/watch"
)

type watchReport struct {
	Time   string         `json:"time" yaml:"time" toml:"time"`
	Path   string         `json:"path,omitempty" yaml:"path,omitempty" toml:"path,omitempty"`
	Config map[string]any `json:"config,omitempty" yaml:"config,omitempty" toml:"config,omitempty"`
	Error  string         `json:"error,omitempty" yaml:"error,omitempty" toml:"error,omitempty"`
}

var watchDebounce time.Duration

var watchCmd = &cobra.Command{
	Use:   "watch [dir]",
	Short: "Print the active configuration every time it changes",
	Long: `Watch a project root and print the active configuration whenever a
configuration file is created, edited or removed. Stops on interrupt.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := pathArg(args)
		if err != nil {
			return err
		}

		w, err := watch.New(root, loader, log.Logger)
		if err != nil {
			return err
		}
		w.Debounce = watchDebounce

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		events := make(chan watch.Event)
		done := make(chan error, 1)
		go func() {
			done <- w.Run(ctx, events)
			close(events)
		}()

		for ev := range events {
			if err := printWatchEvent(cmd, root, ev); err != nil {
				stop()
				for range events {
				}
				return err
			}
		}
		return <-done
	},
}

func printWatchEvent(cmd *cobra.Command, root string, ev watch.Event) error {
	now := time.Now().Format(time.TimeOnly)

	if opts.Format != options.FormatText {
		report := watchReport{Time: now, Path: ev.Path}
		if ev.Record != nil {
			report.Config = ev.Record.Map()
		}
		if ev.Err != nil {
			report.Error = ev.Err.Error()
		}
		return writeStructured(cmd.OutOrStdout(), opts.Format, report)
	}

	switch {
	case ev.Err != nil:
		ui.Warning("%s %v", now, ev.Err)
	case ev.Path == "":
		ui.Warning("%s No Lift configuration found in %s", now, root)
	default:
		ui.Section(fmt.Sprintf("%s Configuration from: %s", now, ev.Path))
		fmt.Fprint(cmd.OutOrStdout(), ui.RenderRecord(ev.Record, ui.ColorEnabled()))
	}
	return nil
}

func init() {
	watchCmd.Flags().DurationVar(&watchDebounce, "debounce", watch.DefaultDebounce, "wait this long for edits to settle before reloading")
	rootCmd.AddCommand(watchCmd)
}
