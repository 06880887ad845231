package main

import (
	"errors"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	figmatokens "github.com/kataras/figma-tokens"
	"github.com/kataras/figma-tokens/pkg/watch"
)

func (a *app) newWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Regenerate tokens whenever an exported document changes",
		Long: `Watch an exported document (--input) and rewrite the output file every time
it changes. Extraction errors are reported and the watch keeps running.`,
		RunE: a.runWatch,
	}

	cmd.Flags().Duration("debounce", watch.DefaultDebounce, "Quiet period after a change before regenerating")

	return cmd
}

func (a *app) runWatch(cmd *cobra.Command, args []string) error {
	opts, output, err := a.options()
	if err != nil {
		return err
	}
	if opts.Input == "" {
		return errors.New("watch requires an exported document (--input)")
	}

	debounce, err := cmd.Flags().GetDuration("debounce")
	if err != nil {
		return err
	}

	logger := opts.Logger
	color.New(color.FgCyan).Fprintf(a.out, "\n👀 Watching %s (Ctrl+C to stop)\n\n", opts.Input)

	return watch.Run(cmd.Context(), opts.Input, watch.Options{
		Debounce: debounce,
		OnError:  func(err error) { logger.Errorf("Watcher: %v", err) },
	}, func() {
		result, err := figmatokens.Run(cmd.Context(), opts)
		if err != nil {
			logger.Errorf("%v", err)
			return
		}
		if err := a.write(output, result.Output); err != nil {
			logger.Errorf("%v", err)
		}
	})
}
