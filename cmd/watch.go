package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/conneroisu/wordmetrics/internal/render"
	"github.com/conneroisu/wordmetrics/internal/watcher"
)

var watchCmd = &cobra.Command{
	Use:   "watch <file>",
	Short: "Re-analyse a file every time it changes",
	Long: `Analyse a local file, print the report, then print a fresh report each
time the file is saved. Every report reflects a complete analysis of the
file as it was when the change settled.

Examples:
  wordmetrics watch draft.txt                 # Text report on every save
  wordmetrics watch -t 4 -f chart draft.txt   # Pipeline analysis, chart output
  wordmetrics watch --debounce 1s draft.txt   # Wait for edits to settle`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

var watchDebounce time.Duration

func init() {
	rootCmd.AddCommand(watchCmd)

	watchCmd.Flags().DurationVar(&watchDebounce, "debounce", 300*time.Millisecond, "quiet period before re-analysing")
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg, logger, err := loadRuntime(cmd)
	if err != nil {
		return err
	}

	renderer, err := render.New(cfg.Output.Format, cfg.RenderOptions())
	if err != nil {
		return err
	}

	analyser, err := newAnalyser(cfg, logger)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	path := args[0]
	out := cmd.OutOrStdout()

	report := func() error {
		m, err := analyser.Analyse(ctx, path)
		if err != nil {
			return err
		}
		return renderer.Render(out, m)
	}

	if err := report(); err != nil {
		return err
	}

	fileWatcher, err := watcher.NewFileWatcher(watchDebounce, logger)
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer fileWatcher.Stop()

	if err := fileWatcher.WatchFile(path); err != nil {
		return fmt.Errorf("failed to watch %s: %w", path, err)
	}

	fileWatcher.AddHandler(func(events []watcher.ChangeEvent) error {
		for _, event := range events {
			logger.Info(ctx, "source changed", "path", event.Path, "type", event.Type.String())
			if event.Type == watcher.EventTypeDeleted {
				// Wait for the file to come back.
				return nil
			}
		}

		if err := report(); err != nil {
			fmt.Fprintln(cmd.ErrOrStderr(), FailureMessage(err))
			return err
		}
		return nil
	})

	if err := fileWatcher.Start(ctx); err != nil {
		return fmt.Errorf("failed to start file watcher: %w", err)
	}
	logger.Info(ctx, "watching for changes", "path", path)

	<-ctx.Done()
	return nil
}
