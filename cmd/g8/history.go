package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"mercator-hq/g8/pkg/cli"
	"mercator-hq/g8/pkg/history"

	"github.com/spf13/cobra"
)

var historyFlags struct {
	limit  int
	format string
	prune  bool
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show previous directory renders",
	Long: `List directory renders recorded by "g8 new", newest first.

The ledger location and backend are set in the history section of the
configuration file.

Examples:
  g8 history
  g8 history --limit 5 --format json

  # Remove runs older than history.retention_days first
  g8 history --prune`,
	Args: cobra.NoArgs,
	RunE: showHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)

	historyCmd.Flags().IntVarP(&historyFlags.limit, "limit", "n", 20, "maximum number of runs to show (0 for all)")
	historyCmd.Flags().StringVar(&historyFlags.format, "format", "text", "output format: text, json")
	historyCmd.Flags().BoolVar(&historyFlags.prune, "prune", false, "delete runs older than the retention period before listing")
}

// RunListing is the output of the history command.
type RunListing []*history.Run

// WriteText prints one line per run.
func (l RunListing) WriteText(w io.Writer) error {
	if len(l) == 0 {
		_, err := fmt.Fprintln(w, "No runs recorded")
		return err
	}
	for _, r := range l {
		line := fmt.Sprintf("%s  %s  %-7s  %3d files  %s -> %s",
			r.StartedAt.Local().Format(time.DateTime), r.ID[:min(8, len(r.ID))], r.Status, r.Files, r.Input, r.Output)
		if r.Error != "" {
			line += "  (" + r.Error + ")"
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func showHistory(cmd *cobra.Command, args []string) error {
	env, err := setup()
	if err != nil {
		return err
	}
	format, err := cli.ParseOutputFormat(historyFlags.format)
	if err != nil {
		return err
	}
	if !env.cfg.History.Enabled {
		return cli.NewConfigError("history.enabled", "the history ledger is disabled")
	}

	store, err := history.Open(env.cfg.History)
	if err != nil {
		return cli.NewCommandError("history", err)
	}
	defer store.Close()

	ctx := context.Background()
	if historyFlags.prune {
		deleted, err := history.NewPruner(store, env.cfg.History.RetentionDays, env.logger.Slog()).Prune(ctx)
		if err != nil {
			return cli.NewCommandError("history", err)
		}
		env.logger.Info("history pruned", "deleted", deleted)
	}

	runs, err := store.ListRuns(ctx, historyFlags.limit)
	if err != nil {
		return cli.NewCommandError("history", err)
	}
	if runs == nil {
		runs = []*history.Run{}
	}
	return cli.NewFormatter(format).FormatTo(stdout, RunListing(runs))
}
