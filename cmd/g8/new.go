package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"mercator-hq/g8/pkg/cli"
	"mercator-hq/g8/pkg/g8"
	"mercator-hq/g8/pkg/g8/props"
	"mercator-hq/g8/pkg/history"
	"mercator-hq/g8/pkg/prompt"
	"mercator-hq/g8/pkg/scaffold"
	"mercator-hq/g8/pkg/scaffold/watch"
	"mercator-hq/g8/pkg/source"
	"mercator-hq/g8/pkg/telemetry/logging"
	"mercator-hq/g8/pkg/telemetry/metrics"

	"github.com/spf13/cobra"
)

var newFlags struct {
	props       propertyFlags
	interactive bool
	watch       bool
	noHistory   bool
	noProgress  bool
	format      string
	branch      string
}

// newPrompter builds the interactive prompter; tests replace it.
var newPrompter = func() prompt.Prompter { return prompt.NewSurveyPrompter() }

var newCmd = &cobra.Command{
	Use:   "new <template> <output-dir>",
	Short: "Scaffold a directory from a template directory",
	Long: `Render every file of a template directory into a new output directory.

The template is a local directory or a git repository (https://, ssh://,
git@, file:// or the gh:owner/repo shorthand). Repositories are cloned to a
temporary directory; their src/main/g8 directory is used when present.

Property defaults are read from the template's default.properties (or the
file given with --props). Defaults may reference earlier properties, and
--set flags override them. With --interactive each property is asked for.

Files matching a glob in the "verbatim" property, and binary files, are
copied unchanged. File names are rendered as templates; names that fail to
render are kept as they are.

Examples:
  # Scaffold with the template defaults
  g8 new templates/service ./my-service

  # Override properties
  g8 new templates/service ./my-service --set name=billing --set org=acme

  # Ask for every property
  g8 new templates/service ./my-service --interactive

  # Use a giter8 template from GitHub
  g8 new gh:scala/scala-seed.g8 ./seed --branch main

  # Keep re-rendering while editing the template
  g8 new templates/service ./preview --watch`,
	Args: cobra.ExactArgs(2),
	RunE: scaffoldDirectory,
}

func init() {
	rootCmd.AddCommand(newCmd)

	newCmd.Flags().StringVarP(&newFlags.props.file, "props", "p", "", "property defaults file (default <template-dir>/default.properties)")
	newCmd.Flags().StringArrayVarP(&newFlags.props.set, "set", "s", nil, "property override key=value (repeatable)")
	newCmd.Flags().BoolVarP(&newFlags.interactive, "interactive", "i", false, "prompt for every property")
	newCmd.Flags().BoolVarP(&newFlags.watch, "watch", "w", false, "re-render when the template changes")
	newCmd.Flags().BoolVar(&newFlags.noHistory, "no-history", false, "do not record the run in the history ledger")
	newCmd.Flags().BoolVar(&newFlags.noProgress, "no-progress", false, "hide the progress bar")
	newCmd.Flags().StringVar(&newFlags.format, "format", "text", "output format: text, json")
	newCmd.Flags().StringVarP(&newFlags.branch, "branch", "b", "", "branch to clone for git templates")
}

func scaffoldDirectory(cmd *cobra.Command, args []string) error {
	env, err := setup()
	if err != nil {
		return err
	}
	format, err := cli.ParseOutputFormat(newFlags.format)
	if err != nil {
		return err
	}
	input, output := args[0], args[1]

	ctx, stop := cli.SetupSignalHandler(context.Background())
	defer stop()

	var label string
	if source.IsRemote(input) {
		if newFlags.watch {
			return cli.NewConfigError("watch", "--watch needs a local template directory")
		}
		fetcher := source.NewFetcher(source.Config{
			Branch:  newFlags.branch,
			Depth:   env.cfg.Git.Depth,
			Timeout: env.cfg.Git.Timeout,
			Token:   env.cfg.Git.Token,
		}, env.logger.Slog())
		checkout, err := fetcher.Fetch(ctx, input)
		if err != nil {
			return cli.NewCommandError("new", err)
		}
		defer checkout.Remove()
		label, input = input, checkout.Root
	} else if newFlags.branch != "" {
		return cli.NewConfigError("branch", "--branch applies to git templates only")
	}

	collector := metrics.NewCollector(&env.cfg.Metrics, nil)
	opts := []scaffold.Option{
		scaffold.WithLogger(env.logger.Slog()),
		scaffold.WithConfig(env.cfg.Scaffold),
		scaffold.WithMetrics(collector),
		scaffold.WithSourceLabel(label),
	}
	if !newFlags.noProgress && !newFlags.watch && format == cli.FormatText {
		opts = append(opts, scaffold.WithProgress(cli.NewProgressReporter(os.Stderr)))
	}
	if env.cfg.History.Enabled && !newFlags.noHistory {
		store, err := history.Open(env.cfg.History)
		if err != nil {
			env.logger.Warn("history disabled", "error", err)
		} else {
			defer store.Close()
			opts = append(opts, scaffold.WithRecorder(store))
			if newFlags.watch {
				pruner := history.NewPruner(store, env.cfg.History.RetentionDays, env.logger.Slog())
				scheduler := history.NewScheduler(pruner, env.cfg.History.PruneSchedule)
				if err := scheduler.Start(ctx); err != nil {
					return cli.NewConfigError("history.prune_schedule", err.Error())
				}
				defer scheduler.Stop()
			}
		}
	}

	resolver := &propertyResolver{env: env, input: input}
	resolve := func() (*props.Set, error) {
		return resolver.resolve(ctx)
	}

	if newFlags.watch {
		w, err := watch.NewWatcher(watch.Config{
			Input:      input,
			Ignore:     []string{filepath.Clean(output)},
			Debounce:   env.cfg.Watch.Debounce,
			SkipHidden: true,
		}, env.logger.Slog())
		if err != nil {
			return cli.NewCommandError("new", err)
		}
		defer w.Close()
		return watch.Run(ctx, w, scaffold.NewRenderer(opts...), resolve, input, output)
	}

	set, err := resolve()
	if err != nil {
		return err
	}
	result, err := g8.RenderDirectory(ctx, set, input, output, opts...)
	if textfile := env.cfg.Metrics.Textfile; textfile != "" {
		if werr := collector.WriteTextfile(textfile); werr != nil {
			env.logger.Warn("failed to write metrics textfile", "error", werr)
		}
	}
	if err != nil {
		return err
	}
	runLogger := env.logger.WithContext(logging.WithRunID(logging.WithTemplate(ctx, result.Input), result.RunID))
	runLogger.Debug("scaffold complete", "output", output, "files", len(result.Files))
	return cli.NewFormatter(format).FormatTo(stdout, result)
}

// propertyResolver loads the defaults, applies --set overrides and, with
// --interactive, prompts on the first call only. Later calls reuse the
// answers as overrides so re-renders never ask again.
type propertyResolver struct {
	env      *runtimeEnv
	input    string
	answers  *props.Set
	prompted bool
}

func (r *propertyResolver) resolve(ctx context.Context) (*props.Set, error) {
	defaults := props.NewSet()
	path := newFlags.props.file
	if path == "" {
		candidate := filepath.Join(r.input, r.env.cfg.Scaffold.DefaultsFile)
		if _, err := os.Stat(candidate); err == nil {
			path = candidate
		} else if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to read defaults: %w", err)
		}
	}
	if path != "" {
		loaded, err := loadPropertyFile(path)
		if err != nil {
			return nil, err
		}
		defaults = loaded
	}

	overrides, err := parseSetFlags(newFlags.props.set)
	if err != nil {
		return nil, err
	}

	resolver := prompt.Resolver{VerbatimProperty: r.env.cfg.Scaffold.VerbatimProperty}
	switch {
	case r.prompted:
		answers := r.answers.Clone()
		answers.Merge(overrides)
		overrides = answers
	case newFlags.interactive:
		r.answers = props.NewSet()
		resolver.Prompter = recordingPrompter{Prompter: newPrompter(), answers: r.answers}
	}
	set, err := resolver.Resolve(ctx, defaults, overrides)
	if err != nil {
		return nil, err
	}
	r.prompted = newFlags.interactive

	for key, value := range set.All() {
		r.env.logger.Debug("resolved property", key, value)
	}
	return set, nil
}

// recordingPrompter keeps every non-empty answer.
type recordingPrompter struct {
	prompt.Prompter
	answers *props.Set
}

func (p recordingPrompter) Ask(ctx context.Context, q prompt.Question) (string, error) {
	answer, err := p.Prompter.Ask(ctx, q)
	if err == nil && answer != "" {
		p.answers.Put(q.Key, answer)
	}
	return answer, err
}
