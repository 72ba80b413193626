package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"mercator-hq/g8/pkg/cli"
	"mercator-hq/g8/pkg/config"
	g8errors "mercator-hq/g8/pkg/g8/errors"
	"mercator-hq/g8/pkg/telemetry/logging"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	cfgFile string
	verbose bool

	// stdout receives command results; tests replace it.
	stdout io.Writer = os.Stdout
)

var rootCmd = &cobra.Command{
	Use:   "g8",
	Short: "g8 - giter8-style template renderer",
	Long: `g8 renders templates written in the giter8 template language.

Templates substitute properties with $name$, transform them with formatters
such as $name;format="upper,snake"$ or $name__camel$, and branch with
$if(prop.truthy)$ ... $elseif(prop.present)$ ... $else$ ... $endif$.

A template directory is rendered file by file; file names are templates too,
and default.properties supplies the property defaults.`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	err := rootCmd.Execute()
	if err != nil {
		printError(os.Stderr, err)
	}
	return cli.ExitCode(err)
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", os.Getenv("G8_CONFIG"), "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// runtimeEnv is what every command needs from configuration.
type runtimeEnv struct {
	cfg    *config.Config
	logger *logging.Logger
}

// setup loads the configuration and builds the logger.
func setup() (*runtimeEnv, error) {
	if err := config.Initialize(cfgFile); err != nil {
		return nil, cli.NewConfigError("config", err.Error())
	}
	cfg := config.GetConfig()

	level := cfg.Logging.Level
	if verbose {
		level = "debug"
	}
	logger, err := logging.New(logging.Config{
		Level:         level,
		Format:        cfg.Logging.Format,
		AddSource:     cfg.Logging.AddSource,
		RedactSecrets: cfg.Logging.RedactSecrets,
		SecretKeys:    cfg.Logging.SecretKeys,
	})
	if err != nil {
		return nil, cli.NewConfigError("logging", err.Error())
	}
	return &runtimeEnv{cfg: cfg, logger: logger}, nil
}

// printError prints err, using the multi-line form with source context for
// template errors.
func printError(w io.Writer, err error) {
	var gerr *g8errors.Error
	if errors.As(err, &gerr) {
		fmt.Fprint(w, "Error: ", gerr.Error())
		return
	}
	fmt.Fprintln(w, "Error:", err)
}
