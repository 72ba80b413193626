package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"mercator-hq/g8/pkg/cli"
	"mercator-hq/g8/pkg/g8"
	"mercator-hq/g8/pkg/telemetry/logging"

	"github.com/natefinch/atomic"
	"github.com/spf13/cobra"
)

var renderFlags struct {
	props propertyFlags
	out   string
}

// stdin is read when the template argument is "-"; tests replace it.
var stdin io.Reader = os.Stdin

var renderCmd = &cobra.Command{
	Use:   "render <template|->",
	Short: "Render a single template",
	Long: `Render a single template file against a set of properties.

Properties come from a property file (key=value lines, or a flat YAML
mapping for .yaml/.yml files) and from --set flags, which take precedence.

Examples:
  # Render to stdout
  g8 render README.md.tmpl --set name=demo

  # Render from stdin with a property file
  echo 'Hello $name;format="upper"$' | g8 render - --props default.properties

  # Write the result to a file
  g8 render build.sbt --props my.properties --out build.sbt.out`,
	Args: cobra.ExactArgs(1),
	RunE: renderTemplate,
}

func init() {
	rootCmd.AddCommand(renderCmd)

	renderCmd.Flags().StringVarP(&renderFlags.props.file, "props", "p", "", "property file")
	renderCmd.Flags().StringArrayVarP(&renderFlags.props.set, "set", "s", nil, "property override key=value (repeatable)")
	renderCmd.Flags().StringVarP(&renderFlags.out, "out", "o", "", "output file (default stdout)")
}

func renderTemplate(cmd *cobra.Command, args []string) error {
	env, err := setup()
	if err != nil {
		return err
	}

	set, err := renderFlags.props.resolve()
	if err != nil {
		return err
	}

	var template io.Reader
	if args[0] == "-" {
		template = stdin
	} else {
		f, err := os.Open(args[0])
		if err != nil {
			return cli.NewCommandError("render", err)
		}
		defer f.Close()
		template = f
	}

	ctx := logging.WithTemplate(context.Background(), args[0])
	env.logger.DebugContext(ctx, "rendering template", "properties", set.Len())

	out, err := g8.Render(template, set)
	if err != nil {
		return err
	}

	if renderFlags.out == "" {
		_, err = io.WriteString(stdout, out)
		return err
	}
	if err := atomic.WriteFile(renderFlags.out, strings.NewReader(out)); err != nil {
		return cli.NewCommandError("render", fmt.Errorf("writing %s: %w", renderFlags.out, err))
	}
	env.logger.InfoContext(ctx, "template rendered", "output", renderFlags.out)
	return nil
}
