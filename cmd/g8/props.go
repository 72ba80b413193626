package main

import (
	"fmt"
	"io"

	"mercator-hq/g8/pkg/cli"

	"github.com/spf13/cobra"
)

var propsFlags struct {
	format string
}

var propsCmd = &cobra.Command{
	Use:   "props <file>",
	Short: "Show the properties of a property file",
	Long: `Parse a property file and print its key/value pairs in file order.

Every occurrence of a duplicated key is shown. Values are printed exactly as
parsed; template syntax inside values is not evaluated.

Examples:
  g8 props templates/service/default.properties
  g8 props settings.yaml --format json`,
	Args: cobra.ExactArgs(1),
	RunE: showProperties,
}

func init() {
	rootCmd.AddCommand(propsCmd)

	propsCmd.Flags().StringVar(&propsFlags.format, "format", "text", "output format: text, json")
}

// PropertyEntry is one parsed key/value pair.
type PropertyEntry struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// PropertyListing is the output of the props command.
type PropertyListing []PropertyEntry

// WriteText prints one key=value line per entry.
func (l PropertyListing) WriteText(w io.Writer) error {
	for _, e := range l {
		if _, err := fmt.Fprintf(w, "%s=%s\n", e.Key, e.Value); err != nil {
			return err
		}
	}
	return nil
}

func showProperties(cmd *cobra.Command, args []string) error {
	env, err := setup()
	if err != nil {
		return err
	}
	format, err := cli.ParseOutputFormat(propsFlags.format)
	if err != nil {
		return err
	}

	pairs, err := readPropertyPairs(args[0])
	if err != nil {
		return err
	}
	env.logger.Debug("property file parsed", "file", args[0], "pairs", len(pairs))

	listing := make(PropertyListing, 0, len(pairs))
	for _, p := range pairs {
		listing = append(listing, PropertyEntry{Key: p.Name(), Value: p.Value})
	}
	return cli.NewFormatter(format).FormatTo(stdout, listing)
}
