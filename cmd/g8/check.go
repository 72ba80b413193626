package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"mercator-hq/g8/pkg/cli"
	"mercator-hq/g8/pkg/g8/ast"
	g8errors "mercator-hq/g8/pkg/g8/errors"
	"mercator-hq/g8/pkg/g8/parser"
	"mercator-hq/g8/pkg/scaffold"
	"mercator-hq/g8/pkg/telemetry/logging"

	"github.com/spf13/cobra"
)

var checkFlags struct {
	format string
}

var checkCmd = &cobra.Command{
	Use:   "check <file|dir>...",
	Short: "Check templates for syntax errors",
	Long: `Parse template files and report syntax errors with source context.

Directories are walked recursively; hidden entries are skipped. The defaults
file is checked as a property file and binary files are skipped. For every
valid template the referenced properties are listed.

Examples:
  # Check a template directory
  g8 check templates/service

  # JSON output for CI/CD
  g8 check templates/service --format json`,
	Args: cobra.MinimumNArgs(1),
	RunE: checkTemplates,
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().StringVar(&checkFlags.format, "format", "text", "output format: text, json")
}

// CheckResult is the outcome for a single file.
type CheckResult struct {
	File       string      `json:"file"`
	Kind       string      `json:"kind"`
	Valid      bool        `json:"valid"`
	References []string    `json:"references,omitempty"`
	Error      *CheckError `json:"error,omitempty"`
}

// CheckError describes a parse failure.
type CheckError struct {
	Type       string `json:"type"`
	Code       string `json:"code,omitempty"`
	Line       int    `json:"line,omitempty"`
	Column     int    `json:"column,omitempty"`
	Message    string `json:"message"`
	Suggestion string `json:"suggestion,omitempty"`

	detail string
}

// CheckReport is the output of the check command.
type CheckReport struct {
	Results []CheckResult `json:"results"`
	Invalid int           `json:"invalid"`
}

// WriteText prints one block per file and a summary line.
func (r *CheckReport) WriteText(w io.Writer) error {
	for _, res := range r.Results {
		switch {
		case res.Valid && len(res.References) > 0:
			verb := "uses"
			if res.Kind == "properties" {
				verb = "defines"
			}
			fmt.Fprintf(w, "✓ %s (%s, %s %s)\n", res.File, res.Kind, verb, strings.Join(res.References, ", "))
		case res.Valid:
			fmt.Fprintf(w, "✓ %s (%s)\n", res.File, res.Kind)
		default:
			fmt.Fprintf(w, "✗ %s\n", res.File)
			for line := range strings.Lines(res.Error.detail) {
				fmt.Fprintf(w, "    %s", line)
			}
		}
	}
	_, err := fmt.Fprintf(w, "\n%d files checked, %d invalid\n", len(r.Results), r.Invalid)
	return err
}

func checkTemplates(cmd *cobra.Command, args []string) error {
	env, err := setup()
	if err != nil {
		return err
	}
	format, err := cli.ParseOutputFormat(checkFlags.format)
	if err != nil {
		return err
	}

	var files []string
	for _, arg := range args {
		found, err := collectFiles(arg)
		if err != nil {
			return cli.NewCommandError("check", err)
		}
		files = append(files, found...)
	}
	if len(files) == 0 {
		return cli.NewConfigError("args", "no files found")
	}

	report := &CheckReport{Results: make([]CheckResult, 0, len(files))}
	for _, file := range files {
		res := checkFile(file, env.cfg.Scaffold.DefaultsFile, env.cfg.Scaffold.SniffBytes)
		if !res.Valid {
			report.Invalid++
			env.logger.DebugContext(logging.WithFile(context.Background(), file), "check failed", "error", res.Error.Message)
		}
		report.Results = append(report.Results, res)
	}
	env.logger.Debug("templates checked", "files", len(files), "invalid", report.Invalid)

	if err := cli.NewFormatter(format).FormatTo(stdout, report); err != nil {
		return err
	}
	if report.Invalid > 0 {
		return fmt.Errorf("%d of %d files failed to parse", report.Invalid, len(report.Results))
	}
	return nil
}

// collectFiles returns path itself, or the regular non-hidden files below it.
func collectFiles(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return []string{path}, nil
	}

	var files []string
	err = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if p != path && strings.HasPrefix(d.Name(), ".") {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.Type().IsRegular() {
			files = append(files, p)
		}
		return nil
	})
	return files, err
}

func checkFile(path, defaultsFile string, sniff int) CheckResult {
	res := CheckResult{File: path, Kind: "template"}

	data, err := os.ReadFile(path)
	if err != nil {
		res.Error = &CheckError{Type: string(g8errors.ErrorTypeFilesystem), Message: err.Error(), detail: err.Error() + "\n"}
		return res
	}

	if filepath.Base(path) == defaultsFile {
		res.Kind = "properties"
		pairs, err := readPropertyPairs(path)
		if err != nil {
			res.Error = toCheckError(err)
			return res
		}
		for _, p := range pairs {
			res.References = append(res.References, p.Name())
		}
		res.Valid = true
		return res
	}

	if scaffold.IsBinary(data, sniff) {
		res.Kind = "binary"
		res.Valid = true
		return res
	}

	seq, err := parser.NewParser(parser.WithSource(path)).Parse(string(data))
	if err != nil {
		res.Error = toCheckError(err)
		return res
	}
	res.References = ast.References(seq)
	res.Valid = true
	return res
}

func toCheckError(err error) *CheckError {
	var gerr *g8errors.Error
	if !errors.As(err, &gerr) {
		return &CheckError{Type: string(g8errors.ErrorTypeInternal), Message: err.Error(), detail: err.Error() + "\n"}
	}
	return &CheckError{
		Type:       string(gerr.Type),
		Code:       string(gerr.Code),
		Line:       gerr.Location.Line,
		Column:     gerr.Location.Column,
		Message:    gerr.Message,
		Suggestion: gerr.Suggestion,
		detail:     gerr.Error(),
	}
}
