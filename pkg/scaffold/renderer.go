package scaffold

import (
	"bytes"
	"cmp"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"mercator-hq/g8/pkg/config"
	"mercator-hq/g8/pkg/g8/ast"
	g8errors "mercator-hq/g8/pkg/g8/errors"
	"mercator-hq/g8/pkg/g8/parser"
	"mercator-hq/g8/pkg/g8/props"
	"mercator-hq/g8/pkg/g8/render"
	"mercator-hq/g8/pkg/history"
	"mercator-hq/g8/pkg/telemetry/metrics"

	"github.com/google/uuid"
	"github.com/natefinch/atomic"
)

// Renderer renders template directories. A Renderer holds no per-run state
// and may be reused.
type Renderer struct {
	logger   *slog.Logger
	metrics  *metrics.Collector
	recorder history.Store
	progress Progress

	sourceLabel      string
	outputLabel      string
	defaultsFile     string
	verbatimProperty string
	detectBinary     bool
	sniffBytes       int
}

// NewRenderer creates a Renderer with the default scaffold configuration.
func NewRenderer(opts ...Option) *Renderer {
	r := &Renderer{
		logger:           slog.Default(),
		defaultsFile:     config.DefaultDefaultsFile,
		verbatimProperty: config.DefaultVerbatimProperty,
		detectBinary:     config.DefaultDetectBinary,
		sniffBytes:       config.DefaultSniffBytes,
	}
	for _, opt := range opts {
		opt(r)
	}
	r.logger = r.logger.With("component", "scaffold")
	return r
}

// With returns a copy of r with opts applied.
func (r *Renderer) With(opts ...Option) *Renderer {
	c := *r
	for _, opt := range opts {
		opt(&c)
	}
	return &c
}

// run carries the state of one Render call.
type run struct {
	*Renderer
	set      *props.Set
	exec     *render.Executor
	verbatim *Matcher
	input    string
	output   string
	logger   *slog.Logger
}

// Render renders every file under input into output. Input must be an
// existing directory and output must not exist.
func (r *Renderer) Render(ctx context.Context, set *props.Set, input, output string) (*Result, error) {
	if set == nil {
		set = props.NewSet()
	}
	result := &Result{
		RunID:     uuid.NewString(),
		Input:     cmp.Or(r.sourceLabel, input),
		Output:    cmp.Or(r.outputLabel, output),
		StartedAt: time.Now(),
	}
	logger := r.logger.With("run_id", result.RunID)

	err := r.render(ctx, &run{
		Renderer: r,
		set:      set,
		exec:     render.New(set),
		input:    input,
		output:   output,
		logger:   logger,
	}, result)
	result.Duration = time.Since(result.StartedAt)

	r.finish(ctx, logger, result, err)
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (r *Renderer) render(ctx context.Context, rn *run, result *Result) error {
	if err := checkPaths(rn.input, rn.output); err != nil {
		return err
	}

	patterns, _ := rn.set.Find(r.verbatimProperty)
	matcher, err := CompileVerbatim(patterns)
	if err != nil {
		return err
	}
	rn.verbatim = matcher

	files, err := enumerate(rn.input, r.defaultsFile)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(rn.output, 0o755); err != nil {
		return g8errors.Wrap(g8errors.ErrorTypeFilesystem, err, "creating output directory %s", rn.output)
	}

	rn.logger.Info("rendering directory",
		"input", rn.input,
		"output", rn.output,
		"files", len(files),
		"verbatim", matcher.Patterns(),
	)

	if r.progress != nil {
		r.progress.Start(int64(len(files)))
	}
	for i, rel := range files {
		if err := ctx.Err(); err != nil {
			return g8errors.Wrap(g8errors.ErrorTypeInternal, err, "directory render interrupted")
		}
		rec, err := rn.renderFile(rel)
		if err != nil {
			return err
		}
		result.Files = append(result.Files, rec)
		r.metrics.RecordFile(string(rec.Mode))
		if r.progress != nil {
			r.progress.Update(int64(i + 1))
		}
	}
	return nil
}

func (r *Renderer) finish(ctx context.Context, logger *slog.Logger, result *Result, err error) {
	status := metrics.StatusSuccess
	if err != nil {
		status = metrics.StatusError
		r.metrics.RecordError(string(errorType(err)))
		if r.progress != nil {
			r.progress.Error(err)
		}
		logger.Error("directory render failed", "error", summary(err), "files", len(result.Files))
	} else {
		if r.progress != nil {
			r.progress.Finish()
		}
		logger.Info("directory rendered",
			"files", len(result.Files),
			"fallbacks", result.Fallbacks(),
			"duration", result.Duration,
		)
	}
	r.metrics.RecordRun(status, result.Duration)

	if r.recorder == nil {
		return
	}
	rec := &history.Run{
		ID:        result.RunID,
		Input:     result.Input,
		Output:    result.Output,
		Status:    status,
		Files:     len(result.Files),
		Fallbacks: result.Fallbacks(),
		StartedAt: result.StartedAt,
		Duration:  result.Duration,
	}
	if err != nil {
		rec.Error = summary(err)
	}
	// The ledger must not turn a finished render into a failure.
	if herr := r.recorder.RecordRun(context.WithoutCancel(ctx), rec); herr != nil {
		logger.Warn("failed to record run history", "error", herr)
	}
}

func (rn *run) renderFile(rel string) (FileRecord, error) {
	rec := FileRecord{Source: rel}
	src := filepath.Join(rn.input, filepath.FromSlash(rel))

	rec.Destination, rec.NameFallback = rn.renderName(rel)
	dst := filepath.Join(rn.output, filepath.FromSlash(rec.Destination))
	if !within(rn.output, dst) {
		return rec, g8errors.New(g8errors.ErrorTypeFilesystem, "",
			fmt.Sprintf("file name renders to %q, outside the output directory", rec.Destination),
			ast.Location{Source: rel, Line: 1})
	}

	info, err := os.Stat(src)
	if err != nil {
		return rec, g8errors.Wrap(g8errors.ErrorTypeFilesystem, err, "reading %s", src)
	}
	data, err := os.ReadFile(src)
	if err != nil {
		return rec, g8errors.Wrap(g8errors.ErrorTypeFilesystem, err, "reading %s", src)
	}

	switch {
	case rn.verbatim.Match(rel):
		rec.Mode = ModeVerbatim
	case rn.detectBinary && IsBinary(data, rn.sniffBytes):
		rec.Mode = ModeBinary
	default:
		rec.Mode = ModeRendered
		out, err := rn.renderContent(rel, data)
		if err != nil {
			return rec, err
		}
		data = []byte(out)
	}

	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return rec, g8errors.Wrap(g8errors.ErrorTypeFilesystem, err, "creating directory for %s", dst)
	}
	if err := atomic.WriteFile(dst, bytes.NewReader(data)); err != nil {
		return rec, g8errors.Wrap(g8errors.ErrorTypeFilesystem, err, "writing %s", dst)
	}
	if err := os.Chmod(dst, info.Mode().Perm()); err != nil {
		return rec, g8errors.Wrap(g8errors.ErrorTypeFilesystem, err, "setting permissions on %s", dst)
	}
	rec.Bytes = int64(len(data))

	rn.logger.Debug("file written", "file", rel, "destination", rec.Destination, "mode", rec.Mode)
	return rec, nil
}

// renderName renders a relative path as a template. Any parse or render
// failure yields the literal path and true.
func (rn *run) renderName(rel string) (string, bool) {
	seq, err := parser.NewParser(parser.WithSource(rel)).Parse(rel)
	if err == nil {
		var name string
		if name, err = rn.exec.Exec(seq); err == nil {
			return name, false
		}
	}
	rn.logger.Warn("file name kept literally", "file", rel, "error", summary(err))
	rn.metrics.RecordNameFallback()
	return rel, true
}

func (rn *run) renderContent(rel string, data []byte) (string, error) {
	text := string(data)
	seq, err := parser.NewParser(parser.WithSource(rel)).Parse(text)
	if err != nil {
		return "", err
	}
	out, err := rn.exec.Exec(seq)
	if err != nil {
		var gerr *g8errors.Error
		if errors.As(err, &gerr) {
			g8errors.AddContextToError(gerr, text)
		}
		return "", err
	}
	return out, nil
}

func checkPaths(input, output string) error {
	info, err := os.Stat(input)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return fsError("Input directory " + input + " does not exist")
	case err != nil:
		return g8errors.Wrap(g8errors.ErrorTypeFilesystem, err, "checking input directory %s", input)
	case !info.IsDir():
		return fsError("Input path " + input + " is not a directory")
	}

	if _, err := os.Lstat(output); err == nil {
		return fsError("Destination path " + output + " already exists")
	} else if !errors.Is(err, fs.ErrNotExist) {
		return g8errors.Wrap(g8errors.ErrorTypeFilesystem, err, "checking destination %s", output)
	}
	return nil
}

// enumerate lists the regular files below root as sorted slash-separated
// relative paths, skipping any file named defaultsFile. Symbolic links to
// regular files are included; linked directories are not descended.
func enumerate(root, defaultsFile string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || d.Name() == defaultsFile {
			return nil
		}
		if d.Type()&fs.ModeSymlink != 0 {
			info, err := os.Stat(path)
			if err != nil || !info.Mode().IsRegular() {
				return nil
			}
		} else if !d.Type().IsRegular() {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		files = append(files, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, g8errors.Wrap(g8errors.ErrorTypeFilesystem, err, "enumerating %s", root)
	}
	slices.Sort(files)
	return files, nil
}

func within(root, path string) bool {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return false
	}
	return rel != "." && rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

func fsError(msg string) error {
	return &g8errors.Error{Type: g8errors.ErrorTypeFilesystem, Message: msg}
}

func errorType(err error) g8errors.ErrorType {
	var gerr *g8errors.Error
	if errors.As(err, &gerr) {
		return gerr.Type
	}
	return g8errors.ErrorTypeInternal
}

func summary(err error) string {
	var gerr *g8errors.Error
	if errors.As(err, &gerr) {
		return gerr.Summary()
	}
	return err.Error()
}
