package scaffold

import (
	"log/slog"

	"mercator-hq/g8/pkg/config"
	"mercator-hq/g8/pkg/history"
	"mercator-hq/g8/pkg/telemetry/metrics"
)

// Progress receives per-file progress events. cli.SimpleProgress
// implements it.
type Progress interface {
	Start(total int64)
	Update(current int64)
	Finish()
	Error(err error)
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithLogger sets the logger. The default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(r *Renderer) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithMetrics records file and run metrics on collector.
func WithMetrics(collector *metrics.Collector) Option {
	return func(r *Renderer) {
		r.metrics = collector
	}
}

// WithRecorder records every run, successful or not, in store.
func WithRecorder(store history.Store) Option {
	return func(r *Renderer) {
		r.recorder = store
	}
}

// WithProgress reports per-file progress to p.
func WithProgress(p Progress) Option {
	return func(r *Renderer) {
		r.progress = p
	}
}

// WithSourceLabel records label as the run's input instead of the
// directory path, e.g. the repository a template was cloned from.
func WithSourceLabel(label string) Option {
	return func(r *Renderer) {
		r.sourceLabel = label
	}
}

// WithOutputLabel records label as the run's output instead of the
// directory actually written, e.g. when rendering into a staging area.
func WithOutputLabel(label string) Option {
	return func(r *Renderer) {
		r.outputLabel = label
	}
}

// WithDefaultsFile sets the base name of the file that is never rendered.
func WithDefaultsFile(name string) Option {
	return func(r *Renderer) {
		r.defaultsFile = name
	}
}

// WithVerbatimProperty sets the property holding verbatim globs.
func WithVerbatimProperty(name string) Option {
	return func(r *Renderer) {
		r.verbatimProperty = name
	}
}

// WithDetectBinary enables or disables binary detection.
func WithDetectBinary(enabled bool) Option {
	return func(r *Renderer) {
		r.detectBinary = enabled
	}
}

// WithSniffBytes sets how many leading bytes binary detection inspects.
func WithSniffBytes(n int) Option {
	return func(r *Renderer) {
		if n > 0 {
			r.sniffBytes = n
		}
	}
}

// WithConfig applies the scaffold section of the configuration.
func WithConfig(cfg config.ScaffoldConfig) Option {
	return func(r *Renderer) {
		if cfg.DefaultsFile != "" {
			r.defaultsFile = cfg.DefaultsFile
		}
		if cfg.VerbatimProperty != "" {
			r.verbatimProperty = cfg.VerbatimProperty
		}
		r.detectBinary = cfg.DetectBinary
		if cfg.SniffBytes > 0 {
			r.sniffBytes = cfg.SniffBytes
		}
	}
}
