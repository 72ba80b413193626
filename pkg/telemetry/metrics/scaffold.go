package metrics

import (
	"mercator-hq/g8/pkg/config"

	"github.com/prometheus/client_golang/prometheus"
)

// File modes used as label values.
const (
	ModeRendered = "rendered"
	ModeVerbatim = "verbatim"
	ModeBinary   = "binary"
)

// Run statuses used as label values.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// ScaffoldMetrics tracks directory renders.
type ScaffoldMetrics struct {
	// Files written, by mode
	filesTotal *prometheus.CounterVec

	// File names kept literally
	nameFallbacksTotal prometheus.Counter

	// Directory renders, by status
	runsTotal *prometheus.CounterVec

	// Directory render duration histogram
	runDuration prometheus.Histogram

	// Failures, by error type
	errorsTotal *prometheus.CounterVec
}

// NewScaffoldMetrics creates and registers scaffold metrics with the provided registry.
func NewScaffoldMetrics(cfg *config.MetricsConfig, registry *prometheus.Registry) *ScaffoldMetrics {
	sm := &ScaffoldMetrics{
		filesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "files_total",
				Help:      "Total number of files written by directory renders",
			},
			[]string{"mode"},
		),

		nameFallbacksTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "name_fallbacks_total",
				Help:      "Total number of file names kept literally because they failed to render",
			},
		),

		runsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "runs_total",
				Help:      "Total number of directory renders",
			},
			[]string{"status"},
		),

		runDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "run_duration_seconds",
				Help:      "Duration of directory renders in seconds",
				Buckets:   cfg.DurationBuckets,
			},
		),

		errorsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "errors_total",
				Help:      "Total number of directory render failures by error type",
			},
			[]string{"type"},
		),
	}

	registry.MustRegister(
		sm.filesTotal,
		sm.nameFallbacksTotal,
		sm.runsTotal,
		sm.runDuration,
		sm.errorsTotal,
	)

	return sm
}
