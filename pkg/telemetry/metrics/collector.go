package metrics

import (
	"fmt"
	"time"

	"mercator-hq/g8/pkg/config"

	"github.com/prometheus/client_golang/prometheus"
)

// Collector owns the registry and the scaffold metrics.
type Collector struct {
	config   *config.MetricsConfig
	registry *prometheus.Registry

	scaffoldMetrics *ScaffoldMetrics
}

// NewCollector creates a new metrics collector with the specified configuration
// and Prometheus registry. If registry is nil, a fresh registry is used.
func NewCollector(cfg *config.MetricsConfig, registry *prometheus.Registry) *Collector {
	if registry == nil {
		registry = prometheus.NewRegistry()
	}

	if cfg.Namespace == "" {
		cfg.Namespace = config.DefaultMetricsNamespace
	}
	if cfg.Subsystem == "" {
		cfg.Subsystem = config.DefaultMetricsSubsystem
	}
	if len(cfg.DurationBuckets) == 0 {
		cfg.DurationBuckets = append([]float64(nil), config.DefaultDurationBuckets...)
	}

	return &Collector{
		config:          cfg,
		registry:        registry,
		scaffoldMetrics: NewScaffoldMetrics(cfg, registry),
	}
}

func (c *Collector) enabled() bool {
	return c != nil && c.config.Enabled
}

// RecordFile counts a produced file by mode.
func (c *Collector) RecordFile(mode string) {
	if !c.enabled() {
		return
	}
	c.scaffoldMetrics.filesTotal.WithLabelValues(mode).Inc()
}

// RecordNameFallback counts a file name kept literally after a render failure.
func (c *Collector) RecordNameFallback() {
	if !c.enabled() {
		return
	}
	c.scaffoldMetrics.nameFallbacksTotal.Inc()
}

// RecordRun records a finished directory render.
func (c *Collector) RecordRun(status string, duration time.Duration) {
	if !c.enabled() {
		return
	}
	c.scaffoldMetrics.runsTotal.WithLabelValues(status).Inc()
	c.scaffoldMetrics.runDuration.Observe(duration.Seconds())
}

// RecordError counts a render failure by error type.
func (c *Collector) RecordError(errType string) {
	if !c.enabled() {
		return
	}
	c.scaffoldMetrics.errorsTotal.WithLabelValues(errType).Inc()
}

// Registry returns the registry holding the collector's metrics.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// WriteTextfile writes all metrics to path in the text exposition format.
// The file is written atomically.
func (c *Collector) WriteTextfile(path string) error {
	if !c.enabled() || path == "" {
		return nil
	}
	if err := prometheus.WriteToTextfile(path, c.registry); err != nil {
		return fmt.Errorf("failed to write metrics textfile %q: %w", path, err)
	}
	return nil
}
