package metrics

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"mercator-hq/g8/pkg/config"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

// Helper function to create test config
func testConfig() *config.MetricsConfig {
	return &config.MetricsConfig{
		Enabled:         true,
		Namespace:       "test",
		Subsystem:       "scaffold",
		DurationBuckets: []float64{0.1, 1},
	}
}

func TestCollector_NewCollector(t *testing.T) {
	cfg := &config.MetricsConfig{Enabled: true}
	registry := prometheus.NewRegistry()

	collector := NewCollector(cfg, registry)

	if collector.Registry() != registry {
		t.Error("Collector registry not set correctly")
	}
	if cfg.Namespace != "g8" || cfg.Subsystem != "scaffold" {
		t.Errorf("defaults not applied: %+v", cfg)
	}
	if len(cfg.DurationBuckets) == 0 {
		t.Error("duration buckets not defaulted")
	}
}

func TestCollector_RecordFile(t *testing.T) {
	collector := NewCollector(testConfig(), nil)

	collector.RecordFile(ModeRendered)
	collector.RecordFile(ModeRendered)
	collector.RecordFile(ModeVerbatim)

	if got := testutil.ToFloat64(collector.scaffoldMetrics.filesTotal.WithLabelValues(ModeRendered)); got != 2 {
		t.Errorf("rendered files = %v, want 2", got)
	}
	if got := testutil.ToFloat64(collector.scaffoldMetrics.filesTotal.WithLabelValues(ModeVerbatim)); got != 1 {
		t.Errorf("verbatim files = %v, want 1", got)
	}
}

func TestCollector_RecordRunAndErrors(t *testing.T) {
	collector := NewCollector(testConfig(), nil)

	collector.RecordRun(StatusSuccess, 20*time.Millisecond)
	collector.RecordRun(StatusError, 2*time.Second)
	collector.RecordError("property_not_found")
	collector.RecordNameFallback()

	if got := testutil.ToFloat64(collector.scaffoldMetrics.runsTotal.WithLabelValues(StatusError)); got != 1 {
		t.Errorf("error runs = %v, want 1", got)
	}
	if got := testutil.ToFloat64(collector.scaffoldMetrics.errorsTotal.WithLabelValues("property_not_found")); got != 1 {
		t.Errorf("errors = %v, want 1", got)
	}
	if got := testutil.ToFloat64(collector.scaffoldMetrics.nameFallbacksTotal); got != 1 {
		t.Errorf("name fallbacks = %v, want 1", got)
	}
	if got := testutil.CollectAndCount(collector.scaffoldMetrics.runDuration); got != 1 {
		t.Errorf("duration series = %d, want 1", got)
	}
}

func TestCollector_Disabled(t *testing.T) {
	cfg := testConfig()
	cfg.Enabled = false
	collector := NewCollector(cfg, nil)

	collector.RecordFile(ModeBinary)
	if got := testutil.ToFloat64(collector.scaffoldMetrics.filesTotal.WithLabelValues(ModeBinary)); got != 0 {
		t.Errorf("disabled collector recorded %v files", got)
	}

	var nilCollector *Collector
	nilCollector.RecordFile(ModeBinary)
	nilCollector.RecordRun(StatusSuccess, time.Second)
	if err := nilCollector.WriteTextfile("ignored"); err != nil {
		t.Errorf("nil WriteTextfile() error = %v", err)
	}
}

func TestCollector_WriteTextfile(t *testing.T) {
	collector := NewCollector(testConfig(), nil)
	collector.RecordFile(ModeRendered)

	path := filepath.Join(t.TempDir(), "g8.prom")
	if err := collector.WriteTextfile(path); err != nil {
		t.Fatalf("WriteTextfile() error = %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `test_scaffold_files_total{mode="rendered"} 1`) {
		t.Errorf("textfile missing files counter:\n%s", data)
	}
}
