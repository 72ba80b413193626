// Package metrics provides Prometheus metrics for directory renders.
//
// # Metrics
//
//   - g8_scaffold_files_total{mode}: files produced, by mode (rendered, verbatim, binary)
//   - g8_scaffold_name_fallbacks_total: file names that failed to render and were kept literally
//   - g8_scaffold_runs_total{status}: directory renders, by status (success, error)
//   - g8_scaffold_run_duration_seconds: duration of directory renders
//   - g8_scaffold_errors_total{type}: render failures, by error type
//
// # Usage
//
//	collector := metrics.NewCollector(&cfg.Metrics, nil)
//	collector.RecordFile("rendered")
//	collector.RecordRun("success", time.Since(start))
//
// A command-line tool has no scrape endpoint, so metrics are exported with
// WriteTextfile for the node_exporter textfile collector.
//
// All Collector methods are safe on a nil receiver and when metrics are
// disabled.
package metrics
