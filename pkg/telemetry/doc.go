// Package telemetry groups the observability packages used by g8.
//
// # Components
//
//   - logging: structured slog logging with secret redaction and context fields
//   - metrics: Prometheus counters and histograms for directory renders
//
// # Usage
//
//	logger, err := logging.New(logging.Config{Level: "info", Format: "text"})
//	collector := metrics.NewCollector(&cfg.Metrics, nil)
//
//	r := scaffold.NewRenderer(
//		scaffold.WithLogger(logger.Slog()),
//		scaffold.WithMetrics(collector),
//	)
//
// A CLI process exits after each command, so metrics are not served over
// HTTP. Set metrics.textfile to have "g8 new" write the registry in the
// Prometheus text format for a node_exporter textfile collector.
package telemetry
