package config

import "time"

// Config is the root configuration of the g8 command.
type Config struct {
	// Logging controls the structured logger.
	Logging LoggingConfig `yaml:"logging"`

	// Metrics controls Prometheus metric collection for directory renders.
	Metrics MetricsConfig `yaml:"metrics"`

	// Scaffold controls directory rendering.
	Scaffold ScaffoldConfig `yaml:"scaffold"`

	// History controls the render run ledger.
	History HistoryConfig `yaml:"history"`

	// Watch controls re-rendering on template changes.
	Watch WatchConfig `yaml:"watch"`

	// Git controls fetching templates from git repositories.
	Git GitConfig `yaml:"git"`
}

// LoggingConfig contains logger configuration.
type LoggingConfig struct {
	// Level is the minimum log level: debug, info, warn or error.
	// Default: "info"
	Level string `yaml:"level"`

	// Format is the output format: json, text or console.
	// Default: "console"
	Format string `yaml:"format"`

	// AddSource includes file and line in log records.
	// Default: false
	AddSource bool `yaml:"add_source"`

	// RedactSecrets masks values of secret-looking property keys.
	// Default: true
	RedactSecrets bool `yaml:"redact_secrets"`

	// SecretKeys are extra key substrings treated as secrets.
	SecretKeys []string `yaml:"secret_keys"`
}

// MetricsConfig contains Prometheus metrics configuration.
type MetricsConfig struct {
	// Enabled controls whether metrics collection is active.
	// Default: true
	Enabled bool `yaml:"enabled"`

	// Namespace is the metric name prefix.
	// Default: "g8"
	Namespace string `yaml:"namespace"`

	// Subsystem is the metric subsystem name.
	// Default: "scaffold"
	Subsystem string `yaml:"subsystem"`

	// Textfile is a path where metrics are written after each run in the
	// node_exporter textfile format. Empty disables the export.
	Textfile string `yaml:"textfile"`

	// DurationBuckets defines histogram buckets for run duration (seconds).
	// Default: [0.01, 0.05, 0.1, 0.5, 1, 5, 10, 30]
	DurationBuckets []float64 `yaml:"duration_buckets"`
}

// ScaffoldConfig contains directory rendering configuration.
type ScaffoldConfig struct {
	// DefaultsFile is the base name of the property file that is never
	// copied into the output.
	// Default: "default.properties"
	DefaultsFile string `yaml:"defaults_file"`

	// VerbatimProperty names the property listing verbatim globs.
	// Default: "verbatim"
	VerbatimProperty string `yaml:"verbatim_property"`

	// DetectBinary copies files that look binary without rendering them.
	// Default: true
	DetectBinary bool `yaml:"detect_binary"`

	// SniffBytes is how many leading bytes binary detection inspects.
	// Default: 8000
	SniffBytes int `yaml:"sniff_bytes"`
}

// HistoryConfig contains render run ledger configuration.
type HistoryConfig struct {
	// Enabled controls whether runs are recorded.
	// Default: true
	Enabled bool `yaml:"enabled"`

	// Backend is "sqlite" or "memory".
	// Default: "sqlite"
	Backend string `yaml:"backend"`

	// Path is the SQLite database file.
	// Default: "$XDG_STATE_HOME/g8/history.db" or "~/.local/state/g8/history.db"
	Path string `yaml:"path"`

	// BusyTimeout is the SQLite busy timeout.
	// Default: 5s
	BusyTimeout time.Duration `yaml:"busy_timeout"`

	// RetentionDays removes runs older than this many days when the ledger
	// is pruned. Zero keeps every run.
	// Default: 90
	RetentionDays int `yaml:"retention_days"`

	// PruneSchedule is the cron expression for pruning during long-running
	// commands such as "g8 new --watch". Empty disables scheduled pruning.
	// Default: "0 3 * * *"
	PruneSchedule string `yaml:"prune_schedule"`
}

// WatchConfig contains watch-mode configuration.
type WatchConfig struct {
	// Debounce is the quiet period after the last change before re-rendering.
	// Default: 200ms
	Debounce time.Duration `yaml:"debounce"`
}

// GitConfig contains remote template fetching configuration.
type GitConfig struct {
	// Depth is the clone depth. Zero fetches the full history.
	// Default: 1
	Depth int `yaml:"depth"`

	// Timeout bounds a clone.
	// Default: 60s
	Timeout time.Duration `yaml:"timeout"`

	// Token authenticates HTTPS clones. Prefer the G8_GIT_TOKEN environment
	// variable over storing it in the file.
	Token string `yaml:"token"`
}
