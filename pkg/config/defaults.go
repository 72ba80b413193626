package config

import (
	"os"
	"path/filepath"
	"time"
)

// Default values for configuration fields.
const (
	// Logging defaults
	DefaultLogLevel      = "info"
	DefaultLogFormat     = "console"
	DefaultRedactSecrets = true

	// Metrics defaults
	DefaultMetricsEnabled   = true
	DefaultMetricsNamespace = "g8"
	DefaultMetricsSubsystem = "scaffold"

	// Scaffold defaults
	DefaultDefaultsFile     = "default.properties"
	DefaultVerbatimProperty = "verbatim"
	DefaultDetectBinary     = true
	DefaultSniffBytes       = 8000

	// History defaults
	DefaultHistoryEnabled     = true
	DefaultHistoryBackend     = "sqlite"
	DefaultHistoryBusyTimeout = 5 * time.Second
	DefaultRetentionDays      = 90
	DefaultPruneSchedule      = "0 3 * * *"

	// Watch defaults
	DefaultWatchDebounce = 200 * time.Millisecond

	// Git defaults
	DefaultGitDepth   = 1
	DefaultGitTimeout = 60 * time.Second
)

// DefaultDurationBuckets are the run duration histogram buckets in seconds.
var DefaultDurationBuckets = []float64{0.01, 0.05, 0.1, 0.5, 1, 5, 10, 30}

// Default returns a configuration with every field set to its default.
func Default() *Config {
	cfg := &Config{
		Logging: LoggingConfig{
			RedactSecrets: DefaultRedactSecrets,
		},
		Metrics: MetricsConfig{
			Enabled: DefaultMetricsEnabled,
		},
		Scaffold: ScaffoldConfig{
			DetectBinary: DefaultDetectBinary,
		},
		Git: GitConfig{
			Depth: DefaultGitDepth,
		},
		History: HistoryConfig{
			Enabled:       DefaultHistoryEnabled,
			RetentionDays: DefaultRetentionDays,
			PruneSchedule: DefaultPruneSchedule,
		},
	}
	ApplyDefaults(cfg)
	return cfg
}

// ApplyDefaults fills every zero-valued field that has a default. Boolean
// fields cannot be told apart from an explicit false and are set by Default.
func ApplyDefaults(cfg *Config) {
	// Logging defaults
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = DefaultLogLevel
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = DefaultLogFormat
	}

	// Metrics defaults
	if cfg.Metrics.Namespace == "" {
		cfg.Metrics.Namespace = DefaultMetricsNamespace
	}
	if cfg.Metrics.Subsystem == "" {
		cfg.Metrics.Subsystem = DefaultMetricsSubsystem
	}
	if len(cfg.Metrics.DurationBuckets) == 0 {
		cfg.Metrics.DurationBuckets = append([]float64(nil), DefaultDurationBuckets...)
	}

	// Scaffold defaults
	if cfg.Scaffold.DefaultsFile == "" {
		cfg.Scaffold.DefaultsFile = DefaultDefaultsFile
	}
	if cfg.Scaffold.VerbatimProperty == "" {
		cfg.Scaffold.VerbatimProperty = DefaultVerbatimProperty
	}
	if cfg.Scaffold.SniffBytes == 0 {
		cfg.Scaffold.SniffBytes = DefaultSniffBytes
	}

	// History defaults
	if cfg.History.Backend == "" {
		cfg.History.Backend = DefaultHistoryBackend
	}
	if cfg.History.Path == "" {
		cfg.History.Path = DefaultHistoryPath()
	}
	if cfg.History.BusyTimeout == 0 {
		cfg.History.BusyTimeout = DefaultHistoryBusyTimeout
	}

	// Watch defaults
	if cfg.Watch.Debounce == 0 {
		cfg.Watch.Debounce = DefaultWatchDebounce
	}

	// Git defaults
	if cfg.Git.Timeout == 0 {
		cfg.Git.Timeout = DefaultGitTimeout
	}
}

// DefaultHistoryPath returns the history database location under the user's
// state directory.
func DefaultHistoryPath() string {
	if dir := os.Getenv("XDG_STATE_HOME"); dir != "" {
		return filepath.Join(dir, "g8", "history.db")
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".local", "state", "g8", "history.db")
	}
	return filepath.Join(os.TempDir(), "g8", "history.db")
}
