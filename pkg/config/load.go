package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// LoadConfig loads configuration from a YAML file at the specified path.
// Values missing from the file keep their defaults. An empty path returns
// the defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read configuration file %q: %w", path, err)
		}

		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse configuration file %q: %w", path, err)
		}
	}

	ApplyDefaults(cfg)

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// LoadConfigWithEnvOverrides loads configuration from a YAML file and applies
// environment variable overrides. Environment variables follow the naming
// convention G8_SECTION_FIELD and always take precedence over the file.
func LoadConfigWithEnvOverrides(path string) (*Config, error) {
	cfg, err := LoadConfig(path)
	if err != nil {
		return nil, err
	}

	applyEnvOverrides(cfg)

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed after environment overrides: %w", err)
	}

	return cfg, nil
}

// applyEnvOverrides applies environment variable overrides to the configuration.
func applyEnvOverrides(cfg *Config) {
	// Logging overrides
	if val := os.Getenv("G8_LOGGING_LEVEL"); val != "" {
		cfg.Logging.Level = val
	}
	if val := os.Getenv("G8_LOGGING_FORMAT"); val != "" {
		cfg.Logging.Format = val
	}
	if val := os.Getenv("G8_LOGGING_REDACT_SECRETS"); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			cfg.Logging.RedactSecrets = b
		}
	}
	if val := os.Getenv("G8_LOGGING_SECRET_KEYS"); val != "" {
		cfg.Logging.SecretKeys = strings.Split(val, ",")
	}

	// Metrics overrides
	if val := os.Getenv("G8_METRICS_ENABLED"); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			cfg.Metrics.Enabled = b
		}
	}
	if val := os.Getenv("G8_METRICS_TEXTFILE"); val != "" {
		cfg.Metrics.Textfile = val
	}

	// Scaffold overrides
	if val := os.Getenv("G8_SCAFFOLD_DEFAULTS_FILE"); val != "" {
		cfg.Scaffold.DefaultsFile = val
	}
	if val := os.Getenv("G8_SCAFFOLD_DETECT_BINARY"); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			cfg.Scaffold.DetectBinary = b
		}
	}

	// History overrides
	if val := os.Getenv("G8_HISTORY_ENABLED"); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			cfg.History.Enabled = b
		}
	}
	if val := os.Getenv("G8_HISTORY_BACKEND"); val != "" {
		cfg.History.Backend = val
	}
	if val := os.Getenv("G8_HISTORY_PATH"); val != "" {
		cfg.History.Path = val
	}
	if val := os.Getenv("G8_HISTORY_RETENTION_DAYS"); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			cfg.History.RetentionDays = n
		}
	}
	if val, ok := os.LookupEnv("G8_HISTORY_PRUNE_SCHEDULE"); ok {
		cfg.History.PruneSchedule = val
	}

	// Git overrides
	if val := os.Getenv("G8_GIT_DEPTH"); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			cfg.Git.Depth = n
		}
	}
	if val := os.Getenv("G8_GIT_TOKEN"); val != "" {
		cfg.Git.Token = val
	}

	// Watch overrides
	if val := os.Getenv("G8_WATCH_DEBOUNCE"); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			cfg.Watch.Debounce = d
		}
	}
}
