// Package config provides configuration management for the g8 command.
//
// This package handles loading, validating, and managing configuration from
// YAML files with environment variable overrides.
//
// # Configuration Loading
//
// Configuration can be loaded in two ways:
//
//  1. From a YAML file only:
//     cfg, err := config.LoadConfig("g8.yaml")
//
//  2. From a YAML file with environment variable overrides:
//     cfg, err := config.LoadConfigWithEnvOverrides("g8.yaml")
//
// An empty path skips the file and starts from defaults.
//
// # Environment Variable Overrides
//
// Environment variables follow the naming convention G8_SECTION_FIELD.
// For example:
//
//   - G8_LOGGING_LEVEL overrides logging.level
//   - G8_HISTORY_PATH overrides history.path
//   - G8_SCAFFOLD_DEFAULTS_FILE overrides scaffold.defaults_file
//
// # Configuration Precedence
//
//  1. Default values (defined in defaults.go)
//  2. Values from YAML file
//  3. Environment variable overrides
//  4. Validation (fails fast if invalid)
//
// # Singleton Pattern
//
//	if err := config.Initialize("g8.yaml"); err != nil {
//	    log.Fatal(err)
//	}
//	cfg := config.GetConfig()
//
// For testing, prefer explicit Config instances over the global singleton.
//
// # Example Configuration
//
//	logging:
//	  level: info
//	  format: console
//	  redact_secrets: true
//	metrics:
//	  enabled: true
//	  textfile: /var/lib/node_exporter/g8.prom
//	scaffold:
//	  defaults_file: default.properties
//	  detect_binary: true
//	history:
//	  enabled: true
//	  backend: sqlite
//	  path: ~/.g8/history.db
//	watch:
//	  debounce: 200ms
package config
