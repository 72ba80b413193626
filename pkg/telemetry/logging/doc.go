// Package logging provides structured logging for g8 commands.
//
// # Overview
//
// The logging package wraps Go's standard log/slog package to provide:
//   - Structured logging with JSON, text, and console formats
//   - Masking of secret-looking property values (passwords, tokens, keys)
//   - Context-aware logging with run IDs, template and file names
//   - Configurable log levels (debug, info, warn, error)
//
// # Usage
//
//	logger, err := logging.New(logging.Config{
//	    Level:         "debug",
//	    Format:        "text",
//	    RedactSecrets: true,
//	    Writer:        os.Stderr,
//	})
//
//	logger.Info("rendering", "template", "templates/sbt", "db_password", "hunter2")
//	// db_password is logged as "***"
//
// Library packages accept a *slog.Logger; pass logger.Slog() to them.
//
//	ctx = logging.WithRunID(ctx, runID)
//	logger.InfoContext(ctx, "file written", "file", path)
package logging
