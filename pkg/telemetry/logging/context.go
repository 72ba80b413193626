package logging

import (
	"context"
)

// Context keys for common log fields.
type contextKey string

const (
	// RunIDKey is the context key for directory render run IDs.
	RunIDKey contextKey = "run_id"

	// TemplateKey is the context key for the template being rendered.
	TemplateKey contextKey = "template"

	// FileKey is the context key for the file being processed.
	FileKey contextKey = "file"
)

// WithRunID adds a run ID to the context.
func WithRunID(ctx context.Context, runID string) context.Context {
	return context.WithValue(ctx, RunIDKey, runID)
}

// GetRunID retrieves the run ID from the context.
func GetRunID(ctx context.Context) string {
	if runID, ok := ctx.Value(RunIDKey).(string); ok {
		return runID
	}
	return ""
}

// WithTemplate adds a template name to the context.
func WithTemplate(ctx context.Context, template string) context.Context {
	return context.WithValue(ctx, TemplateKey, template)
}

// GetTemplate retrieves the template name from the context.
func GetTemplate(ctx context.Context) string {
	if template, ok := ctx.Value(TemplateKey).(string); ok {
		return template
	}
	return ""
}

// WithFile adds a file path to the context.
func WithFile(ctx context.Context, file string) context.Context {
	return context.WithValue(ctx, FileKey, file)
}

// GetFile retrieves the file path from the context.
func GetFile(ctx context.Context) string {
	if file, ok := ctx.Value(FileKey).(string); ok {
		return file
	}
	return ""
}

// extractContextFields extracts the run fields from context for logging.
// Returns a slice of key-value pairs suitable for logger.With().
func extractContextFields(ctx context.Context) []any {
	var fields []any

	if runID := GetRunID(ctx); runID != "" {
		fields = append(fields, string(RunIDKey), runID)
	}
	if template := GetTemplate(ctx); template != "" {
		fields = append(fields, string(TemplateKey), template)
	}
	if file := GetFile(ctx); file != "" {
		fields = append(fields, string(FileKey), file)
	}

	return fields
}
