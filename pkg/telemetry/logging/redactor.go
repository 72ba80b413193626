package logging

import (
	"log/slog"
	"regexp"
	"strings"
)

// Mask replaces redacted values.
const Mask = "***"

// DefaultSecretKeys are key substrings whose values are always masked.
var DefaultSecretKeys = []string{"password", "passwd", "secret", "token", "apikey", "api_key", "private_key", "credential"}

// bearerPattern catches credentials embedded in otherwise harmless values.
var bearerPattern = regexp.MustCompile(`(?i)(bearer\s+)[a-z0-9._~+/=-]+`)

// Redactor masks secret property values in log fields.
type Redactor struct {
	keys []string
}

// NewRedactor creates a redactor for the default secret keys plus extra.
func NewRedactor(extra []string) *Redactor {
	keys := make([]string, 0, len(DefaultSecretKeys)+len(extra))
	keys = append(keys, DefaultSecretKeys...)
	for _, k := range extra {
		if k = strings.ToLower(strings.TrimSpace(k)); k != "" {
			keys = append(keys, k)
		}
	}
	return &Redactor{keys: keys}
}

// IsSecret reports whether key names a secret.
func (r *Redactor) IsSecret(key string) bool {
	lower := strings.ToLower(key)
	for _, k := range r.keys {
		if strings.Contains(lower, k) {
			return true
		}
	}
	return false
}

// RedactValue returns the value to log for key.
func (r *Redactor) RedactValue(key, value string) string {
	if r.IsSecret(key) {
		return Mask
	}
	return bearerPattern.ReplaceAllString(value, "${1}"+Mask)
}

// RedactArgs masks values in slog-style alternating key/value arguments and
// in slog.Attr arguments.
func (r *Redactor) RedactArgs(args ...any) []any {
	out := make([]any, len(args))
	copy(out, args)

	for i := 0; i < len(out); i++ {
		switch v := out[i].(type) {
		case slog.Attr:
			out[i] = r.redactAttr(v)
		case string:
			if i+1 >= len(out) {
				return out
			}
			if s, ok := out[i+1].(string); ok {
				out[i+1] = r.RedactValue(v, s)
			} else if r.IsSecret(v) {
				out[i+1] = Mask
			}
			i++
		}
	}
	return out
}

func (r *Redactor) redactAttr(a slog.Attr) slog.Attr {
	if a.Value.Kind() == slog.KindString {
		return slog.String(a.Key, r.RedactValue(a.Key, a.Value.String()))
	}
	if r.IsSecret(a.Key) {
		return slog.String(a.Key, Mask)
	}
	return a
}

// RedactMap returns a copy of m with secret values masked.
func (r *Redactor) RedactMap(m map[string]string) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = r.RedactValue(k, v)
	}
	return out
}
