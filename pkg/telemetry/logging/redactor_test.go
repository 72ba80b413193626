package logging

import (
	"log/slog"
	"testing"
)

func TestRedactorIsSecret(t *testing.T) {
	r := NewRedactor([]string{" Signing "})
	tests := []struct {
		key  string
		want bool
	}{
		{"password", true},
		{"DB_PASSWORD", true},
		{"githubToken", true},
		{"aws_secret_key", true},
		{"signingKey", true},
		{"name", false},
		{"organization", false},
	}
	for _, tt := range tests {
		if got := r.IsSecret(tt.key); got != tt.want {
			t.Errorf("IsSecret(%q) = %v, want %v", tt.key, got, tt.want)
		}
	}
}

func TestRedactValue(t *testing.T) {
	r := NewRedactor(nil)
	if got := r.RedactValue("token", "abc"); got != Mask {
		t.Errorf("RedactValue(token) = %q", got)
	}
	if got := r.RedactValue("header", "Authorization: Bearer abc.def"); got != "Authorization: Bearer ***" {
		t.Errorf("RedactValue(header) = %q", got)
	}
	if got := r.RedactValue("name", "demo"); got != "demo" {
		t.Errorf("RedactValue(name) = %q", got)
	}
}

func TestRedactArgs(t *testing.T) {
	r := NewRedactor(nil)
	args := []any{"password", "x", "count", 3, "secret_n", 5, slog.String("api_key", "k"), "dangling"}
	got := r.RedactArgs(args...)

	if got[1] != Mask {
		t.Errorf("password value = %v", got[1])
	}
	if got[3] != 3 {
		t.Errorf("count value = %v", got[3])
	}
	if got[5] != Mask {
		t.Errorf("secret_n value = %v", got[5])
	}
	if attr := got[6].(slog.Attr); attr.Value.String() != Mask {
		t.Errorf("api_key attr = %v", attr)
	}
	if args[1] != "x" {
		t.Error("RedactArgs() modified its input")
	}
}

func TestRedactMap(t *testing.T) {
	r := NewRedactor(nil)
	got := r.RedactMap(map[string]string{"name": "demo", "deployToken": "t"})
	if got["name"] != "demo" || got["deployToken"] != Mask {
		t.Errorf("RedactMap() = %v", got)
	}
}
