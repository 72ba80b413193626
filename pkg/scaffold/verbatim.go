package scaffold

import (
	"bytes"
	"strings"

	g8errors "mercator-hq/g8/pkg/g8/errors"

	"github.com/gobwas/glob"
)

// Matcher selects files that are copied without rendering.
type Matcher struct {
	patterns []string
	globs    []glob.Glob
}

// CompileVerbatim compiles the whitespace-separated glob list in patterns.
// Globs are compiled without separators, so '*' also matches '/'.
func CompileVerbatim(patterns string) (*Matcher, error) {
	m := &Matcher{patterns: strings.Fields(patterns)}
	for _, p := range m.patterns {
		g, err := glob.Compile(p)
		if err != nil {
			return nil, g8errors.Wrap(g8errors.ErrorTypeInput, err, "invalid verbatim pattern %q", p)
		}
		m.globs = append(m.globs, g)
	}
	return m, nil
}

// Match reports whether path matches any verbatim glob.
func (m *Matcher) Match(path string) bool {
	if m == nil {
		return false
	}
	for _, g := range m.globs {
		if g.Match(path) {
			return true
		}
	}
	return false
}

// Patterns returns the compiled patterns in order.
func (m *Matcher) Patterns() []string {
	if m == nil {
		return nil
	}
	return append([]string(nil), m.patterns...)
}

// IsBinary reports whether data contains a NUL byte within its first sniff
// bytes. A sniff of zero or less inspects all of data.
func IsBinary(data []byte, sniff int) bool {
	if sniff > 0 && len(data) > sniff {
		data = data[:sniff]
	}
	return bytes.IndexByte(data, 0) >= 0
}
