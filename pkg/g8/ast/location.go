package ast

import "fmt"

// DefaultSource is the source name used when a template has no file name.
const DefaultSource = "unknown"

// Location represents a position in template or property source text.
type Location struct {
	Source string // Source name (file path or "unknown")
	Line   int    // Line number (1-based)
	Column int    // Column number (0-based, counted in runes)
}

// String returns the location formatted as "source:line:column".
func (l Location) String() string {
	source := l.Source
	if source == "" {
		source = DefaultSource
	}
	return fmt.Sprintf("%s:%d:%d", source, l.Line, l.Column)
}

// IsValid returns true if the location carries line information.
func (l Location) IsValid() bool {
	return l.Line > 0
}
