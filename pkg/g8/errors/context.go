package errors

import (
	"fmt"
	"strings"

	"mercator-hq/g8/pkg/g8/ast"
)

// DefaultContextLines is the number of lines shown before and after the
// failing line.
const DefaultContextLines = 2

// ExtractContext extracts the lines of source around the given location.
// The failing line is marked with "->" and followed by a caret under the
// failing column.
func ExtractContext(source string, location ast.Location, contextLines int) string {
	if !location.IsValid() || source == "" {
		return ""
	}

	lines := strings.Split(source, "\n")
	errorLine := location.Line - 1
	if errorLine >= len(lines) {
		return ""
	}

	startLine := max(errorLine-contextLines, 0)
	endLine := min(errorLine+contextLines, len(lines)-1)

	var sb strings.Builder
	width := len(fmt.Sprintf("%d", endLine+1))

	for i := startLine; i <= endLine; i++ {
		prefix := "  "
		if i == errorLine {
			prefix = "->"
		}
		sb.WriteString(fmt.Sprintf("%s %*d | %s\n", prefix, width, i+1, strings.TrimRight(lines[i], "\r")))

		if i == errorLine {
			sb.WriteString(fmt.Sprintf("   %s | %s^\n", strings.Repeat(" ", width), strings.Repeat(" ", location.Column)))
		}
	}

	return sb.String()
}

// WithContext attaches the source excerpt around the error location.
// Errors that already carry context are returned unchanged.
func WithContext(err *Error, source string, contextLines int) *Error {
	if err.Context == "" && err.Location.IsValid() {
		err.Context = ExtractContext(source, err.Location, contextLines)
	}
	return err
}

// AddContextToError attaches context using DefaultContextLines.
func AddContextToError(err *Error, source string) *Error {
	return WithContext(err, source, DefaultContextLines)
}
