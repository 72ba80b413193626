package parser

import (
	"fmt"
	"io"
	"strings"

	"mercator-hq/g8/pkg/g8/ast"
	g8errors "mercator-hq/g8/pkg/g8/errors"
)

// Parser parses template text.
type Parser struct {
	source       string
	contextLines int
}

// Option configures a Parser.
type Option func(*Parser)

// WithSource sets the source name reported in node and error locations.
func WithSource(name string) Option {
	return func(p *Parser) {
		if name != "" {
			p.source = name
		}
	}
}

// WithContextLines sets how many lines around a failure are attached to
// parse errors. Zero disables the excerpt.
func WithContextLines(n int) Option {
	return func(p *Parser) {
		p.contextLines = n
	}
}

// NewParser creates a new template parser with the given options.
func NewParser(opts ...Option) *Parser {
	p := &Parser{
		source:       ast.DefaultSource,
		contextLines: g8errors.DefaultContextLines,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse parses template text into a cleaned sequence.
func (p *Parser) Parse(text string) (*ast.Sequence, error) {
	m := newMachine(p.source)
	seq, err := m.run(text)
	if err != nil {
		if perr, ok := err.(*g8errors.Error); ok && p.contextLines > 0 {
			g8errors.WithContext(perr, text, p.contextLines)
		}
		return nil, err
	}
	return seq, nil
}

// ParseBytes parses template content.
func (p *Parser) ParseBytes(data []byte) (*ast.Sequence, error) {
	return p.Parse(string(data))
}

// ParseReader reads r to the end and parses its content.
func (p *Parser) ParseReader(r io.Reader) (*ast.Sequence, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, g8errors.Wrap(g8errors.ErrorTypeInput, err, "reading template %s", p.source)
	}
	return p.Parse(string(data))
}

// Parse parses template text with a default parser.
func Parse(text string) (*ast.Sequence, error) {
	return NewParser().Parse(text)
}

func errUnexpectedToken(r rune, loc ast.Location) *g8errors.Error {
	err := g8errors.New(g8errors.ErrorTypeTemplateParse, g8errors.CodeUnexpectedToken,
		fmt.Sprintf("Unexpected token `%s'", printable(r)), loc)
	err.Token = string(r)
	return err
}

func errUnexpectedKeyword(keyword string, loc ast.Location) *g8errors.Error {
	err := g8errors.New(g8errors.ErrorTypeTemplateParse, g8errors.CodeUnexpectedKeyword,
		fmt.Sprintf("Unexpected keyword `%s'", keyword), loc)
	err.Token = keyword
	return err
}

func errUnexpectedLineBreak(loc ast.Location) *g8errors.Error {
	err := g8errors.New(g8errors.ErrorTypeTemplateParse, g8errors.CodeUnexpectedLineBreak,
		"Unexpected line break", loc)
	err.Token = "\n"
	return err
}

func errUnexpectedEOF(loc ast.Location) *g8errors.Error {
	return g8errors.New(g8errors.ErrorTypeTemplateParse, g8errors.CodeUnexpectedEOF, "Unexpected EOF", loc)
}

func printable(r rune) string {
	switch r {
	case ' ':
		return "space"
	case '\t':
		return "tab"
	}
	return string(r)
}

// isNameStart reports whether r may begin a property name.
func isNameStart(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

// isNameChar reports whether r may continue a property name.
func isNameChar(r rune) bool {
	return isNameStart(r) || (r >= '0' && r <= '9') || r == '_' || r == '-'
}

func isLineBreak(r rune) bool {
	return r == '\n' || r == '\r'
}

func isInlineSpace(r rune) bool {
	return r == ' ' || r == '\t'
}

// trimLast drops the final rune written to a buffer.
func trimLast(b *[]rune) {
	if n := len(*b); n > 0 {
		*b = (*b)[:n-1]
	}
}

func trimmed(b []rune) string {
	return strings.TrimSpace(string(b))
}
