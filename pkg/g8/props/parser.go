package props

import (
	"fmt"
	"strings"
	"unicode"

	"mercator-hq/g8/pkg/g8/ast"
	g8errors "mercator-hq/g8/pkg/g8/errors"
)

type state int

const (
	stateKey state = iota
	stateValue
	stateComment
)

// Parser reads property text.
type Parser struct {
	source string
}

// ParserOption configures a Parser.
type ParserOption func(*Parser)

// WithSource sets the source name reported in error locations.
func WithSource(name string) ParserOption {
	return func(p *Parser) {
		p.source = name
	}
}

// NewParser creates a property parser.
func NewParser(opts ...ParserOption) *Parser {
	p := &Parser{source: ast.DefaultSource}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse parses text into a Set. Duplicate keys keep their first value.
func (p *Parser) Parse(text string) (*Set, error) {
	pairs, err := p.ParsePairs(text)
	if err != nil {
		return nil, err
	}
	return NewSet(pairs...), nil
}

// ParsePairs parses text into the ordered list of pairs, duplicates included.
func (p *Parser) ParsePairs(text string) ([]Pair, error) {
	var (
		pairs []Pair
		key   strings.Builder
		value strings.Builder
		st    = stateKey
		loc   = ast.Location{Source: p.source, Line: 1}
	)

	emit := func() {
		pairs = append(pairs, NewPair(strings.TrimSpace(key.String()), strings.TrimSpace(value.String())))
		key.Reset()
		value.Reset()
	}

	for _, r := range text {
		switch st {
		case stateKey:
			switch {
			case key.Len() == 0 && isBlank(r):
			case key.Len() == 0 && r == '#':
				st = stateComment
			case key.Len() == 0 && !unicode.IsLetter(r):
				return nil, p.malformed(r, loc, text)
			case r == '=':
				st = stateValue
			default:
				key.WriteRune(r)
			}
		case stateValue:
			if r == '\n' {
				emit()
				st = stateKey
			} else {
				value.WriteRune(r)
			}
		case stateComment:
			if r == '\n' {
				st = stateKey
			}
		}

		if r == '\n' {
			loc.Line++
			loc.Column = 0
		} else {
			loc.Column++
		}
	}

	switch {
	case st == stateValue:
		emit()
	case st == stateKey && key.Len() > 0:
		err := g8errors.New(g8errors.ErrorTypePropertyParse, g8errors.CodeUnexpectedEOF, "Unexpected end of input", loc)
		return nil, g8errors.AddContextToError(err, text)
	}

	return pairs, nil
}

func (p *Parser) malformed(r rune, loc ast.Location, text string) error {
	err := g8errors.New(g8errors.ErrorTypePropertyParse, g8errors.CodeMalformedKey,
		fmt.Sprintf("Malformed key: unexpected %q", r), loc)
	err.Token = string(r)
	return g8errors.AddContextToError(err, text)
}

func isBlank(r rune) bool {
	return r == ' ' || r == '\t' || r == '\r' || r == '\n'
}

// Parse parses property text with a default parser.
func Parse(text string) (*Set, error) {
	return NewParser().Parse(text)
}
