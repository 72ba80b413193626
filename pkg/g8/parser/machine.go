package parser

import (
	"fmt"
	"strings"

	"mercator-hq/g8/pkg/g8/ast"
	g8errors "mercator-hq/g8/pkg/g8/errors"
)

type state int

const (
	stateLiteral state = iota
	stateName
	stateCombinedFormatter
	stateCondExpr
	stateCondExprEnd
	stateOptionName
	stateOptionValueBegin
	stateOptionValue
	stateOptionOrEnd
)

var stateNames = [...]string{
	stateLiteral:           "literal",
	stateName:              "name",
	stateCombinedFormatter: "combined-formatter",
	stateCondExpr:          "cond-expr",
	stateCondExprEnd:       "cond-expr-end",
	stateOptionName:        "option-name",
	stateOptionValueBegin:  "option-value-begin",
	stateOptionValue:       "option-value",
	stateOptionOrEnd:       "option-or-end",
}

func (s state) String() string { return stateNames[s] }

type branch int

const (
	branchThen branch = iota
	branchElseIf
	branchElse
)

// frame tracks an open conditional. cond receives then-branch nodes; root is
// the if that started the chain and owns else-if alternatives and the else
// branch.
type frame struct {
	branch branch
	cond   *ast.Conditional
	root   *ast.Conditional
}

type machine struct {
	source string
	state  state
	top    *ast.Sequence
	stack  []frame

	loc    ast.Location // current rune
	prev   rune
	anchor ast.Location // opening $ of the current construct

	lit    []rune
	litLoc ast.Location

	name    []rune
	keyword string
	expr    []rune
	format  []rune
	optKey  []rune
	optVal  []rune
	opts    ast.Options
}

func newMachine(source string) *machine {
	return &machine{
		source: source,
		top:    ast.NewSequence(),
		loc:    ast.Location{Source: source, Line: 1},
	}
}

func (m *machine) run(text string) (*ast.Sequence, error) {
	for _, r := range text {
		if err := m.step(r); err != nil {
			return nil, err
		}
		m.prev = r
		if r == '\n' {
			m.loc.Line++
			m.loc.Column = 0
		} else {
			m.loc.Column++
		}
	}

	if m.state != stateLiteral || len(m.stack) > 0 {
		return nil, errUnexpectedEOF(m.loc)
	}
	m.commitLiteral()
	m.top.Clean()
	return m.top, nil
}

func (m *machine) step(r rune) error {
	switch m.state {
	case stateLiteral:
		return m.stepLiteral(r)
	case stateName:
		return m.stepName(r)
	case stateCombinedFormatter:
		return m.stepCombinedFormatter(r)
	case stateCondExpr:
		return m.stepCondExpr(r)
	case stateCondExprEnd:
		return m.stepCondExprEnd(r)
	case stateOptionName:
		return m.stepOptionName(r)
	case stateOptionValueBegin:
		return m.stepOptionValueBegin(r)
	case stateOptionValue:
		return m.stepOptionValue(r)
	case stateOptionOrEnd:
		return m.stepOptionOrEnd(r)
	}
	panic(fmt.Sprintf("parser: unknown state %d", m.state))
}

func (m *machine) stepLiteral(r rune) error {
	if r == '$' {
		if m.prev == '\\' && len(m.lit) > 0 {
			m.lit[len(m.lit)-1] = '$'
			return nil
		}
		m.commitLiteral()
		m.anchor = m.loc
		m.name = m.name[:0]
		m.state = stateName
		return nil
	}
	if len(m.lit) == 0 {
		m.litLoc = m.loc
	}
	m.lit = append(m.lit, r)
	return nil
}

func (m *machine) stepName(r rune) error {
	switch {
	case r == '$':
		return m.resolveName()
	case r == ';':
		if len(m.name) == 0 {
			return errUnexpectedToken(r, m.loc)
		}
		m.opts = nil
		m.optKey = m.optKey[:0]
		m.state = stateOptionName
	case r == '(':
		name := string(m.name)
		if name != "if" && name != "elseif" {
			return errUnexpectedToken(r, m.loc)
		}
		if name == "elseif" && !m.canElseIf() {
			return errUnexpectedKeyword(name, m.loc)
		}
		m.keyword = name
		m.expr = m.expr[:0]
		m.state = stateCondExpr
	case r == '_' && m.prev == '_' && len(m.name) > 1:
		trimLast(&m.name)
		m.format = m.format[:0]
		m.state = stateCombinedFormatter
	case isLineBreak(r):
		return errUnexpectedLineBreak(m.loc)
	case len(m.name) == 0 && !isNameStart(r):
		return errUnexpectedToken(r, m.loc)
	case !isNameChar(r):
		return errUnexpectedToken(r, m.loc)
	default:
		m.name = append(m.name, r)
	}
	return nil
}

// resolveName handles the closing $ of a bare name: block keywords or a plain
// substitution.
func (m *machine) resolveName() error {
	name := string(m.name)
	switch name {
	case "":
		return errUnexpectedToken('$', m.loc)
	case "if", "elseif":
		return errUnexpectedKeyword(name, m.loc)
	case "else":
		if len(m.stack) == 0 || m.stack[len(m.stack)-1].branch == branchElse {
			return errUnexpectedKeyword(name, m.loc)
		}
		f := &m.stack[len(m.stack)-1]
		f.branch = branchElse
		f.cond = f.root
	case "endif":
		if len(m.stack) == 0 {
			return errUnexpectedKeyword(name, m.loc)
		}
		m.stack = m.stack[:len(m.stack)-1]
	default:
		m.commitRef(name, nil)
	}
	m.state = stateLiteral
	return nil
}

func (m *machine) canElseIf() bool {
	return len(m.stack) > 0 && m.stack[len(m.stack)-1].branch != branchElse
}

func (m *machine) stepCombinedFormatter(r rune) error {
	switch {
	case r == '$':
		format := trimmed(m.format)
		if format == "" {
			return errUnexpectedToken(r, m.loc)
		}
		m.commitRef(string(m.name), ast.Options{{Key: ast.FormatOption, Value: format}})
		m.state = stateLiteral
	case isLineBreak(r):
		return errUnexpectedLineBreak(m.loc)
	default:
		m.format = append(m.format, r)
	}
	return nil
}

func (m *machine) stepCondExpr(r rune) error {
	switch {
	case r == ')':
		if len(m.expr) == 0 {
			return errUnexpectedToken(r, m.loc)
		}
		m.state = stateCondExprEnd
	case isLineBreak(r):
		return errUnexpectedLineBreak(m.loc)
	case isNameChar(r) || r == '.':
		m.expr = append(m.expr, r)
	default:
		return errUnexpectedToken(r, m.loc)
	}
	return nil
}

func (m *machine) stepCondExprEnd(r rune) error {
	if r != '$' {
		return errUnexpectedToken(r, m.loc)
	}
	property, helper, err := m.splitExpr()
	if err != nil {
		return err
	}

	switch m.keyword {
	case "if":
		cond := ast.NewConditional(property, helper, m.parent(), m.anchor)
		m.target().Append(cond)
		m.stack = append(m.stack, frame{branch: branchThen, cond: cond, root: cond})
	case "elseif":
		f := m.stack[len(m.stack)-1]
		m.stack = m.stack[:len(m.stack)-1]
		alt := ast.NewConditional(property, helper, f.root, m.anchor)
		f.root.ElseIf = append(f.root.ElseIf, alt)
		m.stack = append(m.stack, frame{branch: branchElseIf, cond: alt, root: f.root})
	}
	m.state = stateLiteral
	return nil
}

func (m *machine) splitExpr() (string, string, error) {
	expr := string(m.expr)
	property, helper, found := strings.Cut(expr, ".")
	if !found || property == "" {
		err := g8errors.New(g8errors.ErrorTypeTemplateParse, g8errors.CodeInvalidExpression,
			fmt.Sprintf("Invalid conditional expression `%s'", expr), m.loc)
		err.Token = expr
		err.Suggestion = "Conditions take the form property.helper, e.g. " + property + ".truthy"
		return "", "", err
	}
	if helper != "truthy" && helper != "present" {
		err := g8errors.New(g8errors.ErrorTypeTemplateParse, g8errors.CodeUnsupportedHelper,
			fmt.Sprintf("Unsupported conditional helper `%s'", helper), m.loc)
		err.Token = helper
		err.Suggestion = g8errors.SuggestHelper(helper)
		return "", "", err
	}
	return property, helper, nil
}

func (m *machine) stepOptionName(r rune) error {
	switch {
	case r == '=':
		if trimmed(m.optKey) == "" {
			return errUnexpectedToken(r, m.loc)
		}
		m.state = stateOptionValueBegin
	case r == '$':
		if trimmed(m.optKey) != "" {
			return errUnexpectedToken(r, m.loc)
		}
		m.commitRef(string(m.name), m.opts)
		m.state = stateLiteral
	case isLineBreak(r):
		return errUnexpectedLineBreak(m.loc)
	default:
		m.optKey = append(m.optKey, r)
	}
	return nil
}

func (m *machine) stepOptionValueBegin(r rune) error {
	switch {
	case isInlineSpace(r):
	case r == '"':
		m.optVal = m.optVal[:0]
		m.state = stateOptionValue
	default:
		return errUnexpectedToken(r, m.loc)
	}
	return nil
}

func (m *machine) stepOptionValue(r rune) error {
	if r != '"' {
		m.optVal = append(m.optVal, r)
		return nil
	}
	if m.prev == '\\' && len(m.optVal) > 0 {
		m.optVal[len(m.optVal)-1] = '"'
		return nil
	}
	m.opts.Set(trimmed(m.optKey), trimmed(m.optVal))
	m.optKey = m.optKey[:0]
	m.state = stateOptionOrEnd
	return nil
}

func (m *machine) stepOptionOrEnd(r rune) error {
	switch {
	case isInlineSpace(r):
	case r == ',':
		m.state = stateOptionName
	case r == '$':
		m.commitRef(string(m.name), m.opts)
		m.state = stateLiteral
	default:
		return errUnexpectedToken(r, m.loc)
	}
	return nil
}

// target returns the sequence receiving new nodes.
func (m *machine) target() *ast.Sequence {
	if len(m.stack) == 0 {
		return m.top
	}
	f := m.stack[len(m.stack)-1]
	if f.branch == branchElse {
		return f.root.Else
	}
	return f.cond.Then
}

// parent returns the conditional enclosing new nodes.
func (m *machine) parent() *ast.Conditional {
	if len(m.stack) == 0 {
		return nil
	}
	return m.stack[len(m.stack)-1].cond
}

func (m *machine) commitLiteral() {
	if len(m.lit) == 0 {
		return
	}
	m.target().Append(&ast.Literal{
		Value:    string(m.lit),
		Parent:   m.parent(),
		Location: m.litLoc,
	})
	m.lit = m.lit[:0]
}

func (m *machine) commitRef(name string, opts ast.Options) {
	m.target().Append(&ast.TemplateRef{
		Name:     name,
		Options:  opts,
		Parent:   m.parent(),
		Location: m.anchor,
	})
	m.opts = nil
}
