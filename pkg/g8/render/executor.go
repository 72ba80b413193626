package render

import (
	"errors"
	"fmt"
	"strings"

	"mercator-hq/g8/pkg/g8/ast"
	g8errors "mercator-hq/g8/pkg/g8/errors"
	"mercator-hq/g8/pkg/g8/format"
	"mercator-hq/g8/pkg/g8/props"
)

// Executor renders templates against a fixed property set.
type Executor struct {
	props *props.Set
}

// New creates an executor for the given properties. A nil set behaves as an
// empty one.
func New(set *props.Set) *Executor {
	if set == nil {
		set = props.NewSet()
	}
	return &Executor{props: set}
}

// Exec renders the sequence and returns the output.
func (e *Executor) Exec(seq *ast.Sequence) (string, error) {
	var sb strings.Builder
	if err := e.execSequence(seq, &sb); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func (e *Executor) execSequence(seq *ast.Sequence, sb *strings.Builder) error {
	for _, n := range seq.Nodes() {
		switch node := n.(type) {
		case *ast.Literal:
			sb.WriteString(node.Value)
		case *ast.TemplateRef:
			value, err := e.substitute(node)
			if err != nil {
				return err
			}
			sb.WriteString(value)
		case *ast.Conditional:
			if _, err := e.execConditional(node, sb); err != nil {
				return err
			}
		default:
			panic(fmt.Sprintf("render: unexpected node type %T", n))
		}
	}
	return nil
}

// substitute resolves a reference and applies its formatter chain.
func (e *Executor) substitute(ref *ast.TemplateRef) (string, error) {
	value, ok := e.props.Find(ref.Name)
	if !ok {
		return "", e.propertyNotFound(ref.Name, ref.Location)
	}

	value, err := format.Apply(value, ref.Format())
	var unknown *format.UnknownFormatterError
	if errors.As(err, &unknown) {
		gerr := g8errors.New(g8errors.ErrorTypeFormatterNotFound, "",
			fmt.Sprintf("Formatter `%s' not found", unknown.Name), ref.Location)
		gerr.Token = unknown.Name
		gerr.Suggestion = g8errors.SuggestName(unknown.Name, format.Names(), "formatters")
		return "", gerr
	}
	return value, err
}

// execConditional renders the first matching branch of cond and reports
// whether any branch rendered.
func (e *Executor) execConditional(cond *ast.Conditional, sb *strings.Builder) (bool, error) {
	ok, err := e.evaluate(cond)
	if err != nil {
		return false, err
	}
	if ok {
		return true, e.execSequence(cond.Then, sb)
	}

	for _, alt := range cond.ElseIf {
		ok, err := e.evaluate(alt)
		if err != nil {
			return false, err
		}
		if ok {
			return true, e.execSequence(alt.Then, sb)
		}
	}

	if cond.Else.Len() > 0 {
		return true, e.execSequence(cond.Else, sb)
	}
	return false, nil
}

// evaluate decides a single condition. Helpers are matched case-insensitively.
func (e *Executor) evaluate(cond *ast.Conditional) (bool, error) {
	helper := strings.ToLower(cond.Helper)
	value, found := e.props.Find(cond.Property)

	switch helper {
	case "truthy":
		return found && props.Truthy(value), nil
	case "present":
		return found && props.Present(value), nil
	}

	if !found {
		return false, e.propertyNotFound(cond.Property, cond.Location)
	}
	err := g8errors.New(g8errors.ErrorTypeInternal, g8errors.CodeUnsupportedHelper,
		fmt.Sprintf("Conditional helper `%s' has no implementation", cond.Helper), cond.Location)
	err.Token = cond.Helper
	return false, err
}

func (e *Executor) propertyNotFound(name string, loc ast.Location) error {
	err := g8errors.New(g8errors.ErrorTypePropertyNotFound, "",
		fmt.Sprintf("Property `%s' not found", name), loc)
	err.Token = name
	if e.props.Len() > 0 {
		err.Suggestion = g8errors.SuggestName(name, e.props.Keys(), "properties")
	}
	return err
}

// Render renders seq against set.
func Render(seq *ast.Sequence, set *props.Set) (string, error) {
	return New(set).Exec(seq)
}
