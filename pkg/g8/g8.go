package g8

import (
	"context"
	"errors"
	"fmt"
	"io"

	"mercator-hq/g8/pkg/g8/ast"
	g8errors "mercator-hq/g8/pkg/g8/errors"
	"mercator-hq/g8/pkg/g8/parser"
	"mercator-hq/g8/pkg/g8/props"
	"mercator-hq/g8/pkg/g8/render"
	"mercator-hq/g8/pkg/scaffold"
)

// named is implemented by *os.File and other readers that know their path.
type named interface {
	Name() string
}

// ParseProperties builds a property set from property text (string, []byte
// or io.Reader), a map, or an existing *props.Set which is returned as is.
// Readers are not closed.
func ParseProperties(src any) (*props.Set, error) {
	switch v := src.(type) {
	case *props.Set:
		if v == nil {
			return nil, inputError("properties", src)
		}
		return v, nil
	case string:
		return props.Parse(v)
	case []byte:
		return props.Parse(string(v))
	case map[string]string:
		return props.FromMap(v), nil
	case map[string]any:
		m := make(map[string]string, len(v))
		for k, val := range v {
			m[k] = stringify(val)
		}
		return props.FromMap(m), nil
	case io.Reader:
		text, source, err := readAll(v)
		if err != nil {
			return nil, err
		}
		return props.NewParser(props.WithSource(source)).Parse(text)
	}
	return nil, inputError("properties", src)
}

// ParseTemplate parses template text (string, []byte or io.Reader). An
// already parsed *ast.Sequence is returned as is. Readers are not closed.
func ParseTemplate(src any) (*ast.Sequence, error) {
	seq, _, err := parseTemplate(src)
	return seq, err
}

// parseTemplate also returns the source text, when there is one, so that
// render errors can quote it.
func parseTemplate(src any) (*ast.Sequence, string, error) {
	switch v := src.(type) {
	case *ast.Sequence:
		if v == nil {
			return nil, "", inputError("template", src)
		}
		return v, "", nil
	case string:
		seq, err := parser.Parse(v)
		return seq, v, err
	case []byte:
		text := string(v)
		seq, err := parser.Parse(text)
		return seq, text, err
	case io.Reader:
		text, source, err := readAll(v)
		if err != nil {
			return nil, "", err
		}
		seq, err := parser.NewParser(parser.WithSource(source)).Parse(text)
		return seq, text, err
	}
	return nil, "", inputError("template", src)
}

// Render parses template and properties as needed and renders the template.
func Render(template, properties any) (string, error) {
	set, err := ParseProperties(properties)
	if err != nil {
		return "", err
	}
	seq, text, err := parseTemplate(template)
	if err != nil {
		return "", err
	}

	out, err := render.New(set).Exec(seq)
	if err != nil {
		var gerr *g8errors.Error
		if text != "" && errors.As(err, &gerr) {
			g8errors.AddContextToError(gerr, text)
		}
		return "", err
	}
	return out, nil
}

// RenderDirectory renders every file under input into output, which must not
// exist yet. See package scaffold for the details.
func RenderDirectory(ctx context.Context, properties any, input, output string, opts ...scaffold.Option) (*scaffold.Result, error) {
	set, err := ParseProperties(properties)
	if err != nil {
		return nil, err
	}
	return scaffold.NewRenderer(opts...).Render(ctx, set, input, output)
}

func readAll(r io.Reader) (string, string, error) {
	source := ast.DefaultSource
	if n, ok := r.(named); ok && n.Name() != "" {
		source = n.Name()
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return "", source, g8errors.Wrap(g8errors.ErrorTypeInput, err, "reading %s", source)
	}
	return string(data), source, nil
}

func stringify(v any) string {
	if v == nil {
		return ""
	}
	return fmt.Sprint(v)
}

func inputError(kind string, src any) error {
	return &g8errors.Error{
		Type:    g8errors.ErrorTypeInput,
		Message: fmt.Sprintf("unsupported %s input of type %T", kind, src),
	}
}
