package prompt

import (
	"context"
	"errors"

	"mercator-hq/g8/pkg/config"
	"mercator-hq/g8/pkg/g8/parser"
	"mercator-hq/g8/pkg/g8/props"
	"mercator-hq/g8/pkg/g8/render"
)

// ErrAborted is returned when the user interrupts a prompt.
var ErrAborted = errors.New("prompt aborted")

// Question is one property offered to the user.
type Question struct {
	Key     string
	Default string
}

// Prompter asks the user for property values. An empty answer keeps the
// default.
type Prompter interface {
	Ask(ctx context.Context, q Question) (string, error)
}

// Resolver resolves template properties.
type Resolver struct {
	// Prompter is asked for every property except the verbatim one. Nil
	// disables prompting.
	Prompter Prompter

	// VerbatimProperty is copied unrendered and never prompted for.
	VerbatimProperty string
}

// Resolve resolves defaults with the default verbatim property name.
func Resolve(ctx context.Context, defaults, overrides *props.Set, p Prompter) (*props.Set, error) {
	r := Resolver{Prompter: p, VerbatimProperty: config.DefaultVerbatimProperty}
	return r.Resolve(ctx, defaults, overrides)
}

// Resolve walks defaults in order. Each value is taken from overrides when
// present, otherwise rendered as a template against the properties resolved
// so far and, when prompting, confirmed by the user. Overrides for keys that
// have no default are appended at the end. Either set may be nil.
func (r Resolver) Resolve(ctx context.Context, defaults, overrides *props.Set) (*props.Set, error) {
	if defaults == nil {
		defaults = props.NewSet()
	}
	if overrides == nil {
		overrides = props.NewSet()
	}

	resolved := props.NewSet()
	for key, value := range defaults.All() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if v, ok := overrides.Find(key); ok {
			resolved.Put(key, v)
			continue
		}
		if key == r.VerbatimProperty {
			resolved.Put(key, value)
			continue
		}

		rendered, err := renderDefault(key, value, resolved)
		if err != nil {
			return nil, err
		}
		if r.Prompter != nil {
			answer, err := r.Prompter.Ask(ctx, Question{Key: key, Default: rendered})
			if err != nil {
				return nil, err
			}
			if answer != "" {
				rendered = answer
			}
		}
		resolved.Put(key, rendered)
	}

	for key, value := range overrides.All() {
		if !resolved.Has(key) {
			resolved.Put(key, value)
		}
	}
	return resolved, nil
}

func renderDefault(key, value string, resolved *props.Set) (string, error) {
	seq, err := parser.NewParser(parser.WithSource(key)).Parse(value)
	if err != nil {
		return "", err
	}
	return render.New(resolved).Exec(seq)
}
