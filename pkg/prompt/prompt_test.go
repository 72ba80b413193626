package prompt

import (
	"context"
	"errors"
	"fmt"
	"testing"

	g8errors "mercator-hq/g8/pkg/g8/errors"
	"mercator-hq/g8/pkg/g8/props"

	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/google/go-cmp/cmp"
)

// scriptedPrompter answers from a map and records the questions it saw.
type scriptedPrompter struct {
	answers map[string]string
	asked   []Question
	err     error
}

func (s *scriptedPrompter) Ask(_ context.Context, q Question) (string, error) {
	s.asked = append(s.asked, q)
	if s.err != nil {
		return "", s.err
	}
	return s.answers[q.Key], nil
}

func mustParse(t *testing.T, text string) *props.Set {
	t.Helper()
	set, err := props.Parse(text)
	if err != nil {
		t.Fatalf("props.Parse() error = %v", err)
	}
	return set
}

const defaultsText = `
name=My Project
package=com.example.$name;format="normalize"$
verbatim=*.png $skip$
description=Project $name$
`

func TestResolve_ChainsDefaults(t *testing.T) {
	got, err := Resolve(context.Background(), mustParse(t, defaultsText), nil, nil)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}

	want := map[string]string{
		"name":        "My Project",
		"package":     "com.example.my-project",
		"verbatim":    "*.png $skip$",
		"description": "Project My Project",
	}
	if diff := cmp.Diff(want, got.ToMap()); diff != "" {
		t.Errorf("Resolve() mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"name", "package", "verbatim", "description"}, got.Keys()); diff != "" {
		t.Errorf("key order mismatch (-want +got):\n%s", diff)
	}
}

func TestResolve_OverridesFeedLaterDefaults(t *testing.T) {
	overrides := props.NewSet(
		props.NewPair("name", "Other App"),
		props.NewPair("extra", "1"),
	)
	got, err := Resolve(context.Background(), mustParse(t, defaultsText), overrides, nil)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}

	if v, _ := got.Find("package"); v != "com.example.other-app" {
		t.Errorf("package = %q", v)
	}
	if diff := cmp.Diff([]string{"name", "package", "verbatim", "description", "extra"}, got.Keys()); diff != "" {
		t.Errorf("key order mismatch (-want +got):\n%s", diff)
	}
}

func TestResolve_Prompting(t *testing.T) {
	p := &scriptedPrompter{answers: map[string]string{"name": "Asked"}}
	got, err := Resolve(context.Background(), mustParse(t, defaultsText), nil, p)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}

	wantAsked := []Question{
		{Key: "name", Default: "My Project"},
		{Key: "package", Default: "com.example.asked"},
		{Key: "description", Default: "Project Asked"},
	}
	if diff := cmp.Diff(wantAsked, p.asked); diff != "" {
		t.Errorf("questions mismatch (-want +got):\n%s", diff)
	}
	if v, _ := got.Find("description"); v != "Project Asked" {
		t.Errorf("description = %q", v)
	}
}

func TestResolve_OverriddenKeysAreNotPrompted(t *testing.T) {
	p := &scriptedPrompter{}
	overrides := props.NewSet(props.NewPair("name", "Fixed"))
	if _, err := Resolve(context.Background(), mustParse(t, "name=x\nother=y"), overrides, p); err != nil {
		t.Fatal(err)
	}
	if len(p.asked) != 1 || p.asked[0].Key != "other" {
		t.Errorf("asked = %+v", p.asked)
	}
}

func TestResolve_Errors(t *testing.T) {
	ctx := context.Background()

	_, err := Resolve(ctx, mustParse(t, "a=$missing$"), nil, nil)
	if !errors.Is(err, g8errors.ErrPropertyNotFound) {
		t.Errorf("expected property-not-found, got %v", err)
	}

	_, err = Resolve(ctx, mustParse(t, "a=$unterminated"), nil, nil)
	if !errors.Is(err, g8errors.ErrTemplateParse) {
		t.Errorf("expected template-parse error, got %v", err)
	}

	p := &scriptedPrompter{err: ErrAborted}
	if _, err := Resolve(ctx, mustParse(t, "a=b"), nil, p); !errors.Is(err, ErrAborted) {
		t.Errorf("expected ErrAborted, got %v", err)
	}

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	if _, err := Resolve(cancelled, mustParse(t, "a=b"), nil, nil); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestResolve_NilSets(t *testing.T) {
	got, err := Resolve(context.Background(), nil, nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	if got.Len() != 0 {
		t.Errorf("expected empty set, got %v", got)
	}
}

func TestTranslateSurveyErr(t *testing.T) {
	if err := translateSurveyErr(terminal.InterruptErr); !errors.Is(err, ErrAborted) {
		t.Errorf("interrupt = %v, want ErrAborted", err)
	}
	other := fmt.Errorf("eof")
	if err := translateSurveyErr(other); err != other {
		t.Errorf("other error = %v", err)
	}
}
