package errors

import (
	stderrors "errors"
	"fmt"
	"io/fs"
	"strings"
	"testing"

	"mercator-hq/g8/pkg/g8/ast"
)

func TestErrorIsMatchesTypeAndCode(t *testing.T) {
	err := New(ErrorTypeTemplateParse, CodeUnexpectedKeyword, "Unexpected keyword `elseif'", ast.Location{Source: "unknown", Line: 5, Column: 7})
	wrapped := fmt.Errorf("rendering: %w", err)

	if !stderrors.Is(wrapped, ErrTemplateParse) {
		t.Error("expected match on ErrTemplateParse")
	}
	if !stderrors.Is(wrapped, ErrUnexpectedKeyword) {
		t.Error("expected match on ErrUnexpectedKeyword")
	}
	if stderrors.Is(wrapped, ErrUnexpectedToken) {
		t.Error("unexpected match on ErrUnexpectedToken")
	}
	if stderrors.Is(wrapped, ErrPropertyParse) {
		t.Error("unexpected match on ErrPropertyParse")
	}
	if stderrors.Is(err, New(ErrorTypeTemplateParse, "", "other", ast.Location{})) {
		t.Error("non-sentinel errors must not match")
	}

	var target *Error
	if !stderrors.As(wrapped, &target) {
		t.Fatal("errors.As failed")
	}
	if got := target.Location.String(); got != "unknown:5:7" {
		t.Errorf("Location = %q, want %q", got, "unknown:5:7")
	}
}

func TestWrapUnwraps(t *testing.T) {
	err := Wrap(ErrorTypeFilesystem, fs.ErrNotExist, "input directory %q", "tmpl")
	if !stderrors.Is(err, fs.ErrNotExist) {
		t.Error("Wrap should keep the cause reachable")
	}
	if !stderrors.Is(err, ErrFilesystem) {
		t.Error("Wrap should match ErrFilesystem")
	}
	if !strings.Contains(err.Error(), `input directory "tmpl": file does not exist`) {
		t.Errorf("Error() = %q", err.Error())
	}
}

func TestErrorFormat(t *testing.T) {
	err := &Error{
		Type:       ErrorTypeFormatterNotFound,
		Message:    "Formatter `uper' not found",
		Location:   ast.Location{Source: "unknown", Line: 1, Column: 0},
		Suggestion: "Did you mean 'upper'?",
	}
	got := err.Error()
	for _, want := range []string{
		"[formatter_not_found] Formatter `uper' not found\n",
		"  --> unknown:1:0\n",
		"  = suggestion: Did you mean 'upper'?\n",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("Error() = %q, missing %q", got, want)
		}
	}
	if got, want := err.Summary(), "Formatter `uper' not found at unknown:1:0"; got != want {
		t.Errorf("Summary() = %q, want %q", got, want)
	}
}

func TestExtractContext(t *testing.T) {
	source := "one\ntwo\nthree $x\nfour\nfive\nsix"
	got := ExtractContext(source, ast.Location{Source: "unknown", Line: 3, Column: 6}, 1)
	want := "   2 | two\n" +
		"-> 3 | three $x\n" +
		"     |       ^\n" +
		"   4 | four\n"
	if got != want {
		t.Errorf("ExtractContext() =\n%s\nwant\n%s", got, want)
	}

	if got := ExtractContext(source, ast.Location{Line: 40}, 1); got != "" {
		t.Errorf("out of range location produced context %q", got)
	}
}

func TestWithContextKeepsExisting(t *testing.T) {
	err := &Error{Location: ast.Location{Line: 1}, Context: "kept\n"}
	AddContextToError(err, "other")
	if err.Context != "kept\n" {
		t.Errorf("Context = %q", err.Context)
	}
}

func TestSuggestName(t *testing.T) {
	tests := []struct {
		unknown    string
		candidates []string
		want       string
	}{
		{"uper", []string{"upper", "lower"}, "Did you mean 'upper'?"},
		{"nmae", []string{"name", "organization"}, "Did you mean 'name'?"},
		{"zzzzzz", []string{"truthy", "present"}, "Valid helpers: truthy, present"},
		{"x", nil, ""},
	}
	for _, tt := range tests {
		if got := SuggestName(tt.unknown, tt.candidates, "helpers"); got != tt.want {
			t.Errorf("SuggestName(%q) = %q, want %q", tt.unknown, got, tt.want)
		}
	}
	if got := SuggestHelper("truthi"); got != "Did you mean 'truthy'?" {
		t.Errorf("SuggestHelper() = %q", got)
	}
}

func TestErrorList(t *testing.T) {
	list := NewErrorList()
	if list.ToError() != nil {
		t.Error("empty list should convert to nil")
	}
	list.AddError(ErrorTypeTemplateParse, "bad", ast.Location{Line: 1})
	list.Add(New(ErrorTypePropertyParse, CodeMalformedKey, "bad key", ast.Location{Line: 2}))

	if list.Count() != 2 {
		t.Errorf("Count() = %d, want 2", list.Count())
	}
	if !list.HasErrorType(ErrorTypePropertyParse) {
		t.Error("HasErrorType(property_parse) = false")
	}
	if n := len(list.ByType(ErrorTypeFilesystem)); n != 0 {
		t.Errorf("ByType(filesystem) = %d errors", n)
	}
	if !strings.HasPrefix(list.Error(), "Found 2 error(s):") {
		t.Errorf("Error() = %q", list.Error())
	}
}

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"abc", "", 3},
		{"kitten", "sitting", 3},
		{"décap", "decap", 1},
	}
	for _, tt := range tests {
		if got := levenshteinDistance(tt.a, tt.b); got != tt.want {
			t.Errorf("levenshteinDistance(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}
