package props

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	g8errors "mercator-hq/g8/pkg/g8/errors"
)

const sample = `# comment line
name=Project Name
nameUpperSnake=$name;format="upper,snake"$
organization = com.foo
  dashed-variable=value
empty=
`

func TestParse(t *testing.T) {
	set, err := Parse(sample)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	want := map[string]string{
		"name":            "Project Name",
		"nameUpperSnake":  `$name;format="upper,snake"$`,
		"organization":    "com.foo",
		"dashed-variable": "value",
		"empty":           "",
	}
	if diff := cmp.Diff(want, set.ToMap()); diff != "" {
		t.Errorf("Parse() mismatch (-want +got):\n%s", diff)
	}

	wantKeys := []string{"name", "nameUpperSnake", "organization", "dashed-variable", "empty"}
	if diff := cmp.Diff(wantKeys, set.Keys()); diff != "" {
		t.Errorf("key order mismatch (-want +got):\n%s", diff)
	}
}

func TestParseTrailingValueWithoutNewline(t *testing.T) {
	set, err := Parse("a=1\r\nb = two words ")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if got := set.Fetch("a", ""); got != "1" {
		t.Errorf("a = %q, want %q", got, "1")
	}
	if got := set.Fetch("b", ""); got != "two words" {
		t.Errorf("b = %q, want %q", got, "two words")
	}
}

func TestParseDuplicateKeys(t *testing.T) {
	text := "key=first\nother=x\nkey=second\n"

	pairs, err := NewParser().ParsePairs(text)
	if err != nil {
		t.Fatalf("ParsePairs() error = %v", err)
	}
	var got []string
	for _, p := range pairs {
		got = append(got, p.Name()+"="+p.Value)
	}
	want := []string{"key=first", "other=x", "key=second"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ParsePairs() mismatch (-want +got):\n%s", diff)
	}

	set, err := Parse(text)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if v := set.Fetch("key", ""); v != "first" {
		t.Errorf("key = %q, want first occurrence", v)
	}
	if set.Len() != 2 {
		t.Errorf("Len() = %d, want 2", set.Len())
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		sentinel error
		loc      string
	}{
		{"digit first", "1abc=x", g8errors.ErrMalformedKey, "props:1:0"},
		{"equals first", "a=1\n=2", g8errors.ErrMalformedKey, "props:2:0"},
		{"eof in key", "a=1\nabc", g8errors.ErrUnexpectedEOF, "props:2:3"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewParser(WithSource("props")).Parse(tt.text)
			if !errors.Is(err, tt.sentinel) {
				t.Fatalf("Parse() error = %v, want %v", err, tt.sentinel)
			}
			if !errors.Is(err, g8errors.ErrPropertyParse) {
				t.Errorf("error type = %v, want property_parse", err)
			}
			var perr *g8errors.Error
			errors.As(err, &perr)
			if got := perr.Location.String(); got != tt.loc {
				t.Errorf("Location = %q, want %q", got, tt.loc)
			}
		})
	}
}

func TestParseKeySpansLineBreak(t *testing.T) {
	pairs, err := NewParser().ParsePairs("foo\nbar=baz\n")
	if err != nil {
		t.Fatalf("ParsePairs() error = %v", err)
	}
	if len(pairs) != 1 {
		t.Fatalf("ParsePairs() = %d pairs, want 1", len(pairs))
	}
	if got := pairs[0].Name(); got != "foo\nbar" {
		t.Errorf("key = %q, want %q", got, "foo\nbar")
	}
	if pairs[0].Value != "baz" {
		t.Errorf("value = %q, want baz", pairs[0].Value)
	}
}

func TestParseNeverEvaluatesTemplates(t *testing.T) {
	set, err := Parse("a=$if(x.truthy)$\n")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if got := set.Fetch("a", ""); got != "$if(x.truthy)$" {
		t.Errorf("a = %q", got)
	}
}

func TestSetFetch(t *testing.T) {
	set := NewSet(NewPair("empty", ""), NewPair("name", "x"))
	if got := set.Fetch("empty", "default"); got != "" {
		t.Errorf("Fetch(empty) = %q, want empty value", got)
	}
	if got := set.Fetch("missing", "default"); got != "default" {
		t.Errorf("Fetch(missing) = %q, want default", got)
	}
	if !set.Has("name") || set.Has("missing") {
		t.Error("Has() mismatch")
	}
}

func TestSetMerge(t *testing.T) {
	a := NewSet(NewPair("x", "1"), NewPair("y", "2"))
	b := NewSet(NewPair("z", "3"), NewPair("x", "9"), NewPair("w", "4"))
	a.Merge(b)

	want := "x=9\ny=2\nz=3\nw=4\n"
	if got := a.String(); got != want {
		t.Errorf("Merge() = %q, want %q", got, want)
	}
	if b.Len() != 3 {
		t.Errorf("Merge() modified its argument")
	}

	a.Put("y", "7")
	a.Put("v", "5")
	if got := a.String(); got != "x=9\ny=7\nz=3\nw=4\nv=5\n" {
		t.Errorf("Put() = %q", got)
	}
}

func TestFromMapSorted(t *testing.T) {
	set := FromMap(map[string]string{"b": "2", "a": "1", "c-d": "3"})
	if diff := cmp.Diff([]string{"a", "b", "c-d"}, set.Keys()); diff != "" {
		t.Errorf("FromMap() order mismatch (-want +got):\n%s", diff)
	}
}

func TestKeyInterning(t *testing.T) {
	if NewKey("name") != NewKey("name") {
		t.Error("identifier keys should compare equal")
	}
	if NewKey("dashed-key") != NewKey("dashed-key") {
		t.Error("raw keys should compare equal")
	}
	if NewKey("dashed-key").String() != "dashed-key" || NewKey("name").String() != "name" {
		t.Error("String() should return the key text")
	}
}

func TestTruthyAndPresent(t *testing.T) {
	for _, v := range []string{"yes", "Y", "TRUE", "y"} {
		if !Truthy(v) {
			t.Errorf("Truthy(%q) = false", v)
		}
	}
	for _, v := range []string{"no", "", "1", "yes "} {
		if Truthy(v) {
			t.Errorf("Truthy(%q) = true", v)
		}
	}
	if Present("  \t") || !Present(" x ") {
		t.Error("Present() mismatch")
	}
}
