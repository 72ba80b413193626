package format

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFormatters(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"upper", "Project name", "PROJECT NAME"},
		{"uppercase", "straße", "STRASSE"},
		{"lower", "Project NAME", "project name"},
		{"lowercase", "ÀÉ", "àé"},
		{"cap", "hELLO world", "Hello world"},
		{"capitalize", "élan", "Élan"},
		{"decap", "Hello World", "hello world"},
		{"decapitalize", "ABC", "abc"},
		{"start", "project  name\tfoo", "Project Name Foo"},
		{"start-case", "hELLO wORLD", "Hello World"},
		{"word", "foo-bar_baz.qux!", "foobar_bazqux"},
		{"word-only", "a b", "ab"},
		{"space", "foo--bar_baz.qux", "foo bar baz qux"},
		{"word-space", "a!b", "a b"},
		{"Camel", "project name", "ProjectName"},
		{"upper-camel", "my-great project", "MygreatProject"},
		{"camel", "Project Name", "projectname"},
		{"lower-camel", "a b", "ab"},
		{"hyphen", "a b\tc", "a-b-c"},
		{"hyphenate", "a  b", "a--b"},
		{"norm", "Project Name", "project-name"},
		{"normalize", "A B", "a-b"},
		{"snake", "com.foo bar", "com_foo_bar"},
		{"snake-case", "a.b", "a_b"},
		{"package", "com foo bar", "com.foo.bar"},
		{"package-naming", "a b", "a.b"},
		{"packaged", "com.foo.bar", "com/foo/bar"},
		{"package-dir", "a.b", "a/b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, ok := Lookup(tt.name)
			if !ok {
				t.Fatalf("Lookup(%q) not found", tt.name)
			}
			if got := f(tt.input); got != tt.want {
				t.Errorf("%s(%q) = %q, want %q", tt.name, tt.input, got, tt.want)
			}
		})
	}
}

func TestRandom(t *testing.T) {
	for _, name := range []string{"random", "generate-random"} {
		f, _ := Lookup(name)
		got := f("ignored")
		if len(got) != RandomLength {
			t.Fatalf("%s length = %d, want %d", name, len(got), RandomLength)
		}
		seen := make(map[rune]bool)
		for _, r := range got {
			if !strings.ContainsRune(alphabet, r) {
				t.Errorf("%s produced non-letter %q", name, r)
			}
			if seen[r] {
				t.Errorf("%s repeated letter %q", name, r)
			}
			seen[r] = true
		}
	}
}

func TestLookupIsCaseSensitive(t *testing.T) {
	upper, _ := Lookup("Camel")
	lower, _ := Lookup("camel")
	if upper("a b") == lower("a b") {
		t.Error("Camel and camel should differ")
	}
	if _, ok := Lookup("UPPER"); ok {
		t.Error("Lookup(UPPER) should fail")
	}
}

func TestNames(t *testing.T) {
	names := Names()
	if len(names) != 30 {
		t.Errorf("len(Names()) = %d, want 30", len(names))
	}
	if names[0] != "Camel" {
		t.Errorf("Names()[0] = %q, want sorted order", names[0])
	}
}

func TestSplit(t *testing.T) {
	got := Split(" upper, ,snake ,")
	if diff := cmp.Diff([]string{"upper", "snake"}, got); diff != "" {
		t.Errorf("Split() mismatch (-want +got):\n%s", diff)
	}
	if Split("") != nil {
		t.Error("Split(\"\") should be empty")
	}
}

func TestApply(t *testing.T) {
	got, err := Apply("a b", "upper,snake")
	if err != nil || got != "A_B" {
		t.Errorf("Apply() = %q, %v; want %q", got, err, "A_B")
	}

	got, err = Apply("com.foo", "packaged, upper")
	if err != nil || got != "COM/FOO" {
		t.Errorf("Apply() = %q, %v", got, err)
	}

	_, err = Apply("x", "upper,nope")
	var unknown *UnknownFormatterError
	if !errors.As(err, &unknown) || unknown.Name != "nope" {
		t.Errorf("Apply() error = %v, want unknown formatter nope", err)
	}
}
