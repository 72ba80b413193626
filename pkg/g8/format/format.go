package format

import (
	"fmt"
	"math/rand/v2"
	"regexp"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Func transforms a property value.
type Func func(string) string

var (
	wordOnlyPattern  = regexp.MustCompile(`[^a-zA-Z0-9_]`)
	wordSpacePattern = regexp.MustCompile(`[^a-zA-Z0-9]+`)
	whitespace       = regexp.MustCompile(`\s`)
	snakePattern     = regexp.MustCompile(`[\s.]`)
)

const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

// RandomLength is the length of values produced by the random formatter.
const RandomLength = 40

var formatters = map[string]Func{
	"upper":           Uppercase,
	"uppercase":       Uppercase,
	"lower":           Lowercase,
	"lowercase":       Lowercase,
	"cap":             Capitalize,
	"capitalize":      Capitalize,
	"decap":           Decapitalize,
	"decapitalize":    Decapitalize,
	"start":           StartCase,
	"start-case":      StartCase,
	"word":            WordOnly,
	"word-only":       WordOnly,
	"space":           WordSpace,
	"word-space":      WordSpace,
	"Camel":           UpperCamel,
	"upper-camel":     UpperCamel,
	"camel":           LowerCamel,
	"lower-camel":     LowerCamel,
	"hyphen":          Hyphenate,
	"hyphenate":       Hyphenate,
	"norm":            Normalize,
	"normalize":       Normalize,
	"snake":           SnakeCase,
	"snake-case":      SnakeCase,
	"package":         PackageNaming,
	"package-naming":  PackageNaming,
	"packaged":        PackageDir,
	"package-dir":     PackageDir,
	"random":          Random,
	"generate-random": Random,
}

// Lookup returns the formatter registered under name. Names are case
// sensitive: "Camel" and "camel" are different formatters.
func Lookup(name string) (Func, bool) {
	f, ok := formatters[name]
	return f, ok
}

// Names returns all formatter names in sorted order.
func Names() []string {
	names := make([]string, 0, len(formatters))
	for name := range formatters {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Split breaks a comma-separated chain into trimmed names, skipping empty
// segments.
func Split(chain string) []string {
	var names []string
	for _, part := range strings.Split(chain, ",") {
		if part = strings.TrimSpace(part); part != "" {
			names = append(names, part)
		}
	}
	return names
}

// UnknownFormatterError is returned by Apply for a name missing from the table.
type UnknownFormatterError struct {
	Name string
}

func (e *UnknownFormatterError) Error() string {
	return fmt.Sprintf("formatter `%s' not found", e.Name)
}

// Apply runs every formatter of chain over value, left to right.
func Apply(value, chain string) (string, error) {
	for _, name := range Split(chain) {
		f, ok := Lookup(name)
		if !ok {
			return "", &UnknownFormatterError{Name: name}
		}
		value = f(value)
	}
	return value, nil
}

// Uppercase applies Unicode upper-case mapping.
func Uppercase(s string) string {
	return cases.Upper(language.Und).String(s)
}

// Lowercase applies Unicode lower-case mapping.
func Lowercase(s string) string {
	return cases.Lower(language.Und).String(s)
}

// Capitalize upper-cases the first rune and lower-cases the rest.
func Capitalize(s string) string {
	if s == "" {
		return s
	}
	_, size := utf8.DecodeRuneInString(s)
	return Uppercase(s[:size]) + Lowercase(s[size:])
}

// Decapitalize lower-cases the whole value.
func Decapitalize(s string) string {
	return Lowercase(s)
}

// StartCase capitalizes each whitespace-separated word and joins the words
// with single spaces.
func StartCase(s string) string {
	words := strings.FieldsFunc(s, unicode.IsSpace)
	for i, w := range words {
		words[i] = Capitalize(w)
	}
	return strings.Join(words, " ")
}

// WordOnly removes everything but ASCII letters, digits and underscores.
func WordOnly(s string) string {
	return wordOnlyPattern.ReplaceAllString(s, "")
}

// WordSpace replaces each run of non-alphanumeric characters with a space.
func WordSpace(s string) string {
	return wordSpacePattern.ReplaceAllString(s, " ")
}

// UpperCamel converts "project name" to "ProjectName".
func UpperCamel(s string) string {
	return WordOnly(StartCase(s))
}

// LowerCamel converts "Project Name" to "projectname".
func LowerCamel(s string) string {
	return Decapitalize(UpperCamel(s))
}

// Hyphenate replaces each whitespace character with a hyphen.
func Hyphenate(s string) string {
	return whitespace.ReplaceAllString(s, "-")
}

// Normalize hyphenates and lower-cases.
func Normalize(s string) string {
	return Lowercase(Hyphenate(s))
}

// SnakeCase replaces each whitespace character or dot with an underscore.
func SnakeCase(s string) string {
	return snakePattern.ReplaceAllString(s, "_")
}

// PackageNaming replaces each whitespace character with a dot.
func PackageNaming(s string) string {
	return whitespace.ReplaceAllString(s, ".")
}

// PackageDir replaces each dot with a slash.
func PackageDir(s string) string {
	return strings.ReplaceAll(s, ".", "/")
}

// Random ignores its input and returns RandomLength distinct letters drawn
// from A-Z and a-z.
func Random(string) string {
	perm := rand.Perm(len(alphabet))
	b := make([]byte, RandomLength)
	for i := range b {
		b[i] = alphabet[perm[i]]
	}
	return string(b)
}
