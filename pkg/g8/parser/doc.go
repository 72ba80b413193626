// Package parser converts template text into a cleaned ast.Sequence.
//
// The parser is a single-pass character state machine. It keeps one rune of
// lookbehind for escapes and an explicit stack of branch frames for nested
// conditionals, so it never backtracks and never recurses.
//
// # Syntax
//
//	literal text      copied verbatim; \$ produces a literal dollar
//	$name$            substitution; names match [A-Za-z][A-Za-z0-9_-]*
//	$name__upper$     substitution with a formatter chain
//	$name;format="upper,snake", other="x"$
//	                  substitution with options; \" inside a value is a quote
//	$if(prop.truthy)$ ... $elseif(prop.present)$ ... $else$ ... $endif$
//
// # Usage
//
//	p := parser.NewParser(parser.WithSource("build.sbt"))
//	seq, err := p.Parse(text)
//
// Errors are *errors.Error values of type template_parse carrying the source
// location of the offending character and an excerpt of the surrounding text.
package parser
