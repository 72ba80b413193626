// Package errors provides the error taxonomy shared by the property parser,
// the template parser, the renderer and the directory renderer.
//
// Every failure is reported as an *Error carrying a Type (which stage failed),
// an optional Code (what exactly went wrong while parsing), the offending
// token, and the source Location. Errors can also carry an excerpt of the
// source text around the failure and a suggested fix.
//
// # Matching
//
// Errors support errors.Is against the exported sentinels, which match on
// Type or Code:
//
//	if errors.Is(err, g8errors.ErrPropertyNotFound) { ... }
//	if errors.Is(err, g8errors.ErrUnexpectedKeyword) { ... }
//
// # Error Format
//
//	[template_parse] Unexpected keyword `elseif'
//	  --> unknown:5:7
//	  |
//	   4 | $else$
//	-> 5 | $elseif(bar.truthy)$
//	     |        ^
//	  |
//
// # Accumulating Errors
//
// ErrorList collects errors from several sources, for example when checking
// every template in a directory.
package errors
