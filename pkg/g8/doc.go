// Package g8 parses and renders giter8-style templates.
//
// A template mixes literal text with $name$ substitutions, formatter chains
// and $if(...)$ blocks driven by an ordered set of string properties.
//
// # Architecture
//
// The package is organized into subpackages:
//
//   - ast: nodes produced by the template parser and the cleanup pass
//   - props: property sets and the key=value property-text format
//   - parser: the template-text state machine
//   - format: the named formatter table
//   - render: evaluation of a tree against a property set
//   - errors: error types with location, context and suggestions
//
// This package is a thin facade accepting the input kinds callers usually
// hold (strings, byte slices, readers, maps) and dispatching to the
// subpackages.
//
// # Basic Usage
//
//	out, err := g8.Render("Hello, $name;format=\"upper\"$!", map[string]string{
//	    "name": "world",
//	})
//	// out == "Hello, WORLD!"
//
// Render a directory of templates:
//
//	res, err := g8.RenderDirectory(ctx, "name=demo\n", "template/", "out/")
package g8
