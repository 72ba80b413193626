// Package ast defines the abstract syntax tree produced by the template parser.
//
// A template is a Sequence of nodes. There are three node kinds:
//
//   - Literal: raw text copied to the output unchanged
//   - TemplateRef: a $name$ substitution with optional formatter options
//   - Conditional: an $if(prop.helper)$ block with else-if and else branches
//
// Every node records the Location at which it started in the template source
// and a non-owning reference to the Conditional that contains it (nil at the
// top level). Ownership only flows downwards: a Sequence owns its nodes and a
// Conditional owns its branch sequences.
//
// # Cleanup
//
// Block keywords are usually written on lines of their own:
//
//	$if(x.truthy)$
//	yes
//	$endif$
//
// Sequence.Clean strips the single line break that follows a block keyword so
// that the rendered output does not contain blank lines where the keywords
// stood. The parser calls Clean before returning a tree; calling it again is a
// no-op.
//
// # Traversal
//
// Walk visits every node depth-first in source order:
//
//	err := ast.Walk(seq, myVisitor)
package ast
