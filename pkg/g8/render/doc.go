// Package render evaluates a parsed template against a property set.
//
// The Executor walks a cleaned ast.Sequence in order: literals are copied,
// substitutions are looked up and passed through their formatter chain, and
// conditionals render the first branch whose condition holds.
//
//	out, err := render.New(set).Exec(seq)
//
// Rendering never mutates the tree or the set, so one tree can be rendered
// concurrently against different sets.
package render
