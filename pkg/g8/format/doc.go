// Package format implements the named string formatters applied by
// substitutions such as $name;format="upper,snake"$.
//
// The formatter table is fixed at build time. Every formatter is available
// under a short and a long name:
//
//	upper, uppercase        lower, lowercase
//	cap, capitalize         decap, decapitalize
//	start, start-case       word, word-only
//	space, word-space       Camel, upper-camel
//	camel, lower-camel      hyphen, hyphenate
//	norm, normalize         snake, snake-case
//	package, package-naming packaged, package-dir
//	random, generate-random
//
// Chains are applied left to right:
//
//	out, err := format.Apply("a b", "upper,snake") // "A_B"
package format
