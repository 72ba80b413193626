// Package props implements property sets and the property-text format.
//
// A Set is an ordered collection of key/value string pairs with unique keys.
// Sets are built from the line-oriented property format:
//
//	# comment
//	name = Project Name
//	organization=com.foo
//
// Each line holds key=value. Keys and values are trimmed; a key must start
// with a letter. Values run to the end of the line and are never evaluated.
//
// ParsePairs returns every pair in input order, including duplicate keys.
// Parse builds a Set from them in which the first occurrence of a key wins.
package props
