// g8 renders giter8-style templates.
//
// It renders single templates, scaffolds whole template directories and
// checks templates for syntax errors:
//   - $name$ substitution with formatter chains ($name;format="upper,snake"$)
//   - $if(prop.truthy)$ / $elseif(prop.present)$ / $else$ / $endif$ conditionals
//   - default.properties with defaults that reference earlier properties
//
// Usage:
//
//	# Render a single template
//	g8 render greeting.txt --set name=World
//
//	# Scaffold a project from a template directory
//	g8 new templates/service ./my-service --interactive
//
//	# Re-render whenever the template changes
//	g8 new templates/service ./my-service --watch
//
//	# Check templates for syntax errors
//	g8 check templates/service
//
//	# Show previous directory renders
//	g8 history --limit 10
package main

import "os"

func main() {
	os.Exit(Execute())
}
