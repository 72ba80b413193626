// Package prompt resolves the properties of a template from its defaults.
//
// Default values may reference earlier properties, so
//
//	name=My Project
//	package=com.example.$name;format="normalize"$
//
// resolves package to "com.example.my-project". Overrides replace a default
// before later defaults are rendered. When a Prompter is supplied, each
// property is offered to the user with its rendered default.
package prompt
