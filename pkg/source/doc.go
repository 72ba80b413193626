// Package source resolves the template argument of "g8 new" to a local
// directory.
//
// Local paths are used as they are. Git references are shallow-cloned with
// go-git into a temporary directory:
//
//	https://github.com/org/service.g8.git
//	git@github.com:org/service.g8.git
//	ssh://git@host/org/service.g8.git
//	file:///srv/templates/service.git
//	gh:org/service.g8          (shorthand for https://github.com/org/service.g8.git)
//
// When the clone contains src/main/g8, that directory is the template root,
// following the giter8 repository layout. The clone's .git directory is
// removed so it is never rendered.
package source
