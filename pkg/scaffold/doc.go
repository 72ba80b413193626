// Package scaffold renders a template directory into a new output directory.
//
// Every regular file below the input directory, except the defaults file
// (default.properties), is processed in lexical order of its slash-separated
// relative path:
//
//   - The destination name is the relative path rendered as a template. When
//     the name does not parse or render, the literal path is used instead.
//   - Files matching a glob listed in the verbatim property are copied byte
//     for byte. A '*' in these globs also matches '/'.
//   - Files that look binary (a NUL byte near the start) are copied as well.
//   - Everything else is parsed and rendered against the property set.
//
// Writes are atomic and keep the source file's permission bits. A failure
// aborts the run and leaves already written files in place.
package scaffold
