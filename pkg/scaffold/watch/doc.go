// Package watch re-renders a template directory when its files change.
//
// A Watcher observes the input tree with fsnotify and invokes a callback
// after a quiet period. Rerender renders into a staging directory next to
// the output and swaps it into place only when the render succeeds, so a
// broken template never destroys the last good output.
package watch
