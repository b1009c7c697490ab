// Package option provides scoped option storage.
//
// A Manager maps option names to values and falls back to its parent for
// names it does not set, so scopes chain from the global scope through
// buffers down to windows. Names are dot-separated paths such as
// "indent.width".
//
// Watchers are told about changes of the effective value of an option,
// including changes made in a parent scope that the watched scope does not
// override.
package option
