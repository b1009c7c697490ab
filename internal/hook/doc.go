// Package hook provides named-event dispatch with scoped registries.
//
// A Manager holds handlers keyed by hook name and tagged with a group so a
// component can remove everything it registered at once. Scopes chain like
// option scopes: running a hook in a window scope runs the buffer's and the
// global handlers first.
//
// Handlers are Go functions or Lua chunks built with LuaFunc.
package hook
