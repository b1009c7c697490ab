// Package engine owns the buffers of an editor session.
//
// An [Engine] is the manager a [buffer.Buffer] expects above it: it creates
// buffers under unique names, parents their option and hook scopes on a
// global scope, and keeps a [tracking.Tracker] journaling each buffer's
// changes. Closing a buffer through the engine releases all of it.
//
//	e := engine.New(engine.WithLogger(logger))
//	if err := e.LoadOptions(strings.NewReader("tabstop = 4")); err != nil {
//	    return err
//	}
//	buf, err := e.Create("*scratch*", buffer.FlagNone, buffer.DefaultContent)
//	if err != nil {
//	    return err
//	}
//	defer e.Close(buf.Name())
//
// # Hooks
//
// The engine runs two hooks through the buffer's hook scope, so handlers
// registered globally and on the buffer both see them:
//
//   - BufCreate, after the buffer is registered
//   - BufClose, before the buffer is destroyed
//
// The hook parameter is the buffer name.
//
// # Thread Safety
//
// The buffer registry is safe for concurrent use. Each buffer is still a
// single-writer structure and must be edited from one goroutine at a time.
package engine
