package buffer

import (
	"slices"

	"github.com/google/uuid"

	"github.com/dshills/textcore/internal/hook"
	"github.com/dshills/textcore/internal/option"
)

// Window is an opaque handle for a view of a buffer. The buffer owns its
// windows; a window's option and hook scopes fall back to the buffer's.
type Window struct {
	id      uuid.UUID
	buffer  *Buffer
	options *option.Manager
	hooks   *hook.Manager
}

// ID returns the window's unique identifier.
func (w *Window) ID() uuid.UUID {
	return w.id
}

// Buffer returns the buffer the window shows, or nil once the window was
// deleted or its buffer closed.
func (w *Window) Buffer() *Buffer {
	return w.buffer
}

// Options returns the window's option scope.
func (w *Window) Options() *option.Manager {
	return w.options
}

// Hooks returns the window's hook scope.
func (w *Window) Hooks() *hook.Manager {
	return w.hooks
}

func (w *Window) release() {
	w.options.Detach()
	w.buffer = nil
}

// NewWindow creates a window on the buffer.
func (b *Buffer) NewWindow() (*Window, error) {
	if b.closed {
		return nil, ErrClosed
	}
	w := &Window{
		id:      uuid.New(),
		buffer:  b,
		options: option.New(b.options),
		hooks:   hook.New(b.hooks, hook.WithLogger(b.logger)),
	}
	b.windows = append(b.windows, w)
	b.logger.Debug("window created", "buffer", b.name, "window", w.id.String())
	return w, nil
}

// DeleteWindow destroys a window of the buffer.
func (b *Buffer) DeleteWindow(w *Window) error {
	i := slices.Index(b.windows, w)
	if i < 0 {
		return ErrUnknownWindow
	}
	b.windows = slices.Delete(b.windows, i, i+1)
	w.release()
	b.logger.Debug("window deleted", "buffer", b.name, "window", w.id.String())
	return nil
}

// Windows returns the buffer's windows in creation order.
func (b *Buffer) Windows() []*Window {
	return slices.Clone(b.windows)
}
