package buffer

import (
	"io"
	"log/slog"

	"github.com/dshills/textcore/internal/hook"
	"github.com/dshills/textcore/internal/option"
)

// Option is a functional option for configuring a Buffer.
type Option func(*Buffer)

// WithLogger sets the logger used for history and window lifecycle records.
func WithLogger(logger *slog.Logger) Option {
	return func(b *Buffer) {
		if logger != nil {
			b.logger = logger
		}
	}
}

// WithMaxUndoGroups bounds the number of undo groups kept in history.
// The oldest groups are discarded first. Zero means unlimited.
func WithMaxUndoGroups(n int) Option {
	return func(b *Buffer) {
		if n >= 0 {
			b.maxUndoGroups = n
		}
	}
}

// WithParentOptions makes the buffer's option scope inherit from parent,
// typically the global scope.
func WithParentOptions(parent *option.Manager) Option {
	return func(b *Buffer) {
		b.parentOptions = parent
	}
}

// WithParentHooks makes the buffer's hook scope inherit from parent,
// typically the global scope.
func WithParentHooks(parent *hook.Manager) Option {
	return func(b *Buffer) {
		b.parentHooks = parent
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
