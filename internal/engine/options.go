package engine

import (
	"io"
	"log/slog"

	"github.com/dshills/textcore/internal/engine/tracking"
)

// Default configuration values.
const (
	DefaultMaxUndoGroups = 1000
	DefaultMaxChanges    = tracking.DefaultMaxChanges
)

// MaxUndoGroupsOption is the global option that overrides the undo limit
// of newly created buffers.
const MaxUndoGroupsOption = "undo.max_groups"

// Option configures an Engine during creation.
type Option func(*Engine)

// WithLogger sets the logger handed to every buffer.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithMaxUndoGroups sets the default undo limit of new buffers.
// Zero means unlimited.
func WithMaxUndoGroups(n int) Option {
	return func(e *Engine) {
		if n >= 0 {
			e.maxUndoGroups = n
		}
	}
}

// WithMaxChanges sets the journal capacity of each buffer's tracker.
func WithMaxChanges(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.maxChanges = n
		}
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
