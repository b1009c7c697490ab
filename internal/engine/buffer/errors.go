package buffer

import (
	"errors"

	"github.com/dshills/textcore/internal/engine/history"
)

// Errors returned by buffer operations.
var (
	// ErrClosed indicates the buffer was closed.
	ErrClosed = errors.New("buffer is closed")

	// ErrInvalidIterator indicates an iterator that does not resolve to a
	// position of its buffer.
	ErrInvalidIterator = errors.New("invalid iterator")

	// ErrForeignIterator indicates an iterator bound to another buffer.
	ErrForeignIterator = errors.New("iterator belongs to another buffer")

	// ErrRangeInvalid indicates a range whose begin is after its end.
	ErrRangeInvalid = errors.New("invalid range")

	// ErrUnknownWindow indicates a window not owned by the buffer.
	ErrUnknownWindow = errors.New("unknown window")

	// ErrCheckpointUnreachable indicates a checkpoint whose history state
	// was discarded.
	ErrCheckpointUnreachable = errors.New("checkpoint unreachable")

	// ErrGroupOpen indicates an undo group is already open.
	ErrGroupOpen = history.ErrGroupOpen
)
