package buffer

import (
	"log/slog"
	"strings"

	"github.com/dshills/textcore/internal/engine/coord"
	"github.com/dshills/textcore/internal/engine/history"
	"github.com/dshills/textcore/internal/hook"
	"github.com/dshills/textcore/internal/option"
)

// DefaultContent is the content of a buffer created without any: a single
// empty line.
const DefaultContent = "\n"

// Buffer is an in-memory, line-indexed document with undo history.
//
// A Buffer must not be copied after creation: iterators, windows and
// listeners refer back to it by pointer. It is not safe for concurrent use;
// a single editor goroutine drives every mutation. Use Snapshot to hand a
// read-only copy to other goroutines.
type Buffer struct {
	name  string
	flags Flags

	lines     lineTable
	history   *history.History
	timestamp uint64

	listeners []*registration
	windows   []*Window

	options *option.Manager
	hooks   *hook.Manager
	logger  *slog.Logger

	closed bool

	// Construction settings
	maxUndoGroups int
	parentOptions *option.Manager
	parentHooks   *hook.Manager
}

// New creates a buffer named name holding content. The initial content is
// not part of the undo history. An empty content yields a single empty
// line; pass DefaultContent for the conventional single line break.
func New(name string, flags Flags, content string, opts ...Option) *Buffer {
	b := &Buffer{
		name:   name,
		flags:  flags,
		logger: discardLogger(),
	}

	for _, opt := range opts {
		opt(b)
	}

	b.lines = newLineTable(content)
	b.history = history.New(b.maxUndoGroups)
	b.options = option.New(b.parentOptions)
	b.hooks = hook.New(b.parentHooks, hook.WithLogger(b.logger))

	b.logger.Debug("buffer created",
		"buffer", b.name,
		"flags", b.flags.String(),
		"lines", b.lines.count(),
	)
	return b
}

// Close destroys the buffer. Windows and listeners are released, and every
// outstanding iterator stops being valid. Mutations of a closed buffer
// return ErrClosed. Closing twice is a no-op.
func (b *Buffer) Close() {
	if b.closed {
		return
	}
	for _, w := range b.windows {
		w.release()
	}
	b.windows = nil
	b.releaseListeners()
	b.history.Reset()
	b.options.Detach()
	b.closed = true
	b.logger.Debug("buffer closed", "buffer", b.name)
}

// Closed returns true once Close was called.
func (b *Buffer) Closed() bool {
	return b.closed
}

// Name returns the buffer's name. It is an identity, not a path.
func (b *Buffer) Name() string {
	return b.name
}

// Flags returns the buffer's provenance flags.
func (b *Buffer) Flags() Flags {
	return b.flags
}

// SetFlags replaces the buffer's provenance flags.
func (b *Buffer) SetFlags(f Flags) {
	b.flags = f
}

// Timestamp returns a counter incremented by every change of the content,
// including undo and redo.
func (b *Buffer) Timestamp() uint64 {
	return b.timestamp
}

// Options returns the buffer's option scope.
func (b *Buffer) Options() *option.Manager {
	return b.options
}

// Hooks returns the buffer's hook scope. The buffer never runs hooks itself.
func (b *Buffer) Hooks() *hook.Manager {
	return b.hooks
}

// Read Operations

// Begin returns an iterator at the first byte.
func (b *Buffer) Begin() Iterator {
	return b.iterator(coord.Coord{})
}

// End returns an iterator one past the last byte.
func (b *Buffer) End() Iterator {
	return b.iterator(b.lines.end())
}

// CharacterCount returns the total number of bytes.
func (b *Buffer) CharacterCount() int {
	return b.lines.charCount()
}

// LineCount returns the number of lines; always at least 1.
func (b *Buffer) LineCount() int {
	return b.lines.count()
}

// LineLength returns the length of a line in bytes, line break included.
// Returns 0 for lines out of range.
func (b *Buffer) LineLength(line int) int {
	return b.lines.lineLength(line)
}

// LineContent returns the content of a line, line break included.
// Returns "" for lines out of range.
func (b *Buffer) LineContent(line int) string {
	if line < 0 || line >= b.lines.count() {
		return ""
	}
	return b.lines[line].content
}

// String returns the bytes in [begin, end). Iterators of another buffer
// yield "".
func (b *Buffer) String(begin, end Iterator) string {
	if begin.buf != b || end.buf != b {
		return ""
	}
	return b.lines.slice(begin.Offset(), end.Offset())
}

// Text returns the full buffer content.
func (b *Buffer) Text() string {
	var sb strings.Builder
	sb.Grow(b.lines.charCount())
	for _, l := range b.lines {
		sb.WriteString(l.content)
	}
	return sb.String()
}

// IsEmpty returns true if the buffer holds no bytes.
func (b *Buffer) IsEmpty() bool {
	return b.lines.charCount() == 0
}

// Coordinate Conversion

// Clamp returns the nearest valid coordinate to c. The line is clamped to
// the buffer and the column to the line, line break included. With
// avoidEOL the column of a non-empty line stays below its length, so a
// cursor always sits on a real byte.
func (b *Buffer) Clamp(c Coord, avoidEOL bool) Coord {
	return b.lines.clamp(c, avoidEOL)
}

// IteratorAt returns an iterator at the clamped coordinate c.
func (b *Buffer) IteratorAt(c Coord, avoidEOL bool) Iterator {
	return b.iterator(b.lines.clamp(c, avoidEOL))
}

// LineAndColumnAt returns the coordinate of it. It is the inverse of
// IteratorAt for clamped coordinates.
func (b *Buffer) LineAndColumnAt(it Iterator) Coord {
	return it.coord
}

// IteratorAtLineBegin returns an iterator at the first byte of line.
// The line is clamped to the buffer.
func (b *Buffer) IteratorAtLineBegin(line int) Iterator {
	return b.IteratorAt(coord.Coord{Line: line}, false)
}

// IteratorAtLineEnd returns an iterator right after line: the first byte of
// the next line, or the end of the buffer for the final line, so line
// ranges are half-open. The line is clamped to the buffer.
func (b *Buffer) IteratorAtLineEnd(line int) Iterator {
	line = max(0, min(line, b.lines.count()-1))
	return b.iterator(b.lines.lineEnd(line))
}

// LineBeginOf returns an iterator at the first byte of it's line.
func (b *Buffer) LineBeginOf(it Iterator) Iterator {
	return b.IteratorAtLineBegin(it.coord.Line)
}

// LineEndOf returns an iterator right after it's line.
func (b *Buffer) LineEndOf(it Iterator) Iterator {
	return b.IteratorAtLineEnd(it.coord.Line)
}

// checkIterator verifies it can be used to edit b.
func (b *Buffer) checkIterator(it Iterator) error {
	if b.closed {
		return ErrClosed
	}
	if it.buf != b {
		return ErrForeignIterator
	}
	if !b.lines.contains(it.coord) {
		return ErrInvalidIterator
	}
	return nil
}
