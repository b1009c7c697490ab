package buffer

import (
	"fmt"

	"github.com/dshills/textcore/internal/engine/coord"
)

// Coord is an alias for coord.Coord for convenience.
type Coord = coord.Coord

// Iterator is a position bound to one buffer.
//
// An Iterator does not own its buffer. Once the buffer is closed Valid
// reports false, and every other operation degrades to a harmless value
// instead of reading released state. Iterator is an immutable value type;
// movement returns a new Iterator.
//
// Iterators are not updated by the buffer. Owners that store iterators
// register a ChangeListener and renormalize them with ShiftForInsert and
// ShiftForErase.
type Iterator struct {
	buf   *Buffer
	coord Coord
}

func (b *Buffer) iterator(c Coord) Iterator {
	return Iterator{buf: b, coord: c}
}

// Buffer returns the buffer the iterator is bound to, or nil for the zero
// Iterator.
func (it Iterator) Buffer() *Buffer {
	return it.buf
}

// Coord returns the iterator's line/column coordinate.
func (it Iterator) Coord() Coord {
	return it.coord
}

// Line returns the iterator's line.
func (it Iterator) Line() int {
	return it.coord.Line
}

// Column returns the iterator's byte column.
func (it Iterator) Column() int {
	return it.coord.Column
}

// alive reports whether the back-reference still resolves.
func (it Iterator) alive() bool {
	return it.buf != nil && !it.buf.closed
}

// Valid returns true if the buffer is alive and the coordinate is in range.
func (it Iterator) Valid() bool {
	return it.alive() && it.buf.lines.contains(it.coord)
}

// Offset returns the iterator's absolute byte offset.
func (it Iterator) Offset() int {
	if it.buf == nil {
		return 0
	}
	return it.buf.lines.offset(it.coord)
}

// Byte returns the byte at the iterator. It returns false at the end of the
// buffer or if the iterator is not valid.
func (it Iterator) Byte() (byte, bool) {
	if !it.alive() {
		return 0, false
	}
	return it.buf.lines.byteAt(it.coord)
}

// Compare returns -1, 0 or 1 as it is before, at or after other, by
// absolute offset. Both must belong to the same buffer.
func (it Iterator) Compare(other Iterator) int {
	a, b := it.Offset(), other.Offset()
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Equal returns true if both iterators belong to the same buffer and
// resolve to the same offset.
func (it Iterator) Equal(other Iterator) bool {
	return it.buf == other.buf && it.Offset() == other.Offset()
}

// Less returns true if it is before other.
func (it Iterator) Less(other Iterator) bool {
	return it.Compare(other) < 0
}

// Distance returns it.Offset() - other.Offset().
func (it Iterator) Distance(other Iterator) int {
	return it.Offset() - other.Offset()
}

// Next returns the iterator one byte forward, crossing line boundaries.
// At the end of the buffer it stays put.
func (it Iterator) Next() Iterator {
	if !it.alive() {
		return it
	}
	if it.coord.Line >= 0 && it.coord.Line < it.buf.lines.count() &&
		it.coord.Column >= 0 && it.coord.Column+1 < it.buf.lines.lineLength(it.coord.Line) {
		it.coord.Column++
		return it
	}
	return it.Add(1)
}

// Prev returns the iterator one byte backward, crossing line boundaries.
// At the beginning of the buffer it stays put.
func (it Iterator) Prev() Iterator {
	if !it.alive() {
		return it
	}
	if it.coord.Column > 0 && it.buf.lines.contains(it.coord) {
		it.coord.Column--
		return it
	}
	return it.Add(-1)
}

// Add returns the iterator moved n bytes, forward for positive n. The
// result is clamped to the buffer.
func (it Iterator) Add(n int) Iterator {
	if !it.alive() {
		return it
	}
	t := it.buf.lines
	off := max(0, min(t.offset(it.coord)+n, t.charCount()))
	it.coord = t.coordAt(off)
	return it
}

// Sub returns the iterator moved n bytes backward.
func (it Iterator) Sub(n int) Iterator {
	return it.Add(-n)
}

// IsBegin returns true if the iterator is at the first byte of its buffer.
func (it Iterator) IsBegin() bool {
	return it.alive() && it.Offset() == 0
}

// IsEnd returns true if the iterator is one past the last byte.
func (it Iterator) IsEnd() bool {
	return it.alive() && it.Offset() == it.buf.lines.charCount()
}

// Clamp returns the iterator moved to the nearest valid coordinate. See
// Buffer.Clamp for avoidEOL.
func (it Iterator) Clamp(avoidEOL bool) Iterator {
	if !it.alive() {
		return it
	}
	it.coord = it.buf.lines.clamp(it.coord, avoidEOL)
	return it
}

// ShiftForInsert returns the iterator renormalized after the bytes in
// [begin, end) were inserted into its buffer.
//
// An iterator exactly at begin is not moved: it marks the insertion point,
// and text inserted there grows after it. Edits of another buffer leave the
// iterator unchanged.
func (it Iterator) ShiftForInsert(begin, end Iterator) Iterator {
	if it.buf == nil || begin.buf != it.buf {
		return it
	}
	it.coord = coord.AdvanceInsert(it.coord, begin.coord, end.coord)
	return it
}

// ShiftForErase returns the iterator renormalized after the range
// [begin, end) was erased from its buffer. end carries the coordinate the
// range ended at before removal, as passed to ChangeListener.OnErase.
//
// An iterator inside the range collapses to begin. Edits of another buffer
// leave the iterator unchanged.
func (it Iterator) ShiftForErase(begin, end Iterator) Iterator {
	if it.buf == nil || begin.buf != it.buf {
		return it
	}
	it.coord = coord.AdvanceErase(it.coord, begin.coord, end.coord)
	return it
}

// String returns a human-readable representation of the iterator.
func (it Iterator) String() string {
	if it.buf == nil {
		return "Iterator(nil)"
	}
	return fmt.Sprintf("Iterator(%s%s)", it.buf.name, it.coord)
}
