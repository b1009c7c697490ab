package cursor

import (
	"fmt"

	"github.com/dshills/textcore/internal/engine/buffer"
)

// Iterator is an alias for buffer.Iterator for convenience.
type Iterator = buffer.Iterator

// Selection is a range of a buffer between two iterators.
// Anchor is where the selection started; Head is where typing occurs.
// When Anchor and Head are at the same position the selection is a plain
// cursor. The covered range is half-open: [Begin, End).
// Selection is an immutable value type.
type Selection struct {
	Anchor Iterator
	Head   Iterator
}

// NewSelection creates a selection from anchor to head.
func NewSelection(anchor, head Iterator) Selection {
	return Selection{Anchor: anchor, Head: head}
}

// NewCursorSelection creates a selection with no extent at it.
func NewCursorSelection(it Iterator) Selection {
	return Selection{Anchor: it, Head: it}
}

// IsEmpty returns true if the selection has no extent.
func (s Selection) IsEmpty() bool {
	return s.Anchor.Equal(s.Head)
}

// Valid returns true if both ends are valid iterators.
func (s Selection) Valid() bool {
	return s.Anchor.Valid() && s.Head.Valid()
}

// Begin returns the lower end of the selection.
func (s Selection) Begin() Iterator {
	if s.Head.Less(s.Anchor) {
		return s.Head
	}
	return s.Anchor
}

// End returns the upper end of the selection.
func (s Selection) End() Iterator {
	if s.Head.Less(s.Anchor) {
		return s.Anchor
	}
	return s.Head
}

// Len returns the number of bytes selected.
func (s Selection) Len() int {
	return s.End().Distance(s.Begin())
}

// IsForward returns true if the head is not before the anchor.
func (s Selection) IsForward() bool {
	return !s.Head.Less(s.Anchor)
}

// Extend returns the selection with its head moved to it.
func (s Selection) Extend(it Iterator) Selection {
	return Selection{Anchor: s.Anchor, Head: it}
}

// Collapse collapses the selection to a cursor at the head.
func (s Selection) Collapse() Selection {
	return NewCursorSelection(s.Head)
}

// Flip returns the selection with anchor and head swapped.
func (s Selection) Flip() Selection {
	return Selection{Anchor: s.Head, Head: s.Anchor}
}

// Contains returns true if it lies in [Begin, End).
func (s Selection) Contains(it Iterator) bool {
	return !it.Less(s.Begin()) && it.Less(s.End())
}

// Touches returns true if the selections overlap or are adjacent.
func (s Selection) Touches(other Selection) bool {
	return s.Begin().Compare(other.End()) <= 0 && other.Begin().Compare(s.End()) <= 0
}

// Merge returns a forward selection covering both selections.
func (s Selection) Merge(other Selection) Selection {
	begin, end := s.Begin(), s.End()
	if other.Begin().Less(begin) {
		begin = other.Begin()
	}
	if end.Less(other.End()) {
		end = other.End()
	}
	return Selection{Anchor: begin, Head: end}
}

// ShiftForInsert returns the selection after [begin, end) was inserted.
func (s Selection) ShiftForInsert(begin, end Iterator) Selection {
	return Selection{
		Anchor: s.Anchor.ShiftForInsert(begin, end),
		Head:   s.Head.ShiftForInsert(begin, end),
	}
}

// ShiftForErase returns the selection after [begin, end) was erased.
func (s Selection) ShiftForErase(begin, end Iterator) Selection {
	return Selection{
		Anchor: s.Anchor.ShiftForErase(begin, end),
		Head:   s.Head.ShiftForErase(begin, end),
	}
}

// String returns a string representation of the selection.
func (s Selection) String() string {
	if s.IsEmpty() {
		return fmt.Sprintf("Cursor%s", s.Head.Coord())
	}
	dir := "→"
	if !s.IsForward() {
		dir = "←"
	}
	return fmt.Sprintf("Selection(%s%s%s)", s.Anchor.Coord(), dir, s.Head.Coord())
}
