package cursor

import (
	"slices"

	"github.com/dshills/textcore/internal/engine/buffer"
)

// Set holds the selections of one buffer.
// Selections are kept sorted and non-overlapping; the first one is the
// primary selection. Once attached, the set keeps its selections in place
// across every edit of the buffer, whoever makes it.
type Set struct {
	buf        *buffer.Buffer
	selections []Selection
	attached   bool
}

// NewSet creates a set with a single cursor at the beginning of buf.
func NewSet(buf *buffer.Buffer) *Set {
	return &Set{
		buf:        buf,
		selections: []Selection{NewCursorSelection(buf.Begin())},
	}
}

// Buffer returns the buffer the set belongs to.
func (s *Set) Buffer() *buffer.Buffer {
	return s.buf
}

// Attach registers the set as a change listener of its buffer.
func (s *Set) Attach() {
	if s.attached {
		return
	}
	s.buf.AddChangeListener(s)
	s.attached = true
}

// Detach deregisters the set. It must be called before the set is dropped
// if the buffer outlives it.
func (s *Set) Detach() {
	if !s.attached {
		return
	}
	s.buf.RemoveChangeListener(s)
	s.attached = false
}

// OnInsert implements buffer.ChangeListener.
func (s *Set) OnInsert(begin, end Iterator) {
	for i, sel := range s.selections {
		s.selections[i] = sel.ShiftForInsert(begin, end)
	}
	s.normalize()
}

// OnErase implements buffer.ChangeListener.
func (s *Set) OnErase(begin, end Iterator) {
	for i, sel := range s.selections {
		s.selections[i] = sel.ShiftForErase(begin, end)
	}
	s.normalize()
}

// Primary returns the primary selection.
func (s *Set) Primary() Selection {
	return s.selections[0]
}

// All returns a copy of all selections.
func (s *Set) All() []Selection {
	return slices.Clone(s.selections)
}

// Count returns the number of selections.
func (s *Set) Count() int {
	return len(s.selections)
}

// Get returns the selection at index, or false if out of range.
func (s *Set) Get(index int) (Selection, bool) {
	if index < 0 || index >= len(s.selections) {
		return Selection{}, false
	}
	return s.selections[index], true
}

// Add adds a selection, merging it with the ones it touches. Selections of
// another buffer are ignored.
func (s *Set) Add(sel Selection) {
	if sel.Anchor.Buffer() != s.buf || sel.Head.Buffer() != s.buf {
		return
	}
	s.selections = append(s.selections, sel)
	s.normalize()
}

// SetAll replaces all selections. An empty list leaves a cursor at the
// beginning of the buffer.
func (s *Set) SetAll(sels []Selection) {
	kept := make([]Selection, 0, len(sels))
	for _, sel := range sels {
		if sel.Anchor.Buffer() == s.buf && sel.Head.Buffer() == s.buf {
			kept = append(kept, sel)
		}
	}
	if len(kept) == 0 {
		kept = append(kept, NewCursorSelection(s.buf.Begin()))
	}
	s.selections = kept
	s.normalize()
}

// Clear drops every selection but the primary.
func (s *Set) Clear() {
	s.selections = s.selections[:1]
}

// CollapseAll collapses every selection to a cursor at its head.
func (s *Set) CollapseAll() {
	for i, sel := range s.selections {
		s.selections[i] = sel.Collapse()
	}
	s.normalize()
}

// Clamp moves every end onto a valid position of the buffer.
func (s *Set) Clamp(avoidEOL bool) {
	for i, sel := range s.selections {
		s.selections[i] = Selection{
			Anchor: sel.Anchor.Clamp(avoidEOL),
			Head:   sel.Head.Clamp(avoidEOL),
		}
	}
	s.normalize()
}

// Contents returns the text of every selection.
func (s *Set) Contents() []string {
	out := make([]string, len(s.selections))
	for i, sel := range s.selections {
		out[i] = s.buf.String(sel.Begin(), sel.End())
	}
	return out
}

// normalize sorts selections and merges the ones that overlap or touch.
func (s *Set) normalize() {
	if len(s.selections) <= 1 {
		return
	}

	slices.SortStableFunc(s.selections, func(a, b Selection) int {
		if c := a.Begin().Compare(b.Begin()); c != 0 {
			return c
		}
		// Larger ranges first
		return b.End().Compare(a.End())
	})

	merged := s.selections[:1]
	for _, sel := range s.selections[1:] {
		last := &merged[len(merged)-1]
		if sel.Begin().Compare(last.End()) <= 0 {
			*last = last.Merge(sel)
		} else {
			merged = append(merged, sel)
		}
	}
	s.selections = merged
}
