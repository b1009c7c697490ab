package history

import "errors"

// Errors returned by history operations.
var (
	// ErrGroupOpen indicates Begin was called while a group was already open.
	ErrGroupOpen = errors.New("undo group already open")
)

// unreachable marks a save point that no cursor position can match.
const unreachable = -1

// History is a linear sequence of undo groups plus a cursor into it.
//
// Groups [0, cursor) are undoable and groups [cursor, len) are redoable.
// History is not safe for concurrent use; it belongs to a single buffer.
type History struct {
	groups []UndoGroup
	cursor int

	// Grouping state
	grouping bool
	pending  UndoGroup

	saved     int // cursor value at last save, or unreachable
	maxGroups int // 0 means unlimited

	// Checkpoint bookkeeping
	trimmed int   // groups discarded by the limit since the last Reset
	forks   []int // absolute positions where a redo branch was discarded
	epoch   int   // incremented by Reset
}

// New creates an empty history. maxGroups bounds the number of committed
// groups; the oldest are discarded when it is exceeded. A value <= 0 means
// unlimited.
func New(maxGroups int) *History {
	if maxGroups < 0 {
		maxGroups = 0
	}
	return &History{maxGroups: maxGroups}
}

// Record adds a modification. While idle it is committed immediately as its
// own group; while grouping it joins the pending group.
func (h *History) Record(m Modification) {
	if h.grouping {
		h.pending = append(h.pending, m)
		return
	}
	h.commit(UndoGroup{m})
}

// Begin opens an undo group.
func (h *History) Begin() error {
	if h.grouping {
		return ErrGroupOpen
	}
	h.grouping = true
	h.pending = nil
	return nil
}

// End closes the open group and commits it if it holds any modification.
// Returns true if a group was committed.
func (h *History) End() bool {
	if !h.grouping {
		return false
	}
	h.grouping = false
	return h.flush()
}

func (h *History) flush() bool {
	if len(h.pending) == 0 {
		h.pending = nil
		return false
	}
	g := h.pending
	h.pending = nil
	h.commit(g)
	return true
}

// commit appends g at the cursor, discarding the redo branch first.
func (h *History) commit(g UndoGroup) {
	if h.saved > h.cursor {
		h.saved = unreachable
	}
	if h.cursor < len(h.groups) {
		h.forks = append(h.forks, h.trimmed+h.cursor)
	}
	h.groups = append(h.groups[:h.cursor], g)
	h.cursor = len(h.groups)

	if h.maxGroups > 0 && len(h.groups) > h.maxGroups {
		excess := len(h.groups) - h.maxGroups
		h.groups = h.groups[excess:]
		h.cursor -= excess
		h.trimmed += excess
		if h.saved != unreachable {
			h.saved -= excess
			if h.saved < 0 {
				h.saved = unreachable
			}
		}
	}
}

// Grouping returns true if an undo group is open.
func (h *History) Grouping() bool {
	return h.grouping
}

// Pending returns a copy of the modifications recorded in the open group
// that are not yet committed.
func (h *History) Pending() UndoGroup {
	if len(h.pending) == 0 {
		return nil
	}
	result := make(UndoGroup, len(h.pending))
	copy(result, h.pending)
	return result
}

// Undo moves the cursor back one group and returns that group. The caller
// reverts its modifications in reverse order. Pending modifications of an
// open group are committed first; the group stays open. Returns false if
// there is nothing to undo.
func (h *History) Undo() (UndoGroup, bool) {
	h.flush()
	if h.cursor == 0 {
		return nil, false
	}
	h.cursor--
	return h.groups[h.cursor], true
}

// Redo moves the cursor forward one group and returns that group. The caller
// re-applies its modifications in order. Pending modifications are committed
// first, which discards the redo branch. Returns false if there is nothing to
// redo.
func (h *History) Redo() (UndoGroup, bool) {
	h.flush()
	if h.cursor == len(h.groups) {
		return nil, false
	}
	g := h.groups[h.cursor]
	h.cursor++
	return g, true
}

// CanUndo returns true if undo is available.
func (h *History) CanUndo() bool {
	return h.cursor > 0 || len(h.pending) > 0
}

// CanRedo returns true if redo is available.
func (h *History) CanRedo() bool {
	return h.cursor < len(h.groups) && len(h.pending) == 0
}

// Cursor returns the number of groups before the history cursor.
func (h *History) Cursor() int {
	return h.cursor
}

// Len returns the number of committed groups.
func (h *History) Len() int {
	return len(h.groups)
}

// Reset discards all groups and pending modifications. The save point is
// kept only if the history was unmodified.
func (h *History) Reset() {
	modified := h.Modified()
	h.groups = nil
	h.cursor = 0
	h.pending = nil
	h.trimmed = 0
	h.forks = nil
	h.epoch++
	if modified {
		h.saved = unreachable
	} else {
		h.saved = 0
	}
}

// MarkSaved records the current state as the save point. Pending
// modifications are committed first so the save point covers them.
func (h *History) MarkSaved() {
	h.flush()
	h.saved = h.cursor
}

// Modified returns true if the current state differs from the save point.
func (h *History) Modified() bool {
	return h.saved != h.cursor || len(h.pending) > 0
}
