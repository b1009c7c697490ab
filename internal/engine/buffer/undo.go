package buffer

import (
	"fmt"

	"github.com/dshills/textcore/internal/engine/history"
)

// BeginUndoGroup opens an undo group. Every modification until
// EndUndoGroup is undone and redone as one unit.
func (b *Buffer) BeginUndoGroup() error {
	if b.closed {
		return ErrClosed
	}
	if err := b.history.Begin(); err != nil {
		return fmt.Errorf("begin undo group: %w", err)
	}
	return nil
}

// EndUndoGroup closes the open undo group and commits it to the history.
// Returns false if no group was open or it held no modification.
func (b *Buffer) EndUndoGroup() bool {
	if !b.history.End() {
		return false
	}
	b.logger.Debug("undo group committed",
		"buffer", b.name,
		"groups", b.history.Len(),
	)
	return true
}

// Undo reverts the group before the history cursor. Listeners are notified
// of every reverting edit. Returns false if there is nothing to undo.
//
// Undo while a group is open commits what the group holds first, then
// reverts it; the group stays open for further edits.
func (b *Buffer) Undo() bool {
	if b.closed {
		return false
	}
	g, ok := b.history.Undo()
	if !ok {
		return false
	}
	b.revert(g)
	b.logger.Debug("undo",
		"buffer", b.name,
		"timestamp", b.timestamp,
		"groups", b.history.Cursor(),
	)
	return true
}

// Redo re-applies the group after the history cursor. Returns false if
// there is nothing to redo.
func (b *Buffer) Redo() bool {
	if b.closed {
		return false
	}
	g, ok := b.history.Redo()
	if !ok {
		return false
	}
	for _, m := range g {
		b.apply(m)
	}
	b.logger.Debug("redo",
		"buffer", b.name,
		"timestamp", b.timestamp,
		"groups", b.history.Cursor(),
	)
	return true
}

// CanUndo returns true if Undo would revert something.
func (b *Buffer) CanUndo() bool {
	return !b.closed && b.history.CanUndo()
}

// CanRedo returns true if Redo would re-apply something.
func (b *Buffer) CanRedo() bool {
	return !b.closed && b.history.CanRedo()
}

// ResetUndoData discards the whole history. The content is kept as the new
// starting point. The buffer stays unmodified only if it was unmodified.
func (b *Buffer) ResetUndoData() {
	b.history.Reset()
	b.logger.Debug("undo data reset", "buffer", b.name)
}

// NotifySaved records the current history position as the save point.
func (b *Buffer) NotifySaved() {
	b.history.MarkSaved()
}

// IsModified returns true if the history position differs from the save
// point, or an open undo group holds uncommitted modifications.
func (b *Buffer) IsModified() bool {
	return b.history.Modified()
}

// Checkpoint is a position in the undo history.
type Checkpoint = history.Checkpoint

// CreateCheckpoint returns the current history position. Modifications
// pending in an open group are committed first.
func (b *Buffer) CreateCheckpoint() Checkpoint {
	return b.history.CreateCheckpoint()
}

// UndoToCheckpoint undoes groups until the history is back at cp and
// returns how many were undone. A checkpoint ahead of the cursor is left
// alone. It fails with ErrCheckpointUnreachable when the history no longer
// holds cp's state.
func (b *Buffer) UndoToCheckpoint(cp Checkpoint) (int, error) {
	if b.closed {
		return 0, ErrClosed
	}
	if !b.history.Reachable(cp) {
		return 0, ErrCheckpointUnreachable
	}
	n := 0
	for b.history.Distance(cp) > 0 && b.Undo() {
		n++
	}
	return n, nil
}

// RedoToCheckpoint redoes groups until the history reaches cp and returns
// how many were redone. A checkpoint behind the cursor is left alone.
func (b *Buffer) RedoToCheckpoint(cp Checkpoint) (int, error) {
	if b.closed {
		return 0, ErrClosed
	}
	if !b.history.Reachable(cp) {
		return 0, ErrCheckpointUnreachable
	}
	n := 0
	for b.history.Distance(cp) < 0 && b.Redo() {
		n++
	}
	return n, nil
}

// Transaction runs fn inside an undo group. If no group is open one is
// opened for fn and committed afterwards; otherwise fn's edits join the
// open group. When fn returns an error the edits it made are reverted and
// dropped from the history, and the error is returned.
//
// fn must not call Undo or Redo.
func (b *Buffer) Transaction(fn func() error) error {
	if b.closed {
		return ErrClosed
	}

	opened := !b.history.Grouping()
	if opened {
		if err := b.history.Begin(); err != nil {
			return err
		}
	}
	mark := len(b.history.Pending())

	if err := fn(); err != nil {
		b.revert(b.history.Rollback(mark))
		if opened {
			b.history.Cancel()
		}
		return err
	}

	if opened {
		b.EndUndoGroup()
	}
	return nil
}

// revert undoes g by applying its inverse, last modification first.
func (b *Buffer) revert(g history.UndoGroup) {
	for _, m := range g.Inverse() {
		b.apply(m)
	}
}
