// Package history provides the linear undo/redo model used by the buffer.
//
// # Modifications
//
// A Modification is a single atomic edit: either an insertion of bytes at a
// coordinate or an erasure of bytes starting at a coordinate. Each one
// carries the exact bytes involved so it can be reversed without consulting
// the document:
//
//	ins := history.NewInsert(coord.Coord{Line: 0, Column: 3}, "abc")
//	inv := ins.Inverse() // erase "abc" at (0:3)
//
// # Undo Groups
//
// An UndoGroup is an ordered list of modifications that undo and redo as one
// user-visible edit.
//
// # History
//
// History holds the committed groups and a cursor. Groups before the cursor
// can be undone, groups after it can be redone. Committing a new group while
// the cursor is not at the end discards the redo branch first, so history is
// a line, not a tree.
//
//	h := history.New(0) // unlimited
//
//	h.Record(ins)            // idle: forms its own group
//
//	h.Begin()
//	h.Record(a)
//	h.Record(b)
//	h.End()                  // a and b undo together
//
//	g, ok := h.Undo()        // caller reverts g in reverse order
//
// History never touches a document itself. The owner applies and reverts the
// groups it hands out; see Buffer.Undo in package buffer.
//
// # Save Point
//
// MarkSaved remembers the current cursor; Modified reports whether the cursor
// has moved away from it. A save point that is discarded by truncation or by
// the group limit can never be reached again.
package history
