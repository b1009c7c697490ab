// Package buffer provides the line-indexed document at the core of the
// editor engine.
//
// A Buffer holds its content as a table of lines. Every line but possibly
// the last ends with a line break, and each line knows the absolute byte
// offset it starts at, so coordinates and offsets convert in O(log n).
//
// Positions are Iterators: immutable values made of a back-reference to
// the buffer and a line/column coordinate. The buffer does not track the
// iterators handed out. Components that store iterators register a
// ChangeListener and fix them up on every change:
//
//	type marks struct{ at []buffer.Iterator }
//
//	func (m *marks) OnInsert(begin, end buffer.Iterator) {
//	    for i, it := range m.at {
//	        m.at[i] = it.ShiftForInsert(begin, end)
//	    }
//	}
//
//	func (m *marks) OnErase(begin, end buffer.Iterator) {
//	    for i, it := range m.at {
//	        m.at[i] = it.ShiftForErase(begin, end)
//	    }
//	}
//
// Insert and Erase are the only mutators. Every change is recorded in a
// linear undo history; BeginUndoGroup and EndUndoGroup bracket several
// changes into one undo step:
//
//	buf := buffer.New("scratch", buffer.FlagNew, buffer.DefaultContent)
//	buf.BeginUndoGroup()
//	buf.Insert(buf.Begin(), "hello\n")
//	buf.Insert(buf.End(), "world\n")
//	buf.EndUndoGroup()
//	buf.Undo() // back to a single empty line
//
// Buffer is not safe for concurrent use. Snapshot returns a read-only copy
// that other goroutines may read freely.
package buffer
