// Package cursor provides selections over a buffer and the selection set
// that keeps them in place across edits.
//
// A Selection is a pair of buffer iterators. A Set groups the selections
// of one buffer and, once attached, registers itself as the buffer's
// change listener: after every insert or erase it shifts each anchor and
// head with Iterator.ShiftForInsert or Iterator.ShiftForErase, then sorts
// and merges the selections that came to overlap.
//
//	set := cursor.NewSet(buf)
//	set.Attach()
//	defer set.Detach()
//
//	set.Add(cursor.NewCursorSelection(buf.IteratorAtLineBegin(3)))
//	set.Insert("// ")
//
// Motion works on grapheme clusters, so a head never stops in the middle
// of a combined character.
package cursor
