// Package coord provides the line/column address type shared by the buffer,
// its iterators and the undo history.
//
// A Coord is independent of any buffer. Columns are byte counts from the
// start of the line. Coordinates are ordered lexicographically by line and
// then column; that ordering is the basis for every range comparison.
//
// The package also holds the coordinate arithmetic used to renormalize a
// position after an edit happened elsewhere in its buffer:
//
//	c := coord.Coord{Line: 0, Column: 4}
//	// 2 bytes inserted at (0,1)
//	c = coord.AdvanceInsert(c, coord.Coord{Line: 0, Column: 1}, coord.Coord{Line: 0, Column: 3})
//	// c == (0:6)
//
// These functions need no access to the buffer, so they remain correct when
// called after the line table has already been updated.
package coord
