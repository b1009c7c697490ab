package coord

// AdvanceInsert returns c renormalized after the bytes now spanning
// [begin, end) were inserted.
//
// Coordinates strictly after begin move with the inserted text. A
// coordinate exactly at begin stays where it is: it marks the insertion
// point, so repeated inserts there extend content after it.
func AdvanceInsert(c, begin, end Coord) Coord {
	if c.Compare(begin) <= 0 {
		return c
	}
	if c.Line == begin.Line {
		c.Column = end.Column + c.Column - begin.Column
	}
	c.Line += end.Line - begin.Line
	return c
}

// AdvanceErase returns c renormalized after the bytes in [begin, end) were
// removed. begin and end are the coordinates the range had before removal.
//
// Coordinates before begin are unaffected, coordinates inside the range
// collapse to begin and coordinates at or after end shift back.
func AdvanceErase(c, begin, end Coord) Coord {
	if c.Compare(begin) <= 0 {
		return c
	}
	if c.Compare(end) < 0 {
		return begin
	}
	if c.Line == end.Line {
		c.Column = begin.Column + c.Column - end.Column
	}
	c.Line -= end.Line - begin.Line
	return c
}
