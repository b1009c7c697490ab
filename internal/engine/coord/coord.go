package coord

import "fmt"

// Coord is a line and column address. Both are 0-indexed; Column is
// measured in bytes from the start of the line.
type Coord struct {
	Line   int
	Column int
}

// String returns a human-readable representation of the coordinate.
func (c Coord) String() string {
	return fmt.Sprintf("(%d:%d)", c.Line, c.Column)
}

// Compare returns -1 if c < other, 0 if c == other, 1 if c > other.
func (c Coord) Compare(other Coord) int {
	if c.Line < other.Line {
		return -1
	}
	if c.Line > other.Line {
		return 1
	}
	if c.Column < other.Column {
		return -1
	}
	if c.Column > other.Column {
		return 1
	}
	return 0
}

// Before returns true if c comes before other.
func (c Coord) Before(other Coord) bool {
	return c.Compare(other) < 0
}

// After returns true if c comes after other.
func (c Coord) After(other Coord) bool {
	return c.Compare(other) > 0
}

// IsZero returns true if this is the zero coordinate (0:0).
func (c Coord) IsZero() bool {
	return c.Line == 0 && c.Column == 0
}

// Range is a half-open span of coordinates: [Begin, End).
type Range struct {
	Begin Coord
	End   Coord
}

// String returns a human-readable representation of the range.
func (r Range) String() string {
	return fmt.Sprintf("[%s:%s)", r.Begin, r.End)
}

// IsEmpty returns true if Begin equals End.
func (r Range) IsEmpty() bool {
	return r.Begin == r.End
}

// IsValid returns true if Begin <= End.
func (r Range) IsValid() bool {
	return r.Begin.Compare(r.End) <= 0
}

// Contains returns true if c is within [Begin, End).
func (r Range) Contains(c Coord) bool {
	return c.Compare(r.Begin) >= 0 && c.Compare(r.End) < 0
}

// IsSingleLine returns true if the range starts and ends on the same line.
func (r Range) IsSingleLine() bool {
	return r.Begin.Line == r.End.Line
}
