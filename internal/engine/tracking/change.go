package tracking

import (
	"fmt"

	"github.com/dshills/textcore/internal/engine/coord"
)

// ChangeType categorizes a change.
type ChangeType uint8

const (
	// ChangeInsert is an insertion. Begin and End delimit the inserted text
	// in the buffer right after the change.
	ChangeInsert ChangeType = iota

	// ChangeErase is an erasure. Begin is where the erased range collapsed
	// to and End is where it ended before the change.
	ChangeErase
)

// String returns a human-readable representation of the change type.
func (ct ChangeType) String() string {
	switch ct {
	case ChangeInsert:
		return "insert"
	case ChangeErase:
		return "erase"
	default:
		return "unknown"
	}
}

// Change is one journal entry.
type Change struct {
	Type       ChangeType
	Begin, End coord.Coord

	// Timestamp is the buffer timestamp after the change was applied.
	Timestamp uint64
}

// Range returns the coordinates of the change as a range.
func (c Change) Range() coord.Range {
	return coord.Range{Begin: c.Begin, End: c.End}
}

// String returns a human-readable representation of the change.
func (c Change) String() string {
	return fmt.Sprintf("%s %s-%s@%d", c.Type, c.Begin, c.End, c.Timestamp)
}
