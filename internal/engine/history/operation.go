package history

import (
	"fmt"

	"github.com/dshills/textcore/internal/engine/coord"
)

// Coord is an alias for coord.Coord for convenience.
type Coord = coord.Coord

// Kind tags a Modification as an insertion or an erasure.
type Kind uint8

const (
	Insert Kind = iota // Content was inserted at Coord
	Erase              // Content was erased starting at Coord
)

// String returns a string representation of the kind.
func (k Kind) String() string {
	switch k {
	case Insert:
		return "insert"
	case Erase:
		return "erase"
	default:
		return "unknown"
	}
}

// Modification is a single reversible edit.
type Modification struct {
	Kind    Kind
	Coord   Coord  // Where the content starts
	Content string // Exact bytes inserted or removed
}

// NewInsert creates a modification recording that content was inserted at c.
func NewInsert(c Coord, content string) Modification {
	return Modification{Kind: Insert, Coord: c, Content: content}
}

// NewErase creates a modification recording that content was erased at c.
func NewErase(c Coord, content string) Modification {
	return Modification{Kind: Erase, Coord: c, Content: content}
}

// Inverse returns the modification that reverts m.
// Reverting an insertion erases the same bytes at the same coordinate;
// reverting an erasure inserts them back.
func (m Modification) Inverse() Modification {
	switch m.Kind {
	case Insert:
		return Modification{Kind: Erase, Coord: m.Coord, Content: m.Content}
	case Erase:
		return Modification{Kind: Insert, Coord: m.Coord, Content: m.Content}
	default:
		return m
	}
}

// BytesDelta returns the change in document length caused by m.
func (m Modification) BytesDelta() int {
	if m.Kind == Erase {
		return -len(m.Content)
	}
	return len(m.Content)
}

// String returns a human-readable representation of the modification.
func (m Modification) String() string {
	return fmt.Sprintf("%s%s %q", m.Kind, m.Coord, m.Content)
}

// UndoGroup is an ordered list of modifications undone and redone as a unit.
type UndoGroup []Modification

// Inverse returns the group that reverts g: every modification inverted, in
// reverse order.
func (g UndoGroup) Inverse() UndoGroup {
	result := make(UndoGroup, len(g))
	for i, m := range g {
		result[len(g)-1-i] = m.Inverse()
	}
	return result
}

// BytesDelta returns the total change in document length caused by g.
func (g UndoGroup) BytesDelta() int {
	total := 0
	for _, m := range g {
		total += m.BytesDelta()
	}
	return total
}
