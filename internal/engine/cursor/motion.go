package cursor

import (
	"github.com/rivo/uniseg"
)

// NextGrapheme returns it moved past the grapheme cluster it is on. At the
// end of a line it moves to the start of the next one, and at the end of
// the buffer it stays put.
func NextGrapheme(it Iterator) Iterator {
	buf := it.Buffer()
	if !it.Valid() {
		return it
	}
	content := buf.LineContent(it.Line())
	col := it.Column()
	if col >= len(content) {
		return it.Next()
	}
	cluster, _, _, _ := uniseg.FirstGraphemeClusterInString(content[col:], -1)
	return it.Add(len(cluster))
}

// PrevGrapheme returns it moved to the start of the grapheme cluster before
// it. At the start of a line it moves onto the previous line's last byte.
func PrevGrapheme(it Iterator) Iterator {
	buf := it.Buffer()
	if !it.Valid() {
		return it
	}
	col := it.Column()
	if col == 0 {
		return it.Prev()
	}

	content := buf.LineContent(it.Line())[:col]
	boundary := 0
	state := -1
	for pos := 0; pos < col; {
		var cluster string
		cluster, _, _, state = uniseg.FirstGraphemeClusterInString(content[pos:], state)
		boundary = pos
		pos += len(cluster)
	}
	return it.Sub(col - boundary)
}

// MoveHeads applies move to every head. Unless extend is set, anchors
// follow their heads and the selections collapse to cursors.
func (s *Set) MoveHeads(move func(Iterator) Iterator, extend bool) {
	for i, sel := range s.selections {
		head := move(sel.Head)
		if extend {
			s.selections[i] = sel.Extend(head)
		} else {
			s.selections[i] = NewCursorSelection(head)
		}
	}
	s.normalize()
}

// MoveRight moves every head one grapheme cluster forward.
func (s *Set) MoveRight(extend bool) {
	s.MoveHeads(NextGrapheme, extend)
}

// MoveLeft moves every head one grapheme cluster backward.
func (s *Set) MoveLeft(extend bool) {
	s.MoveHeads(PrevGrapheme, extend)
}
