package buffer

import "github.com/rivo/uniseg"

// CharColumn returns the number of grapheme clusters on c's line before c.
// Byte columns that split a cluster count the partial cluster.
func (b *Buffer) CharColumn(c Coord) int {
	c = b.lines.clamp(c, false)
	return uniseg.GraphemeClusterCount(b.lines[c.Line].content[:c.Column])
}

// ByteColumn returns the byte column of the n-th grapheme cluster of line,
// the inverse of CharColumn. Counts past the line's clusters resolve to the
// line length.
func (b *Buffer) ByteColumn(line, n int) int {
	c := b.lines.clamp(Coord{Line: line}, false)
	content := b.lines[c.Line].content

	col := 0
	state := -1
	for i := 0; i < n && col < len(content); i++ {
		var cluster string
		cluster, _, _, state = uniseg.FirstGraphemeClusterInString(content[col:], state)
		col += len(cluster)
	}
	return col
}
