package buffer

import (
	"slices"
	"sort"
	"strings"

	"github.com/dshills/textcore/internal/engine/coord"
)

// line is one entry of the line table. content includes its terminating
// line break, except possibly for the final line.
type line struct {
	start   int // absolute byte offset of content[0]
	content string
}

func (l line) length() int {
	return len(l.content)
}

func (l line) endsWithNewline() bool {
	return strings.HasSuffix(l.content, "\n")
}

// lineTable is the ordered line sequence backing a buffer. It is never
// empty: an empty document is a single empty line.
type lineTable []line

// newLineTable splits content into lines.
func newLineTable(content string) lineTable {
	t := lineTable(toLines(splitLines(content)))
	if len(t) == 0 {
		t = lineTable{{}}
	}
	t.reindex(0)
	return t
}

// splitLines cuts s after every line break. A trailing fragment without a
// line break becomes the last piece; an empty s yields no pieces.
func splitLines(s string) []string {
	var pieces []string
	for len(s) > 0 {
		i := strings.IndexByte(s, '\n')
		if i < 0 {
			pieces = append(pieces, s)
			break
		}
		pieces = append(pieces, s[:i+1])
		s = s[i+1:]
	}
	return pieces
}

func toLines(pieces []string) []line {
	lines := make([]line, len(pieces))
	for i, p := range pieces {
		lines[i].content = p
	}
	return lines
}

// reindex recomputes start offsets from line i onwards.
func (t lineTable) reindex(i int) {
	if i <= 0 {
		t[0].start = 0
		i = 1
	}
	for ; i < len(t); i++ {
		t[i].start = t[i-1].start + t[i-1].length()
	}
}

func (t lineTable) count() int {
	return len(t)
}

func (t lineTable) lineLength(l int) int {
	if l < 0 || l >= len(t) {
		return 0
	}
	return t[l].length()
}

func (t lineTable) charCount() int {
	last := t[len(t)-1]
	return last.start + last.length()
}

// end returns the coordinate one past the last byte.
func (t lineTable) end() coord.Coord {
	last := len(t) - 1
	return coord.Coord{Line: last, Column: t[last].length()}
}

// contains reports whether c addresses a byte of a line or the position
// right after its last byte.
func (t lineTable) contains(c coord.Coord) bool {
	return c.Line >= 0 && c.Line < len(t) && c.Column >= 0 && c.Column <= t[c.Line].length()
}

// offset returns the absolute byte offset of c. Coordinates past the last
// line resolve to the end of the document.
func (t lineTable) offset(c coord.Coord) int {
	if c.Line < 0 {
		return 0
	}
	if c.Line >= len(t) {
		return t.charCount()
	}
	return t[c.Line].start + c.Column
}

// lineAt returns the index of the line holding byte offset off.
func (t lineTable) lineAt(off int) int {
	i := sort.Search(len(t), func(i int) bool {
		return t[i].start > off
	})
	if i == 0 {
		return 0
	}
	return i - 1
}

// coordAt converts an absolute offset to its canonical coordinate. The
// offset one past the last byte maps to the end of the final line.
func (t lineTable) coordAt(off int) coord.Coord {
	if off <= 0 {
		return coord.Coord{}
	}
	if off >= t.charCount() {
		return t.end()
	}
	l := t.lineAt(off)
	return coord.Coord{Line: l, Column: off - t[l].start}
}

// canonical rewrites a coordinate at or past the end of a terminated line
// as the start of the next one. For the final line this yields the
// coordinate (count, 0), which only exists once content is appended.
func (t lineTable) canonical(c coord.Coord) coord.Coord {
	if c.Line >= 0 && c.Line < len(t) && c.Column >= t[c.Line].length() && t[c.Line].endsWithNewline() {
		return coord.Coord{Line: c.Line + 1, Column: 0}
	}
	return c
}

// clamp returns the nearest valid coordinate. With avoidEOL, the column
// stays on the last byte of a non-empty line.
func (t lineTable) clamp(c coord.Coord, avoidEOL bool) coord.Coord {
	c.Line = max(0, min(c.Line, len(t)-1))
	length := t[c.Line].length()
	maxCol := length
	if avoidEOL && length > 0 {
		maxCol = length - 1
	}
	c.Column = max(0, min(c.Column, maxCol))
	return c
}

// lineEnd returns the coordinate right after line l: the start of the next
// line, or the end of the document for the final line.
func (t lineTable) lineEnd(l int) coord.Coord {
	if l < len(t)-1 {
		return coord.Coord{Line: l + 1, Column: 0}
	}
	return t.end()
}

// byteAt returns the byte at c.
func (t lineTable) byteAt(c coord.Coord) (byte, bool) {
	if !t.contains(c) {
		return 0, false
	}
	if c.Column < t[c.Line].length() {
		return t[c.Line].content[c.Column], true
	}
	if c.Line+1 < len(t) && t[c.Line+1].length() > 0 {
		return t[c.Line+1].content[0], true
	}
	return 0, false
}

// slice returns the bytes in the offset range [from, to).
func (t lineTable) slice(from, to int) string {
	from = max(0, from)
	to = min(to, t.charCount())
	if from >= to {
		return ""
	}

	var sb strings.Builder
	sb.Grow(to - from)
	for l := t.lineAt(from); from < to; l++ {
		ln := t[l]
		lo := from - ln.start
		hi := min(ln.length(), to-ln.start)
		sb.WriteString(ln.content[lo:hi])
		from = ln.start + hi
	}
	return sb.String()
}

// insert splices content in at c and returns the table with the offset the
// content starts at.
func (t lineTable) insert(c coord.Coord, content string) (lineTable, int) {
	at := t.canonical(c)
	off := t.offset(at)

	lo, hi := at.Line, at.Line
	var prefix, suffix string
	if at.Line < len(t) {
		ln := t[at.Line].content
		prefix, suffix = ln[:at.Column], ln[at.Column:]
		hi = at.Line + 1
	}

	pieces := toLines(splitLines(prefix + content + suffix))
	t = slices.Replace(t, lo, hi, pieces...)
	t.reindex(lo)
	return t, off
}

// erase removes the bytes in [begin, end), merging the partial lines at both
// ends, and returns the table. begin and end must be ordered and contained.
func (t lineTable) erase(begin, end coord.Coord) lineTable {
	b := t.canonical(begin)
	e := t.canonical(end)

	lo := b.Line
	hi := len(t)
	var suffix string
	if e.Line < len(t) {
		suffix = t[e.Line].content[e.Column:]
		hi = e.Line + 1
	}
	var prefix string
	if b.Line < len(t) {
		prefix = t[b.Line].content[:b.Column]
	}

	pieces := toLines(splitLines(prefix + suffix))
	t = slices.Replace(t, lo, hi, pieces...)
	if len(t) == 0 {
		t = append(t, line{})
	}
	t.reindex(lo)
	return t
}
