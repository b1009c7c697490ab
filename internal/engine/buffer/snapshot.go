package buffer

import (
	"strings"
	"unicode/utf8"
)

// Snapshot is a read-only copy of a buffer's content at one timestamp.
// It is safe for concurrent access and does not change when the buffer is
// modified afterwards.
type Snapshot struct {
	name      string
	lines     lineTable
	timestamp uint64
}

// Snapshot captures the buffer's current content. Line contents are
// immutable strings, so only the table is copied.
func (b *Buffer) Snapshot() *Snapshot {
	lines := make(lineTable, len(b.lines))
	copy(lines, b.lines)
	return &Snapshot{
		name:      b.name,
		lines:     lines,
		timestamp: b.timestamp,
	}
}

// Name returns the name of the buffer the snapshot was taken from.
func (s *Snapshot) Name() string {
	return s.name
}

// Timestamp returns the buffer timestamp at capture time.
func (s *Snapshot) Timestamp() uint64 {
	return s.timestamp
}

// Text returns the full snapshot content.
func (s *Snapshot) Text() string {
	var sb strings.Builder
	sb.Grow(s.lines.charCount())
	for _, l := range s.lines {
		sb.WriteString(l.content)
	}
	return sb.String()
}

// TextRange returns the bytes in [begin, end).
func (s *Snapshot) TextRange(begin, end Coord) string {
	return s.lines.slice(s.lines.offset(begin), s.lines.offset(end))
}

// CharacterCount returns the total number of bytes.
func (s *Snapshot) CharacterCount() int {
	return s.lines.charCount()
}

// LineCount returns the number of lines.
func (s *Snapshot) LineCount() int {
	return s.lines.count()
}

// LineContent returns a line, line break included.
func (s *Snapshot) LineContent(line int) string {
	if line < 0 || line >= s.lines.count() {
		return ""
	}
	return s.lines[line].content
}

// LineLength returns the length of a line in bytes, line break included.
func (s *Snapshot) LineLength(line int) int {
	return s.lines.lineLength(line)
}

// ByteAt returns the byte at c.
func (s *Snapshot) ByteAt(c Coord) (byte, bool) {
	return s.lines.byteAt(c)
}

// RuneAt returns the rune starting at c and its width in bytes.
// Returns utf8.RuneError and 0 if c is not on a byte of a line.
func (s *Snapshot) RuneAt(c Coord) (rune, int) {
	if !s.lines.contains(c) || c.Column >= s.lines[c.Line].length() {
		return utf8.RuneError, 0
	}
	return utf8.DecodeRuneInString(s.lines[c.Line].content[c.Column:])
}
