package tracking

import (
	"slices"
	"strconv"
	"strings"

	"github.com/dshills/textcore/internal/engine/buffer"
)

// EditKind is the kind of a line edit.
type EditKind uint8

const (
	// EditEqual keeps a line.
	EditEqual EditKind = iota

	// EditInsert adds a line of the new text.
	EditInsert

	// EditDelete removes a line of the old text.
	EditDelete
)

// String returns a human-readable representation of the edit kind.
func (k EditKind) String() string {
	switch k {
	case EditEqual:
		return "equal"
	case EditInsert:
		return "insert"
	case EditDelete:
		return "delete"
	default:
		return "unknown"
	}
}

// Edit is one step of a line edit script. OldLine and NewLine are the
// 0-based positions in the old and new texts the step applies at.
type Edit struct {
	Kind    EditKind
	OldLine int
	NewLine int
	Text    string
}

// DiffLines returns a shortest edit script turning a into b, computed
// with the Myers algorithm.
func DiffLines(a, b []string) []Edit {
	n, m := len(a), len(b)
	limit := n + m
	if limit == 0 {
		return nil
	}

	// v[off+k] is the furthest x reached on diagonal k.
	off := limit
	v := make([]int, 2*limit+2)
	var trace [][]int

	for d := 0; d <= limit; d++ {
		trace = append(trace, slices.Clone(v))
		for k := -d; k <= d; k += 2 {
			var x int
			if k == -d || (k != d && v[off+k-1] < v[off+k+1]) {
				x = v[off+k+1]
			} else {
				x = v[off+k-1] + 1
			}
			y := x - k
			for x < n && y < m && a[x] == b[y] {
				x++
				y++
			}
			v[off+k] = x
			if x >= n && y >= m {
				return backtrack(trace, a, b, off)
			}
		}
	}
	return nil
}

// backtrack walks the saved frontiers from the end of both texts back to
// the start. trace[d] holds the frontier reached after d-1 edits.
func backtrack(trace [][]int, a, b []string, off int) []Edit {
	x, y := len(a), len(b)
	var edits []Edit

	for d := len(trace) - 1; d > 0; d-- {
		v := trace[d]
		k := x - y

		prevK := k - 1
		if k == -d || (k != d && v[off+k-1] < v[off+k+1]) {
			prevK = k + 1
		}
		prevX := v[off+prevK]
		prevY := prevX - prevK

		for x > prevX && y > prevY {
			x--
			y--
			edits = append(edits, Edit{Kind: EditEqual, OldLine: x, NewLine: y, Text: a[x]})
		}
		if x == prevX {
			y--
			edits = append(edits, Edit{Kind: EditInsert, OldLine: x, NewLine: y, Text: b[y]})
		} else {
			x--
			edits = append(edits, Edit{Kind: EditDelete, OldLine: x, NewLine: y, Text: a[x]})
		}
	}
	for x > 0 && y > 0 {
		x--
		y--
		edits = append(edits, Edit{Kind: EditEqual, OldLine: x, NewLine: y, Text: a[x]})
	}

	slices.Reverse(edits)
	return edits
}

// DiffSnapshots diffs the lines of two snapshots. Line text excludes the
// end of line.
func DiffSnapshots(old, cur *buffer.Snapshot) []Edit {
	return DiffLines(snapshotLines(old), snapshotLines(cur))
}

func snapshotLines(s *buffer.Snapshot) []string {
	lines := make([]string, s.LineCount())
	for i := range lines {
		lines[i] = strings.TrimSuffix(s.LineContent(i), "\n")
	}
	return lines
}

// HasChanges reports whether the script contains any insertion or
// deletion.
func HasChanges(edits []Edit) bool {
	return slices.ContainsFunc(edits, func(e Edit) bool { return e.Kind != EditEqual })
}

// Hunk is a group of nearby edits with surrounding context. Lines carry a
// ' ', '+' or '-' prefix.
type Hunk struct {
	OldStart, OldCount int
	NewStart, NewCount int
	Lines              []string
}

// Hunks groups an edit script into hunks keeping context unchanged lines
// around each change. Changes separated by at most 2*context unchanged
// lines share a hunk.
func Hunks(edits []Edit, context int) []Hunk {
	context = max(context, 0)

	var hunks []Hunk
	for i := 0; i < len(edits); {
		if edits[i].Kind == EditEqual {
			i++
			continue
		}

		start := max(i-context, 0)
		end := i + 1
		for {
			j := end
			for j < len(edits) && edits[j].Kind == EditEqual {
				j++
			}
			if j == len(edits) || j-end > 2*context {
				break
			}
			end = j + 1
		}
		stop := min(end+context, len(edits))

		h := Hunk{OldStart: edits[start].OldLine, NewStart: edits[start].NewLine}
		for _, e := range edits[start:stop] {
			switch e.Kind {
			case EditEqual:
				h.Lines = append(h.Lines, " "+e.Text)
				h.OldCount++
				h.NewCount++
			case EditDelete:
				h.Lines = append(h.Lines, "-"+e.Text)
				h.OldCount++
			case EditInsert:
				h.Lines = append(h.Lines, "+"+e.Text)
				h.NewCount++
			}
		}
		hunks = append(hunks, h)
		i = stop
	}
	return hunks
}

// Unified renders an edit script in unified diff format with three lines
// of context. It returns "" when nothing changed.
func Unified(edits []Edit, oldName, newName string) string {
	if !HasChanges(edits) {
		return ""
	}

	var sb strings.Builder
	sb.WriteString("--- " + oldName + "\n")
	sb.WriteString("+++ " + newName + "\n")
	for _, h := range Hunks(edits, 3) {
		sb.WriteString("@@ -" + hunkRange(h.OldStart, h.OldCount))
		sb.WriteString(" +" + hunkRange(h.NewStart, h.NewCount) + " @@\n")
		for _, line := range h.Lines {
			sb.WriteString(line)
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// hunkRange formats a 0-based start as the 1-based "start,count" of a
// unified header. An empty range names the line before it.
func hunkRange(start, count int) string {
	if count == 0 {
		return strconv.Itoa(start) + ",0"
	}
	return strconv.Itoa(start+1) + "," + strconv.Itoa(count)
}
