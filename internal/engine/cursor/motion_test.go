package cursor

import (
	"reflect"
	"testing"

	"github.com/dshills/textcore/internal/engine/buffer"
)

func TestNextGrapheme(t *testing.T) {
	// e + combining acute is a single cluster of three bytes
	b := buffer.New("test", buffer.FlagNone, "ae\u0301b\nx")

	tests := []struct {
		from, want buffer.Coord
	}{
		{buffer.Coord{Line: 0, Column: 0}, buffer.Coord{Line: 0, Column: 1}},
		{buffer.Coord{Line: 0, Column: 1}, buffer.Coord{Line: 0, Column: 4}},
		{buffer.Coord{Line: 0, Column: 4}, buffer.Coord{Line: 0, Column: 5}},
		{buffer.Coord{Line: 0, Column: 5}, buffer.Coord{Line: 1, Column: 0}},
		{buffer.Coord{Line: 1, Column: 0}, buffer.Coord{Line: 1, Column: 1}},
		{buffer.Coord{Line: 1, Column: 1}, buffer.Coord{Line: 1, Column: 1}},
	}
	for _, tt := range tests {
		got := NextGrapheme(b.IteratorAt(tt.from, false)).Coord()
		if got != tt.want {
			t.Errorf("NextGrapheme(%v) = %v, want %v", tt.from, got, tt.want)
		}
	}
}

func TestPrevGrapheme(t *testing.T) {
	b := buffer.New("test", buffer.FlagNone, "ae\u0301b\nx")

	tests := []struct {
		from, want buffer.Coord
	}{
		{buffer.Coord{Line: 0, Column: 0}, buffer.Coord{Line: 0, Column: 0}},
		{buffer.Coord{Line: 0, Column: 1}, buffer.Coord{Line: 0, Column: 0}},
		{buffer.Coord{Line: 0, Column: 4}, buffer.Coord{Line: 0, Column: 1}},
		{buffer.Coord{Line: 1, Column: 0}, buffer.Coord{Line: 0, Column: 5}},
		{buffer.Coord{Line: 1, Column: 1}, buffer.Coord{Line: 1, Column: 0}},
	}
	for _, tt := range tests {
		got := PrevGrapheme(b.IteratorAt(tt.from, false)).Coord()
		if got != tt.want {
			t.Errorf("PrevGrapheme(%v) = %v, want %v", tt.from, got, tt.want)
		}
	}
}

func TestGraphemeMotionInvalid(t *testing.T) {
	var it Iterator
	if NextGrapheme(it) != it || PrevGrapheme(it) != it {
		t.Error("motion of an invalid iterator should not move it")
	}
}

func TestSetMove(t *testing.T) {
	b := buffer.New("test", buffer.FlagNone, "abc\nde\u0301f\n")
	s := NewSet(b)
	s.SetAll([]Selection{
		NewCursorSelection(at(b, 0, 1)),
		NewCursorSelection(at(b, 1, 1)),
	})

	s.MoveRight(false)
	want := []string{"Cursor(0:2)", "Cursor(1:4)"}
	if got := coords(s); !reflect.DeepEqual(got, want) {
		t.Errorf("MoveRight = %v, want %v", got, want)
	}

	s.MoveLeft(true)
	want = []string{"Selection((0:2)←(0:1))", "Selection((1:4)←(1:1))"}
	if got := coords(s); !reflect.DeepEqual(got, want) {
		t.Errorf("MoveLeft extend = %v, want %v", got, want)
	}
	if got := s.Contents(); !reflect.DeepEqual(got, []string{"b", "e\u0301"}) {
		t.Errorf("Contents = %q", got)
	}
}

func TestSetMoveMerges(t *testing.T) {
	b := buffer.New("test", buffer.FlagNone, "abc\n")
	s := NewSet(b)
	s.SetAll([]Selection{
		NewCursorSelection(at(b, 0, 0)),
		NewCursorSelection(at(b, 0, 1)),
	})

	s.MoveLeft(false)
	if s.Count() != 1 {
		t.Errorf("cursors meeting at the start should merge: %v", coords(s))
	}
}
