package cursor

import (
	"reflect"
	"testing"

	"github.com/dshills/textcore/internal/engine/buffer"
)

func coords(s *Set) []string {
	out := make([]string, s.Count())
	for i, sel := range s.All() {
		out[i] = sel.String()
	}
	return out
}

func TestNewSet(t *testing.T) {
	b := buffer.New("test", buffer.FlagNone, "abc\n")
	s := NewSet(b)

	if s.Count() != 1 || !s.Primary().IsEmpty() || !s.Primary().Head.IsBegin() {
		t.Errorf("new set = %v", coords(s))
	}
	if s.Buffer() != b {
		t.Error("Buffer mismatch")
	}
}

func TestSetNormalize(t *testing.T) {
	b := buffer.New("test", buffer.FlagNone, "abcdefghij\n")
	s := NewSet(b)
	s.SetAll([]Selection{
		NewSelection(at(b, 0, 6), at(b, 0, 8)),
		NewSelection(at(b, 0, 0), at(b, 0, 2)),
		NewSelection(at(b, 0, 1), at(b, 0, 4)),
		NewCursorSelection(at(b, 0, 8)),
	})

	want := []string{"Selection((0:0)→(0:4))", "Selection((0:6)→(0:8))"}
	if got := coords(s); !reflect.DeepEqual(got, want) {
		t.Errorf("selections = %v, want %v", got, want)
	}
	if got := s.Contents(); !reflect.DeepEqual(got, []string{"abcd", "gh"}) {
		t.Errorf("Contents = %q", got)
	}
}

func TestSetAddAndClear(t *testing.T) {
	b := buffer.New("test", buffer.FlagNone, "a\nb\nc\n")
	other := buffer.New("other", buffer.FlagNone, "a\nb\nc\n")
	s := NewSet(b)

	s.Add(NewCursorSelection(at(b, 2, 0)))
	s.Add(NewCursorSelection(at(b, 1, 0)))
	s.Add(NewCursorSelection(at(other, 1, 1)))
	if s.Count() != 3 {
		t.Fatalf("Count = %d, want 3", s.Count())
	}
	if sel, ok := s.Get(1); !ok || sel.Head.Line() != 1 {
		t.Errorf("Get(1) = %v, %v", sel, ok)
	}
	if _, ok := s.Get(3); ok {
		t.Error("Get out of range should fail")
	}

	s.Clear()
	if s.Count() != 1 || s.Primary().Head.Line() != 0 {
		t.Errorf("after Clear = %v", coords(s))
	}

	s.SetAll(nil)
	if s.Count() != 1 || !s.Primary().Head.IsBegin() {
		t.Errorf("SetAll(nil) = %v", coords(s))
	}
}

func TestSetFollowsBufferEdits(t *testing.T) {
	b := buffer.New("test", buffer.FlagNone, "a\nb\nc\n")
	s := NewSet(b)
	s.Attach()
	s.Attach()
	defer s.Detach()

	s.SetAll([]Selection{
		NewCursorSelection(at(b, 0, 1)),
		NewCursorSelection(at(b, 1, 0)),
		NewSelection(at(b, 2, 0), at(b, 2, 1)),
	})

	if err := b.Insert(b.Begin(), "X\n"); err != nil {
		t.Fatal(err)
	}
	want := []string{"Cursor(1:1)", "Cursor(2:0)", "Selection((3:0)→(3:1))"}
	if got := coords(s); !reflect.DeepEqual(got, want) {
		t.Errorf("after insert = %v, want %v", got, want)
	}
	if got := s.Contents(); got[2] != "c" {
		t.Errorf("selection lost its text: %q", got)
	}

	b.Undo()
	want = []string{"Cursor(0:1)", "Cursor(1:0)", "Selection((2:0)→(2:1))"}
	if got := coords(s); !reflect.DeepEqual(got, want) {
		t.Errorf("after undo = %v, want %v", got, want)
	}
}

func TestSetMergesAfterErase(t *testing.T) {
	b := buffer.New("test", buffer.FlagNone, "abcd\n")
	s := NewSet(b)
	s.Attach()
	defer s.Detach()
	s.SetAll([]Selection{
		NewCursorSelection(at(b, 0, 1)),
		NewCursorSelection(at(b, 0, 3)),
	})

	b.Erase(b.Begin(), at(b, 0, 4))
	if s.Count() != 1 || s.Primary().Head.Coord() != (buffer.Coord{}) {
		t.Errorf("cursors inside the erased range should merge: %v", coords(s))
	}
}

func TestSetDetach(t *testing.T) {
	b := buffer.New("test", buffer.FlagNone, "abc\n")
	s := NewSet(b)
	s.SetAll([]Selection{NewCursorSelection(at(b, 0, 2))})
	s.Attach()
	s.Detach()
	s.Detach()

	b.Insert(b.Begin(), "xy")
	if s.Primary().Head.Column() != 2 {
		t.Errorf("detached set moved to %v", s.Primary().Head.Coord())
	}
	if b.ListenerCount() != 0 {
		t.Errorf("ListenerCount = %d", b.ListenerCount())
	}
}

func TestSetClamp(t *testing.T) {
	b := buffer.New("test", buffer.FlagNone, "abc\ndef\n")
	s := NewSet(b)
	s.SetAll([]Selection{NewSelection(at(b, 0, 1), at(b, 1, 2))})

	b.Erase(at(b, 0, 2), b.End())
	if s.Primary().Valid() {
		t.Fatal("unattached selection should be stale")
	}

	s.Clamp(true)
	if !s.Primary().Valid() {
		t.Errorf("Clamp left %v", s.Primary())
	}
	if got := s.Primary().Head.Coord(); got != (buffer.Coord{Line: 0, Column: 1}) {
		t.Errorf("clamped head = %v", got)
	}
}

func TestSetCollapseAll(t *testing.T) {
	b := buffer.New("test", buffer.FlagNone, "abcdef\n")
	s := NewSet(b)
	s.SetAll([]Selection{
		NewSelection(at(b, 0, 0), at(b, 0, 2)),
		NewSelection(at(b, 0, 5), at(b, 0, 3)),
	})
	s.CollapseAll()

	want := []string{"Cursor(0:2)", "Cursor(0:3)"}
	if got := coords(s); !reflect.DeepEqual(got, want) {
		t.Errorf("CollapseAll = %v, want %v", got, want)
	}
}

func TestSetInvalidAfterBufferClose(t *testing.T) {
	b := buffer.New("test", buffer.FlagNone, "abc\n")
	s := NewSet(b)
	s.Attach()
	b.Close()

	if s.Primary().Valid() {
		t.Error("selections of a closed buffer must be invalid")
	}
}
