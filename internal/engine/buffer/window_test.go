package buffer

import (
	"errors"
	"testing"

	"github.com/google/uuid"
)

func TestNewWindow(t *testing.T) {
	b := New("test", FlagNone, "\n")
	w1, err := b.NewWindow()
	if err != nil {
		t.Fatal(err)
	}
	w2, _ := b.NewWindow()

	if w1.ID() == uuid.Nil || w1.ID() == w2.ID() {
		t.Errorf("window IDs must be unique and non-nil: %v, %v", w1.ID(), w2.ID())
	}
	if w1.Buffer() != b {
		t.Error("window should reference its buffer")
	}
	if ws := b.Windows(); len(ws) != 2 || ws[0] != w1 || ws[1] != w2 {
		t.Errorf("Windows = %v", ws)
	}
}

func TestDeleteWindow(t *testing.T) {
	b := New("test", FlagNone, "\n")
	w, _ := b.NewWindow()

	if err := b.DeleteWindow(w); err != nil {
		t.Fatal(err)
	}
	if w.Buffer() != nil || len(b.Windows()) != 0 {
		t.Error("deleted window must be released")
	}
	if err := b.DeleteWindow(w); !errors.Is(err, ErrUnknownWindow) {
		t.Errorf("second DeleteWindow = %v, want ErrUnknownWindow", err)
	}

	other := New("other", FlagNone, "\n")
	ow, _ := other.NewWindow()
	if err := b.DeleteWindow(ow); !errors.Is(err, ErrUnknownWindow) {
		t.Errorf("DeleteWindow of a foreign window = %v", err)
	}
}

func TestWindowScopes(t *testing.T) {
	b := New("test", FlagNone, "\n")
	b.Options().Set("wrap", true)
	w, _ := b.NewWindow()

	if v, err := w.Options().Bool("wrap"); err != nil || !v {
		t.Errorf("window should inherit buffer options: %v, %v", v, err)
	}
	w.Options().Set("wrap", false)
	if v, _ := b.Options().Bool("wrap"); !v {
		t.Error("window options must not leak into the buffer")
	}

	ran := false
	b.Hooks().Add("WinDisplay", "", func(string, string) error {
		ran = true
		return nil
	})
	w.Hooks().Run("WinDisplay", "")
	if !ran {
		t.Error("window hooks should run buffer hooks")
	}

	b.DeleteWindow(w)
	if _, ok := w.Options().Get("nope"); ok {
		t.Error("unexpected option")
	}
	if w.Options().Parent() != nil {
		t.Error("deleted window options must be detached")
	}
}

func TestNewWindowClosed(t *testing.T) {
	b := New("test", FlagNone, "\n")
	b.Close()
	if _, err := b.NewWindow(); !errors.Is(err, ErrClosed) {
		t.Errorf("NewWindow on closed buffer = %v", err)
	}
}
