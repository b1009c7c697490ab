package option

import (
	"errors"
	"fmt"
	"reflect"
	"testing"
)

type recorder struct {
	changes []string
}

func (r *recorder) OnOptionChanged(name string, value any) {
	if value == nil {
		r.changes = append(r.changes, name+"=<nil>")
		return
	}
	r.changes = append(r.changes, fmt.Sprintf("%s=%v", name, value))
}

func TestManagerSetGet(t *testing.T) {
	m := New(nil)
	if err := m.Set("tabstop", 4); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	v, ok := m.Get("tabstop")
	if !ok || v != 4 {
		t.Errorf("Get = %v, %v; want 4, true", v, ok)
	}
	if _, ok := m.Get("missing"); ok {
		t.Error("Get of unset option should fail")
	}
	if !m.IsLocal("tabstop") {
		t.Error("tabstop should be local")
	}
}

func TestManagerInvalidName(t *testing.T) {
	m := New(nil)
	tests := []string{"", "a b", "a..b", ".a", "a."}
	for _, name := range tests {
		if err := m.Set(name, 1); !errors.Is(err, ErrInvalidName) {
			t.Errorf("Set(%q) error = %v, want ErrInvalidName", name, err)
		}
	}
	if err := m.Set("a", nil); err == nil {
		t.Error("Set with nil value should fail")
	}
}

func TestManagerParentFallback(t *testing.T) {
	global := New(nil)
	buf := New(global)
	win := New(buf)

	global.Set("indent.width", 8)
	buf.Set("filetype", "go")

	if n, err := win.Int("indent.width"); err != nil || n != 8 {
		t.Errorf("win indent.width = %d, %v; want 8", n, err)
	}
	if s, err := win.String("filetype"); err != nil || s != "go" {
		t.Errorf("win filetype = %q, %v; want go", s, err)
	}
	if win.IsLocal("indent.width") {
		t.Error("inherited option must not be local")
	}

	buf.Set("indent.width", 4)
	if n, _ := win.Int("indent.width"); n != 4 {
		t.Errorf("override not visible: %d", n)
	}

	buf.Unset("indent.width")
	if n, _ := win.Int("indent.width"); n != 8 {
		t.Errorf("unset should reveal parent: %d", n)
	}
}

func TestManagerTypedAccessors(t *testing.T) {
	m := New(nil)
	m.Set("i", int64(3))
	m.Set("f", 2.0)
	m.Set("frac", 2.5)
	m.Set("s", "x")
	m.Set("b", true)

	tests := []struct {
		name    string
		get     func() (any, error)
		want    any
		wantErr error
	}{
		{"int64", func() (any, error) { return m.Int("i") }, 3, nil},
		{"integral float", func() (any, error) { return m.Int("f") }, 2, nil},
		{"fractional float", func() (any, error) { return m.Int("frac") }, 0, ErrTypeMismatch},
		{"string", func() (any, error) { return m.String("s") }, "x", nil},
		{"string mismatch", func() (any, error) { return m.String("i") }, "", ErrTypeMismatch},
		{"bool", func() (any, error) { return m.Bool("b") }, true, nil},
		{"bool mismatch", func() (any, error) { return m.Bool("s") }, false, ErrTypeMismatch},
		{"missing", func() (any, error) { return m.Bool("nope") }, false, ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.get()
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTypeErrorMessage(t *testing.T) {
	m := New(nil)
	m.Set("s", "x")
	_, err := m.Int("s")

	var te *TypeError
	if !errors.As(err, &te) {
		t.Fatalf("error %v is not a *TypeError", err)
	}
	if te.Name != "s" || te.Expected != "int" {
		t.Errorf("TypeError = %+v", te)
	}
	if err.Error() != "option s: expected int, got string" {
		t.Errorf("Error() = %q", err.Error())
	}
}

func TestManagerFlatten(t *testing.T) {
	global := New(nil)
	buf := New(global)
	global.Set("a", 1)
	global.Set("b", 2)
	buf.Set("b", 3)
	buf.Set("c", 4)

	want := map[string]any{"a": 1, "b": 3, "c": 4}
	if got := buf.Flatten(); !reflect.DeepEqual(got, want) {
		t.Errorf("Flatten = %v, want %v", got, want)
	}
	if got := buf.Names(); !reflect.DeepEqual(got, []string{"b", "c"}) {
		t.Errorf("Names = %v", got)
	}
}

func TestManagerWatchPropagation(t *testing.T) {
	global := New(nil)
	buf := New(global)
	win := New(buf)

	rb, rw := &recorder{}, &recorder{}
	buf.Watch(rb)
	win.Watch(rw)

	global.Set("x", "one")
	buf.Set("y", "two")
	win.Set("x", "own")
	global.Set("x", "three")

	wantBuf := []string{"x=one", "y=two", "x=three"}
	wantWin := []string{"x=one", "y=two", "x=own"}
	if !reflect.DeepEqual(rb.changes, wantBuf) {
		t.Errorf("buffer watcher saw %v, want %v", rb.changes, wantBuf)
	}
	if !reflect.DeepEqual(rw.changes, wantWin) {
		t.Errorf("window watcher saw %v, want %v", rw.changes, wantWin)
	}
}

func TestManagerUnsetNotifiesParentValue(t *testing.T) {
	global := New(nil)
	buf := New(global)
	r := &recorder{}
	buf.Watch(r)

	global.Set("x", "g")
	buf.Set("x", "b")
	buf.Unset("x")
	buf.Set("y", "b")
	buf.Unset("y")

	want := []string{"x=g", "x=b", "x=g", "y=b", "y=<nil>"}
	if !reflect.DeepEqual(r.changes, want) {
		t.Errorf("changes = %v, want %v", r.changes, want)
	}
	if buf.Unset("y") {
		t.Error("Unset of an option not set locally should return false")
	}
}

func TestSubscriptionUnsubscribe(t *testing.T) {
	m := New(nil)
	calls := 0
	sub := m.Watch(WatcherFunc(func(string, any) { calls++ }))
	m.Watch(WatcherFunc(func(string, any) {}))

	m.Set("a", 1)
	sub.Unsubscribe()
	sub.Unsubscribe()
	m.Set("a", 2)

	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
}

func TestManagerDetach(t *testing.T) {
	global := New(nil)
	buf := New(global)
	buf.Set("local", true)
	global.Set("inherited", true)

	r := &recorder{}
	buf.Watch(r)
	buf.Detach()
	global.Set("inherited", false)

	if buf.Parent() != nil {
		t.Error("Parent should be nil after Detach")
	}
	if _, ok := buf.Get("inherited"); ok {
		t.Error("parent values should not be visible after Detach")
	}
	if b, _ := buf.Bool("local"); !b {
		t.Error("local values must survive Detach")
	}
	if len(r.changes) != 0 {
		t.Errorf("detached scope received %v", r.changes)
	}
	buf.Detach()
}
