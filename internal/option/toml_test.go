package option

import (
	"errors"
	"strings"
	"testing"
)

func TestLoadTOML(t *testing.T) {
	m := New(nil)
	doc := `
filetype = "go"
autoreload = true

[indent]
width = 4

[ui.status]
show = false
`
	if err := m.LoadTOML(strings.NewReader(doc)); err != nil {
		t.Fatalf("LoadTOML failed: %v", err)
	}

	if s, err := m.String("filetype"); err != nil || s != "go" {
		t.Errorf("filetype = %q, %v", s, err)
	}
	if n, err := m.Int("indent.width"); err != nil || n != 4 {
		t.Errorf("indent.width = %d, %v", n, err)
	}
	if b, err := m.Bool("ui.status.show"); err != nil || b {
		t.Errorf("ui.status.show = %v, %v", b, err)
	}
	if b, err := m.Bool("autoreload"); err != nil || !b {
		t.Errorf("autoreload = %v, %v", b, err)
	}
}

func TestLoadTOMLOrder(t *testing.T) {
	m := New(nil)
	var names []string
	m.Watch(WatcherFunc(func(name string, _ any) {
		names = append(names, name)
	}))

	doc := "z = 1\na = 2\n[m]\nk = 3\n"
	if err := m.LoadTOML(strings.NewReader(doc)); err != nil {
		t.Fatalf("LoadTOML failed: %v", err)
	}

	want := []string{"a", "m.k", "z"}
	if strings.Join(names, ",") != strings.Join(want, ",") {
		t.Errorf("set order = %v, want %v", names, want)
	}
}

func TestLoadTOMLParseError(t *testing.T) {
	m := New(nil)
	err := m.LoadTOML(strings.NewReader("a = 1\n[broken\n"))
	if err == nil {
		t.Fatal("expected a parse error")
	}
	if len(m.Names()) != 0 {
		t.Errorf("nothing should be set on parse error, got %v", m.Names())
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("boom")
}

func TestLoadTOMLReadError(t *testing.T) {
	m := New(nil)
	if err := m.LoadTOML(failingReader{}); err == nil || !strings.Contains(err.Error(), "boom") {
		t.Errorf("error = %v, want read error", err)
	}
}
