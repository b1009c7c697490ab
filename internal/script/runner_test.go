package script

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/dshills/textcore/internal/engine"
	"github.com/dshills/textcore/internal/engine/buffer"
	"github.com/dshills/textcore/internal/engine/tracking"
)

func newRunner(t *testing.T, content string) (*Runner, *buffer.Buffer, *strings.Builder) {
	t.Helper()
	e := engine.New()
	buf, err := e.Create("test", buffer.FlagNone, content)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	var out strings.Builder
	r, err := New(e, "test", &out)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(r.Close)
	return r, buf, &out
}

func run(t *testing.T, r *Runner, src string) {
	t.Helper()
	if err := r.Run(context.Background(), strings.NewReader(src)); err != nil {
		t.Fatalf("Run: %v", err)
	}
}

func TestRunEdits(t *testing.T) {
	r, buf, out := newRunner(t, "\n")

	run(t, r, `
# build a line
insert 0 0 "hello world"
status
erase 0 5 0 11
undo
print
`)
	want := "lines=1 chars=12 timestamp=1 modified=true\nhello world\n"
	if out.String() != want {
		t.Errorf("output = %q, want %q", out.String(), want)
	}
	if buf.Timestamp() != 3 {
		t.Errorf("Timestamp = %d, want 3", buf.Timestamp())
	}
}

func TestRunGroupsAndSave(t *testing.T) {
	r, buf, out := newRunner(t, "\n")

	run(t, r, `
begin
insert 0 0 "a"
insert 0 1 "b"
end
save
status
undo
print
redo
redo
`)
	want := "lines=1 chars=3 timestamp=2 modified=false\n\nnothing to redo\n"
	if out.String() != want {
		t.Errorf("output = %q, want %q", out.String(), want)
	}
	if buf.Text() != "ab\n" || buf.IsModified() {
		t.Errorf("Text = %q, modified = %v", buf.Text(), buf.IsModified())
	}
}

func TestRunCursors(t *testing.T) {
	r, buf, out := newRunner(t, "ab\ncd\n")

	run(t, r, `
cursor 0 1
add 1 1
type "X"
selections
right
selections
`)
	if buf.Text() != "aXb\ncXd\n" {
		t.Errorf("Text = %q", buf.Text())
	}
	want := "Cursor(0:1)\nCursor(1:1)\nCursor(0:2)\nCursor(1:2)\n"
	if out.String() != want {
		t.Errorf("output = %q, want %q", out.String(), want)
	}

	out.Reset()
	run(t, r, `
select 0 0 0 3
delete
selections
`)
	if buf.Text() != "\ncXd\n" {
		t.Errorf("Text after delete = %q", buf.Text())
	}
	if out.String() != "Cursor(0:0)\n" {
		t.Errorf("output = %q", out.String())
	}
}

func TestRunTracking(t *testing.T) {
	r, _, out := newRunner(t, "a\nb\nc\n")

	run(t, r, `
checkpoint base
replace 1 0 1 1 "x"
changes 0
diff base
`)
	want := "erase (1:0)-(1:1)@1\n" +
		"insert (1:0)-(1:1)@2\n" +
		"--- base\n+++ test\n@@ -1,3 +1,3 @@\n a\n-b\n+x\n c\n"
	if out.String() != want {
		t.Errorf("output =\n%s\nwant\n%s", out.String(), want)
	}
}

func TestRunOptions(t *testing.T) {
	r, buf, _ := newRunner(t, "\n")

	run(t, r, `
set tabstop 4
set filetype "go"
set readonly true
`)
	if n, err := buf.Options().Int("tabstop"); err != nil || n != 4 {
		t.Errorf("tabstop = %d, %v", n, err)
	}
	if s, err := buf.Options().String("filetype"); err != nil || s != "go" {
		t.Errorf("filetype = %q, %v", s, err)
	}
	if v, err := buf.Options().Bool("readonly"); err != nil || !v {
		t.Errorf("readonly = %v, %v", v, err)
	}
}

func TestRunMarks(t *testing.T) {
	r, buf, out := newRunner(t, "\n")

	run(t, r, `
insert 0 0 "a"
mark one
insert 0 1 "b"
insert 0 2 "c"
mark three
undo-to one
print
redo-to three
print
undo-to three
`)
	want := "undid 2\na\nredid 2\nabc\nundid 0\n"
	if out.String() != want {
		t.Errorf("output = %q, want %q", out.String(), want)
	}

	// A new edit after undoing discards the branch "three" sits on.
	out.Reset()
	run(t, r, `
undo-to one
insert 0 1 "x"
`)
	err := r.Exec("redo-to three")
	if !errors.Is(err, buffer.ErrCheckpointUnreachable) {
		t.Errorf("redo-to three error = %v, want %v", err, buffer.ErrCheckpointUnreachable)
	}
	if buf.Text() != "ax\n" {
		t.Errorf("Text = %q, want %q", buf.Text(), "ax\n")
	}
	run(t, r, "undo-to one\nprint\n")
	if out.String() != "undid 2\nundid 1\na\n" {
		t.Errorf("output = %q", out.String())
	}
}

func TestExecErrors(t *testing.T) {
	tests := []struct {
		line string
		want error
	}{
		{"bogus", ErrUnknownCommand},
		{`"insert" 0 0 "x"`, ErrUnknownCommand},
		{"insert 0 0", ErrSyntax},
		{`insert 0 0 "x`, ErrSyntax},
		{`insert a 0 "x"`, ErrSyntax},
		{`insert 5 0 "x"`, ErrPosition},
		{`insert 0 9 "x"`, ErrPosition},
		{"erase 0 1 0 0", buffer.ErrRangeInvalid},
		{"left sideways", ErrSyntax},
		{"changes -1", ErrSyntax},
		{"diff missing", tracking.ErrCheckpointNotFound},
		{"undo-to missing", ErrUnknownMark},
		{"redo-to missing", ErrUnknownMark},
		{"mark", ErrSyntax},
		{"set tabstop 4.5", ErrSyntax},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			r, _, _ := newRunner(t, "ab\n")
			err := r.Exec(tt.line)
			if err == nil {
				t.Fatalf("Exec(%q) succeeded", tt.line)
			}
			if tt.want != nil && !errors.Is(err, tt.want) {
				t.Errorf("Exec(%q) error = %v, want %v", tt.line, err, tt.want)
			}
		})
	}
}

func TestRunStopsAtFirstError(t *testing.T) {
	r, buf, _ := newRunner(t, "\n")

	err := r.Run(context.Background(), strings.NewReader("insert 0 0 \"a\"\nbegin\nbegin\ninsert 0 0 \"b\"\n"))
	if !errors.Is(err, buffer.ErrGroupOpen) {
		t.Fatalf("Run error = %v, want ErrGroupOpen", err)
	}
	if !strings.HasPrefix(err.Error(), "line 3: ") {
		t.Errorf("error %q does not name line 3", err)
	}
	if buf.Text() != "a\n" {
		t.Errorf("Text = %q", buf.Text())
	}
}

func TestRunCanceled(t *testing.T) {
	r, buf, _ := newRunner(t, "\n")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := r.Run(ctx, strings.NewReader("insert 0 0 \"a\"\n")); !errors.Is(err, context.Canceled) {
		t.Errorf("Run error = %v", err)
	}
	if buf.Timestamp() != 0 {
		t.Error("canceled run edited the buffer")
	}
}

func TestNewUnknownBuffer(t *testing.T) {
	if _, err := New(engine.New(), "missing", nil); !errors.Is(err, engine.ErrBufferNotFound) {
		t.Errorf("New error = %v", err)
	}
}
