package script

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/dshills/textcore/internal/engine"
	"github.com/dshills/textcore/internal/engine/buffer"
	"github.com/dshills/textcore/internal/engine/cursor"
	"github.com/dshills/textcore/internal/engine/tracking"
)

// Option configures a Runner.
type Option func(*Runner)

// WithLogger sets the logger that traces executed commands.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runner) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// Runner executes commands against one buffer of an engine.
type Runner struct {
	buf     *buffer.Buffer
	tracker *tracking.Tracker
	cursors *cursor.Set
	marks   map[string]buffer.Checkpoint
	out     io.Writer
	logger  *slog.Logger
}

// New creates a runner for the buffer registered under name. Command output
// goes to out. The runner keeps a cursor set attached to the buffer until
// Close.
func New(e *engine.Engine, name string, out io.Writer, opts ...Option) (*Runner, error) {
	buf, ok := e.Buffer(name)
	if !ok {
		return nil, fmt.Errorf("script for %q: %w", name, engine.ErrBufferNotFound)
	}
	tr, _ := e.Tracker(name)

	r := &Runner{
		buf:     buf,
		tracker: tr,
		cursors: cursor.NewSet(buf),
		marks:   make(map[string]buffer.Checkpoint),
		out:     out,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.cursors.Attach()
	return r, nil
}

// Cursors returns the runner's selections.
func (r *Runner) Cursors() *cursor.Set {
	return r.cursors
}

// Close detaches the runner's cursor set from the buffer.
func (r *Runner) Close() {
	r.cursors.Detach()
}

// Run executes every command read from src and stops at the first failure,
// or when ctx is done.
func (r *Runner) Run(ctx context.Context, src io.Reader) error {
	sc := bufio.NewScanner(src)
	n := 0
	for sc.Scan() {
		n++
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := r.Exec(sc.Text()); err != nil {
			return fmt.Errorf("line %d: %w", n, err)
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("reading script: %w", err)
	}
	return nil
}

type command struct {
	args int // -1 for a variable count
	run  func(r *Runner, args []token) error
}

var commands = map[string]command{
	"insert":     {3, (*Runner).insert},
	"erase":      {4, (*Runner).erase},
	"replace":    {5, (*Runner).replace},
	"begin":      {0, (*Runner).begin},
	"end":        {0, (*Runner).end},
	"undo":       {0, (*Runner).undo},
	"redo":       {0, (*Runner).redo},
	"save":       {0, (*Runner).save},
	"mark":       {1, (*Runner).mark},
	"undo-to":    {1, (*Runner).undoTo},
	"redo-to":    {1, (*Runner).redoTo},
	"cursor":     {2, (*Runner).setCursor},
	"add":        {2, (*Runner).add},
	"select":     {4, (*Runner).selectRange},
	"type":       {1, (*Runner).typeText},
	"delete":     {0, (*Runner).deleteSelections},
	"left":       {-1, (*Runner).left},
	"right":      {-1, (*Runner).right},
	"print":      {0, (*Runner).print},
	"status":     {0, (*Runner).status},
	"selections": {0, (*Runner).selections},
	"checkpoint": {1, (*Runner).checkpoint},
	"diff":       {1, (*Runner).diff},
	"changes":    {1, (*Runner).changes},
	"set":        {2, (*Runner).set},
}

// Exec executes a single command line.
func (r *Runner) Exec(line string) error {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return nil
	}

	toks, err := tokenize(line)
	if err != nil {
		return err
	}
	name, args := toks[0].text, toks[1:]
	cmd, ok := commands[name]
	if !ok || toks[0].quoted {
		return fmt.Errorf("%w: %s", ErrUnknownCommand, name)
	}
	if cmd.args >= 0 && len(args) != cmd.args {
		return fmt.Errorf("%s: %w: want %d arguments, got %d", name, ErrSyntax, cmd.args, len(args))
	}

	r.logger.Debug("exec", "buffer", r.buf.Name(), "command", name, "timestamp", r.buf.Timestamp())
	if err := cmd.run(r, args); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}

func (r *Runner) insert(args []token) error {
	pos, err := parsePosition(r.buf, args[:2])
	if err != nil {
		return err
	}
	return r.buf.Insert(pos, args[2].text)
}

func (r *Runner) span(args []token) (buffer.Iterator, buffer.Iterator, error) {
	from, err := parsePosition(r.buf, args[:2])
	if err != nil {
		return buffer.Iterator{}, buffer.Iterator{}, err
	}
	to, err := parsePosition(r.buf, args[2:4])
	if err != nil {
		return buffer.Iterator{}, buffer.Iterator{}, err
	}
	return from, to, nil
}

func (r *Runner) erase(args []token) error {
	from, to, err := r.span(args)
	if err != nil {
		return err
	}
	return r.buf.Erase(from, to)
}

func (r *Runner) replace(args []token) error {
	from, to, err := r.span(args)
	if err != nil {
		return err
	}
	return r.buf.Replace(from, to, args[4].text)
}

func (r *Runner) begin([]token) error {
	return r.buf.BeginUndoGroup()
}

func (r *Runner) end([]token) error {
	r.buf.EndUndoGroup()
	return nil
}

func (r *Runner) undo([]token) error {
	if !r.buf.Undo() {
		fmt.Fprintln(r.out, "nothing to undo")
	}
	return nil
}

func (r *Runner) redo([]token) error {
	if !r.buf.Redo() {
		fmt.Fprintln(r.out, "nothing to redo")
	}
	return nil
}

func (r *Runner) save([]token) error {
	r.buf.NotifySaved()
	return nil
}

func (r *Runner) mark(args []token) error {
	r.marks[args[0].text] = r.buf.CreateCheckpoint()
	return nil
}

func (r *Runner) undoTo(args []token) error {
	cp, ok := r.marks[args[0].text]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownMark, args[0].text)
	}
	n, err := r.buf.UndoToCheckpoint(cp)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(r.out, "undid %d\n", n)
	return err
}

func (r *Runner) redoTo(args []token) error {
	cp, ok := r.marks[args[0].text]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownMark, args[0].text)
	}
	n, err := r.buf.RedoToCheckpoint(cp)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(r.out, "redid %d\n", n)
	return err
}

func (r *Runner) setCursor(args []token) error {
	pos, err := parsePosition(r.buf, args)
	if err != nil {
		return err
	}
	r.cursors.SetAll([]cursor.Selection{cursor.NewCursorSelection(pos)})
	return nil
}

func (r *Runner) add(args []token) error {
	pos, err := parsePosition(r.buf, args)
	if err != nil {
		return err
	}
	r.cursors.Add(cursor.NewCursorSelection(pos))
	return nil
}

func (r *Runner) selectRange(args []token) error {
	from, to, err := r.span(args)
	if err != nil {
		return err
	}
	r.cursors.SetAll([]cursor.Selection{cursor.NewSelection(from, to)})
	return nil
}

func (r *Runner) typeText(args []token) error {
	return r.cursors.Insert(args[0].text)
}

func (r *Runner) deleteSelections([]token) error {
	return r.cursors.Erase()
}

func extendFlag(args []token) (bool, error) {
	switch {
	case len(args) == 0:
		return false, nil
	case len(args) == 1 && args[0].text == "extend":
		return true, nil
	default:
		return false, fmt.Errorf("%w: want [extend]", ErrSyntax)
	}
}

func (r *Runner) left(args []token) error {
	extend, err := extendFlag(args)
	if err != nil {
		return err
	}
	r.cursors.MoveLeft(extend)
	return nil
}

func (r *Runner) right(args []token) error {
	extend, err := extendFlag(args)
	if err != nil {
		return err
	}
	r.cursors.MoveRight(extend)
	return nil
}

func (r *Runner) print([]token) error {
	_, err := io.WriteString(r.out, r.buf.Text())
	return err
}

func (r *Runner) status([]token) error {
	_, err := fmt.Fprintf(r.out, "lines=%d chars=%d timestamp=%d modified=%t\n",
		r.buf.LineCount(), r.buf.CharacterCount(), r.buf.Timestamp(), r.buf.IsModified())
	return err
}

func (r *Runner) selections([]token) error {
	for _, sel := range r.cursors.All() {
		if _, err := fmt.Fprintln(r.out, sel); err != nil {
			return err
		}
	}
	return nil
}

func (r *Runner) checkpoint(args []token) error {
	r.tracker.Checkpoint(args[0].text)
	return nil
}

func (r *Runner) diff(args []token) error {
	name := args[0].text
	edits, err := r.tracker.DiffSince(name)
	if err != nil {
		return err
	}
	_, err = io.WriteString(r.out, tracking.Unified(edits, name, r.buf.Name()))
	return err
}

func (r *Runner) changes(args []token) error {
	if args[0].quoted {
		return fmt.Errorf("%w: want a timestamp", ErrSyntax)
	}
	since, err := strconv.ParseUint(args[0].text, 10, 64)
	if err != nil {
		return fmt.Errorf("%w: want a timestamp, got %s", ErrSyntax, args[0].text)
	}

	changes, complete := r.tracker.ChangesSince(since)
	for _, c := range changes {
		if _, err := fmt.Fprintln(r.out, c); err != nil {
			return err
		}
	}
	if !complete {
		fmt.Fprintln(r.out, "(incomplete)")
	}
	return nil
}

func (r *Runner) set(args []token) error {
	value, err := parseValue(args[1])
	if err != nil {
		return err
	}
	return r.buf.Options().Set(args[0].text, value)
}
