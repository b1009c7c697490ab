package engine

import (
	"fmt"
	"io"
	"log/slog"
	"sort"
	"sync"

	"github.com/dshills/textcore/internal/engine/buffer"
	"github.com/dshills/textcore/internal/engine/tracking"
	"github.com/dshills/textcore/internal/hook"
	"github.com/dshills/textcore/internal/option"
)

// Hook names run by the engine.
const (
	HookBufCreate = "BufCreate"
	HookBufClose  = "BufClose"
)

type entry struct {
	buf     *buffer.Buffer
	tracker *tracking.Tracker
}

// Engine is a registry of named buffers sharing a global option and hook
// scope.
type Engine struct {
	mu      sync.RWMutex
	buffers map[string]entry

	options *option.Manager
	hooks   *hook.Manager
	logger  *slog.Logger

	maxUndoGroups int
	maxChanges    int
}

// New creates an engine with no buffers.
func New(opts ...Option) *Engine {
	e := &Engine{
		buffers:       make(map[string]entry),
		logger:        discardLogger(),
		maxUndoGroups: DefaultMaxUndoGroups,
		maxChanges:    DefaultMaxChanges,
	}
	for _, opt := range opts {
		opt(e)
	}

	e.options = option.New(nil)
	e.hooks = hook.New(nil, hook.WithLogger(e.logger))
	return e
}

// Options returns the global option scope.
func (e *Engine) Options() *option.Manager {
	return e.options
}

// Hooks returns the global hook scope.
func (e *Engine) Hooks() *hook.Manager {
	return e.hooks
}

// LoadOptions reads TOML settings into the global option scope.
func (e *Engine) LoadOptions(r io.Reader) error {
	if err := e.options.LoadTOML(r); err != nil {
		return fmt.Errorf("load global options: %w", err)
	}
	return nil
}

// LoadOptionsYAML reads YAML settings into the global option scope.
func (e *Engine) LoadOptionsYAML(r io.Reader) error {
	if err := e.options.LoadYAML(r); err != nil {
		return fmt.Errorf("load global options: %w", err)
	}
	return nil
}

// Create registers a new buffer. The BufCreate hook runs once the buffer
// is registered; a failing handler is logged and does not undo the
// creation.
func (e *Engine) Create(name string, flags buffer.Flags, content string) (*buffer.Buffer, error) {
	if name == "" {
		return nil, ErrEmptyName
	}

	e.mu.Lock()
	if _, ok := e.buffers[name]; ok {
		e.mu.Unlock()
		return nil, fmt.Errorf("create %q: %w", name, ErrBufferExists)
	}
	buf := buffer.New(name, flags, content,
		buffer.WithLogger(e.logger),
		buffer.WithMaxUndoGroups(e.undoLimit()),
		buffer.WithParentOptions(e.options),
		buffer.WithParentHooks(e.hooks),
	)
	tr := tracking.NewTracker(buf, tracking.WithMaxChanges(e.maxChanges))
	tr.Attach()
	e.buffers[name] = entry{buf: buf, tracker: tr}
	e.mu.Unlock()

	// Handlers may call back into the engine.
	if err := buf.Hooks().Run(HookBufCreate, name); err != nil {
		e.logger.Warn("buffer hook failed", "buffer", name, "hook", HookBufCreate, "error", err)
	}
	return buf, nil
}

// undoLimit resolves the undo limit for a new buffer.
func (e *Engine) undoLimit() int {
	if n, err := e.options.Int(MaxUndoGroupsOption); err == nil && n >= 0 {
		return n
	}
	return e.maxUndoGroups
}

// Buffer returns the buffer registered under name.
func (e *Engine) Buffer(name string) (*buffer.Buffer, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	en, ok := e.buffers[name]
	return en.buf, ok
}

// Tracker returns the change tracker of the buffer registered under name.
func (e *Engine) Tracker(name string) (*tracking.Tracker, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	en, ok := e.buffers[name]
	return en.tracker, ok
}

// Names returns the registered buffer names, sorted.
func (e *Engine) Names() []string {
	e.mu.RLock()
	defer e.mu.RUnlock()

	names := make([]string, 0, len(e.buffers))
	for name := range e.buffers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of registered buffers.
func (e *Engine) Len() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return len(e.buffers)
}

// Modified returns the names of buffers with unsaved changes, sorted.
func (e *Engine) Modified() []string {
	var names []string
	for _, name := range e.Names() {
		if buf, ok := e.Buffer(name); ok && buf.IsModified() {
			names = append(names, name)
		}
	}
	return names
}

// Close runs the BufClose hook, then unregisters and destroys the buffer.
func (e *Engine) Close(name string) error {
	en, ok := e.lookup(name)
	if !ok {
		return fmt.Errorf("close %q: %w", name, ErrBufferNotFound)
	}

	if err := en.buf.Hooks().Run(HookBufClose, name); err != nil {
		e.logger.Warn("buffer hook failed", "buffer", name, "hook", HookBufClose, "error", err)
	}

	e.mu.Lock()
	if cur, ok := e.buffers[name]; ok && cur.buf == en.buf {
		delete(e.buffers, name)
	}
	e.mu.Unlock()

	en.tracker.Detach()
	en.buf.Close()
	e.logger.Debug("buffer closed", "buffer", name)
	return nil
}

// CloseAll closes every registered buffer.
func (e *Engine) CloseAll() {
	for _, name := range e.Names() {
		// A hook may have closed it already.
		_ = e.Close(name)
	}
}

func (e *Engine) lookup(name string) (entry, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	en, ok := e.buffers[name]
	return en, ok
}
