package hook

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"sync"
)

// Errors returned by hook operations.
var (
	// ErrEmptyName indicates a hook registered without a name.
	ErrEmptyName = errors.New("empty hook name")

	// ErrNilFunc indicates a hook registered without a handler.
	ErrNilFunc = errors.New("nil hook function")
)

// Func handles a hook. name is the hook that fired and param its argument.
type Func func(name, param string) error

type entry struct {
	name  string
	group string
	fn    Func
}

// Manager is one hook scope. It is safe for concurrent use.
type Manager struct {
	mu sync.RWMutex

	parent   *Manager
	hooks    []entry
	disabled bool
	logger   *slog.Logger
}

// Option configures a Manager.
type Option func(*Manager)

// WithLogger sets the logger handler failures are reported to.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Manager) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// New creates a scope whose Run also runs parent's handlers. A nil parent
// makes a root scope.
func New(parent *Manager, opts ...Option) *Manager {
	m := &Manager{
		parent: parent,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Parent returns the parent scope.
func (m *Manager) Parent() *Manager {
	return m.parent
}

// Add registers fn for the hook name under group. group may be empty.
func (m *Manager) Add(name, group string, fn Func) error {
	if name == "" {
		return ErrEmptyName
	}
	if fn == nil {
		return fmt.Errorf("hook %s: %w", name, ErrNilFunc)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.hooks = append(m.hooks, entry{name: name, group: group, fn: fn})
	return nil
}

// RemoveGroup removes every handler of this scope registered under group
// and returns how many were removed.
func (m *Manager) RemoveGroup(group string) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	before := len(m.hooks)
	m.hooks = slices.DeleteFunc(m.hooks, func(e entry) bool {
		return e.group == group
	})
	return before - len(m.hooks)
}

// Count returns the number of handlers this scope has for name.
func (m *Manager) Count(name string) int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	n := 0
	for _, e := range m.hooks {
		if e.name == name {
			n++
		}
	}
	return n
}

// Disable suppresses Run on this scope until Enable.
func (m *Manager) Disable() {
	m.mu.Lock()
	m.disabled = true
	m.mu.Unlock()
}

// Enable re-enables Run.
func (m *Manager) Enable() {
	m.mu.Lock()
	m.disabled = false
	m.mu.Unlock()
}

// Disabled returns true while Run is suppressed.
func (m *Manager) Disabled() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.disabled
}

// Run runs the handlers for name: the parent scope's first, then this
// scope's in registration order. A failing handler does not stop the
// others; failures are logged and returned joined.
func (m *Manager) Run(name, param string) error {
	m.mu.RLock()
	if m.disabled {
		m.mu.RUnlock()
		return nil
	}
	var hooks []entry
	for _, e := range m.hooks {
		if e.name == name {
			hooks = append(hooks, e)
		}
	}
	m.mu.RUnlock()

	var errs []error
	if m.parent != nil {
		if err := m.parent.Run(name, param); err != nil {
			errs = append(errs, err)
		}
	}

	for _, e := range hooks {
		if err := e.fn(name, param); err != nil {
			m.logger.Warn("hook failed",
				"hook", name,
				"group", e.group,
				"error", err,
			)
			errs = append(errs, fmt.Errorf("hook %s (group %q): %w", name, e.group, err))
		}
	}
	return errors.Join(errs...)
}
