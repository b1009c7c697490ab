package option

import (
	"fmt"
	"maps"
	"slices"
	"strings"
	"sync"
)

// Watcher is notified when the effective value of an option changes.
// value is nil when the option was unset in every scope.
type Watcher interface {
	OnOptionChanged(name string, value any)
}

// WatcherFunc adapts a function to the Watcher interface.
type WatcherFunc func(name string, value any)

// OnOptionChanged calls f.
func (f WatcherFunc) OnOptionChanged(name string, value any) {
	f(name, value)
}

// Manager is one option scope. It is safe for concurrent use.
type Manager struct {
	mu sync.RWMutex

	parent   *Manager
	values   map[string]any
	watchers []*Subscription
	children []*Manager
}

// New creates a scope falling back to parent. A nil parent makes a root
// scope.
func New(parent *Manager) *Manager {
	m := &Manager{
		parent: parent,
		values: make(map[string]any),
	}
	if parent != nil {
		parent.mu.Lock()
		parent.children = append(parent.children, m)
		parent.mu.Unlock()
	}
	return m
}

// Parent returns the parent scope, nil for a root scope or once detached.
func (m *Manager) Parent() *Manager {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.parent
}

// Detach cuts the scope from its parent: parent values stop being visible
// and parent changes stop propagating. Local values are kept.
func (m *Manager) Detach() {
	m.mu.Lock()
	parent := m.parent
	m.parent = nil
	m.mu.Unlock()

	if parent == nil {
		return
	}
	parent.mu.Lock()
	if i := slices.Index(parent.children, m); i >= 0 {
		parent.children = slices.Delete(parent.children, i, i+1)
	}
	parent.mu.Unlock()
}

// Set sets an option in this scope.
func (m *Manager) Set(name string, value any) error {
	if err := validateName(name); err != nil {
		return err
	}
	if value == nil {
		return fmt.Errorf("option %s: nil value", name)
	}

	m.mu.Lock()
	m.values[name] = value
	m.mu.Unlock()

	m.propagate(name, value)
	return nil
}

// Unset removes an option from this scope so the parent value shows
// through again. Returns false if the scope did not set it.
func (m *Manager) Unset(name string) bool {
	m.mu.Lock()
	_, ok := m.values[name]
	delete(m.values, name)
	parent := m.parent
	m.mu.Unlock()

	if !ok {
		return false
	}
	var value any
	if parent != nil {
		value, _ = parent.Get(name)
	}
	m.propagate(name, value)
	return true
}

// Get returns the effective value of an option, searching parent scopes
// for names this scope does not set.
func (m *Manager) Get(name string) (any, bool) {
	m.mu.RLock()
	v, ok := m.values[name]
	parent := m.parent
	m.mu.RUnlock()

	if ok {
		return v, true
	}
	if parent != nil {
		return parent.Get(name)
	}
	return nil, false
}

// IsLocal returns true if this scope sets the option itself.
func (m *Manager) IsLocal(name string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.values[name]
	return ok
}

// Int returns an integer option.
func (m *Manager) Int(name string) (int, error) {
	v, ok := m.Get(name)
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	switch n := v.(type) {
	case int:
		return n, nil
	case int64:
		return int(n), nil
	case int32:
		return int(n), nil
	case float64:
		if n == float64(int(n)) {
			return int(n), nil
		}
	}
	return 0, &TypeError{Name: name, Expected: "int", Actual: v}
}

// String returns a string option.
func (m *Manager) String(name string) (string, error) {
	v, ok := m.Get(name)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	s, ok := v.(string)
	if !ok {
		return "", &TypeError{Name: name, Expected: "string", Actual: v}
	}
	return s, nil
}

// Bool returns a boolean option.
func (m *Manager) Bool(name string) (bool, error) {
	v, ok := m.Get(name)
	if !ok {
		return false, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	b, ok := v.(bool)
	if !ok {
		return false, &TypeError{Name: name, Expected: "bool", Actual: v}
	}
	return b, nil
}

// Flatten returns the effective options of this scope: parent values
// overlaid with local ones.
func (m *Manager) Flatten() map[string]any {
	m.mu.RLock()
	parent := m.parent
	local := maps.Clone(m.values)
	m.mu.RUnlock()

	result := make(map[string]any)
	if parent != nil {
		result = parent.Flatten()
	}
	maps.Copy(result, local)
	return result
}

// Names returns the sorted names of the options set in this scope.
func (m *Manager) Names() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return slices.Sorted(maps.Keys(m.values))
}

// Subscription is an active watcher registration.
type Subscription struct {
	m *Manager
	w Watcher
}

// Unsubscribe removes the watcher. Calling it more than once is a no-op.
func (s *Subscription) Unsubscribe() {
	if s == nil || s.m == nil {
		return
	}
	m := s.m
	s.m = nil
	m.mu.Lock()
	defer m.mu.Unlock()
	m.watchers = slices.DeleteFunc(m.watchers, func(e *Subscription) bool {
		return e == s
	})
}

// Watch registers w for changes of this scope's effective values.
func (m *Manager) Watch(w Watcher) *Subscription {
	s := &Subscription{m: m, w: w}
	m.mu.Lock()
	m.watchers = append(m.watchers, s)
	m.mu.Unlock()
	return s
}

// propagate notifies watchers of this scope, then of every descendant
// scope that does not override name. Locks are not held while watchers
// run.
func (m *Manager) propagate(name string, value any) {
	m.mu.RLock()
	watchers := slices.Clone(m.watchers)
	children := slices.Clone(m.children)
	m.mu.RUnlock()

	for _, e := range watchers {
		e.w.OnOptionChanged(name, value)
	}
	for _, child := range children {
		if !child.IsLocal(name) {
			child.propagate(name, value)
		}
	}
}

func validateName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty", ErrInvalidName)
	}
	if strings.ContainsAny(name, " \t\r\n") {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	for seg := range strings.SplitSeq(name, ".") {
		if seg == "" {
			return fmt.Errorf("%w: %q", ErrInvalidName, name)
		}
	}
	return nil
}
