package buffer

import (
	"reflect"
	"slices"
)

// ChangeListener is notified synchronously of every change of a buffer's
// content so it can fix up the iterators it stores.
//
// OnInsert receives the inserted range [begin, end) in the post-edit
// buffer. OnErase receives the post-edit position the erased range
// collapsed to as begin, and the position the range ended at before the
// erase as end; end may no longer be valid, and is meant to be passed to
// Iterator.ShiftForErase.
//
// Listeners may read the buffer but must not mutate it.
type ChangeListener interface {
	OnInsert(begin, end Iterator)
	OnErase(begin, end Iterator)
}

// AddChangeListener registers l. Listeners are notified in registration
// order. Adding a registered listener again has no effect. Registration is
// not a change: the timestamp and the history are untouched.
//
// Listeners are identified by comparing them, so they should be pointers.
// A listener whose dynamic value is not comparable is registered on every
// call and cannot be removed.
func (b *Buffer) AddChangeListener(l ChangeListener) {
	if b.closed || l == nil {
		return
	}
	if b.find(l) >= 0 {
		return
	}
	b.listeners = append(b.listeners, &registration{listener: l})
}

// RemoveChangeListener deregisters l. Removing an unknown listener has no
// effect. A listener removed while a change is being dispatched is not
// notified of that change anymore.
func (b *Buffer) RemoveChangeListener(l ChangeListener) {
	i := b.find(l)
	if i < 0 {
		return
	}
	b.listeners[i].removed = true
	b.listeners = append(b.listeners[:i:i], b.listeners[i+1:]...)
}

// ListenerCount returns the number of registered listeners.
func (b *Buffer) ListenerCount() int {
	return len(b.listeners)
}

// registration is one AddChangeListener call.
type registration struct {
	listener ChangeListener
	removed  bool
}

func (b *Buffer) find(l ChangeListener) int {
	for i, r := range b.listeners {
		if sameListener(r.listener, l) {
			return i
		}
	}
	return -1
}

// releaseListeners deregisters every listener.
func (b *Buffer) releaseListeners() {
	for _, r := range b.listeners {
		r.removed = true
	}
	b.listeners = nil
}

// sameListener compares a and b without panicking on uncomparable dynamic
// values, which never match.
func sameListener(a, b ChangeListener) bool {
	if reflect.TypeOf(a) != reflect.TypeOf(b) || !reflect.ValueOf(a).Comparable() {
		return false
	}
	return a == b
}

// notifyInsert dispatches over a copy so listeners may deregister
// themselves or each other.
func (b *Buffer) notifyInsert(begin, end Iterator) {
	for _, r := range slices.Clone(b.listeners) {
		if !r.removed {
			r.listener.OnInsert(begin, end)
		}
	}
}

func (b *Buffer) notifyErase(begin, end Iterator) {
	for _, r := range slices.Clone(b.listeners) {
		if !r.removed {
			r.listener.OnErase(begin, end)
		}
	}
}
