package tracking

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/dshills/textcore/internal/engine/buffer"
)

// DefaultMaxChanges is the default journal capacity.
const DefaultMaxChanges = 4096

// ErrCheckpointNotFound is returned for an unknown checkpoint name.
var ErrCheckpointNotFound = errors.New("checkpoint not found")

// TrackerOption configures a Tracker.
type TrackerOption func(*Tracker)

// WithMaxChanges sets the journal capacity. Values below one are ignored.
func WithMaxChanges(n int) TrackerOption {
	return func(t *Tracker) {
		if n > 0 {
			t.maxChanges = n
		}
	}
}

// Tracker journals the changes of one buffer.
//
// The journal and the checkpoints are guarded by a lock and may be queried
// from any goroutine. Attach, Detach, Checkpoint and DiffSince touch the
// buffer and must run where the buffer is edited.
type Tracker struct {
	buf *buffer.Buffer

	mu         sync.RWMutex
	changes    []Change
	head       int // index of the oldest entry
	count      int
	maxChanges int

	// horizon is the newest timestamp the journal cannot answer for: the
	// timestamp at attach time or of the last evicted change.
	horizon  uint64
	attached bool

	checkpoints map[string]*buffer.Snapshot
}

// NewTracker creates a detached tracker for buf.
func NewTracker(buf *buffer.Buffer, opts ...TrackerOption) *Tracker {
	t := &Tracker{
		buf:         buf,
		maxChanges:  DefaultMaxChanges,
		checkpoints: make(map[string]*buffer.Snapshot),
	}
	for _, opt := range opts {
		opt(t)
	}
	t.changes = make([]Change, t.maxChanges)
	return t
}

// Buffer returns the tracked buffer.
func (t *Tracker) Buffer() *buffer.Buffer {
	return t.buf
}

// Attach registers the tracker as a change listener. Changes made before
// Attach are not journaled.
func (t *Tracker) Attach() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.attached {
		return
	}
	t.horizon = max(t.horizon, t.buf.Timestamp())
	t.buf.AddChangeListener(t)
	t.attached = true
}

// Detach deregisters the tracker. The journal is kept.
func (t *Tracker) Detach() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.attached {
		return
	}
	t.buf.RemoveChangeListener(t)
	t.attached = false
}

// OnInsert implements buffer.ChangeListener.
func (t *Tracker) OnInsert(begin, end buffer.Iterator) {
	t.record(ChangeInsert, begin, end)
}

// OnErase implements buffer.ChangeListener.
func (t *Tracker) OnErase(begin, end buffer.Iterator) {
	t.record(ChangeErase, begin, end)
}

func (t *Tracker) record(typ ChangeType, begin, end buffer.Iterator) {
	t.mu.Lock()
	defer t.mu.Unlock()

	idx := (t.head + t.count) % t.maxChanges
	if t.count < t.maxChanges {
		t.count++
	} else {
		// Full: the oldest entry is overwritten.
		t.horizon = t.changes[t.head].Timestamp
		t.head = (t.head + 1) % t.maxChanges
	}
	t.changes[idx] = Change{
		Type:      typ,
		Begin:     begin.Coord(),
		End:       end.Coord(),
		Timestamp: begin.Buffer().Timestamp(),
	}
}

// ChangesSince returns the journaled changes newer than timestamp, oldest
// first. complete reports whether the journal covers every change since
// timestamp; it is false when older entries were evicted or the tracker
// was attached later than timestamp.
func (t *Tracker) ChangesSince(timestamp uint64) (changes []Change, complete bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	// Timestamps grow along the ring, so the first newer entry is found by
	// binary search.
	first := sort.Search(t.count, func(i int) bool {
		return t.changes[(t.head+i)%t.maxChanges].Timestamp > timestamp
	})
	for i := first; i < t.count; i++ {
		changes = append(changes, t.changes[(t.head+i)%t.maxChanges])
	}
	return changes, timestamp >= t.horizon
}

// Len returns the number of journaled changes.
func (t *Tracker) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.count
}

// Latest returns the most recent change.
func (t *Tracker) Latest() (Change, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if t.count == 0 {
		return Change{}, false
	}
	return t.changes[(t.head+t.count-1)%t.maxChanges], true
}

// Clear empties the journal. Timestamps up to the buffer's current one can
// no longer be answered completely.
func (t *Tracker) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.count > 0 {
		t.horizon = t.changes[(t.head+t.count-1)%t.maxChanges].Timestamp
	}
	t.head, t.count = 0, 0
}

// Checkpoint captures the buffer content under name, replacing any
// checkpoint of the same name.
func (t *Tracker) Checkpoint(name string) *buffer.Snapshot {
	snap := t.buf.Snapshot()

	t.mu.Lock()
	t.checkpoints[name] = snap
	t.mu.Unlock()
	return snap
}

// CheckpointNamed returns the checkpoint stored under name.
func (t *Tracker) CheckpointNamed(name string) (*buffer.Snapshot, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	snap, ok := t.checkpoints[name]
	return snap, ok
}

// DeleteCheckpoint removes the checkpoint stored under name.
func (t *Tracker) DeleteCheckpoint(name string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.checkpoints[name]; !ok {
		return false
	}
	delete(t.checkpoints, name)
	return true
}

// Checkpoints returns the checkpoint names, sorted.
func (t *Tracker) Checkpoints() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	names := make([]string, 0, len(t.checkpoints))
	for name := range t.checkpoints {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ChangesSinceCheckpoint returns the changes journaled after the checkpoint
// stored under name was taken.
func (t *Tracker) ChangesSinceCheckpoint(name string) ([]Change, bool, error) {
	snap, ok := t.CheckpointNamed(name)
	if !ok {
		return nil, false, fmt.Errorf("changes since %q: %w", name, ErrCheckpointNotFound)
	}
	changes, complete := t.ChangesSince(snap.Timestamp())
	return changes, complete, nil
}

// DiffSince compares the checkpoint stored under name with the current
// buffer content.
func (t *Tracker) DiffSince(name string) ([]Edit, error) {
	snap, ok := t.CheckpointNamed(name)
	if !ok {
		return nil, fmt.Errorf("diff since %q: %w", name, ErrCheckpointNotFound)
	}
	return DiffSnapshots(snap, t.buf.Snapshot()), nil
}
