// Package tracking records what changed in a buffer and when.
//
// A [Tracker] is a buffer change listener. It keeps a bounded journal of
// the insertions and erasures applied to its buffer, each stamped with the
// buffer timestamp the change produced, so a client holding an old
// timestamp can ask which changes it missed:
//
//	tr := tracking.NewTracker(buf)
//	tr.Attach()
//	defer tr.Detach()
//
//	since := buf.Timestamp()
//	// ... edits ...
//	changes, complete := tr.ChangesSince(since)
//
// When complete is false the journal no longer reaches back to the
// requested timestamp and the client must resynchronise from the buffer.
//
// Named checkpoints capture a [buffer.Snapshot] that can later be compared
// with the live content through a line diff ([DiffLines], [Unified]).
package tracking
