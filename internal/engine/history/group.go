package history

// Cancel closes the open group without committing it and returns the
// modifications it held so the owner can revert them. Returns nil if no
// group is open.
func (h *History) Cancel() UndoGroup {
	if !h.grouping {
		return nil
	}
	h.grouping = false
	g := h.pending
	h.pending = nil
	return g
}

// Checkpoint is a position in history that can be returned to.
type Checkpoint struct {
	epoch int
	forks int // len(History.forks) when taken
	pos   int // trimmed groups plus cursor
}

// CreateCheckpoint creates a checkpoint at the current history position.
// Pending modifications are committed first.
func (h *History) CreateCheckpoint() Checkpoint {
	h.flush()
	return Checkpoint{epoch: h.epoch, forks: len(h.forks), pos: h.trimmed + h.cursor}
}

// Reachable reports whether cp still names a state of this history. A
// checkpoint is lost when Reset runs, when the group limit discards the
// groups before it, or when the redo branch it sits on is discarded.
// Pending modifications count as the commit they will become.
func (h *History) Reachable(cp Checkpoint) bool {
	if cp.epoch != h.epoch || cp.pos < h.trimmed {
		return false
	}
	here := h.trimmed + h.cursor
	if len(h.pending) > 0 && cp.pos > here {
		return false
	}
	for _, at := range h.forks[cp.forks:] {
		if cp.pos > at {
			return false
		}
	}
	return true
}

// Distance returns how many groups separate the cursor from cp: positive
// when undo is needed to get back to cp, negative when redo is needed.
// Pending modifications count as one group. The result is only meaningful
// for a reachable checkpoint.
func (h *History) Distance(cp Checkpoint) int {
	d := h.trimmed + h.cursor - cp.pos
	if len(h.pending) > 0 {
		d++
	}
	return d
}

// Rollback discards the pending modifications recorded after the first n
// and returns them in recording order so the owner can revert them. The
// group stays open.
func (h *History) Rollback(n int) UndoGroup {
	if n < 0 {
		n = 0
	}
	if n >= len(h.pending) {
		return nil
	}
	g := make(UndoGroup, len(h.pending)-n)
	copy(g, h.pending[n:])
	h.pending = h.pending[:n]
	return g
}
