package buffer

import (
	"fmt"

	"github.com/dshills/textcore/internal/engine/history"
)

// Insert inserts content at pos.
//
// pos must be a valid iterator of this buffer; the end of the buffer is
// accepted. The insertion is recorded in the open undo group, or forms its
// own group when none is open. Listeners receive the inserted range in the
// post-edit buffer before Insert returns. Inserting "" is a no-op.
func (b *Buffer) Insert(pos Iterator, content string) error {
	if err := b.checkIterator(pos); err != nil {
		return fmt.Errorf("insert at %s: %w", pos.coord, err)
	}
	if content == "" {
		return nil
	}

	begin := b.applyInsert(b.lines.offset(pos.coord), content)
	b.history.Record(history.NewInsert(begin, content))
	return nil
}

// Erase removes the bytes in [begin, end).
//
// Both iterators must be valid iterators of this buffer and begin must not
// come after end. Every precondition is checked before the content is
// touched, so a rejected call leaves the buffer and its history unchanged.
// Listeners receive the post-edit begin and the pre-edit end before Erase
// returns. Erasing an empty range is a no-op.
func (b *Buffer) Erase(begin, end Iterator) error {
	if err := b.checkIterator(begin); err != nil {
		return fmt.Errorf("erase from %s: %w", begin.coord, err)
	}
	if err := b.checkIterator(end); err != nil {
		return fmt.Errorf("erase to %s: %w", end.coord, err)
	}

	from, to := b.lines.offset(begin.coord), b.lines.offset(end.coord)
	if from > to {
		return fmt.Errorf("erase %s..%s: %w", begin.coord, end.coord, ErrRangeInvalid)
	}
	if from == to {
		return nil
	}

	content := b.lines.slice(from, to)
	at := b.applyErase(from, to)
	b.history.Record(history.NewErase(at, content))
	return nil
}

// Replace replaces the bytes in [begin, end) with content. The erase and the
// insertion form a single undo group, joining the open group if there is
// one.
func (b *Buffer) Replace(begin, end Iterator, content string) error {
	return b.Transaction(func() error {
		if err := b.Erase(begin, end); err != nil {
			return err
		}
		// begin keeps its offset across the erase.
		return b.Insert(b.iterator(b.lines.coordAt(begin.Offset())), content)
	})
}

// applyInsert splices content in at offset off, bumps the timestamp and
// notifies listeners. It returns the coordinate the content starts at.
func (b *Buffer) applyInsert(off int, content string) Coord {
	b.lines, off = b.lines.insert(b.lines.coordAt(off), content)
	b.timestamp++

	begin := b.lines.coordAt(off)
	end := b.lines.coordAt(off + len(content))
	b.notifyInsert(b.iterator(begin), b.iterator(end))
	return begin
}

// applyErase removes the offset range [from, to), bumps the timestamp and
// notifies listeners. It returns the coordinate the range collapsed to.
func (b *Buffer) applyErase(from, to int) Coord {
	preEnd := b.lines.canonical(b.lines.coordAt(to))
	b.lines = b.lines.erase(b.lines.coordAt(from), b.lines.coordAt(to))
	b.timestamp++

	begin := b.lines.coordAt(from)
	b.notifyErase(b.iterator(begin), b.iterator(preEnd))
	return begin
}

// apply replays a modification without recording it.
func (b *Buffer) apply(m history.Modification) {
	off := b.lines.offset(m.Coord)
	switch m.Kind {
	case history.Insert:
		b.applyInsert(off, m.Content)
	case history.Erase:
		b.applyErase(off, off+len(m.Content))
	}
}
