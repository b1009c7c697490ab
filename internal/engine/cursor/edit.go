package cursor

// Insert inserts text at every head as a single undo step. Heads stay in
// front of the inserted text.
func (s *Set) Insert(text string) error {
	heads := make([]Iterator, len(s.selections))
	for i, sel := range s.selections {
		heads[i] = sel.Head
	}

	// Back to front, so inserting never moves a head still to be used.
	return s.buf.Transaction(func() error {
		for i := len(heads) - 1; i >= 0; i-- {
			if err := s.buf.Insert(heads[i], text); err != nil {
				return err
			}
		}
		return nil
	})
}

// Erase removes the content of every selection as a single undo step.
// The selections collapse to cursors where their content was.
func (s *Set) Erase() error {
	ranges := s.All()
	return s.buf.Transaction(func() error {
		for i := len(ranges) - 1; i >= 0; i-- {
			if err := s.buf.Erase(ranges[i].Begin(), ranges[i].End()); err != nil {
				return err
			}
		}
		return nil
	})
}
