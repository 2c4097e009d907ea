package note

// Notes returns a copy of the whole collection
func (s *Store) Notes() []Note {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Note, len(s.notes))
	copy(out, s.notes)
	return out
}

// Find returns the note with the id, false when it does not exist
func (s *Store) Find(id string) (Note, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.index(id); i >= 0 {
		return s.notes[i], true
	}
	return Note{}, false
}

// Visible applies Filter over the current collection
func (s *Store) Visible(view View, query string) Visible {
	pinned, unpinned := Filter(s.Notes(), view, query)
	return Visible{Pinned: pinned, Unpinned: unpinned}
}
