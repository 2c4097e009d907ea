package note

import (
	"context"
	"strings"
)

// Add creates a note at the front of the collection. Nothing is created
// when title and content are both blank. The title is handed to the
// configured Creations once the note is saved.
func (s *Store) Add(ctx context.Context, title, content string) (Note, bool, error) {
	if strings.TrimSpace(title) == "" && strings.TrimSpace(content) == "" {
		return Note{}, false, nil
	}

	s.mu.Lock()
	now := s.stamp(0)
	n := Note{
		Id:        s.newId(),
		Title:     title,
		Content:   content,
		Color:     ColorDefault,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.notes = append([]Note{n}, s.notes...)
	err := s.persist(ctx)
	s.mu.Unlock()

	if s.creations != nil {
		s.creations.Created(title)
	}
	return n, true, err
}
