package note

import (
	"context"
	"fmt"
)

// Every mutation below ignores unknown ids, leaving the collection untouched.

// Update merges the patch into the note
func (s *Store) Update(ctx context.Context, id string, p Patch) error {
	if p.Color != nil && !p.Color.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidColor, *p.Color)
	}
	return s.mutate(ctx, id, p.apply)
}

// SoftDelete moves the note to the trash
func (s *Store) SoftDelete(ctx context.Context, id string) error {
	return s.mutate(ctx, id, func(n *Note) {
		n.IsDeleted = true
	})
}

// Archive archives the note, archived notes are never pinned
func (s *Store) Archive(ctx context.Context, id string) error {
	return s.mutate(ctx, id, func(n *Note) {
		n.IsArchived = true
		n.IsPinned = false
	})
}

// Restore brings the note back from archive and trash
func (s *Store) Restore(ctx context.Context, id string) error {
	return s.mutate(ctx, id, func(n *Note) {
		n.IsArchived = false
		n.IsDeleted = false
	})
}

func (s *Store) TogglePin(ctx context.Context, id string) error {
	return s.mutate(ctx, id, func(n *Note) {
		n.IsPinned = !n.IsPinned
	})
}

func (s *Store) ChangeColor(ctx context.Context, id string, c Color) error {
	if !c.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidColor, c)
	}
	return s.mutate(ctx, id, func(n *Note) {
		n.Color = c
	})
}

// PermanentlyDelete removes every note carrying the id from the collection
func (s *Store) PermanentlyDelete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := make([]Note, 0, len(s.notes))
	for _, n := range s.notes {
		if n.Id != id {
			kept = append(kept, n)
		}
	}
	if len(kept) == len(s.notes) {
		return nil
	}
	s.notes = kept
	return s.persist(ctx)
}

// Replace swaps the whole collection
func (s *Store) Replace(ctx context.Context, notes []Note) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.notes = make([]Note, len(notes))
	copy(s.notes, notes)
	return s.persist(ctx)
}

func (s *Store) mutate(ctx context.Context, id string, f func(*Note)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	// imported collections may repeat an id, every copy is changed
	var found bool
	for i := range s.notes {
		if s.notes[i].Id != id {
			continue
		}
		n := &s.notes[i]
		f(n)
		n.UpdatedAt = s.stamp(n.UpdatedAt)
		found = true
	}
	if !found {
		return nil
	}
	return s.persist(ctx)
}
