package note

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Slot is the durable storage holding the serialized collection.
// Load returns nil data and no error when nothing was saved yet.
type Slot interface {
	Load(ctx context.Context) ([]byte, error)
	Save(ctx context.Context, data []byte) error
}

// Creations receives the title of every created note
type Creations interface {
	Created(title string)
}

// Store owns the note collection, newest notes first.
// Every operation is serialized, so mutations never interleave.
type Store struct {
	log       *zap.SugaredLogger
	slot      Slot
	creations Creations
	now       func() time.Time
	newId     func() string

	mu    sync.Mutex
	notes []Note
}

type Option func(*Store)

// WithCreations mirrors every created note title
func WithCreations(c Creations) Option {
	return func(s *Store) { s.creations = c }
}

func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

func WithIdGenerator(newId func() string) Option {
	return func(s *Store) { s.newId = newId }
}

// NewStore builds a store and loads the collection from the slot.
// A missing or malformed slot starts an empty collection.
func NewStore(ctx context.Context, log *zap.SugaredLogger, slot Slot, opts ...Option) *Store {
	s := &Store{
		log:   log,
		slot:  slot,
		now:   time.Now,
		newId: newId,
		notes: []Note{},
	}
	for _, opt := range opts {
		opt(s)
	}

	notes, err := s.load(ctx)
	if err != nil {
		log.Errorw("failed to load notes, starting empty", "ERROR", err)
	} else if notes != nil {
		s.notes = notes
	}
	return s
}

func newId() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return v7.String()
}

// Refresh replaces the collection with what is in the slot, used when the slot
// was changed by someone else. Missing or malformed data keeps the current state.
func (s *Store) Refresh(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	notes, err := s.load(ctx)
	switch {
	case err != nil:
		s.log.Errorw("failed to refresh notes", "ERROR", err)
		return err
	case notes == nil:
		return nil
	default:
		s.notes = notes
		return nil
	}
}

// load returns nil notes when the slot is empty
func (s *Store) load(ctx context.Context) ([]Note, error) {
	data, err := s.slot.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load notes: %w", err)
	}
	if len(data) == 0 {
		return nil, nil
	}

	var notes []Note
	if err := json.Unmarshal(data, &notes); err != nil {
		s.log.Errorw("failed to parse notes from slot", "ERROR", err)
		return nil, nil
	}
	if notes == nil {
		notes = []Note{}
	}
	return notes, nil
}

// persist must be called with the lock held
func (s *Store) persist(ctx context.Context) error {
	data, err := json.Marshal(s.notes)
	if err != nil {
		return fmt.Errorf("marshal notes: %w", err)
	}
	if err := s.slot.Save(ctx, data); err != nil {
		return fmt.Errorf("save notes: %w", err)
	}
	return nil
}

// stamp returns the current time in milliseconds, always after prev
func (s *Store) stamp(prev int64) int64 {
	ms := s.now().UnixMilli()
	if ms <= prev {
		return prev + 1
	}
	return ms
}

func (s *Store) index(id string) int {
	for i := range s.notes {
		if s.notes[i].Id == id {
			return i
		}
	}
	return -1
}
