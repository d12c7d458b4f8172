// Package notes provides the session-scoped note store
package notes

import (
	"sync"

	"github.com/halcyonfin/voxfolio/internal/interfaces"
	"github.com/halcyonfin/voxfolio/internal/models"
)

// Store holds a session's notes in memory. Owned by the App, one per session;
// nothing is durable. The mutex guards against overlapping tool calls.
type Store struct {
	mu     sync.Mutex
	notes  []models.Note
	nextID int
}

// NewStore creates an empty note store
func NewStore() *Store {
	return &Store{nextID: 1}
}

// Save stores a note and returns it with its assigned sequential id
func (s *Store) Save(text string) models.Note {
	s.mu.Lock()
	defer s.mu.Unlock()

	note := models.Note{ID: s.nextID, Text: text}
	s.notes = append(s.notes, note)
	s.nextID++
	return note
}

// List returns all saved notes in insertion order
func (s *Store) List() []models.Note {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Note, len(s.notes))
	copy(out, s.notes)
	return out
}

// Clear deletes all notes and returns how many were removed.
// IDs restart from 1, matching a fresh session.
func (s *Store) Clear() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := len(s.notes)
	s.notes = nil
	s.nextID = 1
	return removed
}

// Ensure Store implements NoteService
var _ interfaces.NoteService = (*Store)(nil)
