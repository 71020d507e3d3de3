// ABOUTME: In-memory user record store keyed by chat user ID.
// ABOUTME: Owned by the application root and injected into handlers; no singleton.
package store

import (
	"sort"
	"sync"

	"github.com/hydrocal/hydrocal/internal/models"
)

// Store maps user IDs to their records. Records survive only for the
// process lifetime; a restart starts everyone from scratch.
//
// Message handling is effectively serial, but the MCP server and the
// chat transport are separate entry points, so access is guarded.
type Store struct {
	mu      sync.RWMutex
	records map[int64]*models.Record
}

// New creates an empty store.
func New() *Store {
	return &Store{records: make(map[int64]*models.Record)}
}

// Exists reports whether the user has a completed record.
func (s *Store) Exists(userID int64) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.records[userID]
	return ok
}

// Get returns a copy of the user's record.
func (s *Store) Get(userID int64) (models.Record, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.records[userID]
	if !ok {
		return models.Record{}, false
	}
	return *r, true
}

// Upsert replaces the user's record. Re-running onboarding goes through
// here, discarding any previous profile and counters.
func (s *Store) Upsert(r *models.Record) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[r.UserID] = r
}

// Update applies fn to the user's record under the store lock.
// Returns false without calling fn if the user is unknown.
func (s *Store) Update(userID int64, fn func(*models.Record)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.records[userID]
	if !ok {
		return false
	}
	fn(r)
	return true
}

// Delete removes the user's record.
func (s *Store) Delete(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.records, userID)
}

// All returns copies of every record, ordered by user ID.
func (s *Store) All() []models.Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Record, 0, len(s.records))
	for _, r := range s.records {
		out = append(out, *r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UserID < out[j].UserID })
	return out
}
