// In-memory implementation of the session Store.
// This is the persistence layer for the HTTP API's live sessions; nothing
// outlives the process.
//
// Characteristics:
//   - Stores *session.Session objects keyed by ID in a map.
//   - The map is guarded by an RWMutex; each entry has its own mutex so
//     Update serialises work on one session without blocking the others.
//   - Errors are returned for missing session IDs.

package store

import (
	"context"
	"errors"
	"sync"

	"github.com/robalobadob/wordle-assist/internal/session"
)

var ErrNotFound = errors.New("session not found")

// Store defines the persistence interface for sessions.
type Store interface {
	// Save persists or replaces a session.
	Save(ctx context.Context, s *session.Session) error

	// Get retrieves a session by ID. Callers must not mutate it; use Update.
	Get(ctx context.Context, id string) (*session.Session, error)

	// Update runs fn with exclusive access to the session.
	Update(ctx context.Context, id string, fn func(*session.Session) error) error

	// Delete removes a session. Deleting a missing ID returns ErrNotFound.
	Delete(ctx context.Context, id string) error

	// Len returns the number of stored sessions.
	Len() int
}

type entry struct {
	mu   sync.Mutex
	sess *session.Session
}

// memory is an in-memory map-based Store implementation.
type memory struct {
	mu       sync.RWMutex      // guards sessions map
	sessions map[string]*entry // keyed by Session.ID()
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() Store {
	return &memory{sessions: make(map[string]*entry)}
}

func (m *memory) Save(ctx context.Context, s *session.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[s.ID()] = &entry{sess: s}
	return nil
}

func (m *memory) Get(ctx context.Context, id string) (*session.Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if e, ok := m.sessions[id]; ok {
		return e.sess, nil
	}
	return nil, ErrNotFound
}

func (m *memory) Update(ctx context.Context, id string, fn func(*session.Session) error) error {
	m.mu.RLock()
	e, ok := m.sessions[id]
	m.mu.RUnlock()
	if !ok {
		return ErrNotFound
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return fn(e.sess)
}

func (m *memory) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.sessions[id]; !ok {
		return ErrNotFound
	}
	delete(m.sessions, id)
	return nil
}

func (m *memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}
