package booking

import (
	"context"
	"encoding/json"
	"sync"

	"weddingplanner/models"
)

// SessionStore keeps checkout sessions. Update applies fn atomically with
// respect to other updates of the same session; when fn returns an error
// nothing is written.
type SessionStore interface {
	Create(ctx context.Context, session *models.CheckoutSession) error
	Get(ctx context.Context, id string) (*models.CheckoutSession, error)
	Update(ctx context.Context, id string, fn func(*models.CheckoutSession) error) (*models.CheckoutSession, error)
	Delete(ctx context.Context, id string) error
}

// MemorySessionStore keeps sessions in process memory.
type MemorySessionStore struct {
	mu       sync.Mutex
	sessions map[string][]byte
}

// NewMemorySessionStore returns an empty store.
func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{sessions: make(map[string][]byte)}
}

func (s *MemorySessionStore) Create(_ context.Context, session *models.CheckoutSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.ID] = data
	return nil
}

func (s *MemorySessionStore) Get(_ context.Context, id string) (*models.CheckoutSession, error) {
	s.mu.Lock()
	data, ok := s.sessions[id]
	s.mu.Unlock()
	if !ok {
		return nil, ErrSessionNotFound
	}
	return decodeSession(data)
}

func (s *MemorySessionStore) Update(_ context.Context, id string, fn func(*models.CheckoutSession) error) (*models.CheckoutSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, ok := s.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	session, err := decodeSession(data)
	if err != nil {
		return nil, err
	}
	if err := fn(session); err != nil {
		return nil, err
	}
	updated, err := json.Marshal(session)
	if err != nil {
		return nil, err
	}
	s.sessions[id] = updated
	return session, nil
}

func (s *MemorySessionStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[id]; !ok {
		return ErrSessionNotFound
	}
	delete(s.sessions, id)
	return nil
}

func decodeSession(data []byte) (*models.CheckoutSession, error) {
	var session models.CheckoutSession
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, err
	}
	if session.Selection.Chosen == nil {
		session.Selection.Chosen = make(map[models.Category]string)
	}
	return &session, nil
}
