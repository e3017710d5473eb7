// Package memory implements an in-process session store for single-instance
// deployments and tests.
package memory

import (
	"context"
	"sync"
	"time"

	"fittrack/internal/domain"
)

var _ domain.SessionRepository = (*SessionRepo)(nil)

// SessionRepo keeps sessions in a map guarded by a mutex. Sessions are lost
// on restart.
type SessionRepo struct {
	mu       sync.Mutex
	sessions map[string]domain.Session
}

// NewSessionRepo creates an empty session store.
func NewSessionRepo() *SessionRepo {
	return &SessionRepo{sessions: make(map[string]domain.Session)}
}

// Create stores a copy of s.
func (r *SessionRepo) Create(_ context.Context, s *domain.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.sessions[s.ID] = *s
	return nil
}

// Get returns nil, nil for an unknown id.
func (r *SessionRepo) Get(_ context.Context, id string) (*domain.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[id]
	if !ok {
		return nil, nil
	}
	return &s, nil
}

func (r *SessionRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.sessions, id)
	return nil
}

// DeleteExpired removes sessions that expired at or before now.
func (r *SessionRepo) DeleteExpired(_ context.Context, now time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var n int64
	for id, s := range r.sessions {
		if s.Expired(now) {
			delete(r.sessions, id)
			n++
		}
	}
	return n, nil
}
