// Package app holds the application services and business logic.
package app

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"fittrack/internal/domain"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrSessionNotFound indicates that the presented token matches no session.
	ErrSessionNotFound = errors.New("session not found")
	// ErrSessionExpired indicates that the session has expired.
	ErrSessionExpired = errors.New("session expired")
	// ErrUserInactive indicates that a deactivated user tried to start a session.
	ErrUserInactive = errors.New("user is not active")
)

// SessionService issues and validates dashboard sessions.
type SessionService struct {
	sessions domain.SessionRepository
	users    domain.UserRepository
	ttl      time.Duration
	cost     int
	now      func() time.Time
}

// NewSessionService creates a session service. cost is the bcrypt cost used
// to hash token secrets.
func NewSessionService(sessions domain.SessionRepository, users domain.UserRepository, ttl time.Duration, cost int) *SessionService {
	return &SessionService{
		sessions: sessions,
		users:    users,
		ttl:      ttl,
		cost:     cost,
		now:      time.Now,
	}
}

// Start opens a session for an active user acting as role and returns the
// bearer token. The token is only ever returned here.
func (s *SessionService) Start(ctx context.Context, p domain.Payload) (string, *domain.Session, error) {
	userID, err := p.Int("user_id")
	if err != nil {
		return "", nil, err
	}
	role, err := p.Text("role")
	if err != nil {
		return "", nil, err
	}
	role = strings.ToLower(strings.TrimSpace(role))
	if !domain.ValidRole(role) {
		return "", nil, domain.Invalid("role", "must be one of user, coach, dietitian, admin")
	}

	user, err := s.users.Get(ctx, userID)
	if err != nil {
		return "", nil, fmt.Errorf("load user: %w", err)
	}
	if user == nil {
		return "", nil, domain.NotFound("user")
	}
	if !user.IsActive {
		return "", nil, ErrUserInactive
	}

	secret, err := generateSecret()
	if err != nil {
		return "", nil, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(secret), s.cost)
	if err != nil {
		return "", nil, fmt.Errorf("hash session secret: %w", err)
	}

	now := s.now()
	session := &domain.Session{
		ID:         uuid.NewString(),
		UserID:     userID,
		Role:       role,
		SecretHash: string(hash),
		CreatedAt:  now,
		ExpiresAt:  now.Add(s.ttl),
	}
	if err := s.sessions.Create(ctx, session); err != nil {
		return "", nil, fmt.Errorf("create session: %w", err)
	}
	return session.ID + "." + secret, session, nil
}

// Validate resolves a bearer token to its session. Expired sessions are
// removed on sight.
func (s *SessionService) Validate(ctx context.Context, token string) (*domain.Session, error) {
	id, secret, ok := strings.Cut(token, ".")
	if !ok || id == "" || secret == "" {
		return nil, ErrSessionNotFound
	}
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrSessionNotFound
	}

	session, err := s.sessions.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	if session == nil {
		return nil, ErrSessionNotFound
	}

	if session.Expired(s.now()) {
		if err := s.sessions.Delete(ctx, id); err != nil {
			log.Printf("delete expired session %s: %v", id, err)
		}
		return nil, ErrSessionExpired
	}

	if err := bcrypt.CompareHashAndPassword([]byte(session.SecretHash), []byte(secret)); err != nil {
		return nil, ErrSessionNotFound
	}
	return session, nil
}

// End invalidates the session behind token.
func (s *SessionService) End(ctx context.Context, token string) error {
	session, err := s.Validate(ctx, token)
	if err != nil {
		return err
	}
	return s.sessions.Delete(ctx, session.ID)
}

// Sweep deletes every expired session.
func (s *SessionService) Sweep(ctx context.Context) (int64, error) {
	return s.sessions.DeleteExpired(ctx, s.now())
}

// RunSweeper calls Sweep every interval until ctx is cancelled.
func (s *SessionService) RunSweeper(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := s.Sweep(ctx)
			if err != nil {
				log.Printf("session sweep failed: %v", err)
				continue
			}
			if n > 0 {
				log.Printf("session sweep removed %d expired sessions", n)
			}
		}
	}
}

func generateSecret() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
