// Package domain contains the core business entities and interfaces.
package domain

import (
	"context"
	"time"
)

// Dashboard roles a session can act as.
const (
	RoleUser      = "user"
	RoleCoach     = "coach"
	RoleDietitian = "dietitian"
	RoleAdmin     = "admin"
)

// ValidRole reports whether name is one of the dashboard roles.
func ValidRole(name string) bool {
	switch name {
	case RoleUser, RoleCoach, RoleDietitian, RoleAdmin:
		return true
	}
	return false
}

// Session represents an active dashboard session. Only a hash of the
// token secret is kept.
type Session struct {
	ID         string    `json:"session_id"`
	UserID     int64     `json:"user_id"`
	Role       string    `json:"role"`
	SecretHash string    `json:"-"`
	CreatedAt  time.Time `json:"created_at"`
	ExpiresAt  time.Time `json:"expires_at"`
}

// Expired reports whether the session is no longer valid at now.
func (s *Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}

// SessionRepository defines the port for session persistence operations.
type SessionRepository interface {
	Create(ctx context.Context, s *Session) error
	Get(ctx context.Context, id string) (*Session, error)
	Delete(ctx context.Context, id string) error
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}
