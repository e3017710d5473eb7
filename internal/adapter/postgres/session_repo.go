package postgres

import (
	"context"
	"time"

	"fittrack/internal/domain"
)

// SessionRepo implements domain.SessionRepository.
type SessionRepo struct {
	db *DB
}

// NewSessionRepo wraps a DB as a SessionRepository.
func NewSessionRepo(db *DB) *SessionRepo {
	return &SessionRepo{db: db}
}

func (r *SessionRepo) Create(ctx context.Context, s *domain.Session) error {
	_, err := r.db.sql.ExecContext(ctx,
		"INSERT INTO sessions (session_id, user_id, role, secret_hash, created_at, expires_at) VALUES ($1, $2, $3, $4, $5, $6)",
		s.ID, s.UserID, s.Role, s.SecretHash, s.CreatedAt.UTC(), s.ExpiresAt.UTC(),
	)
	return err
}

// Get returns nil, nil for an unknown id.
func (r *SessionRepo) Get(ctx context.Context, id string) (*domain.Session, error) {
	return queryOne(ctx, r.db.sql, func(row rowScanner, s *domain.Session) error {
		return row.Scan(&s.ID, &s.UserID, &s.Role, &s.SecretHash, &s.CreatedAt, &s.ExpiresAt)
	}, "SELECT session_id, user_id, role, secret_hash, created_at, expires_at FROM sessions WHERE session_id = $1", id)
}

func (r *SessionRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.sql.ExecContext(ctx, "DELETE FROM sessions WHERE session_id = $1", id)
	return err
}

// DeleteExpired removes sessions that expired at or before now.
func (r *SessionRepo) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	res, err := r.db.sql.ExecContext(ctx, "DELETE FROM sessions WHERE expires_at <= $1", now.UTC())
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
