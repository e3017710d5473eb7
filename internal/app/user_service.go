package app

import (
	"context"
	"fmt"

	"fittrack/internal/domain"
)

// UserService encapsulates user account use cases.
type UserService struct {
	repo domain.UserRepository
}

// NewUserService creates a UserService backed by the given repository.
func NewUserService(repo domain.UserRepository) *UserService {
	return &UserService{repo: repo}
}

func (s *UserService) List(ctx context.Context, f domain.UserFilter) ([]domain.User, error) {
	return s.repo.List(ctx, f)
}

func (s *UserService) Get(ctx context.Context, id int64) (*domain.User, error) {
	u, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get user %d: %w", id, err)
	}
	if u == nil {
		return nil, domain.NotFound("user")
	}
	return u, nil
}

// Create validates and stores a new user.
func (s *UserService) Create(ctx context.Context, p domain.Payload) (int64, error) {
	if p == nil {
		return 0, domain.ErrBodyRequired
	}
	if err := domain.UserSchema.Require(p, "First_Name", "Last_Name", "Email"); err != nil {
		return 0, err
	}
	fields, err := domain.UserSchema.Pick(p)
	if err != nil {
		return 0, err
	}
	return s.repo.Create(ctx, fields)
}

// Update applies the supplied fields to an existing user.
func (s *UserService) Update(ctx context.Context, id int64, p domain.Payload) error {
	if p == nil {
		return domain.ErrBodyRequired
	}
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	fields, err := domain.UserSchema.Pick(p)
	if err != nil {
		return err
	}
	return s.repo.Update(ctx, id, fields)
}

// Deactivate soft-deletes a user on behalf of actorID.
func (s *UserService) Deactivate(ctx context.Context, id, actorID int64) error {
	ok, err := s.repo.Deactivate(ctx, id, actorID)
	if err != nil {
		return fmt.Errorf("deactivate user %d: %w", id, err)
	}
	if !ok {
		return domain.NotFound("user")
	}
	return nil
}
