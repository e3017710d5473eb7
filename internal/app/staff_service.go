package app

import (
	"context"
	"fmt"

	"fittrack/internal/domain"
)

// CoachService encapsulates coach profile use cases.
type CoachService struct {
	repo domain.CoachRepository
}

func NewCoachService(repo domain.CoachRepository) *CoachService {
	return &CoachService{repo: repo}
}

func (s *CoachService) List(ctx context.Context) ([]domain.Coach, error) {
	return s.repo.List(ctx)
}

func (s *CoachService) Get(ctx context.Context, id int64) (*domain.Coach, error) {
	c, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get coach %d: %w", id, err)
	}
	if c == nil {
		return nil, domain.NotFound("coach")
	}
	return c, nil
}

func (s *CoachService) Create(ctx context.Context, p domain.Payload) (int64, error) {
	if p == nil {
		return 0, domain.ErrBodyRequired
	}
	if err := domain.CoachSchema.Require(p, "user_id"); err != nil {
		return 0, err
	}
	fields, err := domain.CoachSchema.Pick(p)
	if err != nil {
		return 0, err
	}
	return s.repo.Create(ctx, fields)
}

// Update applies p to coach id. With replace set, user_id must be present.
func (s *CoachService) Update(ctx context.Context, id int64, p domain.Payload, replace bool) error {
	if p == nil {
		return domain.ErrBodyRequired
	}
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	if replace {
		if err := domain.CoachSchema.Require(p, "user_id"); err != nil {
			return err
		}
	}
	fields, err := domain.CoachSchema.Pick(p)
	if err != nil {
		return err
	}
	return s.repo.Update(ctx, id, fields)
}

func (s *CoachService) Delete(ctx context.Context, id int64) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

// MissedWorkouts lists missed workout notifications for a coach, newest first.
func (s *CoachService) MissedWorkouts(ctx context.Context, coachID int64) ([]domain.Notification, error) {
	return s.repo.Notifications(ctx, coachID, domain.NotificationMissedWorkout)
}

// DietitianService encapsulates dietitian profile use cases.
type DietitianService struct {
	repo domain.DietitianRepository
}

func NewDietitianService(repo domain.DietitianRepository) *DietitianService {
	return &DietitianService{repo: repo}
}

func (s *DietitianService) List(ctx context.Context) ([]domain.Dietitian, error) {
	return s.repo.List(ctx)
}

func (s *DietitianService) Get(ctx context.Context, id int64) (*domain.Dietitian, error) {
	d, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get dietitian %d: %w", id, err)
	}
	if d == nil {
		return nil, domain.NotFound("dietitian")
	}
	return d, nil
}

func (s *DietitianService) Create(ctx context.Context, p domain.Payload) (int64, error) {
	if p == nil {
		return 0, domain.ErrBodyRequired
	}
	if err := domain.DietitianSchema.Require(p, "user_id"); err != nil {
		return 0, err
	}
	fields, err := domain.DietitianSchema.Pick(p)
	if err != nil {
		return 0, err
	}
	return s.repo.Create(ctx, fields)
}

// Update applies p to dietitian id. With replace set, user_id must be present.
func (s *DietitianService) Update(ctx context.Context, id int64, p domain.Payload, replace bool) error {
	if p == nil {
		return domain.ErrBodyRequired
	}
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	if replace {
		if err := domain.DietitianSchema.Require(p, "user_id"); err != nil {
			return err
		}
	}
	fields, err := domain.DietitianSchema.Pick(p)
	if err != nil {
		return err
	}
	return s.repo.Update(ctx, id, fields)
}

func (s *DietitianService) Delete(ctx context.Context, id int64) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
