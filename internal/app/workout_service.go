package app

import (
	"context"
	"fmt"

	"fittrack/internal/domain"
)

// WorkoutService encapsulates workout and body weight tracking.
type WorkoutService struct {
	repo domain.WorkoutRepository
}

// NewWorkoutService creates a WorkoutService backed by the given repository.
func NewWorkoutService(repo domain.WorkoutRepository) *WorkoutService {
	return &WorkoutService{repo: repo}
}

func (s *WorkoutService) List(ctx context.Context, f domain.WorkoutFilter) ([]domain.Workout, error) {
	return s.repo.List(ctx, f)
}

func (s *WorkoutService) Get(ctx context.Context, id int64) (*domain.Workout, error) {
	w, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get workout %d: %w", id, err)
	}
	if w == nil {
		return nil, domain.NotFound("workout")
	}
	return w, nil
}

func (s *WorkoutService) Create(ctx context.Context, p domain.Payload) (int64, error) {
	if p == nil {
		return 0, domain.ErrBodyRequired
	}
	if err := domain.WorkoutSchema.Require(p, "User_ID", "Workout_Date"); err != nil {
		return 0, err
	}
	fields, err := domain.WorkoutSchema.Pick(p)
	if err != nil {
		return 0, err
	}
	return s.repo.Create(ctx, fields)
}

func (s *WorkoutService) Update(ctx context.Context, id int64, p domain.Payload) error {
	if p == nil {
		return domain.ErrBodyRequired
	}
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	fields, err := domain.WorkoutUpdateSchema.Pick(p)
	if err != nil {
		return err
	}
	return s.repo.Update(ctx, id, fields)
}

func (s *WorkoutService) Delete(ctx context.Context, id int64) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

// WeightHistory lists weight readings in ascending date order.
func (s *WorkoutService) WeightHistory(ctx context.Context, f domain.WeightFilter) ([]domain.WeightMetric, error) {
	return s.repo.WeightMetrics(ctx, f)
}

// RecordWeight validates and stores a body weight reading.
func (s *WorkoutService) RecordWeight(ctx context.Context, p domain.Payload) (int64, error) {
	if p == nil {
		return 0, domain.ErrBodyRequired
	}
	if err := domain.WeightMetricSchema.Require(p, "User_ID", "Weight_Date", "Weight"); err != nil {
		return 0, err
	}
	fields, err := domain.WeightMetricSchema.Pick(p)
	if err != nil {
		return 0, err
	}
	for _, f := range fields {
		if f.Column == "weight" && f.Value.(float64) <= 0 {
			return 0, domain.Invalid("Weight", "must be positive")
		}
	}
	return s.repo.RecordWeight(ctx, fields)
}
