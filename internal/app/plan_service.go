package app

import (
	"context"
	"fmt"

	"fittrack/internal/domain"
)

// PlanService manages training plans and the exercise library.
type PlanService struct {
	repo domain.PlanRepository
}

func NewPlanService(repo domain.PlanRepository) *PlanService {
	return &PlanService{repo: repo}
}

func (s *PlanService) List(ctx context.Context) ([]domain.Plan, error) {
	return s.repo.List(ctx)
}

func (s *PlanService) Create(ctx context.Context, p domain.Payload) (int64, error) {
	if p == nil {
		return 0, domain.ErrBodyRequired
	}
	if err := domain.PlanSchema.Require(p, "Plan_Name", "Client_ID"); err != nil {
		return 0, err
	}
	fields, err := domain.PlanSchema.Pick(p)
	if err != nil {
		return 0, err
	}
	return s.repo.Create(ctx, fields)
}

// Exercises lists the exercises scheduled in a plan.
func (s *PlanService) Exercises(ctx context.Context, planID int64) ([]domain.PlanExercise, error) {
	return s.repo.Exercises(ctx, planID)
}

// AddExercise schedules a library exercise in a plan.
func (s *PlanService) AddExercise(ctx context.Context, planID int64, p domain.Payload) error {
	exerciseID, fields, err := s.planExerciseInput(p)
	if err != nil {
		return err
	}
	plan, err := s.repo.Get(ctx, planID)
	if err != nil {
		return fmt.Errorf("get plan %d: %w", planID, err)
	}
	if plan == nil {
		return domain.NotFound("plan")
	}
	ex, err := s.repo.GetExercise(ctx, exerciseID)
	if err != nil {
		return fmt.Errorf("get exercise %d: %w", exerciseID, err)
	}
	if ex == nil {
		return domain.NotFound("exercise")
	}
	return s.repo.AddExercise(ctx, planID, exerciseID, fields)
}

// UpdateExercise changes sets and reps of an exercise already in a plan.
func (s *PlanService) UpdateExercise(ctx context.Context, planID int64, p domain.Payload) error {
	exerciseID, fields, err := s.planExerciseInput(p)
	if err != nil {
		return err
	}
	ok, err := s.repo.UpdateExercise(ctx, planID, exerciseID, fields)
	if err != nil {
		return err
	}
	if !ok {
		return domain.NotFound("plan exercise")
	}
	return nil
}

func (s *PlanService) planExerciseInput(p domain.Payload) (int64, []domain.Assignment, error) {
	if p == nil {
		return 0, nil, domain.ErrBodyRequired
	}
	exerciseID, err := p.Int("exercise_id")
	if err != nil {
		return 0, nil, err
	}
	if err := domain.PlanExerciseSchema.Require(p, "sets", "reps"); err != nil {
		return 0, nil, err
	}
	fields, err := domain.PlanExerciseSchema.Pick(p)
	if err != nil {
		return 0, nil, err
	}
	return exerciseID, fields, nil
}

// Library lists every exercise.
func (s *PlanService) Library(ctx context.Context) ([]domain.Exercise, error) {
	return s.repo.Library(ctx)
}

func (s *PlanService) CreateExercise(ctx context.Context, p domain.Payload) (int64, error) {
	if p == nil {
		return 0, domain.ErrBodyRequired
	}
	if err := domain.ExerciseSchema.Require(p, "Exercise_Name", "Video_URL"); err != nil {
		return 0, err
	}
	fields, err := domain.ExerciseSchema.Pick(p)
	if err != nil {
		return 0, err
	}
	return s.repo.CreateExercise(ctx, fields)
}
