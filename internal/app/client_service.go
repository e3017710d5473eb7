package app

import (
	"context"
	"fmt"

	"fittrack/internal/domain"
)

// ClientService serves the coach and dietitian views of a client: goals,
// logged workouts and meals.
type ClientService struct {
	goals    domain.GoalRepository
	meals    domain.MealRepository
	workouts domain.WorkoutRepository
}

func NewClientService(goals domain.GoalRepository, meals domain.MealRepository, workouts domain.WorkoutRepository) *ClientService {
	return &ClientService{goals: goals, meals: meals, workouts: workouts}
}

// Workouts lists a client's workouts, newest first.
func (s *ClientService) Workouts(ctx context.Context, clientID int64) ([]domain.Workout, error) {
	return s.workouts.List(ctx, domain.WorkoutFilter{UserID: &clientID})
}

// Meals lists a client's meals, newest first.
func (s *ClientService) Meals(ctx context.Context, clientID int64) ([]domain.Meal, error) {
	return s.meals.List(ctx, domain.MealFilter{UserID: &clientID})
}

// Nutrition lists a client's meals narrowed by f. f.UserID is overridden.
func (s *ClientService) Nutrition(ctx context.Context, clientID int64, f domain.MealFilter) ([]domain.Meal, error) {
	f.UserID = &clientID
	return s.meals.List(ctx, f)
}

// Goals lists goals, newest start first.
func (s *ClientService) Goals(ctx context.Context, f domain.GoalFilter) ([]domain.Goal, error) {
	return s.goals.List(ctx, f)
}

func (s *ClientService) Goal(ctx context.Context, id int64) (*domain.Goal, error) {
	g, err := s.goals.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get goal %d: %w", id, err)
	}
	if g == nil {
		return nil, domain.NotFound("goal")
	}
	return g, nil
}

func (s *ClientService) CreateGoal(ctx context.Context, p domain.Payload) (int64, error) {
	if p == nil {
		return 0, domain.ErrBodyRequired
	}
	if err := domain.GoalSchema.Require(p, "User_ID", "Goal_Type"); err != nil {
		return 0, err
	}
	fields, err := domain.GoalSchema.Pick(p)
	if err != nil {
		return 0, err
	}
	return s.goals.Create(ctx, fields)
}

func (s *ClientService) UpdateGoal(ctx context.Context, id int64, p domain.Payload) error {
	if p == nil {
		return domain.ErrBodyRequired
	}
	if _, err := s.Goal(ctx, id); err != nil {
		return err
	}
	fields, err := domain.GoalSchema.Pick(p)
	if err != nil {
		return err
	}
	return s.goals.Update(ctx, id, fields)
}

func (s *ClientService) DeleteGoal(ctx context.Context, id int64) error {
	if _, err := s.Goal(ctx, id); err != nil {
		return err
	}
	return s.goals.Delete(ctx, id)
}
