package app

import (
	"context"
	"fmt"

	"fittrack/internal/domain"
)

// MealService encapsulates meal logging use cases.
type MealService struct {
	repo domain.MealRepository
}

// NewMealService creates a MealService backed by the given repository.
func NewMealService(repo domain.MealRepository) *MealService {
	return &MealService{repo: repo}
}

func (s *MealService) List(ctx context.Context, f domain.MealFilter) ([]domain.Meal, error) {
	return s.repo.List(ctx, f)
}

func (s *MealService) Get(ctx context.Context, id int64) (*domain.Meal, error) {
	m, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get meal %d: %w", id, err)
	}
	if m == nil {
		return nil, domain.NotFound("meal")
	}
	return m, nil
}

// Create validates and stores a meal.
func (s *MealService) Create(ctx context.Context, p domain.Payload) (int64, error) {
	if p == nil {
		return 0, domain.ErrBodyRequired
	}
	if err := domain.MealSchema.Require(p, "User_ID", "Meal_Name", "Calories"); err != nil {
		return 0, err
	}
	fields, err := domain.MealSchema.Pick(p)
	if err != nil {
		return 0, err
	}
	return s.repo.Create(ctx, fields)
}

// Update applies the supplied fields to an existing meal.
func (s *MealService) Update(ctx context.Context, id int64, p domain.Payload) error {
	if p == nil {
		return domain.ErrBodyRequired
	}
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	fields, err := domain.MealUpdateSchema.Pick(p)
	if err != nil {
		return err
	}
	return s.repo.Update(ctx, id, fields)
}

func (s *MealService) Delete(ctx context.Context, id int64) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

// Comments lists dietitian comments on a meal.
func (s *MealService) Comments(ctx context.Context, mealID int64) ([]domain.MealComment, error) {
	if _, err := s.Get(ctx, mealID); err != nil {
		return nil, err
	}
	return s.repo.Comments(ctx, mealID)
}

// AddComment stores a dietitian comment on a meal.
func (s *MealService) AddComment(ctx context.Context, mealID int64, p domain.Payload) (int64, error) {
	if p == nil {
		return 0, domain.ErrBodyRequired
	}
	if err := domain.MealCommentSchema.Require(p, "Dietitian_ID", "Comment_Text"); err != nil {
		return 0, err
	}
	if _, err := s.Get(ctx, mealID); err != nil {
		return 0, err
	}
	fields, err := domain.MealCommentSchema.Pick(p)
	if err != nil {
		return 0, err
	}
	return s.repo.AddComment(ctx, mealID, fields)
}
