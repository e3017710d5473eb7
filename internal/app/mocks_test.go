package app_test

import (
	"context"
	"time"

	"fittrack/internal/domain"
)

type mockUserRepo struct {
	getFn        func(ctx context.Context, id int64) (*domain.User, error)
	createFn     func(ctx context.Context, fields []domain.Assignment) (int64, error)
	updateFn     func(ctx context.Context, id int64, fields []domain.Assignment) error
	deactivateFn func(ctx context.Context, id, actorID int64) (bool, error)
}

func (m *mockUserRepo) Get(ctx context.Context, id int64) (*domain.User, error) {
	if m.getFn != nil {
		return m.getFn(ctx, id)
	}
	return nil, nil
}

func (m *mockUserRepo) List(context.Context, domain.UserFilter) ([]domain.User, error) {
	return nil, nil
}

func (m *mockUserRepo) ListWithRoles(context.Context) ([]domain.User, error) {
	return nil, nil
}

func (m *mockUserRepo) Create(ctx context.Context, fields []domain.Assignment) (int64, error) {
	if m.createFn != nil {
		return m.createFn(ctx, fields)
	}
	return 1, nil
}

func (m *mockUserRepo) Update(ctx context.Context, id int64, fields []domain.Assignment) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, id, fields)
	}
	return nil
}

func (m *mockUserRepo) Deactivate(ctx context.Context, id, actorID int64) (bool, error) {
	if m.deactivateFn != nil {
		return m.deactivateFn(ctx, id, actorID)
	}
	return false, nil
}

type mockMealRepo struct {
	listFn       func(ctx context.Context, f domain.MealFilter) ([]domain.Meal, error)
	getFn        func(ctx context.Context, id int64) (*domain.Meal, error)
	createFn     func(ctx context.Context, fields []domain.Assignment) (int64, error)
	updateFn     func(ctx context.Context, id int64, fields []domain.Assignment) error
	deleteFn     func(ctx context.Context, id int64) error
	addCommentFn func(ctx context.Context, mealID int64, fields []domain.Assignment) (int64, error)
}

func (m *mockMealRepo) List(ctx context.Context, f domain.MealFilter) ([]domain.Meal, error) {
	if m.listFn != nil {
		return m.listFn(ctx, f)
	}
	return nil, nil
}

func (m *mockMealRepo) Get(ctx context.Context, id int64) (*domain.Meal, error) {
	if m.getFn != nil {
		return m.getFn(ctx, id)
	}
	return nil, nil
}

func (m *mockMealRepo) Create(ctx context.Context, fields []domain.Assignment) (int64, error) {
	if m.createFn != nil {
		return m.createFn(ctx, fields)
	}
	return 1, nil
}

func (m *mockMealRepo) Update(ctx context.Context, id int64, fields []domain.Assignment) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, id, fields)
	}
	return nil
}

func (m *mockMealRepo) Delete(ctx context.Context, id int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

func (m *mockMealRepo) Comments(context.Context, int64) ([]domain.MealComment, error) {
	return nil, nil
}

func (m *mockMealRepo) AddComment(ctx context.Context, mealID int64, fields []domain.Assignment) (int64, error) {
	if m.addCommentFn != nil {
		return m.addCommentFn(ctx, mealID, fields)
	}
	return 1, nil
}

type mockCoachRepo struct {
	getFn    func(ctx context.Context, id int64) (*domain.Coach, error)
	updateFn func(ctx context.Context, id int64, fields []domain.Assignment) error
	deleteFn func(ctx context.Context, id int64) error
}

func (m *mockCoachRepo) List(context.Context) ([]domain.Coach, error) { return nil, nil }

func (m *mockCoachRepo) Get(ctx context.Context, id int64) (*domain.Coach, error) {
	if m.getFn != nil {
		return m.getFn(ctx, id)
	}
	return nil, nil
}

func (m *mockCoachRepo) Create(context.Context, []domain.Assignment) (int64, error) { return 1, nil }

func (m *mockCoachRepo) Update(ctx context.Context, id int64, fields []domain.Assignment) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, id, fields)
	}
	return nil
}

func (m *mockCoachRepo) Delete(ctx context.Context, id int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

func (m *mockCoachRepo) Notifications(context.Context, int64, string) ([]domain.Notification, error) {
	return nil, nil
}

type mockGoalRepo struct {
	listFn   func(ctx context.Context, f domain.GoalFilter) ([]domain.Goal, error)
	getFn    func(ctx context.Context, id int64) (*domain.Goal, error)
	updateFn func(ctx context.Context, id int64, fields []domain.Assignment) error
}

func (m *mockGoalRepo) List(ctx context.Context, f domain.GoalFilter) ([]domain.Goal, error) {
	if m.listFn != nil {
		return m.listFn(ctx, f)
	}
	return nil, nil
}

func (m *mockGoalRepo) Get(ctx context.Context, id int64) (*domain.Goal, error) {
	if m.getFn != nil {
		return m.getFn(ctx, id)
	}
	return nil, nil
}

func (m *mockGoalRepo) Create(context.Context, []domain.Assignment) (int64, error) { return 1, nil }

func (m *mockGoalRepo) Update(ctx context.Context, id int64, fields []domain.Assignment) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, id, fields)
	}
	return nil
}

func (m *mockGoalRepo) Delete(context.Context, int64) error { return nil }

type mockPlanRepo struct {
	getFn            func(ctx context.Context, id int64) (*domain.Plan, error)
	getExerciseFn    func(ctx context.Context, id int64) (*domain.Exercise, error)
	addExerciseFn    func(ctx context.Context, planID, exerciseID int64, fields []domain.Assignment) error
	updateExerciseFn func(ctx context.Context, planID, exerciseID int64, fields []domain.Assignment) (bool, error)
}

func (m *mockPlanRepo) List(context.Context) ([]domain.Plan, error) { return nil, nil }

func (m *mockPlanRepo) Get(ctx context.Context, id int64) (*domain.Plan, error) {
	if m.getFn != nil {
		return m.getFn(ctx, id)
	}
	return nil, nil
}

func (m *mockPlanRepo) Create(context.Context, []domain.Assignment) (int64, error) { return 1, nil }

func (m *mockPlanRepo) Exercises(context.Context, int64) ([]domain.PlanExercise, error) {
	return nil, nil
}

func (m *mockPlanRepo) AddExercise(ctx context.Context, planID, exerciseID int64, fields []domain.Assignment) error {
	if m.addExerciseFn != nil {
		return m.addExerciseFn(ctx, planID, exerciseID, fields)
	}
	return nil
}

func (m *mockPlanRepo) UpdateExercise(ctx context.Context, planID, exerciseID int64, fields []domain.Assignment) (bool, error) {
	if m.updateExerciseFn != nil {
		return m.updateExerciseFn(ctx, planID, exerciseID, fields)
	}
	return false, nil
}

func (m *mockPlanRepo) Library(context.Context) ([]domain.Exercise, error) { return nil, nil }

func (m *mockPlanRepo) GetExercise(ctx context.Context, id int64) (*domain.Exercise, error) {
	if m.getExerciseFn != nil {
		return m.getExerciseFn(ctx, id)
	}
	return nil, nil
}

func (m *mockPlanRepo) CreateExercise(context.Context, []domain.Assignment) (int64, error) {
	return 1, nil
}

type mockSessionRepo struct {
	sessions map[string]*domain.Session
	deleted  []string
}

func newMockSessionRepo() *mockSessionRepo {
	return &mockSessionRepo{sessions: map[string]*domain.Session{}}
}

func (m *mockSessionRepo) Create(_ context.Context, s *domain.Session) error {
	m.sessions[s.ID] = s
	return nil
}

func (m *mockSessionRepo) Get(_ context.Context, id string) (*domain.Session, error) {
	return m.sessions[id], nil
}

func (m *mockSessionRepo) Delete(_ context.Context, id string) error {
	m.deleted = append(m.deleted, id)
	delete(m.sessions, id)
	return nil
}

func (m *mockSessionRepo) DeleteExpired(_ context.Context, now time.Time) (int64, error) {
	var n int64
	for id, s := range m.sessions {
		if s.Expired(now) {
			delete(m.sessions, id)
			n++
		}
	}
	return n, nil
}
