package postgres

import (
	"context"

	"fittrack/internal/domain"
	"fittrack/internal/sqlbuild"
)

const goalColumns = "goal_id, user_id, goal_type, start_time, end_time, target_value, description"

// GoalRepo implements domain.GoalRepository.
type GoalRepo struct {
	db *DB
}

func NewGoalRepo(db *DB) *GoalRepo {
	return &GoalRepo{db: db}
}

func scanGoal(row rowScanner, g *domain.Goal) error {
	return row.Scan(&g.ID, &g.UserID, &g.GoalType, &g.StartTime, &g.EndTime, &g.TargetValue, &g.Description)
}

func (r *GoalRepo) List(ctx context.Context, f domain.GoalFilter) ([]domain.Goal, error) {
	q := sqlbuild.From("SELECT " + goalColumns + " FROM goals")
	if f.UserID != nil {
		q.Where("user_id", "=", *f.UserID)
	}
	query, args := q.OrderBy("start_time DESC NULLS LAST, goal_id DESC").SQL()
	return queryList(ctx, r.db.sql, scanGoal, query, args...)
}

func (r *GoalRepo) Get(ctx context.Context, id int64) (*domain.Goal, error) {
	return queryOne(ctx, r.db.sql, scanGoal, "SELECT "+goalColumns+" FROM goals WHERE goal_id = $1", id)
}

func (r *GoalRepo) Create(ctx context.Context, fields []domain.Assignment) (int64, error) {
	return insertReturning(ctx, r.db.sql, "goals", "goal_id", fields)
}

func (r *GoalRepo) Update(ctx context.Context, id int64, fields []domain.Assignment) error {
	_, err := update(ctx, r.db.sql, "goals", fields, sqlbuild.Eq("goal_id", id))
	return err
}

func (r *GoalRepo) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.db.sql, "goals", "goal_id", id)
}
