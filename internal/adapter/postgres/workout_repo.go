package postgres

import (
	"context"

	"fittrack/internal/domain"
	"fittrack/internal/sqlbuild"
)

const workoutColumns = "workout_id, user_id, workout_date, workout_type, duration_minutes, calories_burned, notes"

// WorkoutRepo implements domain.WorkoutRepository.
type WorkoutRepo struct {
	db *DB
}

func NewWorkoutRepo(db *DB) *WorkoutRepo {
	return &WorkoutRepo{db: db}
}

func scanWorkout(row rowScanner, w *domain.Workout) error {
	return row.Scan(&w.ID, &w.UserID, &w.WorkoutDate, &w.WorkoutType, &w.DurationMinutes, &w.CaloriesBurned, &w.Notes)
}

// List returns workouts matching f, newest first.
func (r *WorkoutRepo) List(ctx context.Context, f domain.WorkoutFilter) ([]domain.Workout, error) {
	q := sqlbuild.From("SELECT " + workoutColumns + " FROM workouts")
	if f.UserID != nil {
		q.Where("user_id", "=", *f.UserID)
	}
	if f.StartDate != nil {
		q.Where("workout_date", ">=", *f.StartDate)
	}
	if f.EndDate != nil {
		q.Where("workout_date", "<=", *f.EndDate)
	}
	if f.WorkoutType != "" {
		q.Where("workout_type", "=", f.WorkoutType)
	}
	query, args := q.OrderBy("workout_date DESC, workout_id DESC").SQL()
	return queryList(ctx, r.db.sql, scanWorkout, query, args...)
}

func (r *WorkoutRepo) Get(ctx context.Context, id int64) (*domain.Workout, error) {
	return queryOne(ctx, r.db.sql, scanWorkout, "SELECT "+workoutColumns+" FROM workouts WHERE workout_id = $1", id)
}

func (r *WorkoutRepo) Create(ctx context.Context, fields []domain.Assignment) (int64, error) {
	return insertReturning(ctx, r.db.sql, "workouts", "workout_id", fields)
}

func (r *WorkoutRepo) Update(ctx context.Context, id int64, fields []domain.Assignment) error {
	_, err := update(ctx, r.db.sql, "workouts", fields, sqlbuild.Eq("workout_id", id))
	return err
}

func (r *WorkoutRepo) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.db.sql, "workouts", "workout_id", id)
}

// WeightMetrics returns weight readings matching f in ascending date order.
func (r *WorkoutRepo) WeightMetrics(ctx context.Context, f domain.WeightFilter) ([]domain.WeightMetric, error) {
	q := sqlbuild.From("SELECT metric_id, user_id, weight_date, weight, unit FROM weight_metrics")
	if f.UserID != nil {
		q.Where("user_id", "=", *f.UserID)
	}
	if f.StartDate != nil {
		q.Where("weight_date", ">=", *f.StartDate)
	}
	if f.EndDate != nil {
		q.Where("weight_date", "<=", *f.EndDate)
	}
	query, args := q.OrderBy("weight_date ASC, metric_id ASC").SQL()
	return queryList(ctx, r.db.sql, func(row rowScanner, m *domain.WeightMetric) error {
		return row.Scan(&m.ID, &m.UserID, &m.WeightDate, &m.Weight, &m.Unit)
	}, query, args...)
}

func (r *WorkoutRepo) RecordWeight(ctx context.Context, fields []domain.Assignment) (int64, error) {
	return insertReturning(ctx, r.db.sql, "weight_metrics", "metric_id", fields)
}
