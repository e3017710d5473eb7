package postgres

import (
	"context"

	"fittrack/internal/domain"
	"fittrack/internal/sqlbuild"
)

const mealColumns = "meal_id, user_id, meal_name, meal_type, calories, meal_date, meal_time, notes"

// MealRepo implements domain.MealRepository.
type MealRepo struct {
	db *DB
}

func NewMealRepo(db *DB) *MealRepo {
	return &MealRepo{db: db}
}

func scanMeal(row rowScanner, m *domain.Meal) error {
	return row.Scan(&m.ID, &m.UserID, &m.MealName, &m.MealType, &m.Calories, &m.MealDate, &m.MealTime, &m.Notes)
}

// List returns meals matching f, newest first.
func (r *MealRepo) List(ctx context.Context, f domain.MealFilter) ([]domain.Meal, error) {
	q := sqlbuild.From("SELECT " + mealColumns + " FROM meals")
	if f.UserID != nil {
		q.Where("user_id", "=", *f.UserID)
	}
	if f.StartDate != nil {
		q.Where("meal_date", ">=", *f.StartDate)
	}
	if f.EndDate != nil {
		q.Where("meal_date", "<=", *f.EndDate)
	}
	if f.MealType != "" {
		q.Where("meal_type", "=", f.MealType)
	}
	query, args := q.OrderBy("meal_date DESC, meal_time DESC").SQL()
	return queryList(ctx, r.db.sql, scanMeal, query, args...)
}

func (r *MealRepo) Get(ctx context.Context, id int64) (*domain.Meal, error) {
	return queryOne(ctx, r.db.sql, scanMeal, "SELECT "+mealColumns+" FROM meals WHERE meal_id = $1", id)
}

func (r *MealRepo) Create(ctx context.Context, fields []domain.Assignment) (int64, error) {
	return insertReturning(ctx, r.db.sql, "meals", "meal_id", fields)
}

func (r *MealRepo) Update(ctx context.Context, id int64, fields []domain.Assignment) error {
	_, err := update(ctx, r.db.sql, "meals", fields, sqlbuild.Eq("meal_id", id))
	return err
}

// Delete removes the meal; its comments cascade.
func (r *MealRepo) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.db.sql, "meals", "meal_id", id)
}

func (r *MealRepo) Comments(ctx context.Context, mealID int64) ([]domain.MealComment, error) {
	return queryList(ctx, r.db.sql, func(row rowScanner, c *domain.MealComment) error {
		return row.Scan(&c.ID, &c.MealID, &c.DietitianID, &c.CommentText, &c.CommentDate)
	}, "SELECT comment_id, meal_id, dietitian_id, comment_text, comment_date FROM meal_comments WHERE meal_id = $1 ORDER BY comment_date DESC, comment_id DESC", mealID)
}

func (r *MealRepo) AddComment(ctx context.Context, mealID int64, fields []domain.Assignment) (int64, error) {
	all := append([]domain.Assignment{{Column: "meal_id", Value: mealID}}, fields...)
	return insertReturning(ctx, r.db.sql, "meal_comments", "comment_id", all)
}
