package postgres

import (
	"context"

	"fittrack/internal/domain"
	"fittrack/internal/sqlbuild"
)

const (
	planColumns     = "plan_id, plan_name, client_id, start_date, end_date, description"
	exerciseColumns = "exercise_id, exercise_name, video_url, description, muscle_group"
)

// PlanRepo implements domain.PlanRepository.
type PlanRepo struct {
	db *DB
}

func NewPlanRepo(db *DB) *PlanRepo {
	return &PlanRepo{db: db}
}

func scanPlan(row rowScanner, p *domain.Plan) error {
	return row.Scan(&p.ID, &p.PlanName, &p.ClientID, &p.StartDate, &p.EndDate, &p.Description)
}

func scanExercise(row rowScanner, e *domain.Exercise) error {
	return row.Scan(&e.ID, &e.ExerciseName, &e.VideoURL, &e.Description, &e.MuscleGroup)
}

func (r *PlanRepo) List(ctx context.Context) ([]domain.Plan, error) {
	return queryList(ctx, r.db.sql, scanPlan, "SELECT "+planColumns+" FROM plans ORDER BY plan_id")
}

func (r *PlanRepo) Get(ctx context.Context, id int64) (*domain.Plan, error) {
	return queryOne(ctx, r.db.sql, scanPlan, "SELECT "+planColumns+" FROM plans WHERE plan_id = $1", id)
}

func (r *PlanRepo) Create(ctx context.Context, fields []domain.Assignment) (int64, error) {
	return insertReturning(ctx, r.db.sql, "plans", "plan_id", fields)
}

// Exercises joins the plan's scheduled exercises with the library.
func (r *PlanRepo) Exercises(ctx context.Context, planID int64) ([]domain.PlanExercise, error) {
	const query = "SELECT pe.plan_id, pe.exercise_id, pe.sets, pe.reps, e.exercise_name, e.video_url" +
		" FROM plan_exercises pe JOIN exercises e ON e.exercise_id = pe.exercise_id" +
		" WHERE pe.plan_id = $1 ORDER BY pe.exercise_id"
	return queryList(ctx, r.db.sql, func(row rowScanner, pe *domain.PlanExercise) error {
		return row.Scan(&pe.PlanID, &pe.ExerciseID, &pe.Sets, &pe.Reps, &pe.ExerciseName, &pe.VideoURL)
	}, query, planID)
}

func (r *PlanRepo) AddExercise(ctx context.Context, planID, exerciseID int64, fields []domain.Assignment) error {
	all := append([]domain.Assignment{
		{Column: "plan_id", Value: planID},
		{Column: "exercise_id", Value: exerciseID},
	}, fields...)
	query, args, err := sqlbuild.Insert("plan_exercises", "", all)
	if err != nil {
		return err
	}
	if _, err := r.db.sql.ExecContext(ctx, query, args...); err != nil {
		return constraintError(err)
	}
	return nil
}

func (r *PlanRepo) UpdateExercise(ctx context.Context, planID, exerciseID int64, fields []domain.Assignment) (bool, error) {
	n, err := update(ctx, r.db.sql, "plan_exercises", fields,
		sqlbuild.Eq("plan_id", planID), sqlbuild.Eq("exercise_id", exerciseID))
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *PlanRepo) Library(ctx context.Context) ([]domain.Exercise, error) {
	return queryList(ctx, r.db.sql, scanExercise, "SELECT "+exerciseColumns+" FROM exercises ORDER BY exercise_name")
}

func (r *PlanRepo) GetExercise(ctx context.Context, id int64) (*domain.Exercise, error) {
	return queryOne(ctx, r.db.sql, scanExercise, "SELECT "+exerciseColumns+" FROM exercises WHERE exercise_id = $1", id)
}

func (r *PlanRepo) CreateExercise(ctx context.Context, fields []domain.Assignment) (int64, error) {
	return insertReturning(ctx, r.db.sql, "exercises", "exercise_id", fields)
}
