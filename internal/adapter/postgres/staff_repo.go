package postgres

import (
	"context"

	"fittrack/internal/domain"
	"fittrack/internal/sqlbuild"
)

// CoachRepo implements domain.CoachRepository.
type CoachRepo struct {
	db *DB
}

func NewCoachRepo(db *DB) *CoachRepo {
	return &CoachRepo{db: db}
}

func scanCoach(row rowScanner, c *domain.Coach) error {
	return row.Scan(&c.ID, &c.UserID, &c.Specialization, &c.Terminator)
}

func (r *CoachRepo) List(ctx context.Context) ([]domain.Coach, error) {
	return queryList(ctx, r.db.sql, scanCoach, "SELECT coach_id, user_id, specialization, terminator FROM coaches ORDER BY coach_id")
}

func (r *CoachRepo) Get(ctx context.Context, id int64) (*domain.Coach, error) {
	return queryOne(ctx, r.db.sql, scanCoach, "SELECT coach_id, user_id, specialization, terminator FROM coaches WHERE coach_id = $1", id)
}

func (r *CoachRepo) Create(ctx context.Context, fields []domain.Assignment) (int64, error) {
	return insertReturning(ctx, r.db.sql, "coaches", "coach_id", fields)
}

func (r *CoachRepo) Update(ctx context.Context, id int64, fields []domain.Assignment) error {
	_, err := update(ctx, r.db.sql, "coaches", fields, sqlbuild.Eq("coach_id", id))
	return err
}

func (r *CoachRepo) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.db.sql, "coaches", "coach_id", id)
}

func (r *CoachRepo) Notifications(ctx context.Context, coachID int64, kind string) ([]domain.Notification, error) {
	query, args := sqlbuild.From("SELECT notification_id, coach_id, user_id, notification_type, message, notification_date FROM notifications").
		Where("coach_id", "=", coachID).
		Where("notification_type", "=", kind).
		OrderBy("notification_date DESC").
		SQL()
	return queryList(ctx, r.db.sql, func(row rowScanner, n *domain.Notification) error {
		return row.Scan(&n.ID, &n.CoachID, &n.UserID, &n.NotificationType, &n.Message, &n.NotificationDate)
	}, query, args...)
}

// DietitianRepo implements domain.DietitianRepository.
type DietitianRepo struct {
	db *DB
}

func NewDietitianRepo(db *DB) *DietitianRepo {
	return &DietitianRepo{db: db}
}

func scanDietitian(row rowScanner, d *domain.Dietitian) error {
	return row.Scan(&d.ID, &d.UserID, &d.LicenseNumber, &d.Specialization)
}

func (r *DietitianRepo) List(ctx context.Context) ([]domain.Dietitian, error) {
	return queryList(ctx, r.db.sql, scanDietitian, "SELECT dietitian_id, user_id, license_number, specialization FROM dietitians ORDER BY dietitian_id")
}

func (r *DietitianRepo) Get(ctx context.Context, id int64) (*domain.Dietitian, error) {
	return queryOne(ctx, r.db.sql, scanDietitian, "SELECT dietitian_id, user_id, license_number, specialization FROM dietitians WHERE dietitian_id = $1", id)
}

func (r *DietitianRepo) Create(ctx context.Context, fields []domain.Assignment) (int64, error) {
	return insertReturning(ctx, r.db.sql, "dietitians", "dietitian_id", fields)
}

func (r *DietitianRepo) Update(ctx context.Context, id int64, fields []domain.Assignment) error {
	_, err := update(ctx, r.db.sql, "dietitians", fields, sqlbuild.Eq("dietitian_id", id))
	return err
}

func (r *DietitianRepo) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.db.sql, "dietitians", "dietitian_id", id)
}
