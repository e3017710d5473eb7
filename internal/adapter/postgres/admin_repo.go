package postgres

import (
	"context"
	"fmt"

	"fittrack/internal/domain"
	"fittrack/internal/sqlbuild"
)

// AdminRepo implements domain.AdminRepository.
type AdminRepo struct {
	db *DB
}

func NewAdminRepo(db *DB) *AdminRepo {
	return &AdminRepo{db: db}
}

func scanRole(row rowScanner, r *domain.Role) error {
	return row.Scan(&r.ID, &r.Name)
}

func (r *AdminRepo) Roles(ctx context.Context) ([]domain.Role, error) {
	return queryList(ctx, r.db.sql, scanRole, "SELECT role_id, role_name FROM roles ORDER BY role_id")
}

func (r *AdminRepo) GetRole(ctx context.Context, id int64) (*domain.Role, error) {
	return queryOne(ctx, r.db.sql, scanRole, "SELECT role_id, role_name FROM roles WHERE role_id = $1", id)
}

// AssignRole upserts the single role row of a user and audits it.
func (r *AdminRepo) AssignRole(ctx context.Context, userID, roleID, actorID int64) error {
	tx, err := r.db.sql.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.ExecContext(ctx,
		"INSERT INTO user_roles (user_id, role_id) VALUES ($1, $2) ON CONFLICT (user_id) DO UPDATE SET role_id = EXCLUDED.role_id",
		userID, roleID,
	)
	if err != nil {
		return constraintError(fmt.Errorf("assign role: %w", err))
	}
	details := fmt.Sprintf("user_id=%d role_id=%d", userID, roleID)
	if err := recordAudit(ctx, tx, actorID, "assign_role", "user_roles", details); err != nil {
		return err
	}
	return tx.Commit()
}

func (r *AdminRepo) Audit(ctx context.Context, f domain.AuditFilter) ([]domain.AuditEntry, error) {
	q := sqlbuild.From("SELECT audit_id, user_id, action, table_name, details, change_date FROM audit_log")
	if f.UserID != nil {
		q.Where("user_id", "=", *f.UserID)
	}
	if f.StartDate != nil {
		q.Where("change_date::date", ">=", *f.StartDate)
	}
	if f.EndDate != nil {
		q.Where("change_date::date", "<=", *f.EndDate)
	}
	query, args := q.OrderBy("change_date DESC").SQL()
	return queryList(ctx, r.db.sql, func(row rowScanner, e *domain.AuditEntry) error {
		return row.Scan(&e.ID, &e.UserID, &e.Action, &e.TableName, &e.Details, &e.ChangeDate)
	}, query, args...)
}

func (r *AdminRepo) Alerts(ctx context.Context, alertType string) ([]domain.SystemAlert, error) {
	query, args := sqlbuild.From("SELECT alert_id, alert_type, message, alert_date FROM system_alerts").
		Where("alert_type", "=", alertType).
		OrderBy("alert_date DESC").
		SQL()
	return queryList(ctx, r.db.sql, func(row rowScanner, a *domain.SystemAlert) error {
		return row.Scan(&a.ID, &a.AlertType, &a.Message, &a.AlertDate)
	}, query, args...)
}

func (r *AdminRepo) CreateBackup(ctx context.Context, status string) (int64, error) {
	return insertReturning(ctx, r.db.sql, "backup_log", "backup_id", []domain.Assignment{{Column: "status", Value: status}})
}

func (r *AdminRepo) Backups(ctx context.Context) ([]domain.Backup, error) {
	return queryList(ctx, r.db.sql, func(row rowScanner, b *domain.Backup) error {
		return row.Scan(&b.ID, &b.BackupDate, &b.Status)
	}, "SELECT backup_id, backup_date, status FROM backup_log ORDER BY backup_date DESC")
}

func (r *AdminRepo) SystemMetrics(ctx context.Context, limit int) ([]domain.SystemMetric, error) {
	query, args := sqlbuild.From("SELECT metric_id, metric_name, metric_value, metric_date FROM system_metrics").
		OrderBy("metric_date DESC").
		Limit(limit).
		SQL()
	return queryList(ctx, r.db.sql, func(row rowScanner, m *domain.SystemMetric) error {
		return row.Scan(&m.ID, &m.MetricName, &m.MetricValue, &m.MetricDate)
	}, query, args...)
}
