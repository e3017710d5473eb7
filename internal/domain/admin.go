package domain

import (
	"context"
	"time"
)

// AuditEntry records an administrative change.
type AuditEntry struct {
	ID         int64     `json:"Audit_ID"`
	UserID     *int64    `json:"User_ID"`
	Action     string    `json:"Action"`
	TableName  *string   `json:"Table_Name"`
	Details    *string   `json:"Details"`
	ChangeDate time.Time `json:"Change_Date"`
}

type SystemAlert struct {
	ID        int64     `json:"Alert_ID"`
	AlertType string    `json:"Alert_Type"`
	Message   string    `json:"Message"`
	AlertDate time.Time `json:"Alert_Date"`
}

type Backup struct {
	ID         int64     `json:"Backup_ID"`
	BackupDate time.Time `json:"Backup_Date"`
	Status     string    `json:"Status"`
}

type SystemMetric struct {
	ID          int64     `json:"Metric_ID"`
	MetricName  string    `json:"Metric_Name"`
	MetricValue float64   `json:"Metric_Value"`
	MetricDate  time.Time `json:"Metric_Date"`
}

const (
	AlertError      = "error"
	BackupRequested = "requested"

	// SystemMetricsLimit caps GET /admin/system/metrics.
	SystemMetricsLimit = 100
)

// AuditFilter narrows the audit log. Dates compare against the change day.
type AuditFilter struct {
	UserID    *int64
	StartDate *Date
	EndDate   *Date
}

// AdminRepository defines the port for administrative persistence.
type AdminRepository interface {
	Roles(ctx context.Context) ([]Role, error)
	GetRole(ctx context.Context, id int64) (*Role, error)
	// AssignRole sets the single role of a user and audits it in one transaction.
	AssignRole(ctx context.Context, userID, roleID, actorID int64) error
	Audit(ctx context.Context, f AuditFilter) ([]AuditEntry, error)
	Alerts(ctx context.Context, alertType string) ([]SystemAlert, error)
	CreateBackup(ctx context.Context, status string) (int64, error)
	Backups(ctx context.Context) ([]Backup, error)
	SystemMetrics(ctx context.Context, limit int) ([]SystemMetric, error)
}
