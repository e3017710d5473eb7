package app

import (
	"context"
	"fmt"

	"fittrack/internal/domain"
)

// AdminService covers the system administrator views.
type AdminService struct {
	users *UserService
	repo  domain.AdminRepository
}

func NewAdminService(users *UserService, repo domain.AdminRepository) *AdminService {
	return &AdminService{users: users, repo: repo}
}

// Users lists every user with the name of their role, if any.
func (s *AdminService) Users(ctx context.Context) ([]domain.User, error) {
	return s.users.repo.ListWithRoles(ctx)
}

func (s *AdminService) CreateUser(ctx context.Context, p domain.Payload) (int64, error) {
	return s.users.Create(ctx, p)
}

// AssignRole sets the role of the user named by user_id to role_id.
func (s *AdminService) AssignRole(ctx context.Context, p domain.Payload, actorID int64) error {
	if p == nil {
		return domain.ErrBodyRequired
	}
	userID, err := p.Int("user_id")
	if err != nil {
		return err
	}
	roleID, err := p.Int("role_id")
	if err != nil {
		return err
	}
	if _, err := s.users.Get(ctx, userID); err != nil {
		return err
	}
	role, err := s.repo.GetRole(ctx, roleID)
	if err != nil {
		return fmt.Errorf("get role %d: %w", roleID, err)
	}
	if role == nil {
		return domain.NotFound("role")
	}
	return s.repo.AssignRole(ctx, userID, roleID, actorID)
}

// DeactivateUser soft-deletes the user named by user_id in the body.
func (s *AdminService) DeactivateUser(ctx context.Context, p domain.Payload, actorID int64) error {
	if p == nil {
		return domain.ErrBodyRequired
	}
	userID, err := p.Int("user_id")
	if err != nil {
		return err
	}
	return s.users.Deactivate(ctx, userID, actorID)
}

func (s *AdminService) Roles(ctx context.Context) ([]domain.Role, error) {
	return s.repo.Roles(ctx)
}

func (s *AdminService) Audit(ctx context.Context, f domain.AuditFilter) ([]domain.AuditEntry, error) {
	return s.repo.Audit(ctx, f)
}

// ErrorAlerts lists alerts of type error, newest first.
func (s *AdminService) ErrorAlerts(ctx context.Context) ([]domain.SystemAlert, error) {
	return s.repo.Alerts(ctx, domain.AlertError)
}

// RequestBackup records a backup request and returns its id.
func (s *AdminService) RequestBackup(ctx context.Context) (int64, error) {
	return s.repo.CreateBackup(ctx, domain.BackupRequested)
}

func (s *AdminService) Backups(ctx context.Context) ([]domain.Backup, error) {
	return s.repo.Backups(ctx)
}

// SystemMetrics returns the latest metric samples.
func (s *AdminService) SystemMetrics(ctx context.Context) ([]domain.SystemMetric, error) {
	return s.repo.SystemMetrics(ctx, domain.SystemMetricsLimit)
}
