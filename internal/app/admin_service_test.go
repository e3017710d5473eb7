package app_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"fittrack/internal/app"
	"fittrack/internal/domain"
)

type mockAdminRepo struct {
	roles    map[int64]domain.Role
	assigned [3]int64
}

func (m *mockAdminRepo) Roles(context.Context) ([]domain.Role, error) { return nil, nil }

func (m *mockAdminRepo) GetRole(_ context.Context, id int64) (*domain.Role, error) {
	if r, ok := m.roles[id]; ok {
		return &r, nil
	}
	return nil, nil
}

func (m *mockAdminRepo) AssignRole(_ context.Context, userID, roleID, actorID int64) error {
	m.assigned = [3]int64{userID, roleID, actorID}
	return nil
}

func (m *mockAdminRepo) Audit(context.Context, domain.AuditFilter) ([]domain.AuditEntry, error) {
	return nil, nil
}

func (m *mockAdminRepo) Alerts(context.Context, string) ([]domain.SystemAlert, error) {
	return nil, nil
}

func (m *mockAdminRepo) CreateBackup(context.Context, string) (int64, error) { return 1, nil }

func (m *mockAdminRepo) Backups(context.Context) ([]domain.Backup, error) { return nil, nil }

func (m *mockAdminRepo) SystemMetrics(context.Context, int) ([]domain.SystemMetric, error) {
	return nil, nil
}

func TestAssignRole(t *testing.T) {
	admin := &mockAdminRepo{roles: map[int64]domain.Role{2: {ID: 2, Name: "coach"}}}
	svc := app.NewAdminService(app.NewUserService(activeUsers()), admin)
	ctx := context.Background()

	if err := svc.AssignRole(ctx, payload(t, map[string]any{"user_id": json.Number("1")}), 0); err == nil {
		t.Error("expected role_id required")
	}

	err := svc.AssignRole(ctx, payload(t, map[string]any{"user_id": json.Number("1"), "role_id": json.Number("9")}), 0)
	var nf *domain.NotFoundError
	if !errors.As(err, &nf) || nf.Entity != "role" {
		t.Errorf("err = %v, want role not found", err)
	}

	err = svc.AssignRole(ctx, payload(t, map[string]any{"user_id": json.Number("7"), "role_id": json.Number("2")}), 0)
	if !errors.As(err, &nf) || nf.Entity != "user" {
		t.Errorf("err = %v, want user not found", err)
	}

	if err := svc.AssignRole(ctx, payload(t, map[string]any{"user_id": json.Number("1"), "role_id": json.Number("2")}), 4); err != nil {
		t.Fatalf("AssignRole: %v", err)
	}
	if admin.assigned != [3]int64{1, 2, 4} {
		t.Errorf("assigned = %v", admin.assigned)
	}
}

func TestDeactivateUser_Missing(t *testing.T) {
	svc := app.NewAdminService(app.NewUserService(&mockUserRepo{}), &mockAdminRepo{})
	err := svc.DeactivateUser(context.Background(), payload(t, map[string]any{"user_id": json.Number("3")}), 0)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}
