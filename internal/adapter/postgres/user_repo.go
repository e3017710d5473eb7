package postgres

import (
	"context"
	"fmt"

	"fittrack/internal/domain"
	"fittrack/internal/sqlbuild"
)

const userColumns = "user_id, first_name, last_name, email, phone, birthdate, gender, registration_date, is_active"

// UserRepo implements domain.UserRepository.
type UserRepo struct {
	db *DB
}

func NewUserRepo(db *DB) *UserRepo {
	return &UserRepo{db: db}
}

func scanUser(row rowScanner, u *domain.User) error {
	return row.Scan(&u.ID, &u.FirstName, &u.LastName, &u.Email, &u.Phone, &u.Birthdate, &u.Gender, &u.RegistrationDate, &u.IsActive)
}

func (r *UserRepo) Get(ctx context.Context, id int64) (*domain.User, error) {
	return queryOne(ctx, r.db.sql, scanUser, "SELECT "+userColumns+" FROM users WHERE user_id = $1", id)
}

func (r *UserRepo) List(ctx context.Context, f domain.UserFilter) ([]domain.User, error) {
	q := sqlbuild.From("SELECT " + userColumns + " FROM users")
	if f.Active != nil {
		q.Where("is_active", "=", *f.Active)
	}
	query, args := q.OrderBy("user_id").SQL()
	return queryList(ctx, r.db.sql, scanUser, query, args...)
}

// ListWithRoles joins each user with the name of their role.
func (r *UserRepo) ListWithRoles(ctx context.Context) ([]domain.User, error) {
	const query = "SELECT u.user_id, u.first_name, u.last_name, u.email, u.phone, u.birthdate, u.gender, u.registration_date, u.is_active, r.role_name" +
		" FROM users u LEFT JOIN user_roles ur ON ur.user_id = u.user_id LEFT JOIN roles r ON r.role_id = ur.role_id" +
		" ORDER BY u.user_id"
	return queryList(ctx, r.db.sql, func(row rowScanner, u *domain.User) error {
		return row.Scan(&u.ID, &u.FirstName, &u.LastName, &u.Email, &u.Phone, &u.Birthdate, &u.Gender, &u.RegistrationDate, &u.IsActive, &u.RoleName)
	}, query)
}

func (r *UserRepo) Create(ctx context.Context, fields []domain.Assignment) (int64, error) {
	return insertReturning(ctx, r.db.sql, "users", "user_id", fields)
}

func (r *UserRepo) Update(ctx context.Context, id int64, fields []domain.Assignment) error {
	_, err := update(ctx, r.db.sql, "users", fields, sqlbuild.Eq("user_id", id))
	return err
}

// Deactivate clears is_active and audits the change in one transaction.
func (r *UserRepo) Deactivate(ctx context.Context, id, actorID int64) (bool, error) {
	tx, err := r.db.sql.BeginTx(ctx, nil)
	if err != nil {
		return false, err
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.ExecContext(ctx, "UPDATE users SET is_active = FALSE WHERE user_id = $1", id)
	if err != nil {
		return false, fmt.Errorf("deactivate user: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	if n == 0 {
		return false, nil
	}
	if err := recordAudit(ctx, tx, actorID, "deactivate_user", "users", fmt.Sprintf("user_id=%d", id)); err != nil {
		return false, err
	}
	return true, tx.Commit()
}
