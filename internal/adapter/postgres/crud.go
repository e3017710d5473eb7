package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"fittrack/internal/domain"
	"fittrack/internal/sqlbuild"

	"github.com/lib/pq"
)

type rowScanner interface {
	Scan(dest ...any) error
}

type querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// queryList runs query and scans every row with scan.
func queryList[T any](ctx context.Context, q querier, scan func(rowScanner, *T) error, query string, args ...any) ([]T, error) {
	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []T{}
	for rows.Next() {
		var v T
		if err := scan(rows, &v); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

// queryOne returns nil, nil when query yields no row.
func queryOne[T any](ctx context.Context, q querier, scan func(rowScanner, *T) error, query string, args ...any) (*T, error) {
	var v T
	if err := scan(q.QueryRowContext(ctx, query, args...), &v); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &v, nil
}

func insertReturning(ctx context.Context, q querier, table, key string, fields []domain.Assignment) (int64, error) {
	query, args, err := sqlbuild.Insert(table, key, fields)
	if err != nil {
		return 0, err
	}
	var id int64
	if err := q.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
		return 0, constraintError(fmt.Errorf("insert %s: %w", table, err))
	}
	return id, nil
}

// update returns the number of rows the statement touched.
func update(ctx context.Context, q querier, table string, fields []domain.Assignment, where ...sqlbuild.Cond) (int64, error) {
	query, args, err := sqlbuild.Update(table, fields, where...)
	if err != nil {
		return 0, err
	}
	res, err := q.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, constraintError(fmt.Errorf("update %s: %w", table, err))
	}
	return res.RowsAffected()
}

func deleteByID(ctx context.Context, q querier, table, key string, id int64) error {
	_, err := q.ExecContext(ctx, "DELETE FROM "+table+" WHERE "+key+" = $1", id)
	if err != nil {
		return constraintError(fmt.Errorf("delete %s: %w", table, err))
	}
	return nil
}

// constraintError turns integrity violations caused by client input into
// validation errors and leaves every other error untouched.
func constraintError(err error) error {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return err
	}
	switch pqErr.Code.Name() {
	case "foreign_key_violation":
		return domain.Invalid("reference", "violates a foreign key: "+pqErr.Detail)
	case "unique_violation":
		return domain.Invalid("value", "already exists: "+pqErr.Detail)
	case "not_null_violation":
		return domain.Invalid(pqErr.Column, "must not be null")
	case "check_violation":
		return domain.Invalid(pqErr.Constraint, "check failed")
	}
	return err
}

// nullableActor maps an unknown actor (0) to NULL.
func nullableActor(id int64) any {
	if id == 0 {
		return nil
	}
	return id
}

func recordAudit(ctx context.Context, tx *sql.Tx, actorID int64, action, table, details string) error {
	_, err := tx.ExecContext(ctx,
		"INSERT INTO audit_log (user_id, action, table_name, details) VALUES ($1, $2, $3, $4)",
		nullableActor(actorID), action, table, details,
	)
	if err != nil {
		return fmt.Errorf("audit %s: %w", action, err)
	}
	return nil
}
