package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/aanand-mishra/student-store/internal/storage"
)

// Executor is the SQL execution facility the repository runs on.
// Both *sqlx.DB and *sqlx.Tx implement it, so a caller that owns a
// transaction can hand it in instead of the pool.
type Executor interface {
	SelectContext(ctx context.Context, dest any, query string, args ...any) error
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// queryForList maps every row of query into a non-nil slice of T.
func queryForList[T any](ctx context.Context, exec Executor, op, query string, args ...any) ([]T, error) {
	list := make([]T, 0)
	if err := exec.SelectContext(ctx, &list, query, args...); err != nil {
		return nil, storage.NewDataAccessError(op, fmt.Errorf("select: %w", err))
	}
	return list, nil
}

// queryForObject expects query to produce exactly one row.
// Zero rows is storage.ErrNotFound, more than one storage.ErrMultipleResults.
func queryForObject[T any](ctx context.Context, exec Executor, op, query string, args ...any) (T, error) {
	var zero T

	list, err := queryForList[T](ctx, exec, op, query, args...)
	if err != nil {
		return zero, err
	}

	switch len(list) {
	case 0:
		return zero, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	case 1:
		return list[0], nil
	default:
		return zero, fmt.Errorf("%s: %d rows: %w", op, len(list), storage.ErrMultipleResults)
	}
}

// update runs a write statement and returns the rows it affected.
func update(ctx context.Context, exec Executor, op, query string, args ...any) (sql.Result, int64, error) {
	result, err := exec.ExecContext(ctx, query, args...)
	if err != nil {
		return nil, 0, storage.NewDataAccessError(op, fmt.Errorf("exec: %w", err))
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return nil, 0, storage.NewDataAccessError(op, fmt.Errorf("rows affected: %w", err))
	}

	return result, affected, nil
}
