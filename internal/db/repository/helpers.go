package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// timeNow is indirected for tests.
var timeNow = time.Now

func boolToInt(b bool) int64 {
	if b {
		return 1
	}
	return 0
}

// fmtTime stores timestamps as UTC RFC 3339 text.
func fmtTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func fmtTimePtr(t *time.Time) any {
	if t == nil {
		return nil
	}
	return fmtTime(*t)
}

func uuidPtr(id *uuid.UUID) any {
	if id == nil {
		return nil
	}
	return id.String()
}

// uuidPtrString is the lookup form used by the FK diagnostic.
func uuidPtrString(id *uuid.UUID) string {
	if id == nil {
		return ""
	}
	return id.String()
}

func strPtr(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}

func intPtr(n *int) any {
	if n == nil {
		return nil
	}
	return *n
}

// marshalJSON encodes list-valued columns (co-organizers, guest names).
func marshalJSON(op, field string, v any) (string, *InfraError) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", &InfraError{
			Kind: KindJSONConversion, Op: op, Field: field,
			Message: fmt.Sprintf("encode: %v", err),
		}
	}
	return string(b), nil
}

// queryExists wraps a predicate in SELECT EXISTS and maps the failure path.
func queryExists(ctx context.Context, db *sql.DB, op, predicate string, args ...any) (bool, error) {
	var found bool
	query := "SELECT EXISTS(" + predicate + ")"
	if err := db.QueryRowContext(ctx, query, args...).Scan(&found); err != nil {
		return false, toDomain(fromSQLiteError(op, err))
	}
	return found, nil
}

// countRows runs a COUNT query for pagination totals.
func countRows(ctx context.Context, db *sql.DB, op, query string, args ...any) (int64, error) {
	var total int64
	if err := db.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		return 0, toDomain(fromSQLiteError(op, err))
	}
	return total, nil
}

// queryOne runs a point lookup and maps the single row through build.
// Absence is reported as (nil, nil).
func queryOne[T any](
	ctx context.Context,
	db *sql.DB,
	op, query string,
	build func(row) (*T, *InfraError),
	args ...any,
) (*T, error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, toDomain(fromSQLiteError(op, err))
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, toDomain(fromSQLiteError(op, err))
		}
		return nil, nil
	}
	rec, err := scanRow(rows)
	if err != nil {
		return nil, toDomain(fromSQLiteError(op, err))
	}
	v, ierr := build(rec)
	if ierr != nil {
		ierr.Op = op
		return nil, toDomain(ierr)
	}
	return v, nil
}

// queryMany runs a list query and maps every row through build.
func queryMany[T any](
	ctx context.Context,
	db *sql.DB,
	op, query string,
	build func(row) (*T, *InfraError),
	args ...any,
) ([]T, error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, toDomain(fromSQLiteError(op, err))
	}
	defer rows.Close()

	var out []T
	for rows.Next() {
		rec, err := scanRow(rows)
		if err != nil {
			return nil, toDomain(fromSQLiteError(op, err))
		}
		v, ierr := build(rec)
		if ierr != nil {
			ierr.Op = op
			return nil, toDomain(ierr)
		}
		out = append(out, *v)
	}
	if err := rows.Err(); err != nil {
		return nil, toDomain(fromSQLiteError(op, err))
	}
	return out, nil
}

// execAffectingOne runs a mutation that must touch exactly one row and
// reports zero rows through notFound.
func execAffectingOne(
	ctx context.Context,
	db *sql.DB,
	op, query string,
	notFound func() error,
	args ...any,
) error {
	res, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		return toDomain(fromSQLiteError(op, err))
	}
	n, err := res.RowsAffected()
	if err != nil {
		return toDomain(fromSQLiteError(op, err))
	}
	if n == 0 {
		return notFound()
	}
	return nil
}
