package repository

import (
	"context"
	"database/sql"
	"fmt"

	"aquaevents/internal/domain"
)

// fkRef is one candidate reference to re-check after a foreign-key violation.
// SQLite reports "FOREIGN KEY constraint failed" without naming the
// offending reference, so the write path re-checks its references to turn
// the violation into an actionable validation error.
type fkRef struct {
	field  string // column on the inserting table, e.g. "event_id"
	table  string // referenced table
	entity string // human name used in the message
	id     string // value that was written; empty refs are skipped
	hint   string // optional corrective sentence appended to the message
}

// diagnoseFK checks refs in order and returns a ValidationError naming the
// first dangling reference. It returns nil when every reference resolves
// (or a lookup itself fails), in which case the caller falls back to the
// generic foreign-key translation.
func diagnoseFK(ctx context.Context, db *sql.DB, refs []fkRef) error {
	for _, ref := range refs {
		if ref.id == "" {
			continue
		}
		var exists int
		q := fmt.Sprintf("SELECT EXISTS (SELECT 1 FROM %s WHERE id = ?)", ref.table) //nolint:gosec // table names are compile-time constants
		if err := db.QueryRowContext(ctx, q, ref.id).Scan(&exists); err != nil {
			return nil
		}
		if exists == 0 {
			msg := fmt.Sprintf("The %s with ID '%s' does not exist", ref.entity, ref.id)
			if ref.hint != "" {
				msg += ". " + ref.hint
			}
			return domain.ErrValidation(ref.field, "%s", msg)
		}
	}
	return nil
}

// mapWriteError is the standard failure path for mutations: categorize the
// driver error, run the FK diagnostic when applicable, and translate the
// result into a domain error.
func mapWriteError(ctx context.Context, db *sql.DB, op string, err error, refs []fkRef) error {
	ie := fromSQLiteError(op, err)
	if ie.Kind == KindForeignKeyConstraint {
		if derr := diagnoseFK(ctx, db, refs); derr != nil {
			return derr
		}
	}
	return toDomain(ie)
}
