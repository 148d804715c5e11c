// Package repository implements domain repository interfaces on SQLite.
//
// Every storage failure funnels through the same pipeline: the raw driver
// error is categorized into an InfraError (what the engine reported) and
// then translated by toDomain into a domain error (what callers are allowed
// to see). No other package interprets InfraError.
package repository

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mattn/go-sqlite3"

	"aquaevents/internal/domain"
)

// InfraKind tags an InfraError with the category of storage failure.
type InfraKind int

const (
	KindConnectionFailed InfraKind = iota
	KindMigrationFailed
	KindTransactionFailed
	KindQueryFailed
	KindUniqueConstraint
	KindNotNullConstraint
	KindCheckConstraint
	KindForeignKeyConstraint
	KindUUIDConversion
	KindDateTimeConversion
	KindJSONConversion
	KindRowConversion
	KindInternal
)

func (k InfraKind) String() string {
	switch k {
	case KindConnectionFailed:
		return "connection_failed"
	case KindMigrationFailed:
		return "migration_failed"
	case KindTransactionFailed:
		return "transaction_failed"
	case KindQueryFailed:
		return "query_failed"
	case KindUniqueConstraint:
		return "unique_constraint"
	case KindNotNullConstraint:
		return "not_null_constraint"
	case KindCheckConstraint:
		return "check_constraint"
	case KindForeignKeyConstraint:
		return "foreign_key_constraint"
	case KindUUIDConversion:
		return "uuid_conversion"
	case KindDateTimeConversion:
		return "datetime_conversion"
	case KindJSONConversion:
		return "json_conversion"
	case KindRowConversion:
		return "row_conversion"
	default:
		return "internal"
	}
}

// InfraError is a categorized storage failure. Table, Field, and Value are
// populated for constraint kinds when the engine's message names them.
type InfraError struct {
	Kind    InfraKind
	Op      string // repository operation, e.g. "users.Create"
	Table   string
	Field   string
	Value   string
	Message string
	Err     error // underlying driver error, if any
}

func (e *InfraError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Kind, e.Err)
	}
	return fmt.Sprintf("%s: %s: %s", e.Op, e.Kind, e.Message)
}

func (e *InfraError) Unwrap() error { return e.Err }

// fromSQLiteError categorizes a driver error using the sqlite3 extended
// result codes, with message-text parsing as a fallback for errors that do
// not surface as sqlite3.Error values.
func fromSQLiteError(op string, err error) *InfraError {
	var serr sqlite3.Error
	if errors.As(err, &serr) {
		switch serr.ExtendedCode {
		case sqlite3.ErrConstraintUnique, sqlite3.ErrConstraintPrimaryKey:
			table, field := parseUniqueConstraint(serr.Error())
			return &InfraError{Kind: KindUniqueConstraint, Op: op, Table: table, Field: field, Err: err}
		case sqlite3.ErrConstraintNotNull:
			table, field := parseNotNullConstraint(serr.Error())
			return &InfraError{Kind: KindNotNullConstraint, Op: op, Table: table, Field: field, Err: err}
		case sqlite3.ErrConstraintCheck:
			return &InfraError{Kind: KindCheckConstraint, Op: op, Field: parseCheckConstraint(serr.Error()), Err: err}
		case sqlite3.ErrConstraintForeignKey:
			return &InfraError{Kind: KindForeignKeyConstraint, Op: op, Err: err}
		}
		switch serr.Code {
		case sqlite3.ErrBusy, sqlite3.ErrLocked, sqlite3.ErrCantOpen:
			return &InfraError{Kind: KindConnectionFailed, Op: op, Err: err}
		}
		return &InfraError{Kind: KindQueryFailed, Op: op, Err: err}
	}

	// Pool-level failures and wrapped errors lose the typed code.
	msg := err.Error()
	switch {
	case strings.Contains(msg, "UNIQUE constraint failed"):
		table, field := parseUniqueConstraint(msg)
		return &InfraError{Kind: KindUniqueConstraint, Op: op, Table: table, Field: field, Err: err}
	case strings.Contains(msg, "NOT NULL constraint failed"):
		table, field := parseNotNullConstraint(msg)
		return &InfraError{Kind: KindNotNullConstraint, Op: op, Table: table, Field: field, Err: err}
	case strings.Contains(msg, "CHECK constraint failed"):
		return &InfraError{Kind: KindCheckConstraint, Op: op, Field: parseCheckConstraint(msg), Err: err}
	case strings.Contains(msg, "FOREIGN KEY constraint failed"):
		return &InfraError{Kind: KindForeignKeyConstraint, Op: op, Err: err}
	case strings.Contains(msg, "database is locked"), strings.Contains(msg, "unable to open database"):
		return &InfraError{Kind: KindConnectionFailed, Op: op, Err: err}
	default:
		return &InfraError{Kind: KindQueryFailed, Op: op, Err: err}
	}
}

// parseUniqueConstraint extracts (table, field) from messages of the form
// "UNIQUE constraint failed: users.email" or, for composite constraints,
// "UNIQUE constraint failed: event_registrations.user_id,
// event_registrations.event_id". The first component wins.
func parseUniqueConstraint(msg string) (table, field string) {
	return parseConstraintTarget(msg, "UNIQUE constraint failed: ")
}

// parseNotNullConstraint extracts (table, field) from
// "NOT NULL constraint failed: users.name".
func parseNotNullConstraint(msg string) (table, field string) {
	return parseConstraintTarget(msg, "NOT NULL constraint failed: ")
}

func parseConstraintTarget(msg, prefix string) (table, field string) {
	idx := strings.Index(msg, prefix)
	if idx < 0 {
		return "", ""
	}
	rest := msg[idx+len(prefix):]
	if comma := strings.IndexByte(rest, ','); comma >= 0 {
		rest = rest[:comma]
	}
	rest = strings.TrimSpace(rest)
	table, field, ok := strings.Cut(rest, ".")
	if !ok {
		return "", rest
	}
	return table, field
}

// parseCheckConstraint extracts the constraint or column name from
// "CHECK constraint failed: status".
func parseCheckConstraint(msg string) string {
	const prefix = "CHECK constraint failed: "
	idx := strings.Index(msg, prefix)
	if idx < 0 {
		return ""
	}
	return strings.TrimSpace(msg[idx+len(prefix):])
}

// uniqueMessages maps table.field to the user-facing conflict message.
var uniqueMessages = map[string]string{
	"users.email":                        "This email address is already registered. Please use a different email or try signing in.",
	"users.keycloak_id":                  "This account is already linked to another user.",
	"event_categories.id":                "This category ID is already in use. Please choose a different ID.",
	"event_categories.name":              "This category name is already taken. Please choose a different name.",
	"event_registrations.user_id":        "You are already registered for this event.",
	"event_registrations.event_id":       "You are already registered for this event.",
	"companies.org_number":               "A company with this organization number already exists.",
	"event_invitations.invitation_token": "This invitation link is no longer valid. Please request a new invitation.",
}

// friendlyUniqueMessage returns the curated message for a unique violation,
// falling back to a generic sentence naming the field.
func friendlyUniqueMessage(table, field string) string {
	if msg, ok := uniqueMessages[table+"."+field]; ok {
		return msg
	}
	if field == "" {
		return "This value is already taken. Please choose a different value."
	}
	return fmt.Sprintf("This %s is already taken. Please choose a different value.", domain.HumanFieldName(field))
}

func friendlyNotNullMessage(field string) string {
	return fmt.Sprintf("The field '%s' is required and cannot be empty.", field)
}

func friendlyCheckMessage(field string) string {
	return fmt.Sprintf("Invalid value for field '%s'.", field)
}

// toDomain translates any repository-layer error into a domain error. It is
// total: domain errors pass through untouched, InfraError values map by
// kind, and anything else becomes SystemUnavailable so that callers never
// see a raw driver error.
func toDomain(err error) error {
	if err == nil {
		return nil
	}
	if isDomainError(err) {
		return err
	}

	var ie *InfraError
	if !errors.As(err, &ie) {
		return domain.ErrSystemUnavailable("database", "unexpected storage error: %v", err)
	}

	switch ie.Kind {
	case KindUniqueConstraint:
		ce := domain.ErrConflict("%s", friendlyUniqueMessage(ie.Table, ie.Field))
		ce.Field = ie.Field
		ce.ConflictingValue = ie.Value
		return ce
	case KindNotNullConstraint:
		return domain.ErrValidation(ie.Field, "%s", friendlyNotNullMessage(ie.Field))
	case KindCheckConstraint:
		return domain.ErrValidation(ie.Field, "%s", friendlyCheckMessage(ie.Field))
	case KindForeignKeyConstraint:
		// Reached only when the FK diagnostic could not name the reference.
		return domain.ErrBusinessRule("The operation references a record that does not exist")
	case KindUUIDConversion, KindDateTimeConversion, KindJSONConversion, KindRowConversion:
		return domain.ErrDataIntegrity(ie.Field, "stored value could not be read: %s", ie.Message)
	case KindConnectionFailed, KindMigrationFailed, KindTransactionFailed, KindQueryFailed, KindInternal:
		return domain.ErrSystemUnavailable("database", "%s", ie.Error())
	default:
		return domain.ErrSystemUnavailable("database", "%s", ie.Error())
	}
}

func isDomainError(err error) bool {
	var (
		nf *domain.NotFoundError
		ve *domain.ValidationError
		br *domain.BusinessRuleViolation
		ce *domain.ConflictError
		ue *domain.UnauthorizedError
		de *domain.DataIntegrityError
		se *domain.SystemUnavailableError
		ee *domain.ExternalServiceError
	)
	return errors.As(err, &nf) || errors.As(err, &ve) || errors.As(err, &br) ||
		errors.As(err, &ce) || errors.As(err, &ue) || errors.As(err, &de) ||
		errors.As(err, &se) || errors.As(err, &ee)
}
