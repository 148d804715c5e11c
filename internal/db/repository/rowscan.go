package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"aquaevents/internal/domain"
)

// row is one scanned result row indexed by column name. The typed getters
// convert driver values into domain types and report failures as InfraError
// values naming the offending column, so a corrupt cell never panics and
// never surfaces as a raw conversion error.
type row map[string]any

// scanRow reads the current row of rs into a name-indexed map.
func scanRow(rs *sql.Rows) (row, error) {
	cols, err := rs.Columns()
	if err != nil {
		return nil, err
	}
	vals := make([]any, len(cols))
	ptrs := make([]any, len(cols))
	for i := range vals {
		ptrs[i] = &vals[i]
	}
	if err := rs.Scan(ptrs...); err != nil {
		return nil, err
	}
	r := make(row, len(cols))
	for i, c := range cols {
		r[c] = vals[i]
	}
	return r, nil
}

func (r row) missing(field string) *InfraError {
	return &InfraError{Kind: KindRowConversion, Field: field, Message: "column missing from result set"}
}

// rawString normalizes TEXT-affinity driver values, which arrive as string
// or []byte depending on the query path.
func (r row) rawString(field string) (string, bool, *InfraError) {
	v, ok := r[field]
	if !ok {
		return "", false, r.missing(field)
	}
	if v == nil {
		return "", false, nil
	}
	switch s := v.(type) {
	case string:
		return s, true, nil
	case []byte:
		return string(s), true, nil
	default:
		return "", false, &InfraError{
			Kind: KindRowConversion, Field: field,
			Message: fmt.Sprintf("expected text, got %T", v),
		}
	}
}

// String reads a non-null TEXT column.
func (r row) String(field string) (string, *InfraError) {
	s, ok, err := r.rawString(field)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", &InfraError{Kind: KindRowConversion, Field: field, Message: "unexpected NULL"}
	}
	return s, nil
}

// OptionalString reads a nullable TEXT column; NULL yields nil.
func (r row) OptionalString(field string) (*string, *InfraError) {
	s, ok, err := r.rawString(field)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	return &s, nil
}

// Bool reads an INTEGER column holding 0 or 1.
func (r row) Bool(field string) (bool, *InfraError) {
	v, ok := r[field]
	if !ok {
		return false, r.missing(field)
	}
	switch n := v.(type) {
	case bool:
		return n, nil
	case int64:
		return n != 0, nil
	default:
		return false, &InfraError{
			Kind: KindRowConversion, Field: field,
			Message: fmt.Sprintf("expected bool, got %T", v),
		}
	}
}

// Int reads a non-null INTEGER column.
func (r row) Int(field string) (int, *InfraError) {
	v, ok := r[field]
	if !ok {
		return 0, r.missing(field)
	}
	n, ok := v.(int64)
	if !ok {
		return 0, &InfraError{
			Kind: KindRowConversion, Field: field,
			Message: fmt.Sprintf("expected integer, got %T", v),
		}
	}
	return int(n), nil
}

// OptionalInt reads a nullable INTEGER column; NULL yields nil.
func (r row) OptionalInt(field string) (*int, *InfraError) {
	v, ok := r[field]
	if !ok {
		return nil, r.missing(field)
	}
	if v == nil {
		return nil, nil
	}
	n, ok := v.(int64)
	if !ok {
		return nil, &InfraError{
			Kind: KindRowConversion, Field: field,
			Message: fmt.Sprintf("expected integer, got %T", v),
		}
	}
	i := int(n)
	return &i, nil
}

// Time reads a non-null timestamp column stored as RFC 3339 text.
func (r row) Time(field string) (time.Time, *InfraError) {
	v, ok := r[field]
	if !ok {
		return time.Time{}, r.missing(field)
	}
	// The driver parses recognized formats itself when possible.
	if t, ok := v.(time.Time); ok {
		return t, nil
	}
	s, present, err := r.rawString(field)
	if err != nil {
		return time.Time{}, err
	}
	if !present {
		return time.Time{}, &InfraError{Kind: KindDateTimeConversion, Field: field, Message: "unexpected NULL"}
	}
	t, perr := time.Parse(time.RFC3339, s)
	if perr != nil {
		return time.Time{}, &InfraError{
			Kind: KindDateTimeConversion, Field: field, Value: s,
			Message: fmt.Sprintf("invalid timestamp %q", s),
		}
	}
	return t, nil
}

// OptionalTime reads a nullable timestamp column; NULL yields nil.
func (r row) OptionalTime(field string) (*time.Time, *InfraError) {
	v, ok := r[field]
	if !ok {
		return nil, r.missing(field)
	}
	if v == nil {
		return nil, nil
	}
	t, err := r.Time(field)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// UUID reads a non-null TEXT column holding a UUID.
func (r row) UUID(field string) (uuid.UUID, *InfraError) {
	s, err := r.String(field)
	if err != nil {
		return uuid.Nil, err
	}
	id, perr := uuid.Parse(s)
	if perr != nil {
		return uuid.Nil, &InfraError{
			Kind: KindUUIDConversion, Field: field, Value: s,
			Message: fmt.Sprintf("invalid uuid %q", s),
		}
	}
	return id, nil
}

// OptionalUUID reads a nullable TEXT column holding a UUID; NULL yields nil.
func (r row) OptionalUUID(field string) (*uuid.UUID, *InfraError) {
	s, err := r.OptionalString(field)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, nil
	}
	id, perr := uuid.Parse(*s)
	if perr != nil {
		return nil, &InfraError{
			Kind: KindUUIDConversion, Field: field, Value: *s,
			Message: fmt.Sprintf("invalid uuid %q", *s),
		}
	}
	return &id, nil
}

// JSON decodes a TEXT column into dst. NULL or blank text leaves dst at its
// zero value so legacy rows without the column populated still load.
func (r row) JSON(field string, dst any) *InfraError {
	s, ok, err := r.rawString(field)
	if err != nil {
		return err
	}
	if !ok || strings.TrimSpace(s) == "" {
		return nil
	}
	if jerr := json.Unmarshal([]byte(s), dst); jerr != nil {
		return &InfraError{
			Kind: KindJSONConversion, Field: field, Value: s,
			Message: fmt.Sprintf("invalid json: %v", jerr),
		}
	}
	return nil
}

// Enum getters. Each delegates to the domain parser so stored literals
// outside the closed set surface as row-conversion failures, not as silently
// defaulted values.

func (r row) UserRole(field string) (domain.UserRole, *InfraError) {
	return enumColumn(r, field, domain.ParseUserRole)
}

func (r row) IndustryType(field string) (domain.IndustryType, *InfraError) {
	return enumColumn(r, field, domain.ParseIndustryType)
}

func (r row) EventStatus(field string) (domain.EventStatus, *InfraError) {
	return enumColumn(r, field, domain.ParseEventStatus)
}

func (r row) LocationType(field string) (domain.LocationType, *InfraError) {
	return enumColumn(r, field, domain.ParseLocationType)
}

func (r row) InvitationStatus(field string) (domain.InvitationStatus, *InfraError) {
	return enumColumn(r, field, domain.ParseInvitationStatus)
}

func (r row) InvitationMethod(field string) (domain.InvitationMethod, *InfraError) {
	return enumColumn(r, field, domain.ParseInvitationMethod)
}

func (r row) RegistrationStatus(field string) (domain.RegistrationStatus, *InfraError) {
	return enumColumn(r, field, domain.ParseRegistrationStatus)
}

func (r row) RegistrationSource(field string) (domain.RegistrationSource, *InfraError) {
	return enumColumn(r, field, domain.ParseRegistrationSource)
}

func enumColumn[T ~string](r row, field string, parse func(string) (T, error)) (T, *InfraError) {
	var zero T
	s, err := r.String(field)
	if err != nil {
		return zero, err
	}
	v, perr := parse(s)
	if perr != nil {
		return zero, &InfraError{
			Kind: KindRowConversion, Field: field, Value: s,
			Message: fmt.Sprintf("invalid enum value %q", s),
		}
	}
	return v, nil
}
