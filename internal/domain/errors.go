// Package domain defines the entities, repository contracts, and error
// taxonomy for the event platform.
package domain

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Stable machine error codes rendered at the API boundary.
const (
	CodeNotFound          = "NOT_FOUND"
	CodeValidation        = "VALIDATION_ERROR"
	CodeBusinessRule      = "BUSINESS_RULE_VIOLATION"
	CodeConflict          = "CONFLICT"
	CodeUnauthorized      = "UNAUTHORIZED"
	CodeDataIntegrity     = "DATA_INTEGRITY_ERROR"
	CodeSystemUnavailable = "SYSTEM_UNAVAILABLE"
	CodeExternalService   = "EXTERNAL_SERVICE_ERROR"
	CodeInternal          = "INTERNAL_ERROR"
)

// DomainError is implemented by every error type in the taxonomy below.
type DomainError interface {
	error
	Code() string
}

// NotFoundError indicates a requested entity does not exist.
type NotFoundError struct {
	Entity     string
	Identifier string
	Value      string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with %s = '%s' not found", e.Entity, e.Identifier, e.Value)
}

func (e *NotFoundError) Code() string { return CodeNotFound }

// ValidationError indicates invalid input for a single field.
type ValidationError struct {
	Field      string
	Message    string
	Constraint string // optional: the violated database constraint
	Value      string // optional: the offending value
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error in %s: %s", e.Field, e.Message)
}

func (e *ValidationError) Code() string { return CodeValidation }

// BusinessRuleViolation indicates an operation that is well-formed but not
// allowed by the domain rules.
type BusinessRuleViolation struct {
	Message string
}

func (e *BusinessRuleViolation) Error() string {
	return fmt.Sprintf("business rule violation: %s", e.Message)
}

func (e *BusinessRuleViolation) Code() string { return CodeBusinessRule }

// ConflictError indicates a uniqueness or state conflict.
type ConflictError struct {
	Message          string
	Field            string // optional
	ConflictingValue string // optional
}

func (e *ConflictError) Error() string { return fmt.Sprintf("conflict: %s", e.Message) }

func (e *ConflictError) Code() string { return CodeConflict }

// UnauthorizedError indicates the caller may not perform the operation.
type UnauthorizedError struct {
	Message string
}

func (e *UnauthorizedError) Error() string {
	return fmt.Sprintf("unauthorized operation: %s", e.Message)
}

func (e *UnauthorizedError) Code() string { return CodeUnauthorized }

// DataIntegrityError indicates stored data that cannot be decoded into a
// valid entity. It signals a data problem, not a user input problem.
type DataIntegrityError struct {
	Message  string
	Field    string // optional
	Expected string // optional
	Actual   string // optional
}

func (e *DataIntegrityError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("data integrity error in %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("data integrity error: %s", e.Message)
}

func (e *DataIntegrityError) Code() string { return CodeDataIntegrity }

// SystemUnavailableError indicates an operational failure (connection,
// migration, transaction). Callers decide whether to retry.
type SystemUnavailableError struct {
	Message   string
	Component string // optional
}

func (e *SystemUnavailableError) Error() string {
	if e.Component != "" {
		return fmt.Sprintf("system unavailable (%s): %s", e.Component, e.Message)
	}
	return fmt.Sprintf("system unavailable: %s", e.Message)
}

func (e *SystemUnavailableError) Code() string { return CodeSystemUnavailable }

// ExternalServiceError indicates a failure in an outbound dependency.
type ExternalServiceError struct {
	Service string
	Message string
}

func (e *ExternalServiceError) Error() string {
	return fmt.Sprintf("external service %s: %s", e.Service, e.Message)
}

func (e *ExternalServiceError) Code() string { return CodeExternalService }

// ErrNotFound creates a NotFoundError for an entity looked up by id.
func ErrNotFound(entity string, id uuid.UUID) *NotFoundError {
	return &NotFoundError{Entity: entity, Identifier: "id", Value: id.String()}
}

// ErrNotFoundByField creates a NotFoundError for an arbitrary lookup field.
func ErrNotFoundByField(entity, field, value string) *NotFoundError {
	return &NotFoundError{Entity: entity, Identifier: field, Value: value}
}

// ErrValidation creates a ValidationError with a formatted message.
func ErrValidation(field, format string, args ...interface{}) *ValidationError {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

// ErrBusinessRule creates a BusinessRuleViolation with a formatted message.
func ErrBusinessRule(format string, args ...interface{}) *BusinessRuleViolation {
	return &BusinessRuleViolation{Message: fmt.Sprintf(format, args...)}
}

// ErrConflict creates a ConflictError with a formatted message.
func ErrConflict(format string, args ...interface{}) *ConflictError {
	return &ConflictError{Message: fmt.Sprintf(format, args...)}
}

// ErrUnauthorized creates an UnauthorizedError with a formatted message.
func ErrUnauthorized(format string, args ...interface{}) *UnauthorizedError {
	return &UnauthorizedError{Message: fmt.Sprintf(format, args...)}
}

// ErrDataIntegrity creates a DataIntegrityError for a specific field.
func ErrDataIntegrity(field, format string, args ...interface{}) *DataIntegrityError {
	return &DataIntegrityError{Field: field, Message: fmt.Sprintf(format, args...)}
}

// ErrSystemUnavailable creates a SystemUnavailableError for a component.
func ErrSystemUnavailable(component, format string, args ...interface{}) *SystemUnavailableError {
	return &SystemUnavailableError{Component: component, Message: fmt.Sprintf(format, args...)}
}

// ErrExternalService creates an ExternalServiceError.
func ErrExternalService(service, format string, args ...interface{}) *ExternalServiceError {
	return &ExternalServiceError{Service: service, Message: fmt.Sprintf(format, args...)}
}

// HumanFieldName renders a column or field name for user-facing messages,
// replacing underscores with spaces.
func HumanFieldName(field string) string {
	return strings.ReplaceAll(field, "_", " ")
}
