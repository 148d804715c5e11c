// Package api maps domain errors onto the HTTP surface: status codes and the
// JSON error envelope every handler writes.
package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"aquaevents/internal/domain"
)

// StatusFromError maps domain errors to HTTP status codes.
func StatusFromError(err error) int {
	var (
		notFound     *domain.NotFoundError
		validation   *domain.ValidationError
		businessRule *domain.BusinessRuleViolation
		conflict     *domain.ConflictError
		unauthorized *domain.UnauthorizedError
		integrity    *domain.DataIntegrityError
		unavailable  *domain.SystemUnavailableError
		external     *domain.ExternalServiceError
	)

	switch {
	case errors.As(err, &notFound):
		return http.StatusNotFound
	case errors.As(err, &validation):
		return http.StatusBadRequest
	case errors.As(err, &businessRule):
		return http.StatusUnprocessableEntity
	case errors.As(err, &conflict):
		return http.StatusConflict
	case errors.As(err, &unauthorized):
		return http.StatusUnauthorized
	case errors.As(err, &integrity):
		return http.StatusInternalServerError
	case errors.As(err, &unavailable):
		return http.StatusServiceUnavailable
	case errors.As(err, &external):
		// Upstream outages read the same as our own from the caller's
		// side: retry later.
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// ErrorBody is the JSON envelope for error responses.
type ErrorBody struct {
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
	Details string `json:"details,omitempty"`
}

// bodyFromError builds the response envelope. Server-side failures keep
// their detail out of the body; clients get a generic message while the full
// error goes to the log.
func bodyFromError(err error) ErrorBody {
	detail := ErrorDetail{
		Code:    domain.CodeInternal,
		Message: "An unexpected error occurred",
	}

	var (
		notFound     *domain.NotFoundError
		validation   *domain.ValidationError
		businessRule *domain.BusinessRuleViolation
		conflict     *domain.ConflictError
		unauthorized *domain.UnauthorizedError
		integrity    *domain.DataIntegrityError
		unavailable  *domain.SystemUnavailableError
		external     *domain.ExternalServiceError
	)

	switch {
	case errors.As(err, &notFound):
		detail.Code = notFound.Code()
		detail.Message = notFound.Error()
	case errors.As(err, &validation):
		detail.Code = validation.Code()
		detail.Message = validation.Message
		detail.Field = validation.Field
	case errors.As(err, &businessRule):
		detail.Code = businessRule.Code()
		detail.Message = businessRule.Message
	case errors.As(err, &conflict):
		detail.Code = conflict.Code()
		detail.Message = conflict.Message
		detail.Field = conflict.Field
	case errors.As(err, &unauthorized):
		detail.Code = unauthorized.Code()
		detail.Message = unauthorized.Error()
	case errors.As(err, &integrity):
		detail.Code = integrity.Code()
		detail.Message = "Stored data could not be read"
		detail.Field = integrity.Field
	case errors.As(err, &unavailable):
		detail.Code = unavailable.Code()
		detail.Message = "The service is temporarily unavailable. Please try again later."
	case errors.As(err, &external):
		detail.Code = external.Code()
		detail.Message = "An upstream service failed"
		detail.Details = external.Service
	}

	return ErrorBody{Error: detail}
}

// WriteError renders err as the JSON error envelope with the mapped status.
// Server-side errors (5xx) are logged with the underlying detail.
func WriteError(w http.ResponseWriter, logger *slog.Logger, err error) {
	status := StatusFromError(err)
	if status >= 500 && logger != nil {
		logger.Error("request failed", "status", status, "error", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(bodyFromError(err))
}
