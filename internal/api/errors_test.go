package api

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aquaevents/internal/domain"
)

func TestStatusFromError(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{domain.ErrNotFound("Event", uuid.New()), http.StatusNotFound},
		{domain.ErrValidation("title", "Title cannot be empty"), http.StatusBadRequest},
		{domain.ErrBusinessRule("Registration has closed"), http.StatusUnprocessableEntity},
		{domain.ErrConflict("You are already registered for this event."), http.StatusConflict},
		{domain.ErrUnauthorized("missing credentials"), http.StatusUnauthorized},
		{domain.ErrDataIntegrity("role", "bad value"), http.StatusInternalServerError},
		{domain.ErrSystemUnavailable("database", "locked"), http.StatusServiceUnavailable},
		{domain.ErrExternalService("keycloak", "timeout"), http.StatusServiceUnavailable},
		{errors.New("anything else"), http.StatusInternalServerError},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, StatusFromError(c.err), "%v", c.err)
	}
}

func TestExternalServiceFailureIsServiceUnavailable(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteError(rec, slog.New(slog.NewTextHandler(io.Discard, nil)),
		domain.ErrExternalService("keycloak", "timeout"))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	var body ErrorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, domain.CodeExternalService, body.Error.Code)
	assert.Equal(t, "keycloak", body.Error.Details)
}

func TestWriteErrorValidation(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteError(rec, nil, domain.ErrValidation("email", "Invalid email format"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body ErrorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, domain.CodeValidation, body.Error.Code)
	assert.Equal(t, "Invalid email format", body.Error.Message)
	assert.Equal(t, "email", body.Error.Field)
}

func TestWriteErrorConflictKeepsMessage(t *testing.T) {
	rec := httptest.NewRecorder()
	ce := domain.ErrConflict("You are already registered for this event.")
	ce.Field = "user_id"
	WriteError(rec, nil, ce)

	var body ErrorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "You are already registered for this event.", body.Error.Message)
	assert.Equal(t, "user_id", body.Error.Field)
}

func TestWriteErrorHidesServerDetail(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	rec := httptest.NewRecorder()
	WriteError(rec, logger, domain.ErrSystemUnavailable("database", "dsn=secret connection refused"))

	var body ErrorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, domain.CodeSystemUnavailable, body.Error.Code)
	assert.NotContains(t, body.Error.Message, "secret")

	rec = httptest.NewRecorder()
	WriteError(rec, logger, errors.New("driver panic detail"))
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, domain.CodeInternal, body.Error.Code)
	assert.Equal(t, "An unexpected error occurred", body.Error.Message)
}
