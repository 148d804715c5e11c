package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseUserRoleIsCaseSensitive(t *testing.T) {
	role, err := ParseUserRole("admin")
	require.NoError(t, err)
	assert.Equal(t, UserRoleAdmin, role)

	_, err = ParseUserRole("Admin")
	assert.Error(t, err)

	_, err = ParseUserRole("superuser")
	assert.Error(t, err)
}

func TestParseIndustryTypeLowercases(t *testing.T) {
	it, err := ParseIndustryType("Salmon")
	require.NoError(t, err)
	assert.Equal(t, IndustrySalmon, it)

	_, err = ParseIndustryType("tuna")
	assert.Error(t, err)
}

func TestUserValidateForCreation(t *testing.T) {
	valid := User{
		ID:         uuid.New(),
		KeycloakID: "kc-123",
		Email:      "mari@laksefarm.no",
		Name:       "Mari Olsen",
		Role:       UserRoleParticipant,
	}
	require.NoError(t, valid.ValidateForCreation())

	noName := valid
	noName.Name = "  "
	assert.Error(t, noName.ValidateForCreation())

	badEmail := valid
	badEmail.Email = "not-an-email"
	var verr *ValidationError
	require.ErrorAs(t, badEmail.ValidateForCreation(), &verr)
	assert.Equal(t, "email", verr.Field)
}

func TestUserDeactivateActivate(t *testing.T) {
	now := time.Now().UTC()
	u := User{IsActive: true}

	u.Deactivate(now)
	assert.False(t, u.IsActive)
	assert.Equal(t, now, u.UpdatedAt)

	later := now.Add(time.Hour)
	u.Activate(later)
	assert.True(t, u.IsActive)
	assert.Equal(t, later, u.UpdatedAt)
}

func TestCreateUserRequestValidate(t *testing.T) {
	req := CreateUserRequest{
		KeycloakID: "kc-123",
		Email:      "mari@laksefarm.no",
		Name:       "Mari Olsen",
		Role:       UserRoleOrganizer,
	}
	require.NoError(t, req.Validate())

	req.Email = "nope"
	var verr *ValidationError
	require.ErrorAs(t, req.Validate(), &verr)
	assert.Equal(t, "email", verr.Field)

	req.Email = "mari@laksefarm.no"
	req.Role = "superuser"
	require.ErrorAs(t, req.Validate(), &verr)
	assert.Equal(t, "role", verr.Field)
}
