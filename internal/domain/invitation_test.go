package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pendingInvitation() EventInvitation {
	email := "guest@havbruk.no"
	name := "Guest Olsen"
	return EventInvitation{
		ID:               uuid.New(),
		EventID:          uuid.New(),
		InvitedEmail:     &email,
		InvitedName:      &name,
		InviterID:        uuid.New(),
		InvitationMethod: InvitationByEmail,
		Status:           InvitationPending,
	}
}

func TestInvitationValidateForCreation(t *testing.T) {
	inv := pendingInvitation()
	require.NoError(t, inv.ValidateForCreation())

	// Neither a user nor a complete external contact.
	inv.InvitedEmail = nil
	var verr *ValidationError
	require.ErrorAs(t, inv.ValidateForCreation(), &verr)
	assert.Equal(t, "invitation_target", verr.Field)

	// A user id alone is enough.
	userID := uuid.New()
	inv.InvitedUserID = &userID
	require.NoError(t, inv.ValidateForCreation())

	bad := pendingInvitation()
	badEmail := "no-at-sign"
	bad.InvitedEmail = &badEmail
	assert.Error(t, bad.ValidateForCreation())
}

func TestInvitationAcceptDecline(t *testing.T) {
	now := time.Now().UTC()

	inv := pendingInvitation()
	require.NoError(t, inv.Accept(now))
	assert.Equal(t, InvitationAccepted, inv.Status)
	require.NotNil(t, inv.RespondedAt)

	// Responding twice is a business rule violation.
	var bre *BusinessRuleViolation
	require.ErrorAs(t, inv.Decline(now), &bre)
	assert.Contains(t, bre.Message, "pending")

	inv = pendingInvitation()
	require.NoError(t, inv.Decline(now))
	assert.Equal(t, InvitationDeclined, inv.Status)
}

func TestInvitationExpiry(t *testing.T) {
	now := time.Now().UTC()
	expired := now.Add(-time.Hour)

	inv := pendingInvitation()
	inv.ExpiresAt = &expired

	var bre *BusinessRuleViolation
	require.ErrorAs(t, inv.Accept(now), &bre)
	assert.Contains(t, bre.Message, "expired")
	assert.Equal(t, InvitationPending, inv.Status)
}

func TestInvitationDeliveryTransitions(t *testing.T) {
	now := time.Now().UTC()

	inv := pendingInvitation()
	inv.MarkSent(now)
	assert.Equal(t, InvitationSent, inv.Status)
	require.NotNil(t, inv.SentAt)

	inv.MarkOpened(now)
	assert.Equal(t, InvitationOpened, inv.Status)

	// Opening a pending invitation is a no-op.
	fresh := pendingInvitation()
	fresh.MarkOpened(now)
	assert.Equal(t, InvitationPending, fresh.Status)
}

func TestParseInvitationEnums(t *testing.T) {
	st, err := ParseInvitationStatus("ACCEPTED")
	require.NoError(t, err)
	assert.Equal(t, InvitationAccepted, st)

	_, err = ParseInvitationStatus("maybe")
	assert.Error(t, err)

	m, err := ParseInvitationMethod("bulk_import")
	require.NoError(t, err)
	assert.Equal(t, InvitationByBulkImport, m)

	_, err = ParseInvitationMethod("carrier_pigeon")
	assert.Error(t, err)
}

func TestNewInvitationToken(t *testing.T) {
	a := NewInvitationToken()
	b := NewInvitationToken()
	assert.NotEmpty(t, a)
	assert.NotEqual(t, a, b)
}
