package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aquaevents/internal/domain"
)

func newInvitation(eventID, inviterID uuid.UUID) *domain.EventInvitation {
	now := time.Now().UTC()
	email := "guest@havbruk.no"
	name := "Guest Olsen"
	token := domain.NewInvitationToken()
	return &domain.EventInvitation{
		ID:               uuid.New(),
		EventID:          eventID,
		InvitedEmail:     &email,
		InvitedName:      &name,
		InviterID:        inviterID,
		InvitationMethod: domain.InvitationByEmail,
		Status:           domain.InvitationPending,
		InvitationToken:  &token,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}

func TestInvitationRepoCRUD(t *testing.T) {
	repos := newRepos(t)
	ctx := context.Background()

	event, organizer := seedEventGraph(t, repos)

	inv := newInvitation(event.ID, organizer.ID)
	require.NoError(t, repos.Invitations.Create(ctx, inv))

	got, err := repos.Invitations.FindByID(ctx, inv.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, domain.InvitationPending, got.Status)
	assert.Equal(t, domain.InvitationByEmail, got.InvitationMethod)

	byToken, err := repos.Invitations.FindByToken(ctx, *inv.InvitationToken)
	require.NoError(t, err)
	require.NotNil(t, byToken)
	assert.Equal(t, inv.ID, byToken.ID)

	now := time.Now().UTC()
	require.NoError(t, got.Accept(now))
	require.NoError(t, repos.Invitations.Update(ctx, got))

	reloaded, err := repos.Invitations.FindByID(ctx, inv.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.InvitationAccepted, reloaded.Status)
	require.NotNil(t, reloaded.RespondedAt)

	require.NoError(t, repos.Invitations.Delete(ctx, inv.ID))
	missing, err := repos.Invitations.FindByID(ctx, inv.ID)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestInvitationRepoTokenMiss(t *testing.T) {
	repos := newRepos(t)

	got, err := repos.Invitations.FindByToken(context.Background(), "no-such-token")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestInvitationRepoDanglingEvent(t *testing.T) {
	repos := newRepos(t)
	ctx := context.Background()

	inviter := newUser("inviter@havbruk.no", "kc-inviter")
	require.NoError(t, repos.Users.Create(ctx, inviter))

	inv := newInvitation(uuid.New(), inviter.ID)
	var verr *domain.ValidationError
	require.ErrorAs(t, repos.Invitations.Create(ctx, inv), &verr)
	assert.Equal(t, "event_id", verr.Field)
	assert.Contains(t, verr.Message, "does not exist")
}

func TestInvitationRepoFindByEventAndPending(t *testing.T) {
	repos := newRepos(t)
	ctx := context.Background()

	event, organizer := seedEventGraph(t, repos)

	invited := newUser("invited@havbruk.no", "kc-invited")
	require.NoError(t, repos.Users.Create(ctx, invited))

	userInv := newInvitation(event.ID, organizer.ID)
	userInv.InvitedEmail = nil
	userInv.InvitedName = nil
	userInv.InvitedUserID = &invited.ID
	require.NoError(t, repos.Invitations.Create(ctx, userInv))

	answered := newInvitation(event.ID, organizer.ID)
	require.NoError(t, answered.Decline(time.Now().UTC()))
	require.NoError(t, repos.Invitations.Create(ctx, answered))

	page, err := repos.Invitations.FindByEvent(ctx, event.ID, domain.DefaultPagination())
	require.NoError(t, err)
	assert.Len(t, page.Items, 2)
	assert.Equal(t, int64(2), page.TotalCount)

	pending, err := repos.Invitations.FindPendingForUser(ctx, invited.ID)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, userInv.ID, pending[0].ID)
}

func TestInvitationRepoInvitedToEvent(t *testing.T) {
	repos := newRepos(t)
	ctx := context.Background()

	event, organizer := seedEventGraph(t, repos)

	invited := newUser("invited@havbruk.no", "kc-invited")
	require.NoError(t, repos.Users.Create(ctx, invited))

	userInv := newInvitation(event.ID, organizer.ID)
	userInv.InvitedEmail = nil
	userInv.InvitedName = nil
	userInv.InvitedUserID = &invited.ID
	require.NoError(t, repos.Invitations.Create(ctx, userInv))

	emailInv := newInvitation(event.ID, organizer.ID)
	// A declined invitation still counts as having been invited.
	require.NoError(t, emailInv.Decline(time.Now().UTC()))
	require.NoError(t, repos.Invitations.Create(ctx, emailInv))

	found, err := repos.Invitations.UserInvitedToEvent(ctx, invited.ID, event.ID)
	require.NoError(t, err)
	assert.True(t, found)

	found, err = repos.Invitations.UserInvitedToEvent(ctx, uuid.New(), event.ID)
	require.NoError(t, err)
	assert.False(t, found)

	found, err = repos.Invitations.EmailInvitedToEvent(ctx, *emailInv.InvitedEmail, event.ID)
	require.NoError(t, err)
	assert.True(t, found)

	found, err = repos.Invitations.EmailInvitedToEvent(ctx, "stranger@havbruk.no", event.ID)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestInvitationRepoDeleteMissing(t *testing.T) {
	repos := newRepos(t)

	var nf *domain.NotFoundError
	require.ErrorAs(t, repos.Invitations.Delete(context.Background(), uuid.New()), &nf)
}
