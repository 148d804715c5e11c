package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"

	"aquaevents/internal/db"
	"aquaevents/internal/domain"
)

func newRepos(t *testing.T) *Repositories {
	t.Helper()
	writeDB, readDB := db.OpenTestDB(t)
	return NewFactory(writeDB, readDB).All()
}

func newUser(email, keycloakID string) *domain.User {
	now := time.Now().UTC()
	return &domain.User{
		ID:         uuid.New(),
		KeycloakID: keycloakID,
		Email:      email,
		Name:       "Test User",
		Role:       domain.UserRoleParticipant,
		IsActive:   true,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

func newCompany(orgNumber string) *domain.Company {
	now := time.Now().UTC()
	c := &domain.Company{
		ID:           uuid.New(),
		Name:         "Havbruk AS",
		IndustryType: domain.IndustrySalmon,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if orgNumber != "" {
		c.OrgNumber = &orgNumber
	}
	return c
}

func newCategory(id string) *domain.EventCategory {
	return &domain.EventCategory{
		ID:        id,
		Name:      "Category " + id,
		IsActive:  true,
		CreatedAt: time.Now().UTC(),
	}
}

func newEvent(categoryID string, organizerID uuid.UUID) *domain.Event {
	now := time.Now().UTC()
	return &domain.Event{
		ID:           uuid.New(),
		Title:        "Nordic Aquaculture Summit",
		Description:  "Annual industry gathering",
		CategoryID:   categoryID,
		StartDate:    now.Add(24 * time.Hour),
		EndDate:      now.Add(26 * time.Hour),
		Timezone:     "UTC",
		LocationType: domain.LocationPhysical,
		OrganizerID:  organizerID,
		Status:       domain.EventStatusPublished,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func newRegistration(eventID uuid.UUID, userID *uuid.UUID) *domain.EventRegistration {
	now := time.Now().UTC()
	return &domain.EventRegistration{
		ID:           uuid.New(),
		EventID:      eventID,
		UserID:       userID,
		Status:       domain.RegistrationRegistered,
		Source:       domain.SourceDirect,
		GuestNames:   []string{},
		RegisteredAt: now,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// seedEventGraph creates a category, organizer, and event, returning the ids
// the dependent tests need.
func seedEventGraph(t *testing.T, repos *Repositories) (*domain.Event, *domain.User) {
	t.Helper()
	ctx := context.Background()

	organizer := newUser("organizer@havbruk.no", "kc-organizer")
	organizer.Role = domain.UserRoleOrganizer
	require.NoError(t, repos.Users.Create(ctx, organizer))

	require.NoError(t, repos.Categories.Create(ctx, newCategory("conference")))

	event := newEvent("conference", organizer.ID)
	require.NoError(t, repos.Events.Create(ctx, event))

	return event, organizer
}
