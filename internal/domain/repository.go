package domain

import (
	"context"

	"github.com/google/uuid"
)

// Repository contracts. Implementations live in internal/db/repository and
// translate every storage failure into a domain error before returning.
// Point lookups report absence as (nil, nil); callers that require presence
// wrap the miss in a NotFoundError themselves.

type UserRepository interface {
	Create(ctx context.Context, user *User) error
	FindByID(ctx context.Context, id uuid.UUID) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByKeycloakID(ctx context.Context, keycloakID string) (*User, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	Update(ctx context.Context, user *User) error
	Deactivate(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params PaginationParams) (*PaginatedResult[User], error)
}

type CompanyRepository interface {
	Create(ctx context.Context, company *Company) error
	FindByID(ctx context.Context, id uuid.UUID) (*Company, error)
	FindByOrgNumber(ctx context.Context, orgNumber string) (*Company, error)
	Update(ctx context.Context, company *Company) error
	List(ctx context.Context, params PaginationParams) (*PaginatedResult[Company], error)
}

type EventCategoryRepository interface {
	Create(ctx context.Context, category *EventCategory) error
	FindByID(ctx context.Context, id string) (*EventCategory, error)
	// FindActive returns categories still offered for new events. FindAll
	// includes deactivated ones so existing events keep resolving.
	FindActive(ctx context.Context) ([]EventCategory, error)
	FindAll(ctx context.Context) ([]EventCategory, error)
	Update(ctx context.Context, category *EventCategory) error
	Delete(ctx context.Context, id string) error
}

type EventRepository interface {
	Create(ctx context.Context, event *Event) error
	FindByID(ctx context.Context, id uuid.UUID) (*Event, error)
	FindByOrganizer(ctx context.Context, organizerID uuid.UUID, params PaginationParams) (*PaginatedResult[Event], error)
	FindUpcoming(ctx context.Context, params PaginationParams) (*PaginatedResult[Event], error)
	Search(ctx context.Context, filter EventFilter, params PaginationParams) (*PaginatedResult[Event], error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
	Update(ctx context.Context, event *Event) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type EventInvitationRepository interface {
	Create(ctx context.Context, invitation *EventInvitation) error
	FindByID(ctx context.Context, id uuid.UUID) (*EventInvitation, error)
	FindByToken(ctx context.Context, token string) (*EventInvitation, error)
	FindByEvent(ctx context.Context, eventID uuid.UUID, params PaginationParams) (*PaginatedResult[EventInvitation], error)
	FindPendingForUser(ctx context.Context, userID uuid.UUID) ([]EventInvitation, error)
	UserInvitedToEvent(ctx context.Context, userID, eventID uuid.UUID) (bool, error)
	EmailInvitedToEvent(ctx context.Context, email string, eventID uuid.UUID) (bool, error)
	Update(ctx context.Context, invitation *EventInvitation) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type EventRegistrationRepository interface {
	Create(ctx context.Context, registration *EventRegistration) error
	FindByID(ctx context.Context, id uuid.UUID) (*EventRegistration, error)
	FindByEventAndUser(ctx context.Context, eventID, userID uuid.UUID) (*EventRegistration, error)
	FindByEvent(ctx context.Context, eventID uuid.UUID, params PaginationParams) (*PaginatedResult[EventRegistration], error)
	FindByUser(ctx context.Context, userID uuid.UUID, params PaginationParams) (*PaginatedResult[EventRegistration], error)
	CountActiveByEvent(ctx context.Context, eventID uuid.UUID) (int, error)
	CountWaitlistedByEvent(ctx context.Context, eventID uuid.UUID) (int, error)
	FirstWaitlisted(ctx context.Context, eventID uuid.UUID) (*EventRegistration, error)
	Update(ctx context.Context, registration *EventRegistration) error
}
