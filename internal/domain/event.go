package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// LocationType describes where an event takes place.
type LocationType string

const (
	LocationPhysical LocationType = "physical"
	LocationVirtual  LocationType = "virtual"
	LocationHybrid   LocationType = "hybrid"
)

// ParseLocationType maps a stored literal (case-insensitive) to a
// LocationType.
func ParseLocationType(s string) (LocationType, error) {
	switch strings.ToLower(s) {
	case "physical":
		return LocationPhysical, nil
	case "virtual":
		return LocationVirtual, nil
	case "hybrid":
		return LocationHybrid, nil
	default:
		return "", ErrValidation("location_type", "invalid location type %q: must be one of physical, virtual, hybrid", s)
	}
}

func (t LocationType) String() string { return string(t) }

// EventStatus is the publication lifecycle of an event.
type EventStatus string

const (
	EventStatusDraft     EventStatus = "draft"
	EventStatusPublished EventStatus = "published"
	EventStatusCancelled EventStatus = "cancelled"
	EventStatusCompleted EventStatus = "completed"
)

// ParseEventStatus maps a stored literal (case-insensitive) to an
// EventStatus.
func ParseEventStatus(s string) (EventStatus, error) {
	switch strings.ToLower(s) {
	case "draft":
		return EventStatusDraft, nil
	case "published":
		return EventStatusPublished, nil
	case "cancelled":
		return EventStatusCancelled, nil
	case "completed":
		return EventStatusCompleted, nil
	default:
		return "", ErrValidation("status", "invalid event status %q: must be one of draft, published, cancelled, completed", s)
	}
}

func (s EventStatus) String() string { return string(s) }

// Event is a scheduled gathering with registration settings.
type Event struct {
	ID          uuid.UUID
	Title       string
	Description string
	CategoryID  string

	// Timing
	StartDate time.Time
	EndDate   time.Time
	Timezone  string

	// Location
	LocationType      LocationType
	LocationName      *string
	Address           *string
	VirtualLink       *string
	VirtualAccessCode *string

	// Organizer and permissions
	OrganizerID  uuid.UUID
	CoOrganizers []uuid.UUID

	// Event settings
	IsPrivate          bool
	RequiresApproval   bool
	MaxAttendees       *int
	AllowGuests        bool
	MaxGuestsPerPerson *int

	// Registration settings
	RegistrationOpens    *time.Time
	RegistrationCloses   *time.Time
	RegistrationRequired bool

	// Additional settings
	AllowWaitlist            bool
	SendReminders            bool
	CollectDietaryInfo       bool
	CollectAccessibilityInfo bool

	// Branding
	ImageURL     *string
	CustomFields *string // JSON blob of organizer-defined fields

	Status EventStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// ValidateForCreation checks the invariants a new event must satisfy.
func (e *Event) ValidateForCreation() error {
	if strings.TrimSpace(e.Title) == "" {
		return ErrValidation("title", "Title cannot be empty")
	}
	if len(e.Title) > 200 {
		return ErrValidation("title", "Title cannot exceed 200 characters")
	}
	if strings.TrimSpace(e.Description) == "" {
		return ErrValidation("description", "Description cannot be empty")
	}
	if strings.TrimSpace(e.CategoryID) == "" {
		return ErrValidation("category_id", "Category is required")
	}
	if !e.StartDate.Before(e.EndDate) {
		return ErrValidation("dates", "End date must be after start date")
	}
	return nil
}

// CanBeRegisteredFor reports whether a registration may be taken at the
// given time.
func (e *Event) CanBeRegisteredFor(now time.Time) error {
	if now.After(e.StartDate) {
		return ErrBusinessRule("Cannot register for an event that has already started")
	}
	if e.RegistrationOpens != nil && now.Before(*e.RegistrationOpens) {
		return ErrBusinessRule("Registration has not opened yet")
	}
	if e.RegistrationCloses != nil && now.After(*e.RegistrationCloses) {
		return ErrBusinessRule("Registration has closed")
	}
	return nil
}

// AvailableSpots returns remaining capacity, or nil when the event is
// uncapped.
func (e *Event) AvailableSpots(currentRegistrations int) *int {
	if e.MaxAttendees == nil {
		return nil
	}
	spots := *e.MaxAttendees - currentRegistrations
	if spots < 0 {
		spots = 0
	}
	return &spots
}

// ShouldWaitlist reports whether a new registration must go to the waitlist.
func (e *Event) ShouldWaitlist(currentRegistrations int) bool {
	if !e.AllowWaitlist || e.MaxAttendees == nil {
		return false
	}
	return currentRegistrations >= *e.MaxAttendees
}

// EventFilter narrows event list queries. Nil fields are unconstrained.
type EventFilter struct {
	TitleContains *string
	CategoryID    *string
	OrganizerID   *uuid.UUID
	IsPrivate     *bool
	Status        *EventStatus
	LocationType  *LocationType
	StartDateFrom *time.Time
	StartDateTo   *time.Time
}

// CreateEventRequest carries validated input for creating an event.
type CreateEventRequest struct {
	Title        string    `validate:"required,max=200"`
	Description  string    `validate:"required"`
	CategoryID   string    `validate:"required"`
	StartDate    time.Time `validate:"required"`
	EndDate      time.Time `validate:"required"`
	Timezone     string    `validate:"omitempty,max=64"`
	LocationType LocationType
	LocationName *string
	VirtualLink  *string
	OrganizerID  uuid.UUID `validate:"required"`
	IsPrivate    bool
	MaxAttendees *int `validate:"omitempty,gt=0"`
}

// Validate checks tag rules plus the cross-field date ordering invariant.
func (r *CreateEventRequest) Validate() error {
	if err := validateStruct(r); err != nil {
		return err
	}
	if !r.StartDate.Before(r.EndDate) {
		return ErrValidation("dates", "End date must be after start date")
	}
	return nil
}
