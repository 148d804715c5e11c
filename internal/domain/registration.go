package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// RegistrationStatus is the attendance lifecycle of a registration:
// registered/waitlisted at creation, then cancelled, attended, or no_show.
type RegistrationStatus string

const (
	RegistrationRegistered RegistrationStatus = "registered"
	RegistrationWaitlisted RegistrationStatus = "waitlisted"
	RegistrationCancelled  RegistrationStatus = "cancelled"
	RegistrationAttended   RegistrationStatus = "attended"
	RegistrationNoShow     RegistrationStatus = "no_show"
)

// ParseRegistrationStatus maps a stored literal to a RegistrationStatus.
func ParseRegistrationStatus(s string) (RegistrationStatus, error) {
	switch strings.ToLower(s) {
	case "registered":
		return RegistrationRegistered, nil
	case "waitlisted":
		return RegistrationWaitlisted, nil
	case "cancelled":
		return RegistrationCancelled, nil
	case "attended":
		return RegistrationAttended, nil
	case "no_show":
		return RegistrationNoShow, nil
	default:
		return "", ErrValidation("status", "invalid registration status %q", s)
	}
}

func (s RegistrationStatus) String() string { return string(s) }

// RegistrationSource records how a registration came to exist.
type RegistrationSource string

const (
	SourceInvitation        RegistrationSource = "invitation"
	SourceDirect            RegistrationSource = "direct"
	SourceWaitlistPromotion RegistrationSource = "waitlist_promotion"
)

// ParseRegistrationSource maps a stored literal to a RegistrationSource.
func ParseRegistrationSource(s string) (RegistrationSource, error) {
	switch strings.ToLower(s) {
	case "invitation":
		return SourceInvitation, nil
	case "direct":
		return SourceDirect, nil
	case "waitlist_promotion":
		return SourceWaitlistPromotion, nil
	default:
		return "", ErrValidation("registration_source", "invalid registration source %q", s)
	}
}

func (s RegistrationSource) String() string { return string(s) }

// EventRegistration records one party attending (or waitlisted for) an
// event, either as a registered user or an external contact.
type EventRegistration struct {
	ID           uuid.UUID
	EventID      uuid.UUID
	InvitationID *uuid.UUID

	// Registrant (user or external contact)
	UserID            *uuid.UUID
	ExternalContactID *uuid.UUID

	// Manual registration data
	RegistrantEmail   *string
	RegistrantName    *string
	RegistrantPhone   *string
	RegistrantCompany *string

	Status RegistrationStatus
	Source RegistrationSource

	// Guests
	GuestCount int
	GuestNames []string

	// Special requirements
	DietaryRestrictions *string
	AccessibilityNeeds  *string
	SpecialRequests     *string

	// Organizer-defined field answers, JSON blob
	CustomResponses *string

	RegisteredAt time.Time
	CancelledAt  *time.Time
	CheckedInAt  *time.Time

	WaitlistPosition *int
	WaitlistAddedAt  *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Take places the registration in its initial state: waitlisted when the
// event is full, registered otherwise.
func (r *EventRegistration) Take(now time.Time, waitlist bool) {
	if waitlist {
		r.Status = RegistrationWaitlisted
		r.WaitlistAddedAt = &now
	} else {
		r.Status = RegistrationRegistered
	}
	r.RegisteredAt = now
	r.UpdatedAt = now
}

// Cancel withdraws the registration. Cancelling twice is rejected.
func (r *EventRegistration) Cancel(now time.Time) error {
	if r.Status == RegistrationCancelled {
		return ErrBusinessRule("Registration is already cancelled")
	}
	r.Status = RegistrationCancelled
	r.CancelledAt = &now
	r.UpdatedAt = now
	return nil
}

// PromoteFromWaitlist moves a waitlisted registration to registered.
func (r *EventRegistration) PromoteFromWaitlist(now time.Time) error {
	if r.Status != RegistrationWaitlisted {
		return ErrBusinessRule("Only waitlisted registrations can be promoted")
	}
	r.Status = RegistrationRegistered
	r.WaitlistPosition = nil
	r.WaitlistAddedAt = nil
	r.UpdatedAt = now
	return nil
}

// CheckIn marks the registrant as attended.
func (r *EventRegistration) CheckIn(now time.Time) error {
	if r.Status != RegistrationRegistered {
		return ErrBusinessRule("Only registered participants can be checked in")
	}
	r.Status = RegistrationAttended
	r.CheckedInAt = &now
	r.UpdatedAt = now
	return nil
}

// MarkNoShow records that a registered participant did not attend.
func (r *EventRegistration) MarkNoShow(now time.Time) error {
	if r.Status != RegistrationRegistered {
		return ErrBusinessRule("Only registered participants can be marked as no-show")
	}
	r.Status = RegistrationNoShow
	r.UpdatedAt = now
	return nil
}

// NextWaitlistPosition computes the position a newly waitlisted registration
// takes.
func NextWaitlistPosition(existingWaitlistCount int) int {
	return existingWaitlistCount + 1
}

// CreateRegistrationRequest carries validated input for registering for an
// event.
type CreateRegistrationRequest struct {
	EventID         uuid.UUID `validate:"required"`
	UserID          *uuid.UUID
	InvitationID    *uuid.UUID
	RegistrantEmail *string `validate:"omitempty,email"`
	RegistrantName  *string `validate:"omitempty,max=100"`
	Source          RegistrationSource
	GuestCount      int      `validate:"gte=0"`
	GuestNames      []string `validate:"dive,max=100"`
}

// Validate checks tag rules plus the registrant-target invariant.
func (r *CreateRegistrationRequest) Validate() error {
	if err := validateStruct(r); err != nil {
		return err
	}
	if r.UserID == nil && (r.RegistrantEmail == nil || r.RegistrantName == nil) {
		return ErrValidation("registrant",
			"Must specify either user_id or both registrant_email and registrant_name")
	}
	return nil
}
