package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// InvitationStatus tracks the delivery and response lifecycle of an
// invitation: pending → sent → delivered → opened → accepted/declined, with
// cancellation possible until a response is recorded.
type InvitationStatus string

const (
	InvitationPending   InvitationStatus = "pending"
	InvitationSent      InvitationStatus = "sent"
	InvitationDelivered InvitationStatus = "delivered"
	InvitationOpened    InvitationStatus = "opened"
	InvitationAccepted  InvitationStatus = "accepted"
	InvitationDeclined  InvitationStatus = "declined"
	InvitationCancelled InvitationStatus = "cancelled"
)

// ParseInvitationStatus maps a stored literal to an InvitationStatus.
func ParseInvitationStatus(s string) (InvitationStatus, error) {
	switch strings.ToLower(s) {
	case "pending":
		return InvitationPending, nil
	case "sent":
		return InvitationSent, nil
	case "delivered":
		return InvitationDelivered, nil
	case "opened":
		return InvitationOpened, nil
	case "accepted":
		return InvitationAccepted, nil
	case "declined":
		return InvitationDeclined, nil
	case "cancelled":
		return InvitationCancelled, nil
	default:
		return "", ErrValidation("status", "invalid invitation status %q", s)
	}
}

func (s InvitationStatus) String() string { return string(s) }

// InvitationMethod records how an invitation was issued.
type InvitationMethod string

const (
	InvitationByEmail      InvitationMethod = "email"
	InvitationBySms        InvitationMethod = "sms"
	InvitationByManual     InvitationMethod = "manual"
	InvitationByBulkImport InvitationMethod = "bulk_import"
)

// ParseInvitationMethod maps a stored literal to an InvitationMethod.
func ParseInvitationMethod(s string) (InvitationMethod, error) {
	switch strings.ToLower(s) {
	case "email":
		return InvitationByEmail, nil
	case "sms":
		return InvitationBySms, nil
	case "manual":
		return InvitationByManual, nil
	case "bulk_import":
		return InvitationByBulkImport, nil
	default:
		return "", ErrValidation("invitation_method", "invalid invitation method %q", s)
	}
}

func (m InvitationMethod) String() string { return string(m) }

// EventInvitation invites either a registered user or an external contact to
// an event.
type EventInvitation struct {
	ID      uuid.UUID
	EventID uuid.UUID

	// Who is invited (registered user or external contact)
	InvitedUserID    *uuid.UUID
	InvitedContactID *uuid.UUID

	// Manual invitation data for one-off invites
	InvitedEmail *string
	InvitedName  *string

	InviterID        uuid.UUID
	InvitationMethod InvitationMethod
	PersonalMessage  *string

	Status      InvitationStatus
	SentAt      *time.Time
	OpenedAt    *time.Time
	RespondedAt *time.Time

	// Token for secure RSVP links
	InvitationToken *string
	ExpiresAt       *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// ValidateForCreation checks the invariants a new invitation must satisfy.
func (i *EventInvitation) ValidateForCreation() error {
	if i.InvitedUserID == nil && (i.InvitedEmail == nil || i.InvitedName == nil) {
		return ErrValidation("invitation_target",
			"Must specify either invited_user_id or both invited_email and invited_name")
	}
	if i.InvitedEmail != nil {
		if strings.TrimSpace(*i.InvitedEmail) == "" || !strings.Contains(*i.InvitedEmail, "@") {
			return ErrValidation("invited_email", "Invalid email format")
		}
	}
	if i.InvitedName != nil && strings.TrimSpace(*i.InvitedName) == "" {
		return ErrValidation("invited_name", "Invited name cannot be empty")
	}
	return nil
}

// CanRespond reports whether the invitation accepts a response now. Only
// pending invitations that have not expired can be answered.
func (i *EventInvitation) CanRespond(now time.Time) error {
	if i.Status != InvitationPending {
		return ErrBusinessRule("Can only respond to pending invitations")
	}
	if i.ExpiresAt != nil && now.After(*i.ExpiresAt) {
		return ErrBusinessRule("Invitation has expired")
	}
	return nil
}

// MarkSent transitions the invitation to sent.
func (i *EventInvitation) MarkSent(now time.Time) {
	i.Status = InvitationSent
	i.SentAt = &now
	i.UpdatedAt = now
}

// MarkOpened records that the recipient opened the invitation. Only sent or
// delivered invitations can be opened.
func (i *EventInvitation) MarkOpened(now time.Time) {
	if i.Status == InvitationSent || i.Status == InvitationDelivered {
		i.Status = InvitationOpened
		i.OpenedAt = &now
		i.UpdatedAt = now
	}
}

// Accept records an affirmative response.
func (i *EventInvitation) Accept(now time.Time) error {
	if err := i.CanRespond(now); err != nil {
		return err
	}
	i.Status = InvitationAccepted
	i.RespondedAt = &now
	i.UpdatedAt = now
	return nil
}

// Decline records a negative response.
func (i *EventInvitation) Decline(now time.Time) error {
	if err := i.CanRespond(now); err != nil {
		return err
	}
	i.Status = InvitationDeclined
	i.RespondedAt = &now
	i.UpdatedAt = now
	return nil
}

// NewInvitationToken generates an opaque token for RSVP links.
func NewInvitationToken() string {
	return uuid.NewString()
}

// CreateInvitationRequest carries validated input for creating an invitation.
type CreateInvitationRequest struct {
	EventID          uuid.UUID `validate:"required"`
	InvitedUserID    *uuid.UUID
	InvitedEmail     *string `validate:"omitempty,email"`
	InvitedName      *string `validate:"omitempty,max=100"`
	InviterID        uuid.UUID `validate:"required"`
	InvitationMethod InvitationMethod
	PersonalMessage  *string `validate:"omitempty,max=1000"`
	ExpiresInDays    int     `validate:"omitempty,gte=0"`
}

// Validate checks tag rules plus the invitee-target invariant.
func (r *CreateInvitationRequest) Validate() error {
	if err := validateStruct(r); err != nil {
		return err
	}
	if r.InvitedUserID == nil && (r.InvitedEmail == nil || r.InvitedName == nil) {
		return ErrValidation("invitation_target",
			"Must specify either invited_user_id or both invited_email and invited_name")
	}
	return nil
}
