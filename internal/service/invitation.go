package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"aquaevents/internal/domain"
)

type InvitationService struct {
	invitations domain.EventInvitationRepository
	events      domain.EventRepository
	logger      *slog.Logger
}

func NewInvitationService(
	invitations domain.EventInvitationRepository,
	events domain.EventRepository,
	logger *slog.Logger,
) *InvitationService {
	return &InvitationService{invitations: invitations, events: events, logger: logger}
}

func (s *InvitationService) CreateInvitation(ctx context.Context, req *domain.CreateInvitationRequest) (*domain.EventInvitation, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	event, err := s.events.FindByID(ctx, req.EventID)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, domain.ErrNotFound("Event", req.EventID)
	}
	if event.Status == domain.EventStatusCancelled {
		return nil, domain.ErrBusinessRule("Cannot invite people to a cancelled event")
	}

	var alreadyInvited bool
	if req.InvitedUserID != nil {
		alreadyInvited, err = s.invitations.UserInvitedToEvent(ctx, *req.InvitedUserID, req.EventID)
	} else if req.InvitedEmail != nil {
		alreadyInvited, err = s.invitations.EmailInvitedToEvent(ctx, *req.InvitedEmail, req.EventID)
	}
	if err != nil {
		return nil, err
	}
	if alreadyInvited {
		return nil, domain.ErrConflict("This person has already been invited to this event.")
	}

	now := time.Now().UTC()
	method := req.InvitationMethod
	if method == "" {
		method = domain.InvitationByEmail
	}
	token := domain.NewInvitationToken()
	inv := &domain.EventInvitation{
		ID:               uuid.New(),
		EventID:          req.EventID,
		InvitedUserID:    req.InvitedUserID,
		InvitedEmail:     req.InvitedEmail,
		InvitedName:      req.InvitedName,
		InviterID:        req.InviterID,
		InvitationMethod: method,
		PersonalMessage:  req.PersonalMessage,
		Status:           domain.InvitationPending,
		InvitationToken:  &token,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if req.ExpiresInDays > 0 {
		expires := now.AddDate(0, 0, req.ExpiresInDays)
		inv.ExpiresAt = &expires
	}
	if err := inv.ValidateForCreation(); err != nil {
		return nil, err
	}
	if err := s.invitations.Create(ctx, inv); err != nil {
		return nil, err
	}

	s.logger.Info("invitation created", "invitation_id", inv.ID, "event_id", inv.EventID)
	return inv, nil
}

func (s *InvitationService) GetInvitation(ctx context.Context, id uuid.UUID) (*domain.EventInvitation, error) {
	inv, err := s.invitations.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.ErrNotFound("EventInvitation", id)
	}
	return inv, nil
}

// GetInvitationByToken resolves the opaque RSVP-link token.
func (s *InvitationService) GetInvitationByToken(ctx context.Context, token string) (*domain.EventInvitation, error) {
	inv, err := s.invitations.FindByToken(ctx, token)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.ErrNotFoundByField("EventInvitation", "invitation_token", token)
	}
	return inv, nil
}

// RespondToInvitation records an accept or decline for the invitation behind
// the token. Only pending, unexpired invitations can be answered.
func (s *InvitationService) RespondToInvitation(ctx context.Context, token string, accept bool) (*domain.EventInvitation, error) {
	inv, err := s.GetInvitationByToken(ctx, token)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	if accept {
		err = inv.Accept(now)
	} else {
		err = inv.Decline(now)
	}
	if err != nil {
		return nil, err
	}

	if err := s.invitations.Update(ctx, inv); err != nil {
		return nil, err
	}
	s.logger.Info("invitation answered", "invitation_id", inv.ID, "status", inv.Status)
	return inv, nil
}

// MarkSent records that the invitation left the delivery pipeline.
func (s *InvitationService) MarkSent(ctx context.Context, id uuid.UUID) (*domain.EventInvitation, error) {
	inv, err := s.GetInvitation(ctx, id)
	if err != nil {
		return nil, err
	}
	if inv.Status != domain.InvitationPending {
		return nil, domain.ErrBusinessRule("Only pending invitations can be marked as sent")
	}
	inv.MarkSent(time.Now().UTC())
	if err := s.invitations.Update(ctx, inv); err != nil {
		return nil, err
	}
	return inv, nil
}

func (s *InvitationService) ListByEvent(ctx context.Context, eventID uuid.UUID, params domain.PaginationParams) (*domain.PaginatedResult[domain.EventInvitation], error) {
	return s.invitations.FindByEvent(ctx, eventID, params)
}

func (s *InvitationService) ListPendingForUser(ctx context.Context, userID uuid.UUID) ([]domain.EventInvitation, error) {
	return s.invitations.FindPendingForUser(ctx, userID)
}

func (s *InvitationService) DeleteInvitation(ctx context.Context, id uuid.UUID) error {
	return s.invitations.Delete(ctx, id)
}
