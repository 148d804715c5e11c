package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"aquaevents/internal/domain"
)

type RegistrationService struct {
	registrations domain.EventRegistrationRepository
	events        domain.EventRepository
	logger        *slog.Logger
}

func NewRegistrationService(
	registrations domain.EventRegistrationRepository,
	events domain.EventRepository,
	logger *slog.Logger,
) *RegistrationService {
	return &RegistrationService{registrations: registrations, events: events, logger: logger}
}

// Register takes a registration for the event, waitlisting when the event is
// at capacity and waitlisting is enabled.
func (s *RegistrationService) Register(ctx context.Context, req *domain.CreateRegistrationRequest) (*domain.EventRegistration, error) {
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
	if event.Status != domain.EventStatusPublished {
		return nil, domain.ErrBusinessRule("Registration is only open for published events")
	}

	now := time.Now().UTC()
	if err := event.CanBeRegisteredFor(now); err != nil {
		return nil, err
	}

	if req.UserID != nil {
		existing, err := s.registrations.FindByEventAndUser(ctx, req.EventID, *req.UserID)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.Status != domain.RegistrationCancelled {
			return nil, domain.ErrConflict("You are already registered for this event.")
		}
	}

	activeCount, err := s.registrations.CountActiveByEvent(ctx, req.EventID)
	if err != nil {
		return nil, err
	}
	waitlist := event.ShouldWaitlist(activeCount)
	if !waitlist && event.MaxAttendees != nil && activeCount >= *event.MaxAttendees {
		return nil, domain.ErrBusinessRule("This event is full and does not accept a waitlist")
	}

	source := req.Source
	if source == "" {
		source = domain.SourceDirect
	}
	reg := &domain.EventRegistration{
		ID:              uuid.New(),
		EventID:         req.EventID,
		InvitationID:    req.InvitationID,
		UserID:          req.UserID,
		RegistrantEmail: req.RegistrantEmail,
		RegistrantName:  req.RegistrantName,
		Source:          source,
		GuestCount:      req.GuestCount,
		GuestNames:      req.GuestNames,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if reg.GuestNames == nil {
		reg.GuestNames = []string{}
	}
	reg.Take(now, waitlist)
	if waitlist {
		count, err := s.registrations.CountWaitlistedByEvent(ctx, req.EventID)
		if err != nil {
			return nil, err
		}
		pos := domain.NextWaitlistPosition(count)
		reg.WaitlistPosition = &pos
	}

	if err := s.registrations.Create(ctx, reg); err != nil {
		return nil, err
	}

	s.logger.Info("registration taken",
		"registration_id", reg.ID, "event_id", reg.EventID, "status", reg.Status)
	return reg, nil
}

func (s *RegistrationService) GetRegistration(ctx context.Context, id uuid.UUID) (*domain.EventRegistration, error) {
	reg, err := s.registrations.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if reg == nil {
		return nil, domain.ErrNotFound("EventRegistration", id)
	}
	return reg, nil
}

// Cancel withdraws a registration and, when the event allows a waitlist,
// promotes the longest-waiting waitlisted registration into the freed spot.
func (s *RegistrationService) Cancel(ctx context.Context, id uuid.UUID) (*domain.EventRegistration, error) {
	reg, err := s.GetRegistration(ctx, id)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	wasActive := reg.Status == domain.RegistrationRegistered
	if err := reg.Cancel(now); err != nil {
		return nil, err
	}
	if err := s.registrations.Update(ctx, reg); err != nil {
		return nil, err
	}
	s.logger.Info("registration cancelled", "registration_id", reg.ID, "event_id", reg.EventID)

	if wasActive {
		if err := s.promoteNext(ctx, reg.EventID, now); err != nil {
			// The cancellation itself succeeded. Promotion retries on the
			// next cancellation, so log and move on.
			s.logger.Warn("waitlist promotion failed", "event_id", reg.EventID, "error", err)
		}
	}
	return reg, nil
}

func (s *RegistrationService) promoteNext(ctx context.Context, eventID uuid.UUID, now time.Time) error {
	head, err := s.registrations.FirstWaitlisted(ctx, eventID)
	if err != nil {
		return err
	}
	if head == nil {
		return nil
	}
	if err := head.PromoteFromWaitlist(now); err != nil {
		return err
	}
	head.Source = domain.SourceWaitlistPromotion
	if err := s.registrations.Update(ctx, head); err != nil {
		return err
	}
	s.logger.Info("promoted from waitlist",
		"registration_id", head.ID, "event_id", eventID)
	return nil
}

func (s *RegistrationService) CheckIn(ctx context.Context, id uuid.UUID) (*domain.EventRegistration, error) {
	reg, err := s.GetRegistration(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := reg.CheckIn(time.Now().UTC()); err != nil {
		return nil, err
	}
	if err := s.registrations.Update(ctx, reg); err != nil {
		return nil, err
	}
	return reg, nil
}

func (s *RegistrationService) MarkNoShow(ctx context.Context, id uuid.UUID) (*domain.EventRegistration, error) {
	reg, err := s.GetRegistration(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := reg.MarkNoShow(time.Now().UTC()); err != nil {
		return nil, err
	}
	if err := s.registrations.Update(ctx, reg); err != nil {
		return nil, err
	}
	return reg, nil
}

func (s *RegistrationService) ListByEvent(ctx context.Context, eventID uuid.UUID, params domain.PaginationParams) (*domain.PaginatedResult[domain.EventRegistration], error) {
	return s.registrations.FindByEvent(ctx, eventID, params)
}

func (s *RegistrationService) ListByUser(ctx context.Context, userID uuid.UUID, params domain.PaginationParams) (*domain.PaginatedResult[domain.EventRegistration], error) {
	return s.registrations.FindByUser(ctx, userID, params)
}
