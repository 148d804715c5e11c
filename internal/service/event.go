package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"aquaevents/internal/domain"
)

type EventService struct {
	events        domain.EventRepository
	categories    domain.EventCategoryRepository
	registrations domain.EventRegistrationRepository
	logger        *slog.Logger
}

func NewEventService(
	events domain.EventRepository,
	categories domain.EventCategoryRepository,
	registrations domain.EventRegistrationRepository,
	logger *slog.Logger,
) *EventService {
	return &EventService{
		events:        events,
		categories:    categories,
		registrations: registrations,
		logger:        logger,
	}
}

func (s *EventService) CreateEvent(ctx context.Context, req *domain.CreateEventRequest) (*domain.Event, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	category, err := s.categories.FindByID(ctx, req.CategoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrValidation("category_id",
			"The event category '%s' does not exist. Please create the category first.", req.CategoryID)
	}

	now := time.Now().UTC()
	e := &domain.Event{
		ID:                   uuid.New(),
		Title:                req.Title,
		Description:          req.Description,
		CategoryID:           req.CategoryID,
		StartDate:            req.StartDate,
		EndDate:              req.EndDate,
		Timezone:             req.Timezone,
		LocationType:         req.LocationType,
		LocationName:         req.LocationName,
		VirtualLink:          req.VirtualLink,
		OrganizerID:          req.OrganizerID,
		IsPrivate:            req.IsPrivate,
		MaxAttendees:         req.MaxAttendees,
		RegistrationRequired: true,
		SendReminders:        true,
		Status:               domain.EventStatusDraft,
		CreatedAt:            now,
		UpdatedAt:            now,
	}
	if e.Timezone == "" {
		e.Timezone = "UTC"
	}
	if e.LocationType == "" {
		e.LocationType = domain.LocationPhysical
	}
	if err := e.ValidateForCreation(); err != nil {
		return nil, err
	}
	if err := s.events.Create(ctx, e); err != nil {
		return nil, err
	}

	s.logger.Info("event created", "event_id", e.ID, "organizer_id", e.OrganizerID)
	return e, nil
}

func (s *EventService) GetEvent(ctx context.Context, id uuid.UUID) (*domain.Event, error) {
	e, err := s.events.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, domain.ErrNotFound("Event", id)
	}
	return e, nil
}

// UpdateEvent applies the edit on behalf of actorID. Only the organizer on
// record may change an event; the check runs against the stored row, not the
// incoming struct.
func (s *EventService) UpdateEvent(ctx context.Context, actorID uuid.UUID, e *domain.Event) (*domain.Event, error) {
	if err := e.ValidateForCreation(); err != nil {
		return nil, err
	}
	stored, err := s.GetEvent(ctx, e.ID)
	if err != nil {
		return nil, err
	}
	if stored.OrganizerID != actorID {
		return nil, domain.ErrUnauthorized("Only the event organizer can update this event")
	}
	e.UpdatedAt = time.Now().UTC()
	if err := s.events.Update(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

// PublishEvent moves a draft event into the published state.
func (s *EventService) PublishEvent(ctx context.Context, id uuid.UUID) (*domain.Event, error) {
	e, err := s.GetEvent(ctx, id)
	if err != nil {
		return nil, err
	}
	if e.Status != domain.EventStatusDraft {
		return nil, domain.ErrBusinessRule("Only draft events can be published")
	}
	e.Status = domain.EventStatusPublished
	e.UpdatedAt = time.Now().UTC()
	if err := s.events.Update(ctx, e); err != nil {
		return nil, err
	}
	s.logger.Info("event published", "event_id", e.ID)
	return e, nil
}

// CancelEvent cancels a draft or published event.
func (s *EventService) CancelEvent(ctx context.Context, id uuid.UUID) (*domain.Event, error) {
	e, err := s.GetEvent(ctx, id)
	if err != nil {
		return nil, err
	}
	switch e.Status {
	case domain.EventStatusCancelled:
		return nil, domain.ErrBusinessRule("Event is already cancelled")
	case domain.EventStatusCompleted:
		return nil, domain.ErrBusinessRule("Completed events cannot be cancelled")
	}
	e.Status = domain.EventStatusCancelled
	e.UpdatedAt = time.Now().UTC()
	if err := s.events.Update(ctx, e); err != nil {
		return nil, err
	}
	s.logger.Info("event cancelled", "event_id", e.ID)
	return e, nil
}

// DeleteEvent removes an event and everything cascading from it. Organizer
// only, same rule as UpdateEvent.
func (s *EventService) DeleteEvent(ctx context.Context, actorID, id uuid.UUID) error {
	e, err := s.GetEvent(ctx, id)
	if err != nil {
		return err
	}
	if e.OrganizerID != actorID {
		return domain.ErrUnauthorized("Only the event organizer can delete this event")
	}
	return s.events.Delete(ctx, id)
}

func (s *EventService) ListUpcoming(ctx context.Context, params domain.PaginationParams) (*domain.PaginatedResult[domain.Event], error) {
	return s.events.FindUpcoming(ctx, params)
}

func (s *EventService) ListByOrganizer(ctx context.Context, organizerID uuid.UUID, params domain.PaginationParams) (*domain.PaginatedResult[domain.Event], error) {
	return s.events.FindByOrganizer(ctx, organizerID, params)
}

func (s *EventService) SearchEvents(ctx context.Context, filter domain.EventFilter, params domain.PaginationParams) (*domain.PaginatedResult[domain.Event], error) {
	return s.events.Search(ctx, filter, params)
}

// EventStats summarizes attendance for one event.
type EventStats struct {
	Event          *domain.Event
	ActiveCount    int
	WaitlistCount  int
	AvailableSpots *int // nil when the event is uncapped
}

// GetEventStats loads the event and both attendance counts concurrently.
func (s *EventService) GetEventStats(ctx context.Context, id uuid.UUID) (*EventStats, error) {
	stats := &EventStats{}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		e, err := s.GetEvent(gctx, id)
		if err != nil {
			return err
		}
		stats.Event = e
		return nil
	})
	g.Go(func() error {
		n, err := s.registrations.CountActiveByEvent(gctx, id)
		if err != nil {
			return err
		}
		stats.ActiveCount = n
		return nil
	})
	g.Go(func() error {
		n, err := s.registrations.CountWaitlistedByEvent(gctx, id)
		if err != nil {
			return err
		}
		stats.WaitlistCount = n
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	stats.AvailableSpots = stats.Event.AvailableSpots(stats.ActiveCount)
	return stats, nil
}
