package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"aquaevents/internal/domain"
)

const registrationColumns = `id, event_id, invitation_id, user_id, external_contact_id,
	registrant_email, registrant_name, registrant_phone, registrant_company, status,
	registration_source, guest_count, guest_names, dietary_restrictions,
	accessibility_needs, special_requests, custom_responses, registered_at,
	cancelled_at, checked_in_at, waitlist_position, waitlist_added_at,
	created_at, updated_at`

// RegistrationRepo implements domain.EventRegistrationRepository on the
// SQLite pool pair.
type RegistrationRepo struct {
	writeDB *sql.DB
	readDB  *sql.DB
}

func NewRegistrationRepo(writeDB, readDB *sql.DB) *RegistrationRepo {
	return &RegistrationRepo{writeDB: writeDB, readDB: readDB}
}

func registrationFKRefs(reg *domain.EventRegistration) []fkRef {
	return []fkRef{
		{field: "event_id", table: "events", entity: "event", id: reg.EventID.String()},
		{field: "user_id", table: "users", entity: "user", id: uuidPtrString(reg.UserID)},
		{field: "invitation_id", table: "event_invitations", entity: "invitation",
			id: uuidPtrString(reg.InvitationID)},
	}
}

func (r *RegistrationRepo) Create(ctx context.Context, reg *domain.EventRegistration) error {
	guestNames, ierr := marshalJSON("event_registrations.Create", "guest_names", reg.GuestNames)
	if ierr != nil {
		return toDomain(ierr)
	}
	_, err := r.writeDB.ExecContext(ctx,
		`INSERT INTO event_registrations (`+registrationColumns+`)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		reg.ID.String(), reg.EventID.String(), uuidPtr(reg.InvitationID),
		uuidPtr(reg.UserID), uuidPtr(reg.ExternalContactID),
		strPtr(reg.RegistrantEmail), strPtr(reg.RegistrantName),
		strPtr(reg.RegistrantPhone), strPtr(reg.RegistrantCompany),
		reg.Status.String(), reg.Source.String(), reg.GuestCount, guestNames,
		strPtr(reg.DietaryRestrictions), strPtr(reg.AccessibilityNeeds),
		strPtr(reg.SpecialRequests), strPtr(reg.CustomResponses),
		fmtTime(reg.RegisteredAt), fmtTimePtr(reg.CancelledAt),
		fmtTimePtr(reg.CheckedInAt), intPtr(reg.WaitlistPosition),
		fmtTimePtr(reg.WaitlistAddedAt), fmtTime(reg.CreatedAt), fmtTime(reg.UpdatedAt))
	if err != nil {
		return mapWriteError(ctx, r.readDB, "event_registrations.Create", err, registrationFKRefs(reg))
	}
	return nil
}

func (r *RegistrationRepo) FindByID(ctx context.Context, id uuid.UUID) (*domain.EventRegistration, error) {
	return queryOne(ctx, r.readDB, "event_registrations.FindByID",
		`SELECT `+registrationColumns+` FROM event_registrations WHERE id = ?`,
		registrationFromRow, id.String())
}

func (r *RegistrationRepo) FindByEventAndUser(ctx context.Context, eventID, userID uuid.UUID) (*domain.EventRegistration, error) {
	return queryOne(ctx, r.readDB, "event_registrations.FindByEventAndUser",
		`SELECT `+registrationColumns+` FROM event_registrations
		 WHERE event_id = ? AND user_id = ?`,
		registrationFromRow, eventID.String(), userID.String())
}

func (r *RegistrationRepo) FindByEvent(ctx context.Context, eventID uuid.UUID, params domain.PaginationParams) (*domain.PaginatedResult[domain.EventRegistration], error) {
	total, err := countRows(ctx, r.readDB, "event_registrations.FindByEvent",
		`SELECT COUNT(*) FROM event_registrations WHERE event_id = ?`, eventID.String())
	if err != nil {
		return nil, err
	}
	items, err := queryMany(ctx, r.readDB, "event_registrations.FindByEvent",
		`SELECT `+registrationColumns+` FROM event_registrations WHERE event_id = ?
		 ORDER BY registered_at, id LIMIT ? OFFSET ?`,
		registrationFromRow, eventID.String(), params.Limit, params.Offset)
	if err != nil {
		return nil, err
	}
	return domain.NewPaginatedResult(items, total, params), nil
}

func (r *RegistrationRepo) FindByUser(ctx context.Context, userID uuid.UUID, params domain.PaginationParams) (*domain.PaginatedResult[domain.EventRegistration], error) {
	total, err := countRows(ctx, r.readDB, "event_registrations.FindByUser",
		`SELECT COUNT(*) FROM event_registrations WHERE user_id = ?`, userID.String())
	if err != nil {
		return nil, err
	}
	items, err := queryMany(ctx, r.readDB, "event_registrations.FindByUser",
		`SELECT `+registrationColumns+` FROM event_registrations WHERE user_id = ?
		 ORDER BY registered_at, id LIMIT ? OFFSET ?`,
		registrationFromRow, userID.String(), params.Limit, params.Offset)
	if err != nil {
		return nil, err
	}
	return domain.NewPaginatedResult(items, total, params), nil
}

// CountActiveByEvent counts registrations occupying capacity: registered or
// attended, not cancelled, waitlisted, or no-show.
func (r *RegistrationRepo) CountActiveByEvent(ctx context.Context, eventID uuid.UUID) (int, error) {
	var n int
	err := r.readDB.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM event_registrations
		 WHERE event_id = ? AND status IN ('registered', 'attended')`,
		eventID.String()).Scan(&n)
	if err != nil {
		return 0, toDomain(fromSQLiteError("event_registrations.CountActiveByEvent", err))
	}
	return n, nil
}

func (r *RegistrationRepo) CountWaitlistedByEvent(ctx context.Context, eventID uuid.UUID) (int, error) {
	var n int
	err := r.readDB.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM event_registrations
		 WHERE event_id = ? AND status = 'waitlisted'`,
		eventID.String()).Scan(&n)
	if err != nil {
		return 0, toDomain(fromSQLiteError("event_registrations.CountWaitlistedByEvent", err))
	}
	return n, nil
}

// FirstWaitlisted returns the longest-waiting waitlisted registration for
// the event, or (nil, nil) when the waitlist is empty.
func (r *RegistrationRepo) FirstWaitlisted(ctx context.Context, eventID uuid.UUID) (*domain.EventRegistration, error) {
	return queryOne(ctx, r.readDB, "event_registrations.FirstWaitlisted",
		`SELECT `+registrationColumns+` FROM event_registrations
		 WHERE event_id = ? AND status = 'waitlisted'
		 ORDER BY waitlist_added_at, id LIMIT 1`,
		registrationFromRow, eventID.String())
}

func (r *RegistrationRepo) Update(ctx context.Context, reg *domain.EventRegistration) error {
	guestNames, ierr := marshalJSON("event_registrations.Update", "guest_names", reg.GuestNames)
	if ierr != nil {
		return toDomain(ierr)
	}
	res, err := r.writeDB.ExecContext(ctx,
		`UPDATE event_registrations SET status = ?, registration_source = ?,
		        guest_count = ?, guest_names = ?, dietary_restrictions = ?,
		        accessibility_needs = ?, special_requests = ?, custom_responses = ?,
		        cancelled_at = ?, checked_in_at = ?, waitlist_position = ?,
		        waitlist_added_at = ?, updated_at = ?
		 WHERE id = ?`,
		reg.Status.String(), reg.Source.String(), reg.GuestCount, guestNames,
		strPtr(reg.DietaryRestrictions), strPtr(reg.AccessibilityNeeds),
		strPtr(reg.SpecialRequests), strPtr(reg.CustomResponses),
		fmtTimePtr(reg.CancelledAt), fmtTimePtr(reg.CheckedInAt),
		intPtr(reg.WaitlistPosition), fmtTimePtr(reg.WaitlistAddedAt),
		fmtTime(reg.UpdatedAt), reg.ID.String())
	if err != nil {
		return mapWriteError(ctx, r.readDB, "event_registrations.Update", err, registrationFKRefs(reg))
	}
	n, err := res.RowsAffected()
	if err != nil {
		return toDomain(fromSQLiteError("event_registrations.Update", err))
	}
	if n == 0 {
		return domain.ErrNotFound("EventRegistration", reg.ID)
	}
	return nil
}

func registrationFromRow(rec row) (*domain.EventRegistration, *InfraError) {
	var reg domain.EventRegistration
	var err *InfraError
	if reg.ID, err = rec.UUID("id"); err != nil {
		return nil, err
	}
	if reg.EventID, err = rec.UUID("event_id"); err != nil {
		return nil, err
	}
	if reg.InvitationID, err = rec.OptionalUUID("invitation_id"); err != nil {
		return nil, err
	}
	if reg.UserID, err = rec.OptionalUUID("user_id"); err != nil {
		return nil, err
	}
	if reg.ExternalContactID, err = rec.OptionalUUID("external_contact_id"); err != nil {
		return nil, err
	}
	if reg.RegistrantEmail, err = rec.OptionalString("registrant_email"); err != nil {
		return nil, err
	}
	if reg.RegistrantName, err = rec.OptionalString("registrant_name"); err != nil {
		return nil, err
	}
	if reg.RegistrantPhone, err = rec.OptionalString("registrant_phone"); err != nil {
		return nil, err
	}
	if reg.RegistrantCompany, err = rec.OptionalString("registrant_company"); err != nil {
		return nil, err
	}
	if reg.Status, err = rec.RegistrationStatus("status"); err != nil {
		return nil, err
	}
	if reg.Source, err = rec.RegistrationSource("registration_source"); err != nil {
		return nil, err
	}
	if reg.GuestCount, err = rec.Int("guest_count"); err != nil {
		return nil, err
	}
	if err = rec.JSON("guest_names", &reg.GuestNames); err != nil {
		return nil, err
	}
	if reg.DietaryRestrictions, err = rec.OptionalString("dietary_restrictions"); err != nil {
		return nil, err
	}
	if reg.AccessibilityNeeds, err = rec.OptionalString("accessibility_needs"); err != nil {
		return nil, err
	}
	if reg.SpecialRequests, err = rec.OptionalString("special_requests"); err != nil {
		return nil, err
	}
	if reg.CustomResponses, err = rec.OptionalString("custom_responses"); err != nil {
		return nil, err
	}
	if reg.RegisteredAt, err = rec.Time("registered_at"); err != nil {
		return nil, err
	}
	if reg.CancelledAt, err = rec.OptionalTime("cancelled_at"); err != nil {
		return nil, err
	}
	if reg.CheckedInAt, err = rec.OptionalTime("checked_in_at"); err != nil {
		return nil, err
	}
	if reg.WaitlistPosition, err = rec.OptionalInt("waitlist_position"); err != nil {
		return nil, err
	}
	if reg.WaitlistAddedAt, err = rec.OptionalTime("waitlist_added_at"); err != nil {
		return nil, err
	}
	if reg.CreatedAt, err = rec.Time("created_at"); err != nil {
		return nil, err
	}
	if reg.UpdatedAt, err = rec.Time("updated_at"); err != nil {
		return nil, err
	}
	return &reg, nil
}
