package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/google/uuid"

	"aquaevents/internal/domain"
)

const eventColumns = `id, title, description, category_id, start_date, end_date, timezone,
	location_type, location_name, address, virtual_link, virtual_access_code,
	organizer_id, co_organizers, is_private, requires_approval, max_attendees,
	allow_guests, max_guests_per_person, registration_opens, registration_closes,
	registration_required, allow_waitlist, send_reminders, collect_dietary_info,
	collect_accessibility_info, image_url, custom_fields, status, created_at, updated_at`

// EventRepo implements domain.EventRepository on the SQLite pool pair.
type EventRepo struct {
	writeDB *sql.DB
	readDB  *sql.DB
}

func NewEventRepo(writeDB, readDB *sql.DB) *EventRepo {
	return &EventRepo{writeDB: writeDB, readDB: readDB}
}

func (r *EventRepo) Create(ctx context.Context, e *domain.Event) error {
	coOrganizers, ierr := marshalJSON("events.Create", "co_organizers", e.CoOrganizers)
	if ierr != nil {
		return toDomain(ierr)
	}
	_, err := r.writeDB.ExecContext(ctx,
		`INSERT INTO events (`+eventColumns+`)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.ID.String(), e.Title, e.Description, e.CategoryID,
		fmtTime(e.StartDate), fmtTime(e.EndDate), e.Timezone,
		e.LocationType.String(), strPtr(e.LocationName), strPtr(e.Address),
		strPtr(e.VirtualLink), strPtr(e.VirtualAccessCode),
		e.OrganizerID.String(), coOrganizers,
		boolToInt(e.IsPrivate), boolToInt(e.RequiresApproval), intPtr(e.MaxAttendees),
		boolToInt(e.AllowGuests), intPtr(e.MaxGuestsPerPerson),
		fmtTimePtr(e.RegistrationOpens), fmtTimePtr(e.RegistrationCloses),
		boolToInt(e.RegistrationRequired), boolToInt(e.AllowWaitlist),
		boolToInt(e.SendReminders), boolToInt(e.CollectDietaryInfo),
		boolToInt(e.CollectAccessibilityInfo), strPtr(e.ImageURL), strPtr(e.CustomFields),
		e.Status.String(), fmtTime(e.CreatedAt), fmtTime(e.UpdatedAt))
	if err != nil {
		return mapWriteError(ctx, r.readDB, "events.Create", err, []fkRef{
			{field: "category_id", table: "event_categories", entity: "event category",
				id: e.CategoryID, hint: "Please create the category first."},
			{field: "organizer_id", table: "users", entity: "organizer",
				id: e.OrganizerID.String()},
		})
	}
	return nil
}

func (r *EventRepo) FindByID(ctx context.Context, id uuid.UUID) (*domain.Event, error) {
	return queryOne(ctx, r.readDB, "events.FindByID",
		`SELECT `+eventColumns+` FROM events WHERE id = ?`, eventFromRow, id.String())
}

func (r *EventRepo) FindByOrganizer(ctx context.Context, organizerID uuid.UUID, params domain.PaginationParams) (*domain.PaginatedResult[domain.Event], error) {
	total, err := countRows(ctx, r.readDB, "events.FindByOrganizer",
		`SELECT COUNT(*) FROM events WHERE organizer_id = ?`, organizerID.String())
	if err != nil {
		return nil, err
	}
	items, err := queryMany(ctx, r.readDB, "events.FindByOrganizer",
		`SELECT `+eventColumns+` FROM events WHERE organizer_id = ?
		 ORDER BY start_date, id LIMIT ? OFFSET ?`,
		eventFromRow, organizerID.String(), params.Limit, params.Offset)
	if err != nil {
		return nil, err
	}
	return domain.NewPaginatedResult(items, total, params), nil
}

func (r *EventRepo) FindUpcoming(ctx context.Context, params domain.PaginationParams) (*domain.PaginatedResult[domain.Event], error) {
	now := fmtTime(timeNow())
	total, err := countRows(ctx, r.readDB, "events.FindUpcoming",
		`SELECT COUNT(*) FROM events WHERE status = 'published' AND start_date > ?`, now)
	if err != nil {
		return nil, err
	}
	items, err := queryMany(ctx, r.readDB, "events.FindUpcoming",
		`SELECT `+eventColumns+` FROM events WHERE status = 'published' AND start_date > ?
		 ORDER BY start_date, id LIMIT ? OFFSET ?`,
		eventFromRow, now, params.Limit, params.Offset)
	if err != nil {
		return nil, err
	}
	return domain.NewPaginatedResult(items, total, params), nil
}

// Search applies the filter's non-nil fields conjunctively.
func (r *EventRepo) Search(ctx context.Context, filter domain.EventFilter, params domain.PaginationParams) (*domain.PaginatedResult[domain.Event], error) {
	where, args := buildEventFilter(filter)

	total, err := countRows(ctx, r.readDB, "events.Search",
		`SELECT COUNT(*) FROM events`+where, args...)
	if err != nil {
		return nil, err
	}

	pageArgs := append(append([]any{}, args...), params.Limit, params.Offset)
	items, err := queryMany(ctx, r.readDB, "events.Search",
		`SELECT `+eventColumns+` FROM events`+where+` ORDER BY start_date, id LIMIT ? OFFSET ?`,
		eventFromRow, pageArgs...)
	if err != nil {
		return nil, err
	}
	return domain.NewPaginatedResult(items, total, params), nil
}

func buildEventFilter(f domain.EventFilter) (string, []any) {
	var conds []string
	var args []any

	if f.TitleContains != nil {
		conds = append(conds, "title LIKE ?")
		args = append(args, "%"+*f.TitleContains+"%")
	}
	if f.CategoryID != nil {
		conds = append(conds, "category_id = ?")
		args = append(args, *f.CategoryID)
	}
	if f.OrganizerID != nil {
		conds = append(conds, "organizer_id = ?")
		args = append(args, f.OrganizerID.String())
	}
	if f.IsPrivate != nil {
		conds = append(conds, "is_private = ?")
		args = append(args, boolToInt(*f.IsPrivate))
	}
	if f.Status != nil {
		conds = append(conds, "status = ?")
		args = append(args, f.Status.String())
	}
	if f.LocationType != nil {
		conds = append(conds, "location_type = ?")
		args = append(args, f.LocationType.String())
	}
	if f.StartDateFrom != nil {
		conds = append(conds, "start_date >= ?")
		args = append(args, fmtTime(*f.StartDateFrom))
	}
	if f.StartDateTo != nil {
		conds = append(conds, "start_date <= ?")
		args = append(args, fmtTime(*f.StartDateTo))
	}

	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func (r *EventRepo) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	return queryExists(ctx, r.readDB, "events.Exists",
		`SELECT 1 FROM events WHERE id = ?`, id.String())
}

func (r *EventRepo) Update(ctx context.Context, e *domain.Event) error {
	coOrganizers, ierr := marshalJSON("events.Update", "co_organizers", e.CoOrganizers)
	if ierr != nil {
		return toDomain(ierr)
	}
	res, err := r.writeDB.ExecContext(ctx,
		`UPDATE events SET title = ?, description = ?, category_id = ?, start_date = ?,
		        end_date = ?, timezone = ?, location_type = ?, location_name = ?,
		        address = ?, virtual_link = ?, virtual_access_code = ?, co_organizers = ?,
		        is_private = ?, requires_approval = ?, max_attendees = ?, allow_guests = ?,
		        max_guests_per_person = ?, registration_opens = ?, registration_closes = ?,
		        registration_required = ?, allow_waitlist = ?, send_reminders = ?,
		        collect_dietary_info = ?, collect_accessibility_info = ?, image_url = ?,
		        custom_fields = ?, status = ?, updated_at = ?
		 WHERE id = ?`,
		e.Title, e.Description, e.CategoryID, fmtTime(e.StartDate), fmtTime(e.EndDate),
		e.Timezone, e.LocationType.String(), strPtr(e.LocationName), strPtr(e.Address),
		strPtr(e.VirtualLink), strPtr(e.VirtualAccessCode), coOrganizers,
		boolToInt(e.IsPrivate), boolToInt(e.RequiresApproval), intPtr(e.MaxAttendees),
		boolToInt(e.AllowGuests), intPtr(e.MaxGuestsPerPerson),
		fmtTimePtr(e.RegistrationOpens), fmtTimePtr(e.RegistrationCloses),
		boolToInt(e.RegistrationRequired), boolToInt(e.AllowWaitlist),
		boolToInt(e.SendReminders), boolToInt(e.CollectDietaryInfo),
		boolToInt(e.CollectAccessibilityInfo), strPtr(e.ImageURL), strPtr(e.CustomFields),
		e.Status.String(), fmtTime(e.UpdatedAt), e.ID.String())
	if err != nil {
		return mapWriteError(ctx, r.readDB, "events.Update", err, []fkRef{
			{field: "category_id", table: "event_categories", entity: "event category",
				id: e.CategoryID, hint: "Please create the category first."},
		})
	}
	n, err := res.RowsAffected()
	if err != nil {
		return toDomain(fromSQLiteError("events.Update", err))
	}
	if n == 0 {
		return domain.ErrNotFound("Event", e.ID)
	}
	return nil
}

func (r *EventRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return execAffectingOne(ctx, r.writeDB, "events.Delete",
		`DELETE FROM events WHERE id = ?`,
		func() error { return domain.ErrNotFound("Event", id) },
		id.String())
}

func eventFromRow(rec row) (*domain.Event, *InfraError) {
	var e domain.Event
	var err *InfraError
	if e.ID, err = rec.UUID("id"); err != nil {
		return nil, err
	}
	if e.Title, err = rec.String("title"); err != nil {
		return nil, err
	}
	if e.Description, err = rec.String("description"); err != nil {
		return nil, err
	}
	if e.CategoryID, err = rec.String("category_id"); err != nil {
		return nil, err
	}
	if e.StartDate, err = rec.Time("start_date"); err != nil {
		return nil, err
	}
	if e.EndDate, err = rec.Time("end_date"); err != nil {
		return nil, err
	}
	if e.Timezone, err = rec.String("timezone"); err != nil {
		return nil, err
	}
	if e.LocationType, err = rec.LocationType("location_type"); err != nil {
		return nil, err
	}
	if e.LocationName, err = rec.OptionalString("location_name"); err != nil {
		return nil, err
	}
	if e.Address, err = rec.OptionalString("address"); err != nil {
		return nil, err
	}
	if e.VirtualLink, err = rec.OptionalString("virtual_link"); err != nil {
		return nil, err
	}
	if e.VirtualAccessCode, err = rec.OptionalString("virtual_access_code"); err != nil {
		return nil, err
	}
	if e.OrganizerID, err = rec.UUID("organizer_id"); err != nil {
		return nil, err
	}
	if err = rec.JSON("co_organizers", &e.CoOrganizers); err != nil {
		return nil, err
	}
	if e.IsPrivate, err = rec.Bool("is_private"); err != nil {
		return nil, err
	}
	if e.RequiresApproval, err = rec.Bool("requires_approval"); err != nil {
		return nil, err
	}
	if e.MaxAttendees, err = rec.OptionalInt("max_attendees"); err != nil {
		return nil, err
	}
	if e.AllowGuests, err = rec.Bool("allow_guests"); err != nil {
		return nil, err
	}
	if e.MaxGuestsPerPerson, err = rec.OptionalInt("max_guests_per_person"); err != nil {
		return nil, err
	}
	if e.RegistrationOpens, err = rec.OptionalTime("registration_opens"); err != nil {
		return nil, err
	}
	if e.RegistrationCloses, err = rec.OptionalTime("registration_closes"); err != nil {
		return nil, err
	}
	if e.RegistrationRequired, err = rec.Bool("registration_required"); err != nil {
		return nil, err
	}
	if e.AllowWaitlist, err = rec.Bool("allow_waitlist"); err != nil {
		return nil, err
	}
	if e.SendReminders, err = rec.Bool("send_reminders"); err != nil {
		return nil, err
	}
	if e.CollectDietaryInfo, err = rec.Bool("collect_dietary_info"); err != nil {
		return nil, err
	}
	if e.CollectAccessibilityInfo, err = rec.Bool("collect_accessibility_info"); err != nil {
		return nil, err
	}
	if e.ImageURL, err = rec.OptionalString("image_url"); err != nil {
		return nil, err
	}
	if e.CustomFields, err = rec.OptionalString("custom_fields"); err != nil {
		return nil, err
	}
	if e.Status, err = rec.EventStatus("status"); err != nil {
		return nil, err
	}
	if e.CreatedAt, err = rec.Time("created_at"); err != nil {
		return nil, err
	}
	if e.UpdatedAt, err = rec.Time("updated_at"); err != nil {
		return nil, err
	}
	return &e, nil
}
