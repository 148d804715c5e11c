package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"aquaevents/internal/domain"
)

const invitationColumns = `id, event_id, invited_user_id, invited_contact_id, invited_email,
	invited_name, inviter_id, invitation_method, personal_message, status, sent_at,
	opened_at, responded_at, invitation_token, expires_at, created_at, updated_at`

// InvitationRepo implements domain.EventInvitationRepository on the SQLite pool pair.
type InvitationRepo struct {
	writeDB *sql.DB
	readDB  *sql.DB
}

func NewInvitationRepo(writeDB, readDB *sql.DB) *InvitationRepo {
	return &InvitationRepo{writeDB: writeDB, readDB: readDB}
}

func invitationFKRefs(i *domain.EventInvitation) []fkRef {
	return []fkRef{
		{field: "event_id", table: "events", entity: "event", id: i.EventID.String()},
		{field: "invited_user_id", table: "users", entity: "invited user",
			id: uuidPtrString(i.InvitedUserID)},
		{field: "inviter_id", table: "users", entity: "inviter", id: i.InviterID.String()},
	}
}

func (r *InvitationRepo) Create(ctx context.Context, i *domain.EventInvitation) error {
	_, err := r.writeDB.ExecContext(ctx,
		`INSERT INTO event_invitations (`+invitationColumns+`)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		i.ID.String(), i.EventID.String(), uuidPtr(i.InvitedUserID),
		uuidPtr(i.InvitedContactID), strPtr(i.InvitedEmail), strPtr(i.InvitedName),
		i.InviterID.String(), i.InvitationMethod.String(), strPtr(i.PersonalMessage),
		i.Status.String(), fmtTimePtr(i.SentAt), fmtTimePtr(i.OpenedAt),
		fmtTimePtr(i.RespondedAt), strPtr(i.InvitationToken), fmtTimePtr(i.ExpiresAt),
		fmtTime(i.CreatedAt), fmtTime(i.UpdatedAt))
	if err != nil {
		return mapWriteError(ctx, r.readDB, "event_invitations.Create", err, invitationFKRefs(i))
	}
	return nil
}

func (r *InvitationRepo) FindByID(ctx context.Context, id uuid.UUID) (*domain.EventInvitation, error) {
	return queryOne(ctx, r.readDB, "event_invitations.FindByID",
		`SELECT `+invitationColumns+` FROM event_invitations WHERE id = ?`,
		invitationFromRow, id.String())
}

func (r *InvitationRepo) FindByToken(ctx context.Context, token string) (*domain.EventInvitation, error) {
	return queryOne(ctx, r.readDB, "event_invitations.FindByToken",
		`SELECT `+invitationColumns+` FROM event_invitations WHERE invitation_token = ?`,
		invitationFromRow, token)
}

func (r *InvitationRepo) FindByEvent(ctx context.Context, eventID uuid.UUID, params domain.PaginationParams) (*domain.PaginatedResult[domain.EventInvitation], error) {
	total, err := countRows(ctx, r.readDB, "event_invitations.FindByEvent",
		`SELECT COUNT(*) FROM event_invitations WHERE event_id = ?`, eventID.String())
	if err != nil {
		return nil, err
	}
	items, err := queryMany(ctx, r.readDB, "event_invitations.FindByEvent",
		`SELECT `+invitationColumns+` FROM event_invitations WHERE event_id = ?
		 ORDER BY created_at, id LIMIT ? OFFSET ?`,
		invitationFromRow, eventID.String(), params.Limit, params.Offset)
	if err != nil {
		return nil, err
	}
	return domain.NewPaginatedResult(items, total, params), nil
}

func (r *InvitationRepo) FindPendingForUser(ctx context.Context, userID uuid.UUID) ([]domain.EventInvitation, error) {
	return queryMany(ctx, r.readDB, "event_invitations.FindPendingForUser",
		`SELECT `+invitationColumns+` FROM event_invitations
		 WHERE invited_user_id = ? AND status = 'pending'
		 ORDER BY created_at, id`,
		invitationFromRow, userID.String())
}

// UserInvitedToEvent reports whether the user already holds any invitation
// for the event, regardless of its status.
func (r *InvitationRepo) UserInvitedToEvent(ctx context.Context, userID, eventID uuid.UUID) (bool, error) {
	return queryExists(ctx, r.readDB, "event_invitations.UserInvitedToEvent",
		`SELECT 1 FROM event_invitations WHERE invited_user_id = ? AND event_id = ?`,
		userID.String(), eventID.String())
}

// EmailInvitedToEvent is the external-contact counterpart of UserInvitedToEvent.
func (r *InvitationRepo) EmailInvitedToEvent(ctx context.Context, email string, eventID uuid.UUID) (bool, error) {
	return queryExists(ctx, r.readDB, "event_invitations.EmailInvitedToEvent",
		`SELECT 1 FROM event_invitations WHERE invited_email = ? AND event_id = ?`,
		email, eventID.String())
}

func (r *InvitationRepo) Update(ctx context.Context, i *domain.EventInvitation) error {
	res, err := r.writeDB.ExecContext(ctx,
		`UPDATE event_invitations SET invited_user_id = ?, invited_contact_id = ?,
		        invited_email = ?, invited_name = ?, invitation_method = ?,
		        personal_message = ?, status = ?, sent_at = ?, opened_at = ?,
		        responded_at = ?, invitation_token = ?, expires_at = ?, updated_at = ?
		 WHERE id = ?`,
		uuidPtr(i.InvitedUserID), uuidPtr(i.InvitedContactID), strPtr(i.InvitedEmail),
		strPtr(i.InvitedName), i.InvitationMethod.String(), strPtr(i.PersonalMessage),
		i.Status.String(), fmtTimePtr(i.SentAt), fmtTimePtr(i.OpenedAt),
		fmtTimePtr(i.RespondedAt), strPtr(i.InvitationToken), fmtTimePtr(i.ExpiresAt),
		fmtTime(i.UpdatedAt), i.ID.String())
	if err != nil {
		return mapWriteError(ctx, r.readDB, "event_invitations.Update", err, invitationFKRefs(i))
	}
	n, err := res.RowsAffected()
	if err != nil {
		return toDomain(fromSQLiteError("event_invitations.Update", err))
	}
	if n == 0 {
		return domain.ErrNotFound("EventInvitation", i.ID)
	}
	return nil
}

func (r *InvitationRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return execAffectingOne(ctx, r.writeDB, "event_invitations.Delete",
		`DELETE FROM event_invitations WHERE id = ?`,
		func() error { return domain.ErrNotFound("EventInvitation", id) },
		id.String())
}

func invitationFromRow(rec row) (*domain.EventInvitation, *InfraError) {
	var i domain.EventInvitation
	var err *InfraError
	if i.ID, err = rec.UUID("id"); err != nil {
		return nil, err
	}
	if i.EventID, err = rec.UUID("event_id"); err != nil {
		return nil, err
	}
	if i.InvitedUserID, err = rec.OptionalUUID("invited_user_id"); err != nil {
		return nil, err
	}
	if i.InvitedContactID, err = rec.OptionalUUID("invited_contact_id"); err != nil {
		return nil, err
	}
	if i.InvitedEmail, err = rec.OptionalString("invited_email"); err != nil {
		return nil, err
	}
	if i.InvitedName, err = rec.OptionalString("invited_name"); err != nil {
		return nil, err
	}
	if i.InviterID, err = rec.UUID("inviter_id"); err != nil {
		return nil, err
	}
	if i.InvitationMethod, err = rec.InvitationMethod("invitation_method"); err != nil {
		return nil, err
	}
	if i.PersonalMessage, err = rec.OptionalString("personal_message"); err != nil {
		return nil, err
	}
	if i.Status, err = rec.InvitationStatus("status"); err != nil {
		return nil, err
	}
	if i.SentAt, err = rec.OptionalTime("sent_at"); err != nil {
		return nil, err
	}
	if i.OpenedAt, err = rec.OptionalTime("opened_at"); err != nil {
		return nil, err
	}
	if i.RespondedAt, err = rec.OptionalTime("responded_at"); err != nil {
		return nil, err
	}
	if i.InvitationToken, err = rec.OptionalString("invitation_token"); err != nil {
		return nil, err
	}
	if i.ExpiresAt, err = rec.OptionalTime("expires_at"); err != nil {
		return nil, err
	}
	if i.CreatedAt, err = rec.Time("created_at"); err != nil {
		return nil, err
	}
	if i.UpdatedAt, err = rec.Time("updated_at"); err != nil {
		return nil, err
	}
	return &i, nil
}
