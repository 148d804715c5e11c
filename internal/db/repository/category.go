package repository

import (
	"context"
	"database/sql"

	"aquaevents/internal/domain"
)

const categoryColumns = `id, name, description, color_hex, icon_name, is_active, created_at`

// CategoryRepo implements domain.EventCategoryRepository on the SQLite pool pair.
type CategoryRepo struct {
	writeDB *sql.DB
	readDB  *sql.DB
}

func NewCategoryRepo(writeDB, readDB *sql.DB) *CategoryRepo {
	return &CategoryRepo{writeDB: writeDB, readDB: readDB}
}

func (r *CategoryRepo) Create(ctx context.Context, c *domain.EventCategory) error {
	_, err := r.writeDB.ExecContext(ctx,
		`INSERT INTO event_categories (`+categoryColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		c.ID, c.Name, strPtr(c.Description), strPtr(c.ColorHex), strPtr(c.IconName),
		boolToInt(c.IsActive), fmtTime(c.CreatedAt))
	if err != nil {
		return toDomain(fromSQLiteError("event_categories.Create", err))
	}
	return nil
}

func (r *CategoryRepo) FindByID(ctx context.Context, id string) (*domain.EventCategory, error) {
	return queryOne(ctx, r.readDB, "event_categories.FindByID",
		`SELECT `+categoryColumns+` FROM event_categories WHERE id = ?`, categoryFromRow, id)
}

func (r *CategoryRepo) FindActive(ctx context.Context) ([]domain.EventCategory, error) {
	return queryMany(ctx, r.readDB, "event_categories.FindActive",
		`SELECT `+categoryColumns+` FROM event_categories WHERE is_active = 1 ORDER BY name`,
		categoryFromRow)
}

func (r *CategoryRepo) FindAll(ctx context.Context) ([]domain.EventCategory, error) {
	return queryMany(ctx, r.readDB, "event_categories.FindAll",
		`SELECT `+categoryColumns+` FROM event_categories ORDER BY name`,
		categoryFromRow)
}

func (r *CategoryRepo) Update(ctx context.Context, c *domain.EventCategory) error {
	return execAffectingOne(ctx, r.writeDB, "event_categories.Update",
		`UPDATE event_categories SET name = ?, description = ?, color_hex = ?,
		        icon_name = ?, is_active = ?
		 WHERE id = ?`,
		func() error { return domain.ErrNotFoundByField("EventCategory", "id", c.ID) },
		c.Name, strPtr(c.Description), strPtr(c.ColorHex), strPtr(c.IconName),
		boolToInt(c.IsActive), c.ID)
}

func (r *CategoryRepo) Delete(ctx context.Context, id string) error {
	res, err := r.writeDB.ExecContext(ctx, `DELETE FROM event_categories WHERE id = ?`, id)
	if err != nil {
		// Events referencing the category block deletion via the FK.
		ie := fromSQLiteError("event_categories.Delete", err)
		if ie.Kind == KindForeignKeyConstraint {
			return domain.ErrBusinessRule("Cannot delete a category that is still used by events")
		}
		return toDomain(ie)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return toDomain(fromSQLiteError("event_categories.Delete", err))
	}
	if n == 0 {
		return domain.ErrNotFoundByField("EventCategory", "id", id)
	}
	return nil
}

func categoryFromRow(rec row) (*domain.EventCategory, *InfraError) {
	var c domain.EventCategory
	var err *InfraError
	if c.ID, err = rec.String("id"); err != nil {
		return nil, err
	}
	if c.Name, err = rec.String("name"); err != nil {
		return nil, err
	}
	if c.Description, err = rec.OptionalString("description"); err != nil {
		return nil, err
	}
	if c.ColorHex, err = rec.OptionalString("color_hex"); err != nil {
		return nil, err
	}
	if c.IconName, err = rec.OptionalString("icon_name"); err != nil {
		return nil, err
	}
	if c.IsActive, err = rec.Bool("is_active"); err != nil {
		return nil, err
	}
	if c.CreatedAt, err = rec.Time("created_at"); err != nil {
		return nil, err
	}
	return &c, nil
}
