package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"aquaevents/internal/domain"
)

const userColumns = `id, keycloak_id, email, name, company_id, role, is_active, created_at, updated_at`

// UserRepo implements domain.UserRepository on the SQLite pool pair.
type UserRepo struct {
	writeDB *sql.DB
	readDB  *sql.DB
}

func NewUserRepo(writeDB, readDB *sql.DB) *UserRepo {
	return &UserRepo{writeDB: writeDB, readDB: readDB}
}

func (r *UserRepo) Create(ctx context.Context, u *domain.User) error {
	_, err := r.writeDB.ExecContext(ctx,
		`INSERT INTO users (`+userColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		u.ID.String(), u.KeycloakID, u.Email, u.Name, uuidPtr(u.CompanyID),
		u.Role.String(), boolToInt(u.IsActive), fmtTime(u.CreatedAt), fmtTime(u.UpdatedAt))
	if err != nil {
		return mapWriteError(ctx, r.readDB, "users.Create", err, []fkRef{
			{field: "company_id", table: "companies", entity: "company",
				id: uuidPtrString(u.CompanyID), hint: "Please create the company first."},
		})
	}
	return nil
}

func (r *UserRepo) FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return queryOne(ctx, r.readDB, "users.FindByID",
		`SELECT `+userColumns+` FROM users WHERE id = ?`, userFromRow, id.String())
}

func (r *UserRepo) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return queryOne(ctx, r.readDB, "users.FindByEmail",
		`SELECT `+userColumns+` FROM users WHERE email = ?`, userFromRow, email)
}

func (r *UserRepo) FindByKeycloakID(ctx context.Context, keycloakID string) (*domain.User, error) {
	return queryOne(ctx, r.readDB, "users.FindByKeycloakID",
		`SELECT `+userColumns+` FROM users WHERE keycloak_id = ?`, userFromRow, keycloakID)
}

func (r *UserRepo) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	return queryExists(ctx, r.readDB, "users.Exists",
		`SELECT 1 FROM users WHERE id = ?`, id.String())
}

func (r *UserRepo) EmailExists(ctx context.Context, email string) (bool, error) {
	return queryExists(ctx, r.readDB, "users.EmailExists",
		`SELECT 1 FROM users WHERE email = ?`, email)
}

func (r *UserRepo) Update(ctx context.Context, u *domain.User) error {
	res, err := r.writeDB.ExecContext(ctx,
		`UPDATE users SET keycloak_id = ?, email = ?, name = ?, company_id = ?,
		        role = ?, is_active = ?, updated_at = ?
		 WHERE id = ?`,
		u.KeycloakID, u.Email, u.Name, uuidPtr(u.CompanyID),
		u.Role.String(), boolToInt(u.IsActive), fmtTime(u.UpdatedAt), u.ID.String())
	if err != nil {
		return mapWriteError(ctx, r.readDB, "users.Update", err, []fkRef{
			{field: "company_id", table: "companies", entity: "company",
				id: uuidPtrString(u.CompanyID), hint: "Please create the company first."},
		})
	}
	n, err := res.RowsAffected()
	if err != nil {
		return toDomain(fromSQLiteError("users.Update", err))
	}
	if n == 0 {
		return domain.ErrNotFound("User", u.ID)
	}
	return nil
}

func (r *UserRepo) Deactivate(ctx context.Context, id uuid.UUID) error {
	return execAffectingOne(ctx, r.writeDB, "users.Deactivate",
		`UPDATE users SET is_active = 0, updated_at = ? WHERE id = ?`,
		func() error { return domain.ErrNotFound("User", id) },
		fmtTime(timeNow()), id.String())
}

func (r *UserRepo) List(ctx context.Context, params domain.PaginationParams) (*domain.PaginatedResult[domain.User], error) {
	total, err := countRows(ctx, r.readDB, "users.List", `SELECT COUNT(*) FROM users`)
	if err != nil {
		return nil, err
	}
	items, err := queryMany(ctx, r.readDB, "users.List",
		`SELECT `+userColumns+` FROM users ORDER BY created_at, id LIMIT ? OFFSET ?`,
		userFromRow, params.Limit, params.Offset)
	if err != nil {
		return nil, err
	}
	return domain.NewPaginatedResult(items, total, params), nil
}

func userFromRow(rec row) (*domain.User, *InfraError) {
	var u domain.User
	var err *InfraError
	if u.ID, err = rec.UUID("id"); err != nil {
		return nil, err
	}
	if u.KeycloakID, err = rec.String("keycloak_id"); err != nil {
		return nil, err
	}
	if u.Email, err = rec.String("email"); err != nil {
		return nil, err
	}
	if u.Name, err = rec.String("name"); err != nil {
		return nil, err
	}
	if u.CompanyID, err = rec.OptionalUUID("company_id"); err != nil {
		return nil, err
	}
	if u.Role, err = rec.UserRole("role"); err != nil {
		return nil, err
	}
	if u.IsActive, err = rec.Bool("is_active"); err != nil {
		return nil, err
	}
	if u.CreatedAt, err = rec.Time("created_at"); err != nil {
		return nil, err
	}
	if u.UpdatedAt, err = rec.Time("updated_at"); err != nil {
		return nil, err
	}
	return &u, nil
}
