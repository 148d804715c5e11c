package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"aquaevents/internal/domain"
)

const companyColumns = `id, name, org_number, location, industry_type, industry_type_other, website, phone, created_at, updated_at`

// CompanyRepo implements domain.CompanyRepository on the SQLite pool pair.
type CompanyRepo struct {
	writeDB *sql.DB
	readDB  *sql.DB
}

func NewCompanyRepo(writeDB, readDB *sql.DB) *CompanyRepo {
	return &CompanyRepo{writeDB: writeDB, readDB: readDB}
}

func (r *CompanyRepo) Create(ctx context.Context, c *domain.Company) error {
	_, err := r.writeDB.ExecContext(ctx,
		`INSERT INTO companies (`+companyColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		c.ID.String(), c.Name, strPtr(c.OrgNumber), strPtr(c.Location),
		c.IndustryType.String(), strPtr(c.IndustryTypeOther), strPtr(c.Website),
		strPtr(c.Phone), fmtTime(c.CreatedAt), fmtTime(c.UpdatedAt))
	if err != nil {
		return toDomain(fromSQLiteError("companies.Create", err))
	}
	return nil
}

func (r *CompanyRepo) FindByID(ctx context.Context, id uuid.UUID) (*domain.Company, error) {
	return queryOne(ctx, r.readDB, "companies.FindByID",
		`SELECT `+companyColumns+` FROM companies WHERE id = ?`, companyFromRow, id.String())
}

func (r *CompanyRepo) FindByOrgNumber(ctx context.Context, orgNumber string) (*domain.Company, error) {
	return queryOne(ctx, r.readDB, "companies.FindByOrgNumber",
		`SELECT `+companyColumns+` FROM companies WHERE org_number = ?`, companyFromRow, orgNumber)
}

func (r *CompanyRepo) Update(ctx context.Context, c *domain.Company) error {
	return execAffectingOne(ctx, r.writeDB, "companies.Update",
		`UPDATE companies SET name = ?, org_number = ?, location = ?, industry_type = ?,
		        industry_type_other = ?, website = ?, phone = ?, updated_at = ?
		 WHERE id = ?`,
		func() error { return domain.ErrNotFound("Company", c.ID) },
		c.Name, strPtr(c.OrgNumber), strPtr(c.Location), c.IndustryType.String(),
		strPtr(c.IndustryTypeOther), strPtr(c.Website), strPtr(c.Phone),
		fmtTime(c.UpdatedAt), c.ID.String())
}

func (r *CompanyRepo) List(ctx context.Context, params domain.PaginationParams) (*domain.PaginatedResult[domain.Company], error) {
	total, err := countRows(ctx, r.readDB, "companies.List", `SELECT COUNT(*) FROM companies`)
	if err != nil {
		return nil, err
	}
	items, err := queryMany(ctx, r.readDB, "companies.List",
		`SELECT `+companyColumns+` FROM companies ORDER BY name, id LIMIT ? OFFSET ?`,
		companyFromRow, params.Limit, params.Offset)
	if err != nil {
		return nil, err
	}
	return domain.NewPaginatedResult(items, total, params), nil
}

func companyFromRow(rec row) (*domain.Company, *InfraError) {
	var c domain.Company
	var err *InfraError
	if c.ID, err = rec.UUID("id"); err != nil {
		return nil, err
	}
	if c.Name, err = rec.String("name"); err != nil {
		return nil, err
	}
	if c.OrgNumber, err = rec.OptionalString("org_number"); err != nil {
		return nil, err
	}
	if c.Location, err = rec.OptionalString("location"); err != nil {
		return nil, err
	}
	if c.IndustryType, err = rec.IndustryType("industry_type"); err != nil {
		return nil, err
	}
	if c.IndustryTypeOther, err = rec.OptionalString("industry_type_other"); err != nil {
		return nil, err
	}
	if c.Website, err = rec.OptionalString("website"); err != nil {
		return nil, err
	}
	if c.Phone, err = rec.OptionalString("phone"); err != nil {
		return nil, err
	}
	if c.CreatedAt, err = rec.Time("created_at"); err != nil {
		return nil, err
	}
	if c.UpdatedAt, err = rec.Time("updated_at"); err != nil {
		return nil, err
	}
	return &c, nil
}
