package repository

import (
	"database/sql"

	"aquaevents/internal/domain"
)

// Factory builds repositories over a shared write/read pool pair. All
// repositories returned by one factory use the same handles, so mutations
// serialize through the single-connection write pool.
type Factory struct {
	writeDB *sql.DB
	readDB  *sql.DB
}

func NewFactory(writeDB, readDB *sql.DB) *Factory {
	return &Factory{writeDB: writeDB, readDB: readDB}
}

func (f *Factory) Users() domain.UserRepository {
	return NewUserRepo(f.writeDB, f.readDB)
}

func (f *Factory) Companies() domain.CompanyRepository {
	return NewCompanyRepo(f.writeDB, f.readDB)
}

func (f *Factory) Categories() domain.EventCategoryRepository {
	return NewCategoryRepo(f.writeDB, f.readDB)
}

func (f *Factory) Events() domain.EventRepository {
	return NewEventRepo(f.writeDB, f.readDB)
}

func (f *Factory) Invitations() domain.EventInvitationRepository {
	return NewInvitationRepo(f.writeDB, f.readDB)
}

func (f *Factory) Registrations() domain.EventRegistrationRepository {
	return NewRegistrationRepo(f.writeDB, f.readDB)
}

// Repositories bundles every repository for callers that wire the whole set.
type Repositories struct {
	Users         domain.UserRepository
	Companies     domain.CompanyRepository
	Categories    domain.EventCategoryRepository
	Events        domain.EventRepository
	Invitations   domain.EventInvitationRepository
	Registrations domain.EventRegistrationRepository
}

// All constructs the full repository set.
func (f *Factory) All() *Repositories {
	return &Repositories{
		Users:         f.Users(),
		Companies:     f.Companies(),
		Categories:    f.Categories(),
		Events:        f.Events(),
		Invitations:   f.Invitations(),
		Registrations: f.Registrations(),
	}
}
