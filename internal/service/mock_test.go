package service

import (
	"context"

	"github.com/google/uuid"

	"aquaevents/internal/domain"
)

// === User Repository Mock ===

type mockUserRepo struct {
	createFn           func(ctx context.Context, user *domain.User) error
	findByIDFn         func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	findByEmailFn      func(ctx context.Context, email string) (*domain.User, error)
	findByKeycloakIDFn func(ctx context.Context, keycloakID string) (*domain.User, error)
	existsFn           func(ctx context.Context, id uuid.UUID) (bool, error)
	emailExistsFn      func(ctx context.Context, email string) (bool, error)
	updateFn           func(ctx context.Context, user *domain.User) error
	deactivateFn       func(ctx context.Context, id uuid.UUID) error
	listFn             func(ctx context.Context, params domain.PaginationParams) (*domain.PaginatedResult[domain.User], error)
}

func (m *mockUserRepo) Create(ctx context.Context, user *domain.User) error {
	if m.createFn != nil {
		return m.createFn(ctx, user)
	}
	panic("unexpected call to mockUserRepo.Create")
}

func (m *mockUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(ctx, id)
	}
	panic("unexpected call to mockUserRepo.FindByID")
}

func (m *mockUserRepo) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.findByEmailFn != nil {
		return m.findByEmailFn(ctx, email)
	}
	panic("unexpected call to mockUserRepo.FindByEmail")
}

func (m *mockUserRepo) FindByKeycloakID(ctx context.Context, keycloakID string) (*domain.User, error) {
	if m.findByKeycloakIDFn != nil {
		return m.findByKeycloakIDFn(ctx, keycloakID)
	}
	panic("unexpected call to mockUserRepo.FindByKeycloakID")
}

func (m *mockUserRepo) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	if m.existsFn != nil {
		return m.existsFn(ctx, id)
	}
	panic("unexpected call to mockUserRepo.Exists")
}

func (m *mockUserRepo) EmailExists(ctx context.Context, email string) (bool, error) {
	if m.emailExistsFn != nil {
		return m.emailExistsFn(ctx, email)
	}
	panic("unexpected call to mockUserRepo.EmailExists")
}

func (m *mockUserRepo) Update(ctx context.Context, user *domain.User) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, user)
	}
	panic("unexpected call to mockUserRepo.Update")
}

func (m *mockUserRepo) Deactivate(ctx context.Context, id uuid.UUID) error {
	if m.deactivateFn != nil {
		return m.deactivateFn(ctx, id)
	}
	panic("unexpected call to mockUserRepo.Deactivate")
}

func (m *mockUserRepo) List(ctx context.Context, params domain.PaginationParams) (*domain.PaginatedResult[domain.User], error) {
	if m.listFn != nil {
		return m.listFn(ctx, params)
	}
	panic("unexpected call to mockUserRepo.List")
}

// === Company Repository Mock ===

type mockCompanyRepo struct {
	createFn          func(ctx context.Context, company *domain.Company) error
	findByIDFn        func(ctx context.Context, id uuid.UUID) (*domain.Company, error)
	findByOrgNumberFn func(ctx context.Context, orgNumber string) (*domain.Company, error)
	updateFn          func(ctx context.Context, company *domain.Company) error
	listFn            func(ctx context.Context, params domain.PaginationParams) (*domain.PaginatedResult[domain.Company], error)
}

func (m *mockCompanyRepo) Create(ctx context.Context, company *domain.Company) error {
	if m.createFn != nil {
		return m.createFn(ctx, company)
	}
	panic("unexpected call to mockCompanyRepo.Create")
}

func (m *mockCompanyRepo) FindByID(ctx context.Context, id uuid.UUID) (*domain.Company, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(ctx, id)
	}
	panic("unexpected call to mockCompanyRepo.FindByID")
}

func (m *mockCompanyRepo) FindByOrgNumber(ctx context.Context, orgNumber string) (*domain.Company, error) {
	if m.findByOrgNumberFn != nil {
		return m.findByOrgNumberFn(ctx, orgNumber)
	}
	panic("unexpected call to mockCompanyRepo.FindByOrgNumber")
}

func (m *mockCompanyRepo) Update(ctx context.Context, company *domain.Company) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, company)
	}
	panic("unexpected call to mockCompanyRepo.Update")
}

func (m *mockCompanyRepo) List(ctx context.Context, params domain.PaginationParams) (*domain.PaginatedResult[domain.Company], error) {
	if m.listFn != nil {
		return m.listFn(ctx, params)
	}
	panic("unexpected call to mockCompanyRepo.List")
}

// === Category Repository Mock ===

type mockCategoryRepo struct {
	createFn     func(ctx context.Context, category *domain.EventCategory) error
	findByIDFn   func(ctx context.Context, id string) (*domain.EventCategory, error)
	findActiveFn func(ctx context.Context) ([]domain.EventCategory, error)
	findAllFn    func(ctx context.Context) ([]domain.EventCategory, error)
	updateFn     func(ctx context.Context, category *domain.EventCategory) error
	deleteFn     func(ctx context.Context, id string) error
}

func (m *mockCategoryRepo) Create(ctx context.Context, category *domain.EventCategory) error {
	if m.createFn != nil {
		return m.createFn(ctx, category)
	}
	panic("unexpected call to mockCategoryRepo.Create")
}

func (m *mockCategoryRepo) FindByID(ctx context.Context, id string) (*domain.EventCategory, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(ctx, id)
	}
	panic("unexpected call to mockCategoryRepo.FindByID")
}

func (m *mockCategoryRepo) FindActive(ctx context.Context) ([]domain.EventCategory, error) {
	if m.findActiveFn != nil {
		return m.findActiveFn(ctx)
	}
	panic("unexpected call to mockCategoryRepo.FindActive")
}

func (m *mockCategoryRepo) FindAll(ctx context.Context) ([]domain.EventCategory, error) {
	if m.findAllFn != nil {
		return m.findAllFn(ctx)
	}
	panic("unexpected call to mockCategoryRepo.FindAll")
}

func (m *mockCategoryRepo) Update(ctx context.Context, category *domain.EventCategory) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, category)
	}
	panic("unexpected call to mockCategoryRepo.Update")
}

func (m *mockCategoryRepo) Delete(ctx context.Context, id string) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	panic("unexpected call to mockCategoryRepo.Delete")
}

// === Event Repository Mock ===

type mockEventRepo struct {
	createFn          func(ctx context.Context, event *domain.Event) error
	findByIDFn        func(ctx context.Context, id uuid.UUID) (*domain.Event, error)
	findByOrganizerFn func(ctx context.Context, organizerID uuid.UUID, params domain.PaginationParams) (*domain.PaginatedResult[domain.Event], error)
	findUpcomingFn    func(ctx context.Context, params domain.PaginationParams) (*domain.PaginatedResult[domain.Event], error)
	searchFn          func(ctx context.Context, filter domain.EventFilter, params domain.PaginationParams) (*domain.PaginatedResult[domain.Event], error)
	existsFn          func(ctx context.Context, id uuid.UUID) (bool, error)
	updateFn          func(ctx context.Context, event *domain.Event) error
	deleteFn          func(ctx context.Context, id uuid.UUID) error
}

func (m *mockEventRepo) Create(ctx context.Context, event *domain.Event) error {
	if m.createFn != nil {
		return m.createFn(ctx, event)
	}
	panic("unexpected call to mockEventRepo.Create")
}

func (m *mockEventRepo) FindByID(ctx context.Context, id uuid.UUID) (*domain.Event, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(ctx, id)
	}
	panic("unexpected call to mockEventRepo.FindByID")
}

func (m *mockEventRepo) FindByOrganizer(ctx context.Context, organizerID uuid.UUID, params domain.PaginationParams) (*domain.PaginatedResult[domain.Event], error) {
	if m.findByOrganizerFn != nil {
		return m.findByOrganizerFn(ctx, organizerID, params)
	}
	panic("unexpected call to mockEventRepo.FindByOrganizer")
}

func (m *mockEventRepo) FindUpcoming(ctx context.Context, params domain.PaginationParams) (*domain.PaginatedResult[domain.Event], error) {
	if m.findUpcomingFn != nil {
		return m.findUpcomingFn(ctx, params)
	}
	panic("unexpected call to mockEventRepo.FindUpcoming")
}

func (m *mockEventRepo) Search(ctx context.Context, filter domain.EventFilter, params domain.PaginationParams) (*domain.PaginatedResult[domain.Event], error) {
	if m.searchFn != nil {
		return m.searchFn(ctx, filter, params)
	}
	panic("unexpected call to mockEventRepo.Search")
}

func (m *mockEventRepo) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	if m.existsFn != nil {
		return m.existsFn(ctx, id)
	}
	panic("unexpected call to mockEventRepo.Exists")
}

func (m *mockEventRepo) Update(ctx context.Context, event *domain.Event) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, event)
	}
	panic("unexpected call to mockEventRepo.Update")
}

func (m *mockEventRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	panic("unexpected call to mockEventRepo.Delete")
}

// === Invitation Repository Mock ===

type mockInvitationRepo struct {
	createFn             func(ctx context.Context, invitation *domain.EventInvitation) error
	findByIDFn           func(ctx context.Context, id uuid.UUID) (*domain.EventInvitation, error)
	findByTokenFn        func(ctx context.Context, token string) (*domain.EventInvitation, error)
	findByEventFn        func(ctx context.Context, eventID uuid.UUID, params domain.PaginationParams) (*domain.PaginatedResult[domain.EventInvitation], error)
	findPendingForUserFn func(ctx context.Context, userID uuid.UUID) ([]domain.EventInvitation, error)
	userInvitedFn        func(ctx context.Context, userID, eventID uuid.UUID) (bool, error)
	emailInvitedFn       func(ctx context.Context, email string, eventID uuid.UUID) (bool, error)
	updateFn             func(ctx context.Context, invitation *domain.EventInvitation) error
	deleteFn             func(ctx context.Context, id uuid.UUID) error
}

func (m *mockInvitationRepo) Create(ctx context.Context, invitation *domain.EventInvitation) error {
	if m.createFn != nil {
		return m.createFn(ctx, invitation)
	}
	panic("unexpected call to mockInvitationRepo.Create")
}

func (m *mockInvitationRepo) FindByID(ctx context.Context, id uuid.UUID) (*domain.EventInvitation, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(ctx, id)
	}
	panic("unexpected call to mockInvitationRepo.FindByID")
}

func (m *mockInvitationRepo) FindByToken(ctx context.Context, token string) (*domain.EventInvitation, error) {
	if m.findByTokenFn != nil {
		return m.findByTokenFn(ctx, token)
	}
	panic("unexpected call to mockInvitationRepo.FindByToken")
}

func (m *mockInvitationRepo) FindByEvent(ctx context.Context, eventID uuid.UUID, params domain.PaginationParams) (*domain.PaginatedResult[domain.EventInvitation], error) {
	if m.findByEventFn != nil {
		return m.findByEventFn(ctx, eventID, params)
	}
	panic("unexpected call to mockInvitationRepo.FindByEvent")
}

func (m *mockInvitationRepo) FindPendingForUser(ctx context.Context, userID uuid.UUID) ([]domain.EventInvitation, error) {
	if m.findPendingForUserFn != nil {
		return m.findPendingForUserFn(ctx, userID)
	}
	panic("unexpected call to mockInvitationRepo.FindPendingForUser")
}

func (m *mockInvitationRepo) UserInvitedToEvent(ctx context.Context, userID, eventID uuid.UUID) (bool, error) {
	if m.userInvitedFn != nil {
		return m.userInvitedFn(ctx, userID, eventID)
	}
	panic("unexpected call to mockInvitationRepo.UserInvitedToEvent")
}

func (m *mockInvitationRepo) EmailInvitedToEvent(ctx context.Context, email string, eventID uuid.UUID) (bool, error) {
	if m.emailInvitedFn != nil {
		return m.emailInvitedFn(ctx, email, eventID)
	}
	panic("unexpected call to mockInvitationRepo.EmailInvitedToEvent")
}

func (m *mockInvitationRepo) Update(ctx context.Context, invitation *domain.EventInvitation) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, invitation)
	}
	panic("unexpected call to mockInvitationRepo.Update")
}

func (m *mockInvitationRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	panic("unexpected call to mockInvitationRepo.Delete")
}

// === Registration Repository Mock ===

type mockRegistrationRepo struct {
	createFn                 func(ctx context.Context, registration *domain.EventRegistration) error
	findByIDFn               func(ctx context.Context, id uuid.UUID) (*domain.EventRegistration, error)
	findByEventAndUserFn     func(ctx context.Context, eventID, userID uuid.UUID) (*domain.EventRegistration, error)
	findByEventFn            func(ctx context.Context, eventID uuid.UUID, params domain.PaginationParams) (*domain.PaginatedResult[domain.EventRegistration], error)
	findByUserFn             func(ctx context.Context, userID uuid.UUID, params domain.PaginationParams) (*domain.PaginatedResult[domain.EventRegistration], error)
	countActiveByEventFn     func(ctx context.Context, eventID uuid.UUID) (int, error)
	countWaitlistedByEventFn func(ctx context.Context, eventID uuid.UUID) (int, error)
	firstWaitlistedFn        func(ctx context.Context, eventID uuid.UUID) (*domain.EventRegistration, error)
	updateFn                 func(ctx context.Context, registration *domain.EventRegistration) error
}

func (m *mockRegistrationRepo) Create(ctx context.Context, registration *domain.EventRegistration) error {
	if m.createFn != nil {
		return m.createFn(ctx, registration)
	}
	panic("unexpected call to mockRegistrationRepo.Create")
}

func (m *mockRegistrationRepo) FindByID(ctx context.Context, id uuid.UUID) (*domain.EventRegistration, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(ctx, id)
	}
	panic("unexpected call to mockRegistrationRepo.FindByID")
}

func (m *mockRegistrationRepo) FindByEventAndUser(ctx context.Context, eventID, userID uuid.UUID) (*domain.EventRegistration, error) {
	if m.findByEventAndUserFn != nil {
		return m.findByEventAndUserFn(ctx, eventID, userID)
	}
	panic("unexpected call to mockRegistrationRepo.FindByEventAndUser")
}

func (m *mockRegistrationRepo) FindByEvent(ctx context.Context, eventID uuid.UUID, params domain.PaginationParams) (*domain.PaginatedResult[domain.EventRegistration], error) {
	if m.findByEventFn != nil {
		return m.findByEventFn(ctx, eventID, params)
	}
	panic("unexpected call to mockRegistrationRepo.FindByEvent")
}

func (m *mockRegistrationRepo) FindByUser(ctx context.Context, userID uuid.UUID, params domain.PaginationParams) (*domain.PaginatedResult[domain.EventRegistration], error) {
	if m.findByUserFn != nil {
		return m.findByUserFn(ctx, userID, params)
	}
	panic("unexpected call to mockRegistrationRepo.FindByUser")
}

func (m *mockRegistrationRepo) CountActiveByEvent(ctx context.Context, eventID uuid.UUID) (int, error) {
	if m.countActiveByEventFn != nil {
		return m.countActiveByEventFn(ctx, eventID)
	}
	panic("unexpected call to mockRegistrationRepo.CountActiveByEvent")
}

func (m *mockRegistrationRepo) CountWaitlistedByEvent(ctx context.Context, eventID uuid.UUID) (int, error) {
	if m.countWaitlistedByEventFn != nil {
		return m.countWaitlistedByEventFn(ctx, eventID)
	}
	panic("unexpected call to mockRegistrationRepo.CountWaitlistedByEvent")
}

func (m *mockRegistrationRepo) FirstWaitlisted(ctx context.Context, eventID uuid.UUID) (*domain.EventRegistration, error) {
	if m.firstWaitlistedFn != nil {
		return m.firstWaitlistedFn(ctx, eventID)
	}
	panic("unexpected call to mockRegistrationRepo.FirstWaitlisted")
}

func (m *mockRegistrationRepo) Update(ctx context.Context, registration *domain.EventRegistration) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, registration)
	}
	panic("unexpected call to mockRegistrationRepo.Update")
}
