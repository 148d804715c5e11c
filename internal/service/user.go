// Package service implements the application services over the domain
// repositories. Services own orchestration and state-transition rules;
// storage concerns stay behind the repository interfaces.
package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"aquaevents/internal/domain"
)

type UserService struct {
	users     domain.UserRepository
	companies domain.CompanyRepository
}

func NewUserService(users domain.UserRepository, companies domain.CompanyRepository) *UserService {
	return &UserService{users: users, companies: companies}
}

func (s *UserService) CreateUser(ctx context.Context, req *domain.CreateUserRequest) (*domain.User, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	u := &domain.User{
		ID:         uuid.New(),
		KeycloakID: req.KeycloakID,
		Email:      req.Email,
		Name:       req.Name,
		CompanyID:  req.CompanyID,
		Role:       req.Role,
		IsActive:   true,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := u.ValidateForCreation(); err != nil {
		return nil, err
	}
	if err := s.users.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *UserService) GetUser(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	u, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrNotFound("User", id)
	}
	return u, nil
}

func (s *UserService) GetUserByKeycloakID(ctx context.Context, keycloakID string) (*domain.User, error) {
	u, err := s.users.FindByKeycloakID(ctx, keycloakID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrNotFoundByField("User", "keycloak_id", keycloakID)
	}
	return u, nil
}

func (s *UserService) UpdateUser(ctx context.Context, u *domain.User) (*domain.User, error) {
	if err := u.ValidateForCreation(); err != nil {
		return nil, err
	}
	u.UpdatedAt = time.Now().UTC()
	if err := s.users.Update(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *UserService) DeactivateUser(ctx context.Context, id uuid.UUID) error {
	return s.users.Deactivate(ctx, id)
}

func (s *UserService) ListUsers(ctx context.Context, params domain.PaginationParams) (*domain.PaginatedResult[domain.User], error) {
	return s.users.List(ctx, params)
}

// CreateCompany registers a company so users can be linked to it.
func (s *UserService) CreateCompany(ctx context.Context, c *domain.Company) (*domain.Company, error) {
	if err := c.ValidateForCreation(); err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	c.CreatedAt = now
	c.UpdatedAt = now
	if err := s.companies.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *UserService) GetCompany(ctx context.Context, id uuid.UUID) (*domain.Company, error) {
	c, err := s.companies.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound("Company", id)
	}
	return c, nil
}

func (s *UserService) ListCompanies(ctx context.Context, params domain.PaginationParams) (*domain.PaginatedResult[domain.Company], error) {
	return s.companies.List(ctx, params)
}
