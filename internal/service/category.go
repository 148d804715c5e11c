package service

import (
	"context"
	"time"

	"aquaevents/internal/domain"
)

type CategoryService struct {
	categories domain.EventCategoryRepository
}

func NewCategoryService(categories domain.EventCategoryRepository) *CategoryService {
	return &CategoryService{categories: categories}
}

func (s *CategoryService) CreateCategory(ctx context.Context, req *domain.CreateEventCategoryRequest) (*domain.EventCategory, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	c := &domain.EventCategory{
		ID:          req.ID,
		Name:        req.Name,
		Description: req.Description,
		ColorHex:    req.ColorHex,
		IconName:    req.IconName,
		IsActive:    true,
		CreatedAt:   time.Now().UTC(),
	}
	if err := c.ValidateForCreation(); err != nil {
		return nil, err
	}
	if err := s.categories.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *CategoryService) GetCategory(ctx context.Context, id string) (*domain.EventCategory, error) {
	c, err := s.categories.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFoundByField("EventCategory", "id", id)
	}
	return c, nil
}

// ListCategories returns the categories currently offered for new events.
func (s *CategoryService) ListCategories(ctx context.Context) ([]domain.EventCategory, error) {
	return s.categories.FindActive(ctx)
}

// ListAllCategories includes deactivated categories, for administration.
func (s *CategoryService) ListAllCategories(ctx context.Context) ([]domain.EventCategory, error) {
	return s.categories.FindAll(ctx)
}

func (s *CategoryService) UpdateCategory(ctx context.Context, c *domain.EventCategory) (*domain.EventCategory, error) {
	if err := c.ValidateForCreation(); err != nil {
		return nil, err
	}
	if err := s.categories.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *CategoryService) DeleteCategory(ctx context.Context, id string) error {
	return s.categories.Delete(ctx, id)
}
