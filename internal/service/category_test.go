package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aquaevents/internal/domain"
)

func TestCategoryServiceCreate(t *testing.T) {
	var created *domain.EventCategory
	repo := &mockCategoryRepo{
		createFn: func(_ context.Context, c *domain.EventCategory) error {
			created = c
			return nil
		},
	}
	svc := NewCategoryService(repo)

	desc := "Technical seminars and lectures"
	c, err := svc.CreateCategory(context.Background(), &domain.CreateEventCategoryRequest{
		ID:          "seminar",
		Name:        "Seminar",
		Description: &desc,
	})
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, "seminar", c.ID)
	assert.True(t, c.IsActive)
	assert.False(t, c.CreatedAt.IsZero())
}

func TestCategoryServiceCreateInvalid(t *testing.T) {
	svc := NewCategoryService(&mockCategoryRepo{})

	_, err := svc.CreateCategory(context.Background(), &domain.CreateEventCategoryRequest{
		ID: "seminar",
	})
	var ve *domain.ValidationError
	require.ErrorAs(t, err, &ve)
}

func TestCategoryServiceGetMissing(t *testing.T) {
	repo := &mockCategoryRepo{
		findByIDFn: func(_ context.Context, _ string) (*domain.EventCategory, error) {
			return nil, nil
		},
	}
	svc := NewCategoryService(repo)

	_, err := svc.GetCategory(context.Background(), "ghost")
	var nf *domain.NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "EventCategory", nf.Entity)
}

func TestCategoryServiceUpdateRejectsBlankName(t *testing.T) {
	svc := NewCategoryService(&mockCategoryRepo{})

	_, err := svc.UpdateCategory(context.Background(), &domain.EventCategory{ID: "seminar", Name: "   "})
	var ve *domain.ValidationError
	require.ErrorAs(t, err, &ve)
}

func TestCategoryServiceListSplit(t *testing.T) {
	active := domain.EventCategory{ID: "seminar", Name: "Seminar", IsActive: true}
	retired := domain.EventCategory{ID: "expo", Name: "Expo", IsActive: false}
	repo := &mockCategoryRepo{
		findActiveFn: func(_ context.Context) ([]domain.EventCategory, error) {
			return []domain.EventCategory{active}, nil
		},
		findAllFn: func(_ context.Context) ([]domain.EventCategory, error) {
			return []domain.EventCategory{active, retired}, nil
		},
	}
	svc := NewCategoryService(repo)

	got, err := svc.ListCategories(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "seminar", got[0].ID)

	got, err = svc.ListAllCategories(context.Background())
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestCategoryServiceDelete(t *testing.T) {
	var deleted string
	repo := &mockCategoryRepo{
		deleteFn: func(_ context.Context, id string) error {
			deleted = id
			return nil
		},
	}
	svc := NewCategoryService(repo)

	require.NoError(t, svc.DeleteCategory(context.Background(), "seminar"))
	assert.Equal(t, "seminar", deleted)
}
