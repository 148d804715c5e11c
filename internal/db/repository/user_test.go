package repository

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aquaevents/internal/domain"
)

func TestUserRepoCRUD(t *testing.T) {
	repos := newRepos(t)
	ctx := context.Background()

	u := newUser("mari@laksefarm.no", "kc-1")
	require.NoError(t, repos.Users.Create(ctx, u))

	got, err := repos.Users.FindByID(ctx, u.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, u.Email, got.Email)
	assert.Equal(t, domain.UserRoleParticipant, got.Role)
	assert.True(t, got.IsActive)
	assert.Nil(t, got.CompanyID)

	byEmail, err := repos.Users.FindByEmail(ctx, "mari@laksefarm.no")
	require.NoError(t, err)
	require.NotNil(t, byEmail)
	assert.Equal(t, u.ID, byEmail.ID)

	byKC, err := repos.Users.FindByKeycloakID(ctx, "kc-1")
	require.NoError(t, err)
	require.NotNil(t, byKC)

	got.Name = "Mari Olsen"
	require.NoError(t, repos.Users.Update(ctx, got))

	require.NoError(t, repos.Users.Deactivate(ctx, u.ID))
	got, err = repos.Users.FindByID(ctx, u.ID)
	require.NoError(t, err)
	assert.False(t, got.IsActive)
}

func TestUserRepoMissIsNilNil(t *testing.T) {
	repos := newRepos(t)
	ctx := context.Background()

	got, err := repos.Users.FindByID(ctx, uuid.New())
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = repos.Users.FindByEmail(ctx, "nobody@nowhere.no")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestUserRepoExists(t *testing.T) {
	repos := newRepos(t)
	ctx := context.Background()

	u := newUser("mari@laksefarm.no", "kc-1")
	require.NoError(t, repos.Users.Create(ctx, u))

	found, err := repos.Users.Exists(ctx, u.ID)
	require.NoError(t, err)
	assert.True(t, found)

	found, err = repos.Users.Exists(ctx, uuid.New())
	require.NoError(t, err)
	assert.False(t, found)

	found, err = repos.Users.EmailExists(ctx, "mari@laksefarm.no")
	require.NoError(t, err)
	assert.True(t, found)

	found, err = repos.Users.EmailExists(ctx, "nobody@nowhere.no")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestUserRepoDuplicateEmail(t *testing.T) {
	repos := newRepos(t)
	ctx := context.Background()

	require.NoError(t, repos.Users.Create(ctx, newUser("dup@havbruk.no", "kc-1")))

	err := repos.Users.Create(ctx, newUser("dup@havbruk.no", "kc-2"))
	var conflict *domain.ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t,
		"This email address is already registered. Please use a different email or try signing in.",
		conflict.Message)
	assert.Equal(t, "email", conflict.Field)
}

func TestUserRepoDuplicateKeycloakID(t *testing.T) {
	repos := newRepos(t)
	ctx := context.Background()

	require.NoError(t, repos.Users.Create(ctx, newUser("a@havbruk.no", "kc-same")))

	err := repos.Users.Create(ctx, newUser("b@havbruk.no", "kc-same"))
	var conflict *domain.ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, "This account is already linked to another user.", conflict.Message)
}

func TestUserRepoDanglingCompany(t *testing.T) {
	repos := newRepos(t)
	ctx := context.Background()

	u := newUser("mari@laksefarm.no", "kc-1")
	missing := uuid.New()
	u.CompanyID = &missing

	err := repos.Users.Create(ctx, u)
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "company_id", verr.Field)
	assert.Contains(t, verr.Message, missing.String())
	assert.Contains(t, verr.Message, "Please create the company first.")
}

func TestUserRepoUpdateMissing(t *testing.T) {
	repos := newRepos(t)
	ctx := context.Background()

	u := newUser("ghost@havbruk.no", "kc-ghost")
	var nf *domain.NotFoundError
	require.ErrorAs(t, repos.Users.Update(ctx, u), &nf)
	require.ErrorAs(t, repos.Users.Deactivate(ctx, uuid.New()), &nf)
}

func TestUserRepoListPagination(t *testing.T) {
	repos := newRepos(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		u := newUser(string(rune('a'+i))+"@havbruk.no", "kc-"+string(rune('a'+i)))
		require.NoError(t, repos.Users.Create(ctx, u))
	}

	params, err := domain.NewPaginationParams(0, 2)
	require.NoError(t, err)
	page, err := repos.Users.List(ctx, params)
	require.NoError(t, err)
	assert.Len(t, page.Items, 2)
	assert.Equal(t, int64(5), page.TotalCount)
	assert.True(t, page.HasNext)

	params, err = domain.NewPaginationParams(4, 2)
	require.NoError(t, err)
	page, err = repos.Users.List(ctx, params)
	require.NoError(t, err)
	assert.Len(t, page.Items, 1)
	assert.False(t, page.HasNext)
}

func TestCompanyRepoCRUD(t *testing.T) {
	repos := newRepos(t)
	ctx := context.Background()

	c := newCompany("987654321")
	require.NoError(t, repos.Companies.Create(ctx, c))

	got, err := repos.Companies.FindByID(ctx, c.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, domain.IndustrySalmon, got.IndustryType)

	byOrg, err := repos.Companies.FindByOrgNumber(ctx, "987654321")
	require.NoError(t, err)
	require.NotNil(t, byOrg)
	assert.Equal(t, c.ID, byOrg.ID)

	got.Name = "Nordlaks AS"
	require.NoError(t, repos.Companies.Update(ctx, got))

	// Duplicate org numbers are a curated conflict.
	dup := newCompany("987654321")
	err = repos.Companies.Create(ctx, dup)
	var conflict *domain.ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, "A company with this organization number already exists.", conflict.Message)
}

func TestUserLinkedToCompany(t *testing.T) {
	repos := newRepos(t)
	ctx := context.Background()

	c := newCompany("")
	require.NoError(t, repos.Companies.Create(ctx, c))

	u := newUser("ansatt@nordlaks.no", "kc-emp")
	u.CompanyID = &c.ID
	require.NoError(t, repos.Users.Create(ctx, u))

	got, err := repos.Users.FindByID(ctx, u.ID)
	require.NoError(t, err)
	require.NotNil(t, got.CompanyID)
	assert.Equal(t, c.ID, *got.CompanyID)
}
