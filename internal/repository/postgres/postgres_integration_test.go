//go:build integration

package postgres_test

import (
	"context"
	"os"
	"testing"
	"time"

	"employee-profile-backend/internal/domain"
	"employee-profile-backend/internal/repository/postgres"
	"employee-profile-backend/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Run with: TEST_DATABASE_URL=postgres://... go test -tags integration ./internal/repository/postgres/
func openPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}
	ctx := context.Background()
	pool, err := database.NewPostgresConnection(ctx, url)
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	require.NoError(t, database.EnsurePostgresSchema(ctx, pool))
	return pool
}

func TestPostgresGetOrCreate(t *testing.T) {
	ctx := context.Background()
	repo := postgres.NewReferenceRepository(openPool(t))
	name := "Tech-" + uuid.NewString()

	first, created, err := repo.GetOrCreate(ctx, domain.KindIndustry, name)
	require.NoError(t, err)
	assert.True(t, created)

	again, created, err := repo.GetOrCreate(ctx, domain.KindIndustry, name)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, first.ID, again.ID)

	found, err := repo.GetByName(ctx, domain.KindIndustry, name)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, first.ID, found.ID)

	names, err := repo.ListNames(ctx, domain.KindIndustry)
	require.NoError(t, err)
	assert.Contains(t, names, name)
}

func TestPostgresEmployeeInsert(t *testing.T) {
	ctx := context.Background()
	pool := openPool(t)
	refs := postgres.NewReferenceRepository(pool)
	repo := postgres.NewEmployeeRepository(pool)

	suffix := uuid.NewString()
	industry, _, err := refs.GetOrCreate(ctx, domain.KindIndustry, "Tech-"+suffix)
	require.NoError(t, err)
	designation, _, err := refs.GetOrCreate(ctx, domain.KindDesignation, "Engineer-"+suffix)
	require.NoError(t, err)
	location, _, err := refs.GetOrCreate(ctx, domain.KindLocation, "Lahore-"+suffix)
	require.NoError(t, err)
	skill, _, err := refs.GetOrCreate(ctx, domain.KindSkill, "Go-"+suffix)
	require.NoError(t, err)

	now := time.Now().UTC()
	profile := &domain.EmployeeProfile{
		FirstName:      "Ayesha",
		LastName:       "Khan",
		IndustryID:     industry.ID,
		DesignationID:  designation.ID,
		AddressID:      location.ID,
		Contact:        "0300",
		RequiredSkills: []uuid.UUID{skill.ID},
		VerifiedSkills: []uuid.UUID{skill.ID},
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	require.NoError(t, repo.Insert(ctx, profile))

	var skills []string
	err = pool.QueryRow(ctx, `SELECT required_skills::text[] FROM employees WHERE id = $1`, profile.ID).Scan(&skills)
	require.NoError(t, err)
	assert.Equal(t, []string{skill.ID.String()}, skills)

	bad := *profile
	bad.ID = uuid.Nil
	bad.IndustryID = uuid.New()
	assert.Error(t, repo.Insert(ctx, &bad))
}
