package sqlite_test

import (
	"context"
	"database/sql"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"employee-profile-backend/internal/domain"
	"employee-profile-backend/internal/repository/sqlite"
	"employee-profile-backend/pkg/database"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openDB(t *testing.T) *sql.DB {
	t.Helper()
	ctx := context.Background()
	db, err := database.NewSQLiteConnection(ctx, filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, database.EnsureSQLiteSchema(ctx, db))
	return db
}

func TestReferenceRepository(t *testing.T) {
	ctx := context.Background()
	repo := sqlite.NewReferenceRepository(openDB(t))

	first, created, err := repo.GetOrCreate(ctx, domain.KindIndustry, "Tech")
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, "Tech", first.Name)

	again, created, err := repo.GetOrCreate(ctx, domain.KindIndustry, "Tech")
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, first.ID, again.ID)

	other, created, err := repo.GetOrCreate(ctx, domain.KindIndustry, "tech")
	require.NoError(t, err)
	assert.True(t, created)
	assert.NotEqual(t, first.ID, other.ID)

	missing, err := repo.GetByName(ctx, domain.KindIndustry, "Finance")
	require.NoError(t, err)
	assert.Nil(t, missing)

	names, err := repo.ListNames(ctx, domain.KindIndustry)
	require.NoError(t, err)
	assert.Equal(t, []string{"Tech", "tech"}, names)

	empty, err := repo.ListNames(ctx, domain.KindCertification)
	require.NoError(t, err)
	assert.Equal(t, []string{}, empty)

	_, _, err = repo.GetOrCreate(ctx, domain.ReferenceKind("employees"), "x")
	assert.Error(t, err)
}

func TestReferenceRepositoryConcurrent(t *testing.T) {
	ctx := context.Background()
	repo := sqlite.NewReferenceRepository(openDB(t))

	const workers = 8
	ids := make([]uuid.UUID, workers)
	var createdCount int
	var mu sync.Mutex
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			e, created, err := repo.GetOrCreate(ctx, domain.KindSkill, "Go")
			assert.NoError(t, err)
			ids[i] = e.ID
			if created {
				mu.Lock()
				createdCount++
				mu.Unlock()
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 1, createdCount)
	for _, id := range ids {
		assert.Equal(t, ids[0], id)
	}
}

func TestEmployeeRepositoryInsert(t *testing.T) {
	ctx := context.Background()
	db := openDB(t)
	refs := sqlite.NewReferenceRepository(db)
	repo := sqlite.NewEmployeeRepository(db)

	industry, _, err := refs.GetOrCreate(ctx, domain.KindIndustry, "Tech")
	require.NoError(t, err)
	designation, _, err := refs.GetOrCreate(ctx, domain.KindDesignation, "Engineer")
	require.NoError(t, err)
	location, _, err := refs.GetOrCreate(ctx, domain.KindLocation, "Lahore")
	require.NoError(t, err)
	skill, _, err := refs.GetOrCreate(ctx, domain.KindSkill, "Go")
	require.NoError(t, err)

	now := time.Date(2024, 3, 1, 4, 30, 0, 0, time.UTC)
	profile := &domain.EmployeeProfile{
		FirstName:      "Ayesha",
		LastName:       "Khan",
		IndustryID:     industry.ID,
		DesignationID:  designation.ID,
		AddressID:      location.ID,
		Contact:        "0300",
		CurrentSalary:  50000,
		SalaryType:     "Monthly",
		RequiredSkills: []uuid.UUID{skill.ID, skill.ID},
		VerifiedSkills: []uuid.UUID{skill.ID},
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	require.NoError(t, repo.Insert(ctx, profile))
	assert.NotEqual(t, uuid.Nil, profile.ID)

	var required, certs string
	var salary float64
	err = db.QueryRowContext(ctx,
		`SELECT required_skills, certifications, current_salary FROM employees WHERE id = ?`, profile.ID.String(),
	).Scan(&required, &certs, &salary)
	require.NoError(t, err)
	assert.JSONEq(t, `["`+skill.ID.String()+`","`+skill.ID.String()+`"]`, required)
	assert.Equal(t, "[]", certs)
	assert.Equal(t, 50000.0, salary)

	// a second insert is a new row, never an update
	second := *profile
	second.ID = uuid.Nil
	require.NoError(t, repo.Insert(ctx, &second))
	assert.NotEqual(t, profile.ID, second.ID)

	var count int
	require.NoError(t, db.QueryRowContext(ctx, `SELECT COUNT(*) FROM employees`).Scan(&count))
	assert.Equal(t, 2, count)
}

func TestEmployeeRepositoryForeignKeys(t *testing.T) {
	ctx := context.Background()
	repo := sqlite.NewEmployeeRepository(openDB(t))

	err := repo.Insert(ctx, &domain.EmployeeProfile{
		FirstName:     "Ghost",
		IndustryID:    uuid.New(),
		DesignationID: uuid.New(),
		AddressID:     uuid.New(),
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	})
	assert.Error(t, err)
}
