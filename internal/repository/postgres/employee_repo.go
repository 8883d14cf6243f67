package postgres

import (
	"context"
	"errors"
	"fmt"

	"employee-profile-backend/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

// PostgreSQL error codes
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

type employeeRepository struct {
	db *pgxpool.Pool
}

func NewEmployeeRepository(db *pgxpool.Pool) domain.EmployeeRepository {
	return &employeeRepository{db: db}
}

func (r *employeeRepository) Insert(ctx context.Context, p *domain.EmployeeProfile) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}

	query := `
		INSERT INTO employees (
			id, first_name, last_name, industry_id, designation_id, address_id, contact,
			current_salary, min_expected_salary, max_expected_salary, about, salary_type,
			date_of_birth, salary_currency, seeking_job_type, seeking_range, is_radar,
			gender, slogan, joining_timeframe, required_skills, verified_skills,
			certifications, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13,
			$14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25
		)`

	_, err := r.db.Exec(ctx, query,
		p.ID, p.FirstName, p.LastName, p.IndustryID, p.DesignationID, p.AddressID, p.Contact,
		p.CurrentSalary, p.MinExpectedSalary, p.MaxExpectedSalary, p.About, p.SalaryType,
		p.DateOfBirth, p.SalaryCurrency, p.SeekingJobType, p.SeekingRange, p.IsRadar,
		p.Gender, p.Slogan, p.JoiningTimeframe,
		pq.Array(uuidStrings(p.RequiredSkills)), pq.Array(uuidStrings(p.VerifiedSkills)),
		pq.Array(uuidStrings(p.Certifications)), p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case pgUniqueViolation:
				return fmt.Errorf("employee %s already exists: %w", p.ID, err)
			case pgForeignKeyViolation:
				return fmt.Errorf("employee references a missing entity (%s): %w", pgErr.ConstraintName, err)
			}
		}
		return fmt.Errorf("failed to insert employee: %w", err)
	}
	return nil
}

func uuidStrings(ids []uuid.UUID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}
	return out
}
