package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"employee-profile-backend/internal/domain"

	"github.com/google/uuid"
)

type employeeRepository struct {
	db *sql.DB
}

func NewEmployeeRepository(db *sql.DB) domain.EmployeeRepository {
	return &employeeRepository{db: db}
}

func (r *employeeRepository) Insert(ctx context.Context, p *domain.EmployeeProfile) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}

	required, err := encodeIDs(p.RequiredSkills)
	if err != nil {
		return err
	}
	verified, err := encodeIDs(p.VerifiedSkills)
	if err != nil {
		return err
	}
	certs, err := encodeIDs(p.Certifications)
	if err != nil {
		return err
	}

	var dob sql.NullTime
	if p.DateOfBirth != nil {
		dob = sql.NullTime{Time: *p.DateOfBirth, Valid: true}
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO employees (
			id, first_name, last_name, industry_id, designation_id, address_id, contact,
			current_salary, min_expected_salary, max_expected_salary, about, salary_type,
			date_of_birth, salary_currency, seeking_job_type, seeking_range, is_radar,
			gender, slogan, joining_timeframe, required_skills, verified_skills,
			certifications, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ID.String(), p.FirstName, p.LastName, p.IndustryID.String(), p.DesignationID.String(),
		p.AddressID.String(), p.Contact, p.CurrentSalary, p.MinExpectedSalary, p.MaxExpectedSalary,
		p.About, p.SalaryType, dob, p.SalaryCurrency, p.SeekingJobType, p.SeekingRange, p.IsRadar,
		p.Gender, p.Slogan, p.JoiningTimeframe, required, verified, certs, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert employee: %w", err)
	}
	return nil
}

func encodeIDs(ids []uuid.UUID) (string, error) {
	if ids == nil {
		ids = []uuid.UUID{}
	}
	b, err := json.Marshal(ids)
	if err != nil {
		return "", fmt.Errorf("failed to encode ids: %w", err)
	}
	return string(b), nil
}
